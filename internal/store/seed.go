package store

import (
	"fmt"
	"time"

	"parkdesk/internal/entities"
)

// Seeded returns a store pre-populated with the demo data set: three
// lots, a dozen spaces, five users and 25 reservations spread across
// every status. Reservation ids are deterministic (r-001 upwards) so the
// CLI output and the tests stay reproducible.
func Seeded(latency time.Duration) *Memory {
	m := New(latency)

	m.lots = []entities.ParkingLot{
		{ID: "l-01", Name: "Centro Garage", Address: "Av. Corrientes 1288", City: "Buenos Aires", PricePerHour: 10, TotalSpaces: 5},
		{ID: "l-02", Name: "Puerto Madero Deck", Address: "Juana Manso 550", City: "Buenos Aires", PricePerHour: 7.5, TotalSpaces: 4},
		{ID: "l-03", Name: "Norte Open Lot", Address: "Cabildo 2301", City: "Buenos Aires", PricePerHour: 12, TotalSpaces: 3},
	}

	for i := 1; i <= 5; i++ {
		m.spaces = append(m.spaces, entities.ParkingSpace{
			ID: fmt.Sprintf("s-%02d", i), LotID: "l-01", Number: fmt.Sprintf("A-%02d", i), Status: entities.SpaceAvailable,
		})
	}
	for i := 6; i <= 9; i++ {
		m.spaces = append(m.spaces, entities.ParkingSpace{
			ID: fmt.Sprintf("s-%02d", i), LotID: "l-02", Number: fmt.Sprintf("B-%02d", i-5), Status: entities.SpaceAvailable,
		})
	}
	for i := 10; i <= 12; i++ {
		m.spaces = append(m.spaces, entities.ParkingSpace{
			ID: fmt.Sprintf("s-%02d", i), LotID: "l-03", Number: fmt.Sprintf("C-%02d", i-9), Status: entities.SpaceAvailable,
		})
	}
	// One space is out of service, it never participates in bookings.
	m.spaces[11].Status = entities.SpaceMaintenance

	m.users = []entities.User{
		{ID: "u-01", FirstName: "Lucia", LastName: "Fernandez", Email: "lucia.fernandez@example.com"},
		{ID: "u-02", FirstName: "Marco", LastName: "Bianchi", Email: "marco.bianchi@example.com"},
		{ID: "u-03", FirstName: "Sofia", LastName: "Gomez", Email: "sofia.gomez@example.com"},
		{ID: "u-04", FirstName: "Diego", LastName: "Alvarez", Email: "diego.alvarez@example.com"},
		{ID: "u-05", FirstName: "Ana", LastName: "Petrov", Email: "ana.petrov@example.com"},
	}

	statuses := []entities.ReservationStatus{
		entities.StatusPending,
		entities.StatusConfirmed,
		entities.StatusActive,
		entities.StatusCompleted,
		entities.StatusCancelled,
	}

	base := time.Now().UTC().Truncate(time.Hour).Add(-72 * time.Hour)
	bookable := make([]entities.ParkingSpace, 0, len(m.spaces))
	for _, s := range m.spaces {
		if s.Status != entities.SpaceMaintenance {
			bookable = append(bookable, s)
		}
	}

	for i := 0; i < 25; i++ {
		space := bookable[i%len(bookable)]
		lot := m.findLot(space.LotID)
		checkIn := base.Add(time.Duration(i*6) * time.Hour)
		checkOut := checkIn.Add(time.Duration(2+i%4) * time.Hour)

		res := entities.Reservation{
			ID:               fmt.Sprintf("r-%03d", i+1),
			UserID:           m.users[i%len(m.users)].ID,
			LotID:            space.LotID,
			SpaceID:          space.ID,
			CheckInDateTime:  checkIn,
			CheckOutDateTime: checkOut,
			Status:           statuses[i%len(statuses)],
			CreatedAt:        checkIn.Add(-24 * time.Hour),
			UpdatedAt:        checkIn.Add(-24 * time.Hour),
		}
		res.TotalCost = res.DurationHours() * lot.PricePerHour
		if i == 7 {
			res.SpecialRequirements = "EV charger close to the exit"
		}
		m.reservations = append(m.reservations, res)

		if live := m.findSpace(space.ID); live != nil {
			switch res.Status {
			case entities.StatusPending, entities.StatusConfirmed:
				live.Status = entities.SpaceReserved
			case entities.StatusActive:
				live.Status = entities.SpaceOccupied
			}
		}
	}

	// Derive the availability counters from the final space states.
	for i := range m.lots {
		available := 0
		for _, s := range m.spaces {
			if s.LotID == m.lots[i].ID && s.Status == entities.SpaceAvailable {
				available++
			}
		}
		m.lots[i].AvailableSpaces = available
	}
	return m
}
