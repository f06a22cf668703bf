package entities

// SpaceStatus is the occupancy state of a single parking space. It is
// derived state: the store recomputes it as reservations are created,
// updated and deleted.
type SpaceStatus string

const (
	SpaceAvailable   SpaceStatus = "AVAILABLE"
	SpaceReserved    SpaceStatus = "RESERVED"
	SpaceOccupied    SpaceStatus = "OCCUPIED"
	SpaceMaintenance SpaceStatus = "MAINTENANCE"
)

type ParkingLot struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	PricePerHour    float64 `json:"price_per_hour"`
	TotalSpaces     int     `json:"total_spaces"`
	AvailableSpaces int     `json:"available_spaces"`
}

type ParkingSpace struct {
	ID     string      `json:"id"`
	LotID  string      `json:"lot_id"`
	Number string      `json:"number"`
	Status SpaceStatus `json:"status"`
}
