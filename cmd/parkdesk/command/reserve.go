package command

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"parkdesk/internal/entities"
	"parkdesk/internal/form"
	"parkdesk/internal/store"
)

type reserveFlags struct {
	user     string
	lot      string
	space    string
	checkIn  string
	checkOut string
	notes    string
}

func newReserveCmd() *cobra.Command {
	var flags reserveFlags
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Create a reservation through the edit form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReserve(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.user, "user", "", "user id")
	cmd.Flags().StringVar(&flags.lot, "lot", "", "lot id")
	cmd.Flags().StringVar(&flags.space, "space", "", "space id (must belong to the lot)")
	cmd.Flags().StringVar(&flags.checkIn, "check-in", "", "check-in time, RFC 3339")
	cmd.Flags().StringVar(&flags.checkOut, "check-out", "", "check-out time, RFC 3339")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "special requirements")
	return cmd
}

func runReserve(cmd *cobra.Command, flags reserveFlags) error {
	ctx := cmd.Context()
	st := newStore()

	ctrl, err := newFormController(cmd, st)
	if err != nil {
		return err
	}
	ctrl.SetUser(flags.user)
	ctrl.SetLot(flags.lot)
	ctrl.SetSpace(flags.space)
	if flags.checkIn != "" {
		t, err := time.Parse(time.RFC3339, flags.checkIn)
		if err != nil {
			return fmt.Errorf("parsing --check-in: %w", err)
		}
		ctrl.SetCheckIn(t)
	}
	if flags.checkOut != "" {
		t, err := time.Parse(time.RFC3339, flags.checkOut)
		if err != nil {
			return fmt.Errorf("parsing --check-out: %w", err)
		}
		ctrl.SetCheckOut(t)
	}
	ctrl.SetSpecialRequirements(flags.notes)

	res, fieldErrs, err := ctrl.Submit(ctx, st)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		printFieldErrors(cmd, fieldErrs)
		return fmt.Errorf("reservation not created")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created reservation %s (%s), total cost %.2f\n", res.ID, res.Status, res.TotalCost)
	return nil
}

// newFormController pulls the lot and space reference data the form
// needs for pricing and space choices.
func newFormController(cmd *cobra.Command, st *store.Memory) (*form.Controller, error) {
	ctx := cmd.Context()
	lots, err := st.ListParkingLots(ctx)
	if err != nil {
		return nil, err
	}
	var spaces []entities.ParkingSpace
	for _, lot := range lots {
		lotSpaces, err := st.ListSpaces(ctx, lot.ID)
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, lotSpaces...)
	}
	return form.NewController(lots, spaces), nil
}

func printFieldErrors(cmd *cobra.Command, errs form.FieldErrors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, errs[field])
	}
}
