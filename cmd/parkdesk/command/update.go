package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"parkdesk/internal/entities"
)

type updateFlags struct {
	user     string
	lot      string
	space    string
	checkIn  string
	checkOut string
	status   string
	notes    string
}

func newUpdateCmd() *cobra.Command {
	var flags updateFlags
	cmd := &cobra.Command{
		Use:   "update <reservation-id>",
		Short: "Edit an existing reservation through the edit form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.user, "user", "", "new user id")
	cmd.Flags().StringVar(&flags.lot, "lot", "", "new lot id (clears a space outside it)")
	cmd.Flags().StringVar(&flags.space, "space", "", "new space id")
	cmd.Flags().StringVar(&flags.checkIn, "check-in", "", "new check-in time, RFC 3339")
	cmd.Flags().StringVar(&flags.checkOut, "check-out", "", "new check-out time, RFC 3339")
	cmd.Flags().StringVar(&flags.status, "status", "", "new status")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "new special requirements")
	return cmd
}

func runUpdate(cmd *cobra.Command, id string, flags updateFlags) error {
	ctx := cmd.Context()
	st := newStore()

	existing, err := st.GetReservation(ctx, id)
	if err != nil {
		return err
	}
	ctrl, err := newFormController(cmd, st)
	if err != nil {
		return err
	}
	ctrl.Load(existing)

	if flags.user != "" {
		ctrl.SetUser(flags.user)
	}
	if flags.lot != "" {
		ctrl.SetLot(flags.lot)
	}
	if flags.space != "" {
		ctrl.SetSpace(flags.space)
	}
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
	if flags.status != "" {
		ctrl.SetStatus(entities.ReservationStatus(flags.status))
	}
	if cmd.Flags().Changed("notes") {
		ctrl.SetSpecialRequirements(flags.notes)
	}

	res, fieldErrs, err := ctrl.Submit(ctx, st)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		printFieldErrors(cmd, fieldErrs)
		return fmt.Errorf("reservation not updated")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated reservation %s (%s), total cost %.2f\n", res.ID, res.Status, res.TotalCost)
	return nil
}
