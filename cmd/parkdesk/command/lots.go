package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLotsCmd() *cobra.Command {
	var withSpaces bool
	cmd := &cobra.Command{
		Use:   "lots",
		Short: "List parking lots and their availability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLots(cmd, withSpaces)
		},
	}
	cmd.Flags().BoolVar(&withSpaces, "spaces", false, "also list each lot's spaces")
	return cmd
}

func runLots(cmd *cobra.Command, withSpaces bool) error {
	ctx := cmd.Context()
	st := newStore()

	lots, err := st.ListParkingLots(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tname\tcity\tprice/h\tavailable")
	for _, lot := range lots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d/%d\n",
			lot.ID, lot.Name, lot.City, lot.PricePerHour, lot.AvailableSpaces, lot.TotalSpaces)
	}
	w.Flush()

	if !withSpaces {
		return nil
	}
	for _, lot := range lots {
		spaces, err := st.ListSpaces(ctx, lot.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", lot.Name)
		for _, s := range spaces {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  %s\n", s.ID, s.Number, s.Status)
		}
	}
	return nil
}
