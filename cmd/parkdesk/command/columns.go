package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"parkdesk/internal/prefs"
)

func newColumnsCmd() *cobra.Command {
	var toggle string
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show or toggle the persisted reservation-table columns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runColumns(cmd, toggle)
		},
	}
	cmd.Flags().StringVar(&toggle, "toggle", "", "column to show/hide")
	return cmd
}

func runColumns(cmd *cobra.Command, toggle string) error {
	path := envPrefsFile()
	columns := prefs.Load(path)

	if toggle != "" {
		if err := columns.Toggle(toggle); err != nil {
			return err
		}
		if err := columns.Save(path); err != nil {
			return err
		}
	}

	for _, name := range prefs.KnownColumns {
		mark := " "
		if columns.Visible[name] {
			mark = "x"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", mark, name)
	}
	return nil
}
