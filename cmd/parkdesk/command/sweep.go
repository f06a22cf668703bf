package command

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"parkdesk/internal/service"
)

func newSweepCmd() *cobra.Command {
	var every string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Advance reservation statuses past their check-in/check-out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, every)
		},
	}
	cmd.Flags().StringVar(&every, "every", "", `cron schedule to keep sweeping (e.g. "@every 1m"); empty runs once`)
	return cmd
}

func runSweep(cmd *cobra.Command, every string) error {
	sweeper := service.NewSweeper(newStore())

	if every == "" {
		return sweeper.Run(cmd.Context())
	}

	c, err := sweeper.Schedule(every)
	if err != nil {
		return err
	}
	c.Start()
	defer c.Stop()
	log.Printf("Sweeping on schedule %q, Ctrl-C to stop", every)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-cmd.Context().Done():
	}
	return nil
}
