// Package command provides the parkdesk CLI, the stand-in for the
// reservation table UI: it drives the query pipeline over the seeded
// in-memory store and issues create/update/delete commands through the
// form controller.
//
//	parkdesk list --search lucia --status ACTIVE --sort checkInDateTime --dir desc
//	parkdesk reserve --user u-01 --lot l-01 --space s-02 --check-in ... --check-out ...
//	parkdesk update r-003 --status CONFIRMED
//	parkdesk cancel r-004
//	parkdesk columns --toggle totalCost
//	parkdesk sweep --every "@every 1m"
package command

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"parkdesk/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "parkdesk",
	Short:         "Parking reservation admin desk over a simulated backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI, exiting non-zero on failure.
func Execute() {
	godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(
		newListCmd(),
		newReserveCmd(),
		newUpdateCmd(),
		newCancelCmd(),
		newLotsCmd(),
		newUsersCmd(),
		newColumnsCmd(),
		newSweepCmd(),
	)
}

// newStore builds the seeded store with the configured simulated
// latency. Every CLI invocation starts from the same seed, the way the
// mock backend reloads with the page.
func newStore() *store.Memory {
	return store.Seeded(envLatency())
}

func envLatency() time.Duration {
	ms := envInt("PARKDESK_LATENCY_MS", 300)
	return time.Duration(ms) * time.Millisecond
}

func envPageSize() int {
	return envInt("PARKDESK_PAGE_SIZE", 10)
}

func envPrefsFile() string {
	if path := os.Getenv("PARKDESK_PREFS_FILE"); path != "" {
		return path
	}
	return ".parkdesk-columns.json"
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return n
}
