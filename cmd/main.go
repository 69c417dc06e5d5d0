package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "travel-booking",
		Short:         "SMC-TravelBooking: бронирование туров, впечатлений и услуг",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "путь к TOML конфигурации")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		migrateCmd(&configPath),
		quoteCmd(),
		rateTableCmd(),
	)

	return rootCmd
}
