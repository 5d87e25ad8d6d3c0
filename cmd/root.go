package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/karimsaad/wasel_backend/cmd/http"
	systemcmd "github.com/karimsaad/wasel_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "wasel",
	Short: "Wasel courier and shipment management backend.",
	Long: `Wasel is the backend for a last-mile courier operation. It tracks
shipments through their lifecycle, keeps client and courier wallets as
append-only ledgers, and handles courier assignment and payouts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
