// Package cmd implements the orca CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuriloHTS/orca/internal/config"
	"github.com/MuriloHTS/orca/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultCompany != "" {
		fmt.Printf("    Default company: %s\n", cfg.General.DefaultCompany)
	} else {
		fmt.Println("    Default company: not set")
	}
	if cfg.General.DefaultYear != 0 {
		fmt.Printf("    Default year:    %d\n", cfg.General.DefaultYear)
	} else {
		fmt.Println("    Default year:    current year")
	}
	fmt.Printf("    Database:        %s\n", dbPath())
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:  %s\n", config.DaemonAddr(cfg))
	fmt.Printf("    Interval: %ds\n", cfg.Daemon.IntervalSeconds)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Data directory: %s\n", store.DataDir())
	fmt.Println("  Run `orca setup` to reconfigure.")
	return nil
}
