package cmd

import (
	"fmt"

	"wishplan/internal/config"

	"github.com/spf13/cobra"
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

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    State file:      %s\n", dataFilePath(cfg))
	fmt.Printf("    Currency suffix: %s\n", cfg.General.CurrencySuffix)
	fmt.Println()

	fmt.Println("  [Planner]")
	fmt.Printf("    Default target:   %d\n", cfg.Planner.DefaultTarget)
	fmt.Printf("    Default months:   %d\n", cfg.Planner.DefaultMonths)
	fmt.Printf("    Default priority: %d\n", cfg.Planner.DefaultPriority)
	fmt.Println()

	fmt.Println("  [Recommend]")
	fmt.Printf("    Saving preset: %d\n", cfg.Recommend.SavingPreset)
	fmt.Printf("    Saving pct:    %.0f%%\n", cfg.Recommend.SavingPct*100)
	fmt.Printf("    Emergency pct: %.0f%%\n", cfg.Recommend.EmergencyPct*100)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Edit %s to change these.\n", config.Path())
	return nil
}
