// Package cmd implements the wishplan CLI commands.
package cmd

import (
	"fmt"
	"os"

	"wishplan/internal/config"
	"wishplan/internal/model"
	"wishplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "wishplan",
	Short: "Wishlist savings planner",
	Long:  "Plan monthly savings toward the things you want: record income and fixed costs, list wishlist items, and split the leftover cash across them by priority.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "State file path (default "+store.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// loadConfig returns the config, falling back to defaults when the
// file is unreadable. Commands that only render never fail on config.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  config error, using defaults: %v\n", err)
	}
	return cfg
}

// dataFilePath resolves the state file location: flag, then config,
// then the XDG default.
func dataFilePath(cfg config.Config) string {
	if flagDataFile != "" {
		return flagDataFile
	}
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile
	}
	return store.DefaultPath()
}

// openStore is the shared state access path used by all commands.
func openStore() (*store.Store, config.Config) {
	cfg := loadConfig()
	return store.New(dataFilePath(cfg)), cfg
}

// loadState loads and normalizes the persisted state. A missing file
// is a normal first run; a malformed one is a hard error.
func loadState(s *store.Store) (*model.AppState, error) {
	st, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("loading planner state: %w", err)
	}
	return st, nil
}

// mirrorToArchive appends a committed transaction to the SQLite
// archive. The archive is derived data, so failures only warn: the
// JSON log stays authoritative and the archive resyncs on next read.
func mirrorToArchive(s *store.Store, tx model.Transaction) {
	arch, err := store.OpenArchive(store.ArchivePath(s.Path()))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  archive unavailable: %v\n", err)
		}
		return
	}
	defer arch.Close()

	if err := arch.Append(tx); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  archive append failed: %v\n", err)
	}
}
