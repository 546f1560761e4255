// Package cmd provides the CLI entry point for habitd.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kjellner/habitd/internal/config"
	"github.com/kjellner/habitd/internal/habit"
	"github.com/kjellner/habitd/internal/storage"
	"github.com/kjellner/habitd/internal/update"
)

// Version info (set at build time via ldflags).
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	cfgFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "habitd",
	Short: "A keyboard-driven daily habit tracker",
	Long: `habitd is a terminal habit tracker. One screen shows the activities
of a single day next to a heat-map of one activity's history; digits toggle
completions and nothing is written to disk until you save.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database file (default: <user config dir>/habitd/habitd.db)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("habitd {{.Version}} (%s)\n", GitCommit))
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Startup is fail-fast: a database that exists but cannot be opened,
	// migrated, or read means the session never starts.
	repo, err := storage.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	catalog, err := habit.LoadCatalog(ctx, repo)
	if err != nil {
		return err
	}
	log, err := habit.LoadLog(ctx, repo)
	if err != nil {
		return err
	}

	m, err := update.NewModel(catalog, log, update.Options{
		DefaultActivityName: cfg.Tracker.DefaultActivity,
		HeatmapWeeks:        cfg.Heatmap.Weeks,
		HeatmapFilledColor:  cfg.Heatmap.FilledColor,
		HeatmapEmptyColor:   cfg.Heatmap.EmptyColor,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
