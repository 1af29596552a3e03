// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/config"
	"github.com/SeamusWaldron/cubesim/internal/logging"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "Rubik's cube simulator",
	Long: `cubesim - a 3x3 Rubik's cube simulator.

Turn faces with standard notation, generate scrambles, solve them by
replaying the inverse, and keep a history of every scramble in SQLite.
The cube is saved between invocations, so commands can be chained:

  cubesim scramble
  cubesim move R U R' U'
  cubesim state`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubesim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// newLogger returns a debug logger on stderr with --verbose. Otherwise
// one-shot commands stay quiet and long-running ones use the configured mode.
func newLogger(w io.Writer, cfg *config.Config, longRunning bool) *slog.Logger {
	if verbose {
		return logging.New(logging.ModeDev, w)
	}
	if !longRunning {
		return logging.New(logging.ModeSilence, w)
	}
	mode, err := logging.ParseMode(cfg.LogMode)
	if err != nil {
		mode = logging.ModeDev
	}
	return logging.New(mode, w)
}

// workspace is the state shared by commands that touch the saved cube.
type workspace struct {
	cfg *config.Config
	log *slog.Logger
	db  *storage.DB
	rec *recorder.Recorder
}

func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg, false)

	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	stateFile, err := recorder.NewStateFile(cfg.StatePath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	rec, err := recorder.New(db, stateFile, log, cubesim.WithScrambleLength(cfg.ScrambleLength))
	if err != nil {
		db.Close()
		return nil, err
	}
	rec.SetScrambleLength(cfg.ScrambleLength)

	return &workspace{cfg: cfg, log: log, db: db, rec: rec}, nil
}

func (w *workspace) Close() error {
	return w.db.Close()
}
