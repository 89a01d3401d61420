// Package cli implements the dayboard CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dayboard/internal/config"
	"dayboard/internal/engine"
	"dayboard/internal/model"
	"dayboard/internal/session"
)

var (
	dbPath     string
	cfgPath    string
	formatFlag string
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger zerolog.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "dayboard",
	Short: "Daily staff scheduling on a 15-minute grid",
	Long: "dayboard lays out one day of typed staff tasks on a fixed 15-minute grid.\n" +
		"Placing a task trims, splits, or drops whatever it lands on, then merges\n" +
		"adjacent same-kind blocks. Tour and school-program blocks never merge.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load(configPath())
		if err != nil {
			exitErr("load config", err)
		}
		if noColor || cfg.NoColor {
			color.NoColor = true
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Schedule database path (default: $DAYBOARD_DB or ~/.dayboard/schedule.db)")
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.dayboard/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors in grid output")
}

func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.DefaultPath()
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("DAYBOARD_DB"); env != "" {
		return env
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dayboard", "schedule.db")
}

func openSession() (*session.Session, error) {
	return session.Open(getDBPath())
}

// loadEngine seeds a fresh engine store from the session snapshot.
func loadEngine(ctx context.Context, s *session.Session) (*engine.Engine, error) {
	roster, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	st := engine.NewStore(s.NewID)
	st.Seed(tasks)
	return engine.New(st, roster, logger), nil
}

// saveEmployee writes one employee's engine state back to the session.
func saveEmployee(ctx context.Context, s *session.Session, eng *engine.Engine, employeeID string) {
	if err := s.ReplaceEmployeeTasks(ctx, employeeID, eng.TasksByEmployee(employeeID)); err != nil {
		exitErr("save schedule", err)
	}
}

func parseKind(arg string) model.Kind {
	k := model.Kind(arg)
	if !k.Valid() {
		exitErr("kind", fmt.Errorf("unknown kind %q (valid: %v)", arg, model.Kinds))
	}
	return k
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
