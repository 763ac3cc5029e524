package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/quotientpow/internal/config"
	"github.com/abhisek/quotientpow/internal/logging"
	"github.com/abhisek/quotientpow/internal/store"
)

var (
	// cfg is the effective configuration, set before any command runs.
	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "quotientpow",
	Short: "Practice the power of a quotient rule",
	Long: "quotientpow — terminal exercise for (a/b)ⁿ = aⁿ/bⁿ.\n\n" +
		"Apply the power to numerator and denominator, then evaluate both powers.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

// Execute runs the root command. The log file is closed on every path,
// including commands that fail.
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides "+config.EnvDB+")")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("variant", "", "Exercise variant: single or paged (overrides "+config.EnvVariant+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env, the config file and flags, then installs the logger.
// Flags win over the environment, which wins over the file.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		c.DBPath = p
	}
	if v, _ := cmd.Flags().GetString("variant"); v != "" {
		c.Variant = v
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	closer, err := logging.Setup(c.Log.File, c.LogLevel())
	if err != nil {
		return err
	}
	cfg = c
	logCloser = closer

	slog.Debug("configuration loaded", "command", cmd.Name(), "db", c.DBPath, "variant", c.Variant)
	return nil
}

func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close log:", err)
	}
	logCloser = nil
}

// openStore opens the attempt log at the configured path.
func openStore() (*store.Store, error) {
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create DB dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
