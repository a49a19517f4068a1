package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"news-reader/app/config"
	"news-reader/app/utils/logger"
)

var (
	verbose bool
	steps   int

	cfg       *config.Config
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the saved-article store schema",
	Long: `migrate prepares the configured saved-article store.

For STORE_BACKEND=postgres it applies the embedded SQL migrations.
For STORE_BACKEND=mongo it maintains the collection indexes, including
the unique index on url.

Examples:
  migrate up                 # apply pending migrations / create indexes
  migrate down --steps 2     # roll back two migrations / drop indexes
  migrate status             # show what is applied`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close(cmd.Context())
		return store.Up(cmd.Context())
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if steps <= 0 {
			steps = 1
		}
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close(cmd.Context())
		return store.Down(cmd.Context(), steps)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close(cmd.Context())
		return store.Status(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	rootCmd.AddCommand(upCmd, downCmd, statusCmd)
}

func initConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logLevel := cfg.LogLevel
	if verbose {
		logLevel = "debug"
	}
	appLogger, err = logger.New(logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("migrate failed", "error", err)
		stop()
		os.Exit(1)
	}
}
