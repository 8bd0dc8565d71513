// Package cli implements the tpcgen command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tpcgen/internal/dataset"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "tpcgen",
		Short: "Generate TPC benchmark datasets as Parquet + Hive DDL",
		Long: "tpcgen drives embedded DuckDB to generate the TPC-H and TPC-DS benchmark\n" +
			"datasets, exports every table to Parquet, and emits the Hive DDL and loader\n" +
			"script for the warehouse side.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLogLevel(logLevel),
			}))
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCmd(dataset.TPCH))
	rootCmd.AddCommand(newGenerateCmd(dataset.TPCDS))

	return rootCmd
}

// parseLogLevel maps a level name to an slog.Level. Unknown names fall
// back to info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
