package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/notation/pkg/history"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	historyPath string
	noHistory   bool
	historyMax  int
)

// logger carries verbose diagnostics to stderr; results go to stdout.
var logger = log.New(os.Stderr, "notation: ", 0)

var rootCmd = &cobra.Command{
	Use:   "notation",
	Short: "Infix, postfix and prefix conversion with step-by-step traces",
	Long: `Convert arithmetic expressions between infix, postfix (reverse Polish) and
prefix (Polish) notation, evaluate postfix and prefix expressions, and show
every stack mutation along the way.

Operands are single letters or digits; operators are + - * / ^.

Examples:
  notation convert infixToPostfix "A+B*C"        # ABC*+
  notation convert infix-to-prefix "(A+B)*C" -s  # *+ABC with the trace
  notation eval postfix "234*+"                  # 14
  notation tree "A^B^C"                          # strict parse and tree renderings
  notation history list                          # previous computations`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "",
		"history file (default $NOTATION_HISTORY or <config dir>/notation/history.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false,
		"do not record computations")
	rootCmd.PersistentFlags().IntVar(&historyMax, "history-size", history.DefaultMaxRecords,
		"maximum number of records kept in the history")
}

func debugf(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}

// resolveHistoryPath picks the history file from the flag, the environment or
// the user config directory, in that order.
func resolveHistoryPath() (string, error) {
	if historyPath != "" {
		return historyPath, nil
	}
	if env := os.Getenv("NOTATION_HISTORY"); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "notation", "history.yaml"), nil
}

func openHistory() (history.Repository, error) {
	path, err := resolveHistoryPath()
	if err != nil {
		return nil, err
	}
	debugf("using history file %s", path)
	return history.NewFileRepository(path, historyMax), nil
}
