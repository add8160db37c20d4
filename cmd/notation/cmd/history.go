package cmd

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/notation/pkg/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect previously recorded computations",
	Long: `Every convert and eval run is recorded (unless --no-history is given) with
its operation, input, result and full trace.

Examples:
  notation history list
  notation history show 3 --steps
  notation history replay 3
  notation history clear`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded computations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded computation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyReplayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded computation with its full trace",
	Long: `Print a recorded computation step by step exactly as it was recorded.
Nothing is recomputed.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryReplay,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded computations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyReplayCmd)
	historyCmd.AddCommand(historyClearCmd)

	addOutputFlags(historyShowCmd)
	addOutputFlags(historyReplayCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	repo, err := openHistory()
	if err != nil {
		return err
	}
	records, err := repo.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No history recorded")
		return nil
	}

	fmt.Printf("%-4s %-20s %-16s %-20s %s\n", "ID", "Time", "Operation", "Input", "Result")
	for _, rec := range records {
		fmt.Printf("%-4d %-20s %-16s %-20s %s\n",
			rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Operation, rec.Input, rec.Result)
	}
	return nil
}

func lookupRecord(arg string) (history.Record, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return history.Record{}, fmt.Errorf("invalid history id %q: %w", arg, err)
	}
	repo, err := openHistory()
	if err != nil {
		return history.Record{}, err
	}
	return repo.Get(id)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	rec, err := lookupRecord(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Record:    #%d (%s)\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05"))
	return printRecord(rec, showSteps)
}

func runHistoryReplay(cmd *cobra.Command, args []string) error {
	rec, err := lookupRecord(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Replaying #%d\n", rec.ID)
	return printRecord(history.Replay(rec), true)
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	repo, err := openHistory()
	if err != nil {
		return err
	}
	if err := repo.Clear(); err != nil {
		return err
	}
	fmt.Println("History cleared")
	return nil
}
