package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/OpenTraceLab/notation/pkg/explain"
	"github.com/OpenTraceLab/notation/pkg/history"
	"github.com/OpenTraceLab/notation/pkg/notation"
	"github.com/spf13/cobra"
)

var (
	explainMaxSteps int
	explainTimeout  time.Duration
)

var explainCmd = &cobra.Command{
	Use:   "explain <operation> <expression>",
	Short: "Run an operation and explain the result in plain language",
	Long: `Run an operation, print its result, then describe how the result was reached
by walking the trace.

Examples:
  notation explain infixToPostfix "A+B*C"
  notation explain evaluatePrefix "+2*34" --max-steps 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().IntVar(&explainMaxSteps, "max-steps", 0,
		"narrate at most this many steps (0 for all)")
	explainCmd.Flags().DurationVar(&explainTimeout, "timeout", 10*time.Second,
		"give up on the explanation after this long")
}

func runExplain(cmd *cobra.Command, args []string) error {
	op, err := notation.ParseOperation(args[0])
	if err != nil {
		return err
	}
	expr := strings.Join(args[1:], " ")

	out, err := notation.Run(op, expr)
	if err != nil {
		return err
	}
	rec := history.NewRecord(out, time.Now().UTC())
	fmt.Printf("Result: %s\n\n", rec.Result)

	ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
	defer cancel()

	explainer := explain.Chain(&explain.Narrator{MaxSteps: explainMaxSteps})
	text, err := explainer.Explain(ctx, explain.RequestFromRecord(rec))
	if err != nil {
		if explain.IsRecoverable(err) {
			// The result above stands; only the explanation is missing.
			logger.Printf("explanation unavailable: %v", err)
			return nil
		}
		return err
	}
	fmt.Print(text)
	return nil
}
