package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/OpenTraceLab/notation/pkg/history"
	"github.com/OpenTraceLab/notation/pkg/notation"
	"github.com/spf13/cobra"
)

// Output flags shared by convert, eval and history show
var (
	showSteps    bool
	outputFormat string
	stepIndex    int
)

var convertCmd = &cobra.Command{
	Use:   "convert <operation> <expression>",
	Short: "Run one of the eight conversion or evaluation operations",
	Long: `Run an operation on an expression and print the result.

Operations:
  infixToPostfix, infixToPrefix, postfixToInfix, postfixToPrefix,
  prefixToInfix, prefixToPostfix, evaluatePostfix, evaluatePrefix

Names are case-insensitive and may be written with dashes (infix-to-postfix).
Whitespace in the expression is ignored, so it may span several arguments.

Examples:
  notation convert infixToPostfix "A+B*C"
  notation convert postfix-to-infix ABC*+ --steps
  notation convert infixToPrefix "(A+B)*C" --step 0
  notation convert evaluatePostfix 234*+ --format yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

var evalCmd = &cobra.Command{
	Use:   "eval <postfix|prefix> <expression>",
	Short: "Evaluate a postfix or prefix expression of single-digit operands",
	Long: `Evaluate a postfix or prefix expression. Each digit is a separate operand,
so "12+" is 1 + 2.

Examples:
  notation eval postfix "234*+"      # 14
  notation eval prefix "+2*34" -s    # 14 with the trace
  notation eval prefix -- "-82"      # 6; "--" stops flag parsing`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the supported operations",
	Args:  cobra.NoArgs,
	RunE:  runOps,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(opsCmd)

	for _, c := range []*cobra.Command{convertCmd, evalCmd} {
		addOutputFlags(c)
	}
}

func addOutputFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&showSteps, "steps", "s", false,
		"print the full trace")
	c.Flags().StringVarP(&outputFormat, "format", "f", "text",
		"output format (text, yaml, json)")
	c.Flags().IntVar(&stepIndex, "step", -1,
		"print only the trace entry with this index")
}

func runConvert(cmd *cobra.Command, args []string) error {
	op, err := notation.ParseOperation(args[0])
	if err != nil {
		return err
	}
	return compute(op, strings.Join(args[1:], " "))
}

func runEval(cmd *cobra.Command, args []string) error {
	var op notation.Operation
	switch strings.ToLower(args[0]) {
	case "postfix":
		op = notation.OpEvaluatePostfix
	case "prefix":
		op = notation.OpEvaluatePrefix
	default:
		return fmt.Errorf("unknown notation %q (expected postfix or prefix)", args[0])
	}
	return compute(op, strings.Join(args[1:], " "))
}

func runOps(cmd *cobra.Command, args []string) error {
	for _, op := range notation.Operations() {
		fmt.Printf("%-16s %s -> %s\n", op, op.Source(), op.Target())
	}
	return nil
}

// compute runs op, records it in the history and prints it.
func compute(op notation.Operation, expr string) error {
	debugf("running %s on %q", op, expr)

	out, err := notation.Run(op, expr)
	if err != nil {
		return err
	}
	rec := history.NewRecord(out, time.Now().UTC())

	if !noHistory {
		repo, err := openHistory()
		if err != nil {
			return err
		}
		saved, err := repo.Add(rec)
		if err != nil {
			// The result is still valid; only the history write failed.
			logger.Printf("warning: failed to record history: %v", err)
		} else {
			rec = saved
			debugf("recorded as #%d", rec.ID)
		}
	}

	return printRecord(rec, showSteps)
}
