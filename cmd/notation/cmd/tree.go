package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/notation/pkg/notation/grammar"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <infix-expression>",
	Short: "Strictly parse an infix expression and show its tree renderings",
	Long: `Parse an infix expression with a strict grammar. Unlike convert, malformed
input (unbalanced parentheses, dangling operators, unknown symbols) is
reported as an error with its position.

The parsed tree is printed fully parenthesised, in postfix, in prefix and as
an S-expression, which is read back to check it is well formed.

With no arguments the expression is read from standard input.

Examples:
  notation tree "A+B*C"
  notation tree "(A-B)^C^D"
  echo "A*(B+C)" | notation tree`,
	Args: cobra.ArbitraryArgs,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	parser, err := grammar.NewParser()
	if err != nil {
		return err
	}

	var expr *grammar.Expression
	if len(args) == 0 {
		debugf("reading expression from stdin")
		expr, err = parser.Parse(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("invalid expression on stdin: %w", err)
		}
	} else {
		input := strings.Join(args, " ")
		expr, err = parser.ParseString(input)
		if err != nil {
			return fmt.Errorf("invalid expression %q: %w", input, err)
		}
	}

	node, err := grammar.Tree(expr)
	if err != nil {
		return err
	}

	info, err := grammar.ValidateSexp(node)
	if err != nil {
		return err
	}
	debugf("sexp read back as %d expression(s), leaf=%v, leaves=%d", info.Expressions, info.Leaf, info.LeafCount)

	fmt.Print(grammar.Describe(node))
	fmt.Printf("operands: %s\n", strings.Join(node.Operands(), " "))
	return nil
}
