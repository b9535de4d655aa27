package cmd

import (
	"strings"

	"github.com/jsphweid/tonal/calc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(evalCmd)
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluates note and interval arithmetic",
	Long: `Evaluates note and interval arithmetic, for example:

  tonal eval "Bb4 + M3"    # D5
  tonal eval "D5 - Bb4"    # M3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := strings.Join(args, " ")
		v, err := calc.Eval(expr)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), output, evalResult(expr, v), v.String())
	},
}
