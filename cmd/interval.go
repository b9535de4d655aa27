package cmd

import (
	"fmt"

	"github.com/jsphweid/tonal/interval"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <notation>",
	Short: "Shows the size of an interval",
	Long:  `Shows the size of an interval in semitones and its augmented and diminished neighbours.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := interval.Parse(args[0])
		if err != nil {
			return err
		}
		res := intervalResult(i)
		text := fmt.Sprintf("%v: %v semitones", res.Notation, res.Semitones)
		return render(cmd.OutOrStdout(), output, res, text)
	},
}
