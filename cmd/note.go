package cmd

import (
	"fmt"

	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/note"
	"github.com/spf13/cobra"
)

var (
	noteTranspose   []string
	noteOctaveShift int
)

func init() {
	noteCmd.Flags().StringSliceVarP(&noteTranspose, "transpose", "t", nil, "intervals to transpose by, applied in order")
	noteCmd.Flags().IntVar(&noteOctaveShift, "octave-shift", 0, "octaves to shift by")
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <notation>",
	Short: "Shows a note and its pitch number",
	Long:  `Shows a note and its pitch number, optionally transposed by intervals or octaves.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		for _, notation := range noteTranspose {
			i, err := interval.Parse(notation)
			if err != nil {
				return err
			}
			n = n.Transpose(i)
		}
		n = n.AddOctave(noteOctaveShift)

		res := noteResult(n)
		return render(cmd.OutOrStdout(), output, res, fmt.Sprintf("%v (pitch %v)", res.Notation, res.Pitch))
	},
}
