package cmd

import (
	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/spf13/cobra"
)

var chordOctave int

func init() {
	chordCmd.Flags().IntVar(&chordOctave, "octave", 5, "octave of the root (default from TONAL_DEFAULT_OCTAVE)")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>",
	Short: "Spells a chord symbol",
	Long:  `Spells a chord symbol such as Cm7, F#dim or Bbsus4 upwards from its root.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		octave := chordOctave
		if !cmd.Flags().Changed("octave") {
			octave = constants.GetDefaultOctave()
		}
		c, err := chord.Build(args[0], octave)
		if err != nil {
			return err
		}
		res := chordResult(c)
		return render(cmd.OutOrStdout(), output, res, chordText(res))
	},
}
