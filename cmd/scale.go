package cmd

import (
	"strconv"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/scale"
	"github.com/spf13/cobra"
)

var (
	scaleSeventh bool
	scaleExtend  int
)

func init() {
	scaleCmd.Flags().BoolVar(&scaleSeventh, "seventh", false, "include the seventh in the diatonic chord")
	scaleCmd.Flags().IntVar(&scaleExtend, "extend", 0, "extra fifths to climb before building the secondary dominant")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic> <major|minor> <degree>",
	Short: "Describes a scale degree",
	Long: `Describes a scale degree: its note, diatonic chord, available tension notes
and secondary dominant.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tonic, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		quality, err := scale.ParseQuality(args[1])
		if err != nil {
			return err
		}
		number, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		s, err := scale.New(tonic, quality)
		if err != nil {
			return err
		}
		res, err := degreeResult(s, number, scaleSeventh, scaleExtend, constants.GetDefaultOctave())
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), output, res, degreeText(res))
	},
}
