package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var output string

var rootCmd = &cobra.Command{
	Use:   "tonal",
	Short: "Music theory calculator",
	Long: `tonal spells notes, intervals, chords and scales.

Notes are written like C#5 or Bb4, intervals like M3 or P5 and chords like
Cm7 or F#dim. Expressions combine them: "Bb4 + M3", "D5 - Bb4".`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
