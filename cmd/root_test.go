package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jsphweid/tonal/model"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args, resetting flag state left
// over from earlier runs.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	output = "text"
	noteTranspose = nil
	noteOctaveShift = 0
	chordOctave = 5
	scaleSeventh = false
	scaleExtend = 0
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestNoteCommand(t *testing.T) {
	out, err := runCommand(t, "note", "C#5", "-t", "M3")
	require.NoError(t, err)
	assert.Equal(t, "E#5 (pitch 77)\n", out)

	out, err = runCommand(t, "note", "Bb4", "--octave-shift=-1")
	require.NoError(t, err)
	assert.Equal(t, "Bb3 (pitch 58)\n", out)
}

func TestIntervalCommandJSON(t *testing.T) {
	out, err := runCommand(t, "interval", "m7", "-o", "json")
	require.NoError(t, err)

	var res model.IntervalResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.IntervalResult{Notation: "m7", Semitones: 10, Augmented: "M7", Diminished: "d7"}, res)
}

func TestChordCommand(t *testing.T) {
	out, err := runCommand(t, "chord", "Cdim7", "--octave", "5")
	require.NoError(t, err)
	assert.Equal(t, "Cdim7 [1:C5 3:Eb5 5:Gb5 7:Bb5] key 72-75-78-82\n", out)

	out, err = runCommand(t, "chord", "Cm7", "--octave", "4", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "key: 60-63-67-70")
	assert.Contains(t, out, "notation: Eb4")
}

func TestChordCommandUsesDefaultOctave(t *testing.T) {
	t.Setenv("TONAL_DEFAULT_OCTAVE", "3")
	out, err := runCommand(t, "chord", "C")
	require.NoError(t, err)
	assert.Equal(t, "C [1:C3 3:E3 5:G3] key 48-52-55\n", out)
}

func TestScaleCommand(t *testing.T) {
	t.Setenv("TONAL_DEFAULT_OCTAVE", "")
	out, err := runCommand(t, "scale", "C5", "major", "5")
	require.NoError(t, err)
	assert.Equal(t, `C5 major, degree 5: G5
diatonic: G5 B5 D6
primary tensions: A6 E7
secondary tensions: Ab6 A#6 C#7 Eb7
secondary dominant: D7 [1:D5 3:F#5 5:A5 7:C6] key 74-78-81-84
`, out)
}

func TestEvalCommand(t *testing.T) {
	out, err := runCommand(t, "eval", "D5 - Bb4")
	require.NoError(t, err)
	assert.Equal(t, "M3\n", out)

	out, err = runCommand(t, "eval", "Bb4", "+", "M3")
	require.NoError(t, err)
	assert.Equal(t, "D5\n", out)
}

func TestCommandErrors(t *testing.T) {
	cases := [][]string{
		{"note", "H2"},
		{"interval", "P3"},
		{"chord", "Cfoo"},
		{"scale", "C5", "lydian", "1"},
		{"scale", "C5", "major", "one"},
		{"eval", "C4 + C5"},
		{"note", "C4", "-o", "xml"},
	}
	for _, args := range cases {
		_, err := runCommand(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
