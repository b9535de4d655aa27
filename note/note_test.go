package note

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intervalCases = []struct {
	top      string
	base     string
	interval string
}{
	{"D5", "Bb4", "M3"},
	{"D#6", "F5", "A6"},
	{"D6", "E5", "m7"},
	{"Fb5", "Ab4", "m6"},
	{"G6", "A#5", "d7"},
	{"Ab5", "D#5", "dd5"},
}

func TestEquality(t *testing.T) {
	cases := []struct {
		a, b  string
		equal bool
	}{
		{"C#5", "Db5", true},
		{"D#5", "Eb5", true},
		{"B#4", "C5", true},
		{"C5", "C6", false},
		{"C#5", "C5", false},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%v == %v", c.a, c.b)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.equal, MustParse(c.a).Equal(MustParse(c.b)))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, notation := range []string{"Bb4", "C#5", "C#x5", "Ex5", "Fbb4", "Abbb0", "G", "F#"} {
		t.Run(notation, func(t *testing.T) {
			assert.Equal(t, notation, MustParse(notation).String())
		})
	}
}

func TestParseCountsMixedAccidentals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, MustParse("C#b4").Semitones())
	assert.Equal(3, MustParse("Cx#4").Semitones())
	assert.Equal(3, MustParse("C#x4").Semitones())
	assert.Equal(-1, MustParse("Cb#b4").Semitones())
}

func TestParseRejectsMalformedNotation(t *testing.T) {
	for _, notation := range []string{"", "H4", "c4", "C4#", "Cs4", "C-1", "#C4", "C 4", "C05", "C1001", "C99999999999999999999"} {
		t.Run(notation, func(t *testing.T) {
			_, err := Parse(notation)
			var pe *model.ParseError
			assert.True(t, errors.As(err, &pe), "got %v", err)
		})
	}
}

func TestOctaveBound(t *testing.T) {
	n, err := Parse("C1000")
	require.NoError(t, err)
	assert.Equal(t, 12+12*MaxOctave, n.PitchNumber())

	var pe *model.ParseError
	_, err = New('C', 0, MaxOctave+1)
	assert.True(t, errors.As(err, &pe), "got %v", err)
}

func TestPitchNumber(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, MustParse("C4").PitchNumber())
	assert.Equal(69, MustParse("A4").PitchNumber())
	assert.Equal(70, MustParse("Bb4").PitchNumber())
	assert.Equal(12, MustParse("C0").PitchNumber())
	assert.Equal(18, MustParse("Abbb0").PitchNumber())
	assert.Equal(19, MustParse("G").PitchNumber())
}

func TestOrdering(t *testing.T) {
	assert := assert.New(t)
	assert.True(MustParse("C5").Less(MustParse("C#5")))
	assert.False(MustParse("Db5").Less(MustParse("C#5")))
	assert.Equal(0, MustParse("Db5").Compare(MustParse("C#5")))
	assert.Equal(1, MustParse("E5").Compare(MustParse("Fb4")))
	assert.Equal(-1, MustParse("Bb3").Compare(MustParse("Cb4")))
}

func TestTransformations(t *testing.T) {
	assert := assert.New(t)
	n := MustParse("Eb4")
	assert.Equal("E4", n.Sharp().String())
	assert.Equal("Ebb4", n.Flat().String())
	assert.Equal("Eb6", n.AddOctave(2).String())
	assert.Equal("Eb", n.WithoutOctave().String())
	assert.Equal("Eb2", n.WithoutOctave().WithOctave(2).String())
	assert.Equal("Ex4", n.WithSemitones(2).String())

	// the receiver is unchanged
	assert.Equal("Eb4", n.String())
}

func TestIntervalFrom(t *testing.T) {
	for _, c := range intervalCases {
		name := fmt.Sprintf("%v - %v", c.top, c.base)
		t.Run(name, func(t *testing.T) {
			i, err := MustParse(c.top).IntervalFrom(MustParse(c.base))
			require.NoError(t, err)
			assert.Equal(t, c.interval, i.String())

			j, err := MustParse(c.base).IntervalTo(MustParse(c.top))
			require.NoError(t, err)
			assert.Equal(t, c.interval, j.String())
		})
	}
}

func TestIntervalFromRejectsReversedOperands(t *testing.T) {
	_, err := MustParse("Bb4").IntervalFrom(MustParse("D5"))
	var qe *model.InvalidQualityError
	assert.True(t, errors.As(err, &qe), "got %v", err)
}

func TestIntervalFromUnison(t *testing.T) {
	i, err := MustParse("C5").IntervalFrom(MustParse("C5"))
	require.NoError(t, err)
	assert.Equal(t, "P1", i.String())

	i, err = MustParse("C#5").IntervalFrom(MustParse("C5"))
	require.NoError(t, err)
	assert.Equal(t, "A1", i.String())
}

func TestTranspose(t *testing.T) {
	for _, c := range intervalCases {
		name := fmt.Sprintf("%v + %v", c.base, c.interval)
		t.Run(name, func(t *testing.T) {
			res := MustParse(c.base).Transpose(interval.MustParse(c.interval))
			assert.Equal(t, c.top, res.String())
			assert.True(t, res.Equal(MustParse(c.top)))
		})
	}
}

func TestTransposeCompound(t *testing.T) {
	assert := assert.New(t)
	c5 := MustParse("C5")
	assert.Equal("D6", c5.Transpose(interval.MustParse("M9")).String())
	assert.Equal("F#6", c5.Transpose(interval.MustParse("A11")).String())
	assert.Equal("A6", c5.Transpose(interval.MustParse("M13")).String())
	assert.Equal("C6", c5.Transpose(interval.MustParse("P8")).String())
	assert.Equal("Db6", c5.Transpose(interval.MustParse("m9")).String())
}

func TestTransposeKeepsPitchClass(t *testing.T) {
	res := MustParse("F#").Transpose(interval.MustParse("P5"))
	assert.Equal(t, "C#", res.String())
	assert.False(t, res.HasOctave())
}

func TestPitchClassArithmeticStaysInOctaveZero(t *testing.T) {
	assert := assert.New(t)

	res := MustParse("B").Transpose(interval.MustParse("M2"))
	assert.Equal("C#", res.String())
	assert.Equal(13, res.PitchNumber())
	assert.True(res.Equal(MustParse("C#")))
	i, err := res.IntervalFrom(MustParse("C#"))
	assert.NoError(err)
	assert.Equal("P1", i.String())

	res = MustParse("A").Transpose(interval.MustParse("M13"))
	assert.Equal("F#", res.String())
	assert.True(res.Equal(MustParse("F#")))

	shifted := MustParse("E").AddOctave(2)
	assert.Equal("E", shifted.String())
	assert.True(shifted.Equal(MustParse("E")))
}

func TestIntervalRoundTrip(t *testing.T) {
	notes := []string{"C4", "Bb4", "F#5", "Abb3", "Ex5", "D#6", "G2"}
	for _, a := range notes {
		for _, b := range notes {
			top, base := MustParse(a), MustParse(b)
			if top.diatonicIndex() < base.diatonicIndex() {
				continue
			}
			i, err := top.IntervalFrom(base)
			if err != nil {
				// qualities beyond doubly augmented/diminished have no spelling
				var qe *model.InvalidQualityError
				require.True(t, errors.As(err, &qe))
				continue
			}
			assert.Equal(t, top.PitchNumber(), base.Transpose(i).PitchNumber(), "%v - %v = %v", a, b, i)
		}
	}
}
