package scale

import (
	"fmt"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/note"
)

type Quality string

const (
	Major Quality = "major"
	Minor Quality = "minor"
)

func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case Major, Minor:
		return Quality(s), nil
	}
	return "", &model.ParseError{Kind: "scale quality", Input: s, Reason: "expected major or minor"}
}

var fifth = interval.MustParse("P5")

func mustParseAll(notations ...string) []interval.Interval {
	res := make([]interval.Interval, 0, len(notations))
	for _, n := range notations {
		res = append(res, interval.MustParse(n))
	}
	return res
}

// degreeIntervals maps degrees 1..7 to the interval above the tonic.
var degreeIntervals = map[Quality]map[int]interval.Interval{
	Major: {
		1: interval.MustParse("P1"),
		2: interval.MustParse("M2"),
		3: interval.MustParse("M3"),
		4: interval.MustParse("P4"),
		5: interval.MustParse("P5"),
		6: interval.MustParse("M6"),
		7: interval.MustParse("M7"),
	},
	Minor: {
		1: interval.MustParse("P1"),
		2: interval.MustParse("M2"),
		3: interval.MustParse("m3"),
		4: interval.MustParse("P4"),
		5: interval.MustParse("P5"),
		6: interval.MustParse("m6"),
		7: interval.MustParse("m7"),
	},
}

var primaryTensions = map[Quality]map[int][]interval.Interval{
	Major: {
		1: mustParseAll("M9", "M13"),
		2: mustParseAll("M9", "P11"),
		3: mustParseAll("P11"),
		4: mustParseAll("M9", "A11", "M13"),
		5: mustParseAll("M9", "M13"),
		6: mustParseAll("M9", "P11"),
		7: mustParseAll("P11", "m13"),
	},
	Minor: {
		1: mustParseAll("M9", "M13"),
		2: mustParseAll("P11", "m13"),
		3: mustParseAll("M9", "M13"),
		4: mustParseAll("M9", "P11", "M13"),
		5: mustParseAll("m9", "A9", "m13"),
		6: mustParseAll("M9", "A9", "M13"),
		7: mustParseAll("M9", "M13"),
	},
}

var secondaryTensions = map[Quality]map[int][]interval.Interval{
	Major: {
		1: mustParseAll("A11"),
		2: {},
		3: mustParseAll("M9"),
		4: {},
		5: mustParseAll("m9", "A9", "A11", "m13"),
		6: mustParseAll("M13"),
		7: {},
	},
	Minor: {
		1: mustParseAll("M13"),
		2: {},
		3: mustParseAll("A11"),
		4: {},
		5: mustParseAll("M9", "A11"),
		6: {},
		7: {},
	},
}

// Scale is a major or minor scale on a tonic. Degrees are 1-based and may run
// past 7 into higher octaves.
type Scale struct {
	tonic   note.Note
	quality Quality
}

func New(tonic note.Note, quality Quality) (Scale, error) {
	if _, err := ParseQuality(string(quality)); err != nil {
		return Scale{}, err
	}
	return Scale{tonic: tonic, quality: quality}, nil
}

func (s Scale) Tonic() note.Note {
	return s.tonic
}

func (s Scale) Quality() Quality {
	return s.quality
}

func (s Scale) String() string {
	return fmt.Sprintf("%v %v", s.tonic, s.quality)
}

func checkDegree(number int) error {
	if number < 1 {
		return &model.InvalidQualityError{Number: number, Reason: "scale degrees start at 1"}
	}
	if number > interval.MaxNumber {
		return &model.InvalidQualityError{Number: number, Reason: fmt.Sprintf("scale degrees stop at %d", interval.MaxNumber)}
	}
	return nil
}

// Note returns the given degree of the scale.
func (s Scale) Note(number int) (note.Note, error) {
	return s.NoteAs(number, s.quality)
}

// NoteAs returns the degree as it would be in a scale of the given quality
// on the same tonic.
func (s Scale) NoteAs(number int, quality Quality) (note.Note, error) {
	if err := checkDegree(number); err != nil {
		return note.Note{}, err
	}
	intervals, ok := degreeIntervals[quality]
	if !ok {
		return note.Note{}, &model.ParseError{Kind: "scale quality", Input: string(quality), Reason: "expected major or minor"}
	}
	n := s.tonic
	if k := (number - 1) / 7; k > 0 {
		compound, err := interval.New(7*k+1, interval.Perfect)
		if err != nil {
			return note.Note{}, err
		}
		n = n.Transpose(compound)
		number -= 7 * k
	}
	return n.Transpose(intervals[number]), nil
}

func (s Scale) notes(numbers ...int) ([]note.Note, error) {
	res := make([]note.Note, 0, len(numbers))
	for _, number := range numbers {
		n, err := s.Note(number)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// Diatonic stacks thirds on the degree: root, third and fifth, plus the
// seventh when seventh is set.
func (s Scale) Diatonic(number int, seventh bool) ([]note.Note, error) {
	if seventh {
		return s.notes(number, number+2, number+4, number+6)
	}
	return s.notes(number, number+2, number+4)
}

// SecondaryDominant builds the dominant seventh chord a fifth above the
// degree. Each step of extend moves the root up another fifth, giving the
// dominant of the dominant and so on. The chord is spelled from the root in
// the default octave, whatever octave the tonic is in.
func (s Scale) SecondaryDominant(number, extend int) (chord.Chord, error) {
	return s.SecondaryDominantIn(number, extend, constants.GetDefaultOctave())
}

// SecondaryDominantIn is SecondaryDominant with the root placed in octave.
func (s Scale) SecondaryDominantIn(number, extend, octave int) (chord.Chord, error) {
	if extend < 0 {
		return chord.Chord{}, &model.InvalidQualityError{Number: number, Reason: fmt.Sprintf("extend must not be negative, got %d", extend)}
	}
	base, err := s.Note(number)
	if err != nil {
		return chord.Chord{}, err
	}
	root := base.Transpose(fifth)
	for i := 0; i < extend; i++ {
		root = root.Transpose(fifth)
	}
	return chord.FromRoot(root.WithOctave(octave), "7")
}

func (s Scale) tensions(table map[Quality]map[int][]interval.Interval, number int) ([]note.Note, error) {
	base, err := s.Note(number)
	if err != nil {
		return nil, err
	}
	intervals := table[s.quality][((number-1)%7)+1]
	res := make([]note.Note, 0, len(intervals))
	for _, i := range intervals {
		res = append(res, base.Transpose(i))
	}
	return res, nil
}

// PrimaryTensions returns the primary available tension notes over the
// chord on the degree.
func (s Scale) PrimaryTensions(number int) ([]note.Note, error) {
	return s.tensions(primaryTensions, number)
}

func (s Scale) SecondaryTensions(number int) ([]note.Note, error) {
	return s.tensions(secondaryTensions, number)
}

// Tensions returns the primary tensions followed by the secondary ones.
func (s Scale) Tensions(number int) ([]note.Note, error) {
	primary, err := s.PrimaryTensions(number)
	if err != nil {
		return nil, err
	}
	secondary, err := s.SecondaryTensions(number)
	if err != nil {
		return nil, err
	}
	return append(primary, secondary...), nil
}
