package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/util"
)

type Quality string

const (
	Major        Quality = "major"
	Minor        Quality = "minor"
	Augmented    Quality = "augmented"
	Diminished   Quality = "diminished"
	Sus2         Quality = "sus2"
	Sus4         Quality = "sus4"
	FlatFive     Quality = "b5"
	Seventh      Quality = "7"
	MajorSeventh Quality = "7major"
)

var symbolMap = map[string]Quality{
	"m":    Minor,
	"min":  Minor,
	"-":    Minor,
	"M":    Major,
	"Ma":   Major,
	"Maj":  Major,
	"maj":  Major,
	"+":    Augmented,
	"aug":  Augmented,
	"o":    Diminished,
	"dim":  Diminished,
	"sus2": Sus2,
	"sus4": Sus4,
	"b5":   FlatFive,
	"7":    Seventh,
	"M7":   MajorSeventh,
	"maj7": MajorSeventh,
	"dom":  Seventh,
}

// symbols holds the keys of symbolMap, longest first, so "maj7" is tried
// before "maj" and "m".
var symbols = func() []string {
	res := util.GetKeysSorted(symbolMap)
	sort.SliceStable(res, func(i, j int) bool {
		return len(res[i]) > len(res[j])
	})
	return res
}()

var (
	majorThird     = interval.MustParse("M3")
	minorThird     = interval.MustParse("m3")
	perfectFifth   = interval.MustParse("P5")
	augmentedFifth = interval.MustParse("A5")
	dimFifth       = interval.MustParse("d5")
	minorSeventh   = interval.MustParse("m7")
	majorSeventh   = interval.MustParse("M7")
	majorSecond    = interval.MustParse("M2")
	perfectFourth  = interval.MustParse("P4")
)

// Tone is a chord member and the scale degree it sits on relative to the root.
type Tone struct {
	Degree int
	Note   note.Note
}

type Chord struct {
	Symbol    string
	Root      note.Note
	Qualities []Quality
	Tones     []Tone
}

// Build parses a chord symbol such as "Cm7", "F#dim" or "Bbsus4" and spells
// it upwards from the root placed in the given octave.
func Build(symbol string, octave int) (Chord, error) {
	root, suffix, err := splitRoot(symbol)
	if err != nil {
		return Chord{}, err
	}
	c, err := FromRoot(root.WithOctave(octave), suffix)
	if err != nil {
		return Chord{}, err
	}
	c.Symbol = symbol
	return c, nil
}

// FromRoot spells the chord described by suffix on top of root.
func FromRoot(root note.Note, suffix string) (Chord, error) {
	qualities, err := ParseQualities(suffix)
	if err != nil {
		return Chord{}, err
	}
	tones := make(map[int]note.Note)
	tones[1] = root

	has := make(map[Quality]bool)
	for _, q := range qualities {
		has[q] = true
	}

	if has[Major] || (!has[Minor] && !has[Augmented] && !has[Diminished]) {
		tones[3] = root.Transpose(majorThird)
		tones[5] = root.Transpose(perfectFifth)
	}
	if has[Minor] {
		tones[3] = root.Transpose(minorThird)
		tones[5] = root.Transpose(perfectFifth)
	}
	if has[Augmented] {
		tones[3] = root.Transpose(majorThird)
		tones[5] = root.Transpose(augmentedFifth)
	}
	if has[Diminished] {
		tones[3] = root.Transpose(minorThird)
		tones[5] = root.Transpose(dimFifth)
	}
	if has[Seventh] {
		tones[7] = root.Transpose(minorSeventh)
	}
	if has[MajorSeventh] {
		tones[7] = root.Transpose(majorSeventh)
	}
	if has[FlatFive] {
		tones[5] = root.Transpose(dimFifth)
	}
	if has[Sus2] {
		delete(tones, 3)
		tones[2] = root.Transpose(majorSecond)
	}
	if has[Sus4] {
		delete(tones, 3)
		tones[4] = root.Transpose(perfectFourth)
	}

	c := Chord{Symbol: root.WithoutOctave().String() + suffix, Root: root, Qualities: qualities}
	for _, degree := range util.GetKeysSorted(tones) {
		c.Tones = append(c.Tones, Tone{Degree: degree, Note: tones[degree]})
	}
	return c, nil
}

// ParseQualities scans a chord suffix left to right, taking the longest
// matching token at each position. The result is deduplicated and sorted.
func ParseQualities(suffix string) ([]Quality, error) {
	set := make(map[Quality]bool)
	rest := suffix
ScanLoop:
	for rest != "" {
		for _, sym := range symbols {
			if strings.HasPrefix(rest, sym) {
				set[symbolMap[sym]] = true
				rest = rest[len(sym):]
				continue ScanLoop
			}
		}
		return nil, &model.ParseError{
			Kind:   "chord",
			Input:  suffix,
			Reason: fmt.Sprintf("unrecognized token at %q", rest),
		}
	}
	return util.GetKeysSorted(set), nil
}

// splitRoot separates the root note from the quality suffix. A flat directly
// followed by "5" belongs to the "b5" token, so "Cb5" is C with a flat fifth
// and "Cbb5" is C flat with a flat fifth.
func splitRoot(symbol string) (note.Note, string, error) {
	if symbol == "" {
		return note.Note{}, "", &model.ParseError{Kind: "chord", Input: symbol, Reason: "empty symbol"}
	}
	end := 1
	for end < len(symbol) && strings.IndexByte("#xb", symbol[end]) >= 0 {
		end++
	}
	if end > 1 && symbol[end-1] == 'b' && end < len(symbol) && symbol[end] == '5' {
		end--
	}
	root, err := note.Parse(symbol[:end])
	if err != nil {
		return note.Note{}, "", &model.ParseError{Kind: "chord", Input: symbol, Reason: "invalid root"}
	}
	return root, symbol[end:], nil
}

func (c Chord) Notes() []note.Note {
	return util.Map(c.Tones, func(t Tone) note.Note { return t.Note })
}

// Key identifies the sounding pitches: pitch numbers ascending, joined by "-".
func (c Chord) Key() string {
	pitches := util.Map(c.Tones, func(t Tone) int { return t.Note.PitchNumber() })
	return CreateChordKey(pitches)
}

// CreateChordKey joins the pitches in ascending order. pitches is not modified.
func CreateChordKey(pitches []int) string {
	sorted := append([]int(nil), pitches...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, p := range sorted {
		res += fmt.Sprintf("%v", p)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

func (c Chord) String() string {
	names := util.Map(c.Notes(), note.Note.String)
	return c.Symbol + " [" + strings.Join(names, " ") + "]"
}
