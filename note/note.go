package note

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
)

const letters = "CDEFGAB"

// MaxOctave is the highest octave a note may carry.
const MaxOctave = 1000

var referencePitch = map[byte]int{'C': 12, 'D': 14, 'E': 16, 'F': 17, 'G': 19, 'A': 21, 'B': 23}

var notationRe = regexp.MustCompile(`^([A-G])([#xb]*)([0-9]*)$`)

// Note is a spelled pitch: a letter, an accidental offset in semitones and an
// optional octave. A note without an octave stands for a pitch class and is
// treated as octave 0 in arithmetic.
type Note struct {
	letter    byte
	semitones int
	octave    int
	hasOctave bool
}

func validLetter(letter byte) bool {
	return strings.IndexByte(letters, letter) >= 0
}

// New returns a note with an octave.
func New(letter byte, semitones, octave int) (Note, error) {
	if !validLetter(letter) {
		return Note{}, &model.ParseError{Kind: "note", Input: string(letter), Reason: "letter must be one of A-G"}
	}
	if octave < 0 || octave > MaxOctave {
		return Note{}, &model.ParseError{Kind: "note", Input: strconv.Itoa(octave), Reason: fmt.Sprintf("octave must be between 0 and %d", MaxOctave)}
	}
	return Note{letter: letter, semitones: semitones, octave: octave, hasOctave: true}, nil
}

// NewPitchClass returns a note without an octave.
func NewPitchClass(letter byte, semitones int) (Note, error) {
	n, err := New(letter, semitones, 0)
	if err != nil {
		return Note{}, err
	}
	n.hasOctave = false
	return n, nil
}

// Parse reads notation such as "C#5", "Bb4", "Fbb" or "Ex5".
func Parse(notation string) (Note, error) {
	m := notationRe.FindStringSubmatch(notation)
	if m == nil {
		return Note{}, &model.ParseError{Kind: "note", Input: notation, Reason: "expected a letter A-G, accidentals (#, x, b) and an optional octave"}
	}
	n := Note{
		letter:    m[1][0],
		semitones: CountAccidentals(m[2]),
	}
	if m[3] != "" {
		if len(m[3]) > 1 && m[3][0] == '0' {
			return Note{}, &model.ParseError{Kind: "note", Input: notation, Reason: "octave has a leading zero"}
		}
		octave, err := strconv.Atoi(m[3])
		if err != nil {
			return Note{}, &model.ParseError{Kind: "note", Input: notation, Reason: err.Error()}
		}
		if octave > MaxOctave {
			return Note{}, &model.ParseError{Kind: "note", Input: notation, Reason: fmt.Sprintf("octave must be at most %d", MaxOctave)}
		}
		n.octave = octave
		n.hasOctave = true
	}
	return n, nil
}

func MustParse(notation string) Note {
	n, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return n
}

// CountAccidentals returns the net semitone offset of a run of accidental
// glyphs: one per '#', two per 'x', minus one per 'b'.
func CountAccidentals(s string) int {
	return strings.Count(s, "#") + 2*strings.Count(s, "x") - strings.Count(s, "b")
}

func (n Note) Letter() string {
	return string(n.letter)
}

func (n Note) Semitones() int {
	return n.semitones
}

// Octave returns the octave and whether the note has one.
func (n Note) Octave() (int, bool) {
	return n.octave, n.hasOctave
}

func (n Note) HasOctave() bool {
	return n.hasOctave
}

func (n Note) Sharp() Note {
	n.semitones++
	return n
}

func (n Note) Flat() Note {
	n.semitones--
	return n
}

// AddOctave shifts the octave by delta. Pitch classes have no octave to
// shift and are returned unchanged.
func (n Note) AddOctave(delta int) Note {
	if !n.hasOctave {
		return n
	}
	n.octave += delta
	return n
}

func (n Note) WithOctave(octave int) Note {
	n.octave = octave
	n.hasOctave = true
	return n
}

func (n Note) WithoutOctave() Note {
	n.octave = 0
	n.hasOctave = false
	return n
}

func (n Note) WithSemitones(semitones int) Note {
	n.semitones = semitones
	return n
}

// PitchNumber is the absolute pitch height; C4 is 60.
func (n Note) PitchNumber() int {
	return referencePitch[n.letter] + n.semitones + 12*n.octave
}

// diatonicIndex counts letter steps from C0.
func (n Note) diatonicIndex() int {
	return strings.IndexByte(letters, n.letter) + 7*n.octave
}

// IntervalFrom returns the interval from base up to n. base must not lie
// above n diatonically.
func (n Note) IntervalFrom(base Note) (interval.Interval, error) {
	number := n.diatonicIndex() - base.diatonicIndex() + 1
	if number < 1 {
		return interval.Interval{}, &model.InvalidQualityError{
			Number: number,
			Reason: base.String() + " lies above " + n.String(),
		}
	}
	halfSteps := (number-1)*2 - (n.PitchNumber() - base.PitchNumber())
	q, err := interval.QualityFromHalfSteps(number, halfSteps)
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(number, q)
}

// IntervalTo returns the interval from n up to top.
func (n Note) IntervalTo(top Note) (interval.Interval, error) {
	return top.IntervalFrom(n)
}

// Transpose moves n up by i. The letter follows diatonic stacking and the
// accidental is chosen so the pitch is exactly i.Semitones() above n. A pitch
// class stays a pitch class, folded back into octave 0.
func (n Note) Transpose(i interval.Interval) Note {
	idx := n.diatonicIndex() + i.Number() - 1
	octave := floorDiv(idx, 7)
	neutral := Note{letter: letters[idx-7*octave], octave: octave, hasOctave: n.hasOctave}
	neutral.semitones = i.Semitones() - (neutral.PitchNumber() - n.PitchNumber())
	if !n.hasOctave {
		neutral.octave = 0
	}
	return neutral
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Equal compares pitch only, so enharmonic spellings are equal.
func (n Note) Equal(o Note) bool {
	return n.PitchNumber() == o.PitchNumber()
}

func (n Note) Compare(o Note) int {
	a, b := n.PitchNumber(), o.PitchNumber()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (n Note) Less(o Note) bool {
	return n.PitchNumber() < o.PitchNumber()
}

// AccidentalGlyphs renders a semitone offset: "#" or "" followed by "x" per
// double sharp for raised notes, "b" repeated for lowered ones.
func AccidentalGlyphs(semitones int) string {
	if semitones < 0 {
		return strings.Repeat("b", -semitones)
	}
	var res string
	if semitones%2 == 1 {
		res = "#"
	}
	return res + strings.Repeat("x", semitones/2)
}

func (n Note) String() string {
	if n.letter == 0 {
		return ""
	}
	s := string(n.letter) + AccidentalGlyphs(n.semitones)
	if n.hasOctave {
		s += strconv.Itoa(n.octave)
	}
	return s
}
