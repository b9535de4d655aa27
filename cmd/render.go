package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/tonal/calc"
	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/note"
	"github.com/jsphweid/tonal/scale"
	"github.com/jsphweid/tonal/util"
	"gopkg.in/yaml.v3"
)

func noteResult(n note.Note) model.NoteResult {
	return model.NoteResult{Notation: n.String(), Pitch: n.PitchNumber()}
}

func noteResults(notes []note.Note) []model.NoteResult {
	return util.Map(notes, noteResult)
}

func intervalResult(i interval.Interval) model.IntervalResult {
	res := model.IntervalResult{
		Notation:  i.String(),
		Semitones: i.Semitones(),
		Perfect:   i.IsPerfect(),
	}
	if up, err := i.Augment(); err == nil {
		res.Augmented = up.String()
	}
	if down, err := i.Diminish(); err == nil {
		res.Diminished = down.String()
	}
	return res
}

func chordResult(c chord.Chord) model.ChordResult {
	res := model.ChordResult{
		Symbol:    c.Symbol,
		Root:      c.Root.String(),
		Qualities: util.Map(c.Qualities, func(q chord.Quality) string { return string(q) }),
		Key:       c.Key(),
	}
	for _, t := range c.Tones {
		res.Tones = append(res.Tones, model.ToneResult{Degree: t.Degree, NoteResult: noteResult(t.Note)})
	}
	return res
}

func degreeResult(s scale.Scale, number int, seventh bool, extend, octave int) (model.DegreeResult, error) {
	n, err := s.Note(number)
	if err != nil {
		return model.DegreeResult{}, err
	}
	diatonic, err := s.Diatonic(number, seventh)
	if err != nil {
		return model.DegreeResult{}, err
	}
	primary, err := s.PrimaryTensions(number)
	if err != nil {
		return model.DegreeResult{}, err
	}
	secondary, err := s.SecondaryTensions(number)
	if err != nil {
		return model.DegreeResult{}, err
	}
	dominant, err := s.SecondaryDominantIn(number, extend, octave)
	if err != nil {
		return model.DegreeResult{}, err
	}
	dominantResult := chordResult(dominant)
	return model.DegreeResult{
		Scale:             s.String(),
		Degree:            number,
		Note:              noteResult(n),
		Diatonic:          noteResults(diatonic),
		PrimaryTensions:   noteResults(primary),
		SecondaryTensions: noteResults(secondary),
		SecondaryDominant: &dominantResult,
	}, nil
}

func evalResult(expr string, v calc.Value) model.EvalResult {
	return model.EvalResult{Expr: expr, Kind: calc.Kind(v), Result: v.String()}
}

func notations(notes []model.NoteResult) string {
	return strings.Join(util.Map(notes, func(n model.NoteResult) string { return n.Notation }), " ")
}

func chordText(c model.ChordResult) string {
	var parts []string
	for _, t := range c.Tones {
		parts = append(parts, fmt.Sprintf("%v:%v", t.Degree, t.Notation))
	}
	return fmt.Sprintf("%v [%v] key %v", c.Symbol, strings.Join(parts, " "), c.Key)
}

func degreeText(d model.DegreeResult) string {
	lines := []string{
		fmt.Sprintf("%v, degree %v: %v", d.Scale, d.Degree, d.Note.Notation),
		"diatonic: " + notations(d.Diatonic),
		"primary tensions: " + notations(d.PrimaryTensions),
		"secondary tensions: " + notations(d.SecondaryTensions),
	}
	if d.SecondaryDominant != nil {
		lines = append(lines, "secondary dominant: "+chordText(*d.SecondaryDominant))
	}
	return strings.Join(lines, "\n")
}

// render writes v in the selected output format, or text for "text".
func render(w io.Writer, format string, v any, text string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "text", "":
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
