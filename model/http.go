package model

type NoteResult struct {
	Notation string `json:"notation" yaml:"notation"`
	Pitch    int    `json:"pitch" yaml:"pitch"`
}

type IntervalResult struct {
	Notation   string `json:"notation" yaml:"notation"`
	Semitones  int    `json:"semitones" yaml:"semitones"`
	Perfect    bool   `json:"perfect" yaml:"perfect"`
	Augmented  string `json:"augmented,omitempty" yaml:"augmented,omitempty"`
	Diminished string `json:"diminished,omitempty" yaml:"diminished,omitempty"`
}

type ToneResult struct {
	Degree     int `json:"degree" yaml:"degree"`
	NoteResult `yaml:",inline"`
}

type ChordResult struct {
	Symbol    string       `json:"symbol" yaml:"symbol"`
	Root      string       `json:"root" yaml:"root"`
	Qualities []string     `json:"qualities" yaml:"qualities"`
	Key       string       `json:"key" yaml:"key"`
	Tones     []ToneResult `json:"tones" yaml:"tones"`
}

type DegreeResult struct {
	Scale             string       `json:"scale" yaml:"scale"`
	Degree            int          `json:"degree" yaml:"degree"`
	Note              NoteResult   `json:"note" yaml:"note"`
	Diatonic          []NoteResult `json:"diatonic" yaml:"diatonic"`
	PrimaryTensions   []NoteResult `json:"primary_tensions" yaml:"primary_tensions"`
	SecondaryTensions []NoteResult `json:"secondary_tensions" yaml:"secondary_tensions"`
	SecondaryDominant *ChordResult `json:"secondary_dominant,omitempty" yaml:"secondary_dominant,omitempty"`
}

type EvalRequestBody struct {
	Expr string `json:"expr"`
}

type EvalResult struct {
	Expr   string `json:"expr" yaml:"expr"`
	Kind   string `json:"kind" yaml:"kind"`
	Result string `json:"result" yaml:"result"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
