package interval

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jsphweid/tonal/model"
)

type Quality string

// MaxNumber is the largest degree an interval may have.
const MaxNumber = 1000

const (
	DoublyDiminished Quality = "dd"
	Diminished       Quality = "d"
	Minor            Quality = "m"
	Major            Quality = "M"
	Perfect          Quality = "P"
	Augmented        Quality = "A"
	DoublyAugmented  Quality = "AA"
)

// Interval is a diatonic interval: a 1-based degree (1 = unison, 8 = octave)
// and a quality. The zero value is not a valid interval.
type Interval struct {
	number  int
	quality Quality
}

var notationRe = regexp.MustCompile(`^([A-Za-z]*)([0-9]+)$`)

var (
	perfectOrder = []Quality{DoublyDiminished, Diminished, Perfect, Augmented, DoublyAugmented}
	majorOrder   = []Quality{DoublyDiminished, Diminished, Minor, Major, Augmented, DoublyAugmented}
)

var baseSemitones = map[int]int{1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11}

// qualityByHalfSteps maps a reduced degree and the half-step count
// (degree-1)*2 - semitones back to a quality.
var qualityByHalfSteps = map[int]map[int]Quality{
	1: {-2: DoublyAugmented, -1: Augmented, 0: Perfect, 1: Diminished, 2: DoublyDiminished},
	2: {-2: DoublyAugmented, -1: Augmented, 0: Major, 1: Minor, 2: Diminished, 3: DoublyDiminished},
	3: {-2: DoublyAugmented, -1: Augmented, 0: Major, 1: Minor, 2: Diminished, 3: DoublyDiminished},
	4: {-1: DoublyAugmented, 0: Augmented, 1: Perfect, 2: Diminished, 3: DoublyDiminished},
	5: {-1: DoublyAugmented, 0: Augmented, 1: Perfect, 2: Diminished, 3: DoublyDiminished},
	6: {-1: DoublyAugmented, 0: Augmented, 1: Major, 2: Minor, 3: Diminished, 4: DoublyDiminished},
	7: {-1: DoublyAugmented, 0: Augmented, 1: Major, 2: Minor, 3: Diminished, 4: DoublyDiminished},
}

func isKnownQuality(q Quality) bool {
	switch q {
	case DoublyDiminished, Diminished, Minor, Major, Perfect, Augmented, DoublyAugmented:
		return true
	}
	return false
}

// octaves splits a degree into whole octaves and a remaining degree 1..7.
func octaves(number int) (int, int) {
	k := (number - 1) / 7
	return k, number - 7*k
}

func reduce(number int) int {
	return ((number - 1) % 7) + 1
}

func isPerfectDegree(number int) bool {
	r := reduce(number)
	return r == 1 || r == 4 || r == 5
}

func order(number int) []Quality {
	if isPerfectDegree(number) {
		return perfectOrder
	}
	return majorOrder
}

func indexOf(qs []Quality, q Quality) int {
	for i, v := range qs {
		if v == q {
			return i
		}
	}
	return -1
}

// New validates number and quality and returns the interval.
func New(number int, quality Quality) (Interval, error) {
	if number < 1 {
		return Interval{}, &model.InvalidQualityError{Number: number, Reason: "degree must be at least 1"}
	}
	if number > MaxNumber {
		return Interval{}, &model.InvalidQualityError{Number: number, Reason: fmt.Sprintf("degree must be at most %d", MaxNumber)}
	}
	if indexOf(order(number), quality) < 0 {
		category := "major"
		if isPerfectDegree(number) {
			category = "perfect"
		}
		return Interval{}, &model.InvalidQualityError{
			Number:  number,
			Quality: string(quality),
			Reason:  "not admissible for a " + category + "-category degree",
		}
	}
	return Interval{number: number, quality: quality}, nil
}

// Parse reads notation such as "M3", "P5" or "AA4".
func Parse(notation string) (Interval, error) {
	m := notationRe.FindStringSubmatch(notation)
	if m == nil {
		return Interval{}, &model.ParseError{Kind: "interval", Input: notation, Reason: "expected a quality followed by a degree"}
	}
	q := Quality(m[1])
	if !isKnownQuality(q) {
		return Interval{}, &model.ParseError{Kind: "interval", Input: notation, Reason: fmt.Sprintf("unknown quality %q", m[1])}
	}
	if len(m[2]) > 1 && m[2][0] == '0' {
		return Interval{}, &model.ParseError{Kind: "interval", Input: notation, Reason: "degree has a leading zero"}
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return Interval{}, &model.ParseError{Kind: "interval", Input: notation, Reason: err.Error()}
	}
	return New(number, q)
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(notation string) Interval {
	i, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval) Number() int {
	return i.number
}

func (i Interval) Quality() Quality {
	return i.quality
}

func (i Interval) IsPerfect() bool {
	return isPerfectDegree(i.number)
}

// Semitones returns the size of the interval in half steps.
func (i Interval) Semitones() int {
	k, number := octaves(i.number)
	semitones := 12*k + baseSemitones[number]

	if isPerfectDegree(number) {
		semitones += indexOf(perfectOrder, i.quality) - 2
	} else {
		semitones += indexOf(majorOrder, i.quality) - 3
	}
	return semitones
}

func (i Interval) step(delta int) (Interval, error) {
	qs := order(i.number)
	idx := indexOf(qs, i.quality) + delta
	if idx < 0 || idx >= len(qs) {
		return Interval{}, &model.InvalidQualityError{
			Number:  i.number,
			Quality: string(i.quality),
			Reason:  "no quality beyond the end of the ordering",
		}
	}
	return Interval{number: i.number, quality: qs[idx]}, nil
}

// Augment returns the interval one quality step wider.
func (i Interval) Augment() (Interval, error) {
	return i.step(1)
}

// Diminish returns the interval one quality step narrower.
func (i Interval) Diminish() (Interval, error) {
	return i.step(-1)
}

func (i Interval) String() string {
	return string(i.quality) + strconv.Itoa(i.number)
}

// Equal reports whether both intervals span the same number of semitones.
func (i Interval) Equal(o Interval) bool {
	return i.Semitones() == o.Semitones()
}

// QualityFromHalfSteps recovers the quality of a degree given
// halfSteps = (number-1)*2 - semitones.
func QualityFromHalfSteps(number, halfSteps int) (Quality, error) {
	if number < 1 {
		return "", &model.InvalidQualityError{Number: number, Reason: "degree must be at least 1"}
	}
	if number > MaxNumber {
		return "", &model.InvalidQualityError{Number: number, Reason: fmt.Sprintf("degree must be at most %d", MaxNumber)}
	}
	k, reduced := octaves(number)
	halfSteps -= 2 * k
	q, ok := qualityByHalfSteps[reduced][halfSteps]
	if !ok {
		return "", &model.InvalidQualityError{
			Number: number,
			Reason: fmt.Sprintf("half-step offset %d has no quality", halfSteps),
		}
	}
	return q, nil
}
