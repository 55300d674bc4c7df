package models

import "fmt"

// ToFailure is the sentinel rep-range maximum meaning "as many reps as
// possible". A range of {8, ToFailure} prints as "8+".
const ToFailure = 99

// DefaultSets is the set count used when the catalog omits one.
const DefaultSets = 3

// RepRange is a target rep prescription for an exercise.
type RepRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// IsZero reports whether no rep target was prescribed.
func (r RepRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// String renders the range as "8-12", or "8+" when the max is the
// to-failure sentinel. The zero value renders as "".
func (r RepRange) String() string {
	if r.IsZero() {
		return ""
	}
	if r.Max == ToFailure {
		return fmt.Sprintf("%d+", r.Min)
	}
	if r.Max == r.Min {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Exercise is one entry in the exercise catalog. Immutable once loaded
// for a rendering pass.
type Exercise struct {
	ID      int      `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Sets    int      `yaml:"sets" json:"sets"`
	Reps    RepRange `yaml:"-" json:"reps"`
	Comment string   `yaml:"comment" json:"comment,omitempty"`
	RestSec *int     `yaml:"rest" json:"rest_sec,omitempty"`
}

// Workout is a named, ordered list of exercise ids plus the paired-set
// declarations that force supersets onto adjacent sheet rows. PairedSets
// keeps the raw declarations; entries that are too short or self-referential
// are skipped at layout time rather than rejected here.
type Workout struct {
	ID         int     `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	Comment    string  `yaml:"comment" json:"comment,omitempty"`
	Exercises  []int   `yaml:"exercises" json:"exercises"`
	PairedSets [][]int `yaml:"paired_sets" json:"paired_sets"`
}

// DisplayName returns the workout name, falling back to an id-based label.
func (w Workout) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	return fmt.Sprintf("Workout %d", w.ID)
}
