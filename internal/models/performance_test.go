package models

import (
	"reflect"
	"testing"
)

// TestNormalizeWeights verifies the replicate/trim/pad rules for recorded
// set weights.
func TestNormalizeWeights(t *testing.T) {
	cases := []struct {
		name    string
		reps    []int32
		weights []float64
		want    []float64
	}{
		{"replicate single weight", []int32{8, 8, 8}, []float64{60}, []float64{60, 60, 60}},
		{"trim extra weights", []int32{8, 8}, []float64{60, 60, 60}, []float64{60, 60}},
		{"pad missing weights", []int32{8, 8, 8}, []float64{60}, []float64{60, 60, 60}},
		{"pad with zeros", []int32{8, 8, 8}, []float64{60, 62.5}, []float64{60, 62.5, 0}},
		{"no reps no weights", nil, []float64{60}, []float64{}},
		{"exact match untouched", []int32{8, 6}, []float64{60, 62.5}, []float64{60, 62.5}},
	}
	for _, c := range cases {
		if got := NormalizeWeights(c.reps, c.weights); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: NormalizeWeights(%v, %v) = %v, want %v", c.name, c.reps, c.weights, got, c.want)
		}
	}
}
