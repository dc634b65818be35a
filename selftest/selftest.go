// Package selftest holds the fixed regression suite the CLI runs when it
// is invoked without a file.
package selftest

import (
	"maps"

	"github.com/katalvlaran/visibility/core"
)

// Case is one graph with its expected scores.
type Case struct {
	Name  string
	Edges []core.Edge[int64]
	Want  map[int64]float64
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case Case
	Got  map[int64]float64
	Err  error
}

// Passed reports whether the case produced exactly the expected scores.
func (o Outcome) Passed() bool {
	return o.Err == nil && maps.Equal(o.Case.Want, o.Got)
}

// ScoreFunc computes a score mapping, e.g. avv.Scores wrapped to return an error.
type ScoreFunc func([]core.Edge[int64]) (map[int64]float64, error)

func edges(pairs ...[2]int64) []core.Edge[int64] {
	return core.EdgesOf(pairs)
}

// Cases returns the fixed suite. Each call returns fresh values.
func Cases() []Case {
	reference := map[int64]float64{0: 5, 1: 8.5, 2: 6.75, 3: 7.75, 4: 6.125, 5: 6.5}

	return []Case{
		{"1 self-loop", edges([2]int64{1, 1}), map[int64]float64{1: 2}},
		{"2A single edge", edges([2]int64{1, 2}), map[int64]float64{1: 1.5, 2: 1.5}},
		{"2B bidirectional", edges([2]int64{1, 2}, [2]int64{2, 1}), map[int64]float64{1: 3, 2: 3}},
		{"2C self-loop counts twice", edges([2]int64{1, 1}, [2]int64{1, 2}, [2]int64{2, 1}), map[int64]float64{1: 5, 2: 4}},
		{"2D two self-loops", edges([2]int64{1, 1}, [2]int64{1, 2}, [2]int64{1, 1}), map[int64]float64{1: 5.5, 2: 3.5}},
		{"3 triangle", edges([2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1}), map[int64]float64{1: 4, 2: 4, 3: 4}},
		{"4A reference graph", edges(
			[2]int64{0, 1}, [2]int64{1, 2}, [2]int64{1, 3}, [2]int64{1, 5},
			[2]int64{2, 3}, [2]int64{3, 4}, [2]int64{5, 4},
		), reference},
		{"4B reference graph shuffled", edges(
			[2]int64{1, 2}, [2]int64{5, 4}, [2]int64{0, 1}, [2]int64{1, 5},
			[2]int64{1, 3}, [2]int64{3, 4}, [2]int64{2, 3},
		), maps.Clone(reference)},
	}
}

// Run executes every case with fn.
func Run(fn ScoreFunc) []Outcome {
	cases := Cases()
	out := make([]Outcome, len(cases))
	for i, c := range cases {
		got, err := fn(c.Edges)
		out[i] = Outcome{Case: c, Got: got, Err: err}
	}

	return out
}

// Failed returns the outcomes that did not pass.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if !o.Passed() {
			failed = append(failed, o)
		}
	}

	return failed
}
