package confusion

import (
	"fmt"

	"github.com/cyclopcam/logs"
)

// Evaluator runs the full pixel-pair evaluation: filter mismatched pairs,
// accumulate the confusion matrix pair by pair, derive per-class metrics.
type Evaluator struct {
	log logs.Log
	k   int
}

func NewEvaluator(logger logs.Log, k int) *Evaluator {
	return &Evaluator{
		log: logger,
		k:   k,
	}
}

// Result of an evaluation run. Matrix is immutable once returned.
type Result struct {
	Matrix   *Matrix
	Skipped  []SkipRecord
	PerClass []ClassMetrics
	MacroF1  float64
}

// EvaluatePairs filters out shape-mismatched pairs (logging a diagnostic for
// each, then continuing), and accumulates the rest into a fresh KxK matrix.
// Having zero shape-matched pairs is an error: there is nothing to score.
func (e *Evaluator) EvaluatePairs(pairs []Pair) (*Result, error) {
	valid, skipped := FilterPairs(pairs)
	for _, s := range skipped {
		e.log.Warnf("Skipping shape-mismatched %v", s)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("No shape-matched pairs to evaluate (%v skipped)", len(skipped))
	}
	matrix, err := NewMatrix(e.k)
	if err != nil {
		return nil, err
	}
	for _, p := range valid {
		if err := matrix.Accumulate(p.Truth.Flatten(), p.Prediction.Flatten()); err != nil {
			return nil, fmt.Errorf("Pair %v: %w", p.Index, err)
		}
	}
	perClass := MetricsFromMatrix(matrix)
	return &Result{
		Matrix:   matrix,
		Skipped:  skipped,
		PerClass: perClass,
		MacroF1:  MacroF1(perClass),
	}, nil
}
