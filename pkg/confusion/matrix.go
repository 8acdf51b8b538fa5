// Package confusion accumulates a KxK confusion matrix over aligned
// truth/prediction label streams and derives per-class metrics from it.
// The label set 0..K-1 is declared up front, so classes that never occur in
// the data still get their (all zero) rows and columns.
package confusion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix counts pixels by (true class, predicted class).
// Row = true class, column = predicted class. Counts are held in a
// gonum Dense; exact up to 2^53 pixels, far beyond any raster corpus.
type Matrix struct {
	k      int
	counts *mat.Dense
	total  int64
}

func NewMatrix(k int) (*Matrix, error) {
	if k <= 0 {
		return nil, fmt.Errorf("Invalid class count %v", k)
	}
	return &Matrix{
		k:      k,
		counts: mat.NewDense(k, k, nil),
	}, nil
}

func (m *Matrix) K() int {
	return m.k
}

// Add records a single pixel observation
func (m *Matrix) Add(trueClass, predClass int) error {
	if trueClass < 0 || trueClass >= m.k {
		return fmt.Errorf("True class %v outside declared label set 0..%v", trueClass, m.k-1)
	}
	if predClass < 0 || predClass >= m.k {
		return fmt.Errorf("Predicted class %v outside declared label set 0..%v", predClass, m.k-1)
	}
	m.counts.Set(trueClass, predClass, m.counts.At(trueClass, predClass)+1)
	m.total++
	return nil
}

// Accumulate records one aligned pair of label streams, element i of truth
// corresponding to element i of pred. Called once per valid raster pair, so
// memory stays constant regardless of corpus size.
// A class id outside 0..K-1 aborts the run.
func (m *Matrix) Accumulate(truth, pred []uint8) error {
	if len(truth) != len(pred) {
		return fmt.Errorf("Truth stream has %v pixels but prediction stream has %v", len(truth), len(pred))
	}
	for i := range truth {
		t, p := int(truth[i]), int(pred[i])
		if t >= m.k {
			return fmt.Errorf("True class %v at pixel %v outside declared label set 0..%v", t, i, m.k-1)
		}
		if p >= m.k {
			return fmt.Errorf("Predicted class %v at pixel %v outside declared label set 0..%v", p, i, m.k-1)
		}
		m.counts.Set(t, p, m.counts.At(t, p)+1)
	}
	m.total += int64(len(truth))
	return nil
}

// Count returns the number of pixels with the given true and predicted class
func (m *Matrix) Count(trueClass, predClass int) int64 {
	return int64(m.counts.At(trueClass, predClass))
}

// Total is the number of pixels accumulated so far
func (m *Matrix) Total() int64 {
	return m.total
}

// RowTotal is the number of pixels whose true class is trueClass
func (m *Matrix) RowTotal(trueClass int) int64 {
	return int64(floats.Sum(m.counts.RawRowView(trueClass)))
}

// ColTotal is the number of pixels predicted as predClass
func (m *Matrix) ColTotal(predClass int) int64 {
	return int64(floats.Sum(mat.Col(nil, predClass, m.counts)))
}

// Counts returns a copy of the raw count matrix
func (m *Matrix) Counts() *mat.Dense {
	return mat.DenseCopyOf(m.counts)
}

// Normalized returns the matrix with each row rescaled to sum to 1, so row i
// is the distribution of predictions given true class i. A class with zero
// true pixels keeps an all-zero row rather than dividing by zero.
func (m *Matrix) Normalized() *mat.Dense {
	norm := mat.NewDense(m.k, m.k, nil)
	for i := 0; i < m.k; i++ {
		row := m.counts.RawRowView(i)
		sum := floats.Sum(row)
		if sum == 0 {
			continue
		}
		for j := 0; j < m.k; j++ {
			norm.Set(i, j, row[j]/sum)
		}
	}
	return norm
}
