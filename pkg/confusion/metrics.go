package confusion

import (
	"fmt"
)

// ClassMetrics is the precision/recall/F1 of a single class.
// TruePositives is the diagonal count, PredictedPositives the column total,
// ActualPositives the row total.
type ClassMetrics struct {
	Class              int
	TruePositives      int64
	PredictedPositives int64
	ActualPositives    int64
	Precision          float64
	Recall             float64
	F1                 float64
}

func metricsFromCounts(class int, tp, pp, ap int64) ClassMetrics {
	m := ClassMetrics{
		Class:              class,
		TruePositives:      tp,
		PredictedPositives: pp,
		ActualPositives:    ap,
	}
	if pp > 0 {
		m.Precision = float64(tp) / float64(pp)
	}
	if ap > 0 {
		m.Recall = float64(tp) / float64(ap)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// PerClassMetrics computes per-class precision, recall and F1 directly from
// two aligned label streams, over the full declared label set 0..k-1.
// A class absent from both streams gets all-zero metrics.
func PerClassMetrics(truth, pred []uint8, k int) ([]ClassMetrics, error) {
	if len(truth) != len(pred) {
		return nil, fmt.Errorf("Truth stream has %v pixels but prediction stream has %v", len(truth), len(pred))
	}
	if k <= 0 {
		return nil, fmt.Errorf("Invalid class count %v", k)
	}
	tp := make([]int64, k)
	pp := make([]int64, k)
	ap := make([]int64, k)
	for i := range truth {
		t, p := int(truth[i]), int(pred[i])
		if t >= k {
			return nil, fmt.Errorf("True class %v at pixel %v outside declared label set 0..%v", t, i, k-1)
		}
		if p >= k {
			return nil, fmt.Errorf("Predicted class %v at pixel %v outside declared label set 0..%v", p, i, k-1)
		}
		ap[t]++
		pp[p]++
		if t == p {
			tp[t]++
		}
	}
	metrics := make([]ClassMetrics, k)
	for c := 0; c < k; c++ {
		metrics[c] = metricsFromCounts(c, tp[c], pp[c], ap[c])
	}
	return metrics, nil
}

// MetricsFromMatrix derives the same per-class metrics from an accumulated
// confusion matrix. Numerically identical to PerClassMetrics over the
// streams the matrix was built from, but usable after streaming
// accumulation, when the raw pixels are long gone.
func MetricsFromMatrix(m *Matrix) []ClassMetrics {
	metrics := make([]ClassMetrics, m.K())
	for c := 0; c < m.K(); c++ {
		metrics[c] = metricsFromCounts(c, m.Count(c, c), m.ColTotal(c), m.RowTotal(c))
	}
	return metrics
}

// MacroF1 is the unweighted mean F1 over all declared classes. Every class
// counts equally, no matter how many pixels it covers.
func MacroF1(perClass []ClassMetrics) float64 {
	if len(perClass) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range perClass {
		sum += m.F1
	}
	return sum / float64(len(perClass))
}
