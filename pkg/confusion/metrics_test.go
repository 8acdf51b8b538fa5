package confusion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerfectPrediction(t *testing.T) {
	// Every class predicted exactly right => macro F1 is 1.0
	truth := []uint8{}
	for c := uint8(0); c < 5; c++ {
		for n := 0; n < 10; n++ {
			truth = append(truth, c)
		}
	}
	metrics, err := PerClassMetrics(truth, truth, 5)
	require.NoError(t, err)
	for _, m := range metrics {
		require.Equal(t, 1.0, m.Precision)
		require.Equal(t, 1.0, m.Recall)
		require.Equal(t, 1.0, m.F1)
	}
	require.Equal(t, 1.0, MacroF1(metrics))
}

func TestUniformlyWrongPrediction(t *testing.T) {
	// Truth covers classes 0..3, but the model predicts class 4 for every
	// pixel. Every class scores F1 = 0, so the macro average is 0.
	truth := []uint8{0, 1, 2, 3, 0, 1, 2, 3}
	pred := make([]uint8, len(truth))
	for i := range pred {
		pred[i] = 4
	}
	metrics, err := PerClassMetrics(truth, pred, 5)
	require.NoError(t, err)
	for _, m := range metrics {
		require.Equal(t, 0.0, m.F1)
	}
	require.Equal(t, 0.0, MacroF1(metrics))

	// Class 4 has predictions but no true pixels: precision 0, recall 0
	require.Equal(t, int64(8), metrics[4].PredictedPositives)
	require.Equal(t, int64(0), metrics[4].ActualPositives)
}

func TestMacroVsFrequencyWeighting(t *testing.T) {
	// Class 0 dominates the pixel count and is predicted perfectly, class 1
	// is tiny and always missed. Macro averaging counts both classes
	// equally, so the rare class drags the average to 0.5 even though
	// almost every pixel is correct.
	truth := []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	pred := []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	metrics, err := PerClassMetrics(truth, pred, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.9474, metrics[0].F1, 1e-4)
	require.Equal(t, 0.0, metrics[1].F1)
	require.InDelta(t, 0.4737, MacroF1(metrics), 1e-4)
}

func TestMetricsFromMatrixMatchesStreams(t *testing.T) {
	truth := []uint8{0, 0, 1, 2, 2, 1, 0, 2, 1, 1}
	pred := []uint8{0, 1, 1, 2, 0, 1, 0, 2, 2, 1}

	fromStreams, err := PerClassMetrics(truth, pred, 4)
	require.NoError(t, err)

	m, err := NewMatrix(4)
	require.NoError(t, err)
	require.NoError(t, m.Accumulate(truth, pred))
	fromMatrix := MetricsFromMatrix(m)

	require.Equal(t, fromStreams, fromMatrix)
}

func TestMetricsErrors(t *testing.T) {
	_, err := PerClassMetrics([]uint8{0}, []uint8{0, 1}, 2)
	require.Error(t, err)
	_, err = PerClassMetrics([]uint8{9}, []uint8{0}, 2)
	require.Error(t, err)
	_, err = PerClassMetrics([]uint8{0}, []uint8{9}, 2)
	require.Error(t, err)
	_, err = PerClassMetrics(nil, nil, 0)
	require.Error(t, err)
	require.Equal(t, 0.0, MacroF1(nil))
}
