package confusion

import (
	"fmt"

	"github.com/terralab/segeval/pkg/raster"
)

// Pair is one (ground truth, prediction) raster couple from the manifest.
// Index is the pair's position in the manifest, used in skip diagnostics.
type Pair struct {
	Index      int
	Truth      *raster.Raster
	Prediction *raster.Raster
}

// SkipRecord describes a pair that was excluded because its rasters have
// different shapes. Dropping is the only policy: we never crop or resize to
// reconcile a mismatch.
type SkipRecord struct {
	Index            int
	TruthWidth       int
	TruthHeight      int
	PredictionWidth  int
	PredictionHeight int
}

func (s SkipRecord) String() string {
	return fmt.Sprintf("pair %v: truth %vx%v vs prediction %vx%v",
		s.Index, s.TruthWidth, s.TruthHeight, s.PredictionWidth, s.PredictionHeight)
}

// FilterPairs splits pairs into shape-matched pairs and skip records for the
// mismatched ones. Pure function: input order is preserved in both outputs.
func FilterPairs(pairs []Pair) (valid []Pair, skipped []SkipRecord) {
	valid = make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if p.Truth.SameShape(p.Prediction) {
			valid = append(valid, p)
		} else {
			skipped = append(skipped, SkipRecord{
				Index:            p.Index,
				TruthWidth:       p.Truth.Width,
				TruthHeight:      p.Truth.Height,
				PredictionWidth:  p.Prediction.Width,
				PredictionHeight: p.Prediction.Height,
			})
		}
	}
	return valid, skipped
}
