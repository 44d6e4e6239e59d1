package model

import (
	"fmt"
	"sort"

	"github.com/adrian-lison/weighted-interval-score/common"
)

// QuantileDict maps a quantile level in (0, 1) to the vector of predicted
// values at that level, one entry per forecasted instance. All vectors must
// have the same length as the observation vector they are scored against.
//
// Lookup is exact on the float64 level: callers should derive keys with the
// same arithmetic used for lookup (alpha/2 and 1-alpha/2), no interpolation
// is performed.
type QuantileDict map[float64][]float64

func (d QuantileDict) Get(level float64) ([]float64, bool) {
	values, ok := d[level]
	return values, ok
}

// Levels returns the quantile levels present in the dict, sorted ascending.
func (d QuantileDict) Levels() []float64 {
	levels := make([]float64, 0, len(d))
	for level := range d {
		levels = append(levels, level)
	}
	sort.Float64s(levels)
	return levels
}

// Interval resolves the central (1-alpha) prediction interval, selecting the
// predicted vectors at levels alpha/2 and 1-alpha/2. The degenerate alpha=1
// resolves both sides to the median level 0.5.
func (d QuantileDict) Interval(alpha float64) (*Bounds, error) {
	lower, ok := d.Get(alpha / 2)
	if !ok {
		return nil, fmt.Errorf("%w: level %v", common.ErrorMissingQuantile, alpha/2)
	}
	upper, ok := d.Get(1 - alpha/2)
	if !ok {
		return nil, fmt.Errorf("%w: level %v", common.ErrorMissingQuantile, 1-alpha/2)
	}
	return &Bounds{Lower: lower, Upper: upper}, nil
}

// Bounds holds the boundary vectors of a prediction interval. Either side
// may be nil where a one-sided interval is meaningful.
type Bounds struct {
	Lower []float64
	Upper []float64
}

// ScoreComponents is the result triple of an interval score, each vector
// aligned with the input instances. Total = Sharpness + Calibration holds
// element-wise.
type ScoreComponents struct {
	Total       []float64
	Sharpness   []float64
	Calibration []float64
}
