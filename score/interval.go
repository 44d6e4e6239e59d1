package score

import (
	"context"
	"fmt"
	"math"

	"github.com/adrian-lison/weighted-interval-score/common"
	"github.com/adrian-lison/weighted-interval-score/model"
	"gonum.org/v1/gonum/floats"
)

// IntervalScore computes the element-wise interval score of a central
// (1-alpha) prediction interval against the observations.
//
// The interval is given either as explicit bounds or as a quantile dict
// from which the levels alpha/2 and 1-alpha/2 are selected; exactly one of
// the two must be non-nil. For each instance
//
//	sharpness   = upper - lower
//	calibration = (2/alpha) * max(lower-y, 0) + (2/alpha) * max(y-upper, 0)
//	total       = sharpness + calibration
//
// so calibration is zero whenever y falls inside the interval. Each result
// vector is freshly allocated and aligned with the observations.
func IntervalScore(ctx context.Context, observations []float64, alpha float64,
	quantiles model.QuantileDict, bounds *model.Bounds, opts *Options) (*model.ScoreComponents, error) {

	opts = opts.orDefault()

	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: got %v", common.ErrorInvalidAlpha, alpha)
	}
	if (quantiles == nil) == (bounds == nil) {
		return nil, common.ErrorMissingBounds
	}
	if bounds == nil {
		var err error
		bounds, err = quantiles.Interval(alpha)
		if err != nil {
			return nil, err
		}
	}
	if bounds.Lower == nil || bounds.Upper == nil {
		return nil, fmt.Errorf("%w: interval bounds need both sides", common.ErrorInvalidValue)
	}
	if err := checkLengths(len(observations), bounds.Lower, bounds.Upper); err != nil {
		return nil, err
	}

	if opts.CheckConsistency {
		checkBounds(ctx, bounds.Lower, bounds.Upper, fmt.Sprintf("alpha=%v", alpha))
	}

	return scoreInterval(observations, alpha, bounds.Lower, bounds.Upper, opts.Percent), nil
}

// scoreInterval computes the components for a single interval, inputs
// already validated.
func scoreInterval(observations []float64, alpha float64, lower, upper []float64, percent bool) *model.ScoreComponents {
	n := len(observations)

	sharpness := make([]float64, n)
	floats.SubTo(sharpness, upper, lower)

	penalty := 2 / alpha
	calibration := make([]float64, n)
	for i, y := range observations {
		c := 0.0
		if d := lower[i] - y; d > 0 {
			c += d
		}
		if d := y - upper[i]; d > 0 {
			c += d
		}
		calibration[i] = c * penalty
	}

	if percent {
		for i, y := range observations {
			sharpness[i] /= math.Abs(y)
			calibration[i] /= math.Abs(y)
		}
	}

	total := make([]float64, n)
	floats.AddTo(total, sharpness, calibration)

	return &model.ScoreComponents{
		Total:       total,
		Sharpness:   sharpness,
		Calibration: calibration,
	}
}
