package score

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/adrian-lison/weighted-interval-score/common"
	"github.com/adrian-lison/weighted-interval-score/model"
	"gonum.org/v1/gonum/floats"
)

// WeightedIntervalScore computes the weighted interval score as the
// weighted average of per-alpha interval scores, one call to IntervalScore
// per alpha level. Repeated alpha levels each contribute a separate
// interval. A nil weights vector defaults to weight_i = alpha_i/2, which
// approximates the continuous ranked probability score as the number of
// intervals grows.
//
// The degenerate alpha=1 denotes the median forecast: both interval sides
// resolve to quantile level 0.5, so its interval score is 2*|y - median|
// with zero sharpness.
//
// This is the correctness reference; WeightedIntervalScoreFast produces
// the same results in a single pass and is the recommended default.
func WeightedIntervalScore(ctx context.Context, observations, alphas []float64,
	quantiles model.QuantileDict, weights []float64, opts *Options) (*model.ScoreComponents, error) {

	weights, err := resolveWeights(alphas, weights)
	if err != nil {
		return nil, err
	}

	n := len(observations)
	res := &model.ScoreComponents{
		Total:       make([]float64, n),
		Sharpness:   make([]float64, n),
		Calibration: make([]float64, n),
	}

	for k, alpha := range alphas {
		single, err := IntervalScore(ctx, observations, alpha, quantiles, nil, opts)
		if err != nil {
			return nil, err
		}
		floats.AddScaled(res.Total, weights[k], single.Total)
		floats.AddScaled(res.Sharpness, weights[k], single.Sharpness)
		floats.AddScaled(res.Calibration, weights[k], single.Calibration)
	}

	norm := 1 / floats.Sum(weights)
	floats.Scale(norm, res.Total)
	floats.Scale(norm, res.Sharpness)
	floats.Scale(norm, res.Calibration)
	return res, nil
}

// WeightedIntervalScoreFast is the batched strategy: all intervals are
// resolved up front, the quantile dict is validated once, and the weighted
// components accumulate in a single pass over preallocated vectors. It
// produces the same results as WeightedIntervalScore without the per-level
// consistency checks and allocations, which matters once the number of
// alpha levels grows.
func WeightedIntervalScoreFast(ctx context.Context, observations, alphas []float64,
	quantiles model.QuantileDict, weights []float64, opts *Options) (*model.ScoreComponents, error) {

	opts = opts.orDefault()

	weights, err := resolveWeights(alphas, weights)
	if err != nil {
		return nil, err
	}

	n := len(observations)
	intervals := make([]*model.Bounds, len(alphas))
	for k, alpha := range alphas {
		if alpha <= 0 || alpha > 1 {
			return nil, fmt.Errorf("%w: got %v", common.ErrorInvalidAlpha, alpha)
		}
		bounds, err := quantiles.Interval(alpha)
		if err != nil {
			return nil, err
		}
		if err := checkLengths(n, bounds.Lower, bounds.Upper); err != nil {
			return nil, err
		}
		intervals[k] = bounds
	}

	if opts.CheckConsistency {
		checkQuantileLevels(ctx, quantiles, requiredLevels(alphas))
	}

	sharpness := make([]float64, n)
	calibration := make([]float64, n)

	for k, bounds := range intervals {
		w, penalty := weights[k], 2/alphas[k]
		lower, upper := bounds.Lower, bounds.Upper
		for i, y := range observations {
			s := upper[i] - lower[i]
			c := 0.0
			if d := lower[i] - y; d > 0 {
				c += d
			}
			if d := y - upper[i]; d > 0 {
				c += d
			}
			c *= penalty
			if opts.Percent {
				s /= math.Abs(y)
				c /= math.Abs(y)
			}
			sharpness[i] += w * s
			calibration[i] += w * c
		}
	}

	norm := 1 / floats.Sum(weights)
	floats.Scale(norm, sharpness)
	floats.Scale(norm, calibration)

	total := make([]float64, n)
	floats.AddTo(total, sharpness, calibration)

	return &model.ScoreComponents{
		Total:       total,
		Sharpness:   sharpness,
		Calibration: calibration,
	}, nil
}

// resolveWeights returns the per-alpha weight vector, defaulting to
// alpha_i/2 when none is given.
func resolveWeights(alphas, weights []float64) ([]float64, error) {
	if len(alphas) == 0 {
		return nil, fmt.Errorf("%w: no alpha levels given", common.ErrorInvalidValue)
	}
	if weights == nil {
		weights = make([]float64, len(alphas))
		for i, alpha := range alphas {
			weights[i] = alpha / 2
		}
		return weights, nil
	}
	if len(weights) != len(alphas) {
		return nil, fmt.Errorf("%w: %d weights for %d alpha levels",
			common.ErrorLengthMismatch, len(weights), len(alphas))
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: weight %v", common.ErrorInvalidValue, w)
		}
	}
	return weights, nil
}

// requiredLevels lists the distinct quantile levels the alpha set selects,
// sorted ascending.
func requiredLevels(alphas []float64) []float64 {
	seen := map[float64]struct{}{}
	levels := []float64{}
	for _, alpha := range alphas {
		for _, level := range [2]float64{alpha / 2, 1 - alpha/2} {
			if _, ok := seen[level]; ok {
				continue
			}
			seen[level] = struct{}{}
			levels = append(levels, level)
		}
	}
	sort.Float64s(levels)
	return levels
}
