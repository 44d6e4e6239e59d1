package score

import (
	"context"
	"fmt"

	"github.com/adrian-lison/weighted-interval-score/common"
	"github.com/adrian-lison/weighted-interval-score/model"
)

// IntervalConsistencyScore penalizes a later forecast interval for
// extending outside an earlier interval for the same target. Later
// forecasts are made with more information and should nest within the
// earlier, wider interval; for each instance the score is the total amount
// by which [lower_new, upper_new] sticks out of [lower_old, upper_old],
// zero when fully nested.
//
// Either side may be omitted (nil) from both bounds to score a one-sided
// interval; an omitted side contributes no penalty. Omitting a side from
// only one of the two forecasts is a usage error.
func IntervalConsistencyScore(ctx context.Context, oldBounds, newBounds *model.Bounds, opts *Options) ([]float64, error) {
	opts = opts.orDefault()

	if oldBounds == nil || newBounds == nil {
		return nil, fmt.Errorf("%w: old and new bounds required", common.ErrorInvalidValue)
	}
	if (oldBounds.Lower == nil) != (newBounds.Lower == nil) ||
		(oldBounds.Upper == nil) != (newBounds.Upper == nil) {
		return nil, fmt.Errorf("%w: each side must be given for both forecasts or omitted from both",
			common.ErrorInvalidValue)
	}
	if oldBounds.Lower == nil && oldBounds.Upper == nil {
		return nil, fmt.Errorf("%w: at least one side required", common.ErrorInvalidValue)
	}

	n := len(oldBounds.Lower)
	if oldBounds.Lower == nil {
		n = len(oldBounds.Upper)
	}
	if err := checkLengths(n, oldBounds.Lower, oldBounds.Upper, newBounds.Lower, newBounds.Upper); err != nil {
		return nil, err
	}

	if opts.CheckConsistency {
		if oldBounds.Lower != nil && oldBounds.Upper != nil {
			checkBounds(ctx, oldBounds.Lower, oldBounds.Upper, "old forecast")
		}
		if newBounds.Lower != nil && newBounds.Upper != nil {
			checkBounds(ctx, newBounds.Lower, newBounds.Upper, "new forecast")
		}
	}

	score := make([]float64, n)
	if oldBounds.Lower != nil {
		for i := range score {
			if d := oldBounds.Lower[i] - newBounds.Lower[i]; d > 0 {
				score[i] += d
			}
		}
	}
	if oldBounds.Upper != nil {
		for i := range score {
			if d := newBounds.Upper[i] - oldBounds.Upper[i]; d > 0 {
				score[i] += d
			}
		}
	}
	return score, nil
}
