package score

import (
	"context"
	"fmt"

	"github.com/adrian-lison/weighted-interval-score/common"
)

// OutsideInterval returns a 0/1 indicator per instance, 1 where the
// observation falls outside [lower, upper]. No aggregation is performed.
func OutsideInterval(ctx context.Context, observations, lower, upper []float64, opts *Options) ([]int, error) {
	opts = opts.orDefault()

	if lower == nil || upper == nil {
		return nil, fmt.Errorf("%w: lower and upper bounds required", common.ErrorInvalidValue)
	}
	if err := checkLengths(len(observations), lower, upper); err != nil {
		return nil, err
	}

	if opts.CheckConsistency {
		checkBounds(ctx, lower, upper, "outside interval")
	}

	res := make([]int, len(observations))
	for i, y := range observations {
		if y < lower[i] || y > upper[i] {
			res[i] = 1
		}
	}
	return res, nil
}
