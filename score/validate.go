package score

import (
	"context"
	"fmt"

	"github.com/adrian-lison/weighted-interval-score/common"
	"github.com/adrian-lison/weighted-interval-score/model"
	"github.com/adrian-lison/weighted-interval-score/utils"
	"go.uber.org/zap"
)

// limit the indices listed in a single warning, the count is always exact
const maxReportedIndices = 10

// checkBounds reports element-wise lower > upper violations. Diagnostic
// only, callers score with the values as given.
func checkBounds(ctx context.Context, lower, upper []float64, interval string) {
	logger := utils.GetLogger(ctx)

	indices := []int{}
	count := 0
	for i := range lower {
		if lower[i] > upper[i] {
			count++
			if len(indices) < maxReportedIndices {
				indices = append(indices, i)
			}
		}
	}
	if count == 0 {
		return
	}
	logger.Warn("lower bound exceeds upper bound, scoring with values as given",
		zap.String("interval", interval), zap.Int("violationCnt", count),
		zap.Ints("indices", indices))
}

// checkQuantileLevels verifies that predicted values are element-wise
// non-decreasing across the given sorted quantile levels, so nested
// intervals widen as alpha decreases. Levels missing from the dict are
// skipped. Diagnostic only.
func checkQuantileLevels(ctx context.Context, quantiles model.QuantileDict, levels []float64) {
	logger := utils.GetLogger(ctx)

	var prev []float64
	prevLevel := 0.0
	for _, level := range levels {
		cur, ok := quantiles.Get(level)
		if !ok {
			continue
		}
		if prev != nil {
			count, first := 0, -1
			n := min(len(prev), len(cur))
			for i := 0; i < n; i++ {
				if prev[i] > cur[i] {
					count++
					if first < 0 {
						first = i
					}
				}
			}
			if count > 0 {
				logger.Warn("quantile values not monotonic across levels, scoring with values as given",
					zap.Float64("lowerLevel", prevLevel), zap.Float64("upperLevel", level),
					zap.Int("violationCnt", count), zap.Int("firstIndex", first))
			}
		}
		prev, prevLevel = cur, level
	}
}

// checkLengths verifies that every non-nil vector has length n.
func checkLengths(n int, vectors ...[]float64) error {
	for _, v := range vectors {
		if v != nil && len(v) != n {
			return fmt.Errorf("%w: expected %d, got %d", common.ErrorLengthMismatch, n, len(v))
		}
	}
	return nil
}
