package score

import (
	"context"
	"math"
	"testing"

	"github.com/adrian-lison/weighted-interval-score/common"
	"github.com/adrian-lison/weighted-interval-score/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertComponentsInDelta(t *testing.T, want, got *model.ScoreComponents, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want.Total, got.Total, delta)
	assert.InDeltaSlice(t, want.Sharpness, got.Sharpness, delta)
	assert.InDeltaSlice(t, want.Calibration, got.Calibration, delta)
}

func TestWeightedIntervalScoreStrategiesAgree(t *testing.T) {
	ctx := context.Background()
	qd := refQuantileDict()

	cases := []struct {
		name    string
		alphas  []float64
		weights []float64
		opts    *Options
	}{
		{name: "single alpha", alphas: []float64{0.2}},
		{name: "two alphas default weights", alphas: []float64{0.2, 0.4}},
		{name: "median included", alphas: []float64{0.2, 0.4, 1}},
		{name: "repeated alphas", alphas: []float64{0.2, 0.4, 0.2, 1}},
		{
			name:    "custom weights",
			alphas:  []float64{0.2, 0.4, 0.2, 1},
			weights: []float64{1, 0.5, 2, 0.3},
		},
		{
			name:   "percent mode",
			alphas: []float64{0.2, 0.4},
			opts:   &Options{Percent: true, CheckConsistency: true},
		},
		{
			name:   "checks disabled",
			alphas: []float64{0.2, 0.4},
			opts:   &Options{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			direct, err := WeightedIntervalScore(ctx, refObservations, tc.alphas, qd, tc.weights, tc.opts)
			require.NoError(t, err)
			fast, err := WeightedIntervalScoreFast(ctx, refObservations, tc.alphas, qd, tc.weights, tc.opts)
			require.NoError(t, err)
			assertComponentsInDelta(t, direct, fast, 1e-12)
		})
	}
}

func TestWeightedIntervalScoreFastReferenceValue(t *testing.T) {
	ctx := context.Background()
	qd := refQuantileDict()

	res, err := WeightedIntervalScoreFast(ctx, refObservations, []float64{0.2, 0.4}, qd, nil, nil)
	require.NoError(t, err)

	// instance 0: (0.1*3 + 0.2*2) / 0.3
	assert.InDelta(t, 2.3333333, res.Total[0], 1e-6)
}

func TestWeightedIntervalScoreDefaultWeights(t *testing.T) {
	ctx := context.Background()
	qd := refQuantileDict()
	alphas := []float64{0.2, 0.4, 1}

	implicit, err := WeightedIntervalScore(ctx, refObservations, alphas, qd, nil, nil)
	require.NoError(t, err)

	explicit, err := WeightedIntervalScore(ctx, refObservations, alphas, qd,
		[]float64{0.1, 0.2, 0.5}, nil)
	require.NoError(t, err)

	assertComponentsInDelta(t, explicit, implicit, 1e-12)
}

func TestWeightedIntervalScoreMedianOnly(t *testing.T) {
	ctx := context.Background()
	qd := refQuantileDict()
	median := qd[0.5]

	fast, err := WeightedIntervalScoreFast(ctx, refObservations, []float64{1}, qd, nil, nil)
	require.NoError(t, err)

	single, err := IntervalScore(ctx, refObservations, 1, qd, nil, nil)
	require.NoError(t, err)

	for i, y := range refObservations {
		want := 2 * math.Abs(y-median[i])
		assert.InDelta(t, want, fast.Total[i], 1e-12)
		assert.InDelta(t, want, single.Total[i], 1e-12)
		assert.InDelta(t, 0, fast.Sharpness[i], 1e-12)
	}
}

func TestWeightedIntervalScoreUsageErrors(t *testing.T) {
	ctx := context.Background()
	qd := refQuantileDict()

	for name, fn := range map[string]func(context.Context, []float64, []float64,
		model.QuantileDict, []float64, *Options) (*model.ScoreComponents, error){
		"direct": WeightedIntervalScore,
		"fast":   WeightedIntervalScoreFast,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fn(ctx, refObservations, nil, qd, nil, nil)
			assert.ErrorIs(t, err, common.ErrorInvalidValue)

			_, err = fn(ctx, refObservations, []float64{0.2, 0.4}, qd, []float64{1}, nil)
			assert.ErrorIs(t, err, common.ErrorLengthMismatch)

			_, err = fn(ctx, refObservations, []float64{0.2}, qd, []float64{-1}, nil)
			assert.ErrorIs(t, err, common.ErrorInvalidValue)

			_, err = fn(ctx, refObservations, []float64{0.6}, qd, nil, nil)
			assert.ErrorIs(t, err, common.ErrorMissingQuantile)

			_, err = fn(ctx, refObservations, []float64{1.5}, qd, nil, nil)
			assert.ErrorIs(t, err, common.ErrorInvalidAlpha)
		})
	}
}

func benchmarkInputs(levels, instances int) ([]float64, []float64, model.QuantileDict) {
	observations := make([]float64, instances)
	for i := range observations {
		observations[i] = math.Sin(float64(i)) * 10
	}

	alphas := make([]float64, levels)
	qd := model.QuantileDict{}
	for k := range alphas {
		alpha := float64(k+1) / float64(levels+1)
		alphas[k] = alpha

		lower := make([]float64, instances)
		upper := make([]float64, instances)
		half := (1 - alpha) * 20
		for i, y := range observations {
			lower[i], upper[i] = y-half, y+half
		}
		qd[alpha/2] = lower
		qd[1-alpha/2] = upper
	}
	return observations, alphas, qd
}

func BenchmarkWeightedIntervalScore(b *testing.B) {
	ctx := context.Background()
	observations, alphas, qd := benchmarkInputs(40, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := WeightedIntervalScore(ctx, observations, alphas, qd, nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWeightedIntervalScoreFast(b *testing.B) {
	ctx := context.Background()
	observations, alphas, qd := benchmarkInputs(40, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := WeightedIntervalScoreFast(ctx, observations, alphas, qd, nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}
