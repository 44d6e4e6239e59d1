package score

// Options controls per-call behavior of the scoring functions. A nil
// *Options is treated as DefaultOptions().
type Options struct {
	// Percent divides sharpness and calibration by |observation|
	// element-wise. The division is not guarded, observations of zero
	// produce Inf or NaN results.
	Percent bool

	// CheckConsistency enables the element-wise ordering diagnostics on
	// interval bounds and quantile dicts. Violations are reported at
	// warning level and scoring proceeds with the values as given.
	CheckConsistency bool
}

func DefaultOptions() *Options {
	return &Options{CheckConsistency: true}
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}
