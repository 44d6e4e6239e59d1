package common

import "errors"

var (
	ErrorInvalidValue    = errors.New("invalid value")
	ErrorInvalidAlpha    = errors.New("alpha must be in (0, 1]")
	ErrorMissingQuantile = errors.New("required quantile level not in dict")
	ErrorLengthMismatch  = errors.New("vector lengths do not match")
	ErrorMissingBounds   = errors.New("exactly one of quantile dict or explicit bounds must be given")
)
