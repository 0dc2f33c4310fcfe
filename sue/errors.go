package sue

import "errors"

var (
	// ErrBadTheta indicates Theta was not a positive real (§6).
	ErrBadTheta = errors.New("sue: theta must be > 0")
	// ErrBadLambda indicates Lambda was not a positive real (§6).
	ErrBadLambda = errors.New("sue: lambda must be > 0")
)
