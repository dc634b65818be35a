// File: errors.go
// Role: sentinel errors of the builder package. Callers match them with
// errors.Is; constructors wrap them with method and parameter context.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates randomness was required but no RNG was configured.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed indicates a nil Constructor was supplied to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
