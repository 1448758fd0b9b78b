// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with errors.Wrapf; the sentinel stays matchable.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates that a size parameter (n, edge count) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was used without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadEdgeSpec indicates a Structure edge refers to a node outside the label list.
var ErrBadEdgeSpec = errors.New("builder: edge refers to unknown node")

// ErrConstructFailed indicates a nil constructor or an exhausted strategy.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the constructor name and a formatted message.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, method+": "+format, args...)
}
