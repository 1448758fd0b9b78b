// File: options.go
// Role: Engine configuration with documented defaults.
// Policy:
//   - One Options struct serves every engine; each constructor reads the
//     fields it understands and ignores the rest.
//   - Invalid combinations fail at construction with ErrInvalidOptions.

package ged

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphedit/costmodel"
)

// DefaultEpsilon is the tolerance used when comparing f-values to the upper bound.
const DefaultEpsilon = 1e-9

// Options configures the engines.
type Options struct {
	// Relabel enables RELABEL_NODE (the cost map must then contain it).
	// When false node labels are ignored everywhere.
	Relabel bool

	// DegreeOrdering (Exact) processes source nodes by descending degree and
	// tries targets by ascending degree difference.
	DegreeOrdering bool

	// IsoShortCircuit (Exact) finalizes states whose residual graphs are
	// already isomorphic.
	IsoShortCircuit bool

	// SeedUpperBound (Exact) seeds the incumbent from the Bipartite engine.
	SeedUpperBound bool

	// Randomize (Simple) shuffles nodes with Seed before the degree sort.
	Randomize bool

	// Seed drives Randomize. 0 selects a fixed default seed.
	Seed int64

	// NodeCosts and EdgeCosts (Hausdorff) select the cost components; at
	// least one must be set.
	NodeCosts bool
	EdgeCosts bool

	// Strict (Hausdorff) forbids two source nodes from picking the same target.
	Strict bool

	// Epsilon is the pruning tolerance (Exact). Must be >= 0.
	Epsilon float64

	// Logger receives Debug-level search statistics. nil discards.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the documented defaults: no relabeling, index
// ordering, iso short-circuit and upper-bound seeding on, both Hausdorff
// components, DefaultEpsilon, no logger.
func DefaultOptions() Options {
	return Options{
		IsoShortCircuit: true,
		SeedUpperBound:  true,
		NodeCosts:       true,
		EdgeCosts:       true,
		Epsilon:         DefaultEpsilon,
	}
}

func (o Options) requirements() costmodel.Requirements {
	return costmodel.Requirements{Relabel: o.Relabel}
}

func (o Options) validate() error {
	if o.Epsilon < 0 {
		return errors.Wrapf(ErrInvalidOptions, "epsilon %v < 0", o.Epsilon)
	}

	return nil
}

// logger returns o.Logger tagged with the engine name, or a discard logger.
func (o Options) logger(engine string) logrus.FieldLogger {
	l := o.Logger
	if l == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		l = discard
	}

	return l.WithField("engine", engine)
}
