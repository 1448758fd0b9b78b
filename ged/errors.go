package ged

import "github.com/pkg/errors"

// Sentinel errors. Cost-map problems surface as costmodel sentinels.
var (
	// ErrNilGraph is returned by Similarity when either graph is nil.
	ErrNilGraph = errors.New("ged: graph is nil")

	// ErrDirectednessMismatch is returned when one graph is directed and the other is not.
	ErrDirectednessMismatch = errors.New("ged: graphs disagree on directedness")

	// ErrInvalidOptions is returned by constructors for option combinations that cannot work.
	ErrInvalidOptions = errors.New("ged: invalid options")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and New for unknown names.
	ErrUnknownAlgorithm = errors.New("ged: unknown algorithm")

	// ErrInvalidMapping is returned by MappingCost/EditListFromMapping for
	// malformed node mappings (wrong length, out-of-range or repeated targets).
	ErrInvalidMapping = errors.New("ged: invalid node mapping")
)
