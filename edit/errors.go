// SPDX-License-Identifier: MIT
// Package edit: sentinel errors. Apply wraps them with the failing operation's
// position and rendering; match with errors.Is.

package edit

import "github.com/pkg/errors"

var (
	// ErrUnknownKind is returned for a Kind outside the declared set or an unparseable name.
	ErrUnknownKind = errors.New("edit: unknown operation kind")

	// ErrUnknownID is returned when an operation references a node or edge id that
	// does not exist in the extended id space, or a node that was already deleted.
	ErrUnknownID = errors.New("edit: unknown id")

	// ErrAlreadyDeleted is returned when a node or edge is deleted twice.
	ErrAlreadyDeleted = errors.New("edit: already deleted")

	// ErrNodeHasEdges is returned when a node is deleted while live edges still touch it.
	ErrNodeHasEdges = errors.New("edit: node still has incident edges")
)
