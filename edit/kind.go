// File: kind.go
// Role: The closed set of edit operation kinds.
// Determinism:
//   - Kinds() returns kinds in declaration order; String/ParseKind round-trip.

package edit

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies an edit operation. The set is closed; NumKinds bounds every
// fixed-size table indexed by Kind.
type Kind int

const (
	AddNode Kind = iota
	DeleteNode
	AddEdge
	DeleteEdge
	RelabelNode

	// NumKinds is the number of valid kinds.
	NumKinds
)

var kindNames = [NumKinds]string{
	AddNode:     "ADD_NODE",
	DeleteNode:  "DELETE_NODE",
	AddEdge:     "ADD_EDGE",
	DeleteEdge:  "DELETE_EDGE",
	RelabelNode: "RELABEL_NODE",
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		out = append(out, k)
	}

	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= 0 && k < NumKinds }

// IsNode reports whether k edits a node.
func (k Kind) IsNode() bool { return k == AddNode || k == DeleteNode || k == RelabelNode }

// String returns the canonical upper snake-case name, e.g. "DELETE_NODE".
func (k Kind) String() string {
	if !k.Valid() {
		return "KIND(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// ParseKind accepts the canonical name case-insensitively, with '_', '-' or
// no separator ("delete_node", "DeleteNode", "delete-node").
//
// Errors: ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	norm := normalizeKind(s)
	for k := Kind(0); k < NumKinds; k++ {
		if normalizeKind(kindNames[k]) == norm {
			return k, nil
		}
	}

	return -1, errors.Wrapf(ErrUnknownKind, "%q", s)
}

func normalizeKind(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")

	return strings.ReplaceAll(s, "-", "")
}

// MarshalText implements encoding.TextMarshaler so kinds can key YAML/JSON maps.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Wrapf(ErrUnknownKind, "%d", int(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
