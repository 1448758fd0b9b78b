package costmodel

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphedit/edit"
)

// ParseKind parses a kind name such as "DELETE_NODE" or "delete-node".
func ParseKind(s string) (edit.Kind, error) {
	return edit.ParseKind(s)
}

// ParseCostMap converts a name-keyed table (as read from YAML, flags or env)
// into a CostMap. Values are not validated here; pass the result to New.
//
// Errors: ErrUnknownKind for an unparseable name, ErrUnexpectedCost when two
// names resolve to the same kind.
func ParseCostMap(raw map[string]float64) (CostMap, error) {
	out := make(CostMap, len(raw))
	names := make(map[edit.Kind]string, len(raw))
	for name, v := range raw {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := names[k]; dup {
			return nil, errors.Wrapf(ErrUnexpectedCost, "%q and %q both name %s", prev, name, k)
		}
		names[k] = name
		out[k] = v
	}

	return out, nil
}

// Names renders m's entries keyed by canonical kind name.
func (m Model) Names() map[string]float64 {
	cm := m.CostMap()
	out := make(map[string]float64, len(cm))
	for k, v := range cm {
		out[k.String()] = v
	}

	return out
}
