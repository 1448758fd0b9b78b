package iso

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// LabelHistogram counts labels in an ordered tree (string -> int).
//
// Complexity: O(L log L).
func LabelHistogram(labels []string) *redblacktree.Tree {
	h := redblacktree.NewWithStringComparator()
	for _, l := range labels {
		if v, ok := h.Get(l); ok {
			h.Put(l, v.(int)+1)
		} else {
			h.Put(l, 1)
		}
	}

	return h
}

// CommonLabels returns Σ min(a[l], b[l]) over all labels: the number of
// nodes that can keep their label under the best possible pairing.
func CommonLabels(a, b *redblacktree.Tree) int {
	if a.Size() > b.Size() {
		a, b = b, a
	}
	common := 0
	it := a.Iterator()
	for it.Next() {
		if v, ok := b.Get(it.Key()); ok {
			common += min(it.Value().(int), v.(int))
		}
	}

	return common
}

// SameHistogram reports whether both histograms hold equal counts per label.
func SameHistogram(a, b *redblacktree.Tree) bool {
	if a.Size() != b.Size() {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for ia.Next() && ib.Next() {
		if ia.Key().(string) != ib.Key().(string) || ia.Value().(int) != ib.Value().(int) {
			return false
		}
	}

	return true
}
