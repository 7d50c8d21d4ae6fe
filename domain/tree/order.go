package tree

import (
	"slices"
	"strings"
)

// DefaultPriority is the priority assigned to synthetic folder nodes.
// Pages default to the same value, so an untouched folder sorts among its
// untouched siblings by name.
const DefaultPriority = 0

// Order returns nodes sorted for display among siblings: ascending priority,
// then case-insensitive segment, then raw segment. The input is not modified.
// The result depends only on the set of nodes, never on their input order.
func Order(nodes []*Node) []*Node {
	sorted := make([]*Node, len(nodes))
	copy(sorted, nodes)
	slices.SortFunc(sorted, compareSiblings)
	return sorted
}

func compareSiblings(a, b *Node) int {
	if pa, pb := a.Priority(), b.Priority(); pa != pb {
		if pa < pb {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.segment), strings.ToLower(b.segment)); c != 0 {
		return c
	}
	return strings.Compare(a.segment, b.segment)
}
