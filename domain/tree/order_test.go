package tree

import (
	"testing"

	"github.com/helixml/wikitree/domain/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentsOf(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Segment()
	}
	return out
}

func TestOrder_PriorityAscending(t *testing.T) {
	tr, err := Build(owner, []page.Page{
		pg("b", 5, true),
		pg("c", 1, true),
		pg("a", 3, true),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, segmentsOf(tr.Root().Children()))
}

func TestOrder_NameCaseInsensitiveTieBreak(t *testing.T) {
	tr, err := Build(owner, []page.Page{
		pg("beta", 0, true),
		pg("Alpha", 0, true),
		pg("alpha", 0, true),
		pg("Gamma", 0, true),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "alpha", "beta", "Gamma"}, segmentsOf(tr.Root().Children()))
}

func TestOrder_SyntheticUsesDefaultPriority(t *testing.T) {
	tr, err := Build(owner, []page.Page{
		pg("neg", -1, true),
		pg("folder/leaf", 10, true),
		pg("pos", 1, true),
		pg("zero", DefaultPriority, true),
	})
	require.NoError(t, err)

	folder, ok := tr.Find("folder")
	require.True(t, ok)
	assert.Equal(t, DefaultPriority, folder.Priority())
	assert.Equal(t, []string{"neg", "folder", "zero", "pos"}, segmentsOf(tr.Root().Children()))
}

func TestOrder_DoesNotModifyInput(t *testing.T) {
	a := newNode("b", "b", owner)
	b := newNode("a", "a", owner)
	in := []*Node{a, b}

	out := Order(in)

	assert.Equal(t, []string{"a", "b"}, segmentsOf(out))
	assert.Equal(t, []string{"b", "a"}, segmentsOf(in))
}

func TestOrder_DeterministicAcrossInputOrders(t *testing.T) {
	nodes := []*Node{
		newNode("x", "x", owner),
		newNode("X", "X", owner),
		newNode("y", "y", owner),
	}
	forward := segmentsOf(Order(nodes))
	reversed := segmentsOf(Order([]*Node{nodes[2], nodes[1], nodes[0]}))

	assert.Equal(t, forward, reversed)
}
