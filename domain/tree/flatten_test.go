package tree

import (
	"testing"

	"github.com/helixml/wikitree/domain/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_PriorityScenario(t *testing.T) {
	tr, err := Build(owner, []page.Page{
		pg("a", 0, true),
		pg("a/b", 5, true),
		pg("a/c", 1, true),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "a/c", "a/b"}, slugs(Flatten(tr, NoLimit)))
}

func TestFlatten_SkipsSyntheticNodes(t *testing.T) {
	tr, err := Build(owner, []page.Page{pg("x/y/z", 0, true)})
	require.NoError(t, err)

	assert.Equal(t, []string{"x/y/z"}, slugs(Flatten(tr, NoLimit)))
}

func TestFlatten_PreOrder(t *testing.T) {
	tr, err := Build(owner, []page.Page{
		pg("b", 0, true),
		pg("a/2", 0, true),
		pg("a/1/deep", 0, true),
		pg("a", 0, true),
		pg("c", -1, true),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "a/1/deep", "a/2", "b"}, slugs(Flatten(tr, NoLimit)))
}

func TestFlatten_Limit(t *testing.T) {
	pages := []page.Page{
		pg("a", 0, true),
		pg("a/b", 0, true),
		pg("a/c", 0, true),
		pg("d/e", 0, true),
		pg("f", 0, true),
	}
	tr, err := Build(owner, pages)
	require.NoError(t, err)

	for limit := 1; limit <= len(pages)+2; limit++ {
		got := Flatten(tr, limit)
		want := min(limit, len(pages))
		assert.Len(t, got, want, "limit %d", limit)
	}
	assert.Equal(t, []string{"a", "a/b"}, slugs(Flatten(tr, 2)))
}

func TestFlatten_NoLimitEmitsEveryReachablePage(t *testing.T) {
	pages := []page.Page{
		pg("a", 0, true),
		pg("a/b", 0, false),
		pg("c/d", 0, true),
		pg("c/e", 0, false),
	}

	full, err := Build(owner, pages)
	require.NoError(t, err)
	assert.Len(t, Flatten(full, NoLimit), 4)
	assert.Len(t, Flatten(full, -1), 4)

	public, err := Build(owner, pages, WithPublicOnly())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c/d"}, slugs(Flatten(public, NoLimit)))
	assert.Equal(t, public.Len(), len(Flatten(public, NoLimit)))
}

func TestFlatten_Empty(t *testing.T) {
	tr, err := Build(owner, nil)
	require.NoError(t, err)
	assert.Empty(t, Flatten(tr, NoLimit))
	assert.Empty(t, Flatten(Tree{}, 3))
}

func TestWalk_StopsEarly(t *testing.T) {
	tr, err := Build(owner, []page.Page{pg("a/b/c", 0, true), pg("d", 0, true)})
	require.NoError(t, err)

	var visited []string
	Walk(tr, func(n *Node, depth int) bool {
		visited = append(visited, n.FullPath())
		return depth < 2
	})

	assert.Equal(t, []string{"a", "a/b"}, visited)
}

func TestWalk_Depth(t *testing.T) {
	tr, err := Build(owner, []page.Page{pg("a/b/c", 0, true)})
	require.NoError(t, err)

	depths := map[string]int{}
	Walk(tr, func(n *Node, depth int) bool {
		depths[n.FullPath()] = depth
		return true
	})

	assert.Equal(t, map[string]int{"a": 1, "a/b": 2, "a/b/c": 3}, depths)
}
