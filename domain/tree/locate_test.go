package tree

import (
	"testing"

	"github.com/helixml/wikitree/domain/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locateFixture(t *testing.T) Tree {
	t.Helper()
	tr, err := Build(owner, []page.Page{
		pg("lang", 0, true),
		pg("lang/go", 0, true),
		pg("lang/python", 1, true),
		pg("lang/rust", 2, true),
		pg("lang/go/generics/intro", 0, true),
	})
	require.NoError(t, err)
	return tr
}

func TestTree_Find(t *testing.T) {
	tr := locateFixture(t)

	n, ok := tr.Find("lang/go/generics")
	require.True(t, ok)
	assert.True(t, n.Synthetic())

	_, ok = tr.Find("lang/java")
	assert.False(t, ok)
	_, ok = tr.Find("lang//go")
	assert.False(t, ok)
	_, ok = tr.Find("")
	assert.False(t, ok)
}

func TestTree_Breadcrumb(t *testing.T) {
	tr := locateFixture(t)

	crumbs := tr.Breadcrumb("lang/go/generics/intro")
	assert.Equal(t, []string{"lang", "lang/go", "lang/go/generics"}, paths(crumbs))

	assert.Empty(t, tr.Breadcrumb("lang"))
	assert.Nil(t, tr.Breadcrumb("missing/page"))
}

func TestTree_Siblings(t *testing.T) {
	tr := locateFixture(t)

	prev, next := tr.Siblings("lang/python")
	assert.Equal(t, []string{"lang/go"}, paths(prev))
	assert.Equal(t, []string{"lang/rust"}, paths(next))

	prev, next = tr.Siblings("lang")
	assert.Empty(t, prev)
	assert.Empty(t, next)

	prev, next = tr.Siblings("nope")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func paths(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.FullPath()
	}
	return out
}
