package tree

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/helixml/wikitree/domain/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "6f1c2a8e-0d3b-4c55-9a0e-3f2b1d7c9e10"

func pg(slug string, priority int, public bool) page.Page {
	return page.NewPage(owner, slug, strings.ToUpper(slug), priority, public)
}

// shape describes a tree as full path -> "parent|page slug" so two trees can
// be compared without depending on map iteration order.
func shape(t Tree) map[string]string {
	out := make(map[string]string)
	var visit func(n *Node)
	visit = func(n *Node) {
		for _, c := range n.children {
			slug := "-"
			if p, ok := c.Page(); ok {
				slug = p.Slug()
			}
			out[c.FullPath()] = n.FullPath() + "|" + slug
			visit(c)
		}
	}
	visit(t.Root())
	return out
}

func TestBuild_Empty(t *testing.T) {
	tr, err := Build(owner, nil)
	require.NoError(t, err)

	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Root().Len())
	assert.Equal(t, "", tr.Root().FullPath())
	assert.True(t, tr.Root().Synthetic())
}

func TestBuild_SyntheticIntermediates(t *testing.T) {
	tr, err := Build(owner, []page.Page{pg("x/y/z", 0, true)})
	require.NoError(t, err)

	x, ok := tr.Find("x")
	require.True(t, ok)
	assert.True(t, x.Synthetic())

	xy, ok := tr.Find("x/y")
	require.True(t, ok)
	assert.True(t, xy.Synthetic())
	assert.Equal(t, "y", xy.Segment())

	xyz, ok := tr.Find("x/y/z")
	require.True(t, ok)
	assert.False(t, xyz.Synthetic())
	assert.Equal(t, 1, tr.Len())
}

func TestBuild_FullPathInvariants(t *testing.T) {
	pages := []page.Page{
		pg("programming/python/basics", 0, true),
		pg("programming/go", 1, false),
		pg("programming", 0, true),
		pg("journal/2024/01", 0, true),
	}
	tr, err := Build(owner, pages)
	require.NoError(t, err)

	for _, p := range pages {
		n, ok := tr.Find(p.Slug())
		require.True(t, ok, p.Slug())
		got, ok := n.Page()
		require.True(t, ok)
		assert.Equal(t, p.Slug(), got.Slug())
		assert.Equal(t, p.Slug(), n.FullPath())
	}

	var check func(n *Node)
	check = func(n *Node) {
		for _, c := range n.children {
			want := c.Segment()
			if n.FullPath() != "" {
				want = n.FullPath() + page.Delimiter + c.Segment()
			}
			assert.Equal(t, want, c.FullPath())
			assert.Equal(t, owner, c.OwnerID())
			check(c)
		}
	}
	check(tr.Root())
}

func TestBuild_PermutationIdempotent(t *testing.T) {
	pages := []page.Page{
		pg("a", 0, true),
		pg("a/b", 5, true),
		pg("a/c", 1, false),
		pg("d/e/f", 0, true),
		pg("d/g", -2, true),
		pg("h", 3, false),
	}
	first, err := Build(owner, pages)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]page.Page, len(pages))
		copy(shuffled, pages)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		again, err := Build(owner, shuffled)
		require.NoError(t, err)
		if diff := cmp.Diff(shape(first), shape(again)); diff != "" {
			t.Fatalf("tree shape differs (-first +again):\n%s", diff)
		}
		assert.Equal(t, slugs(Flatten(first, NoLimit)), slugs(Flatten(again, NoLimit)))
	}
}

func TestBuild_InvalidSlug(t *testing.T) {
	for _, slug := range []string{"/a/b", "a//b", "a/", ""} {
		t.Run(slug, func(t *testing.T) {
			_, err := Build(owner, []page.Page{pg("ok", 0, true), pg(slug, 0, true)})
			assert.ErrorIs(t, err, page.ErrInvalidSlug)
		})
	}
}

func TestBuild_InvalidPrivateSlugStillFailsPublicOnly(t *testing.T) {
	_, err := Build(owner, []page.Page{pg("a//b", 0, false)}, WithPublicOnly())
	assert.ErrorIs(t, err, page.ErrInvalidSlug)
}

func TestBuild_DuplicatePath(t *testing.T) {
	_, err := Build(owner, []page.Page{pg("a/b", 0, true), pg("a/b", 1, true)})
	assert.ErrorIs(t, err, ErrDuplicatePath)

	_, err = Build(owner, []page.Page{pg("a/b", 0, false), pg("a/b", 1, true)}, WithPublicOnly())
	assert.ErrorIs(t, err, ErrDuplicatePath)
}

func TestBuild_OwnerMismatch(t *testing.T) {
	other := page.NewPage("someone-else", "a", "A", 0, true)
	_, err := Build(owner, []page.Page{other})
	assert.ErrorIs(t, err, ErrOwnerMismatch)
}

func TestBuild_PublicOnlyPrunesPrivateFolders(t *testing.T) {
	pages := []page.Page{
		pg("docs/secret", 0, false),
		pg("blog/post", 0, true),
	}
	tr, err := Build(owner, pages, WithPublicOnly())
	require.NoError(t, err)

	_, ok := tr.Find("docs")
	assert.False(t, ok, "folder leading only to private pages must be pruned")
	_, ok = tr.Find("blog/post")
	assert.True(t, ok)
	assert.True(t, tr.PublicOnly())
	assert.Equal(t, 1, tr.Len())
}

func TestBuild_PublicOnlyKeepsPrivateAncestorAsFolder(t *testing.T) {
	pages := []page.Page{
		pg("a", 0, false),
		pg("a/b", 0, true),
	}
	tr, err := Build(owner, pages, WithPublicOnly())
	require.NoError(t, err)

	a, ok := tr.Find("a")
	require.True(t, ok)
	assert.True(t, a.Synthetic(), "private page becomes a folder that connects its public child")
	assert.Equal(t, "a", a.Title())
}

func TestBuild_PruningProperty(t *testing.T) {
	pages := []page.Page{
		pg("a/b/c", 0, false),
		pg("a/b/d", 0, true),
		pg("a/e/f/g", 0, false),
		pg("h/i", 0, false),
		pg("h", 0, true),
		pg("j", 0, false),
	}
	tr, err := Build(owner, pages, WithPublicOnly())
	require.NoError(t, err)

	var hasPage func(n *Node) bool
	hasPage = func(n *Node) bool {
		if !n.Synthetic() {
			return true
		}
		for _, c := range n.children {
			if hasPage(c) {
				return true
			}
		}
		return false
	}

	Walk(tr, func(n *Node, _ int) bool {
		assert.True(t, hasPage(n), "node %q has no page and no page below it", n.FullPath())
		return true
	})
	assert.Equal(t, map[string]string{
		"a":     "|-",
		"a/b":   "a|-",
		"a/b/d": "a/b|a/b/d",
		"h":     "|h",
	}, shape(tr))
}

func TestBuild_AllPrivatePublicOnlyIsEmpty(t *testing.T) {
	tr, err := Build(owner, []page.Page{pg("a", 0, false), pg("a/b", 0, false)}, WithPublicOnly())
	require.NoError(t, err)
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Root().Len())
}

func TestBuild_DeepPath(t *testing.T) {
	segs := make([]string, 200)
	for i := range segs {
		segs[i] = "s"
	}
	slug := page.JoinSegments(segs)

	tr, err := Build(owner, []page.Page{pg(slug, 0, true)})
	require.NoError(t, err)
	n, ok := tr.Find(slug)
	require.True(t, ok)
	assert.Equal(t, slug, n.FullPath())
}

func slugs(pages []page.Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Slug()
	}
	return out
}
