package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/helixml/wikitree/domain/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	tr, err := Build(owner, nil)
	require.NoError(t, err)

	nav := Render(tr, true)
	assert.True(t, nav.Empty())
	assert.NotNil(t, nav.Entries)
	assert.Equal(t, 0, nav.Len())
	assert.Equal(t, owner, nav.OwnerID)
}

func TestRender_Structure(t *testing.T) {
	tr, err := Build(owner, []page.Page{
		page.NewPage(owner, "guides", "Guides", 1, true),
		page.NewPage(owner, "guides/setup", "Setup", 0, false),
		page.NewPage(owner, "ref/api", "API", 0, true),
	})
	require.NoError(t, err)

	got := Render(tr, true)

	want := Navigation{
		OwnerID:   owner,
		OwnerView: true,
		Entries: []Entry{
			{
				Title: "ref", Segment: "ref", Path: "ref",
				Children: []Entry{
					{Title: "API", Segment: "api", Path: "ref/api", Link: true, Children: []Entry{}},
				},
			},
			{
				Title: "Guides", Segment: "guides", Path: "guides", Link: true, Priority: 1,
				Children: []Entry{
					{Title: "Setup", Segment: "setup", Path: "guides/setup", Link: true, Private: true, Children: []Entry{}},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Entry{}, "LastUpdated")); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, got.Len())
	assert.True(t, got.Entries[0].Folder())
}

func TestRender_NonOwnerDoesNotMarkPrivate(t *testing.T) {
	tr, err := Build(owner, []page.Page{pg("a", 0, false)})
	require.NoError(t, err)

	nav := Render(tr, false)
	require.Len(t, nav.Entries, 1)
	assert.False(t, nav.Entries[0].Private)
	assert.False(t, nav.OwnerView)
}

func TestRender_PublicTreeForVisitor(t *testing.T) {
	tr, err := Build(owner, []page.Page{
		pg("docs/private", 0, false),
		pg("blog", 0, true),
	}, WithPublicOnly())
	require.NoError(t, err)

	nav := Render(tr, false)
	require.Len(t, nav.Entries, 1)
	assert.Equal(t, "blog", nav.Entries[0].Path)
}

func TestRender_LinksCarryLastUpdated(t *testing.T) {
	p := pg("a", 0, true)
	tr, err := Build(owner, []page.Page{p})
	require.NoError(t, err)

	nav := Render(tr, true)
	assert.Equal(t, p.LastUpdated(), nav.Entries[0].LastUpdated)
}
