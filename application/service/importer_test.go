package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/domain/repository"
	"github.com/helixml/wikitree/domain/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleImport = `
owners:
  - id: 6f2a7c4e-1d3b-4b8e-9a55-0c1f2e3d4b5a
    name: Alice
pages:
  - owner: 6f2a7c4e-1d3b-4b8e-9a55-0c1f2e3d4b5a
    slug: programming
    title: Programming
    public: true
  - owner: 6f2a7c4e-1d3b-4b8e-9a55-0c1f2e3d4b5a
    slug: programming/python/basics
    priority: -1
    updated: 2026-02-03T04:05:06Z
`

func TestImporter_Import(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	imp := service.NewImporter(f.pages, f.owners, f.db, nil,
		service.WithUUIDOwners(),
		service.WithClock(func() time.Time { return t0 }),
	)

	res, err := imp.Import(ctx, strings.NewReader(sampleImport))
	require.NoError(t, err)
	assert.Equal(t, service.ImportResult{Owners: 1, Pages: 2}, res)

	stored, err := f.pages.Find(ctx, repository.WithOrderAsc("slug"))
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Programming", stored[0].Title())
	assert.True(t, stored[0].Public())
	assert.True(t, t0.Equal(stored[0].LastUpdated()))

	assert.Equal(t, "basics", stored[1].Title(), "title defaults to the last segment")
	assert.Equal(t, -1, stored[1].Priority())
	assert.False(t, stored[1].Public())
	assert.True(t, time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC).Equal(stored[1].LastUpdated()))

	owners, err := f.owners.Find(ctx)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Alice", owners[0].Name())
}

func TestImporter_ReimportUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	imp := service.NewImporter(f.pages, f.owners, f.db, nil)

	_, err := imp.Import(ctx, strings.NewReader("pages:\n  - {owner: alice, slug: a, title: One}\n"))
	require.NoError(t, err)
	_, err = imp.Import(ctx, strings.NewReader("pages:\n  - {owner: alice, slug: a, title: Two}\n"))
	require.NoError(t, err)

	got, err := f.pages.FindOne(ctx, page.WithOwner("alice"), page.WithSlug("a"))
	require.NoError(t, err)
	assert.Equal(t, "Two", got.Title())
}

func TestImporter_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		uuid  bool
		is    error
	}{
		{"unknown field", "pages:\n  - {owner: alice, slug: a, colour: red}\n", false, service.ErrInvalidImport},
		{"missing owner", "pages:\n  - {slug: a}\n", false, service.ErrOwnerRequired},
		{"invalid slug", "pages:\n  - {owner: alice, slug: a/}\n", false, page.ErrInvalidSlug},
		{"duplicate", "pages:\n  - {owner: alice, slug: a}\n  - {owner: alice, slug: a}\n", false, tree.ErrDuplicatePath},
		{"non uuid owner", "pages:\n  - {owner: alice, slug: a}\n", true, service.ErrInvalidImport},
		{"non uuid owner record", "owners:\n  - {id: alice}\n", true, service.ErrInvalidImport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var opts []service.ImporterOption
			if tt.uuid {
				opts = append(opts, service.WithUUIDOwners())
			}
			imp := service.NewImporter(f.pages, f.owners, f.db, nil, opts...)

			_, err := imp.Import(context.Background(), strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.is)

			n, err := f.pages.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n, "nothing is written when validation fails")
		})
	}
}

func TestImporter_EmptyDocument(t *testing.T) {
	f := newFixture(t)
	imp := service.NewImporter(f.pages, f.owners, f.db, nil)

	res, err := imp.Import(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, service.ImportResult{}, res)
}

// brokenPages writes the batch and then fails, as a store would when a
// later statement in the batch is rejected.
type brokenPages struct {
	page.Store
}

var errBatch = errors.New("batch rejected")

func (b brokenPages) SaveAll(ctx context.Context, pages []page.Page) ([]page.Page, error) {
	if _, err := b.Store.SaveAll(ctx, pages); err != nil {
		return nil, err
	}
	return nil, errBatch
}

func TestImporter_FailedWriteStoresNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	imp := service.NewImporter(brokenPages{f.pages}, f.owners, f.db, nil, service.WithUUIDOwners())

	_, err := imp.Import(ctx, strings.NewReader(sampleImport))
	require.ErrorIs(t, err, errBatch)

	owners, err := f.owners.Find(ctx)
	require.NoError(t, err)
	assert.Empty(t, owners, "owners roll back with the pages")

	n, err := f.pages.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
