// Package service fetches page snapshots and turns them into navigation views.
package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/domain/repository"
	"github.com/helixml/wikitree/domain/tree"
	"golang.org/x/sync/errgroup"
)

// PageContext locates one path inside its owner's tree.
type PageContext struct {
	Node       *tree.Node
	Breadcrumb []*tree.Node
	Previous   []*tree.Node
	Next       []*tree.Node
}

// Navigation builds trees on demand for a viewer. Nothing is cached; every
// call reflects the current store contents.
type Navigation struct {
	pages  page.Store
	owners page.OwnerStore
	logger *slog.Logger
}

// NewNavigation creates a new Navigation service.
func NewNavigation(pages page.Store, owners page.OwnerStore, logger *slog.Logger) *Navigation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigation{pages: pages, owners: owners, logger: logger}
}

func isOwner(ownerID, viewerID string) bool {
	return viewerID != "" && viewerID == ownerID
}

// Tree builds ownerID's tree as seen by viewerID. Other viewers get the
// public-only tree. Private pages are still loaded so that an invalid or
// colliding private slug fails the same way for every viewer.
func (s *Navigation) Tree(ctx context.Context, ownerID, viewerID string) (tree.Tree, error) {
	if ownerID == "" {
		return tree.Tree{}, ErrOwnerRequired
	}

	pages, err := s.pages.Find(ctx, page.WithOwner(ownerID))
	if err != nil {
		return tree.Tree{}, fmt.Errorf("load pages: %w", err)
	}

	var opts []tree.BuildOption
	if !isOwner(ownerID, viewerID) {
		opts = append(opts, tree.WithPublicOnly())
	}
	t, err := tree.Build(ownerID, pages, opts...)
	if err != nil {
		return tree.Tree{}, err
	}

	s.logger.DebugContext(ctx, "tree built",
		"owner_id", ownerID,
		"pages", t.Len(),
		"public_only", t.PublicOnly(),
	)
	return t, nil
}

// Render returns the nested navigation structure of ownerID's tree.
func (s *Navigation) Render(ctx context.Context, ownerID, viewerID string) (tree.Navigation, error) {
	t, err := s.Tree(ctx, ownerID, viewerID)
	if err != nil {
		return tree.Navigation{}, err
	}
	return tree.Render(t, isOwner(ownerID, viewerID)), nil
}

// Ordered returns up to limit of ownerID's pages in tree order.
// A limit <= 0 returns every visible page.
func (s *Navigation) Ordered(ctx context.Context, ownerID, viewerID string, limit int) ([]page.Page, error) {
	t, err := s.Tree(ctx, ownerID, viewerID)
	if err != nil {
		return nil, err
	}
	return tree.Flatten(t, limit), nil
}

// Context returns the breadcrumb, siblings and node for slug. Folder paths
// are valid; their node carries no page.
func (s *Navigation) Context(ctx context.Context, ownerID, viewerID, slug string) (PageContext, error) {
	if err := page.ValidateSlug(slug); err != nil {
		return PageContext{}, err
	}

	t, err := s.Tree(ctx, ownerID, viewerID)
	if err != nil {
		return PageContext{}, err
	}

	node, ok := t.Find(slug)
	if !ok {
		return PageContext{}, fmt.Errorf("%w: page %q of %s", ErrNotFound, slug, ownerID)
	}
	prev, next := t.Siblings(slug)
	return PageContext{
		Node:       node,
		Breadcrumb: t.Breadcrumb(slug),
		Previous:   prev,
		Next:       next,
	}, nil
}

// Forest builds one tree per owner with at least one page visible to
// viewerID. The viewer's own tree includes their private pages.
func (s *Navigation) Forest(ctx context.Context, viewerID string) (tree.Forest, error) {
	pages, err := s.pages.Find(ctx, page.WithVisibleTo(viewerID))
	if err != nil {
		return tree.Forest{}, fmt.Errorf("load pages: %w", err)
	}

	groups := tree.GroupByOwner(pages)
	ownerIDs := make([]string, 0, len(groups))
	for id := range groups {
		ownerIDs = append(ownerIDs, id)
	}
	slices.Sort(ownerIDs)

	trees, err := s.buildAll(ctx, ownerIDs, groups, viewerID)
	if err != nil {
		return tree.Forest{}, err
	}

	var owners []page.Owner
	if len(ownerIDs) > 0 {
		owners, err = s.owners.Find(ctx, page.WithUserIDs(ownerIDs))
		if err != nil {
			return tree.Forest{}, fmt.Errorf("load owners: %w", err)
		}
	}

	forest := tree.NewForest(trees, owners)
	s.logger.DebugContext(ctx, "forest built", "owners", len(forest.Trees()), "pages", len(pages))
	return forest, nil
}

// buildAll builds the trees for ownerIDs concurrently. Each goroutine
// writes only its own slot of the result.
func (s *Navigation) buildAll(
	ctx context.Context,
	ownerIDs []string,
	groups map[string][]page.Page,
	viewerID string,
) ([]tree.Tree, error) {
	trees := make([]tree.Tree, len(ownerIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, ownerID := range ownerIDs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var opts []tree.BuildOption
			if !isOwner(ownerID, viewerID) {
				opts = append(opts, tree.WithPublicOnly())
			}
			t, err := tree.Build(ownerID, groups[ownerID], opts...)
			if err != nil {
				return err
			}
			trees[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}

// Recent returns the limit most recently updated pages visible to viewerID.
// The selected pages are listed in tree order per owner, with owners ordered
// by their latest update. A limit <= 0 returns every visible page.
func (s *Navigation) Recent(ctx context.Context, viewerID string, limit int) ([]page.Page, error) {
	opts := []repository.Option{page.WithVisibleTo(viewerID), page.WithRecentFirst()}
	if limit > 0 {
		opts = append(opts, repository.WithLimit(limit))
	}
	pages, err := s.pages.Find(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load recent pages: %w", err)
	}

	latest := make(map[string]page.Page)
	for _, p := range pages {
		if cur, ok := latest[p.OwnerID()]; !ok || p.LastUpdated().After(cur.LastUpdated()) {
			latest[p.OwnerID()] = p
		}
	}
	ownerIDs := make([]string, 0, len(latest))
	for id := range latest {
		ownerIDs = append(ownerIDs, id)
	}
	slices.SortFunc(ownerIDs, func(a, b string) int {
		if c := latest[b].LastUpdated().Compare(latest[a].LastUpdated()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	trees, err := s.buildAll(ctx, ownerIDs, tree.GroupByOwner(pages), viewerID)
	if err != nil {
		return nil, err
	}

	result := make([]page.Page, 0, len(pages))
	for _, t := range trees {
		result = append(result, tree.Flatten(t, tree.NoLimit)...)
	}
	return result, nil
}

// OwnerNavigation is one owner's rendered tree within a forest.
type OwnerNavigation struct {
	Owner      page.Owner
	Navigation tree.Navigation
}

// RenderForest renders every tree of the viewer's forest in display order.
func (s *Navigation) RenderForest(ctx context.Context, viewerID string) ([]OwnerNavigation, error) {
	forest, err := s.Forest(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	trees := forest.Trees()
	out := make([]OwnerNavigation, len(trees))
	for i, t := range trees {
		out[i] = OwnerNavigation{
			Owner:      forest.Owner(t.OwnerID()),
			Navigation: tree.Render(t, isOwner(t.OwnerID(), viewerID)),
		}
	}
	return out, nil
}
