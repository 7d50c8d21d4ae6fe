package v1

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/infrastructure/api/jsonapi"
	"github.com/helixml/wikitree/infrastructure/api/middleware"
	"github.com/helixml/wikitree/infrastructure/api/v1/dto"
	"github.com/helixml/wikitree/infrastructure/markup"
	"github.com/helixml/wikitree/internal/log"
)

// ForestRouter serves the views spanning every owner.
type ForestRouter struct {
	nav         *service.Navigation
	links       Links
	recentLimit int
	logger      *log.Logger
}

// NewForestRouter creates a new ForestRouter. recentLimit is the default for
// the recent listing's limit parameter.
func NewForestRouter(nav *service.Navigation, links Links, recentLimit int, logger *log.Logger) *ForestRouter {
	return &ForestRouter{nav: nav, links: links, recentLimit: recentLimit, logger: logger}
}

// Register adds the forest endpoints to router.
func (f *ForestRouter) Register(router chi.Router) {
	router.Get("/tree", f.Forest)
	router.Get("/tree.html", f.ForestHTML)
	router.Get("/recent", f.Recent)
}

// Forest handles GET /api/v1/tree: one tree per owner with visible pages.
func (f *ForestRouter) Forest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	navs, err := f.nav.RenderForest(ctx, service.ViewerFrom(ctx))
	if err != nil {
		middleware.WriteError(w, r, err, f.logger)
		return
	}

	resources := make([]*jsonapi.Resource, len(navs))
	for i, on := range navs {
		resources[i] = dto.NewTreeResource(on.Navigation, on.Owner.Name())
	}
	middleware.WriteDocument(w, http.StatusOK, jsonapi.NewListResponse(resources))
}

// ForestHTML handles GET /api/v1/tree.html: one section per owner.
func (f *ForestRouter) ForestHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	navs, err := f.nav.RenderForest(ctx, service.ViewerFrom(ctx))
	if err != nil {
		middleware.WriteError(w, r, err, f.logger)
		return
	}

	writeHTML(w, r, f.logger, func(buf *strings.Builder) error {
		for _, on := range navs {
			section := markup.Section{Heading: on.Owner.Name(), Navigation: on.Navigation}
			if err := f.links.Renderer(on.Owner.ID(), r).RenderSections(buf, []markup.Section{section}); err != nil {
				return err
			}
		}
		return nil
	})
}

// Recent handles GET /api/v1/recent.
func (f *ForestRouter) Recent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := ParseLimit(r, f.recentLimit)
	if err != nil {
		middleware.WriteError(w, r, err, f.logger)
		return
	}

	pages, err := f.nav.Recent(ctx, service.ViewerFrom(ctx), limit)
	if err != nil {
		middleware.WriteError(w, r, err, f.logger)
		return
	}
	doc := jsonapi.NewListResponse(dto.NewPageList(pages))
	doc.Meta = &jsonapi.Meta{"count": len(pages), "limit": limit}
	middleware.WriteDocument(w, http.StatusOK, doc)
}
