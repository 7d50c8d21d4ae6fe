package v1

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/infrastructure/api/jsonapi"
	"github.com/helixml/wikitree/infrastructure/api/middleware"
	"github.com/helixml/wikitree/infrastructure/api/v1/dto"
	"github.com/helixml/wikitree/internal/log"
)

// UsersRouter serves one owner's tree views.
type UsersRouter struct {
	nav      *service.Navigation
	links    Links
	navLimit int
	logger   *log.Logger
}

// NewUsersRouter creates a new UsersRouter. navLimit is the default for the
// page listing's limit parameter.
func NewUsersRouter(nav *service.Navigation, links Links, navLimit int, logger *log.Logger) *UsersRouter {
	return &UsersRouter{nav: nav, links: links, navLimit: navLimit, logger: logger}
}

// Routes returns the chi router for user endpoints.
func (u *UsersRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{owner}/tree", u.Tree)
	router.Get("/{owner}/tree.html", u.TreeHTML)
	router.Get("/{owner}/pages", u.Pages)
	router.Get("/{owner}/pages/*", u.Context)

	return router
}

// Tree handles GET /api/v1/users/{owner}/tree.
func (u *UsersRouter) Tree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := chi.URLParam(r, "owner")

	nav, err := u.nav.Render(ctx, owner, service.ViewerFrom(ctx))
	if err != nil {
		middleware.WriteError(w, r, err, u.logger)
		return
	}
	middleware.WriteDocument(w, http.StatusOK, jsonapi.NewSingleResponse(dto.NewTreeResource(nav, "")))
}

// TreeHTML handles GET /api/v1/users/{owner}/tree.html.
func (u *UsersRouter) TreeHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := chi.URLParam(r, "owner")

	nav, err := u.nav.Render(ctx, owner, service.ViewerFrom(ctx))
	if err != nil {
		middleware.WriteError(w, r, err, u.logger)
		return
	}
	writeHTML(w, r, u.logger, func(buf *strings.Builder) error {
		return u.links.Renderer(owner, r).Render(buf, nav)
	})
}

// Pages handles GET /api/v1/users/{owner}/pages, listing pages in tree order.
func (u *UsersRouter) Pages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := chi.URLParam(r, "owner")

	limit, err := ParseLimit(r, u.navLimit)
	if err != nil {
		middleware.WriteError(w, r, err, u.logger)
		return
	}

	pages, err := u.nav.Ordered(ctx, owner, service.ViewerFrom(ctx), limit)
	if err != nil {
		middleware.WriteError(w, r, err, u.logger)
		return
	}
	doc := jsonapi.NewListResponse(dto.NewPageList(pages))
	doc.Meta = &jsonapi.Meta{"count": len(pages), "limit": limit}
	middleware.WriteDocument(w, http.StatusOK, doc)
}

// Context handles GET /api/v1/users/{owner}/pages/{slug...}/context.
func (u *UsersRouter) Context(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := chi.URLParam(r, "owner")

	slug, ok := strings.CutSuffix(chi.URLParam(r, "*"), "/context")
	if !ok {
		middleware.WriteError(w, r, middleware.NewAPIError(http.StatusNotFound, "unknown page resource", nil), u.logger)
		return
	}

	pc, err := u.nav.Context(ctx, owner, service.ViewerFrom(ctx), slug)
	if err != nil {
		middleware.WriteError(w, r, err, u.logger)
		return
	}
	doc := jsonapi.NewSingleResponse(dto.NewContextResource(owner, pc))
	doc.Links = &jsonapi.Links{Self: r.URL.Path, Up: u.links.Tree(owner)}
	middleware.WriteDocument(w, http.StatusOK, doc)
}
