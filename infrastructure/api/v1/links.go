package v1

import (
	"net/http"
	"strings"

	"github.com/helixml/wikitree/infrastructure/api/middleware"
	"github.com/helixml/wikitree/infrastructure/markup"
	"github.com/helixml/wikitree/internal/log"
)

// Links builds the URLs that rendered trees point at.
type Links struct {
	pageBase string
}

// NewLinks creates Links rooted at pageBase, the path under which the wiki
// front end serves pages (for example "/wiki").
func NewLinks(pageBase string) Links {
	return Links{pageBase: strings.TrimRight(pageBase, "/")}
}

// Tree returns the API URL of an owner's tree.
func (l Links) Tree(owner string) string {
	return "/api/v1/users/" + owner + "/tree"
}

// Renderer returns an HTML renderer linking into owner's pages. The optional
// class query parameter sets the list's class, letting each page theme style
// its own fragment.
func (l Links) Renderer(owner string, r *http.Request) markup.Renderer {
	opts := []markup.Option{markup.WithLinkPrefix(l.pageBase + "/" + owner)}
	if class := r.URL.Query().Get("class"); class != "" {
		opts = append(opts, markup.WithClass(class))
	}
	return markup.NewRenderer(opts...)
}

func writeHTML(w http.ResponseWriter, r *http.Request, logger *log.Logger, render func(*strings.Builder) error) {
	var buf strings.Builder
	if err := render(&buf); err != nil {
		middleware.WriteError(w, r, err, logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(buf.String()))
}
