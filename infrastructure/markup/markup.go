// Package markup renders navigation structures as HTML list fragments.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/helixml/wikitree/domain/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLinkPrefix prepends prefix to every page link.
func WithLinkPrefix(prefix string) Option {
	return func(r *Renderer) { r.prefix = strings.TrimRight(prefix, "/") }
}

// WithClass sets the class of the outermost list. Light and dark page themes
// use it to style the same fragment.
func WithClass(class string) Option {
	return func(r *Renderer) { r.class = class }
}

// Renderer converts navigation entries into nested <ul> fragments. Pages are
// anchors, folders are plain labels and private pages carry the "private"
// class.
type Renderer struct {
	prefix string
	class  string
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) Renderer {
	var r Renderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Href returns the link target for a page path.
func (r Renderer) Href(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return r.prefix + "/" + strings.Join(segs, "/")
}

// Render writes nav as a single <ul> element.
func (r Renderer) Render(w io.Writer, nav tree.Navigation) error {
	ul := r.list(nav.Entries)
	if r.class != "" {
		ul.Attr = append(ul.Attr, html.Attribute{Key: "class", Val: r.class})
	}
	if err := html.Render(w, ul); err != nil {
		return fmt.Errorf("render navigation: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func (r Renderer) RenderString(nav tree.Navigation) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, nav); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Section is one owner's navigation with a heading.
type Section struct {
	Heading    string
	Navigation tree.Navigation
}

// RenderSections writes one <section> per entry, each with an <h2> heading
// followed by the owner's list.
func (r Renderer) RenderSections(w io.Writer, sections []Section) error {
	for _, s := range sections {
		sec := element(atom.Section, html.Attribute{Key: "data-owner", Val: s.Navigation.OwnerID})
		h2 := element(atom.H2)
		h2.AppendChild(text(s.Heading))
		sec.AppendChild(h2)

		ul := r.list(s.Navigation.Entries)
		if r.class != "" {
			ul.Attr = append(ul.Attr, html.Attribute{Key: "class", Val: r.class})
		}
		sec.AppendChild(ul)

		if err := html.Render(w, sec); err != nil {
			return fmt.Errorf("render section %q: %w", s.Heading, err)
		}
	}
	return nil
}

func (r Renderer) list(entries []tree.Entry) *html.Node {
	ul := element(atom.Ul)
	for _, e := range entries {
		ul.AppendChild(r.item(e))
	}
	return ul
}

func (r Renderer) item(e tree.Entry) *html.Node {
	var li *html.Node
	if e.Private {
		li = element(atom.Li, html.Attribute{Key: "class", Val: "private"})
	} else {
		li = element(atom.Li)
	}

	var label *html.Node
	if e.Link {
		label = element(atom.A, html.Attribute{Key: "href", Val: r.Href(e.Path)})
	} else {
		label = element(atom.Span, html.Attribute{Key: "class", Val: "folder"})
	}
	label.AppendChild(text(e.Title))
	li.AppendChild(label)

	if len(e.Children) > 0 {
		li.AppendChild(r.list(e.Children))
	}
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
