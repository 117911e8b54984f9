package menu

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Menu represents the root menu structure.
type Menu struct {
	// Title is the menu
	Title string `json:"title"`

	// Description of the menu
	Description string `json:"description,omitempty"`

	// Version of the menu
	Version string `json:"version,omitempty"`

	// Items is the list of top-level menu items
	Items []*Item `json:"items,omitempty"`
}

// AddChild appends node as a new top-level item.
// Nodes that are not *Item are ignored.
func (m *Menu) AddChild(node Node) {
	if it, ok := node.(*Item); ok {
		m.Items = append(m.Items, it)
	}
}

// Find returns the first item with the given id, searching depth first.
func (m *Menu) Find(id string) *Item {
	return find(m.Items, id)
}

func find(items []*Item, id string) *Item {
	for _, it := range items {
		if it.Key == id {
			return it
		}
		if found := find(it.Items, id); found != nil {
			return found
		}
	}
	return nil
}

// RenderOptions are the parameters of an HTML render pass.
type RenderOptions struct {
	// OutermostClass is added to every top-level list element.
	OutermostClass string

	// ChildrenWrapClass, when set, wraps each nested list in a div with this class.
	ChildrenWrapClass string

	// Limit caps the rendered depth. Zero renders the whole tree.
	Limit int
}

// HTML writes the menu as nested HTML lists.
func (m *Menu) HTML(w io.Writer, opts RenderOptions) error {
	var b strings.Builder

	b.WriteString("<ul>")
	renderItems(&b, m.Items, 0, opts)
	b.WriteString("</ul>")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write menu html: %w", err)
	}
	return nil
}

func renderItems(b *strings.Builder, items []*Item, level int, opts RenderOptions) {
	for _, it := range items {
		class := fmt.Sprintf("level%d", level)
		if level == 0 && opts.OutermostClass != "" {
			class += " " + opts.OutermostClass
		}
		if it.IsActive {
			class += " active"
		} else if it.HasActive {
			class += " has-active"
		}

		fmt.Fprintf(b, `<li class="%s"><a href="%s"><span>%s</span></a>`,
			html.EscapeString(class), html.EscapeString(it.URL), html.EscapeString(it.Name))

		if len(it.Items) > 0 && (opts.Limit == 0 || level+1 < opts.Limit) {
			if opts.ChildrenWrapClass != "" {
				fmt.Fprintf(b, `<div class="%s">`, html.EscapeString(opts.ChildrenWrapClass))
			}
			fmt.Fprintf(b, `<ul class="level%d submenu">`, level)
			renderItems(b, it.Items, level+1, opts)
			b.WriteString("</ul>")
			if opts.ChildrenWrapClass != "" {
				b.WriteString("</div>")
			}
		}

		b.WriteString("</li>")
	}
}

// BeforeRender runs against a freshly built menu before it is rendered.
type BeforeRender func(m *Menu, opts RenderOptions) error

// Handler returns an HTTP handler that responds with the menu structure as JSON.
// build is called once per request so hooks always see an unmodified tree.
func Handler(build func() *Menu, before ...BeforeRender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m, ok := prepare(w, r, build, RenderOptions{}, before)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(m); err != nil {
			slog.Error("failed to encode menu", "error", err)
			return
		}

		slog.Debug("menu response sent",
			"method", r.Method,
			"url", r.URL.Path,
			"items", len(m.Items),
		)
	})
}

// HTMLHandler returns an HTTP handler that responds with the menu rendered as HTML.
func HTMLHandler(build func() *Menu, opts RenderOptions, before ...BeforeRender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m, ok := prepare(w, r, build, opts, before)
		if !ok {
			return
		}

		var b strings.Builder
		if err := m.HTML(&b, opts); err != nil {
			slog.Error("failed to render menu", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, b.String())
	})
}

func prepare(w http.ResponseWriter, r *http.Request, build func() *Menu, opts RenderOptions, before []BeforeRender) (*Menu, bool) {
	slog.Debug("handling menu request",
		"method", r.Method,
		"url", r.URL.Path,
	)

	m := build()
	for _, hook := range before {
		if err := hook(m, opts); err != nil {
			slog.Error("menu hook failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return nil, false
		}
	}
	return m, true
}
