package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup. httprouter routes sharing a path prefix
type RouteGroup struct {
	r *httprouter.Router
	p string

	// shared with subgroups
	patterns *[]string
}

func NewRouteGroup(r *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{r: r, p: prefix, patterns: &[]string{}}
}

func (g *RouteGroup) Group(prefix string) *RouteGroup {
	return &RouteGroup{r: g.r, p: g.subPath(prefix), patterns: g.patterns}
}

// Patterns. every path pattern registered through this group or its subgroups
func (g *RouteGroup) Patterns() []string {
	out := make([]string, len(*g.patterns))
	copy(out, *g.patterns)
	return out
}

func (g *RouteGroup) register(p string) string {
	full := g.subPath(p)
	for _, existing := range *g.patterns {
		if existing == full {
			return full
		}
	}
	*g.patterns = append(*g.patterns, full)
	return full
}

func (g *RouteGroup) subPath(p string) string {
	joined := path.Join(g.p, p)
	// keep a trailing slash, path.Join drops it
	if len(p) > 0 && p[len(p)-1] == '/' && joined[len(joined)-1] != '/' {
		return joined + "/"
	}
	return joined
}

func (g *RouteGroup) Handle(method, p string, handle httprouter.Handle) {
	g.r.Handle(method, g.register(p), handle)
}

func (g *RouteGroup) Handler(method, p string, handler http.Handler) {
	g.r.Handler(method, g.register(p), handler)
}

func (g *RouteGroup) GET(p string, handle httprouter.Handle) {
	g.Handle(http.MethodGet, p, handle)
}

func (g *RouteGroup) POST(p string, handle httprouter.Handle) {
	g.Handle(http.MethodPost, p, handle)
}

func (g *RouteGroup) PUT(p string, handle httprouter.Handle) {
	g.Handle(http.MethodPut, p, handle)
}

func (g *RouteGroup) DELETE(p string, handle httprouter.Handle) {
	g.Handle(http.MethodDelete, p, handle)
}
