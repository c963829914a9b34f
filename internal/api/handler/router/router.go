package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithInstrumentation wraps every route added afterwards with fn, which
	// receives the route pattern
	WithInstrumentation = func(fn func(pattern string, next http.Handler) http.Handler) ConfigRouter {
		return func(router *Router) {
			router.instrument = fn
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // applied in order, first is outermost
}

type Router struct {
	router     *httprouter.Router
	instrument func(pattern string, next http.Handler) http.Handler
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		if r.instrument != nil {
			handler = r.instrument(route.Path, handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}

// Params returns the path parameters matched for req
func Params(req *http.Request) httprouter.Params {
	return httprouter.ParamsFromContext(req.Context())
}
