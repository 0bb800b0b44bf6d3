package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route descreve um endpoint HTTP exposto pela API.
type Route struct {
	Method  string
	Path    string
	Handler http.Handler
}

type ConfigRouter func(*Router)

// WithRoutes registra um grupo de rotas na construção do router.
func WithRoutes(routes ...Route) ConfigRouter {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

type Router struct {
	mux *httprouter.Router
}

func New(configs ...ConfigRouter) Router {
	r := &Router{
		mux: httprouter.New(),
	}

	for _, config := range configs {
		config(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, route.Handler)
	}
}
