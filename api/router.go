// Package api wires the HTTP surface of gridpath: a gin engine with
// versioned controllers, request IDs and a Prometheus scrape endpoint.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/api/i"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	middleware  []gin.HandlerFunc
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Middleware  []gin.HandlerFunc // Applied to every versioned route after RequestID
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		middleware:  config.Middleware,
	}
}

// Handler builds the gin engine with every route registered.
//
// Routes:
//   - {baseURL}/v1/...: controller routes, each tagged with a request ID.
//   - /metrics: Prometheus exposition of the default registry.
func (r *Router) Handler() *gin.Engine {
	router := gin.Default()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		v1.Use(RequestID())
		v1.Use(r.middleware...)
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
