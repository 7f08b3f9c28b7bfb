// Package router builds the echo router: it installs the global
// middleware, the error handler and every route.
package router

import (
	"github.com/RAM-73377/jobportaL/internal/handler"
	"github.com/RAM-73377/jobportaL/internal/middleware"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns an echo instance serving the resource and system
// routes through the global middleware chain.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(middlewares.Global.AppendSlash(resourcePrefixes...))

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerResourceRoutes(router, h)

	return router
}

// resourcePrefixes are redirected to their trailing-slash form.
var resourcePrefixes = []string{"/posts", "/stats", "/activities"}

// registerResourceRoutes mounts the three verticals. Paths keep their
// trailing slash.
func registerResourceRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/posts/", h.Blog.ListPosts)
	r.GET("/posts/:id/", h.Blog.GetPost)

	r.GET("/stats/", h.Stats.GetStats)
	r.POST("/stats/", h.Stats.CreateStats)

	r.GET("/activities/", h.Activity.ListActivities)
	r.POST("/activities/", h.Activity.CreateActivity)
}
