// Package handler is the HTTP layer: it binds and validates requests
// through the validation package and calls the service layer.
package handler

import (
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/RAM-73377/jobportaL/internal/service"
)

type Handlers struct {
	Blog     *BlogHandler
	Stats    *StatsHandler
	Activity *ActivityHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Blog:     NewBlogHandler(s, services.Blog),
		Stats:    NewStatsHandler(s, services.Stats),
		Activity: NewActivityHandler(s, services.Activity),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
