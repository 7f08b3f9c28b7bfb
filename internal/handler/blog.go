package handler

import (
	"net/http"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/RAM-73377/jobportaL/internal/service"
	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	Handler
	blogService *service.BlogService
}

func NewBlogHandler(s *server.Server, blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		Handler:     NewHandler(s),
		blogService: blogService,
	}
}

// ListPosts serves GET /posts/.
func (h *BlogHandler) ListPosts(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.ListBlogPostsRequest) ([]model.BlogPost, error) {
			return h.blogService.List(c.Request().Context())
		},
		http.StatusOK,
		&model.ListBlogPostsRequest{},
	)(c)
}

// GetPost serves GET /posts/:id/.
func (h *BlogHandler) GetPost(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.GetBlogPostRequest) (*model.BlogPost, error) {
			return h.blogService.GetByID(c.Request().Context(), req.ID)
		},
		http.StatusOK,
		&model.GetBlogPostRequest{},
	)(c)
}
