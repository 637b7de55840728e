package handler

import (
	"errors"
	"net/http"

	"ecommerce-admin-api/internal/model"
	"ecommerce-admin-api/internal/service"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the promotional content screens (billboards and
// posts) plus their public storefront reads.
type ContentHandler struct {
	catalogService service.CatalogService
}

func NewContentHandler(catalogService service.CatalogService) *ContentHandler {
	return &ContentHandler{
		catalogService: catalogService,
	}
}

func (h *ContentHandler) CreateBillboard(c echo.Context) error {
	ctx := c.Request().Context()

	var billboard model.Billboard
	if err := c.Bind(&billboard); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if billboard.ImageURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Image URL is required")
	}
	if billboard.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title is required")
	}

	if err := h.catalogService.CreateBillboard(ctx, &billboard); err != nil {
		if errors.Is(err, service.ErrBillboardLimit) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, billboard)
}

func (h *ContentHandler) ListBillboards(c echo.Context) error {
	billboards, err := h.catalogService.ListBillboards(c.Request().Context(), false)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, billboards)
}

// ListPublicBillboards returns only active billboards, for the storefront.
func (h *ContentHandler) ListPublicBillboards(c echo.Context) error {
	billboards, err := h.catalogService.ListBillboards(c.Request().Context(), true)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, billboards)
}

func (h *ContentHandler) UpdateBillboard(c echo.Context) error {
	ctx := c.Request().Context()

	var billboard model.Billboard
	if err := c.Bind(&billboard); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	billboard.ID = c.Param("billboardId")

	if err := h.catalogService.UpdateBillboard(ctx, &billboard); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Billboard not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, billboard)
}

func (h *ContentHandler) DeleteBillboard(c echo.Context) error {
	if err := h.catalogService.DeleteBillboard(c.Request().Context(), c.Param("billboardId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Billboard not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ContentHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var post model.Post
	if err := c.Bind(&post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if post.ImageURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Image URL is required")
	}
	if post.Link == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Link is required")
	}
	if post.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Description is required")
	}

	if err := h.catalogService.CreatePost(ctx, &post); err != nil {
		if errors.Is(err, service.ErrPostLimit) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.catalogService.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, posts)
}

func (h *ContentHandler) DeletePost(c echo.Context) error {
	if err := h.catalogService.DeletePost(c.Request().Context(), c.Param("postId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
