package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// TagHandler handles HTTP requests for tag operations.
type TagHandler struct {
	service ports.TagService
}

func NewTagHandler(service ports.TagService) *TagHandler {
	return &TagHandler{service: service}
}

type createTagRequest struct {
	TagName string `json:"tagName" validate:"required"`
	Note    string `json:"note"`
}

type updateTagRequest struct {
	TagID   int64  `json:"tagId" validate:"required"`
	TagName string `json:"tagName" validate:"required"`
	Note    string `json:"note"`
}

// GetAll handles GET /api/tags.
func (h *TagHandler) GetAll(c echo.Context) error {
	tags, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tags retrieved successfully.", tags)
}

// GetByID handles GET /api/tags/:id.
func (h *TagHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	tag, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tag retrieved successfully.", tag)
}

// Create handles POST /api/tags. Admin only.
func (h *TagHandler) Create(c echo.Context) error {
	var req createTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Add(c.Request().Context(), ports.TagInput{
		TagName: req.TagName,
		Note:    req.Note,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Tag created successfully.", created)
}

// Update handles PUT /api/tags/:id. Admin only.
func (h *TagHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if id != req.TagID {
		return domain.ErrIDMismatch
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.TagInput{
		TagName: req.TagName,
		Note:    req.Note,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tag updated successfully.", updated)
}

// Delete handles DELETE /api/tags/:id. Admin only; tags carry no delete guard.
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tag deleted successfully.", nil)
}

// Search handles GET /api/tags/search?name=. Exact-match on name.
func (h *TagHandler) Search(c echo.Context) error {
	tags, err := h.service.Search(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tags searched successfully.", tags)
}

// OData handles GET /api/tags/odata: anonymous read-only pass-through.
func (h *TagHandler) OData(c echo.Context) error {
	tags, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}
