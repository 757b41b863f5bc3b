package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	CategoryName        string `json:"categoryName" validate:"required"`
	CategoryDescription string `json:"categoryDescription"`
	ParentCategoryID    *int64 `json:"parentCategoryId"`
	IsActive            bool   `json:"isActive"`
}

type updateCategoryRequest struct {
	CategoryID          int64  `json:"categoryId" validate:"required"`
	CategoryName        string `json:"categoryName" validate:"required"`
	CategoryDescription string `json:"categoryDescription"`
	ParentCategoryID    *int64 `json:"parentCategoryId"`
	IsActive            bool   `json:"isActive"`
}

// GetAll handles GET /api/categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Router       /api/categories [get]
func (h *CategoryHandler) GetAll(c echo.Context) error {
	categories, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Categories retrieved successfully.", categories)
}

// GetByID handles GET /api/categories/:id.
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	category, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category retrieved successfully.", category)
}

// Create handles POST /api/categories. Admin only.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Add(c.Request().Context(), ports.CategoryInput{
		CategoryName:        req.CategoryName,
		CategoryDescription: req.CategoryDescription,
		ParentCategoryID:    req.ParentCategoryID,
		IsActive:            req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Category created successfully.", created)
}

// Update handles PUT /api/categories/:id. Admin only. The body id must match
// the path id.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if id != req.CategoryID {
		return domain.ErrIDMismatch
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.CategoryInput{
		CategoryName:        req.CategoryName,
		CategoryDescription: req.CategoryDescription,
		ParentCategoryID:    req.ParentCategoryID,
		IsActive:            req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category updated successfully.", updated)
}

// Delete handles DELETE /api/categories/:id. Admin only; rejected while any
// article references the category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category deleted successfully.", nil)
}

// Search handles GET /api/categories/search?name=. Exact-match on name.
func (h *CategoryHandler) Search(c echo.Context) error {
	categories, err := h.service.Search(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Categories searched successfully.", categories)
}

// OData handles GET /api/categories/odata: the anonymous read-only
// pass-through over the full collection, returned without the envelope.
func (h *CategoryHandler) OData(c echo.Context) error {
	categories, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}
