package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/api/handler"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

type stubCategoryService struct {
	categories []domain.Category
	getAllErr  error
	getByIDErr error
	deleteErr  error

	gotSearchName string
	gotDeleteID   int64
}

func (s *stubCategoryService) GetAll(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.getAllErr
}

func (s *stubCategoryService) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	if s.getByIDErr != nil {
		return nil, s.getByIDErr
	}
	for i := range s.categories {
		if s.categories[i].CategoryID == id {
			return &s.categories[i], nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (s *stubCategoryService) Add(_ context.Context, in ports.CategoryInput) (*domain.Category, error) {
	return &domain.Category{CategoryID: 10, CategoryName: in.CategoryName, IsActive: in.IsActive}, nil
}

func (s *stubCategoryService) Update(_ context.Context, id int64, in ports.CategoryInput) (*domain.Category, error) {
	return &domain.Category{CategoryID: id, CategoryName: in.CategoryName, IsActive: in.IsActive}, nil
}

func (s *stubCategoryService) Delete(_ context.Context, id int64) error {
	s.gotDeleteID = id
	return s.deleteErr
}

func (s *stubCategoryService) Search(_ context.Context, name string) ([]domain.Category, error) {
	s.gotSearchName = name
	return s.categories, nil
}

var _ ports.CategoryService = (*stubCategoryService)(nil)

func newCategoryEcho(svc *stubCategoryService) *echo.Echo {
	e := newTestEcho()
	h := handler.NewCategoryHandler(svc)
	e.GET("/api/categories", h.GetAll)
	e.GET("/api/categories/search", h.Search)
	e.GET("/api/categories/odata", h.OData)
	e.GET("/api/categories/:id", h.GetByID)
	e.POST("/api/categories", h.Create)
	e.PUT("/api/categories/:id", h.Update)
	e.DELETE("/api/categories/:id", h.Delete)
	return e
}

func TestCategoryHandler_GetAll(t *testing.T) {
	svc := &stubCategoryService{categories: []domain.Category{
		{CategoryID: 1, CategoryName: "Politics", IsActive: true},
		{CategoryID: 2, CategoryName: "Sports", IsActive: true},
	}}
	e := newCategoryEcho(svc)

	rec := doRequest(t, e, http.MethodGet, "/api/categories", "", "")

	env := assertEnvelope(t, rec, http.StatusOK, "Categories retrieved successfully.")
	var data []domain.Category
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data) != 2 || data[0].CategoryName != "Politics" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestCategoryHandler_GetByID_NotFound(t *testing.T) {
	e := newCategoryEcho(&stubCategoryService{})

	rec := doRequest(t, e, http.MethodGet, "/api/categories/99", "", "")

	assertEnvelope(t, rec, http.StatusNotFound, "Category not found.")
}

func TestCategoryHandler_GetByID_InvalidID(t *testing.T) {
	e := newCategoryEcho(&stubCategoryService{})

	rec := doRequest(t, e, http.MethodGet, "/api/categories/abc", "", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	e := newCategoryEcho(&stubCategoryService{})

	rec := doRequest(t, e, http.MethodPost, "/api/categories",
		`{"categoryName":"Tech","categoryDescription":"Technology news","isActive":true}`, "")

	assertEnvelope(t, rec, http.StatusCreated, "Category created successfully.")
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	e := newCategoryEcho(&stubCategoryService{})

	rec := doRequest(t, e, http.MethodPost, "/api/categories", `{"isActive":true}`, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestCategoryHandler_Update_IDMismatch(t *testing.T) {
	e := newCategoryEcho(&stubCategoryService{})

	rec := doRequest(t, e, http.MethodPut, "/api/categories/5",
		`{"categoryId":6,"categoryName":"Tech","isActive":true}`, "")

	assertEnvelope(t, rec, http.StatusBadRequest, "ID mismatch.")
}

func TestCategoryHandler_Delete_InUse(t *testing.T) {
	svc := &stubCategoryService{deleteErr: domain.ErrCategoryInUse}
	e := newCategoryEcho(svc)

	rec := doRequest(t, e, http.MethodDelete, "/api/categories/5", "", "")

	assertEnvelope(t, rec, http.StatusBadRequest, "Cannot delete category that is being used by news articles.")
	if svc.gotDeleteID != 5 {
		t.Fatalf("delete id = %d, want 5", svc.gotDeleteID)
	}
}

func TestCategoryHandler_Delete_Success(t *testing.T) {
	e := newCategoryEcho(&stubCategoryService{})

	rec := doRequest(t, e, http.MethodDelete, "/api/categories/5", "", "")

	assertEnvelope(t, rec, http.StatusOK, "Category deleted successfully.")
}

func TestCategoryHandler_Search_ForwardsName(t *testing.T) {
	svc := &stubCategoryService{}
	e := newCategoryEcho(svc)

	rec := doRequest(t, e, http.MethodGet, "/api/categories/search?name=Politics", "", "")

	assertEnvelope(t, rec, http.StatusOK, "Categories searched successfully.")
	if svc.gotSearchName != "Politics" {
		t.Fatalf("search name = %q, want Politics", svc.gotSearchName)
	}
}

func TestCategoryHandler_OData_NoEnvelope(t *testing.T) {
	svc := &stubCategoryService{categories: []domain.Category{{CategoryID: 1, CategoryName: "Politics"}}}
	e := newCategoryEcho(svc)

	rec := doRequest(t, e, http.MethodGet, "/api/categories/odata", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data []domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("odata must return a bare array: %v (body: %s)", err, rec.Body.String())
	}
	if len(data) != 1 {
		t.Fatalf("unexpected data: %+v", data)
	}
}
