package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// ArticleHandler handles HTTP requests for news article operations.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

type createArticleRequest struct {
	NewsTitle   string `json:"newsTitle" validate:"required"`
	Headline    string `json:"headline" validate:"required"`
	NewsContent string `json:"newsContent"`
	NewsSource  string `json:"newsSource"`
	CategoryID  int64  `json:"categoryId" validate:"required"`
	NewsStatus  bool   `json:"newsStatus"`
}

type updateArticleRequest struct {
	NewsArticleID int64   `json:"newsArticleId" validate:"required"`
	NewsTitle     string  `json:"newsTitle" validate:"required"`
	Headline      string  `json:"headline" validate:"required"`
	NewsContent   string  `json:"newsContent"`
	NewsSource    string  `json:"newsSource"`
	CategoryID    int64   `json:"categoryId" validate:"required"`
	NewsStatus    bool    `json:"newsStatus"`
	TagIDs        []int64 `json:"tagIds"`
}

// GetAll handles GET /api/newsarticles: the active articles.
func (h *ArticleHandler) GetAll(c echo.Context) error {
	articles, err := h.service.GetActive(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "News articles retrieved successfully.", articles)
}

// GetByID handles GET /api/newsarticles/:id.
func (h *ArticleHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	article, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "News article retrieved successfully.", article)
}

// Create handles POST /api/newsarticles. The caller becomes the creator; any
// tags in the payload are ignored, articles start with an empty tag set.
func (h *ArticleHandler) Create(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.ArticleInput{
		NewsTitle:   req.NewsTitle,
		Headline:    req.Headline,
		NewsContent: req.NewsContent,
		NewsSource:  req.NewsSource,
		CategoryID:  req.CategoryID,
		NewsStatus:  req.NewsStatus,
	}, identity)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "News article created successfully.", created)
}

// Update handles PUT /api/newsarticles/:id. Full-field replace; the tag set
// is rewritten to exactly tagIds. Staff may only update their own articles.
func (h *ArticleHandler) Update(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if id != req.NewsArticleID {
		return domain.ErrIDMismatch
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.ArticleInput{
		NewsTitle:   req.NewsTitle,
		Headline:    req.Headline,
		NewsContent: req.NewsContent,
		NewsSource:  req.NewsSource,
		CategoryID:  req.CategoryID,
		NewsStatus:  req.NewsStatus,
		TagIDs:      req.TagIDs,
	}, identity)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "News article updated successfully.", updated)
}

// Delete handles DELETE /api/newsarticles/:id. Staff may only delete their
// own articles.
func (h *ArticleHandler) Delete(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id, identity); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "News article deleted successfully.", nil)
}

// Search handles GET /api/newsarticles/search?title=&categoryId=&tagName=.
// Substring on title and tag name, exact on categoryId; AND-combined, all
// optional.
func (h *ArticleHandler) Search(c echo.Context) error {
	filters := ports.ArticleSearchFilters{
		Title:   c.QueryParam("title"),
		TagName: c.QueryParam("tagName"),
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid categoryId")
		}
		filters.CategoryID = &categoryID
	}

	articles, err := h.service.Search(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Search results retrieved successfully.", articles)
}

// MyArticles handles GET /api/newsarticles/my-articles: articles created by
// the caller. Staff only.
func (h *ArticleHandler) MyArticles(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	articles, err := h.service.GetByCreator(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Your news articles retrieved successfully.", articles)
}

// Report handles GET /api/newsarticles/report?startDate=&endDate=: articles
// created in [startDate, endDate] inclusive, newest first. Admin only.
func (h *ArticleHandler) Report(c echo.Context) error {
	start, err := parseReportDate(c.QueryParam("startDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
	}
	end, err := parseReportDate(c.QueryParam("endDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
	}

	articles, err := h.service.GetByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "News report generated successfully.", articles)
}

// OData handles GET /api/newsarticles/odata: anonymous read-only
// pass-through over the full collection, active or not.
func (h *ArticleHandler) OData(c echo.Context) error {
	articles, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// parseReportDate accepts a bare date or a full RFC 3339 timestamp.
func parseReportDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
