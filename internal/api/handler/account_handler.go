package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

// AccountHandler handles HTTP requests for system account operations,
// including the staff self-service profile endpoints.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type createAccountRequest struct {
	AccountName     string `json:"accountName" validate:"required"`
	AccountEmail    string `json:"accountEmail" validate:"required,email"`
	AccountRole     int    `json:"accountRole" validate:"oneof=0 1"`
	AccountPassword string `json:"accountPassword" validate:"required,min=8"`
}

type updateAccountRequest struct {
	AccountID       int64  `json:"accountId" validate:"required"`
	AccountName     string `json:"accountName" validate:"required"`
	AccountEmail    string `json:"accountEmail" validate:"required,email"`
	AccountRole     int    `json:"accountRole" validate:"oneof=0 1"`
	AccountPassword string `json:"accountPassword" validate:"omitempty,min=8"`
}

// GetAll handles GET /api/systemaccounts. Admin only.
func (h *AccountHandler) GetAll(c echo.Context) error {
	accounts, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "System accounts retrieved successfully.", accounts)
}

// GetByID handles GET /api/systemaccounts/:id. Admin only.
func (h *AccountHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	account, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "System account retrieved successfully.", account)
}

// Create handles POST /api/systemaccounts. Admin only. The password is
// bcrypt-hashed before it reaches the store.
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Add(c.Request().Context(), ports.AccountInput{
		AccountName:  req.AccountName,
		AccountEmail: req.AccountEmail,
		AccountRole:  domain.Role(req.AccountRole),
		Password:     req.AccountPassword,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "System account created successfully.", created)
}

// Update handles PUT /api/systemaccounts/:id. Admin only. An empty password
// keeps the stored hash.
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if id != req.AccountID {
		return domain.ErrIDMismatch
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.AccountInput{
		AccountName:  req.AccountName,
		AccountEmail: req.AccountEmail,
		AccountRole:  domain.Role(req.AccountRole),
		Password:     req.AccountPassword,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "System account updated successfully.", updated)
}

// Delete handles DELETE /api/systemaccounts/:id. Admin only; rejected while
// any article names the account as creator or updater.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "System account deleted successfully.", nil)
}

// Search handles GET /api/systemaccounts/search?name=&email=. Exact match on
// each provided field. Admin only.
func (h *AccountHandler) Search(c echo.Context) error {
	accounts, err := h.service.Search(c.Request().Context(), c.QueryParam("name"), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "System accounts searched successfully.", accounts)
}

// GetProfile handles GET /api/systemaccounts/profile: the caller's own
// account. Staff only.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	account, err := h.service.GetByID(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile retrieved successfully.", account)
}

// UpdateProfile handles PUT /api/systemaccounts/profile. Staff only; the
// body id must be the caller's own.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if identity.ID != req.AccountID {
		return echo.NewHTTPError(http.StatusBadRequest, "You can only update your own profile.")
	}

	// The caller's token role, not the body, decides the stored role: a staff
	// member cannot promote themselves by submitting accountRole 0.
	updated, err := h.service.Update(c.Request().Context(), identity.ID, ports.AccountInput{
		AccountName:  req.AccountName,
		AccountEmail: req.AccountEmail,
		AccountRole:  identity.Role,
		Password:     req.AccountPassword,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile updated successfully.", updated)
}

// OData handles GET /api/systemaccounts/odata: read-only pass-through over
// the account collection. Admin only, unlike the other OData surfaces.
func (h *AccountHandler) OData(c echo.Context) error {
	accounts, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}
