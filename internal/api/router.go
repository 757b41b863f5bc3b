package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/funews/news-management-system/internal/api/handler"
	"github.com/funews/news-management-system/internal/api/middleware"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/service"
	"github.com/funews/news-management-system/internal/infrastructure/config"
	"github.com/funews/news-management-system/internal/infrastructure/db/postgres"
	redisstore "github.com/funews/news-management-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("news"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	articleRepo := postgres.NewArticleRepository(db)
	refreshStore := redisstore.NewRefreshTokenStore(rdb)

	authService := service.NewAuthService(accountRepo, refreshStore, service.AuthConfig{
		JWTSecret:     cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		Audience:      cfg.JWT.Audience,
		TokenTTL:      cfg.JWT.TokenTTL(),
		RefreshTTL:    cfg.JWT.RefreshTTL,
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
	})
	accountService := service.NewAccountService(accountRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo)
	articleService := service.NewArticleService(articleRepo)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	tagHandler := handler.NewTagHandler(tagService)
	articleHandler := handler.NewArticleHandler(articleService)

	auth := middleware.Auth(middleware.Config{
		JWTSecret: cfg.JWT.Secret,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
	})
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOnly := middleware.RBAC(domain.RoleStaff)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleStaff)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/refresh", authHandler.Refresh)

	// --- Categories ---
	categories := e.Group("/api/categories")
	categories.GET("/odata", categoryHandler.OData) // anonymous read-only surface
	categories.GET("", categoryHandler.GetAll, auth, anyRole)
	categories.GET("/search", categoryHandler.Search, auth, adminOnly)
	categories.GET("/:id", categoryHandler.GetByID, auth, anyRole)
	categories.POST("", categoryHandler.Create, auth, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, auth, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, auth, adminOnly)

	// --- Tags ---
	tags := e.Group("/api/tags")
	tags.GET("/odata", tagHandler.OData) // anonymous read-only surface
	tags.GET("", tagHandler.GetAll, auth, anyRole)
	tags.GET("/search", tagHandler.Search, auth, adminOnly)
	tags.GET("/:id", tagHandler.GetByID, auth, anyRole)
	tags.POST("", tagHandler.Create, auth, adminOnly)
	tags.PUT("/:id", tagHandler.Update, auth, adminOnly)
	tags.DELETE("/:id", tagHandler.Delete, auth, adminOnly)

	// --- News articles ---
	articles := e.Group("/api/newsarticles")
	articles.GET("/odata", articleHandler.OData) // anonymous read-only surface
	articles.GET("", articleHandler.GetAll, auth, anyRole)
	articles.GET("/search", articleHandler.Search, auth, anyRole)
	articles.GET("/my-articles", articleHandler.MyArticles, auth, staffOnly)
	articles.GET("/report", articleHandler.Report, auth, adminOnly)
	articles.GET("/:id", articleHandler.GetByID, auth, anyRole)
	articles.POST("", articleHandler.Create, auth, anyRole)
	articles.PUT("/:id", articleHandler.Update, auth, anyRole)
	articles.DELETE("/:id", articleHandler.Delete, auth, anyRole)

	// --- System accounts ---
	accounts := e.Group("/api/systemaccounts")
	accounts.GET("/odata", accountHandler.OData, auth, adminOnly)
	accounts.GET("/profile", accountHandler.GetProfile, auth, staffOnly)
	accounts.PUT("/profile", accountHandler.UpdateProfile, auth, staffOnly)
	accounts.GET("", accountHandler.GetAll, auth, adminOnly)
	accounts.GET("/search", accountHandler.Search, auth, adminOnly)
	accounts.GET("/:id", accountHandler.GetByID, auth, adminOnly)
	accounts.POST("", accountHandler.Create, auth, adminOnly)
	accounts.PUT("/:id", accountHandler.Update, auth, adminOnly)
	accounts.DELETE("/:id", accountHandler.Delete, auth, adminOnly)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
