package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"securehub/internal/config"
	"securehub/internal/handler"
	"securehub/internal/middleware"
	"securehub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	articleHandler *handler.ArticleHandler,
	bookmarkHandler *handler.BookmarkHandler,
	tipHandler *handler.SecurityTipHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh-token", authHandler.Refresh)
	api.GET("/articles", articleHandler.List)
	api.GET("/articles/:id", articleHandler.GetByID)
	api.GET("/security-tips", tipHandler.List)
	api.GET("/security-tips/random", tipHandler.Random)
	api.GET("/security-tips/:id", tipHandler.GetByID)

	// Secured routes: verify the bearer token, then resolve the subject to an
	// identity attached to the request context.
	secured := api.Group("", middleware.BearerAuth(cfg.JWTSecret), middleware.LoadIdentity(userRepo))

	secured.GET("/auth/me", authHandler.Me)
	secured.GET("/auth/account", authHandler.Account)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.PUT("/auth/profile", authHandler.UpdateProfile)
	secured.PUT("/auth/change-password", authHandler.ChangePassword)

	secured.POST("/articles", articleHandler.Create)
	secured.PUT("/articles/:id", articleHandler.Update)
	secured.DELETE("/articles/:id", articleHandler.Delete)
	secured.POST("/articles/:id/like", articleHandler.ToggleLike)
	secured.POST("/articles/:id/comments", articleHandler.AddComment)
	secured.DELETE("/articles/:id/comments/:commentId", articleHandler.DeleteComment)

	secured.GET("/bookmarks", bookmarkHandler.List)
	secured.GET("/bookmarks/:articleId", bookmarkHandler.IsBookmarked)
	secured.POST("/bookmarks/:articleId", bookmarkHandler.Add)
	secured.DELETE("/bookmarks/:articleId", bookmarkHandler.Remove)

	// Tips are public-read, admin-write.
	tips := secured.Group("/security-tips", middleware.RequireAdmin)
	tips.POST("", tipHandler.Create)
	tips.PUT("/:id", tipHandler.Update)
	tips.DELETE("/:id", tipHandler.Delete)

	// Admin-only user management
	admin := secured.Group("/users", middleware.RequireAdmin)
	admin.GET("", userHandler.List)
	admin.GET("/stats", userHandler.Stats)
	admin.PUT("/:id", userHandler.Update)
	admin.DELETE("/:id", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
