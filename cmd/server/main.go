package main

import (
	"log"
	"net/http"

	_ "securehub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"securehub/internal/auth"
	"securehub/internal/cache"
	"securehub/internal/config"
	"securehub/internal/db"
	"securehub/internal/handler"
	"securehub/internal/model"
	"securehub/internal/repository"
	"securehub/internal/router"
	"securehub/internal/service"
	"securehub/internal/storage"
)

// @title SecureHub API
// @version 1.0
// @description Security awareness blog API with JWT authentication, articles, bookmarks and security tips.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.ArticleLike{},
		&model.Comment{},
		&model.Bookmark{},
		&model.SecurityTip{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	mediaStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("media store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	bookmarkRepo := repository.NewBookmarkRepository(gormDB)
	tipRepo := repository.NewSecurityTipRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	articleService := service.NewArticleService(articleRepo, mediaStore)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, articleRepo)
	tipService := service.NewSecurityTipService(tipRepo)
	userService := service.NewUserService(userRepo, articleRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	articleHandler := handler.NewArticleHandler(articleService, mediaStore)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	tipHandler := handler.NewSecurityTipHandler(tipService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		articleHandler,
		bookmarkHandler,
		tipHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
