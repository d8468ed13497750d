package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authhandlers "github.com/GenKoKo/culture-quest/internal/auth/handlers"
	"github.com/GenKoKo/culture-quest/internal/auth/mailer"
	authrepo "github.com/GenKoKo/culture-quest/internal/auth/repository"
	authservices "github.com/GenKoKo/culture-quest/internal/auth/services"
	"github.com/GenKoKo/culture-quest/internal/common/database"
	"github.com/GenKoKo/culture-quest/internal/common/middleware"
	"github.com/GenKoKo/culture-quest/internal/metrics"
	questhandlers "github.com/GenKoKo/culture-quest/internal/quest/handlers"
	"github.com/GenKoKo/culture-quest/internal/quest/seed"
	questservices "github.com/GenKoKo/culture-quest/internal/quest/services"
	"github.com/GenKoKo/culture-quest/internal/quest/storage"
	"github.com/GenKoKo/culture-quest/pkg/config"
	"github.com/GenKoKo/culture-quest/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	store, userStore, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	engine := questservices.NewEngine(store)
	authService := authservices.NewAuthService(userStore, mailer.FromConfig(cfg.SMTP), cfg.Auth.JWTSecret)

	questHandler := questhandlers.NewQuestHandler(engine)
	authHandler := authhandlers.NewAuthHandler(authService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply middleware
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"app":    "culture-quest",
		})
	})
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		api.GET("/cultures", questHandler.ListCultures)
		api.GET("/cultures/:id", questHandler.GetCulture)
		api.GET("/quiz/:cultureId", questHandler.StartQuiz)
		api.POST("/quiz/submit", questHandler.SubmitQuiz)
		api.GET("/stats", questHandler.GetStats)
		api.GET("/achievements", questHandler.ListAchievements)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/verify-email", authHandler.VerifyEmail)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", middleware.AuthRequired(cfg.Auth.JWTSecret), authHandler.CurrentUser)
			authGroup.PUT("/profile", middleware.AuthRequired(cfg.Auth.JWTSecret), authHandler.UpdateProfile)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting Culture Quest server",
		zap.String("address", address),
		zap.String("env", cfg.Server.Env),
		zap.String("store", cfg.Store.Backend),
	)

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStores wires the configured backend: in-process maps by default, gorm
// over sqlite or postgres when STORE_BACKEND says so. A durable store that
// has no cultures yet gets the built-in catalog.
func buildStores(cfg *config.Config) (storage.Store, authrepo.UserStore, error) {
	if cfg.Store.Backend == "memory" {
		store := storage.NewMemoryStore()
		if err := seed.Apply(store); err != nil {
			return nil, nil, err
		}
		return store, authrepo.NewMemoryUserStore(), nil
	}

	if err := database.InitWithType(cfg.Store.Backend, cfg.Store.DSN); err != nil {
		return nil, nil, err
	}

	store := storage.NewGormStore(database.GetDB())
	if err := store.Migrate(); err != nil {
		return nil, nil, err
	}
	userStore := authrepo.NewGormUserStore(database.GetDB())
	if err := userStore.Migrate(); err != nil {
		return nil, nil, err
	}

	cultures, err := store.ListCultures()
	if err != nil {
		return nil, nil, err
	}
	if len(cultures) == 0 {
		if err := seed.Apply(store); err != nil {
			return nil, nil, err
		}
	}
	return store, userStore, nil
}
