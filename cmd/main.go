package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jsliwa/fishcards/config"
	"github.com/jsliwa/fishcards/database"
	_ "github.com/jsliwa/fishcards/docs" // Swagger docs - auto-generated
	"github.com/jsliwa/fishcards/internal/controller"
	"github.com/jsliwa/fishcards/internal/logger"
	"github.com/jsliwa/fishcards/internal/middleware"
	"github.com/jsliwa/fishcards/internal/model"
	"github.com/jsliwa/fishcards/internal/repository"
	"github.com/jsliwa/fishcards/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title FishCards API
// @version 1.0
// @description REST API for the FishCards flashcard application: CRUD flashcards, AI-assisted generation and contact submissions.
// @contact.name API Support
// @contact.email support@fishcards.example.com
// @license.name MIT
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			func(cfg *config.Config) *middleware.Authenticator {
				return middleware.NewAuthenticator(cfg.Auth.JWTSecret)
			},
		),

		// Repositories Layer
		fx.Provide(
			repository.NewFlashcardRepository,
			repository.NewContactSubmissionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewFlashcardService,
			service.NewContactSubmissionService,
			// The Gemini provider holds an API connection that must be
			// released on shutdown; the other providers are plain HTTP.
			func(lc fx.Lifecycle, cfg *config.Config) (service.AiGeneratorService, error) {
				generator, err := service.NewAiGeneratorService(cfg)
				if err != nil {
					return nil, err
				}
				if closer, ok := generator.(io.Closer); ok {
					lc.Append(fx.Hook{
						OnStop: func(ctx context.Context) error {
							return closer.Close()
						},
					})
				}
				return generator, nil
			},
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewFlashcardController,
			controller.NewAiController,
			controller.NewContactController,
			controller.NewAuthController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())

	// Route Gin's access log through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.Authenticator,
	flashcardCtrl *controller.FlashcardController,
	aiCtrl *controller.AiController,
	contactCtrl *controller.ContactController,
	authCtrl *controller.AuthController,
) {
	api := router.Group("/api")
	{
		flashcards := api.Group("/flashcards", auth.RequireAuth())
		{
			flashcards.POST("", flashcardCtrl.Create)
			flashcards.GET("", flashcardCtrl.List)
			flashcards.GET("/:id", flashcardCtrl.GetByID)
			flashcards.PATCH("/:id", flashcardCtrl.Update)
			flashcards.DELETE("/:id", flashcardCtrl.Delete)
			flashcards.POST("/generate-ai", aiCtrl.Generate)
		}

		api.POST("/contact-submissions", auth.OptionalAuth(), contactCtrl.Submit)
		api.POST("/auth/logout", authCtrl.Logout)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("FishCards API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Flashcard{},
		&model.ContactSubmission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
