package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SHAMIKH-ANWAR/Articulate-form/config"
	"github.com/SHAMIKH-ANWAR/Articulate-form/database"
	adminctrl "github.com/SHAMIKH-ANWAR/Articulate-form/internal/controller/admin"
	userctrl "github.com/SHAMIKH-ANWAR/Articulate-form/internal/controller/user"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/dto"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/logger"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/repository"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewFormRepository,
			repository.NewSubmissionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewFormService,
			service.NewSubmissionService,
			service.NewUploadService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewFormController,
			userctrl.NewTestController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route requests through zerolog instead of Gin's default logger.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))

	// Panics become the 500 envelope instead of an empty body.
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", ctx.Request.URL.Path).Msg("Recovered from panic")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: fmt.Sprint(recovered),
		})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	formCtrl *adminctrl.FormController,
	testCtrl *userctrl.TestController,
) {
	api := router.Group("/api")
	{
		// Authoring and admin views
		api.POST("/create-form", formCtrl.CreateForm)
		api.GET("/forms", formCtrl.ListForms)
		api.GET("/form/:id", formCtrl.GetForm)
		api.GET("/submissions", formCtrl.ListSubmissions)
		api.POST("/upload-image", formCtrl.UploadImage)

		// Test taking
		api.GET("/test/:id", testCtrl.GetTestForm)
		api.POST("/submit-test/:id", testCtrl.SubmitTest)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Articulate Forms API server starting on port %s", cfg.Server.Port)
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
		&model.Form{},
		&model.Submission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
