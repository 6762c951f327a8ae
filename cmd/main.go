package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/database"
	"github.com/lshigami/edulearn/docs"
	"github.com/lshigami/edulearn/internal/controller"
	authctrl "github.com/lshigami/edulearn/internal/controller/auth"
	coursectrl "github.com/lshigami/edulearn/internal/controller/course"
	"github.com/lshigami/edulearn/internal/logger"
	"github.com/lshigami/edulearn/internal/middleware"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Educational Web API
// @version 1.0.0
// @description Courses, lessons, quizzes with server-side grading, and learner progress.
// @host localhost:5000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.NopLogger,

		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			controller.NewResponder,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewCourseRepository,
			repository.NewLessonRepository,
			repository.NewQuizRepository,
			repository.NewAnswerRepository,
			repository.NewProgressRepository,
		),

		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewCourseService,
			service.NewQuizService,
			service.NewQuizGrader,
			service.NewProgressRecorder,
			service.NewQuizSubmissionService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			coursectrl.NewCourseController,
		),

		fx.Invoke(initLogger),
		fx.Invoke(database.AutoMigrateDB),
		fx.Invoke(database.SeedSampleData),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg.LogLevel, cfg.IsDevelopment())
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts every controller under /api and ties the
// HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	courseCtrl *coursectrl.CourseController,
) {
	router.GET("/", controller.Root)
	api := router.Group("/api")
	api.GET("/health", controller.Health)
	authCtrl.RegisterRoutes(api)
	courseCtrl.RegisterRoutes(api)
	router.NoRoute(controller.NoRoute)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Educational Web API server starting on port %s (%s)", cfg.Server.Port, cfg.Env)
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
			return server.Shutdown(ctx)
		},
	})
}
