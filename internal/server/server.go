package server

import (
	"strings"
	"time"

	"fitlink.app/backend/internal/config"
	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/middleware"
	"fitlink.app/backend/pkg/ratelimiter"

	authHttp "fitlink.app/backend/internal/modules/auth/delivery/http"
	authService "fitlink.app/backend/internal/modules/auth/service"

	userHttp "fitlink.app/backend/internal/modules/user/delivery/http"
	userRepo "fitlink.app/backend/internal/modules/user/repository"
	userService "fitlink.app/backend/internal/modules/user/service"

	trainerHttp "fitlink.app/backend/internal/modules/trainer/delivery/http"
	trainerRepo "fitlink.app/backend/internal/modules/trainer/repository"
	trainerService "fitlink.app/backend/internal/modules/trainer/service"

	nutritionistHttp "fitlink.app/backend/internal/modules/nutritionist/delivery/http"
	nutritionistRepo "fitlink.app/backend/internal/modules/nutritionist/repository"
	nutritionistService "fitlink.app/backend/internal/modules/nutritionist/service"

	workoutHttp "fitlink.app/backend/internal/modules/workout/delivery/http"
	workoutRepo "fitlink.app/backend/internal/modules/workout/repository"
	workoutService "fitlink.app/backend/internal/modules/workout/service"

	dietHttp "fitlink.app/backend/internal/modules/diet/delivery/http"
	dietRepo "fitlink.app/backend/internal/modules/diet/repository"
	dietService "fitlink.app/backend/internal/modules/diet/service"

	progressHttp "fitlink.app/backend/internal/modules/progress/delivery/http"
	progressRepo "fitlink.app/backend/internal/modules/progress/repository"
	progressService "fitlink.app/backend/internal/modules/progress/service"

	subscriptionHttp "fitlink.app/backend/internal/modules/subscription/delivery/http"
	subscriptionRepo "fitlink.app/backend/internal/modules/subscription/repository"
	subscriptionService "fitlink.app/backend/internal/modules/subscription/service"

	onboardingHttp "fitlink.app/backend/internal/modules/onboarding/delivery/http"
	onboardingRepo "fitlink.app/backend/internal/modules/onboarding/repository"
	onboardingService "fitlink.app/backend/internal/modules/onboarding/service"

	professionalHttp "fitlink.app/backend/internal/modules/professional/delivery/http"
	professionalService "fitlink.app/backend/internal/modules/professional/service"

	searchService "fitlink.app/backend/internal/modules/search/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	users := userRepo.NewUserRepository(db)
	trainers := trainerRepo.NewTrainerRepository(db)
	nutritionists := nutritionistRepo.NewNutritionistRepository(db)
	workouts := workoutRepo.NewWorkoutRepository(db)
	diets := dietRepo.NewDietRepository(db)
	progress := progressRepo.NewProgressRepository(db)
	subscriptions := subscriptionRepo.NewSubscriptionRepository(db)
	onboarding := onboardingRepo.NewOnboardingRepository(db)

	// Meilisearch is optional; the professional directory falls back to
	// SQL when it is not configured.
	var meiliSvc searchService.SearchService
	if cfg.MeiliSearchHost != "" {
		host := cfg.MeiliSearchHost
		if !strings.HasPrefix(host, "http") {
			host = "http://" + host + ":7700"
		}
		meiliClient := meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		meiliSvc = searchService.NewSearchService(meiliClient)
	}

	loginLimiter := ratelimiter.New(redisClient, cfg.LoginRateLimit, cfg.LoginRateWindow)

	authSvc := authService.NewService(users, trainers, nutritionists, meiliSvc, loginLimiter, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := authHttp.NewAuthHandler(authSvc)

	userSvc := userService.NewService(users, trainers, nutritionists, meiliSvc)
	userHandler := userHttp.NewUserHandler(userSvc)

	trainerSvc := trainerService.NewService(trainers, workouts)
	trainerHandler := trainerHttp.NewTrainerHandler(trainerSvc)

	nutritionistSvc := nutritionistService.NewService(nutritionists, diets)
	nutritionistHandler := nutritionistHttp.NewNutritionistHandler(nutritionistSvc)

	workoutSvc := workoutService.NewService(workouts, trainers, users)
	workoutHandler := workoutHttp.NewWorkoutHandler(workoutSvc)

	dietSvc := dietService.NewService(diets, nutritionists, users)
	dietHandler := dietHttp.NewDietHandler(dietSvc)

	progressSvc := progressService.NewService(progress)
	progressHandler := progressHttp.NewProgressHandler(progressSvc)

	subscriptionSvc := subscriptionService.NewService(subscriptions)
	subscriptionHandler := subscriptionHttp.NewSubscriptionHandler(subscriptionSvc)

	onboardingSvc := onboardingService.NewService(onboarding, users)
	onboardingHandler := onboardingHttp.NewOnboardingHandler(onboardingSvc)

	professionalSvc := professionalService.NewService(users, meiliSvc)
	professionalHandler := professionalHttp.NewProfessionalHandler(professionalSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Read endpoints accept anonymous callers; a bearer token narrows
	// list results to the caller's own records for the USER role.
	public := api.Group("")
	public.Use(authMiddleware.OptionalAuth())
	{
		public.GET("/workouts", workoutHandler.ListWorkouts)
		public.GET("/workouts/:id", workoutHandler.GetWorkout)
		public.GET("/diets", dietHandler.ListDiets)
		public.GET("/diets/:id", dietHandler.GetDiet)
		public.GET("/progress", progressHandler.ListProgress)
		public.GET("/subscriptions", subscriptionHandler.ListSubscriptions)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/users/me", userHandler.GetMe)
		protected.PUT("/users/me", userHandler.UpdateMe)
		protected.DELETE("/users/me", userHandler.DeleteMe)

		adminGroup := protected.Group("")
		adminGroup.Use(authMiddleware.RequireRoles(entity.RoleAdmin))
		{
			adminGroup.GET("/users", userHandler.ListUsers)
			adminGroup.PUT("/users/:id/role", userHandler.UpdateUserRole)
			adminGroup.PUT("/subscriptions/:id", subscriptionHandler.UpdateSubscription)
			adminGroup.DELETE("/subscriptions/:id", subscriptionHandler.DeleteSubscription)
		}

		trainerGroup := protected.Group("/trainers")
		trainerGroup.Use(authMiddleware.RequireRoles(entity.RoleTrainer, entity.RoleAdmin))
		{
			trainerGroup.GET("/profile", trainerHandler.GetProfile)
			trainerGroup.PUT("/profile", trainerHandler.UpdateProfile)
			trainerGroup.DELETE("/profile", trainerHandler.DeleteProfile)
			trainerGroup.GET("/dashboard", trainerHandler.GetDashboard)
		}

		nutritionistGroup := protected.Group("/nutritionists")
		nutritionistGroup.Use(authMiddleware.RequireRoles(entity.RoleNutritionist, entity.RoleAdmin))
		{
			nutritionistGroup.GET("/profile", nutritionistHandler.GetProfile)
			nutritionistGroup.PUT("/profile", nutritionistHandler.UpdateProfile)
			nutritionistGroup.DELETE("/profile", nutritionistHandler.DeleteProfile)
			nutritionistGroup.GET("/dashboard", nutritionistHandler.GetDashboard)
		}

		workoutGroup := protected.Group("/workouts")
		workoutGroup.Use(authMiddleware.RequireRoles(entity.RoleTrainer, entity.RoleAdmin))
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		dietGroup := protected.Group("/diets")
		dietGroup.Use(authMiddleware.RequireRoles(entity.RoleNutritionist, entity.RoleAdmin))
		{
			dietGroup.POST("", dietHandler.CreateDiet)
			dietGroup.PUT("/:id", dietHandler.UpdateDiet)
			dietGroup.DELETE("/:id", dietHandler.DeleteDiet)
		}

		protected.PUT("/progress/:id", progressHandler.UpdateProgress)
		protected.DELETE("/progress/:id", progressHandler.DeleteProgress)

		protected.POST("/onboarding/complete", onboardingHandler.Complete)

		searchGroup := protected.Group("/professionals")
		searchGroup.Use(authMiddleware.RequireRoles(entity.RoleUser, entity.RoleAdmin))
		{
			searchGroup.GET("/search", professionalHandler.SearchProfessionals)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
