package v1

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/competency"
	"career-compass/internal/domain/gap"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/mail"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure built during bootstrap. Everything
// request-scoped (repositories, usecases, handlers) is wired here.
type Deps struct {
	DB     database.DB
	Cache  *cache.Redis
	Mail   *mail.Notifier
	Events *ws.Publisher
	WS     *ws.Handler
	Logger *log.Logger
}

func Register(r fiber.Router, cfg config.Config, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	competencyRepo := repository.NewPostgresCompetencyRepository(deps.DB)
	courseRepo := repository.NewPostgresCourseRepository(deps.DB)
	assessmentRepo := repository.NewPostgresAssessmentRepository(deps.DB)
	intentionRepo := repository.NewPostgresIntentionRepository(deps.DB)
	userRepo := repository.NewPostgresUserRepository(deps.DB)

	ladder := competency.DefaultLadder()

	catalogUC := usecase.NewCatalogUsecase(competencyRepo, courseRepo, ladder)
	profileUC := usecase.NewProfileUsecase(userRepo, ladder)
	assessmentUC := usecase.NewAssessmentUsecase(assessmentRepo, competencyRepo)
	gapUC := usecase.NewGapUsecase(userRepo, competencyRepo, assessmentRepo, ladder, gap.DefaultThresholds())
	recommendationUC := usecase.NewRecommendationUsecase(gapUC, courseRepo)
	statsUC := usecase.NewStatsUsecase(gapUC, courseRepo, intentionRepo, deps.Cache, deps.Logger)
	intentionUC := usecase.NewIntentionUsecase(
		intentionRepo,
		courseRepo,
		userRepo,
		deps.Mail,
		deps.Events,
		statsUC,
		deps.Logger,
	)

	catalogHandler := handler.NewCatalogHandler(catalogUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	assessmentHandler := handler.NewAssessmentHandler(assessmentUC)
	gapHandler := handler.NewGapHandler(gapUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	intentionHandler := handler.NewIntentionHandler(intentionUC)
	statsHandler := handler.NewStatsHandler(statsUC)

	protected := r.Group("", authMw.Middleware())

	catalogHandler.RegisterRoutes(protected.Group("/catalog"))
	profileHandler.RegisterRoutes(protected)
	assessmentHandler.RegisterRoutes(protected)
	gapHandler.RegisterRoutes(protected)
	recommendationHandler.RegisterRoutes(protected)
	intentionHandler.RegisterUserRoutes(protected)

	review := protected.Group("", middleware.RequireOperation(authz.OpListPending))
	intentionHandler.RegisterReviewRoutes(review)

	statsGroup := protected.Group("", middleware.RequireOperation(authz.OpViewStats))
	statsHandler.RegisterRoutes(statsGroup)

	if deps.WS != nil {
		wsGroup := protected.Group("/ws", middleware.RequireOperation(authz.OpListPending))
		wsGroup.Get("/intentions", deps.WS.HandleIntentionsWS)
	}
}
