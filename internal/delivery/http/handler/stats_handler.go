package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/stats"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.StatsUsecase
}

func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/stats/overview", h.Overview)
}

func (h *StatsHandler) Overview(c fiber.Ctx) error {
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	overview, err := h.uc.Overview(c.Context(), role)
	if err != nil {
		return mapStatsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toStatsOverviewResponse(overview))
}

func toStatsOverviewResponse(o stats.Overview) dto.StatsOverviewResponse {
	res := dto.StatsOverviewResponse{
		TotalUsers:        o.TotalUsers,
		TotalCompetencies: o.TotalCompetencies,
		TotalCourses:      o.TotalCourses,
		TotalAssessments:  o.TotalAssessments,
		MeanSelfScore:     o.MeanSelfScore,
		UsersByLevel:      make(map[string]int, len(o.UsersByLevel)),
		IntentionsByState: make(map[string]int, len(o.IntentionsByState)),
		ScoreDistribution: o.ScoreDistribution,
		AvgGapByCategory:  make(map[string]float64, len(o.AvgGapByCategory)),
	}

	for level, n := range o.UsersByLevel {
		res.UsersByLevel[string(level)] = n
	}
	for state, n := range o.IntentionsByState {
		res.IntentionsByState[string(state)] = n
	}
	for cat, avg := range o.AvgGapByCategory {
		res.AvgGapByCategory[string(cat)] = avg
	}

	res.TopCourses = make([]dto.TopCourseResponse, 0, len(o.TopCourses))
	for _, cc := range o.TopCourses {
		res.TopCourses = append(res.TopCourses, dto.TopCourseResponse{
			CourseID: cc.CourseID,
			Title:    cc.Title,
			Count:    cc.Count,
		})
	}

	res.MonthlyIntentions = make([]dto.MonthlyCountResponse, 0, len(o.MonthlyIntentions))
	for _, mc := range o.MonthlyIntentions {
		res.MonthlyIntentions = append(res.MonthlyIntentions, dto.MonthlyCountResponse{
			Month: mc.Month,
			Count: mc.Count,
		})
	}

	return res
}

func mapStatsUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotAllowed):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
