package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/gap"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me/gaps", h.Get)
}

func (h *GapHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	profile, err := h.uc.GetGaps(c.Context(), userID)
	if err != nil {
		return mapGapUsecaseError(err)
	}

	gaps := make([]dto.GapResponse, 0, len(profile.Gaps))
	for _, g := range profile.Gaps {
		gaps = append(gaps, dto.GapResponse{
			CompetencyID:   g.CompetencyID,
			CompetencyName: g.CompetencyName,
			Category:       string(g.Category),
			Level:          string(g.Level),
			Weight:         g.Weight,
			RequiredScore:  g.RequiredScore,
			SelfScore:      g.SelfScore,
			Gap:            g.Gap,
			Status:         string(g.Status),
		})
	}

	res := dto.GapProfileResponse{
		Gaps: gaps,
		Summary: dto.GapSummaryResponse{
			Total:          profile.Summary.Total,
			Mastered:       profile.Summary.Mastered,
			Developing:     profile.Summary.Developing,
			Required:       profile.Summary.Required,
			CompletionRate: profile.Summary.CompletionRate,
		},
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapGapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, gap.ErrInvalidScore):
		return middleware.NewAppError(fiber.StatusBadRequest, "Score must be between 1 and 5", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
