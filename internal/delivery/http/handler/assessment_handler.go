package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/gap"
	"career-compass/internal/pkg/response"
	"career-compass/internal/pkg/validate"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/assessments")
	grp.Get("/", h.List)
	grp.Put("/", h.SubmitBatch)
	grp.Put("/:competencyId", h.Submit)
	grp.Delete("/", h.Reset)
}

func (h *AssessmentHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListAssessments(c.Context(), userID)
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}

	res := make([]dto.AssessmentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.AssessmentResponse{
			ID:           it.ID,
			CompetencyID: it.CompetencyID,
			Score:        it.Score,
			AssessedAt:   it.AssessedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	competencyID, err := uuid.Parse(c.Params("competencyId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.SubmitAssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.SubmitAssessment(c.Context(), userID, usecase.SubmitAssessmentInput{
		CompetencyID: competencyID,
		Score:        req.Score,
	})
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}

	res := dto.AssessmentResponse{
		ID:           saved.ID,
		CompetencyID: saved.CompetencyID,
		Score:        saved.Score,
		AssessedAt:   saved.AssessedAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssessmentHandler) SubmitBatch(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.SubmitAssessmentBatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items := make([]usecase.SubmitAssessmentInput, 0, len(req.Assessments))
	for _, a := range req.Assessments {
		items = append(items, usecase.SubmitAssessmentInput{
			CompetencyID: a.CompetencyID,
			Score:        a.Score,
		})
	}

	if err := h.uc.SubmitBatch(c.Context(), userID, items); err != nil {
		return mapAssessmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AssessmentHandler) Reset(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.ResetAssessments(c.Context(), userID); err != nil {
		return mapAssessmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapAssessmentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gap.ErrInvalidScore):
		return middleware.NewAppError(fiber.StatusBadRequest, "Score must be between 1 and 5", nil, err)
	case errors.Is(err, usecase.ErrCompetencyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Competency not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
