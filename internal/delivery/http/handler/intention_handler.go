package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/intention"
	"career-compass/internal/pkg/response"
	"career-compass/internal/pkg/validate"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type IntentionHandler struct {
	uc usecase.IntentionUsecase
}

func NewIntentionHandler(uc usecase.IntentionUsecase) *IntentionHandler {
	return &IntentionHandler{uc: uc}
}

// RegisterUserRoutes mounts the self-service surface.
func (h *IntentionHandler) RegisterUserRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/intentions")
	grp.Post("/", h.Register)
	grp.Get("/", h.ListMine)
}

// RegisterReviewRoutes mounts the reviewer surface. Callers gate the group
// with the matching authorization middleware.
func (h *IntentionHandler) RegisterReviewRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/intentions")
	grp.Get("/pending", h.ListPending)
	grp.Post("/:id/decision", h.Decide)
}

func (h *IntentionHandler) Register(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.RegisterIntentionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Register(c.Context(), userID, role, req.CourseID)
	if err != nil {
		return mapIntentionUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toIntentionResponse(created))
}

func (h *IntentionHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListByUser(c.Context(), userID)
	if err != nil {
		return mapIntentionUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toIntentionResponses(items))
}

func (h *IntentionHandler) ListPending(c fiber.Ctx) error {
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListPending(c.Context(), role)
	if err != nil {
		return mapIntentionUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toIntentionResponses(items))
}

func (h *IntentionHandler) Decide(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	intentionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.DecideIntentionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	decided, err := h.uc.Decide(c.Context(), intentionID, actorID, role, intention.State(req.Outcome))
	if err != nil {
		return mapIntentionUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toIntentionResponse(decided))
}

func toIntentionResponse(it usecase.IntentionItem) dto.IntentionResponse {
	res := dto.IntentionResponse{
		ID:          it.ID,
		UserID:      it.UserID,
		CourseID:    it.CourseID,
		CourseTitle: it.CourseTitle,
		State:       string(it.State),
		CreatedAt:   it.CreatedAt,
		DecidedBy:   it.DecidedBy,
		DecidedAt:   it.DecidedAt,
	}
	if it.DecidedRole != nil {
		role := string(*it.DecidedRole)
		res.DecidedRole = &role
	}
	return res
}

func toIntentionResponses(items []usecase.IntentionItem) []dto.IntentionResponse {
	out := make([]dto.IntentionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toIntentionResponse(it))
	}
	return out
}

func mapIntentionUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotAllowed):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, intention.ErrAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Intention already registered for this course", nil, err)
	case errors.Is(err, intention.ErrNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Intention has already been decided", nil, err)
	case errors.Is(err, intention.ErrInvalidOutcome):
		return middleware.NewAppError(fiber.StatusBadRequest, "Outcome must be approved or rejected", nil, err)
	case errors.Is(err, intention.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Intention not found", nil, err)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
