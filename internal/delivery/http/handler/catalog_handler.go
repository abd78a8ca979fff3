package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/competency"
	"career-compass/internal/pkg/response"
	"career-compass/internal/pkg/validate"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	comps := r.Group("/competencies")
	comps.Get("/", h.ListCompetencies)
	comps.Post("/", h.CreateCompetency)
	comps.Delete("/:id", h.DeleteCompetency)

	courses := r.Group("/courses")
	courses.Get("/", h.ListCourses)
	courses.Post("/", h.CreateCourse)
	courses.Delete("/:id", h.DeleteCourse)
	courses.Patch("/:id/active", h.SetCourseActive)
}

func (h *CatalogHandler) ListCompetencies(c fiber.Ctx) error {
	level := competency.Level(c.Query("level"))
	category := competency.Category(c.Query("category"))

	items, err := h.uc.ListCompetencies(c.Context(), level, category)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	res := make([]dto.CompetencyResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toCompetencyResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) CreateCompetency(c fiber.Ctx) error {
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CreateCompetencyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateCompetency(c.Context(), role, usecase.CreateCompetencyInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      competency.Category(req.Category),
		Level:         competency.Level(req.Level),
		Weight:        req.Weight,
		RequiredScore: req.RequiredScore,
	})
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toCompetencyResponse(created))
}

func (h *CatalogHandler) DeleteCompetency(c fiber.Ctx) error {
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteCompetency(c.Context(), role, id); err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CatalogHandler) ListCourses(c fiber.Ctx) error {
	role, _ := c.Locals(middleware.CtxRoleKey).(authz.Role)
	includeInactive := c.Query("include_inactive") == "true"

	items, err := h.uc.ListCourses(c.Context(), role, includeInactive)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	res := make([]dto.CourseResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toCourseResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) CreateCourse(c fiber.Ctx) error {
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CreateCourseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateCourse(c.Context(), role, usecase.CreateCourseInput{
		Title:         req.Title,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		Category:      req.Category,
		PriorityHint:  req.PriorityHint,
		CompetencyIDs: req.CompetencyIDs,
	})
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toCourseResponse(created))
}

func (h *CatalogHandler) DeleteCourse(c fiber.Ctx) error {
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteCourse(c.Context(), role, id); err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CatalogHandler) SetCourseActive(c fiber.Ctx) error {
	role, ok := c.Locals(middleware.CtxRoleKey).(authz.Role)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.SetCourseActiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetCourseActive(c.Context(), role, id, *req.IsActive); err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toCompetencyResponse(c competency.Competency) dto.CompetencyResponse {
	return dto.CompetencyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Category:      string(c.Category),
		Level:         string(c.Level),
		Weight:        c.Weight,
		RequiredScore: c.RequiredScore,
	}
}

func toCourseResponse(c repository.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		DurationHours: c.DurationHours,
		Category:      c.Category,
		PriorityHint:  c.PriorityHint,
		IsActive:      c.IsActive,
		CompetencyIDs: c.CompetencyIDs,
	}
}

func mapCatalogUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotAllowed):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrCompetencyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Competency not found", nil, err)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, err)
	case errors.Is(err, usecase.ErrDuplicateEntry):
		return middleware.NewAppError(fiber.StatusConflict, "Entry already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
