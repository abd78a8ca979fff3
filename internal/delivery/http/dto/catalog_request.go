package dto

import "github.com/google/uuid"

type CreateCompetencyRequest struct {
	Name          string  `json:"name" validate:"required,min=3,max=160"`
	Description   string  `json:"description" validate:"max=1000"`
	Category      string  `json:"category" validate:"required,oneof=technical behavioral strategic"`
	Level         string  `json:"level" validate:"required"`
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	RequiredScore int     `json:"required_score" validate:"required,min=1,max=5"`
}

type CreateCourseRequest struct {
	Title         string      `json:"title" validate:"required,min=3,max=200"`
	Description   string      `json:"description" validate:"max=2000"`
	DurationHours int         `json:"duration_hours" validate:"min=0"`
	Category      string      `json:"category" validate:"max=80"`
	PriorityHint  float64     `json:"priority_hint" validate:"min=0"`
	CompetencyIDs []uuid.UUID `json:"competency_ids" validate:"required,min=1"`
}

type SetCourseActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
