package dto

import "github.com/google/uuid"

type CompetencyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Level         string    `json:"level"`
	Weight        float64   `json:"weight"`
	RequiredScore int       `json:"required_score"`
}

type CourseResponse struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	DurationHours int         `json:"duration_hours"`
	Category      string      `json:"category,omitempty"`
	PriorityHint  float64     `json:"priority_hint"`
	IsActive      bool        `json:"is_active"`
	CompetencyIDs []uuid.UUID `json:"competency_ids"`
}
