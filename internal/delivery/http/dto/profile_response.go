package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CurrentLevel string    `json:"current_level"`
	TargetLevel  string    `json:"target_level"`
	CreatedAt    time.Time `json:"created_at"`
}

type AssessmentResponse struct {
	ID           uuid.UUID `json:"id"`
	CompetencyID uuid.UUID `json:"competency_id"`
	Score        int       `json:"score"`
	AssessedAt   time.Time `json:"assessed_at"`
}
