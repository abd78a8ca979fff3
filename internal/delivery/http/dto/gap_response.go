package dto

import "github.com/google/uuid"

type GapResponse struct {
	CompetencyID   uuid.UUID `json:"competency_id"`
	CompetencyName string    `json:"competency_name"`
	Category       string    `json:"category"`
	Level          string    `json:"level"`
	Weight         float64   `json:"weight"`
	RequiredScore  int       `json:"required_score"`
	SelfScore      int       `json:"self_score"`
	Gap            float64   `json:"gap"`
	Status         string    `json:"status"`
}

type GapSummaryResponse struct {
	Total          int     `json:"total"`
	Mastered       int     `json:"mastered"`
	Developing     int     `json:"developing"`
	Required       int     `json:"required"`
	CompletionRate float64 `json:"completion_rate"`
}

type GapProfileResponse struct {
	Gaps    []GapResponse      `json:"gaps"`
	Summary GapSummaryResponse `json:"summary"`
}
