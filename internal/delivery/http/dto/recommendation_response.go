package dto

import "github.com/google/uuid"

type RecommendationResponse struct {
	CourseID     uuid.UUID   `json:"course_id"`
	Title        string      `json:"title"`
	Score        float64     `json:"score"`
	Competencies []uuid.UUID `json:"competencies"`
}
