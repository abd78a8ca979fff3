package dto

import "github.com/google/uuid"

type RegisterIntentionRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type DecideIntentionRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=approved rejected"`
}
