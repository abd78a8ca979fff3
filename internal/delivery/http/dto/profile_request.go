package dto

import "github.com/google/uuid"

type UpdateProfileRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	CurrentLevel string `json:"current_level" validate:"required"`
	TargetLevel  string `json:"target_level" validate:"required"`
}

type SubmitAssessmentRequest struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

type AssessmentEntryRequest struct {
	CompetencyID uuid.UUID `json:"competency_id" validate:"required"`
	Score        int       `json:"score" validate:"required,min=1,max=5"`
}

type SubmitAssessmentBatchRequest struct {
	Assessments []AssessmentEntryRequest `json:"assessments" validate:"required,min=1,dive"`
}
