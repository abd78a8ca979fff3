package dto

import (
	"time"

	"github.com/google/uuid"
)

type IntentionResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	CourseID    uuid.UUID  `json:"course_id"`
	CourseTitle string     `json:"course_title,omitempty"`
	State       string     `json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
	DecidedBy   *uuid.UUID `json:"decided_by,omitempty"`
	DecidedRole *string    `json:"decided_role,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}
