package dto

import (
	"time"

	"github.com/google/uuid"
)

type StatsOverviewResponse struct {
	TotalUsers        int     `json:"total_users"`
	TotalCompetencies int     `json:"total_competencies"`
	TotalCourses      int     `json:"total_courses"`
	TotalAssessments  int     `json:"total_assessments"`
	MeanSelfScore     float64 `json:"mean_self_score"`

	UsersByLevel      map[string]int `json:"users_by_level"`
	IntentionsByState map[string]int `json:"intentions_by_state"`
	ScoreDistribution map[int]int    `json:"score_distribution"`

	AvgGapByCategory map[string]float64 `json:"avg_gap_by_category"`

	TopCourses        []TopCourseResponse    `json:"top_courses"`
	MonthlyIntentions []MonthlyCountResponse `json:"monthly_intentions"`
}

type TopCourseResponse struct {
	CourseID uuid.UUID `json:"course_id"`
	Title    string    `json:"title"`
	Count    int       `json:"count"`
}

type MonthlyCountResponse struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}
