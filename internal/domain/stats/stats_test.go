package stats

import (
	"testing"
	"time"

	"career-compass/internal/domain/competency"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/intention"

	"github.com/google/uuid"
)

func TestAggregate_Counts(t *testing.T) {
	s := Snapshot{
		Users: []UserInfo{
			{ID: uuid.New(), CurrentLevel: competency.LevelFC03},
			{ID: uuid.New(), CurrentLevel: competency.LevelFC03},
			{ID: uuid.New(), CurrentLevel: competency.LevelFC05},
		},
		Competencies: 16,
		Courses:      10,
		Assessments: []AssessmentInfo{
			{UserID: uuid.New(), Score: 3},
			{UserID: uuid.New(), Score: 5},
		},
		Intentions: []IntentionInfo{
			{CourseID: uuid.New(), State: intention.StatePending, CreatedAt: time.Now()},
			{CourseID: uuid.New(), State: intention.StateApproved, CreatedAt: time.Now()},
			{CourseID: uuid.New(), State: intention.StateApproved, CreatedAt: time.Now()},
		},
	}

	o := Aggregate(s, time.Now(), 5, 12)
	if o.TotalUsers != 3 || o.TotalCompetencies != 16 || o.TotalCourses != 10 || o.TotalAssessments != 2 {
		t.Fatalf("unexpected totals: %+v", o)
	}
	if o.UsersByLevel[competency.LevelFC03] != 2 || o.UsersByLevel[competency.LevelFC05] != 1 {
		t.Fatalf("unexpected users by level: %v", o.UsersByLevel)
	}
	if o.IntentionsByState[intention.StatePending] != 1 || o.IntentionsByState[intention.StateApproved] != 2 {
		t.Fatalf("unexpected intentions by state: %v", o.IntentionsByState)
	}
	if o.MeanSelfScore != 4 {
		t.Fatalf("expected mean 4, got %v", o.MeanSelfScore)
	}
	if o.ScoreDistribution[3] != 1 || o.ScoreDistribution[5] != 1 {
		t.Fatalf("unexpected score distribution: %v", o.ScoreDistribution)
	}
}

func TestAggregate_AvgGapByCategory(t *testing.T) {
	s := Snapshot{
		Gaps: []gap.Gap{
			{Category: competency.CategoryTechnical, Gap: 2},
			{Category: competency.CategoryTechnical, Gap: 4},
			{Category: competency.CategoryStrategic, Gap: 1},
		},
	}
	o := Aggregate(s, time.Now(), 0, 0)
	if o.AvgGapByCategory[competency.CategoryTechnical] != 3 {
		t.Fatalf("expected technical avg 3, got %v", o.AvgGapByCategory[competency.CategoryTechnical])
	}
	if o.AvgGapByCategory[competency.CategoryStrategic] != 1 {
		t.Fatalf("expected strategic avg 1, got %v", o.AvgGapByCategory[competency.CategoryStrategic])
	}
	if _, ok := o.AvgGapByCategory[competency.CategoryBehavioral]; ok {
		t.Fatalf("expected no behavioral entry")
	}
}

func TestAggregate_TopCourses(t *testing.T) {
	popular := uuid.New()
	rare := uuid.New()
	s := Snapshot{
		Intentions: []IntentionInfo{
			{CourseID: popular, CourseTitle: "Leadership", State: intention.StatePending, CreatedAt: time.Now()},
			{CourseID: popular, CourseTitle: "Leadership", State: intention.StateApproved, CreatedAt: time.Now()},
			{CourseID: rare, CourseTitle: "Data", State: intention.StatePending, CreatedAt: time.Now()},
		},
	}
	o := Aggregate(s, time.Now(), 1, 0)
	if len(o.TopCourses) != 1 {
		t.Fatalf("expected 1 top course, got %d", len(o.TopCourses))
	}
	if o.TopCourses[0].CourseID != popular || o.TopCourses[0].Count != 2 {
		t.Fatalf("unexpected top course: %+v", o.TopCourses[0])
	}
}

func TestAggregate_MonthlyBuckets(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s := Snapshot{
		Intentions: []IntentionInfo{
			{CourseID: uuid.New(), State: intention.StatePending, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			{CourseID: uuid.New(), State: intention.StatePending, CreatedAt: time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)},
			{CourseID: uuid.New(), State: intention.StatePending, CreatedAt: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
			{CourseID: uuid.New(), State: intention.StatePending, CreatedAt: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	o := Aggregate(s, ref, 0, 3)
	if len(o.MonthlyIntentions) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(o.MonthlyIntentions))
	}
	if o.MonthlyIntentions[0].Count != 2 {
		t.Fatalf("expected 2 in current month, got %d", o.MonthlyIntentions[0].Count)
	}
	if o.MonthlyIntentions[1].Count != 1 {
		t.Fatalf("expected 1 in previous month, got %d", o.MonthlyIntentions[1].Count)
	}
	if o.MonthlyIntentions[2].Count != 0 {
		t.Fatalf("expected 0 two months back, got %d", o.MonthlyIntentions[2].Count)
	}
	if !o.MonthlyIntentions[0].Month.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected bucket start: %v", o.MonthlyIntentions[0].Month)
	}
}
