package usecase

import (
	"context"
	"testing"

	"career-compass/internal/domain/competency"
	"career-compass/internal/domain/gap"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func fc04Competency(name string, weight float64, required int) competency.Competency {
	return competency.Competency{
		ID:            uuid.New(),
		Name:          name,
		Category:      competency.CategoryTechnical,
		Level:         competency.LevelFC04,
		Weight:        weight,
		RequiredScore: required,
	}
}

func newGapService(users *mockUserRepo, comps *mockCompetencyRepo, assessments *mockAssessmentRepo) *GapService {
	return NewGapUsecase(users, comps, assessments, competency.DefaultLadder(), gap.DefaultThresholds())
}

func TestGaps_ZeroAssessments_AllRequired(t *testing.T) {
	usr := testUser(competency.LevelFC03, competency.LevelFC04)
	users := &mockUserRepo{users: map[uuid.UUID]repository.User{usr.ID: usr}}
	comps := &mockCompetencyRepo{items: []competency.Competency{
		fc04Competency("a", 1, 3),
		fc04Competency("b", 1, 4),
		fc04Competency("c", 1, 5),
	}}

	uc := newGapService(users, comps, newMockAssessmentRepo())
	profile, err := uc.GetGaps(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(profile.Gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(profile.Gaps))
	}
	for _, g := range profile.Gaps {
		if g.Status != gap.StatusRequired {
			t.Fatalf("expected required for unassessed competency, got %v", g.Status)
		}
	}
	if profile.Summary.Required != 3 || profile.Summary.CompletionRate != 0 {
		t.Fatalf("unexpected summary: %+v", profile.Summary)
	}
}

func TestGaps_CatalogScopedToLadderRange(t *testing.T) {
	usr := testUser(competency.LevelFC03, competency.LevelFC04)
	users := &mockUserRepo{users: map[uuid.UUID]repository.User{usr.ID: usr}}

	inRange := fc04Competency("in range", 1, 4)
	outOfRange := competency.Competency{
		ID: uuid.New(), Name: "executive", Category: competency.CategoryStrategic,
		Level: competency.LevelFC06, Weight: 1.8, RequiredScore: 5,
	}
	comps := &mockCompetencyRepo{items: []competency.Competency{inRange, outOfRange}}

	uc := newGapService(users, comps, newMockAssessmentRepo())
	profile, err := uc.GetGaps(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(profile.Gaps) != 1 {
		t.Fatalf("expected only the in-range competency, got %d", len(profile.Gaps))
	}
	if profile.Gaps[0].CompetencyID != inRange.ID {
		t.Fatalf("unexpected competency in gaps")
	}
}

func TestRecommendations_ZeroAssessments(t *testing.T) {
	usr := testUser(competency.LevelFC03, competency.LevelFC04)
	users := &mockUserRepo{users: map[uuid.UUID]repository.User{usr.ID: usr}}

	compA := fc04Competency("a", 2, 5)
	compB := fc04Competency("b", 1, 4)
	comps := &mockCompetencyRepo{items: []competency.Competency{compA, compB}}

	courses := &mockCourseRepo{items: []repository.Course{
		{ID: uuid.New(), Title: "K1", PriorityHint: 1, IsActive: true, CompetencyIDs: []uuid.UUID{compA.ID}},
		{ID: uuid.New(), Title: "K2", PriorityHint: 0, IsActive: true, CompetencyIDs: []uuid.UUID{compB.ID}},
		{ID: uuid.New(), Title: "K3 inactive", PriorityHint: 9, IsActive: false, CompetencyIDs: []uuid.UUID{compA.ID}},
	}}

	uc := NewRecommendationUsecase(newGapService(users, comps, newMockAssessmentRepo()), courses)
	ranked, err := uc.GetRecommendations(context.Background(), usr.ID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(ranked))
	}
	// compA required: 2x2+1 = 5 beats compB required: 1x2+0 = 2
	if ranked[0].Title != "K1" || ranked[0].Score != 5 {
		t.Fatalf("unexpected top recommendation: %+v", ranked[0])
	}
}

func TestRecommendations_AllMastered_Empty(t *testing.T) {
	usr := testUser(competency.LevelFC03, competency.LevelFC04)
	users := &mockUserRepo{users: map[uuid.UUID]repository.User{usr.ID: usr}}

	comp := fc04Competency("a", 1, 3)
	comps := &mockCompetencyRepo{items: []competency.Competency{comp}}

	assessments := newMockAssessmentRepo()
	if _, err := assessments.Upsert(context.Background(), repository.Assessment{
		ID: uuid.New(), UserID: usr.ID, CompetencyID: comp.ID, SelfScore: 5,
	}); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	courses := &mockCourseRepo{items: []repository.Course{
		{ID: uuid.New(), Title: "K1", IsActive: true, CompetencyIDs: []uuid.UUID{comp.ID}},
	}}

	uc := NewRecommendationUsecase(newGapService(users, comps, assessments), courses)
	ranked, err := uc.GetRecommendations(context.Background(), usr.ID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("expected empty recommendations, got %d", len(ranked))
	}
}

func TestRecommendations_LimitApplied(t *testing.T) {
	usr := testUser(competency.LevelFC03, competency.LevelFC04)
	users := &mockUserRepo{users: map[uuid.UUID]repository.User{usr.ID: usr}}

	comp := fc04Competency("a", 1, 5)
	comps := &mockCompetencyRepo{items: []competency.Competency{comp}}

	courses := &mockCourseRepo{}
	for i := 0; i < 3; i++ {
		courses.items = append(courses.items, repository.Course{
			ID: uuid.New(), Title: "K", PriorityHint: float64(i), IsActive: true,
			CompetencyIDs: []uuid.UUID{comp.ID},
		})
	}

	uc := NewRecommendationUsecase(newGapService(users, comps, newMockAssessmentRepo()), courses)
	ranked, err := uc.GetRecommendations(context.Background(), usr.ID, RecommendationParams{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected limit 1 applied, got %d", len(ranked))
	}
}
