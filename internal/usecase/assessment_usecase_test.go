package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/competency"
	"career-compass/internal/domain/gap"

	"github.com/google/uuid"
)

func catalogOf(n int) *mockCompetencyRepo {
	repo := &mockCompetencyRepo{}
	for i := 0; i < n; i++ {
		repo.items = append(repo.items, competency.Competency{
			ID:            uuid.New(),
			Name:          "comp",
			Category:      competency.CategoryTechnical,
			Level:         competency.LevelFC04,
			Weight:        1,
			RequiredScore: 4,
		})
	}
	return repo
}

func TestAssessment_Submit(t *testing.T) {
	comps := catalogOf(1)
	uc := NewAssessmentUsecase(newMockAssessmentRepo(), comps)

	item, err := uc.SubmitAssessment(context.Background(), uuid.New(), SubmitAssessmentInput{
		CompetencyID: comps.items[0].ID,
		Score:        3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Score != 3 {
		t.Fatalf("expected score 3, got %d", item.Score)
	}
}

func TestAssessment_Submit_InvalidScore(t *testing.T) {
	comps := catalogOf(1)
	uc := NewAssessmentUsecase(newMockAssessmentRepo(), comps)

	for _, score := range []int{0, 6, -1} {
		_, err := uc.SubmitAssessment(context.Background(), uuid.New(), SubmitAssessmentInput{
			CompetencyID: comps.items[0].ID,
			Score:        score,
		})
		if !errors.Is(err, gap.ErrInvalidScore) {
			t.Fatalf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
}

func TestAssessment_Submit_UnknownCompetency(t *testing.T) {
	uc := NewAssessmentUsecase(newMockAssessmentRepo(), &mockCompetencyRepo{})
	_, err := uc.SubmitAssessment(context.Background(), uuid.New(), SubmitAssessmentInput{
		CompetencyID: uuid.New(),
		Score:        3,
	})
	if !errors.Is(err, ErrCompetencyNotFound) {
		t.Fatalf("expected ErrCompetencyNotFound, got %v", err)
	}
}

func TestAssessment_Resubmit_Overwrites(t *testing.T) {
	comps := catalogOf(1)
	repo := newMockAssessmentRepo()
	uc := NewAssessmentUsecase(repo, comps)
	userID := uuid.New()

	if _, err := uc.SubmitAssessment(context.Background(), userID, SubmitAssessmentInput{CompetencyID: comps.items[0].ID, Score: 2}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := uc.SubmitAssessment(context.Background(), userID, SubmitAssessmentInput{CompetencyID: comps.items[0].ID, Score: 5}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	items, err := uc.ListAssessments(context.Background(), userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one active assessment per pair, got %d", len(items))
	}
	if items[0].Score != 5 {
		t.Fatalf("expected overwritten score 5, got %d", items[0].Score)
	}
}

func TestAssessment_SubmitBatch(t *testing.T) {
	comps := catalogOf(3)
	uc := NewAssessmentUsecase(newMockAssessmentRepo(), comps)
	userID := uuid.New()

	batch := []SubmitAssessmentInput{
		{CompetencyID: comps.items[0].ID, Score: 1},
		{CompetencyID: comps.items[1].ID, Score: 3},
		{CompetencyID: comps.items[2].ID, Score: 5},
	}
	if err := uc.SubmitBatch(context.Background(), userID, batch); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	items, err := uc.ListAssessments(context.Background(), userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 assessments, got %d", len(items))
	}
}

func TestAssessment_SubmitBatch_RejectsDuplicatesAndEmpty(t *testing.T) {
	comps := catalogOf(1)
	uc := NewAssessmentUsecase(newMockAssessmentRepo(), comps)
	userID := uuid.New()

	dup := []SubmitAssessmentInput{
		{CompetencyID: comps.items[0].ID, Score: 1},
		{CompetencyID: comps.items[0].ID, Score: 2},
	}
	if err := uc.SubmitBatch(context.Background(), userID, dup); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate pair, got %v", err)
	}
	if err := uc.SubmitBatch(context.Background(), userID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty batch, got %v", err)
	}
}
