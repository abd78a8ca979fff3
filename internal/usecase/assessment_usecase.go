package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/domain/gap"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type SubmitAssessmentInput struct {
	CompetencyID uuid.UUID
	Score        int
}

type AssessmentItem struct {
	ID           uuid.UUID
	CompetencyID uuid.UUID
	Score        int
	AssessedAt   time.Time
}

type AssessmentUsecase interface {
	ListAssessments(ctx context.Context, userID uuid.UUID) ([]AssessmentItem, error)
	SubmitAssessment(ctx context.Context, userID uuid.UUID, in SubmitAssessmentInput) (AssessmentItem, error)
	SubmitBatch(ctx context.Context, userID uuid.UUID, items []SubmitAssessmentInput) error
	ResetAssessments(ctx context.Context, userID uuid.UUID) error
}

type Assessment struct {
	assessments  repository.AssessmentRepository
	competencies repository.CompetencyRepository
	now          func() time.Time
}

func NewAssessmentUsecase(assessments repository.AssessmentRepository, competencies repository.CompetencyRepository) *Assessment {
	return &Assessment{assessments: assessments, competencies: competencies, now: time.Now}
}

func (u *Assessment) ListAssessments(ctx context.Context, userID uuid.UUID) ([]AssessmentItem, error) {
	items, err := u.assessments.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]AssessmentItem, 0, len(items))
	for _, a := range items {
		out = append(out, AssessmentItem{
			ID:           a.ID,
			CompetencyID: a.CompetencyID,
			Score:        a.SelfScore,
			AssessedAt:   a.AssessedAt,
		})
	}
	return out, nil
}

func (u *Assessment) SubmitAssessment(ctx context.Context, userID uuid.UUID, in SubmitAssessmentInput) (AssessmentItem, error) {
	if err := u.validate(ctx, in); err != nil {
		return AssessmentItem{}, err
	}

	saved, err := u.assessments.Upsert(ctx, repository.Assessment{
		ID:           uuid.New(),
		UserID:       userID,
		CompetencyID: in.CompetencyID,
		SelfScore:    in.Score,
		AssessedAt:   u.now().UTC(),
	})
	if err != nil {
		return AssessmentItem{}, ErrInternal
	}

	return AssessmentItem{
		ID:           saved.ID,
		CompetencyID: saved.CompetencyID,
		Score:        saved.SelfScore,
		AssessedAt:   saved.AssessedAt,
	}, nil
}

// SubmitBatch persists a whole self-assessment form atomically: either every
// score lands or none does.
func (u *Assessment) SubmitBatch(ctx context.Context, userID uuid.UUID, items []SubmitAssessmentInput) error {
	if len(items) == 0 {
		return ErrInvalidInput
	}

	seen := make(map[uuid.UUID]bool, len(items))
	rows := make([]repository.Assessment, 0, len(items))
	at := u.now().UTC()
	for _, in := range items {
		if err := u.validate(ctx, in); err != nil {
			return err
		}
		if seen[in.CompetencyID] {
			return ErrInvalidInput
		}
		seen[in.CompetencyID] = true
		rows = append(rows, repository.Assessment{
			ID:           uuid.New(),
			UserID:       userID,
			CompetencyID: in.CompetencyID,
			SelfScore:    in.Score,
			AssessedAt:   at,
		})
	}

	if err := u.assessments.UpsertBatch(ctx, rows); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Assessment) ResetAssessments(ctx context.Context, userID uuid.UUID) error {
	if err := u.assessments.DeleteByUserID(ctx, userID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Assessment) validate(ctx context.Context, in SubmitAssessmentInput) error {
	if in.CompetencyID == uuid.Nil {
		return ErrInvalidInput
	}
	if in.Score < 1 || in.Score > 5 {
		return gap.ErrInvalidScore
	}
	if _, err := u.competencies.FindByID(ctx, in.CompetencyID); err != nil {
		if errors.Is(err, repository.ErrCompetencyNotFound) {
			return ErrCompetencyNotFound
		}
		return ErrInternal
	}
	return nil
}
