package usecase

import (
	"context"
	"errors"

	"career-compass/internal/domain/competency"
	"career-compass/internal/domain/gap"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type GapProfile struct {
	Gaps    []gap.Gap
	Summary gap.Summary
}

type GapUsecase interface {
	GetGaps(ctx context.Context, userID uuid.UUID) (GapProfile, error)
}

type GapService struct {
	users        repository.UserRepository
	competencies repository.CompetencyRepository
	assessments  repository.AssessmentRepository
	ladder       competency.Ladder
	thresholds   gap.Thresholds
}

func NewGapUsecase(
	users repository.UserRepository,
	competencies repository.CompetencyRepository,
	assessments repository.AssessmentRepository,
	ladder competency.Ladder,
	thresholds gap.Thresholds,
) *GapService {
	if len(ladder) == 0 {
		ladder = competency.DefaultLadder()
	}
	if thresholds.RequiredAt <= 0 {
		thresholds = gap.DefaultThresholds()
	}
	return &GapService{
		users:        users,
		competencies: competencies,
		assessments:  assessments,
		ladder:       ladder,
		thresholds:   thresholds,
	}
}

func (u *GapService) GetGaps(ctx context.Context, userID uuid.UUID) (GapProfile, error) {
	gaps, err := u.computeForUser(ctx, userID)
	if err != nil {
		return GapProfile{}, err
	}
	return GapProfile{Gaps: gaps, Summary: gap.Summarize(gaps)}, nil
}

// computeForUser loads the user's applicable catalog slice and assessments,
// then runs the pure calculator.
func (u *GapService) computeForUser(ctx context.Context, userID uuid.UUID) ([]gap.Gap, error) {
	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	levels := u.ladder.Range(usr.CurrentLevel, usr.TargetLevel)
	if len(levels) == 0 {
		return nil, ErrInvalidInput
	}

	catalog, err := u.competencies.List(ctx, repository.CompetencyFilter{Levels: levels})
	if err != nil {
		return nil, ErrInternal
	}

	rows, err := u.assessments.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	scores := make([]gap.SelfScore, 0, len(rows))
	for _, a := range rows {
		scores = append(scores, gap.SelfScore{CompetencyID: a.CompetencyID, Score: a.SelfScore})
	}

	gaps, err := gap.Compute(catalog, scores, u.thresholds)
	if err != nil {
		if errors.Is(err, gap.ErrInvalidScore) {
			return nil, err
		}
		return nil, ErrInternal
	}
	return gaps, nil
}
