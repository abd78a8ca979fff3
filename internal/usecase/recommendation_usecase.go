package usecase

import (
	"context"

	"career-compass/internal/domain/recommend"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type RecommendationParams struct {
	Limit            int
	MaxPerCompetency int
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, p RecommendationParams) ([]recommend.RankedCourse, error)
}

type Recommendation struct {
	gaps    *GapService
	courses repository.CourseRepository
}

func NewRecommendationUsecase(gaps *GapService, courses repository.CourseRepository) *Recommendation {
	return &Recommendation{gaps: gaps, courses: courses}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, p RecommendationParams) ([]recommend.RankedCourse, error) {
	if p.Limit < 0 || p.MaxPerCompetency < 0 {
		return nil, ErrInvalidInput
	}
	if p.MaxPerCompetency == 0 {
		p.MaxPerCompetency = recommend.DefaultMaxPerCompetency
	}

	gaps, err := u.gaps.computeForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := u.courses.List(ctx, false)
	if err != nil {
		return nil, ErrInternal
	}
	catalog := make([]recommend.Course, 0, len(rows))
	for _, c := range rows {
		catalog = append(catalog, recommend.Course{
			ID:            c.ID,
			Title:         c.Title,
			CompetencyIDs: c.CompetencyIDs,
			PriorityHint:  c.PriorityHint,
			Active:        c.IsActive,
		})
	}

	ranked := recommend.Rank(gaps, catalog, p.MaxPerCompetency)
	if p.Limit > 0 && len(ranked) > p.Limit {
		ranked = ranked[:p.Limit]
	}
	return ranked, nil
}
