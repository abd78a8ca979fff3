package usecase

import (
	"context"
	"errors"

	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/competency"
	"career-compass/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotAllowed         = errors.New("operation not allowed for role")
	ErrCompetencyNotFound = errors.New("competency not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrDuplicateEntry     = errors.New("entry already exists")
)

type CreateCompetencyInput struct {
	Name          string
	Description   string
	Category      competency.Category
	Level         competency.Level
	Weight        float64
	RequiredScore int
}

type CreateCourseInput struct {
	Title         string
	Description   string
	DurationHours int
	Category      string
	PriorityHint  float64
	CompetencyIDs []uuid.UUID
}

type CatalogUsecase interface {
	ListCompetencies(ctx context.Context, level competency.Level, category competency.Category) ([]competency.Competency, error)
	ListCourses(ctx context.Context, role authz.Role, includeInactive bool) ([]repository.Course, error)
	CreateCompetency(ctx context.Context, role authz.Role, in CreateCompetencyInput) (competency.Competency, error)
	DeleteCompetency(ctx context.Context, role authz.Role, id uuid.UUID) error
	CreateCourse(ctx context.Context, role authz.Role, in CreateCourseInput) (repository.Course, error)
	DeleteCourse(ctx context.Context, role authz.Role, id uuid.UUID) error
	SetCourseActive(ctx context.Context, role authz.Role, id uuid.UUID, active bool) error
}

type Catalog struct {
	competencies repository.CompetencyRepository
	courses      repository.CourseRepository
	ladder       competency.Ladder
}

func NewCatalogUsecase(competencies repository.CompetencyRepository, courses repository.CourseRepository, ladder competency.Ladder) *Catalog {
	if len(ladder) == 0 {
		ladder = competency.DefaultLadder()
	}
	return &Catalog{competencies: competencies, courses: courses, ladder: ladder}
}

func (u *Catalog) ListCompetencies(ctx context.Context, level competency.Level, category competency.Category) ([]competency.Competency, error) {
	f := repository.CompetencyFilter{}
	if level != "" {
		if !u.ladder.Contains(level) {
			return nil, ErrInvalidInput
		}
		f.Levels = []competency.Level{level}
	}
	if category != "" {
		if !category.Valid() {
			return nil, ErrInvalidInput
		}
		f.Category = category
	}

	items, err := u.competencies.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) ListCourses(ctx context.Context, role authz.Role, includeInactive bool) ([]repository.Course, error) {
	if includeInactive {
		if err := authz.Check(authz.OpManageCatalog, role); err != nil {
			return nil, ErrNotAllowed
		}
	}
	items, err := u.courses.List(ctx, includeInactive)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) CreateCompetency(ctx context.Context, role authz.Role, in CreateCompetencyInput) (competency.Competency, error) {
	if err := authz.Check(authz.OpManageCatalog, role); err != nil {
		return competency.Competency{}, ErrNotAllowed
	}
	if in.Name == "" || !in.Category.Valid() || !u.ladder.Contains(in.Level) {
		return competency.Competency{}, ErrInvalidInput
	}
	if in.Weight <= 0 {
		return competency.Competency{}, ErrInvalidInput
	}
	if in.RequiredScore < 1 || in.RequiredScore > 5 {
		return competency.Competency{}, ErrInvalidInput
	}

	created, err := u.competencies.Create(ctx, competency.Competency{
		ID:            uuid.New(),
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Level:         in.Level,
		Weight:        in.Weight,
		RequiredScore: in.RequiredScore,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return competency.Competency{}, ErrDuplicateEntry
		}
		return competency.Competency{}, ErrInternal
	}
	return created, nil
}

func (u *Catalog) DeleteCompetency(ctx context.Context, role authz.Role, id uuid.UUID) error {
	if err := authz.Check(authz.OpManageCatalog, role); err != nil {
		return ErrNotAllowed
	}
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.competencies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCompetencyNotFound) {
			return ErrCompetencyNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Catalog) CreateCourse(ctx context.Context, role authz.Role, in CreateCourseInput) (repository.Course, error) {
	if err := authz.Check(authz.OpManageCatalog, role); err != nil {
		return repository.Course{}, ErrNotAllowed
	}
	if in.Title == "" || in.DurationHours < 0 {
		return repository.Course{}, ErrInvalidInput
	}

	for _, compID := range in.CompetencyIDs {
		if _, err := u.competencies.FindByID(ctx, compID); err != nil {
			if errors.Is(err, repository.ErrCompetencyNotFound) {
				return repository.Course{}, ErrCompetencyNotFound
			}
			return repository.Course{}, ErrInternal
		}
	}

	created, err := u.courses.Create(ctx, repository.Course{
		ID:            uuid.New(),
		Title:         in.Title,
		Description:   in.Description,
		DurationHours: in.DurationHours,
		Category:      in.Category,
		PriorityHint:  in.PriorityHint,
		IsActive:      true,
		CompetencyIDs: in.CompetencyIDs,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return repository.Course{}, ErrDuplicateEntry
		}
		return repository.Course{}, ErrInternal
	}
	return created, nil
}

func (u *Catalog) DeleteCourse(ctx context.Context, role authz.Role, id uuid.UUID) error {
	if err := authz.Check(authz.OpManageCatalog, role); err != nil {
		return ErrNotAllowed
	}
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return ErrCourseNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Catalog) SetCourseActive(ctx context.Context, role authz.Role, id uuid.UUID, active bool) error {
	if err := authz.Check(authz.OpManageCatalog, role); err != nil {
		return ErrNotAllowed
	}
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.courses.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return ErrCourseNotFound
		}
		return ErrInternal
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
