package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCourseNotFound = errors.New("course not found")

type Course struct {
	ID            uuid.UUID
	Title         string
	Description   string
	DurationHours int
	Category      string
	PriorityHint  float64
	IsActive      bool
	CompetencyIDs []uuid.UUID
}

type CourseRepository interface {
	List(ctx context.Context, includeInactive bool) ([]Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (Course, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c Course) (Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

const courseSelect = `
SELECT c.id, c.title, COALESCE(c.description, ''), COALESCE(c.duration_hours, 0),
       COALESCE(c.category, ''), c.priority_hint, c.is_active,
       COALESCE(array_agg(cc.competency_id) FILTER (WHERE cc.competency_id IS NOT NULL), '{}')
FROM courses c
LEFT JOIN course_competencies cc ON cc.course_id = c.id`

func (r *PostgresCourseRepository) List(ctx context.Context, includeInactive bool) ([]Course, error) {
	query := courseSelect
	if !includeInactive {
		query += `
WHERE c.is_active`
	}
	query += `
GROUP BY c.id
ORDER BY c.title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (Course, error) {
	row := r.db.QueryRow(ctx, courseSelect+`
WHERE c.id = $1
GROUP BY c.id`, id)

	c, err := scanCourse(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Course{}, ErrCourseNotFound
		}
		return Course{}, err
	}
	return c, nil
}

func (r *PostgresCourseRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresCourseRepository) Create(ctx context.Context, c Course) (Course, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Course{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO courses (id, title, description, duration_hours, category, priority_hint, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Title, c.Description, c.DurationHours, c.Category, c.PriorityHint, c.IsActive,
	)
	if err != nil {
		return Course{}, err
	}

	for _, compID := range c.CompetencyIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO course_competencies (course_id, competency_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			c.ID, compID,
		)
		if err != nil {
			return Course{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Course{}, err
	}
	return r.FindByID(ctx, c.ID)
}

func (r *PostgresCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (r *PostgresCourseRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE courses SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(s scanner) (Course, error) {
	var c Course
	ids := make([]uuid.UUID, 0)
	if err := s.Scan(&c.ID, &c.Title, &c.Description, &c.DurationHours, &c.Category, &c.PriorityHint, &c.IsActive, &ids); err != nil {
		return Course{}, err
	}
	c.CompetencyIDs = ids
	return c, nil
}
