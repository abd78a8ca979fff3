package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/competency"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompetencyNotFound = errors.New("competency not found")

type CompetencyFilter struct {
	Levels   []competency.Level
	Category competency.Category
}

type CompetencyRepository interface {
	List(ctx context.Context, f CompetencyFilter) ([]competency.Competency, error)
	FindByID(ctx context.Context, id uuid.UUID) (competency.Competency, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c competency.Competency) (competency.Competency, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCompetencyRepository struct {
	db database.DB
}

func NewPostgresCompetencyRepository(db database.DB) *PostgresCompetencyRepository {
	return &PostgresCompetencyRepository{db: db}
}

const competencyColumns = `id, name, COALESCE(description, ''), category, level, weight, required_score`

func (r *PostgresCompetencyRepository) List(ctx context.Context, f CompetencyFilter) ([]competency.Competency, error) {
	query := `SELECT ` + competencyColumns + ` FROM competencies WHERE 1=1`
	args := make([]any, 0, 2)

	if len(f.Levels) > 0 {
		levels := make([]string, 0, len(f.Levels))
		for _, l := range f.Levels {
			levels = append(levels, string(l))
		}
		args = append(args, levels)
		query += ` AND level = ANY($1)`
	}
	if f.Category != "" {
		args = append(args, string(f.Category))
		if len(args) == 1 {
			query += ` AND category = $1`
		} else {
			query += ` AND category = $2`
		}
	}
	query += ` ORDER BY level ASC, category ASC, name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Competency, 0)
	for rows.Next() {
		var c competency.Competency
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.Level, &c.Weight, &c.RequiredScore); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompetencyRepository) FindByID(ctx context.Context, id uuid.UUID) (competency.Competency, error) {
	row := r.db.QueryRow(ctx, `SELECT `+competencyColumns+` FROM competencies WHERE id = $1`, id)

	var c competency.Competency
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.Level, &c.Weight, &c.RequiredScore); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return competency.Competency{}, ErrCompetencyNotFound
		}
		return competency.Competency{}, err
	}
	return c, nil
}

func (r *PostgresCompetencyRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM competencies`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresCompetencyRepository) Create(ctx context.Context, c competency.Competency) (competency.Competency, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO competencies (id, name, description, category, level, weight, required_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Description, c.Category, c.Level, c.Weight, c.RequiredScore,
	)
	if err != nil {
		return competency.Competency{}, err
	}
	return r.FindByID(ctx, c.ID)
}

func (r *PostgresCompetencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM competencies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompetencyNotFound
	}
	return nil
}
