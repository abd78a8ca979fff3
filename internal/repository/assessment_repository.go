package repository

import (
	"context"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type Assessment struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CompetencyID uuid.UUID
	SelfScore    int
	AssessedAt   time.Time
}

type AssessmentRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Assessment, error)
	ListAll(ctx context.Context) ([]Assessment, error)
	Upsert(ctx context.Context, a Assessment) (Assessment, error)
	UpsertBatch(ctx context.Context, items []Assessment) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

// One active row per (user, competency); a resubmission overwrites.
const upsertAssessment = `
INSERT INTO assessments (id, user_id, competency_id, self_score, assessed_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, competency_id)
DO UPDATE SET self_score = EXCLUDED.self_score, assessed_at = EXCLUDED.assessed_at`

func (r *PostgresAssessmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Assessment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, competency_id, self_score, assessed_at
		 FROM assessments
		 WHERE user_id = $1
		 ORDER BY assessed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssessments(rows)
}

func (r *PostgresAssessmentRepository) ListAll(ctx context.Context) ([]Assessment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, competency_id, self_score, assessed_at FROM assessments`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssessments(rows)
}

func (r *PostgresAssessmentRepository) Upsert(ctx context.Context, a Assessment) (Assessment, error) {
	_, err := r.db.Exec(ctx, upsertAssessment, a.ID, a.UserID, a.CompetencyID, a.SelfScore, a.AssessedAt)
	if err != nil {
		return Assessment{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, competency_id, self_score, assessed_at
		 FROM assessments
		 WHERE user_id = $1 AND competency_id = $2`,
		a.UserID, a.CompetencyID,
	)
	var saved Assessment
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.CompetencyID, &saved.SelfScore, &saved.AssessedAt); err != nil {
		return Assessment{}, err
	}
	return saved, nil
}

// UpsertBatch writes a whole self-assessment form in one transaction.
func (r *PostgresAssessmentRepository) UpsertBatch(ctx context.Context, items []Assessment) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, a := range items {
		if _, err := tx.Exec(ctx, upsertAssessment, a.ID, a.UserID, a.CompetencyID, a.SelfScore, a.AssessedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresAssessmentRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM assessments WHERE user_id = $1`, userID)
	return err
}

func collectAssessments(rows database.Rows) ([]Assessment, error) {
	out := make([]Assessment, 0)
	for rows.Next() {
		var a Assessment
		if err := rows.Scan(&a.ID, &a.UserID, &a.CompetencyID, &a.SelfScore, &a.AssessedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
