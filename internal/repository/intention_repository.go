package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/intention"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrIntentionNotFound  = errors.New("intention not found")
	ErrDuplicateIntention = errors.New("duplicate active intention")
	ErrIntentionDecided   = errors.New("intention already decided")
)

// IntentionRow joins the course title for listings.
type IntentionRow struct {
	Intention   intention.Intention
	CourseTitle string
}

type IntentionRepository interface {
	// Create relies on the partial unique index over (user_id, course_id)
	// WHERE status <> 'rejected': the duplicate check and the insert are a
	// single atomic statement.
	Create(ctx context.Context, i intention.Intention) (intention.Intention, error)
	FindByID(ctx context.Context, id uuid.UUID) (intention.Intention, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]IntentionRow, error)
	ListPending(ctx context.Context) ([]IntentionRow, error)
	ListAll(ctx context.Context) ([]IntentionRow, error)
	// Decide is a compare-and-set on status = 'pending'; zero rows affected
	// means the intention was already decided (or never existed).
	Decide(ctx context.Context, i intention.Intention) (intention.Intention, error)
}

type PostgresIntentionRepository struct {
	db database.DB
}

func NewPostgresIntentionRepository(db database.DB) *PostgresIntentionRepository {
	return &PostgresIntentionRepository{db: db}
}

const intentionColumns = `i.id, i.user_id, i.course_id, i.status, i.created_at, i.decided_by, i.decided_role, i.decided_at`

func (r *PostgresIntentionRepository) Create(ctx context.Context, i intention.Intention) (intention.Intention, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO intentions (id, user_id, course_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		i.ID, i.UserID, i.CourseID, i.State, i.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return intention.Intention{}, ErrDuplicateIntention
		}
		return intention.Intention{}, err
	}
	return r.FindByID(ctx, i.ID)
}

func (r *PostgresIntentionRepository) FindByID(ctx context.Context, id uuid.UUID) (intention.Intention, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+intentionColumns+` FROM intentions i WHERE i.id = $1`, id)

	i, err := scanIntention(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return intention.Intention{}, ErrIntentionNotFound
		}
		return intention.Intention{}, err
	}
	return i, nil
}

func (r *PostgresIntentionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]IntentionRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+intentionColumns+`, c.title
		 FROM intentions i
		 JOIN courses c ON c.id = i.course_id
		 WHERE i.user_id = $1
		 ORDER BY i.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIntentionRows(rows)
}

func (r *PostgresIntentionRepository) ListPending(ctx context.Context) ([]IntentionRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+intentionColumns+`, c.title
		 FROM intentions i
		 JOIN courses c ON c.id = i.course_id
		 WHERE i.status = $1
		 ORDER BY i.created_at ASC`,
		intention.StatePending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIntentionRows(rows)
}

func (r *PostgresIntentionRepository) ListAll(ctx context.Context) ([]IntentionRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+intentionColumns+`, c.title
		 FROM intentions i
		 JOIN courses c ON c.id = i.course_id
		 ORDER BY i.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIntentionRows(rows)
}

func (r *PostgresIntentionRepository) Decide(ctx context.Context, i intention.Intention) (intention.Intention, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE intentions
		 SET status = $1, decided_by = $2, decided_role = $3, decided_at = $4
		 WHERE id = $5 AND status = $6`,
		i.State, i.DecidedBy, i.DecidedRole, i.DecidedAt, i.ID, intention.StatePending,
	)
	if err != nil {
		return intention.Intention{}, err
	}
	if affected == 0 {
		if _, ferr := r.FindByID(ctx, i.ID); ferr != nil {
			return intention.Intention{}, ferr
		}
		return intention.Intention{}, ErrIntentionDecided
	}
	return r.FindByID(ctx, i.ID)
}

func scanIntention(row database.Row) (intention.Intention, error) {
	var (
		i           intention.Intention
		state       string
		decidedBy   *uuid.UUID
		decidedRole *string
		decidedAt   *time.Time
	)
	if err := row.Scan(&i.ID, &i.UserID, &i.CourseID, &state, &i.CreatedAt, &decidedBy, &decidedRole, &decidedAt); err != nil {
		return intention.Intention{}, err
	}
	i.State = intention.State(state)
	i.DecidedBy = decidedBy
	i.DecidedAt = decidedAt
	if decidedRole != nil {
		role := authz.Role(*decidedRole)
		i.DecidedRole = &role
	}
	return i, nil
}

func collectIntentionRows(rows database.Rows) ([]IntentionRow, error) {
	out := make([]IntentionRow, 0)
	for rows.Next() {
		var (
			i           intention.Intention
			state       string
			decidedBy   *uuid.UUID
			decidedRole *string
			decidedAt   *time.Time
			title       string
		)
		if err := rows.Scan(&i.ID, &i.UserID, &i.CourseID, &state, &i.CreatedAt, &decidedBy, &decidedRole, &decidedAt, &title); err != nil {
			return nil, err
		}
		i.State = intention.State(state)
		i.DecidedBy = decidedBy
		i.DecidedAt = decidedAt
		if decidedRole != nil {
			role := authz.Role(*decidedRole)
			i.DecidedRole = &role
		}
		out = append(out, IntentionRow{Intention: i, CourseTitle: title})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
