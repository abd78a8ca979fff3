package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/intention"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

// DecisionNotifier delivers a best-effort notice to the user once a reviewer
// decides their intention. Implementations must tolerate being nil-configured.
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, toEmail, userName, courseTitle string, approved bool) error
}

// IntentionEvents publishes workflow events to connected reviewer clients.
type IntentionEvents interface {
	IntentionRegistered(i intention.Intention, courseTitle string)
	IntentionDecided(i intention.Intention, courseTitle string)
}

// StatsInvalidator drops cached statistics after a state change.
type StatsInvalidator interface {
	InvalidateStats(ctx context.Context)
}

type IntentionItem struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CourseID    uuid.UUID
	CourseTitle string
	State       intention.State
	CreatedAt   time.Time
	DecidedBy   *uuid.UUID
	DecidedRole *authz.Role
	DecidedAt   *time.Time
}

type IntentionUsecase interface {
	Register(ctx context.Context, userID uuid.UUID, role authz.Role, courseID uuid.UUID) (IntentionItem, error)
	Decide(ctx context.Context, intentionID, actorID uuid.UUID, actorRole authz.Role, outcome intention.State) (IntentionItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]IntentionItem, error)
	ListPending(ctx context.Context, role authz.Role) ([]IntentionItem, error)
}

type Intention struct {
	intentions repository.IntentionRepository
	courses    repository.CourseRepository
	users      repository.UserRepository

	notifier    DecisionNotifier
	events      IntentionEvents
	invalidator StatsInvalidator

	logger *log.Logger
	now    func() time.Time
}

func NewIntentionUsecase(
	intentions repository.IntentionRepository,
	courses repository.CourseRepository,
	users repository.UserRepository,
	notifier DecisionNotifier,
	events IntentionEvents,
	invalidator StatsInvalidator,
	logger *log.Logger,
) *Intention {
	if logger == nil {
		logger = log.Default()
	}
	return &Intention{
		intentions:  intentions,
		courses:     courses,
		users:       users,
		notifier:    notifier,
		events:      events,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

func (u *Intention) Register(ctx context.Context, userID uuid.UUID, role authz.Role, courseID uuid.UUID) (IntentionItem, error) {
	if err := authz.Check(authz.OpRegisterIntention, role); err != nil {
		return IntentionItem{}, ErrNotAllowed
	}
	if userID == uuid.Nil || courseID == uuid.Nil {
		return IntentionItem{}, ErrInvalidInput
	}

	course, err := u.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return IntentionItem{}, ErrCourseNotFound
		}
		return IntentionItem{}, ErrInternal
	}
	if !course.IsActive {
		return IntentionItem{}, ErrCourseNotFound
	}

	created, err := u.intentions.Create(ctx, intention.New(userID, courseID, u.now()))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateIntention) {
			return IntentionItem{}, intention.ErrAlreadyRegistered
		}
		return IntentionItem{}, ErrInternal
	}

	if u.events != nil {
		u.events.IntentionRegistered(created, course.Title)
	}
	if u.invalidator != nil {
		u.invalidator.InvalidateStats(ctx)
	}

	return toIntentionItem(created, course.Title), nil
}

func (u *Intention) Decide(ctx context.Context, intentionID, actorID uuid.UUID, actorRole authz.Role, outcome intention.State) (IntentionItem, error) {
	if err := authz.Check(authz.OpDecideIntention, actorRole); err != nil {
		return IntentionItem{}, ErrNotAllowed
	}
	if intentionID == uuid.Nil || actorID == uuid.Nil {
		return IntentionItem{}, ErrInvalidInput
	}

	current, err := u.intentions.FindByID(ctx, intentionID)
	if err != nil {
		if errors.Is(err, repository.ErrIntentionNotFound) {
			return IntentionItem{}, intention.ErrNotFound
		}
		return IntentionItem{}, ErrInternal
	}

	decided, err := current.Decide(outcome, actorID, actorRole, u.now())
	if err != nil {
		return IntentionItem{}, err
	}

	// Storage re-checks pending under a compare-and-set, so a concurrent
	// decision loses cleanly instead of double-applying.
	saved, err := u.intentions.Decide(ctx, decided)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrIntentionDecided):
			return IntentionItem{}, intention.ErrNotPending
		case errors.Is(err, repository.ErrIntentionNotFound):
			return IntentionItem{}, intention.ErrNotFound
		default:
			return IntentionItem{}, ErrInternal
		}
	}

	course, err := u.courses.FindByID(ctx, saved.CourseID)
	if err != nil {
		course = repository.Course{}
	}

	if u.events != nil {
		u.events.IntentionDecided(saved, course.Title)
	}
	if u.invalidator != nil {
		u.invalidator.InvalidateStats(ctx)
	}
	u.notifyDecision(saved, course.Title)

	return toIntentionItem(saved, course.Title), nil
}

func (u *Intention) ListByUser(ctx context.Context, userID uuid.UUID) ([]IntentionItem, error) {
	rows, err := u.intentions.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return toIntentionItems(rows), nil
}

func (u *Intention) ListPending(ctx context.Context, role authz.Role) ([]IntentionItem, error) {
	if err := authz.Check(authz.OpListPending, role); err != nil {
		return nil, ErrNotAllowed
	}
	rows, err := u.intentions.ListPending(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return toIntentionItems(rows), nil
}

func (u *Intention) notifyDecision(i intention.Intention, courseTitle string) {
	if u.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		usr, err := u.users.FindByID(ctx, i.UserID)
		if err != nil {
			u.logger.Printf("intention notify skipped | intention=%s err=%v", i.ID, err)
			return
		}

		approved := i.State == intention.StateApproved
		if err := u.notifier.NotifyDecision(ctx, usr.Email, usr.Name, courseTitle, approved); err != nil {
			u.logger.Printf("intention notify failed | intention=%s err=%v", i.ID, err)
		}
	}()
}

func toIntentionItem(i intention.Intention, courseTitle string) IntentionItem {
	return IntentionItem{
		ID:          i.ID,
		UserID:      i.UserID,
		CourseID:    i.CourseID,
		CourseTitle: courseTitle,
		State:       i.State,
		CreatedAt:   i.CreatedAt,
		DecidedBy:   i.DecidedBy,
		DecidedRole: i.DecidedRole,
		DecidedAt:   i.DecidedAt,
	}
}

func toIntentionItems(rows []repository.IntentionRow) []IntentionItem {
	out := make([]IntentionItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, toIntentionItem(r.Intention, r.CourseTitle))
	}
	return out
}
