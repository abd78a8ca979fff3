package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain/competency"
	"career-compass/internal/domain/intention"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]repository.User
	err   error
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (repository.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) ListAll(context.Context) ([]repository.User, error) {
	out := make([]repository.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, name string, current, target competency.Level) (repository.User, error) {
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	u.Name = name
	u.CurrentLevel = current
	u.TargetLevel = target
	m.users[id] = u
	return u, nil
}

type mockCompetencyRepo struct {
	items []competency.Competency
	err   error
}

func (m *mockCompetencyRepo) List(_ context.Context, f repository.CompetencyFilter) ([]competency.Competency, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(f.Levels) == 0 && f.Category == "" {
		return m.items, nil
	}
	out := make([]competency.Competency, 0)
	for _, c := range m.items {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if len(f.Levels) > 0 {
			found := false
			for _, l := range f.Levels {
				if c.Level == l {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCompetencyRepo) FindByID(_ context.Context, id uuid.UUID) (competency.Competency, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return competency.Competency{}, repository.ErrCompetencyNotFound
}

func (m *mockCompetencyRepo) Count(context.Context) (int, error) { return len(m.items), nil }

func (m *mockCompetencyRepo) Create(_ context.Context, c competency.Competency) (competency.Competency, error) {
	m.items = append(m.items, c)
	return c, nil
}

func (m *mockCompetencyRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range m.items {
		if c.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrCompetencyNotFound
}

type mockAssessmentRepo struct {
	byPair map[uuid.UUID]map[uuid.UUID]repository.Assessment
	err    error
}

func newMockAssessmentRepo() *mockAssessmentRepo {
	return &mockAssessmentRepo{byPair: make(map[uuid.UUID]map[uuid.UUID]repository.Assessment)}
}

func (m *mockAssessmentRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]repository.Assessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Assessment, 0)
	for _, a := range m.byPair[userID] {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAssessmentRepo) ListAll(context.Context) ([]repository.Assessment, error) {
	out := make([]repository.Assessment, 0)
	for _, byComp := range m.byPair {
		for _, a := range byComp {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAssessmentRepo) Upsert(_ context.Context, a repository.Assessment) (repository.Assessment, error) {
	if m.err != nil {
		return repository.Assessment{}, m.err
	}
	byComp, ok := m.byPair[a.UserID]
	if !ok {
		byComp = make(map[uuid.UUID]repository.Assessment)
		m.byPair[a.UserID] = byComp
	}
	if existing, ok := byComp[a.CompetencyID]; ok {
		a.ID = existing.ID
	}
	byComp[a.CompetencyID] = a
	return a, nil
}

func (m *mockAssessmentRepo) UpsertBatch(ctx context.Context, items []repository.Assessment) error {
	for _, a := range items {
		if _, err := m.Upsert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockAssessmentRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	delete(m.byPair, userID)
	return nil
}

type mockCourseRepo struct {
	items []repository.Course
	err   error
}

func (m *mockCourseRepo) List(_ context.Context, includeInactive bool) ([]repository.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Course, 0, len(m.items))
	for _, c := range m.items {
		if !includeInactive && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCourseRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Course, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return repository.Course{}, repository.ErrCourseNotFound
}

func (m *mockCourseRepo) Count(context.Context) (int, error) { return len(m.items), nil }

func (m *mockCourseRepo) Create(_ context.Context, c repository.Course) (repository.Course, error) {
	m.items = append(m.items, c)
	return c, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range m.items {
		if c.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrCourseNotFound
}

func (m *mockCourseRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	for i, c := range m.items {
		if c.ID == id {
			m.items[i].IsActive = active
			return nil
		}
	}
	return repository.ErrCourseNotFound
}

// mockIntentionRepo mirrors the storage guarantees: at most one non-rejected
// intention per (user, course), compare-and-set on decide.
type mockIntentionRepo struct {
	items map[uuid.UUID]intention.Intention
}

func newMockIntentionRepo() *mockIntentionRepo {
	return &mockIntentionRepo{items: make(map[uuid.UUID]intention.Intention)}
}

func (m *mockIntentionRepo) Create(_ context.Context, i intention.Intention) (intention.Intention, error) {
	for _, existing := range m.items {
		if existing.UserID == i.UserID && existing.CourseID == i.CourseID && existing.State != intention.StateRejected {
			return intention.Intention{}, repository.ErrDuplicateIntention
		}
	}
	m.items[i.ID] = i
	return i, nil
}

func (m *mockIntentionRepo) FindByID(_ context.Context, id uuid.UUID) (intention.Intention, error) {
	i, ok := m.items[id]
	if !ok {
		return intention.Intention{}, repository.ErrIntentionNotFound
	}
	return i, nil
}

func (m *mockIntentionRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]repository.IntentionRow, error) {
	out := make([]repository.IntentionRow, 0)
	for _, i := range m.items {
		if i.UserID == userID {
			out = append(out, repository.IntentionRow{Intention: i})
		}
	}
	return out, nil
}

func (m *mockIntentionRepo) ListPending(context.Context) ([]repository.IntentionRow, error) {
	out := make([]repository.IntentionRow, 0)
	for _, i := range m.items {
		if i.State == intention.StatePending {
			out = append(out, repository.IntentionRow{Intention: i})
		}
	}
	return out, nil
}

func (m *mockIntentionRepo) ListAll(context.Context) ([]repository.IntentionRow, error) {
	out := make([]repository.IntentionRow, 0, len(m.items))
	for _, i := range m.items {
		out = append(out, repository.IntentionRow{Intention: i})
	}
	return out, nil
}

func (m *mockIntentionRepo) Decide(_ context.Context, i intention.Intention) (intention.Intention, error) {
	current, ok := m.items[i.ID]
	if !ok {
		return intention.Intention{}, repository.ErrIntentionNotFound
	}
	if current.State != intention.StatePending {
		return intention.Intention{}, repository.ErrIntentionDecided
	}
	m.items[i.ID] = i
	return i, nil
}

func testUser(level, target competency.Level) repository.User {
	return repository.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		CurrentLevel: level,
		TargetLevel:  target,
		CreatedAt:    time.Now().UTC(),
	}
}
