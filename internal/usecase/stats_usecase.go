package usecase

import (
	"context"
	"log"
	"time"

	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/stats"
	"career-compass/internal/repository"
)

const (
	statsOverviewCacheKey = "stats:overview"
	statsOverviewCacheTTL = 5 * time.Minute

	statsTopCourses     = 5
	statsTrailingMonths = 12
)

// OverviewCache is the slice of the Redis cache the aggregator needs. A nil
// cache (or an unreachable Redis) degrades to recomputation per call.
type OverviewCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type StatsUsecase interface {
	Overview(ctx context.Context, role authz.Role) (stats.Overview, error)
}

type Stats struct {
	gaps       *GapService
	courses    repository.CourseRepository
	intentions repository.IntentionRepository
	cache      OverviewCache

	logger *log.Logger
	now    func() time.Time
}

func NewStatsUsecase(
	gaps *GapService,
	courses repository.CourseRepository,
	intentions repository.IntentionRepository,
	cache OverviewCache,
	logger *log.Logger,
) *Stats {
	if logger == nil {
		logger = log.Default()
	}
	return &Stats{
		gaps:       gaps,
		courses:    courses,
		intentions: intentions,
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
}

func (u *Stats) Overview(ctx context.Context, role authz.Role) (stats.Overview, error) {
	if err := authz.Check(authz.OpViewStats, role); err != nil {
		return stats.Overview{}, ErrNotAllowed
	}

	if u.cache != nil {
		var cached stats.Overview
		if ok, err := u.cache.GetJSON(ctx, statsOverviewCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	snapshot, err := u.loadSnapshot(ctx)
	if err != nil {
		return stats.Overview{}, err
	}

	overview := stats.Aggregate(snapshot, u.now(), statsTopCourses, statsTrailingMonths)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, statsOverviewCacheKey, overview, statsOverviewCacheTTL); err != nil {
			u.logger.Printf("stats cache write failed: %v", err)
		}
	}

	return overview, nil
}

// InvalidateStats drops the cached overview; called after any intention
// state change.
func (u *Stats) InvalidateStats(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, statsOverviewCacheKey); err != nil {
		u.logger.Printf("stats cache invalidation failed: %v", err)
	}
}

func (u *Stats) loadSnapshot(ctx context.Context) (stats.Snapshot, error) {
	users, err := u.gaps.users.ListAll(ctx)
	if err != nil {
		return stats.Snapshot{}, ErrInternal
	}

	competencyCount, err := u.gaps.competencies.Count(ctx)
	if err != nil {
		return stats.Snapshot{}, ErrInternal
	}
	courseCount, err := u.courses.Count(ctx)
	if err != nil {
		return stats.Snapshot{}, ErrInternal
	}

	snapshot := stats.Snapshot{Competencies: competencyCount, Courses: courseCount}

	for _, usr := range users {
		snapshot.Users = append(snapshot.Users, stats.UserInfo{ID: usr.ID, CurrentLevel: usr.CurrentLevel})

		gaps, err := u.gaps.computeForUser(ctx, usr.ID)
		if err != nil {
			// A user with an out-of-ladder level must not sink the whole
			// rollup.
			u.logger.Printf("stats gap computation skipped | user=%s err=%v", usr.ID, err)
			continue
		}
		snapshot.Gaps = append(snapshot.Gaps, gaps...)
	}

	assessments, err := u.gaps.assessments.ListAll(ctx)
	if err != nil {
		return stats.Snapshot{}, ErrInternal
	}
	for _, a := range assessments {
		snapshot.Assessments = append(snapshot.Assessments, stats.AssessmentInfo{UserID: a.UserID, Score: a.SelfScore})
	}

	intentions, err := u.intentions.ListAll(ctx)
	if err != nil {
		return stats.Snapshot{}, ErrInternal
	}
	for _, row := range intentions {
		snapshot.Intentions = append(snapshot.Intentions, stats.IntentionInfo{
			CourseID:    row.Intention.CourseID,
			CourseTitle: row.CourseTitle,
			State:       row.Intention.State,
			CreatedAt:   row.Intention.CreatedAt,
		})
	}

	return snapshot, nil
}
