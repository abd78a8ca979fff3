package stats

import (
	"sort"
	"time"

	"career-compass/internal/domain/competency"
	"career-compass/internal/domain/gap"
	"career-compass/internal/domain/intention"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
)

// Snapshot is the immutable input the aggregator works over. The caller
// loads it from storage; nothing here mutates or caches.
type Snapshot struct {
	Users        []UserInfo
	Competencies int
	Courses      int
	Assessments  []AssessmentInfo
	Intentions   []IntentionInfo
	Gaps         []gap.Gap
}

type UserInfo struct {
	ID           uuid.UUID
	CurrentLevel competency.Level
}

type AssessmentInfo struct {
	UserID uuid.UUID
	Score  int
}

type IntentionInfo struct {
	CourseID    uuid.UUID
	CourseTitle string
	State       intention.State
	CreatedAt   time.Time
}

type Overview struct {
	TotalUsers        int
	TotalCompetencies int
	TotalCourses      int
	TotalAssessments  int
	MeanSelfScore     float64

	UsersByLevel      map[competency.Level]int
	IntentionsByState map[intention.State]int
	ScoreDistribution map[int]int

	AvgGapByCategory map[competency.Category]float64

	TopCourses        []CourseCount
	MonthlyIntentions []MonthCount
}

type CourseCount struct {
	CourseID uuid.UUID
	Title    string
	Count    int
}

type MonthCount struct {
	Month time.Time
	Count int
}

// Aggregate recomputes every rollup from the snapshot. The dataset is small
// enough that full recomputation per call is fine.
func Aggregate(s Snapshot, reference time.Time, topCourses, months int) Overview {
	o := Overview{
		TotalUsers:        len(s.Users),
		TotalCompetencies: s.Competencies,
		TotalCourses:      s.Courses,
		TotalAssessments:  len(s.Assessments),
		UsersByLevel:      make(map[competency.Level]int),
		IntentionsByState: make(map[intention.State]int),
		ScoreDistribution: make(map[int]int),
		AvgGapByCategory:  make(map[competency.Category]float64),
	}

	for _, u := range s.Users {
		o.UsersByLevel[u.CurrentLevel]++
	}

	var scoreSum int
	for _, a := range s.Assessments {
		scoreSum += a.Score
		if a.Score >= 1 && a.Score <= 5 {
			o.ScoreDistribution[a.Score]++
		}
	}
	if len(s.Assessments) > 0 {
		o.MeanSelfScore = float64(scoreSum) / float64(len(s.Assessments))
	}

	gapSum := make(map[competency.Category]float64)
	gapCount := make(map[competency.Category]int)
	for _, g := range s.Gaps {
		gapSum[g.Category] += g.Gap
		gapCount[g.Category]++
	}
	for cat, sum := range gapSum {
		o.AvgGapByCategory[cat] = sum / float64(gapCount[cat])
	}

	courseCounts := make(map[uuid.UUID]*CourseCount)
	for _, it := range s.Intentions {
		o.IntentionsByState[it.State]++
		cc, ok := courseCounts[it.CourseID]
		if !ok {
			cc = &CourseCount{CourseID: it.CourseID, Title: it.CourseTitle}
			courseCounts[it.CourseID] = cc
		}
		cc.Count++
	}
	o.TopCourses = rankCourses(courseCounts, topCourses)
	o.MonthlyIntentions = bucketByMonth(s.Intentions, reference, months)

	return o
}

func rankCourses(counts map[uuid.UUID]*CourseCount, limit int) []CourseCount {
	out := make([]CourseCount, 0, len(counts))
	for _, cc := range counts {
		out = append(out, *cc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CourseID.String() < out[j].CourseID.String()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// bucketByMonth counts intentions per calendar month, most recent first,
// covering the given number of months ending at the reference time.
func bucketByMonth(items []IntentionInfo, reference time.Time, months int) []MonthCount {
	if months <= 0 {
		return nil
	}

	counts := make(map[time.Time]int)
	for _, it := range items {
		m := now.New(it.CreatedAt.UTC()).BeginningOfMonth()
		counts[m]++
	}

	out := make([]MonthCount, 0, months)
	cursor := now.New(reference.UTC()).BeginningOfMonth()
	for i := 0; i < months; i++ {
		out = append(out, MonthCount{Month: cursor, Count: counts[cursor]})
		cursor = now.New(cursor.AddDate(0, 0, -1)).BeginningOfMonth()
	}
	return out
}
