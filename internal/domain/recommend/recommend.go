package recommend

import (
	"sort"

	"career-compass/internal/domain/gap"

	"github.com/google/uuid"
)

const DefaultMaxPerCompetency = 3

// Course is the catalog view the ranker needs. Inactive courses are never
// recommended.
type Course struct {
	ID            uuid.UUID
	Title         string
	CompetencyIDs []uuid.UUID
	PriorityHint  float64
	Active        bool
}

type RankedCourse struct {
	CourseID     uuid.UUID
	Title        string
	Score        float64
	Competencies []uuid.UUID
}

func severity(s gap.Status) float64 {
	switch s {
	case gap.StatusRequired:
		return 2
	case gap.StatusDeveloping:
		return 1
	default:
		return 0
	}
}

// Rank maps competency gaps to course recommendations. Only developing and
// required gaps qualify. Per qualifying competency the candidate list is
// scored weight x severity + priority hint, truncated to maxPerCompetency,
// then merged: a course addressing several flagged competencies accumulates
// the sum of its per-competency scores and is kept once. Final order is
// score descending, course id ascending. Deterministic for identical inputs.
func Rank(gaps []gap.Gap, catalog []Course, maxPerCompetency int) []RankedCourse {
	if maxPerCompetency <= 0 {
		maxPerCompetency = DefaultMaxPerCompetency
	}

	byCompetency := make(map[uuid.UUID][]Course)
	for _, c := range catalog {
		if !c.Active || c.ID == uuid.Nil {
			continue
		}
		for _, compID := range c.CompetencyIDs {
			byCompetency[compID] = append(byCompetency[compID], c)
		}
	}

	type accum struct {
		course       Course
		score        float64
		competencies []uuid.UUID
	}
	merged := make(map[uuid.UUID]*accum)

	for _, g := range gaps {
		sev := severity(g.Status)
		if sev == 0 {
			continue
		}

		candidates := byCompetency[g.CompetencyID]
		if len(candidates) == 0 {
			continue
		}

		type scored struct {
			course Course
			score  float64
		}
		list := make([]scored, 0, len(candidates))
		for _, c := range candidates {
			list = append(list, scored{course: c, score: g.Weight*sev + c.PriorityHint})
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].score != list[j].score {
				return list[i].score > list[j].score
			}
			return list[i].course.ID.String() < list[j].course.ID.String()
		})
		if len(list) > maxPerCompetency {
			list = list[:maxPerCompetency]
		}

		for _, s := range list {
			a, ok := merged[s.course.ID]
			if !ok {
				a = &accum{course: s.course}
				merged[s.course.ID] = a
			}
			a.score += s.score
			a.competencies = append(a.competencies, g.CompetencyID)
		}
	}

	out := make([]RankedCourse, 0, len(merged))
	for _, a := range merged {
		out = append(out, RankedCourse{
			CourseID:     a.course.ID,
			Title:        a.course.Title,
			Score:        a.score,
			Competencies: a.competencies,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CourseID.String() < out[j].CourseID.String()
	})

	return out
}
