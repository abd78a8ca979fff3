package gap

import (
	"errors"
	"sort"

	"career-compass/internal/domain/competency"

	"github.com/google/uuid"
)

var ErrInvalidScore = errors.New("score out of range")

type Status string

const (
	StatusMastered   Status = "mastered"
	StatusDeveloping Status = "developing"
	StatusRequired   Status = "required"
)

// SelfScore is a user's recorded self-assessment for one competency.
type SelfScore struct {
	CompetencyID uuid.UUID
	Score        int
}

type Gap struct {
	CompetencyID   uuid.UUID
	CompetencyName string
	Category       competency.Category
	Level          competency.Level
	Weight         float64
	RequiredScore  int
	SelfScore      int
	Gap            float64
	Status         Status
}

// Thresholds classifies a gap value. The required boundary is inclusive on
// the severe side: gap == RequiredAt is required, not developing.
type Thresholds struct {
	RequiredAt float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{RequiredAt: 2}
}

func (t Thresholds) Classify(g float64) Status {
	switch {
	case g <= 0:
		return StatusMastered
	case g >= t.RequiredAt:
		return StatusRequired
	default:
		return StatusDeveloping
	}
}

// Compute derives the gap between required and self-rated proficiency for
// every competency in the catalog. A competency with no self-score counts as
// fully unassessed (score 0). Output is ordered gap descending, then weight
// descending, then competency id ascending. Pure: no side effects.
func Compute(catalog []competency.Competency, scores []SelfScore, th Thresholds) ([]Gap, error) {
	byCompetency := make(map[uuid.UUID]int, len(scores))
	for _, s := range scores {
		if s.Score < 1 || s.Score > 5 {
			return nil, ErrInvalidScore
		}
		byCompetency[s.CompetencyID] = s.Score
	}

	out := make([]Gap, 0, len(catalog))
	for _, c := range catalog {
		if c.RequiredScore < 1 || c.RequiredScore > 5 {
			return nil, ErrInvalidScore
		}

		self := byCompetency[c.ID]
		g := float64(c.RequiredScore - self)
		if g < 0 {
			g = 0
		}

		out = append(out, Gap{
			CompetencyID:   c.ID,
			CompetencyName: c.Name,
			Category:       c.Category,
			Level:          c.Level,
			Weight:         c.Weight,
			RequiredScore:  c.RequiredScore,
			SelfScore:      self,
			Gap:            g,
			Status:         th.Classify(g),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Gap != out[j].Gap {
			return out[i].Gap > out[j].Gap
		}
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].CompetencyID.String() < out[j].CompetencyID.String()
	})

	return out, nil
}

// Summary aggregates a gap list into the counts shown on a user's profile.
type Summary struct {
	Total          int
	Mastered       int
	Developing     int
	Required       int
	CompletionRate float64
}

func Summarize(gaps []Gap) Summary {
	s := Summary{Total: len(gaps)}
	for _, g := range gaps {
		switch g.Status {
		case StatusMastered:
			s.Mastered++
		case StatusDeveloping:
			s.Developing++
		case StatusRequired:
			s.Required++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = float64(s.Mastered) / float64(s.Total)
	}
	return s
}
