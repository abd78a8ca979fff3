package competency

import (
	"github.com/google/uuid"
)

type Category string

const (
	CategoryTechnical  Category = "technical"
	CategoryBehavioral Category = "behavioral"
	CategoryStrategic  Category = "strategic"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryBehavioral, CategoryStrategic:
		return true
	}
	return false
}

// Level is a career-ladder tier (FC-03 .. FC-06).
type Level string

const (
	LevelFC03 Level = "FC-03"
	LevelFC04 Level = "FC-04"
	LevelFC05 Level = "FC-05"
	LevelFC06 Level = "FC-06"
)

type Competency struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Category      Category
	Level         Level
	Weight        float64
	RequiredScore int
}

// Ladder is the ordered set of career levels. Passed in as configuration so
// tier ordering is not hardcoded at call sites.
type Ladder []Level

func DefaultLadder() Ladder {
	return Ladder{LevelFC03, LevelFC04, LevelFC05, LevelFC06}
}

func (l Ladder) Index(lv Level) int {
	for i, v := range l {
		if v == lv {
			return i
		}
	}
	return -1
}

func (l Ladder) Contains(lv Level) bool {
	return l.Index(lv) >= 0
}

// Range resolves the levels whose competencies apply to a user progressing
// from current toward target: the levels strictly above current up to and
// including target. When target does not sit above current, only the target
// level applies.
func (l Ladder) Range(current, target Level) []Level {
	ci := l.Index(current)
	ti := l.Index(target)
	if ci < 0 || ti < 0 {
		return nil
	}
	if ti <= ci {
		return []Level{target}
	}
	out := make([]Level, 0, ti-ci)
	for i := ci + 1; i <= ti; i++ {
		out = append(out, l[i])
	}
	return out
}
