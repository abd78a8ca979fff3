package recommend

import (
	"reflect"
	"testing"

	"career-compass/internal/domain/gap"

	"github.com/google/uuid"
)

func requiredGap(compID uuid.UUID, weight float64) gap.Gap {
	return gap.Gap{CompetencyID: compID, Weight: weight, Gap: 3, Status: gap.StatusRequired}
}

func developingGap(compID uuid.UUID, weight float64) gap.Gap {
	return gap.Gap{CompetencyID: compID, Weight: weight, Gap: 1, Status: gap.StatusDeveloping}
}

func course(id uuid.UUID, title string, hint float64, comps ...uuid.UUID) Course {
	return Course{ID: id, Title: title, CompetencyIDs: comps, PriorityHint: hint, Active: true}
}

func TestRank_ScoreFormula(t *testing.T) {
	compID := uuid.New()
	courseID := uuid.New()

	got := Rank(
		[]gap.Gap{requiredGap(compID, 2)},
		[]Course{course(courseID, "K1", 1, compID)},
		DefaultMaxPerCompetency,
	)
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	if got[0].CourseID != courseID {
		t.Fatalf("unexpected course id")
	}
	// weight 2 x severity 2 + hint 1
	if got[0].Score != 5 {
		t.Fatalf("expected score 5, got %v", got[0].Score)
	}
}

func TestRank_MasteredGeneratesNothing(t *testing.T) {
	compID := uuid.New()
	got := Rank(
		[]gap.Gap{{CompetencyID: compID, Weight: 2, Status: gap.StatusMastered}},
		[]Course{course(uuid.New(), "K1", 1, compID)},
		DefaultMaxPerCompetency,
	)
	if len(got) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(got))
	}
}

func TestRank_AdditiveCreditAcrossCompetencies(t *testing.T) {
	compA := uuid.New()
	compB := uuid.New()
	courseID := uuid.New()

	got := Rank(
		[]gap.Gap{requiredGap(compA, 1), developingGap(compB, 1)},
		[]Course{course(courseID, "K1", 0.5, compA, compB)},
		DefaultMaxPerCompetency,
	)
	if len(got) != 1 {
		t.Fatalf("expected single deduplicated course, got %d", len(got))
	}
	// (1x2 + 0.5) + (1x1 + 0.5)
	if got[0].Score != 4 {
		t.Fatalf("expected accumulated score 4, got %v", got[0].Score)
	}
	if len(got[0].Competencies) != 2 {
		t.Fatalf("expected 2 addressed competencies, got %d", len(got[0].Competencies))
	}
}

func TestRank_TruncatesPerCompetency(t *testing.T) {
	compID := uuid.New()

	catalog := make([]Course, 0, 5)
	for i := 0; i < 5; i++ {
		catalog = append(catalog, course(uuid.New(), "K", float64(i), compID))
	}

	got := Rank([]gap.Gap{requiredGap(compID, 1)}, catalog, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 surfaced candidates, got %d", len(got))
	}
	// highest hints survive the cut
	if got[0].Score != 2+4 {
		t.Fatalf("expected best candidate score 6, got %v", got[0].Score)
	}
}

func TestRank_TieBrokenByCourseID(t *testing.T) {
	compID := uuid.New()
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	got := Rank(
		[]gap.Gap{requiredGap(compID, 1)},
		[]Course{course(idB, "B", 1, compID), course(idA, "A", 1, compID)},
		DefaultMaxPerCompetency,
	)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0].CourseID != idA || got[1].CourseID != idB {
		t.Fatalf("expected tie broken by id ascending")
	}
}

func TestRank_InactiveCourseExcluded(t *testing.T) {
	compID := uuid.New()
	c := course(uuid.New(), "K1", 1, compID)
	c.Active = false

	got := Rank([]gap.Gap{requiredGap(compID, 1)}, []Course{c}, DefaultMaxPerCompetency)
	if len(got) != 0 {
		t.Fatalf("expected inactive course excluded, got %d", len(got))
	}
}

func TestRank_EmptyGaps(t *testing.T) {
	got := Rank(nil, []Course{course(uuid.New(), "K1", 1, uuid.New())}, DefaultMaxPerCompetency)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestRank_Idempotent(t *testing.T) {
	compA := uuid.New()
	compB := uuid.New()
	catalog := []Course{
		course(uuid.New(), "K1", 1, compA),
		course(uuid.New(), "K2", 0.5, compA, compB),
		course(uuid.New(), "K3", 2, compB),
	}
	gaps := []gap.Gap{requiredGap(compA, 1.5), developingGap(compB, 1.2)}

	first := Rank(gaps, catalog, DefaultMaxPerCompetency)
	for i := 0; i < 10; i++ {
		again := Rank(gaps, catalog, DefaultMaxPerCompetency)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected identical output on rerun %d", i)
		}
	}
}
