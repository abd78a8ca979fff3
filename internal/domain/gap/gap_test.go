package gap

import (
	"errors"
	"testing"

	"career-compass/internal/domain/competency"

	"github.com/google/uuid"
)

func comp(id uuid.UUID, name string, weight float64, required int) competency.Competency {
	return competency.Competency{
		ID:            id,
		Name:          name,
		Category:      competency.CategoryTechnical,
		Level:         competency.LevelFC04,
		Weight:        weight,
		RequiredScore: required,
	}
}

func TestCompute_GapAndStatus(t *testing.T) {
	id := uuid.New()
	cases := []struct {
		name     string
		required int
		self     int
		wantGap  float64
		want     Status
	}{
		{"mastered exact", 4, 4, 0, StatusMastered},
		{"mastered above", 3, 5, 0, StatusMastered},
		{"developing", 4, 3, 1, StatusDeveloping},
		{"required boundary", 5, 3, 2, StatusRequired},
		{"required wide", 5, 1, 4, StatusRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gaps, err := Compute(
				[]competency.Competency{comp(id, "x", 1, tc.required)},
				[]SelfScore{{CompetencyID: id, Score: tc.self}},
				DefaultThresholds(),
			)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(gaps) != 1 {
				t.Fatalf("expected 1 gap, got %d", len(gaps))
			}
			if gaps[0].Gap != tc.wantGap {
				t.Fatalf("expected gap %v, got %v", tc.wantGap, gaps[0].Gap)
			}
			if gaps[0].Status != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, gaps[0].Status)
			}
		})
	}
}

func TestCompute_UnassessedIsRequired(t *testing.T) {
	catalog := []competency.Competency{
		comp(uuid.New(), "a", 1, 3),
		comp(uuid.New(), "b", 1, 4),
		comp(uuid.New(), "c", 1, 5),
	}

	gaps, err := Compute(catalog, nil, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	for _, g := range gaps {
		if g.SelfScore != 0 {
			t.Fatalf("expected self score 0, got %d", g.SelfScore)
		}
		if g.Status != StatusRequired {
			t.Fatalf("expected required, got %v", g.Status)
		}
	}
}

func TestCompute_Ordering(t *testing.T) {
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	idC := uuid.MustParse("00000000-0000-0000-0000-00000000000c")

	catalog := []competency.Competency{
		comp(idB, "same gap lighter", 1.0, 4),
		comp(idC, "same gap same weight higher id", 1.5, 4),
		comp(idA, "same gap same weight lower id", 1.5, 4),
	}
	scores := []SelfScore{
		{CompetencyID: idA, Score: 2},
		{CompetencyID: idB, Score: 2},
		{CompetencyID: idC, Score: 2},
	}

	gaps, err := Compute(catalog, scores, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []uuid.UUID{idA, idC, idB}
	for i, id := range want {
		if gaps[i].CompetencyID != id {
			t.Fatalf("position %d: expected %v, got %v", i, id, gaps[i].CompetencyID)
		}
	}
}

func TestCompute_OrderedByGapDesc(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	catalog := []competency.Competency{
		comp(idA, "small gap", 2.0, 3),
		comp(idB, "big gap", 1.0, 5),
	}
	scores := []SelfScore{
		{CompetencyID: idA, Score: 2},
		{CompetencyID: idB, Score: 1},
	}

	gaps, err := Compute(catalog, scores, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gaps[0].CompetencyID != idB {
		t.Fatalf("expected larger gap first")
	}
}

func TestCompute_InvalidSelfScore(t *testing.T) {
	id := uuid.New()
	for _, score := range []int{0, -1, 6} {
		_, err := Compute(
			[]competency.Competency{comp(id, "x", 1, 3)},
			[]SelfScore{{CompetencyID: id, Score: score}},
			DefaultThresholds(),
		)
		if !errors.Is(err, ErrInvalidScore) {
			t.Fatalf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
}

func TestCompute_InvalidRequiredScore(t *testing.T) {
	_, err := Compute(
		[]competency.Competency{comp(uuid.New(), "x", 1, 0)},
		nil,
		DefaultThresholds(),
	)
	if !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}

func TestCompute_Scenario(t *testing.T) {
	id := uuid.New()
	gaps, err := Compute(
		[]competency.Competency{comp(id, "C1", 2, 5)},
		[]SelfScore{{CompetencyID: id, Score: 2}},
		DefaultThresholds(),
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gaps[0].Gap != 3 {
		t.Fatalf("expected gap 3, got %v", gaps[0].Gap)
	}
	if gaps[0].Status != StatusRequired {
		t.Fatalf("expected required, got %v", gaps[0].Status)
	}
}

func TestSummarize(t *testing.T) {
	gaps := []Gap{
		{Status: StatusMastered},
		{Status: StatusMastered},
		{Status: StatusDeveloping},
		{Status: StatusRequired},
	}
	s := Summarize(gaps)
	if s.Total != 4 || s.Mastered != 2 || s.Developing != 1 || s.Required != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.CompletionRate != 0.5 {
		t.Fatalf("expected completion rate 0.5, got %v", s.CompletionRate)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.CompletionRate != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
