package competency

import "testing"

func TestLadder_Range_CurrentBelowTarget(t *testing.T) {
	l := DefaultLadder()
	got := l.Range(LevelFC03, LevelFC05)
	want := []Level{LevelFC04, LevelFC05}
	if len(got) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v at %d, got %v", want[i], i, got[i])
		}
	}
}

func TestLadder_Range_TargetEqualsCurrent(t *testing.T) {
	l := DefaultLadder()
	got := l.Range(LevelFC04, LevelFC04)
	if len(got) != 1 || got[0] != LevelFC04 {
		t.Fatalf("expected [FC-04], got %v", got)
	}
}

func TestLadder_Range_TargetBelowCurrent(t *testing.T) {
	l := DefaultLadder()
	got := l.Range(LevelFC06, LevelFC04)
	if len(got) != 1 || got[0] != LevelFC04 {
		t.Fatalf("expected [FC-04], got %v", got)
	}
}

func TestLadder_Range_UnknownLevel(t *testing.T) {
	l := DefaultLadder()
	if got := l.Range("FC-99", LevelFC04); got != nil {
		t.Fatalf("expected nil for unknown level, got %v", got)
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range []Category{CategoryTechnical, CategoryBehavioral, CategoryStrategic} {
		if !c.Valid() {
			t.Fatalf("expected %v valid", c)
		}
	}
	if Category("managerial").Valid() {
		t.Fatalf("expected unknown category invalid")
	}
}
