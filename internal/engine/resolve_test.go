package engine

import (
	"fmt"
	"reflect"
	"testing"

	"dayboard/internal/model"
)

// newTestStore returns a store with a deterministic counter id
// generator ("t1", "t2", ...).
func newTestStore(t *testing.T) *Store {
	t.Helper()
	n := 0
	return NewStore(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	})
}

func task(id, emp string, kind model.Kind, start, end int) model.Task {
	return model.Task{
		ID:         id,
		EmployeeID: emp,
		Kind:       kind,
		Label:      kind.Label(),
		Start:      start,
		End:        end,
	}
}

func ranges(ts []model.Task) [][2]int {
	out := make([][2]int, len(ts))
	for i, t := range ts {
		out[i] = [2]int{t.Start, t.End}
	}
	return out
}

func TestResolveDisjointKept(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("a", "emp", model.KindGallery, 0, 2))
	s.Insert(task("b", "emp", model.KindGallery, 5, 7))

	s.ResolveOverlaps("emp", 2, 5, "")

	got := ranges(s.TasksByEmployee("emp"))
	want := [][2]int{{0, 2}, {5, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveCoveredDropped(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("a", "emp", model.KindBreak, 2, 3))

	s.ResolveOverlaps("emp", 2, 3, "")

	if got := s.TasksByEmployee("emp"); len(got) != 0 {
		t.Errorf("expected covered task dropped, got %v", got)
	}
}

func TestResolveLeftTrim(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("a", "emp", model.KindGallery, 1, 4))

	s.ResolveOverlaps("emp", 3, 5, "")

	got := s.TasksByEmployee("emp")
	if len(got) != 1 || got[0].Start != 1 || got[0].End != 3 {
		t.Errorf("expected [1,3), got %v", ranges(got))
	}
}

func TestResolveRightTrim(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("a", "emp", model.KindGallery, 3, 5))

	s.ResolveOverlaps("emp", 1, 4, "")

	got := s.TasksByEmployee("emp")
	if len(got) != 1 || got[0].Start != 4 || got[0].End != 5 {
		t.Errorf("expected [4,5), got %v", ranges(got))
	}
}

func TestResolveSplit(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("a", "emp", model.KindFrontDesk, 0, 6))

	s.ResolveOverlaps("emp", 2, 3, "")

	got := s.TasksByEmployee("emp")
	want := [][2]int{{0, 2}, {3, 6}}
	if !reflect.DeepEqual(ranges(got), want) {
		t.Fatalf("expected %v, got %v", want, ranges(got))
	}
	for _, half := range got {
		if half.Kind != model.KindFrontDesk || half.Label != model.KindFrontDesk.Label() {
			t.Errorf("split half lost kind/label: %+v", half)
		}
	}
	if got[0].ID == got[1].ID {
		t.Error("split halves share an id")
	}
}

func TestResolveExceptID(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("moving", "emp", model.KindTour, 2, 4))
	s.Insert(task("other", "emp", model.KindGallery, 3, 6))

	s.ResolveOverlaps("emp", 2, 4, "moving")

	got := s.TasksByEmployee("emp")
	want := [][2]int{{2, 4}, {4, 6}}
	if !reflect.DeepEqual(ranges(got), want) {
		t.Errorf("expected %v, got %v", want, ranges(got))
	}
}

func TestResolveOtherEmployeesUntouched(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("a", "alice", model.KindGallery, 2, 4))
	s.Insert(task("b", "bob", model.KindGallery, 2, 4))

	s.ResolveOverlaps("alice", 0, 8, "")

	if got := s.TasksByEmployee("alice"); len(got) != 0 {
		t.Errorf("expected alice cleared, got %v", got)
	}
	if got := s.TasksByEmployee("bob"); len(got) != 1 {
		t.Errorf("expected bob untouched, got %v", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	s := newTestStore(t)
	s.Insert(task("a", "emp", model.KindGallery, 0, 6))
	s.Insert(task("b", "emp", model.KindBreak, 6, 8))

	s.ResolveOverlaps("emp", 2, 3, "")
	first := s.TasksByEmployee("emp")
	s.ResolveOverlaps("emp", 2, 3, "")
	second := s.TasksByEmployee("emp")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second resolve changed state: %v vs %v", first, second)
	}
}
