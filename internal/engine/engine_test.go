package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"dayboard/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	roster := []model.Employee{
		{ID: "alice", Name: "Alice", ShiftStart: 0, ShiftEnd: 26},
		{ID: "bob", Name: "Bob", ShiftStart: 4, ShiftEnd: 20},
	}
	return New(newTestStore(t), roster, zerolog.Nop())
}

func TestPlaceTaskCoverageDrop(t *testing.T) {
	e := newTestEngine(t)
	e.Store().Insert(task("old", "alice", model.KindBreak, 2, 3))

	placed, err := e.PlaceTask("alice", 2, model.KindTour)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	got := e.TasksByEmployee("alice")
	if len(got) != 1 || got[0].ID != placed.ID {
		t.Fatalf("expected only the new task, got %v", got)
	}
	if got[0].Kind != model.KindTour {
		t.Errorf("expected tour, got %s", got[0].Kind)
	}
}

func TestPlaceTaskSplitsStraddler(t *testing.T) {
	e := newTestEngine(t)
	e.Store().Insert(task("big", "alice", model.KindGallery, 0, 6))

	if _, err := e.PlaceTask("alice", 2, model.KindBreak); err != nil {
		t.Fatalf("place: %v", err)
	}

	got := ranges(e.TasksByEmployee("alice"))
	want := [][2]int{{0, 2}, {2, 3}, {3, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlaceTaskMergesWithNeighbors(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.PlaceTask("alice", 1, model.KindGallery); err != nil {
		t.Fatalf("place: %v", err)
	}
	placed, err := e.PlaceTask("alice", 2, model.KindGallery)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	got := e.TasksByEmployee("alice")
	if len(got) != 1 || got[0].Start != 1 || got[0].End != 3 {
		t.Fatalf("expected merged [1,3), got %v", ranges(got))
	}
	// The returned task is the surviving merged block.
	if placed.Start != 1 || placed.End != 3 {
		t.Errorf("expected returned task [1,3), got [%d,%d)", placed.Start, placed.End)
	}
	if placed.ID != got[0].ID {
		t.Errorf("returned id %s does not match stored %s", placed.ID, got[0].ID)
	}
}

func TestPlaceTaskTourDoesNotMerge(t *testing.T) {
	e := newTestEngine(t)
	e.PlaceTask("alice", 1, model.KindTour)
	e.PlaceTask("alice", 2, model.KindTour)

	if got := e.TasksByEmployee("alice"); len(got) != 2 {
		t.Errorf("expected separate tour blocks, got %v", ranges(got))
	}
}

func TestPlaceTaskInvalidRange(t *testing.T) {
	e := newTestEngine(t)
	e.Store().Insert(task("a", "alice", model.KindGallery, 0, 4))
	before := e.TasksByEmployee("alice")

	for _, row := range []int{-1, 26, 99} {
		if _, err := e.PlaceTask("alice", row, model.KindBreak); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("row %d: expected ErrInvalidRange, got %v", row, err)
		}
	}

	if got := e.TasksByEmployee("alice"); !reflect.DeepEqual(before, got) {
		t.Errorf("store mutated on invalid input: %v", got)
	}
}

func TestPlaceTaskUnknownEmployee(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.PlaceTask("nobody", 3, model.KindBreak); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMoveTaskExemptFromOwnCollision(t *testing.T) {
	e := newTestEngine(t)
	e.Store().Insert(task("mv", "alice", model.KindTour, 2, 4))

	moved, err := e.MoveTask("mv", 3, 5)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.Start != 3 || moved.End != 5 {
		t.Errorf("expected [3,5), got [%d,%d)", moved.Start, moved.End)
	}
	if got := e.TasksByEmployee("alice"); len(got) != 1 {
		t.Errorf("expected one task after move, got %v", ranges(got))
	}
}

func TestMoveTaskResolvesAgainstOthers(t *testing.T) {
	e := newTestEngine(t)
	e.Store().Insert(task("mv", "alice", model.KindTour, 0, 2))
	e.Store().Insert(task("other", "alice", model.KindGallery, 2, 8))

	if _, err := e.MoveTask("mv", 4, 6); err != nil {
		t.Fatalf("move: %v", err)
	}

	got := ranges(e.TasksByEmployee("alice"))
	want := [][2]int{{2, 4}, {4, 6}, {6, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMoveTaskErrors(t *testing.T) {
	e := newTestEngine(t)
	e.Store().Insert(task("a", "alice", model.KindBreak, 1, 2))

	if _, err := e.MoveTask("a", 4, 4); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("empty range: expected ErrInvalidRange, got %v", err)
	}
	if _, err := e.MoveTask("a", 20, 30); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("out of bounds: expected ErrInvalidRange, got %v", err)
	}
	if _, err := e.MoveTask("ghost", 1, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown task: expected ErrNotFound, got %v", err)
	}
}

func TestRemoveTask(t *testing.T) {
	e := newTestEngine(t)
	e.Store().Insert(task("a", "alice", model.KindBreak, 1, 2))

	if err := e.RemoveTask("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := e.RemoveTask("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second remove, got %v", err)
	}
}

// The no-overlap invariant holds after any sequence of placements.
func TestNoOverlapInvariant(t *testing.T) {
	e := newTestEngine(t)
	seq := []struct {
		emp  string
		row  int
		kind model.Kind
	}{
		{"alice", 0, model.KindFrontDesk},
		{"alice", 5, model.KindGallery},
		{"bob", 5, model.KindGallery},
		{"alice", 5, model.KindTour},
		{"alice", 6, model.KindTour},
		{"alice", 5, model.KindBreak},
		{"bob", 6, model.KindGallery},
		{"alice", 0, model.KindFrontDesk},
	}
	for _, s := range seq {
		if _, err := e.PlaceTask(s.emp, s.row, s.kind); err != nil {
			t.Fatalf("place %+v: %v", s, err)
		}
	}

	for _, emp := range []string{"alice", "bob"} {
		ts := e.TasksByEmployee(emp)
		for i := range ts {
			if ts[i].Start >= ts[i].End {
				t.Errorf("%s: empty range %v", emp, ts[i])
			}
			if i > 0 && ts[i-1].End > ts[i].Start {
				t.Errorf("%s: overlap between %v and %v", emp, ts[i-1], ts[i])
			}
		}
	}
}
