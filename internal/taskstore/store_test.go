package taskstore

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestTaskRoundTrip(t *testing.T) {
	s := newTestStore(t)
	due := time.Date(2025, 7, 4, 18, 30, 0, 0, time.UTC)
	task := Task{
		ID:          uuid.New().String(),
		Title:       "hold stability window",
		Description: "keep micro scale above the floor",
		Status:      StatusInProgress,
		Tags:        []string{"coherence", "micro"},
		CreatedAt:   time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 7, 2, 10, 15, 30, 500000000, time.UTC),
		DueAt:       &due,
	}

	if err := s.SaveTask(task); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetTask(task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("saved task not found")
	}
	if diff := cmp.Diff(task, *got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !got.CreatedAt.Equal(task.CreatedAt) || !got.DueAt.Equal(*task.DueAt) {
		t.Fatal("date fields must round-trip exactly")
	}
}

func TestGetMissingTask(t *testing.T) {
	s := newTestStore(t)
	got, err := s.GetTask("no-such-id")
	if err != nil {
		t.Fatalf("missing task must not error, got %v", err)
	}
	if got != nil {
		t.Fatalf("missing task must be nil, got %+v", got)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	task := Task{ID: "t1", Title: "x", Status: StatusPending, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	if err := s.SaveTask(task); err != nil {
		t.Fatalf("save: %v", err)
	}
	ok, err := s.DeleteTask("t1")
	if err != nil || !ok {
		t.Fatalf("delete existing = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = s.DeleteTask("t1")
	if err != nil || ok {
		t.Fatalf("delete missing = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestSaveTaskRequiresID(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveTask(Task{Title: "anonymous"}); err == nil {
		t.Fatal("empty id must error")
	}
}

func TestListTasks(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveTask(Task{ID: id, Title: id, Status: StatusPending, CreatedAt: now, UpdatedAt: now}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	tasks, err := s.ListTasks()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("listed %d tasks, want 3", len(tasks))
	}
}

func TestSubtasks(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	subs := []Subtask{
		{ID: "s1", TaskID: "t1", Title: "first", CreatedAt: now},
		{ID: "s2", TaskID: "t1", Title: "second", Done: true, CreatedAt: now},
		{ID: "s3", TaskID: "t2", Title: "other", CreatedAt: now},
	}
	for _, sub := range subs {
		if err := s.SaveSubtask(sub); err != nil {
			t.Fatalf("save %s: %v", sub.ID, err)
		}
	}

	got, err := s.GetSubtask("s2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff(subs[1], *got); diff != "" {
		t.Fatalf("subtask mismatch (-want +got):\n%s", diff)
	}

	forT1, err := s.ListSubtasks("t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(forT1) != 2 {
		t.Fatalf("t1 has %d subtasks, want 2", len(forT1))
	}

	ok, err := s.DeleteSubtask("s3")
	if err != nil || !ok {
		t.Fatalf("delete existing = (%v, %v), want (true, nil)", ok, err)
	}
	missing, err := s.GetSubtask("s3")
	if err != nil || missing != nil {
		t.Fatalf("deleted subtask should read as (nil, nil), got (%+v, %v)", missing, err)
	}
}
