// Package taskstore persists tasks and subtasks as JSON files under a base
// directory. Writes go through temp-file + rename; missing files map to
// nil/false results rather than errors.
package taskstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// #region store

// Store is a file-backed task store rooted at a base directory.
type Store struct {
	base string
}

// NewStore creates the tasks/ and subtasks/ directories under base.
func NewStore(base string) (*Store, error) {
	for _, dir := range []string{filepath.Join(base, "tasks"), filepath.Join(base, "subtasks")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return &Store{base: base}, nil
}

func (s *Store) taskPath(id string) string {
	return filepath.Join(s.base, "tasks", id+".json")
}

func (s *Store) subtaskPath(id string) string {
	return filepath.Join(s.base, "subtasks", id+".json")
}

// #endregion store

// #region tasks

// SaveTask writes a task to <base>/tasks/<id>.json atomically.
func (s *Store) SaveTask(task Task) error {
	if task.ID == "" {
		return errors.New("task id must not be empty")
	}
	return writeJSON(s.taskPath(task.ID), task)
}

// GetTask reads a task by id. Missing tasks return (nil, nil).
func (s *Store) GetTask(id string) (*Task, error) {
	var task Task
	ok, err := readJSON(s.taskPath(id), &task)
	if err != nil {
		return nil, fmt.Errorf("read task %s: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &task, nil
}

// DeleteTask removes a task file. Missing tasks return (false, nil).
func (s *Store) DeleteTask(id string) (bool, error) {
	return remove(s.taskPath(id), "task "+id)
}

// ListTasks reads every task under <base>/tasks/.
func (s *Store) ListTasks() ([]Task, error) {
	ids, err := listIDs(filepath.Join(s.base, "tasks"))
	if err != nil {
		return nil, err
	}
	tasks := make([]Task, 0, len(ids))
	for _, id := range ids {
		t, err := s.GetTask(id)
		if err != nil {
			return nil, err
		}
		if t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

// #endregion tasks

// #region subtasks

// SaveSubtask writes a subtask to <base>/subtasks/<id>.json atomically.
func (s *Store) SaveSubtask(sub Subtask) error {
	if sub.ID == "" {
		return errors.New("subtask id must not be empty")
	}
	return writeJSON(s.subtaskPath(sub.ID), sub)
}

// GetSubtask reads a subtask by id. Missing subtasks return (nil, nil).
func (s *Store) GetSubtask(id string) (*Subtask, error) {
	var sub Subtask
	ok, err := readJSON(s.subtaskPath(id), &sub)
	if err != nil {
		return nil, fmt.Errorf("read subtask %s: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

// DeleteSubtask removes a subtask file. Missing subtasks return (false, nil).
func (s *Store) DeleteSubtask(id string) (bool, error) {
	return remove(s.subtaskPath(id), "subtask "+id)
}

// ListSubtasks reads every subtask belonging to a task.
func (s *Store) ListSubtasks(taskID string) ([]Subtask, error) {
	ids, err := listIDs(filepath.Join(s.base, "subtasks"))
	if err != nil {
		return nil, err
	}
	subs := make([]Subtask, 0, len(ids))
	for _, id := range ids {
		sub, err := s.GetSubtask(id)
		if err != nil {
			return nil, err
		}
		if sub != nil && sub.TaskID == taskID {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}

// #endregion subtasks

// #region io-helpers

// writeJSON marshals v and writes it via a temp file in the target
// directory, then renames into place.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// readJSON unmarshals path into v. Returns (false, nil) when the file does
// not exist.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse: %w", err)
	}
	return true, nil
}

// remove deletes path. Returns (false, nil) when the file does not exist.
func remove(path, what string) (bool, error) {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", what, err)
	}
	return true, nil
}

// listIDs returns the JSON file stems in a directory.
func listIDs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// #endregion io-helpers
