package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/YugGandhi/ToDoList/internal/journal"
	"github.com/YugGandhi/ToDoList/internal/model"
)

// CreateTask validates and appends a new task to the end of the
// collection. ID, Status and CreatedAt on the input are ignored: the
// store assigns a fresh id, Pending status and the creation instant.
func (s *Store) CreateTask(t model.Task) (model.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return model.Task{}, fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	}
	t.Description = strings.TrimSpace(t.Description)
	if !t.Priority.Valid() {
		t.Priority = model.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categoryByNameLocked(t.Category); !ok {
		return model.Task{}, fmt.Errorf("%w: unknown category %q", ErrValidation, t.Category)
	}

	t.ID = uuid.NewString()
	t.Status = model.StatusPending
	t.CreatedAt = s.clock.Now()
	normalizeTask(&t)

	tasks := append(slices.Clone(s.tasks), t)
	if err := s.commitLocked(tasks, s.categories); err != nil {
		return model.Task{}, err
	}
	s.recordLocked(journal.EventTaskCreated, journal.EventMetadata{
		"task_id":  t.ID,
		"category": t.Category,
	})
	return t, nil
}

// UpdateTask merges the patch into the task, preserving ID, Status and
// CreatedAt. The patch fails validation before anything is mutated.
func (s *Store) UpdateTask(id string, p Patch) (model.Task, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return model.Task{}, fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if p.Category != nil {
		if _, ok := s.categoryByNameLocked(*p.Category); !ok {
			return model.Task{}, fmt.Errorf("%w: unknown category %q", ErrValidation, *p.Category)
		}
	}

	t := s.tasks[i]
	p.apply(&t)
	t.Title = strings.TrimSpace(t.Title)
	normalizeTask(&t)

	tasks := slices.Clone(s.tasks)
	tasks[i] = t
	if err := s.commitLocked(tasks, s.categories); err != nil {
		return model.Task{}, err
	}
	s.recordLocked(journal.EventTaskUpdated, journal.EventMetadata{"task_id": t.ID})
	return t, nil
}

// SetTaskStatus transitions the task unconditionally; any status is
// reachable from any status.
func (s *Store) SetTaskStatus(id string, status model.Status) (model.Task, error) {
	if !status.Valid() {
		return model.Task{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	tasks := slices.Clone(s.tasks)
	tasks[i].Status = status
	if err := s.commitLocked(tasks, s.categories); err != nil {
		return model.Task{}, err
	}
	s.recordLocked(journal.EventTaskStatusChanged, journal.EventMetadata{
		"task_id": id,
		"status":  string(status),
	})
	return s.tasks[i], nil
}

// DeleteTask removes the task if present. Deleting an absent id is a
// no-op success.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return nil
	}
	tasks := slices.Delete(slices.Clone(s.tasks), i, i+1)
	if err := s.commitLocked(tasks, s.categories); err != nil {
		return err
	}
	s.recordLocked(journal.EventTaskDeleted, journal.EventMetadata{"task_id": id})
	return nil
}

// BulkDelete removes every listed task. Absent ids are skipped, same as
// DeleteTask.
func (s *Store) BulkDelete(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no tasks selected", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := make([]model.Task, 0, len(s.tasks))
	removed := 0
	for _, t := range s.tasks {
		if drop[t.ID] {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if err := s.commitLocked(kept, s.categories); err != nil {
		return err
	}
	s.recordLocked(journal.EventTaskDeleted, journal.EventMetadata{"count": removed})
	return nil
}

// BulkSetStatus transitions every listed task. Any absent id fails the
// whole call with NotFound before anything is mutated.
func (s *Store) BulkSetStatus(ids []string, status model.Status) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no tasks selected", ErrValidation)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := make([]int, 0, len(ids))
	for _, id := range ids {
		i := s.indexOfLocked(id)
		if i < 0 {
			return fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		idx = append(idx, i)
	}
	tasks := slices.Clone(s.tasks)
	for _, i := range idx {
		tasks[i].Status = status
	}
	if err := s.commitLocked(tasks, s.categories); err != nil {
		return err
	}
	s.recordLocked(journal.EventTaskStatusChanged, journal.EventMetadata{
		"count":  len(idx),
		"status": string(status),
	})
	return nil
}

// Reorder repositions taskID to immediately precede beforeTaskID in the
// stored order. It is permitted only while the active view is the
// default (unfiltered, unsearched) one.
func (s *Store) Reorder(taskID, beforeTaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.view.IsDefault() {
		return fmt.Errorf("%w: reorder requires the unfiltered view", ErrInvalidOperation)
	}
	from := s.indexOfLocked(taskID)
	if from < 0 {
		return fmt.Errorf("%w: unknown task %s", ErrInvalidOperation, taskID)
	}
	to := s.indexOfLocked(beforeTaskID)
	if to < 0 {
		return fmt.Errorf("%w: unknown task %s", ErrInvalidOperation, beforeTaskID)
	}
	if taskID == beforeTaskID {
		return nil
	}

	tasks := slices.Clone(s.tasks)
	moved := tasks[from]
	tasks = slices.Delete(tasks, from, from+1)
	if from < to {
		to--
	}
	tasks = slices.Insert(tasks, to, moved)
	if err := s.commitLocked(tasks, s.categories); err != nil {
		return err
	}
	s.recordLocked(journal.EventTaskReordered, journal.EventMetadata{"task_id": taskID})
	return nil
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
