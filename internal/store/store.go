// Package store owns the authoritative task and category collections.
// Every mutation passes through it so the invariants hold: unique ids,
// case-insensitively unique category names, and no task referencing a
// category that does not exist. The full state is re-snapshotted to the
// persistence adapter after every successful mutation.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/YugGandhi/ToDoList/internal/clock"
	"github.com/YugGandhi/ToDoList/internal/journal"
	"github.com/YugGandhi/ToDoList/internal/model"
	"github.com/YugGandhi/ToDoList/internal/query"
	"github.com/YugGandhi/ToDoList/internal/storage"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Store is the single source of truth for tasks and categories. The
// task slice order is the ambient display order and the target of
// manual reordering.
type Store struct {
	mu      sync.RWMutex
	adapter storage.Adapter
	clock   clock.Clock
	log     *log.Logger
	journal journal.Recorder

	tasks      []model.Task
	categories []model.Category
	theme      string
	view       query.Criteria
}

func New(adapter storage.Adapter, clk clock.Clock, logger *log.Logger) (*Store, error) {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		adapter: adapter,
		clock:   clk,
		log:     logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetJournal attaches an activity recorder. Mutations are recorded
// after they succeed; a nil recorder disables recording.
func (s *Store) SetJournal(rec journal.Recorder) {
	s.mu.Lock()
	s.journal = rec
	s.mu.Unlock()
}

// recordLocked appends an activity event. Recording failures never fail
// the mutation that triggered them.
func (s *Store) recordLocked(eventType journal.EventType, metadata journal.EventMetadata) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(eventType, metadata); err != nil {
		s.log.Debug("journal record failed", "event", eventType, "err", err)
	}
}

func (s *Store) load() error {
	b, ok, err := s.adapter.Load(storage.KeyTasks)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if ok {
		if err := json.Unmarshal(b, &s.tasks); err != nil {
			return fmt.Errorf("decode tasks: %w", err)
		}
	}
	for i := range s.tasks {
		normalizeTask(&s.tasks[i])
	}

	b, ok, err = s.adapter.Load(storage.KeyCategories)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if ok {
		if err := json.Unmarshal(b, &s.categories); err != nil {
			return fmt.Errorf("decode categories: %w", err)
		}
	} else {
		s.categories = DefaultCategories()
		s.log.Debug("no stored categories, using defaults", "count", len(s.categories))
	}

	b, ok, err = s.adapter.Load(storage.KeyTheme)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	s.theme = ThemeDark
	if ok {
		var theme string
		if err := json.Unmarshal(b, &theme); err != nil {
			return fmt.Errorf("decode theme: %w", err)
		}
		s.theme = theme
	}
	return nil
}

// commitLocked persists the candidate collections, then swaps them in.
// On any persist failure the in-memory state is left untouched, so a
// failed mutation is never observable. A categories-save failure also
// rewrites the tasks key from the prior state so the persisted snapshot
// stays self-consistent. Callers hold the write lock.
func (s *Store) commitLocked(tasks []model.Task, categories []model.Category) error {
	tb, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	cb, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return err
	}
	if err := s.adapter.Save(storage.KeyTasks, tb); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	if err := s.adapter.Save(storage.KeyCategories, cb); err != nil {
		if prev, mErr := json.MarshalIndent(s.tasks, "", "  "); mErr == nil {
			if rbErr := s.adapter.Save(storage.KeyTasks, prev); rbErr != nil {
				s.log.Warn("tasks rollback failed", "err", rbErr)
			}
		}
		return fmt.Errorf("save categories: %w", err)
	}
	s.tasks = tasks
	s.categories = categories
	return nil
}

// Tasks returns the full collection in stored order.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) Task(id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// SetView records the active filter/sort criteria. Reorder consults it:
// repositioning is refused while any filter or search is active.
func (s *Store) SetView(c query.Criteria) {
	s.mu.Lock()
	s.view = c
	s.mu.Unlock()
}

func (s *Store) ActiveView() query.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// View computes the filtered, sorted task sequence for the active
// criteria.
func (s *Store) View() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.View(s.tasks, s.view)
}

func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) SetTheme(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("%w: unknown theme %q", ErrValidation, theme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	if err := s.adapter.Save(storage.KeyTheme, b); err != nil {
		return err
	}
	s.theme = theme
	s.recordLocked(journal.EventThemeChanged, journal.EventMetadata{"theme": theme})
	return nil
}

// ImportReplace swaps the task and category collections wholesale.
// Validation happens at the codec boundary before this is called; a
// failed import never reaches this method.
func (s *Store) ImportReplace(tasks []model.Task, categories []model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newTasks := make([]model.Task, len(tasks))
	copy(newTasks, tasks)
	for i := range newTasks {
		normalizeTask(&newTasks[i])
	}
	newCats := make([]model.Category, len(categories))
	copy(newCats, categories)

	if err := s.commitLocked(newTasks, newCats); err != nil {
		return err
	}
	s.recordLocked(journal.EventDataImported, journal.EventMetadata{
		"tasks":      len(s.tasks),
		"categories": len(s.categories),
	})
	s.log.Info("imported store", "tasks", len(s.tasks), "categories", len(s.categories))
	return nil
}

func normalizeTask(t *model.Task) {
	if t.Tags == nil {
		t.Tags = []string{}
	} else {
		t.Tags = dedupeTags(t.Tags)
	}
	if t.Subtasks == nil {
		t.Subtasks = []model.SubTask{}
	}
}

// dedupeTags drops repeated labels, keeping first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func (s *Store) categoryByNameLocked(name string) (model.Category, bool) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return model.Category{}, false
}

func (s *Store) categoryNameTakenLocked(name, excludeID string) bool {
	for _, c := range s.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
