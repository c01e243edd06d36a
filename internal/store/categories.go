package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/YugGandhi/ToDoList/internal/journal"
	"github.com/YugGandhi/ToDoList/internal/model"
)

// CreateCategory appends a new category. Names must be unique
// case-insensitively across the whole collection.
func (s *Store) CreateCategory(name, color, icon string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryNameTakenLocked(name, "") {
		return model.Category{}, fmt.Errorf("%w: category %q already exists", ErrValidation, name)
	}

	c := model.Category{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
		Icon:  icon,
	}
	cats := append(slices.Clone(s.categories), c)
	if err := s.commitLocked(s.tasks, cats); err != nil {
		return model.Category{}, err
	}
	s.recordLocked(journal.EventCategoryCreated, journal.EventMetadata{"name": name})
	return c, nil
}

// RenameCategory updates the category and rewrites the category
// reference on every task that pointed at the old name. Both writes
// happen under one lock so readers never observe a half-applied rename.
func (s *Store) RenameCategory(id, newName, color, icon string) (model.Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return model.Category{}, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndexLocked(id)
	if i < 0 {
		return model.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	if s.categoryNameTakenLocked(newName, id) {
		return model.Category{}, fmt.Errorf("%w: category %q already exists", ErrValidation, newName)
	}

	oldName := s.categories[i].Name
	cats := slices.Clone(s.categories)
	cats[i].Name = newName
	cats[i].Color = color
	cats[i].Icon = icon

	tasks := slices.Clone(s.tasks)
	for j := range tasks {
		if tasks[j].Category == oldName {
			tasks[j].Category = newName
		}
	}

	if err := s.commitLocked(tasks, cats); err != nil {
		return model.Category{}, err
	}
	s.recordLocked(journal.EventCategoryRenamed, journal.EventMetadata{
		"from": oldName,
		"to":   newName,
	})
	return s.categories[i], nil
}

// DeleteCategory removes the category unless any task still references
// it, in which case the error carries the referencing count.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndexLocked(id)
	if i < 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	name := s.categories[i].Name
	count := 0
	for _, t := range s.tasks {
		if t.Category == name {
			count++
		}
	}
	if count > 0 {
		return &CategoryInUseError{Name: name, Count: count}
	}

	cats := slices.Delete(slices.Clone(s.categories), i, i+1)
	if err := s.commitLocked(s.tasks, cats); err != nil {
		return err
	}
	s.recordLocked(journal.EventCategoryDeleted, journal.EventMetadata{"name": name})
	return nil
}

func (s *Store) categoryIndexLocked(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}
