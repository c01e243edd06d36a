// Package codec serializes the whole store to a portable JSON document
// and validates documents coming back in. Import is a hard boundary:
// anything that would leave the store inconsistent is rejected whole,
// never repaired.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/YugGandhi/ToDoList/internal/model"
	"github.com/YugGandhi/ToDoList/internal/store"
)

// Document is the top-level export shape.
type Document struct {
	Tasks      []model.Task     `json:"tasks"`
	Categories []model.Category `json:"categories"`
}

// Export serializes tasks and categories. Nil collections are emitted
// as empty arrays so the output round-trips through Import losslessly.
func Export(tasks []model.Task, categories []model.Category) ([]byte, error) {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		normalizeCollections(&out[i])
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return json.MarshalIndent(Document{Tasks: out, Categories: categories}, "", "  ")
}

// Import parses and validates a document. It fails with a validation
// error on malformed JSON, a shape that misses the tasks or categories
// fields, or any violation of the store invariants. The caller's store
// is untouched until this succeeds.
func Import(data []byte) ([]model.Task, []model.Category, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid JSON: %v", store.ErrValidation, err)
	}
	if err := docSchema.Validate(raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}
	if err := checkInvariants(doc); err != nil {
		return nil, nil, err
	}
	for i := range doc.Tasks {
		normalizeCollections(&doc.Tasks[i])
	}
	return doc.Tasks, doc.Categories, nil
}

// normalizeCollections gives absent tag and subtask lists their
// canonical empty shape, the same one the store maintains.
func normalizeCollections(t *model.Task) {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Subtasks == nil {
		t.Subtasks = []model.SubTask{}
	}
}

// checkInvariants enforces what the schema cannot: id uniqueness,
// case-insensitive category name uniqueness, and resolvable category
// references.
func checkInvariants(doc Document) error {
	catIDs := make(map[string]bool, len(doc.Categories))
	catNames := make(map[string]bool, len(doc.Categories))
	folded := make(map[string]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		if catIDs[c.ID] {
			return fmt.Errorf("%w: duplicate category id %q", store.ErrValidation, c.ID)
		}
		catIDs[c.ID] = true

		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: category %q has an empty name", store.ErrValidation, c.ID)
		}
		lower := strings.ToLower(c.Name)
		if folded[lower] {
			return fmt.Errorf("%w: duplicate category name %q", store.ErrValidation, c.Name)
		}
		folded[lower] = true
		catNames[c.Name] = true
	}

	taskIDs := make(map[string]bool, len(doc.Tasks))
	for _, t := range doc.Tasks {
		if taskIDs[t.ID] {
			return fmt.Errorf("%w: duplicate task id %q", store.ErrValidation, t.ID)
		}
		taskIDs[t.ID] = true

		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("%w: task %q has an empty title", store.ErrValidation, t.ID)
		}
		if !catNames[t.Category] {
			return fmt.Errorf("%w: task %q references unknown category %q", store.ErrValidation, t.ID, t.Category)
		}
	}
	return nil
}
