// Package query derives filtered, sorted views of the task collection.
// A view is never the store of record; it is recomputed from the
// store's current contents plus a Criteria.
package query

import (
	"sort"
	"strings"

	"github.com/YugGandhi/ToDoList/internal/model"
)

type Sort string

const (
	SortDate         Sort = "date"
	SortPriority     Sort = "priority"
	SortAlphabetical Sort = "alphabetical"
	SortDueDate      Sort = "dueDate"
)

// Criteria selects and orders tasks. Zero values mean "no filter":
// an empty Status/Category/Priority matches everything and an empty
// Sort falls back to SortDate.
type Criteria struct {
	Status   model.Status
	Category string
	Priority model.Priority
	Search   string
	Sort     Sort
}

// IsDefault reports whether every filter is at its default and the
// search text is empty. This is the only state in which the stored
// order is shown verbatim, and the only state in which manual
// reordering is permitted.
func (c Criteria) IsDefault() bool {
	return c.Status == "" && c.Category == "" && c.Priority == "" && strings.TrimSpace(c.Search) == ""
}

func (c Criteria) matches(t model.Task) bool {
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Category != "" && t.Category != c.Category {
		return false
	}
	if c.Priority != "" && t.Priority != c.Priority {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		if !searchHit(t, q) {
			return false
		}
	}
	return true
}

// searchHit matches the query against title, description, category
// name, or any tag. A hit on any one field counts.
func searchHit(t model.Task, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Category), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// View returns the tasks selected by c, in display order. With default
// criteria the stored order is preserved untouched; otherwise filters
// apply conjunctively and the result is sorted per c.Sort. Sorting is
// stable so ties keep their prior relative order.
func View(tasks []model.Task, c Criteria) []model.Task {
	if c.IsDefault() {
		out := make([]model.Task, len(tasks))
		copy(out, tasks)
		return out
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.matches(t) {
			out = append(out, t)
		}
	}

	switch c.Sort {
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	case SortDueDate:
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := out[i].DueDate, out[j].DueDate
			switch {
			case di == nil:
				return false // no due date sorts after everything
			case dj == nil:
				return true
			default:
				return di.Before(*dj)
			}
		})
	default: // SortDate: newest first
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
