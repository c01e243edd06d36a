// Package stats derives summary counts from the task and category
// collections. Calculate is pure: the caller supplies the reference
// instant so results are deterministic.
package stats

import (
	"math"
	"time"

	"github.com/YugGandhi/ToDoList/internal/model"
)

// Display colors for the fixed priority buckets.
const (
	colorHigh   = "#ef4444"
	colorMedium = "#f59e0b"
	colorLow    = "#3b82f6"
)

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type PriorityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`

	// CompletionRate is round(completed/total*100); 0 for an empty store.
	CompletionRate int `json:"completionRate"`

	Categories []CategoryCount `json:"categoryStats"`
	Priorities []PriorityCount `json:"priorityStats"`

	DueToday    int `json:"dueToday"`
	Overdue     int `json:"overdue"`
	DueThisWeek int `json:"dueThisWeek"`
}

func Calculate(tasks []model.Task, categories []model.Category, now time.Time) Stats {
	s := Stats{Total: len(tasks)}

	byCategory := make(map[string]int, len(categories))
	byPriority := make(map[model.Priority]int, 3)
	weekEnd := now.AddDate(0, 0, 7)

	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusInProgress:
			s.InProgress++
		default:
			s.Pending++
		}
		byCategory[t.Category]++
		byPriority[t.Priority]++

		if t.DueDate != nil {
			if sameDay(*t.DueDate, now) {
				s.DueToday++
			}
			if t.Status != model.StatusCompleted {
				if t.DueDate.Before(now) {
					s.Overdue++
				}
				if t.DueDate.After(now) && t.DueDate.Before(weekEnd) {
					s.DueThisWeek++
				}
			}
		}
	}

	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}

	// Every category is listed, zero counts included, so charts stay
	// aligned with the category list.
	s.Categories = make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		s.Categories = append(s.Categories, CategoryCount{
			Name:  c.Name,
			Count: byCategory[c.Name],
			Color: c.Color,
		})
	}

	s.Priorities = []PriorityCount{
		{Name: string(model.PriorityHigh), Count: byPriority[model.PriorityHigh], Color: colorHigh},
		{Name: string(model.PriorityMedium), Count: byPriority[model.PriorityMedium], Color: colorMedium},
		{Name: string(model.PriorityLow), Count: byPriority[model.PriorityLow], Color: colorLow},
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
