package model

import (
	"slices"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting: High first, Low last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"date"`

	DueDate  *time.Time `json:"dueDate,omitempty"`
	Reminder *time.Time `json:"reminder,omitempty"`

	Tags     []string  `json:"tags"`
	Subtasks []SubTask `json:"subtasks"`
	Notes    string    `json:"notes,omitempty"`
}

func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// DueBefore reports whether the task has a due date strictly before ts.
func (t *Task) DueBefore(ts time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(ts)
}
