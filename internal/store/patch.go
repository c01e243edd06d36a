package store

import (
	"time"

	"github.com/YugGandhi/ToDoList/internal/model"
)

// Patch represents a partial task update.
// nil pointer => "no change"
// ClearDueDate/ClearReminder => drop the optional field entirely
type Patch struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Priority    *model.Priority  `json:"priority,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Subtasks    *[]model.SubTask `json:"subtasks,omitempty"`
	Notes       *string          `json:"notes,omitempty"`

	DueDate      *time.Time `json:"dueDate,omitempty"`
	ClearDueDate bool       `json:"clearDueDate,omitempty"`

	Reminder      *time.Time `json:"reminder,omitempty"`
	ClearReminder bool       `json:"clearReminder,omitempty"`
}

// apply merges the patch into t. ID, Status and CreatedAt are never
// touched here; status changes go through SetTaskStatus.
func (p Patch) apply(t *model.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Tags != nil {
		if *p.Tags == nil {
			t.Tags = []string{}
		} else {
			t.Tags = *p.Tags
		}
	}
	if p.Subtasks != nil {
		if *p.Subtasks == nil {
			t.Subtasks = []model.SubTask{}
		} else {
			t.Subtasks = *p.Subtasks
		}
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}

	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		t.DueDate = p.DueDate
	}

	if p.ClearReminder {
		t.Reminder = nil
	} else if p.Reminder != nil {
		t.Reminder = p.Reminder
	}
}
