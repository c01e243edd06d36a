package store

import "github.com/YugGandhi/ToDoList/internal/model"

// DefaultCategories returns the built-in category set used when the
// adapter has no stored categories.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "1", Name: "Personal", Color: "#3b82f6", Icon: "user"},
		{ID: "2", Name: "Work", Color: "#ef4444", Icon: "briefcase"},
		{ID: "3", Name: "Shopping", Color: "#10b981", Icon: "shopping-cart"},
		{ID: "4", Name: "Health", Color: "#8b5cf6", Icon: "heart"},
		{ID: "5", Name: "Finance", Color: "#f59e0b", Icon: "dollar-sign"},
	}
}

// DefaultTags are the suggested labels offered by the presentation
// layer when tagging a task.
func DefaultTags() []string {
	return []string{
		"Important", "Urgent", "Later", "Quick", "Detailed",
		"Meeting", "Call", "Email", "Review",
	}
}
