// Package journal records task-engine activity as an in-memory event
// stream. The store feeds it on every successful mutation; callers can
// query recent events or derive an activity summary from them.
package journal

import "time"

type EventType string

const (
	EventTaskCreated       EventType = "task_created"
	EventTaskUpdated       EventType = "task_updated"
	EventTaskStatusChanged EventType = "task_status_changed"
	EventTaskDeleted       EventType = "task_deleted"
	EventTaskReordered     EventType = "task_reordered"
	EventCategoryCreated   EventType = "category_created"
	EventCategoryRenamed   EventType = "category_renamed"
	EventCategoryDeleted   EventType = "category_deleted"
	EventDataImported      EventType = "data_imported"
	EventThemeChanged      EventType = "theme_changed"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
