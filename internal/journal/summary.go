package journal

import (
	"encoding/json"
	"time"
)

// Summary aggregates an event window into activity counts.
type Summary struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	TasksCreated    int               `json:"tasks_created"`
	TasksCompleted  int               `json:"tasks_completed"`
	TasksDeleted    int               `json:"tasks_deleted"`
	CategoryChanges int               `json:"category_changes"`
	Imports         int               `json:"imports"`
	ActiveDays      int               `json:"active_days"`
}

// Summarize computes activity counts from events, typically the result
// of a Recorder.Events call.
func Summarize(events []Event, since time.Time) Summary {
	summary := Summary{
		Period:      since.Format("2006-01-02"),
		EventCounts: make(map[EventType]int),
	}
	days := make(map[string]bool)

	for _, event := range events {
		summary.EventCounts[event.Type]++
		days[event.Timestamp.Format("2006-01-02")] = true

		switch event.Type {
		case EventTaskCreated:
			summary.TasksCreated++
		case EventTaskStatusChanged:
			var metadata EventMetadata
			if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
				continue
			}
			if status, ok := metadata["status"].(string); ok && status == "Completed" {
				summary.TasksCompleted++
			}
		case EventTaskDeleted:
			summary.TasksDeleted++
		case EventCategoryCreated, EventCategoryRenamed, EventCategoryDeleted:
			summary.CategoryChanges++
		case EventDataImported:
			summary.Imports++
		}
	}

	summary.ActiveDays = len(days)
	return summary
}
