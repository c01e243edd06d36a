package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YugGandhi/ToDoList/internal/model"
)

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func due(t time.Time) *time.Time { return &t }

func TestCalculate_EmptyStore(t *testing.T) {
	s := Calculate(nil, nil, now)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.CompletionRate) // no division by zero
	assert.Empty(t, s.Categories)
	require.Len(t, s.Priorities, 3)
	assert.Equal(t, 0, s.Priorities[0].Count)
}

func TestCalculate_CompletionRate(t *testing.T) {
	tasks := []model.Task{
		{Status: model.StatusCompleted},
		{Status: model.StatusCompleted},
		{Status: model.StatusPending},
		{Status: model.StatusInProgress},
	}

	s := Calculate(tasks, nil, now)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.InProgress)
	assert.Equal(t, 50, s.CompletionRate)
}

func TestCalculate_CompletionRateRounds(t *testing.T) {
	tasks := []model.Task{
		{Status: model.StatusCompleted},
		{Status: model.StatusPending},
		{Status: model.StatusPending},
	}

	// 1/3 => 33.33 rounds to 33
	assert.Equal(t, 33, Calculate(tasks, nil, now).CompletionRate)

	tasks = append(tasks, model.Task{Status: model.StatusCompleted})
	tasks = append(tasks, model.Task{Status: model.StatusCompleted})
	// 3/5 => 60
	assert.Equal(t, 60, Calculate(tasks, nil, now).CompletionRate)
}

func TestCalculate_CategoryCountsIncludeZero(t *testing.T) {
	categories := []model.Category{
		{Name: "Work", Color: "#ef4444"},
		{Name: "Idle", Color: "#10b981"},
	}
	tasks := []model.Task{
		{Category: "Work"},
		{Category: "Work"},
	}

	s := Calculate(tasks, categories, now)
	require.Len(t, s.Categories, 2)
	assert.Equal(t, CategoryCount{Name: "Work", Count: 2, Color: "#ef4444"}, s.Categories[0])
	assert.Equal(t, CategoryCount{Name: "Idle", Count: 0, Color: "#10b981"}, s.Categories[1])
}

func TestCalculate_PriorityCountsFixedColors(t *testing.T) {
	tasks := []model.Task{
		{Priority: model.PriorityHigh},
		{Priority: model.PriorityHigh},
		{Priority: model.PriorityLow},
	}

	s := Calculate(tasks, nil, now)
	require.Len(t, s.Priorities, 3)
	assert.Equal(t, PriorityCount{Name: "High", Count: 2, Color: "#ef4444"}, s.Priorities[0])
	assert.Equal(t, PriorityCount{Name: "Medium", Count: 0, Color: "#f59e0b"}, s.Priorities[1])
	assert.Equal(t, PriorityCount{Name: "Low", Count: 1, Color: "#3b82f6"}, s.Priorities[2])
}

func TestCalculate_DueToday(t *testing.T) {
	tasks := []model.Task{
		{DueDate: due(time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC))},
		// due-today counts completed tasks too
		{DueDate: due(time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)), Status: model.StatusCompleted},
		{DueDate: due(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))},
		{},
	}

	assert.Equal(t, 2, Calculate(tasks, nil, now).DueToday)
}

func TestCalculate_Overdue(t *testing.T) {
	tasks := []model.Task{
		{DueDate: due(now.Add(-time.Hour)), Status: model.StatusPending},
		{DueDate: due(now.Add(-48 * time.Hour)), Status: model.StatusInProgress},
		// completed tasks are never overdue
		{DueDate: due(now.Add(-time.Hour)), Status: model.StatusCompleted},
		{DueDate: due(now.Add(time.Hour)), Status: model.StatusPending},
		{Status: model.StatusPending},
	}

	assert.Equal(t, 2, Calculate(tasks, nil, now).Overdue)
}

func TestCalculate_DueThisWeek(t *testing.T) {
	tasks := []model.Task{
		{DueDate: due(now.Add(24 * time.Hour)), Status: model.StatusPending},
		{DueDate: due(now.AddDate(0, 0, 6)), Status: model.StatusPending},
		// boundary: exactly now+7d is excluded
		{DueDate: due(now.AddDate(0, 0, 7)), Status: model.StatusPending},
		// past due dates belong to overdue, not this week
		{DueDate: due(now.Add(-time.Hour)), Status: model.StatusPending},
		// completed tasks are excluded
		{DueDate: due(now.Add(24 * time.Hour)), Status: model.StatusCompleted},
	}

	assert.Equal(t, 2, Calculate(tasks, nil, now).DueThisWeek)
}
