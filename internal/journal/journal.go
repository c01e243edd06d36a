package journal

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/YugGandhi/ToDoList/internal/clock"
)

// Recorder accepts activity events and answers queries over them.
type Recorder interface {
	Record(eventType EventType, metadata EventMetadata) error
	Events(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// Memory keeps the event stream in memory for the lifetime of the
// process.
type Memory struct {
	mu     sync.RWMutex
	clock  clock.Clock
	events []Event
	nextID int
}

func NewMemory(clk clock.Clock) *Memory {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Memory{
		clock:  clk,
		events: make([]Event, 0),
		nextID: 1,
	}
}

func (r *Memory) Record(eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: r.clock.Now(),
		Metadata:  string(metadataJSON),
	})
	r.nextID++
	return nil
}

// Events returns events at or after since. An empty eventTypes slice
// matches every type.
func (r *Memory) Events(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool, len(eventTypes))
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (r *Memory) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make([]Event, 0)
	r.nextID = 1
	return nil
}
