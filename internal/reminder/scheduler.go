// Package reminder polls the task collection for reminders whose time
// has just elapsed and hands them to a Notifier.
package reminder

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/YugGandhi/ToDoList/internal/clock"
	"github.com/YugGandhi/ToDoList/internal/model"
)

const (
	// DefaultInterval is how often the scheduler re-scans the tasks.
	DefaultInterval = 30 * time.Second

	// Window is how long after its timestamp a reminder still counts
	// as due. It buys headroom for the coarse polling granularity: a
	// reminder firing between two polls is caught by the next one.
	Window = time.Minute
)

// Notification is emitted once per due reminder per polling cycle.
type Notification struct {
	TaskID  string    `json:"taskId"`
	Title   string    `json:"title"`
	FiredAt time.Time `json:"firedAt"`
}

// Notifier receives notifications. Display and any "view task"
// follow-up are its concern, not the scheduler's.
type Notifier interface {
	Notify(n Notification)
}

// TaskSource yields the current task collection. *store.Store
// satisfies it.
type TaskSource interface {
	Tasks() []model.Task
}

type noopNotifier struct{}

func (noopNotifier) Notify(Notification) {}

type Config struct {
	Source   TaskSource
	Notifier Notifier      // defaults to a no-op notifier
	Clock    clock.Clock   // defaults to RealClock
	Interval time.Duration // defaults to DefaultInterval
	Logger   *log.Logger   // defaults to log.Default()
}

// Scheduler is a cancelable periodic job. It keeps no "already
// notified" state: a reminder inside the window on two consecutive
// polls is reported twice. That imprecision is accepted; callers
// wanting at-most-once delivery must dedupe on TaskID themselves.
type Scheduler struct {
	source   TaskSource
	notifier Notifier
	clock    clock.Clock
	interval time.Duration
	log      *log.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func New(cfg Config) *Scheduler {
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = noopNotifier{}
	}
	return &Scheduler{
		source:   cfg.Source,
		notifier: cfg.Notifier,
		clock:    cfg.Clock,
		interval: cfg.Interval,
		log:      cfg.Logger,
	}
}

// Start launches the polling loop. It returns immediately; the loop
// runs until Stop is called or ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.poll()
			}
		}
	}()
}

// Stop cancels the polling loop and waits for it to release its timer.
// Safe to call on a scheduler that was never started.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Scheduler) poll() {
	due := s.Check(s.clock.Now())
	if len(due) > 0 {
		s.log.Debug("reminders due", "count", len(due))
	}
	for _, n := range due {
		s.notifier.Notify(n)
	}
}

// Check returns a notification for every task whose reminder is due at
// now: the reminder timestamp has passed and now is still inside the
// window after it.
func (s *Scheduler) Check(now time.Time) []Notification {
	var due []Notification
	for _, t := range s.source.Tasks() {
		if t.Reminder == nil {
			continue
		}
		if now.Before(*t.Reminder) || !now.Before(t.Reminder.Add(Window)) {
			continue
		}
		due = append(due, Notification{
			TaskID:  t.ID,
			Title:   t.Title,
			FiredAt: now,
		})
	}
	return due
}
