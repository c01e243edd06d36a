package reminder

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YugGandhi/ToDoList/internal/clock"
	"github.com/YugGandhi/ToDoList/internal/model"
)

type staticSource []model.Task

func (s staticSource) Tasks() []model.Task { return s }

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (n *recordingNotifier) Notify(note Notification) {
	n.mu.Lock()
	n.sent = append(n.sent, note)
	n.mu.Unlock()
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func reminderAt(t time.Time) *time.Time { return &t }

func newSchedulerForTests(source TaskSource, notifier Notifier, clk clock.Clock) *Scheduler {
	return New(Config{
		Source:   source,
		Notifier: notifier,
		Clock:    clk,
		Interval: 5 * time.Millisecond,
		Logger:   log.New(io.Discard),
	})
}

func TestCheck_Window(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	source := staticSource{
		{ID: "due", Title: "due now", Reminder: reminderAt(now.Add(-30 * time.Second))},
		{ID: "stale", Title: "too old", Reminder: reminderAt(now.Add(-2 * time.Minute))},
		{ID: "future", Title: "not yet", Reminder: reminderAt(now.Add(5 * time.Minute))},
		{ID: "none", Title: "no reminder"},
	}
	s := newSchedulerForTests(source, &recordingNotifier{}, clock.NewFakeClock(now))

	due := s.Check(now)
	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].TaskID)
	assert.Equal(t, "due now", due[0].Title)
	assert.Equal(t, now, due[0].FiredAt)
}

func TestCheck_WindowBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := newSchedulerForTests(nil, nil, clock.NewFakeClock(now))

	// at the reminder instant: due
	s.source = staticSource{{ID: "a", Reminder: reminderAt(now)}}
	assert.Len(t, s.Check(now), 1)

	// one tick before the window closes: still due
	s.source = staticSource{{ID: "b", Reminder: reminderAt(now.Add(-Window + time.Second))}}
	assert.Len(t, s.Check(now), 1)

	// exactly at the window edge: no longer due
	s.source = staticSource{{ID: "c", Reminder: reminderAt(now.Add(-Window))}}
	assert.Empty(t, s.Check(now))
}

func TestScheduler_NotifiesWhileInsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	notifier := &recordingNotifier{}
	source := staticSource{{ID: "t1", Title: "water plants", Reminder: reminderAt(now)}}

	s := newSchedulerForTests(source, notifier, clock.NewFakeClock(now))
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return notifier.count() >= 1 }, time.Second, time.Millisecond)

	// no dedup by design: while the reminder stays inside the window,
	// every poll reports it again
	require.Eventually(t, func() bool { return notifier.count() >= 2 }, time.Second, time.Millisecond)
}

func TestScheduler_StopHaltsPolling(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	notifier := &recordingNotifier{}
	source := staticSource{{ID: "t1", Title: "x", Reminder: reminderAt(now)}}

	s := newSchedulerForTests(source, notifier, clock.NewFakeClock(now))
	s.Start(context.Background())
	require.Eventually(t, func() bool { return notifier.count() >= 1 }, time.Second, time.Millisecond)

	s.Stop()
	after := notifier.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, notifier.count())
}

func TestScheduler_NilNotifierPollsSafely(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	source := staticSource{{ID: "t1", Title: "x", Reminder: reminderAt(now)}}

	s := newSchedulerForTests(source, nil, clock.NewFakeClock(now))
	s.poll() // due reminder with no notifier configured must not panic
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := newSchedulerForTests(nil, nil, nil)
	s.Stop() // must not panic or block
}

func TestScheduler_ContextCancelStops(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	notifier := &recordingNotifier{}
	source := staticSource{{ID: "t1", Title: "x", Reminder: reminderAt(now)}}

	ctx, cancel := context.WithCancel(context.Background())
	s := newSchedulerForTests(source, notifier, clock.NewFakeClock(now))
	s.Start(ctx)

	require.Eventually(t, func() bool { return notifier.count() >= 1 }, time.Second, time.Millisecond)
	cancel()

	// Stop still returns cleanly after the context already ended the loop.
	s.Stop()
}
