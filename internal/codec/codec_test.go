package codec

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YugGandhi/ToDoList/internal/clock"
	"github.com/YugGandhi/ToDoList/internal/model"
	"github.com/YugGandhi/ToDoList/internal/storage"
	"github.com/YugGandhi/ToDoList/internal/store"
)

func newStoreWithTask(t *testing.T) *store.Store {
	t.Helper()
	fake := clock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s, err := store.New(storage.NewMemory(), fake, log.New(io.Discard))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.CreateTask(model.Task{Title: "keep me", Category: "Personal"}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	return s
}

func sampleStore() ([]model.Task, []model.Category) {
	created := time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC)
	due := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	remind := time.Date(2026, 2, 13, 18, 0, 0, 0, time.UTC)

	categories := []model.Category{
		{ID: "c1", Name: "Work", Color: "#ef4444", Icon: "briefcase"},
		{ID: "c2", Name: "Personal", Color: "#3b82f6", Icon: "user"},
	}
	tasks := []model.Task{
		{
			ID:          "t1",
			Title:       "file taxes",
			Description: "before the deadline",
			Category:    "Personal",
			Status:      model.StatusPending,
			Priority:    model.PriorityHigh,
			CreatedAt:   created,
			DueDate:     &due,
			Reminder:    &remind,
			Tags:        []string{"Important", "Urgent"},
			Subtasks: []model.SubTask{
				{ID: "s1", Title: "gather receipts", Completed: true},
				{ID: "s2", Title: "fill forms"},
			},
			Notes: "use last year's return as reference",
		},
		{
			ID:        "t2",
			Title:     "weekly report",
			Category:  "Work",
			Status:    model.StatusCompleted,
			Priority:  model.PriorityMedium,
			CreatedAt: created.Add(time.Hour),
			Tags:      []string{},
			Subtasks:  []model.SubTask{},
		},
	}
	return tasks, categories
}

func TestExportImport_RoundTrip(t *testing.T) {
	tasks, categories := sampleStore()

	doc, err := Export(tasks, categories)
	require.NoError(t, err)

	gotTasks, gotCats, err := Import(doc)
	require.NoError(t, err)

	assert.Equal(t, tasks, gotTasks)
	assert.Equal(t, categories, gotCats)
}

func TestRoundTrip_PreservesEmptySubtasks(t *testing.T) {
	tasks := []model.Task{{
		ID:        "t1",
		Title:     "weekly report",
		Category:  "Work",
		Status:    model.StatusCompleted,
		Priority:  model.PriorityMedium,
		CreatedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		Tags:      []string{},
		Subtasks:  []model.SubTask{},
	}}
	categories := []model.Category{{ID: "c1", Name: "Work", Color: "#ef4444"}}

	doc, err := Export(tasks, categories)
	require.NoError(t, err)

	got, _, err := Import(doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Subtasks)
	assert.Equal(t, tasks, got)
}

func TestImport_NormalizesAbsentCollections(t *testing.T) {
	doc := `{
		"tasks": [{"id":"t1","title":"a","category":"Work","status":"Pending","priority":"Low","date":"2026-02-01T08:30:00Z"}],
		"categories": [{"id":"c1","name":"Work","color":"#fff"}]
	}`
	tasks, _, err := Import([]byte(doc))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{}, tasks[0].Tags)
	assert.Equal(t, []model.SubTask{}, tasks[0].Subtasks)
}

func TestExport_NormalizesNilFields(t *testing.T) {
	tasks := []model.Task{{
		ID:        "t1",
		Title:     "a",
		Category:  "Work",
		Status:    model.StatusPending,
		Priority:  model.PriorityLow,
		CreatedAt: time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC),
	}}
	categories := []model.Category{{ID: "c1", Name: "Work", Color: "#fff"}}

	doc, err := Export(tasks, categories)
	require.NoError(t, err)
	// nil on the way in must not leak as JSON null
	assert.NotContains(t, string(doc), `"tags": null`)
	assert.NotContains(t, string(doc), `"subtasks": null`)

	_, _, err = Import(doc)
	assert.NoError(t, err)
}

func TestExport_NilCollections(t *testing.T) {
	doc, err := Export(nil, nil)
	require.NoError(t, err)

	tasks, cats, err := Import(doc)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Empty(t, cats)
}

func TestImport_MalformedJSON(t *testing.T) {
	_, _, err := Import([]byte(`{not json`))
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestImport_WrongShape(t *testing.T) {
	for _, doc := range []string{
		`{"foo": 1}`,
		`{"tasks": []}`,
		`{"categories": []}`,
		`{"tasks": "nope", "categories": []}`,
		`[]`,
		`null`,
	} {
		_, _, err := Import([]byte(doc))
		assert.ErrorIs(t, err, store.ErrValidation, "doc: %s", doc)
	}
}

func TestImport_SchemaRejectsBadTask(t *testing.T) {
	for name, doc := range map[string]string{
		"missing title": `{"tasks":[{"id":"t1","category":"Work","status":"Pending","priority":"Low","date":"2026-02-01T08:30:00Z"}],
			"categories":[{"id":"c1","name":"Work","color":"#fff"}]}`,
		"bad status": `{"tasks":[{"id":"t1","title":"x","category":"Work","status":"Paused","priority":"Low","date":"2026-02-01T08:30:00Z"}],
			"categories":[{"id":"c1","name":"Work","color":"#fff"}]}`,
		"bad priority": `{"tasks":[{"id":"t1","title":"x","category":"Work","status":"Pending","priority":"Critical","date":"2026-02-01T08:30:00Z"}],
			"categories":[{"id":"c1","name":"Work","color":"#fff"}]}`,
	} {
		_, _, err := Import([]byte(doc))
		assert.ErrorIs(t, err, store.ErrValidation, name)
	}
}

func TestImport_DuplicateTaskIDs(t *testing.T) {
	doc := `{
		"tasks": [
			{"id":"t1","title":"a","category":"Work","status":"Pending","priority":"Low","date":"2026-02-01T08:30:00Z"},
			{"id":"t1","title":"b","category":"Work","status":"Pending","priority":"Low","date":"2026-02-01T08:30:00Z"}
		],
		"categories": [{"id":"c1","name":"Work","color":"#fff"}]
	}`
	_, _, err := Import([]byte(doc))
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestImport_DuplicateCategoryNamesCaseInsensitive(t *testing.T) {
	doc := `{
		"tasks": [],
		"categories": [
			{"id":"c1","name":"Work","color":"#fff"},
			{"id":"c2","name":"work","color":"#000"}
		]
	}`
	_, _, err := Import([]byte(doc))
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestImport_UnresolvableCategoryReference(t *testing.T) {
	doc := `{
		"tasks": [{"id":"t1","title":"a","category":"Ghost","status":"Pending","priority":"Low","date":"2026-02-01T08:30:00Z"}],
		"categories": [{"id":"c1","name":"Work","color":"#fff"}]
	}`
	_, _, err := Import([]byte(doc))
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestRoundTrip_ThroughStore(t *testing.T) {
	s1 := newStoreWithTask(t)

	doc, err := Export(s1.Tasks(), s1.Categories())
	require.NoError(t, err)

	tasks, cats, err := Import(doc)
	require.NoError(t, err)

	s2, err := store.New(storage.NewMemory(), nil, log.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, s2.ImportReplace(tasks, cats))

	assert.Equal(t, s1.Tasks(), s2.Tasks())
	assert.Equal(t, s1.Categories(), s2.Categories())
}

func TestImport_FailureLeavesStoreUntouched(t *testing.T) {
	adapterStore := newStoreWithTask(t)
	before := adapterStore.Tasks()

	_, _, err := Import([]byte(`{"foo": 1}`))
	require.Error(t, err)

	assert.Equal(t, before, adapterStore.Tasks())
}
