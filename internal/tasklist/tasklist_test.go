package tasklist_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/memory"
	"github.com/slok/todo/internal/storage/storagemock"
	"github.com/slok/todo/internal/tasklist"
)

func newManager(t *testing.T, stored string) (*tasklist.Manager, *memory.Store) {
	t.Helper()

	store, err := memory.NewStore(memory.StoreConfig{})
	require.NoError(t, err)
	if stored != "" {
		require.NoError(t, store.Set(context.Background(), tasklist.DefaultKey, []byte(stored)))
	}

	m, err := tasklist.NewManager(tasklist.ManagerConfig{Store: store, Logger: log.Noop})
	require.NoError(t, err)
	require.NoError(t, m.Load(context.Background()))

	return m, store
}

func texts(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}

func TestNewManager(t *testing.T) {
	tests := map[string]struct {
		config tasklist.ManagerConfig
		expErr bool
	}{
		"valid config": {
			config: tasklist.ManagerConfig{Store: &storagemock.MockStore{}},
		},
		"valid config with filter": {
			config: tasklist.ManagerConfig{Store: &storagemock.MockStore{}, Filter: model.FilterActive},
		},
		"missing store": {
			config: tasklist.ManagerConfig{},
			expErr: true,
		},
		"invalid filter": {
			config: tasklist.ManagerConfig{Store: &storagemock.MockStore{}, Filter: "archived"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			m, err := tasklist.NewManager(test.config)
			if test.expErr {
				require.Error(err)
			} else {
				require.NoError(err)
				require.NotNil(m)
			}
		})
	}
}

func TestManagerLoad(t *testing.T) {
	tests := map[string]struct {
		stored   string
		expTasks []model.Task
	}{
		"Missing stored value should start empty.": {
			stored:   "",
			expTasks: []model.Task{},
		},
		"Stored tasks should be loaded in order.": {
			stored: `[{"id":5,"text":"b","completed":true},{"id":2,"text":"a","completed":false}]`,
			expTasks: []model.Task{
				{ID: 5, Text: "b", Completed: true},
				{ID: 2, Text: "a"},
			},
		},
		"Malformed JSON should fall back to an empty list.": {
			stored:   `[{"id":1,"text":`,
			expTasks: []model.Task{},
		},
		"Wrong JSON type should fall back to an empty list.": {
			stored:   `{"tasks":[]}`,
			expTasks: []model.Task{},
		},
		"Duplicated ids should fall back to an empty list.": {
			stored:   `[{"id":1,"text":"a"},{"id":1,"text":"b"}]`,
			expTasks: []model.Task{},
		},
		"Empty text should fall back to an empty list.": {
			stored:   `[{"id":1,"text":"  "}]`,
			expTasks: []model.Task{},
		},
		"JSON null should be an empty list.": {
			stored:   `null`,
			expTasks: []model.Task{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, _ := newManager(t, test.stored)
			got := m.Tasks()
			if len(test.expTasks) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, test.expTasks, got)
			}
		})
	}
}

func TestManagerLoadStoreError(t *testing.T) {
	mStore := &storagemock.MockStore{}
	mStore.On("Get", mock.Anything, "tasks").Once().Return(nil, fmt.Errorf("disk on fire"))

	m, err := tasklist.NewManager(tasklist.ManagerConfig{Store: mStore})
	require.NoError(t, err)

	err = m.Load(context.Background())
	assert.Error(t, err)
	mStore.AssertExpectations(t)
}

func TestManagerAddTask(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		text     string
		expTexts []string
	}{
		"Empty text should be ignored.":           {text: "", expTexts: []string{"first"}},
		"Whitespace only text should be ignored.": {text: " \t\n ", expTexts: []string{"first"}},
		"Text should be trimmed.":                 {text: " Buy milk ", expTexts: []string{"first", "Buy milk"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, _ := newManager(t, `[{"id":1,"text":"first","completed":false}]`)

			got, err := m.AddTask(ctx, test.text)
			require.NoError(t, err)
			assert.Equal(t, test.expTexts, texts(got))
			assert.Equal(t, got, m.Tasks())
		})
	}
}

func TestManagerAddTaskAppendsWithUniqueIDs(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, `[{"id":41,"text":"old","completed":true}]`)

	_, err := m.AddTask(ctx, "a")
	require.NoError(t, err)
	got, err := m.AddTask(ctx, "b")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, model.Task{ID: 42, Text: "a"}, got[1])
	assert.Equal(t, model.Task{ID: 43, Text: "b"}, got[2])

	// Ids keep increasing after removals.
	_, err = m.RemoveTask(ctx, 43)
	require.NoError(t, err)
	got, err = m.AddTask(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(44), got[len(got)-1].ID)
}

func TestManagerInput(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, "")

	m.SetInput("   ")
	got, err := m.SubmitInput(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "   ", m.Input())

	m.SetInput("  write docs ")
	got, err = m.SubmitInput(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"write docs"}, texts(got))
	assert.Equal(t, "", m.Input())

	// Adding directly also clears the pending input.
	m.SetInput("draft")
	_, err = m.AddTask(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "", m.Input())
}

func TestManagerRemoveTask(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t, `[{"id":1,"text":"a"},{"id":2,"text":"b"},{"id":3,"text":"c"}]`)

	got, err := m.RemoveTask(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, texts(got))

	got, err = m.RemoveTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, texts(got))

	got, err = m.RemoveTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, texts(got))

	stored, err := store.Get(ctx, tasklist.DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"text":"a","completed":false},{"id":3,"text":"c","completed":false}]`, string(stored))
}

func TestManagerToggleCompletion(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, `[{"id":1,"text":"a"},{"id":2,"text":"b","completed":true}]`)

	got, err := m.ToggleCompletion(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got[0].Completed)
	assert.True(t, got[1].Completed)

	got, err = m.ToggleCompletion(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got[0].Completed)

	got, err = m.ToggleCompletion(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{ID: 1, Text: "a"}, {ID: 2, Text: "b", Completed: true}}, got)
}

func TestManagerSortTasks(t *testing.T) {
	tests := map[string]struct {
		stored    string
		criterion model.SortCriterion
		expTexts  []string
	}{
		"Alphabetical should use locale aware ordering.": {
			stored:    `[{"id":1,"text":"banana"},{"id":2,"text":"Apple"},{"id":3,"text":"cherry"}]`,
			criterion: model.SortAlphabetical,
			expTexts:  []string{"Apple", "banana", "cherry"},
		},
		"Alphabetical should order accented letters with their base letter.": {
			stored:    `[{"id":1,"text":"zebra"},{"id":2,"text":"éclair"},{"id":3,"text":"apple"}]`,
			criterion: model.SortAlphabetical,
			expTexts:  []string{"apple", "éclair", "zebra"},
		},
		"Completed should place active tasks first keeping relative order.": {
			stored: `[{"id":1,"text":"d1","completed":true},{"id":2,"text":"a1"},` +
				`{"id":3,"text":"d2","completed":true},{"id":4,"text":"a2"},{"id":5,"text":"a3"}]`,
			criterion: model.SortCompleted,
			expTexts:  []string{"a1", "a2", "a3", "d1", "d2"},
		},
		"Unknown criterion should be ignored.": {
			stored:    `[{"id":1,"text":"b"},{"id":2,"text":"a"}]`,
			criterion: "date",
			expTexts:  []string{"b", "a"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m, _ := newManager(t, test.stored)

			got, err := m.SortTasks(ctx, test.criterion)
			require.NoError(t, err)
			assert.Equal(t, test.expTexts, texts(got))

			// Sorting again is idempotent.
			again, err := m.SortTasks(ctx, test.criterion)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestManagerSortIsPersisted(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t, `[{"id":1,"text":"b"},{"id":2,"text":"a"}]`)

	_, err := m.SortTasks(ctx, model.SortAlphabetical)
	require.NoError(t, err)

	fresh, err := tasklist.NewManager(tasklist.ManagerConfig{Store: store})
	require.NoError(t, err)
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, []string{"a", "b"}, texts(fresh.Tasks()))
}

func TestManagerFilter(t *testing.T) {
	stored := `[{"id":1,"text":"a"},{"id":2,"text":"b","completed":true},{"id":3,"text":"c"}]`

	tests := map[string]struct {
		mode     model.FilterMode
		expMode  model.FilterMode
		expTexts []string
	}{
		"All should return everything.": {
			mode: model.FilterAll, expMode: model.FilterAll, expTexts: []string{"a", "b", "c"},
		},
		"Active should return incomplete tasks.": {
			mode: model.FilterActive, expMode: model.FilterActive, expTexts: []string{"a", "c"},
		},
		"Completed should return completed tasks.": {
			mode: model.FilterCompleted, expMode: model.FilterCompleted, expTexts: []string{"b"},
		},
		"Unknown should keep the previous filter.": {
			mode: "archived", expMode: model.FilterAll, expTexts: []string{"a", "b", "c"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, _ := newManager(t, stored)
			before := m.Tasks()

			m.SetFilter(test.mode)
			assert.Equal(t, test.expMode, m.Filter())
			assert.Equal(t, test.expTexts, texts(m.VisibleTasks()))
			assert.Equal(t, before, m.Tasks())
		})
	}
}

func TestManagerCounts(t *testing.T) {
	m, _ := newManager(t, `[{"id":1,"text":"a"},{"id":2,"text":"b","completed":true},{"id":3,"text":"c"}]`)
	assert.Equal(t, model.TaskCounts{Total: 3, Active: 2, Completed: 1}, m.Counts())
}

func TestManagerPersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t, "")

	_, err := m.AddTask(ctx, "one")
	require.NoError(t, err)
	_, err = m.AddTask(ctx, "two")
	require.NoError(t, err)
	_, err = m.ToggleCompletion(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, m.Persist(ctx))

	fresh, err := tasklist.NewManager(tasklist.ManagerConfig{Store: store})
	require.NoError(t, err)
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, m.Tasks(), fresh.Tasks())

	// New ids continue after the loaded ones.
	got, err := fresh.AddTask(ctx, "three")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestManagerPersistEmptyWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t, "")

	require.NoError(t, m.Persist(ctx))
	stored, err := store.Get(ctx, tasklist.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(stored))
}

func TestManagerWriteFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	errWrite := errors.New("read only")

	mStore := &storagemock.MockStore{}
	mStore.On("Get", mock.Anything, "tasks").Once().Return([]byte(`[{"id":1,"text":"a"}]`), nil)
	mStore.On("Set", mock.Anything, "tasks", mock.Anything).Return(errWrite)

	m, err := tasklist.NewManager(tasklist.ManagerConfig{Store: mStore})
	require.NoError(t, err)
	require.NoError(t, m.Load(ctx))
	before := m.Tasks()

	m.SetInput("b")
	got, err := m.SubmitInput(ctx)
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, before, got)
	assert.Equal(t, "b", m.Input())

	_, err = m.ToggleCompletion(ctx, 1)
	assert.ErrorIs(t, err, errWrite)
	_, err = m.RemoveTask(ctx, 1)
	assert.ErrorIs(t, err, errWrite)
	_, err = m.SortTasks(ctx, model.SortAlphabetical)
	assert.ErrorIs(t, err, errWrite)

	assert.Equal(t, before, m.Tasks())
	mStore.AssertExpectations(t)
}

func TestManagerScenario(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, "")

	_, err := m.AddTask(ctx, "a")
	require.NoError(t, err)
	tasks, err := m.AddTask(ctx, "b")
	require.NoError(t, err)

	_, err = m.ToggleCompletion(ctx, tasks[0].ID)
	require.NoError(t, err)

	m.SetFilter(model.FilterCompleted)
	got := m.VisibleTasks()
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Text)
	assert.True(t, got[0].Completed)
}

func TestManagerCustomKey(t *testing.T) {
	ctx := context.Background()
	store, err := memory.NewStore(memory.StoreConfig{})
	require.NoError(t, err)

	m, err := tasklist.NewManager(tasklist.ManagerConfig{Store: store, Key: "work"})
	require.NoError(t, err)
	require.NoError(t, m.Load(ctx))
	_, err = m.AddTask(ctx, "a")
	require.NoError(t, err)

	_, err = store.Get(ctx, "work")
	assert.NoError(t, err)
	_, err = store.Get(ctx, tasklist.DefaultKey)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
