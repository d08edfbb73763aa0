package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
)

func mem(name string) models.SelectedFile {
	return models.NewMemoryFile(name, "image/png", []byte(name))
}

func TestNewSnapshot_OrderAndPending(t *testing.T) {
	snap := NewSnapshot([]models.SelectedFile{mem("a.png"), mem("b.png"), mem("c.png")})

	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, snap.Names())
	assert.Equal(t, 3, snap.Len())
	for _, fs := range snap.Records() {
		assert.Equal(t, models.PendingRecord(), fs.Record)
	}
}

func TestNewSnapshot_DuplicateNamesCollapse(t *testing.T) {
	snap := NewSnapshot([]models.SelectedFile{mem("a.png"), mem("b.png"), mem("a.png")})

	assert.Equal(t, []string{"a.png", "b.png"}, snap.Names())
	assert.Equal(t, 2, snap.Len())
}

func TestSnapshot_WithDoesNotMutateReceiver(t *testing.T) {
	base := NewSnapshot([]models.SelectedFile{mem("a.png")})
	next := base.With("a.png", models.SucceededRecord("id-1"))

	got, ok := base.Get("a.png")
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, got.Status)

	got, ok = next.Get("a.png")
	require.True(t, ok)
	assert.Equal(t, models.SucceededRecord("id-1"), got)

	extra := next.With("z.png", models.InProgressRecord())
	assert.Equal(t, []string{"a.png", "z.png"}, extra.Names())
	assert.Equal(t, 1, next.Len())
}

func TestSnapshot_NamesIsACopy(t *testing.T) {
	snap := NewSnapshot([]models.SelectedFile{mem("a.png")})
	names := snap.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a.png"}, snap.Names())
}

func TestSnapshot_Counts(t *testing.T) {
	snap := NewSnapshot([]models.SelectedFile{mem("a"), mem("b"), mem("c"), mem("d")}).
		With("a", models.SucceededRecord("1")).
		With("b", models.FailedRecord("x")).
		With("c", models.InProgressRecord())

	c := snap.Counts()
	assert.Equal(t, 1, c[models.StatusSucceeded])
	assert.Equal(t, 1, c[models.StatusFailed])
	assert.Equal(t, 1, c[models.StatusInProgress])
	assert.Equal(t, 1, c[models.StatusPending])
}

func TestSnapshot_ZeroValueIsUsable(t *testing.T) {
	var snap Snapshot
	assert.Equal(t, 0, snap.Len())
	_, ok := snap.Get("x")
	assert.False(t, ok)
	assert.Empty(t, snap.Records())

	next := snap.With("x", models.PendingRecord())
	assert.Equal(t, 1, next.Len())
}

func TestStatusStore_SubscribeReceivesInOrder(t *testing.T) {
	store := NewStatusStore()

	var got []string
	unsubscribe := store.Subscribe(func(st State) { got = append(got, st.Message) })

	store.SetMessage("one")
	store.setState(NewSnapshot([]models.SelectedFile{mem("a")}), "two")
	store.setSnapshot(NewSnapshot(nil))
	unsubscribe()
	store.SetMessage("ignored")

	assert.Equal(t, []string{"one", "two", "two"}, got)
	assert.Equal(t, "ignored", store.State().Message)
}

func TestStatusStore_SetMessageKeepsRecords(t *testing.T) {
	store := NewStatusStore()
	store.setState(NewSnapshot([]models.SelectedFile{mem("a")}), "start")

	store.SetMessage("hello")

	st := store.State()
	assert.Equal(t, "hello", st.Message)
	assert.Equal(t, 1, st.Snapshot.Len())
}

func TestStatusStore_ResetClearsEverything(t *testing.T) {
	store := NewStatusStore()
	store.setState(NewSnapshot([]models.SelectedFile{mem("a")}), "start")

	var last State
	store.Subscribe(func(st State) { last = st })
	store.Reset()

	assert.Equal(t, 0, store.State().Snapshot.Len())
	assert.Empty(t, store.State().Message)
	assert.Equal(t, 0, last.Snapshot.Len())
}

func TestStatusStore_UnsubscribeTwiceIsSafe(t *testing.T) {
	store := NewStatusStore()
	calls := 0
	a := store.Subscribe(func(State) { calls++ })
	store.Subscribe(func(State) { calls += 10 })

	a()
	a()
	store.SetMessage("x")
	assert.Equal(t, 10, calls)
}

func TestStatusStore_ConcurrentReaders(t *testing.T) {
	store := NewStatusStore()
	files := []models.SelectedFile{mem("a"), mem("b")}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					st := store.State()
					_ = st.Snapshot.Records()
				}
			}
		}()
	}

	snap := NewSnapshot(files)
	for i := 0; i < 200; i++ {
		snap = snap.With("a", models.InProgressRecord())
		store.setState(snap, "tick")
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, 2, store.State().Snapshot.Len())
}
