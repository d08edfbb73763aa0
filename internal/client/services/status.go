package services

import (
	"sync"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
)

// FileStatus pairs a file name with its record, in selection order.
type FileStatus struct {
	Name   string
	Record models.UploadRecord
}

// Snapshot is an immutable, ordered view of the per-file records. Values are
// safe to share between goroutines; every change produces a new Snapshot.
type Snapshot struct {
	names   []string
	records map[string]models.UploadRecord
}

// NewSnapshot creates a Pending record for each file in selection order.
// Files sharing a name collapse into one entry at the first position.
func NewSnapshot(files []models.SelectedFile) Snapshot {
	s := Snapshot{
		names:   make([]string, 0, len(files)),
		records: make(map[string]models.UploadRecord, len(files)),
	}
	for _, f := range files {
		if _, ok := s.records[f.Name]; !ok {
			s.names = append(s.names, f.Name)
		}
		s.records[f.Name] = models.PendingRecord()
	}
	return s
}

// With returns a copy of s where name maps to rec. An unknown name is
// appended at the end.
func (s Snapshot) With(name string, rec models.UploadRecord) Snapshot {
	next := Snapshot{
		names:   make([]string, len(s.names), len(s.names)+1),
		records: make(map[string]models.UploadRecord, len(s.records)+1),
	}
	copy(next.names, s.names)
	for k, v := range s.records {
		next.records[k] = v
	}
	if _, ok := next.records[name]; !ok {
		next.names = append(next.names, name)
	}
	next.records[name] = rec
	return next
}

func (s Snapshot) Get(name string) (models.UploadRecord, bool) {
	rec, ok := s.records[name]
	return rec, ok
}

func (s Snapshot) Len() int {
	return len(s.names)
}

func (s Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s Snapshot) Records() []FileStatus {
	out := make([]FileStatus, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, FileStatus{Name: n, Record: s.records[n]})
	}
	return out
}

// Counts tallies records by status.
func (s Snapshot) Counts() map[models.UploadStatus]int {
	out := make(map[models.UploadStatus]int, 4)
	for _, rec := range s.records {
		out[rec.Status]++
	}
	return out
}

// State is what observers render: the records plus the single batch message.
type State struct {
	Snapshot Snapshot
	Message  string
}

// StatusStore holds the current State and pushes every change to its
// subscribers. Observers run synchronously on the publishing goroutine, in
// publish order, and must not publish from inside the callback.
type StatusStore struct {
	notifyMu sync.Mutex

	mu     sync.RWMutex
	state  State
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(State)
}

func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

func (s *StatusStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Reset drops all records and the message.
func (s *StatusStore) Reset() {
	s.publish(func(State) State { return State{} })
}

// SetMessage replaces the message and keeps the records.
func (s *StatusStore) SetMessage(msg string) {
	s.publish(func(st State) State {
		st.Message = msg
		return st
	})
}

// Subscribe registers fn and returns a function that removes it.
func (s *StatusStore) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			kept := make([]subscriber, 0, len(s.subs))
			for _, sub := range s.subs {
				if sub.id != id {
					kept = append(kept, sub)
				}
			}
			s.subs = kept
		})
	}
}

func (s *StatusStore) setSnapshot(snap Snapshot) {
	s.publish(func(st State) State {
		st.Snapshot = snap
		return st
	})
}

func (s *StatusStore) setState(snap Snapshot, msg string) {
	s.publish(func(State) State { return State{Snapshot: snap, Message: msg} })
}

func (s *StatusStore) publish(change func(State) State) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.state = change(s.state)
	st := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(st)
	}
}
