package userdata

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"sync"
)

// ErrEmptyUser is returned when no user id is given
var ErrEmptyUser = errors.New("empty user id")

// Store keeps every user record in memory. Nothing survives a restart.
type Store struct {
	id      string
	mu      sync.RWMutex
	records map[string]*Record
}

// New returns an empty store with a random id
func New() *Store {
	return &Store{
		id:      uuid.NewString(),
		records: make(map[string]*Record),
	}
}

// Id tells stores apart, it changes on every New
func (s *Store) Id() string {
	return s.id
}

// ReplaceNotes swaps the whole note list of a user, creating the record if needed
func (s *Store) ReplaceNotes(ctx context.Context, user string, notes []Note) (uint64, error) {
	if err := check(ctx, user); err != nil {
		return 0, err
	}

	cp := make([]Note, len(notes))
	copy(cp, notes)

	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.record(user)
	r.Notes = cp
	r.Version++
	return r.Version, nil
}

// ReplaceTasks swaps the whole task list of a user, creating the record if needed
func (s *Store) ReplaceTasks(ctx context.Context, user string, tasks []Task) (uint64, error) {
	if err := check(ctx, user); err != nil {
		return 0, err
	}

	cp := make([]Task, len(tasks))
	copy(cp, tasks)

	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.record(user)
	r.Tasks = cp
	r.Version++
	return r.Version, nil
}

// Find returns a copy of the user record, false when the user never backed anything up
func (s *Store) Find(ctx context.Context, user string) (Record, bool, error) {
	if err := check(ctx, user); err != nil {
		return Record{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[user]
	if !ok {
		return Record{}, false, nil
	}

	found := Record{
		Notes:   make([]Note, len(r.Notes)),
		Tasks:   make([]Task, len(r.Tasks)),
		StoreId: s.id,
		Version: r.Version,
	}
	copy(found.Notes, r.Notes)
	copy(found.Tasks, r.Tasks)
	return found, true, nil
}

// record must be called holding the write lock
func (s *Store) record(user string) *Record {
	r, ok := s.records[user]
	if !ok {
		r = &Record{}
		s.records[user] = r
	}
	return r
}

func check(ctx context.Context, user string) error {
	if user == "" {
		return ErrEmptyUser
	}
	return ctx.Err()
}
