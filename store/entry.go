package store

import (
	"database/sql"
	"sync"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
)

const entriesKey = "form-entries"

// EntryStore owns the persisted collection of form entries. Entries are
// immutable after Add except for deletion.
type EntryStore struct {
	mu      sync.Mutex
	slot    slot
	entries []model.FormEntry
}

// OpenEntries loads the persisted entry collection from the database.
func OpenEntries(db *sql.DB) (*EntryStore, error) {
	s := &EntryStore{slot: slot{db, entriesKey}}
	if err := s.slot.load(&s.entries); err != nil {
		return nil, err
	}
	return s, nil
}

// Add prepends an entry, newest first.
func (s *EntryStore) Add(entry model.FormEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]model.FormEntry{entry}, s.entries...)
	return s.slot.save(s.entries)
}

// Delete removes the matching entry.
func (s *EntryStore) Delete(id string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true, s.slot.save(s.entries)
		}
	}
	return false, nil
}

// Get returns the entry with the given id.
func (s *EntryStore) Get(id string) (model.FormEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return model.FormEntry{}, false
}

// All returns every entry, newest first.
func (s *EntryStore) All() []model.FormEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.FormEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByCategory returns the entries referencing one schema id, newest first.
func (s *EntryStore) ByCategory(categoryID string) []model.FormEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.FormEntry
	for _, entry := range s.entries {
		if entry.CategoryID == categoryID {
			out = append(out, entry)
		}
	}
	return out
}
