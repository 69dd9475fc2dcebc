package storage

import "sync"

// LabelStore is the in-memory label registry. Labels are stored as
// name -> name; keeping a map of strings leaves room for a future
// name/value split without changing the contract.
type LabelStore struct {
	labels map[string]string
	mu     sync.RWMutex
}

func NewLabelStore() *LabelStore {
	return &LabelStore{
		labels: make(map[string]string),
	}
}

// Create inserts a label and reports whether it was added. An existing
// label is left untouched and reported as false.
func (s *LabelStore) Create(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.labels[name]; exists {
		return false
	}
	s.labels[name] = name
	return true
}

// Delete removes each named label if present. Missing names are skipped.
func (s *LabelStore) Delete(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		delete(s.labels, name)
	}
}

// Get returns the label value for name, or the empty string if absent.
func (s *LabelStore) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labels[name]
}

// Len reports the number of stored labels.
func (s *LabelStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.labels)
}
