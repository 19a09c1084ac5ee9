// pkg/applyflow/store.go
package applyflow

import (
	"sync"

	"grant-portal/internal/models"
)

// RecordStore holds the applicant's locally persisted submission records.
// Callers read the whole list and write it back; the read-modify-write is
// not transactional, so two concurrent flows can lose an update. That
// mirrors the storage this replaces and is acceptable for a per-user cache.
type RecordStore interface {
	List() ([]models.DisplayRecord, error)
	Save(records []models.DisplayRecord) error
}

// MemoryStore is the in-process RecordStore.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.DisplayRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List() ([]models.DisplayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DisplayRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Save(records []models.DisplayRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]models.DisplayRecord, len(records))
	copy(s.records, records)
	return nil
}
