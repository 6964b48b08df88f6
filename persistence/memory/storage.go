package memory

import (
	"sync"

	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/persistence"
)

var _ persistence.Storage = new(inMemStorage)

// inMemStorage keeps the most recent records, newest first.
type inMemStorage struct {
	mu       sync.RWMutex
	records  []model.InvocationRecord
	capacity int
}

func NewInMemStorage(capacity int) *inMemStorage {
	if capacity <= 0 {
		capacity = 100
	}
	return &inMemStorage{
		capacity: capacity,
	}
}

func (s *inMemStorage) SaveInvocation(record model.InvocationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]model.InvocationRecord{record}, s.records...)
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}
	return nil
}

func (s *inMemStorage) ListInvocations(limit int) ([]model.InvocationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}
	out := make([]model.InvocationRecord, limit)
	copy(out, s.records[:limit])
	return out, nil
}
