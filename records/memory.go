package records

import (
	"context"
	"sync"

	"github.com/linesmerrill/haemo-report-api/models"
)

// MemoryStore keeps patient cases in process memory. The list lives for the
// lifetime of the process only.
type MemoryStore struct {
	mu    sync.RWMutex
	cases []models.PatientCase
	next  int64
}

// NewMemoryStore creates a store holding seed, with the id counter continuing after it
func NewMemoryStore(seed ...models.PatientCase) *MemoryStore {
	m := &MemoryStore{
		cases: make([]models.PatientCase, 0, len(seed)),
	}
	for _, c := range seed {
		m.next++
		if c.Sequence == 0 {
			c.Sequence = m.next
		}
		if c.Sequence > m.next {
			m.next = c.Sequence
		}
		m.cases = append(m.cases, c)
	}
	return m
}

// Append adds c to the end of the list under the next sequential id
func (m *MemoryStore) Append(_ context.Context, c models.PatientCase) (models.PatientCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	c.Sequence = m.next
	c.ID = FormatID(m.next)
	m.cases = append(m.cases, c)
	return c, nil
}

// All returns a copy of every case in insertion order
func (m *MemoryStore) All(_ context.Context) ([]models.PatientCase, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.PatientCase, len(m.cases))
	copy(out, m.cases)
	return out, nil
}
