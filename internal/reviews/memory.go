package reviews

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu    sync.Mutex
	store []*models.Review
	seq   int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, rev *models.Review) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	cp := *rev
	m.seq++
	cp.ID = fmt.Sprintf("rev_%06d", m.seq)
	cp.CreatedAt = now
	cp.UpdatedAt = now
	m.store = append(m.store, &cp)
	return cp.ID, nil
}

func (m *MemoryRepository) ListApproved(ctx context.Context, limit int64) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Review{}
	// newest first: reverse insertion order (timestamps share a clock tick in tests)
	for i := len(m.store) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if m.store[i].Approved {
			out = append(out, *m.store[i])
		}
	}
	return out, nil
}
