package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// MemoryRepository is an in-memory Repository used by unit tests. The mutex
// gives the same per-entry atomicity the Mongo upsert provides.
type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string]*models.LeaderboardEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]*models.LeaderboardEntry)}
}

func (m *MemoryRepository) Accumulate(ctx context.Context, email, name string, score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[email]
	if !ok {
		e = &models.LeaderboardEntry{Email: email}
		m.entries[email] = e
	}
	e.TotalScore += score
	e.InterviewsCount++
	e.Name = name
	e.LastUpdated = time.Now().UTC()
	return nil
}

func (m *MemoryRepository) Top(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.LeaderboardEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalScore > out[j].TotalScore })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}
