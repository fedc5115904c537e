package interviews

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu         sync.Mutex
	candidates map[string]*models.Candidate
	raw        []map[string]interface{}
	results    []*models.InterviewResult
	seq        int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{candidates: make(map[string]*models.Candidate)}
}

// AddCandidate seeds a scheduled candidate keyed by application id.
func (m *MemoryRepository) AddCandidate(c *models.Candidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates[c.ApplicationID] = c
}

// Results returns a snapshot of stored interview results.
func (m *MemoryRepository) Results() []*models.InterviewResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.InterviewResult, len(m.results))
	copy(out, m.results)
	return out
}

// RawCount reports how many raw session payloads were persisted.
func (m *MemoryRepository) RawCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.raw)
}

func (m *MemoryRepository) FindCandidateByApplicationID(ctx context.Context, appID string) (*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.candidates[appID]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *MemoryRepository) InsertRaw(ctx context.Context, payload map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = append(m.raw, payload)
	return m.nextID(), nil
}

func (m *MemoryRepository) InsertResult(ctx context.Context, ir *models.InterviewResult) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ir.CreatedAt.IsZero() {
		ir.CreatedAt = time.Now().UTC()
	}
	cp := *ir
	cp.ID = m.nextID()
	m.results = append(m.results, &cp)
	return cp.ID, nil
}

func (m *MemoryRepository) nextID() string {
	m.seq++
	return fmt.Sprintf("iv_%06d", m.seq)
}
