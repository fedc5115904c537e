package users

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
	byUID map[string]*models.User
	seq   int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUID: make(map[string]*models.User)}
}

func (m *MemoryRepository) UpsertRegistration(ctx context.Context, u *models.User) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := m.byUID[u.UID]; ok {
		existing.Email = u.Email
		existing.Name = u.Name
		existing.Phone = u.Phone
		existing.Role = u.Role
		existing.Status = u.Status
		existing.UpdatedAt = now
		return "", false, nil
	}
	cp := *u
	cp.ID = m.nextID()
	cp.IsVerified = false
	cp.CreatedAt = now
	cp.UpdatedAt = now
	m.byUID[u.UID] = &cp
	return cp.ID, true, nil
}

func (m *MemoryRepository) UpsertProfile(ctx context.Context, u *models.User) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := m.byUID[u.UID]; ok {
		existing.Email = u.Email
		if u.Name != "" {
			existing.Name = u.Name
		}
		if u.PhotoURL != "" {
			existing.PhotoURL = u.PhotoURL
		}
		existing.UpdatedAt = now
		return "", false, nil
	}
	cp := *u
	cp.ID = m.nextID()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	m.byUID[u.UID] = &cp
	return cp.ID, true, nil
}

func (m *MemoryRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byUID[uid]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byUID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) nextID() string {
	m.seq++
	return fmt.Sprintf("user_%06d", m.seq)
}
