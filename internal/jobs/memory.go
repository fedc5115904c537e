package jobs

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used by unit tests. Documents
// are returned newest-first by their "postedDate" field, mirroring the Mongo
// sort.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs []bson.M
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Add seeds a job document. A missing _id gets a fresh ObjectID.
func (m *MemoryRepository) Add(doc bson.M) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, doc)
}

func (m *MemoryRepository) List(ctx context.Context, sector string, skip, limit int64) ([]bson.M, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matched := []bson.M{}
	for _, d := range m.docs {
		if sector != "" {
			if s, _ := d["sector"].(string); s != sector {
				continue
			}
		}
		matched = append(matched, d)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return postedDate(matched[i]).After(postedDate(matched[j]))
	})
	total := int64(len(matched))
	if skip >= total {
		return []bson.M{}, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return matched[skip:end], total, nil
}

func (m *MemoryRepository) GetByJobID(ctx context.Context, id string) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		if v, _ := d["jobId"].(string); v == id {
			return d, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) GetByObjectID(ctx context.Context, oid primitive.ObjectID) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		if v, ok := d["_id"].(primitive.ObjectID); ok && v == oid {
			return d, nil
		}
	}
	return nil, nil
}

func postedDate(d bson.M) time.Time {
	if t, ok := d["postedDate"].(time.Time); ok {
		return t
	}
	return time.Time{}
}
