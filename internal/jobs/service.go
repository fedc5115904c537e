package jobs

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound marks a job id that resolves to nothing (HTTP 404).
var ErrNotFound = errors.New("job not found")

const (
	DefaultPage  = 1
	DefaultLimit = 30
)

// Page is one page of the catalog listing.
type Page struct {
	Jobs       []bson.M `json:"jobs"`
	Total      int64    `json:"total"`
	Page       int64    `json:"page"`
	TotalPages int64    `json:"totalPages"`
}

// Service encapsulates catalog reads
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns one page of postings, newest first. A sector of "" or "all"
// disables filtering. Page and limit are taken as-is; callers own their
// well-formedness.
func (s *Service) List(ctx context.Context, sector string, page, limit int64) (*Page, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if sector == "all" {
		sector = ""
	}
	skip := (page - 1) * limit
	docs, total, err := s.repo.List(ctx, sector, skip, limit)
	if err != nil {
		return nil, err
	}
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return &Page{Jobs: docs, Total: total, Page: page, TotalPages: totalPages}, nil
}

// Get resolves an id against the application-assigned jobId first, falling
// back to the database identifier when the id parses as one.
func (s *Service) Get(ctx context.Context, id string) (bson.M, error) {
	doc, err := s.repo.GetByJobID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		return doc, nil
	}
	if oid, oidErr := primitive.ObjectIDFromHex(id); oidErr == nil {
		doc, err = s.repo.GetByObjectID(ctx, oid)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}
