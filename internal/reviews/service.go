package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// ErrValidation marks missing fields or an out-of-range rating (HTTP 400).
var ErrValidation = errors.New("validation failed")

// DefaultListLimit bounds the public testimonial listing.
const DefaultListLimit = 50

// Service encapsulates testimonial writes and the public listing.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create stores a testimonial. Ratings are bounded to [1,5] and new reviews
// are approved by default; moderation flips the flag out of band.
func (s *Service) Create(ctx context.Context, name, profession, comment, contact string, rating int) (string, error) {
	name = strings.TrimSpace(name)
	comment = strings.TrimSpace(comment)
	if name == "" || comment == "" {
		return "", fmt.Errorf("%w: name and comment are required", ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return "", fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	rev := &models.Review{
		Name:       name,
		Profession: profession,
		Comment:    comment,
		Contact:    contact,
		Rating:     rating,
		Approved:   true,
	}
	return s.repo.Insert(ctx, rev)
}

// ListApproved returns approved testimonials, newest first.
func (s *Service) ListApproved(ctx context.Context, limit int64) ([]models.Review, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListApproved(ctx, limit)
}
