package leaderboard

import (
	"context"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// DefaultTopLimit bounds the public leaderboard size.
const DefaultTopLimit = 100

// Service encapsulates leaderboard reads and the accumulator write.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Accumulate folds one interview's total score into the candidate's entry.
func (s *Service) Accumulate(ctx context.Context, email, name string, score float64) error {
	return s.repo.Accumulate(ctx, email, name, score)
}

// Top returns up to limit entries ordered by accumulated score descending.
// Order among equal scores is unspecified. limit <= 0 selects the default.
func (s *Service) Top(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	return s.repo.Top(ctx, limit)
}
