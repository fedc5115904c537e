package interviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillvue/skillvue-backend/internal/leaderboard"
	"github.com/skillvue/skillvue-backend/internal/models"
)

var (
	// ErrValidation marks missing required fields (HTTP 400).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a room id with no scheduled candidate (HTTP 404).
	ErrNotFound = errors.New("candidate not found")
)

// DefaultTopic fills in when a scheduled candidate has no topic assigned.
const DefaultTopic = "General"

// Service encapsulates interview-room reads, session ingestion and feedback
// submission.
type Service struct {
	repo   Repository
	scores *leaderboard.Service
}

func NewService(r Repository, scores *leaderboard.Service) *Service {
	return &Service{repo: r, scores: scores}
}

// FindCandidateByRoom resolves an interview-room id (the application id) to a
// reduced candidate projection.
func (s *Service) FindCandidateByRoom(ctx context.Context, roomID string) (*models.Candidate, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, fmt.Errorf("%w: roomId is required", ErrValidation)
	}
	c, err := s.repo.FindCandidateByApplicationID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: no candidate for room %s", ErrNotFound, roomID)
	}
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	return c, nil
}

// Record persists an arbitrary interview session payload verbatim and returns
// the generated id. No schema is enforced.
func (s *Service) Record(ctx context.Context, payload map[string]interface{}) (string, error) {
	return s.repo.InsertRaw(ctx, payload)
}

// SubmitFeedback stores a scored result and folds its total into the
// candidate's leaderboard entry. The two writes are separate operations, not
// one transaction: a failure between them leaves the collections inconsistent.
// The leaderboard side is a single atomic upsert, so concurrent submissions
// for one email never lose an increment.
func (s *Service) SubmitFeedback(ctx context.Context, res *models.InterviewResult) (string, error) {
	id, err := s.repo.InsertResult(ctx, res)
	if err != nil {
		return "", err
	}
	if err := s.scores.Accumulate(ctx, res.ApplicantEmail, res.ApplicantName, res.TotalScore); err != nil {
		return "", err
	}
	return id, nil
}
