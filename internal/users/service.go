package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillvue/skillvue-backend/internal/models"
)

var (
	// ErrValidation marks missing or malformed required fields (HTTP 400).
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a uniqueness violation on email (HTTP 409).
	ErrConflict = errors.New("email already registered")
)

// Service encapsulates user-related business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// RegisterResult reports the outcome of a registration upsert.
type RegisterResult struct {
	UpsertedID string
	Created    bool
}

// Register upserts an account keyed by the identity provider uid. Candidates
// become active immediately; hr/company accounts stay inactive pending
// verification. The creation timestamp is written once and never changes.
func (s *Service) Register(ctx context.Context, uid, email, role, name, phone string) (*RegisterResult, error) {
	uid = strings.TrimSpace(uid)
	email = strings.TrimSpace(email)
	role = strings.ToLower(strings.TrimSpace(role))
	if uid == "" || email == "" || role == "" {
		return nil, fmt.Errorf("%w: uid, email and role are required", ErrValidation)
	}
	switch role {
	case models.RoleCandidate, models.RoleHR, models.RoleCompany:
	default:
		return nil, fmt.Errorf("%w: role must be one of company, hr, candidate", ErrValidation)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.UID != uid {
		return nil, fmt.Errorf("%w: %s belongs to another account", ErrConflict, email)
	}

	u := &models.User{
		UID:    uid,
		Email:  email,
		Name:   name,
		Phone:  phone,
		Role:   role,
		Status: models.StatusForRole(role),
	}
	id, created, err := s.repo.UpsertRegistration(ctx, u)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UpsertedID: id, Created: created}, nil
}

// SyncProfile upserts identity-provider profile fields keyed by uid. It is
// idempotent: repeating the same call changes nothing but updatedAt.
func (s *Service) SyncProfile(ctx context.Context, uid, email, name, photoURL string) (*RegisterResult, error) {
	uid = strings.TrimSpace(uid)
	email = strings.TrimSpace(email)
	if uid == "" || email == "" {
		return nil, fmt.Errorf("%w: uid and email are required", ErrValidation)
	}
	u := &models.User{UID: uid, Email: email, Name: name, PhotoURL: photoURL}
	id, created, err := s.repo.UpsertProfile(ctx, u)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UpsertedID: id, Created: created}, nil
}

// UpsertFromClaims syncs a profile using OIDC claims. Returns the stored user,
// or nil when the claims carry no subject.
func (s *Service) UpsertFromClaims(ctx context.Context, claims map[string]interface{}) (*models.User, error) {
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	photo, _ := claims["picture"].(string)
	if sub == "" || email == "" {
		return nil, nil
	}
	if _, _, err := s.repo.UpsertProfile(ctx, &models.User{UID: sub, Email: email, Name: name, PhotoURL: photo}); err != nil {
		return nil, err
	}
	return s.repo.GetByUID(ctx, sub)
}

func (s *Service) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return s.repo.GetByUID(ctx, uid)
}
