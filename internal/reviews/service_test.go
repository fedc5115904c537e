package reviews

import (
	"context"
	"errors"
	"testing"
)

func TestCreate_RatingBounds(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		if _, err := svc.Create(ctx, "A", "Dev", "Great tool", "", rating); !errors.Is(err, ErrValidation) {
			t.Fatalf("rating %d: expected ErrValidation, got %v", rating, err)
		}
	}
	for rating := 1; rating <= 5; rating++ {
		if _, err := svc.Create(ctx, "A", "Dev", "Great tool", "", rating); err != nil {
			t.Fatalf("rating %d: unexpected error: %v", rating, err)
		}
	}
}

func TestCreate_RequiredFieldsAndDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "", "comment", "", 3); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing name: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(ctx, "name", "", "  ", "", 3); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank comment: expected ErrValidation, got %v", err)
	}

	id, err := svc.Create(ctx, "name", "QA", "solid practice rounds", "reach@me", 4)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}
	listed, err := svc.ListApproved(ctx, 0)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(listed) != 1 || !listed[0].Approved {
		t.Fatalf("new review should be approved by default: %+v", listed)
	}
	if listed[0].CreatedAt.IsZero() || listed[0].UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", listed[0])
	}
}

func TestListApproved_NewestFirstAndLimited(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, "R", "", "comment", "", 5); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	listed, err := svc.ListApproved(ctx, 3)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("len = %d, want 3", len(listed))
	}
	if listed[0].ID != "rev_000005" {
		t.Fatalf("expected newest review first, got %s", listed[0].ID)
	}
}
