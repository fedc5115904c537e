package leaderboard

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestAccumulate_SumsScoresAndCounts(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Accumulate(ctx, "a@example.com", "Ada", 20); err != nil {
		t.Fatalf("first accumulate: %v", err)
	}
	if err := svc.Accumulate(ctx, "a@example.com", "Ada", 15); err != nil {
		t.Fatalf("second accumulate: %v", err)
	}

	top, err := svc.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected single entry, got %d", len(top))
	}
	if top[0].TotalScore != 35 {
		t.Fatalf("totalScoreAccumulated = %v, want 35", top[0].TotalScore)
	}
	if top[0].InterviewsCount != 2 {
		t.Fatalf("interviewsCount = %d, want 2", top[0].InterviewsCount)
	}
}

func TestAccumulate_ConcurrentSubmissionsDoNotLoseUpdates(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = svc.Accumulate(ctx, "race@example.com", "Racer", 2)
		}()
	}
	wg.Wait()

	top, err := svc.Top(ctx, 1)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if top[0].TotalScore != 2*n {
		t.Fatalf("totalScoreAccumulated = %v, want %d", top[0].TotalScore, 2*n)
	}
	if top[0].InterviewsCount != n {
		t.Fatalf("interviewsCount = %d, want %d", top[0].InterviewsCount, n)
	}
}

func TestTop_OrderedDescendingAndTruncated(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 120; i++ {
		email := fmt.Sprintf("u%03d@example.com", i)
		if err := svc.Accumulate(ctx, email, "U", float64(i)); err != nil {
			t.Fatalf("accumulate: %v", err)
		}
	}

	top, err := svc.Top(ctx, 0) // default limit
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != DefaultTopLimit {
		t.Fatalf("len = %d, want %d", len(top), DefaultTopLimit)
	}
	for i := 1; i < len(top); i++ {
		if top[i].TotalScore > top[i-1].TotalScore {
			t.Fatalf("not sorted descending at index %d: %v > %v", i, top[i].TotalScore, top[i-1].TotalScore)
		}
	}
	if top[0].TotalScore != 119 {
		t.Fatalf("top score = %v, want 119", top[0].TotalScore)
	}
}
