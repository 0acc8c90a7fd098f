package services

import (
	"context"
	"testing"
)

func readySession(t *testing.T) *ViewerSession {
	t.Helper()
	s := NewViewerSession()
	s.latch.settle = 0
	s.SetPrefetcher(Prefetcher{Fetch: func(string) {}})

	res := LoadController{}.Load(context.Background(), "", AccessRequest{})
	if res.State != LoadReady {
		t.Fatalf("demo load failed: %v", res.Err)
	}
	s.ApplyResult(res)
	return s
}

func TestSessionAppliesReadyResult(t *testing.T) {
	s := readySession(t)

	// demo: cover + 2 days + notes
	if s.Model().TotalPages() != 4 {
		t.Fatalf("total pages %d", s.Model().TotalPages())
	}
	if s.CurrentPage() != 0 {
		t.Fatalf("navigation should start at 0, got %d", s.CurrentPage())
	}
	if s.Title() != "Las Vegas" {
		t.Fatalf("title %q", s.Title())
	}

	if s.Ready() {
		t.Fatalf("session ready before hydration")
	}
	s.MarkHydrated()
	if !s.Ready() {
		t.Fatalf("session should be ready after hydration")
	}
}

func TestSessionFailureKeepsLoadingIncomplete(t *testing.T) {
	s := NewViewerSession()
	s.latch.settle = 0
	s.MarkHydrated()

	s.ApplyResult(LoadResult{State: LoadFailed})
	if s.Ready() {
		t.Fatalf("failed load must not report ready")
	}
}

func TestSessionNavigationAndReplacement(t *testing.T) {
	s := readySession(t)

	s.Next()
	s.Next()
	if s.CurrentPage() != 2 {
		t.Fatalf("expected page 2, got %d", s.CurrentPage())
	}
	if s.CurrentPageData().Kind != PageDay {
		t.Fatalf("page 2 of demo should be a day page")
	}

	// wholesale replacement resets navigation to 0
	it := MapDocument(map[string]any{"destination": "Kyoto, Japan"})
	s.ApplyResult(LoadResult{State: LoadReady, Itinerary: it, Title: DeriveTitle(it)})
	if s.CurrentPage() != 0 {
		t.Fatalf("replacement should reset to page 0, got %d", s.CurrentPage())
	}
	if s.Title() != "Kyoto" {
		t.Fatalf("title not replaced: %q", s.Title())
	}
	if s.Model().TotalPages() != 2 {
		t.Fatalf("page model not replaced: %d pages", s.Model().TotalPages())
	}
}
