package services

import (
	"sync"
	"testing"
)

func TestNavigationBounds(t *testing.T) {
	nav := NewNavigationController(5)

	if nav.Previous() != 0 {
		t.Fatalf("previous at lower bound should stay at 0")
	}

	for i := 1; i <= 4; i++ {
		if got := nav.Next(); got != i {
			t.Fatalf("next call %d landed on %d", i, got)
		}
	}
	if nav.Next() != 4 {
		t.Fatalf("next at upper bound should clamp at 4")
	}
	if nav.Current() != 4 {
		t.Fatalf("current drifted to %d", nav.Current())
	}
}

func TestNavigationSingleStepPerCall(t *testing.T) {
	nav := NewNavigationController(100)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nav.Next()
		}()
	}
	wg.Wait()

	if nav.Current() != 30 {
		t.Fatalf("30 concurrent next calls landed on %d", nav.Current())
	}
}

func TestNavigationReset(t *testing.T) {
	nav := NewNavigationController(5)
	nav.Next()
	nav.Next()

	nav.Reset(3)
	if nav.Current() != 0 {
		t.Fatalf("reset should return to page 0, got %d", nav.Current())
	}
	nav.Next()
	nav.Next()
	if nav.Next() != 2 {
		t.Fatalf("new bound not applied")
	}
}
