package services

import "sync"

// NavigationController is the single source of truth for which page is
// visible. The only mutation paths are the bounded Next/Previous steps and
// Reset when a new itinerary replaces the old one; there is no jump-to-page.
type NavigationController struct {
	mu      sync.Mutex
	current int
	total   int
}

func NewNavigationController(totalPages int) *NavigationController {
	if totalPages < 1 {
		totalPages = 1
	}
	return &NavigationController{total: totalPages}
}

func (n *NavigationController) Current() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *NavigationController) TotalPages() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.total
}

// Next advances one page. At the last page it is a no-op; rapid repeated
// calls advance exactly one step each. Returns the resulting page index.
func (n *NavigationController) Next() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current < n.total-1 {
		n.current++
	}
	return n.current
}

// Previous steps back one page, clamped at the first page.
func (n *NavigationController) Previous() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current > 0 {
		n.current--
	}
	return n.current
}

// Reset rebinds the controller to a new page count and returns to page 0.
// Called whenever the itinerary is replaced wholesale.
func (n *NavigationController) Reset(totalPages int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if totalPages < 1 {
		totalPages = 1
	}
	n.total = totalPages
	n.current = 0
}
