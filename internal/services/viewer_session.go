package services

import (
	"sync"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
)

// ViewerSession is the state container for one viewer: the current
// itinerary, its page model, the navigation controller, and the readiness
// latch. Consumers read through it; all mutation goes through ApplyResult,
// MarkHydrated, Next and Previous.
type ViewerSession struct {
	mu         sync.Mutex
	itinerary  models.Itinerary
	model      PageModel
	title      string
	loaded     bool
	nav        *NavigationController
	latch      *ReadyLatch
	prefetcher Prefetcher
}

func NewViewerSession() *ViewerSession {
	return &ViewerSession{
		nav:   NewNavigationController(1),
		latch: NewReadyLatch(),
	}
}

// SetPrefetcher installs the prefetcher used after navigation and load.
func (s *ViewerSession) SetPrefetcher(p Prefetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefetcher = p
}

// ApplyResult folds a load outcome into the session. The latch always
// records resolution; only a ready result replaces the itinerary. The
// replacement is wholesale and resets navigation to page 0.
func (s *ViewerSession) ApplyResult(res LoadResult) {
	s.mu.Lock()
	s.latch.MarkResolved()
	if res.State != LoadReady {
		s.loaded = false
		s.latch.MarkData(false)
		s.mu.Unlock()
		return
	}

	s.itinerary = res.Itinerary
	s.model = NewPageModel(res.Itinerary)
	s.title = res.Title
	s.loaded = true
	s.nav.Reset(s.model.TotalPages())
	s.latch.MarkData(true)

	it, pm, current, pf := s.itinerary, s.model, s.nav.Current(), s.prefetcher
	s.mu.Unlock()

	pf.PrefetchAdjacent(it, pm, current)
}

// MarkHydrated reports that the presentation layer finished mounting.
func (s *ViewerSession) MarkHydrated() {
	s.latch.MarkHydrated()
}

// Ready reports whether the loading overlay may be dismissed.
func (s *ViewerSession) Ready() bool {
	return s.latch.Ready()
}

// Next steps forward one page and prefetches around the new position.
// Navigation is never blocked by load state.
func (s *ViewerSession) Next() int {
	current := s.nav.Next()
	s.prefetchAround(current)
	return current
}

// Previous steps back one page and prefetches around the new position.
func (s *ViewerSession) Previous() int {
	current := s.nav.Previous()
	s.prefetchAround(current)
	return current
}

func (s *ViewerSession) prefetchAround(current int) {
	s.mu.Lock()
	it, pm, loaded, pf := s.itinerary, s.model, s.loaded, s.prefetcher
	s.mu.Unlock()
	if loaded {
		pf.PrefetchAdjacent(it, pm, current)
	}
}

func (s *ViewerSession) CurrentPage() int {
	return s.nav.Current()
}

func (s *ViewerSession) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *ViewerSession) Itinerary() models.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary
}

func (s *ViewerSession) Model() PageModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// CurrentPageData renders the page the session currently points at.
func (s *ViewerSession) CurrentPageData() PageData {
	s.mu.Lock()
	it, pm := s.itinerary, s.model
	s.mu.Unlock()
	return RenderPage(it, pm.PageAt(s.nav.Current()))
}
