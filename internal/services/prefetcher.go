package services

import (
	"io"
	"net/http"
	"time"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
)

// Prefetcher issues best-effort background loads for the images of the
// pages adjacent to the current one. Requests are fire-and-forget: no
// result is tracked, failures are swallowed, redundant requests for the
// same image are tolerated (the downstream cache absorbs them).
type Prefetcher struct {
	Client *http.Client

	// Fetch overrides the image request, mainly for tests.
	Fetch func(url string)
}

// PrefetchAdjacent fires loads for every image the pages immediately before
// and after current would render. It returns as soon as the requests are
// dispatched.
func (p Prefetcher) PrefetchAdjacent(it models.Itinerary, pm PageModel, current int) {
	for _, imageURL := range PrefetchTargets(it, pm, current) {
		u := imageURL
		go p.fetch(u)
	}
}

func (p Prefetcher) fetch(u string) {
	if p.Fetch != nil {
		p.Fetch(u)
		return
	}
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Get(u)
	if err != nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// PrefetchTargets collects the image URLs of the pages adjacent to current:
// the cover image for a cover page, every activity image for a day page,
// nothing for participants or notes pages.
func PrefetchTargets(it models.Itinerary, pm PageModel, current int) []string {
	out := []string{}
	for _, idx := range []int{current - 1, current + 1} {
		if idx < 0 || idx >= pm.TotalPages() {
			continue
		}
		switch desc := pm.PageAt(idx); desc.Kind {
		case PageCover:
			if it.CoverImage != "" {
				out = append(out, it.CoverImage)
			}
		case PageDay:
			for _, a := range it.Days[desc.DayIndex].Activities {
				if a.Image != "" {
					out = append(out, a.Image)
				}
			}
		}
	}
	return out
}
