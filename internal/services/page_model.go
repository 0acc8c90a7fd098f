package services

import (
	"fmt"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
)

// PageKind identifies what a logical page of the itinerary renders.
type PageKind string

const (
	PageCover        PageKind = "cover"
	PageParticipants PageKind = "participants"
	PageDay          PageKind = "day"
	PageNotes        PageKind = "notes"
)

// PageDescriptor locates one page of the rendered sequence. DayIndex is the
// 0-based offset into Itinerary.Days and is meaningful only for PageDay.
// PageBreak reports whether a separator follows the page in batch output;
// the terminal page of the sequence never carries one.
type PageDescriptor struct {
	Kind      PageKind `json:"kind"`
	DayIndex  int      `json:"day_index,omitempty"`
	PageBreak bool     `json:"page_break"`
}

// PageModel derives the ordered page sequence of an itinerary:
// cover, optional participants, one page per day, notes.
type PageModel struct {
	HasParticipants bool
	DayCount        int
}

func NewPageModel(it models.Itinerary) PageModel {
	return PageModel{
		HasParticipants: it.HasParticipants(),
		DayCount:        len(it.Days),
	}
}

// TotalPages is 1 (cover) + optional participants + days + 1 (notes).
// The minimum is therefore 2 even for an empty itinerary.
func (m PageModel) TotalPages() int {
	total := 2 + m.DayCount
	if m.HasParticipants {
		total++
	}
	return total
}

// PageAt maps a page index in [0, TotalPages()) to its descriptor. Indices
// outside that range are a caller contract violation and panic.
func (m PageModel) PageAt(index int) PageDescriptor {
	total := m.TotalPages()
	if index < 0 || index >= total {
		panic(fmt.Sprintf("page index %d out of range [0,%d)", index, total))
	}

	desc := PageDescriptor{PageBreak: index < total-1}
	switch {
	case index == 0:
		desc.Kind = PageCover
	case index == 1 && m.HasParticipants:
		desc.Kind = PageParticipants
	case index == total-1:
		desc.Kind = PageNotes
	default:
		desc.Kind = PageDay
		desc.DayIndex = index - 1
		if m.HasParticipants {
			desc.DayIndex = index - 2
		}
	}
	return desc
}

// Pages returns the full ordered descriptor list for batch rendering
// (print/PDF export), in the same order single-page navigation walks.
func (m PageModel) Pages() []PageDescriptor {
	out := make([]PageDescriptor, 0, m.TotalPages())
	for i := 0; i < m.TotalPages(); i++ {
		out = append(out, m.PageAt(i))
	}
	return out
}
