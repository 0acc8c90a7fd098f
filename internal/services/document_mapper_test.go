package services

import (
	"math"
	"reflect"
	"testing"
)

func TestMapDocumentEmptyInput(t *testing.T) {
	for _, raw := range []map[string]any{nil, {}} {
		it := MapDocument(raw)

		if it.Traveler != "Traveler" {
			t.Fatalf("traveler default wrong: %q", it.Traveler)
		}
		if it.Destination != "Destination" {
			t.Fatalf("destination default wrong: %q", it.Destination)
		}
		if it.Duration != "Trip" {
			t.Fatalf("duration default wrong: %q", it.Duration)
		}
		if it.Dates != "" {
			t.Fatalf("dates default wrong: %q", it.Dates)
		}
		if it.CoverImage != PlaceholderCoverImage {
			t.Fatalf("cover image default wrong: %q", it.CoverImage)
		}
		if it.Days == nil || len(it.Days) != 0 {
			t.Fatalf("days should be an empty list, got %#v", it.Days)
		}
		if it.Notes == nil || len(it.Notes) != 0 {
			t.Fatalf("notes should be an empty list, got %#v", it.Notes)
		}
		if it.Group != nil {
			t.Fatalf("group should be nil")
		}
		if it.TripType != "" {
			t.Fatalf("trip type should be empty, got %q", it.TripType)
		}
	}
}

func TestMapDocumentDayNumberingIgnoresBackend(t *testing.T) {
	raw := map[string]any{
		"days": []any{
			map[string]any{"day_number": float64(7), "date": "Monday"},
			map[string]any{"day_number": float64(3), "date": "Tuesday"},
			map[string]any{"date": "Wednesday"},
		},
	}

	it := MapDocument(raw)
	if len(it.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(it.Days))
	}
	for i, d := range it.Days {
		if d.DayNumber != i+1 {
			t.Fatalf("day %d numbered %d", i, d.DayNumber)
		}
	}
	if it.Days[1].Date != "Tuesday" {
		t.Fatalf("source ordering not preserved: %q", it.Days[1].Date)
	}
}

func TestMapDocumentDistanceNormalization(t *testing.T) {
	raw := map[string]any{
		"days": []any{
			map[string]any{
				"activities": []any{
					map[string]any{"title": "A", "distance_to_next": 3.5},
					map[string]any{"title": "B", "distance_to_next": "far"},
					map[string]any{"title": "C", "distance_to_next": math.Inf(1)},
					map[string]any{"title": "D"},
				},
			},
		},
	}

	acts := MapDocument(raw).Days[0].Activities
	if acts[0].DistanceToNext == nil || *acts[0].DistanceToNext != 3.5 {
		t.Fatalf("finite distance should pass through, got %#v", acts[0].DistanceToNext)
	}
	for i := 1; i < 4; i++ {
		if acts[i].DistanceToNext != nil {
			t.Fatalf("activity %d distance should be nil, got %v", i, *acts[i].DistanceToNext)
		}
	}
}

func TestMapDocumentGroup(t *testing.T) {
	raw := map[string]any{
		"trip_type": "group",
		"group": map[string]any{
			"collect_preferences": true,
			"participants": []any{
				map[string]any{"first_name": "Ada", "last_name": "Lovelace"},
				map[string]any{"first_name": "Alan"},
			},
		},
	}

	it := MapDocument(raw)
	if it.TripType != "group" {
		t.Fatalf("trip type not mapped: %q", it.TripType)
	}
	if it.Group == nil || len(it.Group.Participants) != 2 {
		t.Fatalf("group not constructed: %#v", it.Group)
	}
	if !it.Group.CollectPreferences {
		t.Fatalf("collect_preferences lost")
	}
	if !it.HasParticipants() {
		t.Fatalf("HasParticipants should be true")
	}

	// empty participant list never constructs a group
	it = MapDocument(map[string]any{"group": map[string]any{"participants": []any{}}})
	if it.Group != nil {
		t.Fatalf("group should be nil for empty participants")
	}
}

func TestMapDocumentIdempotent(t *testing.T) {
	raw := map[string]any{
		"traveler_name": "Sam",
		"destination":   "Paris, France",
		"days": []any{
			map[string]any{"date": "Day one", "activities": []any{
				map[string]any{"title": "Louvre", "distance_to_next": 1.2},
			}},
		},
		"notes": []any{"pack light"},
	}

	first := MapDocument(raw)
	second := MapDocument(raw)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mapping is not idempotent:\n%#v\n%#v", first, second)
	}
}

func TestMapDocumentNormalizesWhitespace(t *testing.T) {
	it := MapDocument(map[string]any{
		"trip_name":     "  Spring   Break  ",
		"traveler_name": "  Sam  ",
		"notes":         []any{"  pack   light  ", "   ", "bring a charger"},
	})

	if it.TripName != "Spring   Break" {
		t.Fatalf("trip name should be trimmed, got %q", it.TripName)
	}
	if it.Traveler != "Sam" {
		t.Fatalf("traveler should be trimmed, got %q", it.Traveler)
	}
	if len(it.Notes) != 2 || it.Notes[0] != "pack light" || it.Notes[1] != "bring a charger" {
		t.Fatalf("notes should collapse whitespace and drop blanks, got %#v", it.Notes)
	}
}
