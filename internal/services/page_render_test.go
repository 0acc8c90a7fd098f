package services

import "testing"

func TestRenderDayDistanceIndicator(t *testing.T) {
	it := MapDocument(map[string]any{
		"days": []any{
			map[string]any{"activities": []any{
				map[string]any{"title": "Museum", "distance_to_next": 3.5},
				map[string]any{"title": "Dinner"},
			}},
		},
	})

	page := RenderPage(it, NewPageModel(it).PageAt(1))
	if page.Kind != PageDay || page.Day == nil {
		t.Fatalf("expected a day page, got %#v", page)
	}

	first := page.Day.Activities[0]
	if first.DistanceKm == nil || first.DistanceMi == nil {
		t.Fatalf("computed distance must expose both units")
	}
	if *first.DistanceKm != 3.5 {
		t.Fatalf("km %v, want 3.5", *first.DistanceKm)
	}
	if *first.DistanceMi != 2.2 {
		t.Fatalf("mi %v, want 2.2", *first.DistanceMi)
	}

	last := page.Day.Activities[1]
	if last.DistanceKm != nil || last.DistanceMi != nil {
		t.Fatalf("missing distance must suppress the indicator")
	}
}

func TestRenderCoverAndNotes(t *testing.T) {
	it := MapDocument(map[string]any{
		"trip_name":   "Spring Break",
		"destination": "Lisbon, Portugal",
		"notes":       []any{"pack light"},
	})
	pm := NewPageModel(it)

	cover := RenderPage(it, pm.PageAt(0))
	if cover.Cover == nil || cover.Cover.TripName != "Spring Break" {
		t.Fatalf("cover payload wrong: %#v", cover.Cover)
	}

	notes := RenderPage(it, pm.PageAt(pm.TotalPages()-1))
	if len(notes.Notes) != 1 || notes.Notes[0] != "pack light" {
		t.Fatalf("notes payload wrong: %#v", notes.Notes)
	}
}
