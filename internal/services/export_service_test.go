package services

import (
	"strings"
	"testing"
)

func TestExportServiceGenerate(t *testing.T) {
	loader := func(id string) (map[string]any, error) {
		return map[string]any{
			"trip_name":   "Vegas Weekend",
			"destination": "Las Vegas, USA",
			"days": []any{
				map[string]any{"date": "Friday", "activities": []any{
					map[string]any{"time": "12:00 PM", "title": "Check-in", "location": "Bellagio", "distance_to_next": 3.5},
					map[string]any{"time": "3:00 PM", "title": "Fountains"},
				}},
			},
			"notes": []any{"Bring ID"},
		}, nil
	}

	svc := ExportService{Loader: loader}

	pdf, filename, err := svc.GeneratePDF("abc")
	if err != nil {
		t.Fatalf("GeneratePDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GeneratePDF returned empty data")
	}
	if !strings.HasPrefix(filename, "ITINERARY_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestExportServiceDemoWithoutID(t *testing.T) {
	svc := ExportService{Loader: func(string) (map[string]any, error) {
		t.Fatalf("loader should not run for the demo export")
		return nil, nil
	}}

	pdf, _, err := svc.GeneratePDF("")
	if err != nil || len(pdf) == 0 {
		t.Fatalf("demo export failed: err=%v len=%d", err, len(pdf))
	}
}

func TestExportPagesDropEmptyNotes(t *testing.T) {
	it := MapDocument(map[string]any{
		"days": []any{map[string]any{"date": "Friday"}},
	})

	pages := exportPages(it)
	if len(pages) != 2 {
		t.Fatalf("expected cover+day, got %d pages", len(pages))
	}
	last := pages[len(pages)-1]
	if last.Kind != PageDay {
		t.Fatalf("terminal page should be the last day, got %s", last.Kind)
	}
	if last.PageBreak {
		t.Fatalf("terminal page must not carry a page break")
	}

	// with notes present the notes page stays terminal
	it = MapDocument(map[string]any{"notes": []any{"remember sunscreen"}})
	pages = exportPages(it)
	if pages[len(pages)-1].Kind != PageNotes {
		t.Fatalf("notes page should terminate the export")
	}
	if pages[len(pages)-1].PageBreak {
		t.Fatalf("notes page must not carry a page break")
	}
}

func TestExportFilenameCollapsesWhitespace(t *testing.T) {
	if got := safeFilenamePart("Las   Vegas  Weekend"); got != "Las_Vegas_Weekend" {
		t.Fatalf("safeFilenamePart = %q", got)
	}
	if got := safeFilenamePart("   "); got != "NA" {
		t.Fatalf("blank input should fall back, got %q", got)
	}
}
