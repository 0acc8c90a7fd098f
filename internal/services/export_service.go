package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/repositories"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportService renders the full page sequence of an itinerary into one
// PDF, in the same order single-page navigation walks it.
type ExportService struct {
	Repo      repositories.ItineraryRepository
	RequestID string
	Loader    func(id string) (map[string]any, error)
}

// GeneratePDF loads the document for id, maps it, and renders every page.
// An empty id exports the demo itinerary.
func (s ExportService) GeneratePDF(id string) ([]byte, string, error) {
	doc, err := s.loadDocument(id)
	if err != nil {
		return nil, "", err
	}
	it := MapDocument(doc)
	utils.LogEvent(s.RequestID, "export", "generate_pdf", fmt.Sprintf("id=%s pages=%d", id, NewPageModel(it).TotalPages()))
	return buildItineraryPDF(it)
}

func (s ExportService) loadDocument(id string) (map[string]any, error) {
	if strings.TrimSpace(id) == "" {
		return DemoDocument(), nil
	}
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Repo.GetByID(id)
}

func buildItineraryPDF(it models.Itinerary) ([]byte, string, error) {
	title := DeriveTitle(it)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)

	for _, desc := range exportPages(it) {
		pdf.AddPage()
		renderPageToPDF(pdf, RenderPage(it, desc))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s.pdf", safeFilenamePart(title))
	return buf.Bytes(), filename, nil
}

// exportPages is the batch page list: the navigation order, except an empty
// notes page is dropped and the terminal page carries no page break.
func exportPages(it models.Itinerary) []PageDescriptor {
	pages := NewPageModel(it).Pages()
	if len(it.Notes) == 0 && len(pages) > 1 {
		pages = pages[:len(pages)-1]
	}
	if len(pages) > 0 {
		pages[len(pages)-1].PageBreak = false
	}
	return pages
}

func renderPageToPDF(pdf *gofpdf.Fpdf, page PageData) {
	switch page.Kind {
	case PageCover:
		c := page.Cover
		pdf.SetFont("Helvetica", "B", 24)
		pdf.MultiCell(0, 12, pick(c.TripName, c.Destination), "", "", false)
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 13)
		for _, line := range []string{
			fmt.Sprintf("Traveler    : %s", c.Traveler),
			fmt.Sprintf("Destination : %s", c.Destination),
			fmt.Sprintf("Duration    : %s", c.Duration),
			fmt.Sprintf("Dates       : %s", pick(c.Dates, "-")),
		} {
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}

	case PageParticipants:
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Cell(0, 10, "Who's Coming")
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 12)
		for _, p := range page.Group.Participants {
			pdf.Cell(0, 7, strings.TrimSpace(p.FirstName+" "+p.LastName))
			pdf.Ln(7)
		}
		if page.Group.CollectPreferences {
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 6, "Travel preferences are being collected from the group.", "", "", false)
		}

	case PageDay:
		d := page.Day
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Cell(0, 10, fmt.Sprintf("Day %d", d.DayNumber))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 12)
		pdf.Cell(0, 7, pick(d.Date, "-"))
		pdf.Ln(10)
		for _, a := range d.Activities {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 7, fmt.Sprintf("%s  %s", pick(a.Time, "--:--"), a.Title))
			pdf.Ln(7)
			pdf.SetFont("Helvetica", "", 11)
			if a.Location != "" {
				pdf.Cell(0, 6, a.Location)
				pdf.Ln(6)
			}
			if a.Description != "" {
				pdf.MultiCell(0, 6, a.Description, "", "", false)
			}
			if a.DistanceKm != nil && a.DistanceMi != nil {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.Cell(0, 6, fmt.Sprintf("%.1f km (%.1f mi) to next stop", *a.DistanceKm, *a.DistanceMi))
				pdf.Ln(6)
			}
			pdf.Ln(3)
		}

	case PageNotes:
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Cell(0, 10, "Notes")
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 12)
		for _, n := range page.Notes {
			pdf.MultiCell(0, 6, "- "+n, "", "", false)
			pdf.Ln(1)
		}
	}
}

func pick(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = utils.NormalizeSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
