package services

import (
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/utils"
)

// PageData is the render payload of a single page: the descriptor plus the
// slice of the itinerary that page presents.
type PageData struct {
	Kind      PageKind      `json:"kind"`
	PageBreak bool          `json:"page_break"`
	Cover     *CoverData    `json:"cover,omitempty"`
	Group     *models.Group `json:"group,omitempty"`
	Day       *DayData      `json:"day,omitempty"`
	Notes     []string      `json:"notes,omitempty"`
}

type CoverData struct {
	TripName    string `json:"trip_name"`
	Traveler    string `json:"traveler_name"`
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Dates       string `json:"dates"`
	Image       string `json:"image"`
}

type DayData struct {
	DayNumber  int            `json:"day_number"`
	Date       string         `json:"date"`
	Activities []ActivityData `json:"activities"`
}

// ActivityData mirrors models.Activity with the distance indicator resolved
// for display: both km and mi are present, or neither.
type ActivityData struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	DistanceMi  *float64 `json:"distance_mi,omitempty"`
}

// RenderPage resolves a descriptor against an itinerary into the data the
// page renderer needs.
func RenderPage(it models.Itinerary, desc PageDescriptor) PageData {
	data := PageData{Kind: desc.Kind, PageBreak: desc.PageBreak}

	switch desc.Kind {
	case PageCover:
		data.Cover = &CoverData{
			TripName:    it.TripName,
			Traveler:    it.Traveler,
			Destination: it.Destination,
			Duration:    it.Duration,
			Dates:       it.Dates,
			Image:       it.CoverImage,
		}
	case PageParticipants:
		data.Group = it.Group
	case PageDay:
		day := it.Days[desc.DayIndex]
		dd := DayData{DayNumber: day.DayNumber, Date: day.Date}
		for _, a := range day.Activities {
			ad := ActivityData{
				Time:        a.Time,
				Title:       a.Title,
				Location:    a.Location,
				Description: a.Description,
				Image:       a.Image,
			}
			if a.DistanceToNext != nil {
				km := utils.RoundKm(*a.DistanceToNext)
				mi := utils.KmToMiles(*a.DistanceToNext)
				ad.DistanceKm = &km
				ad.DistanceMi = &mi
			}
			dd.Activities = append(dd.Activities, ad)
		}
		data.Day = &dd
	case PageNotes:
		data.Notes = it.Notes
	}

	return data
}
