package services

import (
	"math"
	"strings"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/utils"
)

// PlaceholderCoverImage is used when a document carries no usable cover.
const PlaceholderCoverImage = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"

// MapDocument converts an arbitrary backend document into a normalized
// Itinerary. It is total: every missing or mistyped field falls back to a
// named default, so the result is always render-safe. Calling it twice with
// the same input yields the same output; nothing is mutated.
func MapDocument(raw map[string]any) models.Itinerary {
	it := models.Itinerary{
		TripName:    docString(raw, "trip_name", "tripName"),
		Traveler:    orDefault(docString(raw, "traveler_name", "travelerName", "traveler"), "Traveler"),
		Destination: orDefault(docString(raw, "destination"), "Destination"),
		City:        docString(raw, "city"),
		Duration:    orDefault(docString(raw, "duration"), "Trip"),
		Dates:       docString(raw, "dates"),
		CoverImage:  orDefault(docString(raw, "cover_image", "coverImage"), PlaceholderCoverImage),
		Days:        []models.Day{},
		Notes:       []string{},
	}

	if strings.EqualFold(docString(raw, "trip_type", "tripType"), "group") {
		it.TripType = "group"
	}

	for _, n := range docSlice(raw, "notes") {
		if s, ok := n.(string); ok {
			if s = utils.NormalizeSpace(s); s != "" {
				it.Notes = append(it.Notes, s)
			}
		}
	}

	it.Group = mapGroup(raw)

	for i, entry := range docSlice(raw, "days") {
		dm, _ := entry.(map[string]any)
		day := models.Day{
			// position in the document wins over any numbering the
			// backend may have written into the day itself
			DayNumber:  i + 1,
			Date:       docString(dm, "date"),
			Activities: []models.Activity{},
		}
		for _, a := range docSlice(dm, "activities") {
			am, _ := a.(map[string]any)
			day.Activities = append(day.Activities, models.Activity{
				Time:           docString(am, "time"),
				Title:          docString(am, "title"),
				Location:       docString(am, "location"),
				Description:    docString(am, "description"),
				Image:          docString(am, "image"),
				DistanceToNext: docFiniteFloat(am, "distance_to_next", "distanceToNext"),
			})
		}
		it.Days = append(it.Days, day)
	}

	return it
}

func mapGroup(raw map[string]any) *models.Group {
	gm, _ := raw["group"].(map[string]any)
	if gm == nil {
		return nil
	}

	participants := []models.Participant{}
	for _, p := range docSlice(gm, "participants") {
		pm, _ := p.(map[string]any)
		if pm == nil {
			continue
		}
		participants = append(participants, models.Participant{
			FirstName: docString(pm, "first_name", "firstName"),
			LastName:  docString(pm, "last_name", "lastName"),
		})
	}
	if len(participants) == 0 {
		return nil
	}

	return &models.Group{
		Participants:       participants,
		CollectPreferences: docBool(gm, "collect_preferences", "collectPreferences"),
	}
}

// docString returns the first present string value among keys, trimmed.
// Mistyped values count as absent.
func docString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = utils.TrimOrEmpty(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func docSlice(m map[string]any, keys ...string) []any {
	for _, k := range keys {
		if v, ok := m[k].([]any); ok {
			return v
		}
	}
	return nil
}

func docBool(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if b, ok := m[k].(bool); ok {
			return b
		}
	}
	return false
}

// docFiniteFloat passes a numeric value through only when it is finite;
// anything else normalizes to nil ("not computed").
func docFiniteFloat(m map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil
			}
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
