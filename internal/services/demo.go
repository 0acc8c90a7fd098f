package services

// DemoDocument returns the built-in sample itinerary used when no itinerary
// id is supplied. It mirrors the backend's sample document and goes through
// the same mapping path as a fetched one.
func DemoDocument() map[string]any {
	return map[string]any{
		"traveler_name": "Sheriff",
		"destination":   "Las Vegas",
		"dates":         "March 15-17, 2025",
		"duration":      "Three Day Weekend",
		"cover_image":   "https://images.unsplash.com/photo-1683645012230-e3a3c1255434?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
		"days": []any{
			map[string]any{
				"date": "Friday, March 15",
				"activities": []any{
					map[string]any{
						"time":        "12:00 PM",
						"title":       "Arrival & Check-in",
						"location":    "Bellagio Hotel & Casino",
						"description": "Check into the Bellagio suite and enjoy fountain views.",
						"image":       "https://images.unsplash.com/photo-1683645012230-e3a3c1255434?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					},
				},
			},
			map[string]any{
				"date": "Saturday, March 16",
				"activities": []any{
					map[string]any{
						"time":        "10:00 AM",
						"title":       "Brunch at Bacchanal",
						"location":    "Caesars Palace",
						"description": "Legendary buffet experience.",
						"image":       "https://images.unsplash.com/photo-1755862922067-8a0135afc1bb?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					},
				},
			},
		},
		"notes": []any{
			"Bring ID - required everywhere in Vegas",
			"Set gambling budget beforehand",
			"Stay hydrated - desert climate",
		},
	}
}
