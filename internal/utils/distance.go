package utils

import "math"

const kmPerMile = 1.609344

// KmToMiles converts kilometers to miles rounded to one decimal place,
// which is the precision itinerary pages display.
func KmToMiles(km float64) float64 {
	return math.Round(km/kmPerMile*10) / 10
}

// RoundKm rounds a kilometer value to one decimal place for display.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
