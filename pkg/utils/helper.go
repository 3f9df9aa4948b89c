package utils

import "math"

// RoundRating rounds an average rating to one decimal place
func RoundRating(value float64) float64 {
	return math.Round(value*10) / 10
}
