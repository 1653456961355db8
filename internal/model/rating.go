package model

import "strings"

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Stars renders a rating as filled and hollow stars, e.g. 3 -> "★★★☆☆".
// Out of range ratings are clamped.
func Stars(r int) string {
	if r < 0 {
		r = 0
	}
	if r > MaxRating {
		r = MaxRating
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", MaxRating-r)
}
