package provider

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// genreNames maps numeric genre codes to the shared genre vocabulary.
// TMDB uses these codes for both movie and TV genres; TVDB reports names
// directly and never hits this table.
var genreNames = map[int64]string{
	28: "Action", 12: "Adventure", 16: "Animation", 35: "Comedy", 80: "Crime",
	99: "Documentary", 18: "Drama", 10751: "Family", 14: "Fantasy", 36: "History",
	27: "Horror", 10402: "Music", 9648: "Mystery", 10749: "Romance",
	878: "Science Fiction", 10770: "TV Movie", 53: "Thriller", 10752: "War", 37: "Western",
	// TV-specific
	10759: "Action & Adventure", 10762: "Kids", 10763: "News", 10764: "Reality",
	10765: "Sci-Fi & Fantasy", 10766: "Soap", 10767: "Talk", 10768: "War & Politics",
}

var genreCaser = cases.Title(language.English)

// GenreName resolves a numeric genre code against the shared vocabulary.
// Unmapped codes fall back to the provider's own label, normalized.
func GenreName(code int64, providerLabel string) string {
	if name, ok := genreNames[code]; ok {
		return name
	}
	return NormalizeGenreLabel(providerLabel)
}

// NormalizeGenreLabel title-cases a provider-reported genre label so the
// vocabulary stays consistent across providers.
func NormalizeGenreLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	return genreCaser.String(strings.ToLower(label))
}
