package spotify

import (
	"strings"

	spot "github.com/zmb3/spotify/v2"
)

// GetFirstArtist returns the first artist
func GetFirstArtist(artists []spot.SimpleArtist) string {
	if len(artists) == 0 {
		return "Various Artists"
	}

	return artists[0].Name
}

// ConcatArtists returns a comma-separated list of artist names
func ConcatArtists(artists []spot.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// MatchesArtist reports whether any credited artist matches the expected
// name, ignoring case and surrounding whitespace.
func MatchesArtist(artists []spot.SimpleArtist, expected string) bool {
	want := strings.TrimSpace(expected)
	for _, a := range artists {
		if strings.EqualFold(strings.TrimSpace(a.Name), want) {
			return true
		}
	}
	return false
}
