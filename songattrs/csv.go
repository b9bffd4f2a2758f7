package songattrs

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mager/broca/broca"
)

var attributeHeader = []string{
	"artist_name", "track_title", "id", "popularity",
	"danceability", "energy", "key", "loudness", "mode", "speechiness",
	"acousticness", "instrumentalness", "liveness", "valence", "tempo",
	"duration_ms", "time_signature",
}

// ReadSongs loads the survey song list from a CSV file with at least
// artist_name and track_title columns.
func ReadSongs(path string) ([]broca.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read song list: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("song list %s is empty", path)
	}

	artistCol, titleCol := -1, -1
	for i, name := range records[0] {
		switch name {
		case "artist_name":
			artistCol = i
		case "track_title":
			titleCol = i
		}
	}
	if artistCol < 0 || titleCol < 0 {
		return nil, fmt.Errorf("song list %s is missing artist_name/track_title columns", path)
	}

	songs := make([]broca.Song, 0, len(records)-1)
	for _, rec := range records[1:] {
		if rec[artistCol] == "" || rec[titleCol] == "" {
			continue
		}
		songs = append(songs, broca.Song{
			Artist: rec[artistCol],
			Title:  rec[titleCol],
		})
	}
	return songs, nil
}

// WriteAttributes persists the merged attribute table as CSV.
func WriteAttributes(path string, attrs []broca.SongAttributes) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(attributeHeader); err != nil {
		return err
	}
	for _, a := range attrs {
		record := []string{
			a.Artist,
			a.Title,
			a.SourceID,
			strconv.Itoa(a.Popularity),
			formatFloat(a.Features.Danceability),
			formatFloat(a.Features.Energy),
			strconv.Itoa(a.Meta.Key),
			formatFloat(a.Features.Loudness),
			strconv.Itoa(a.Meta.Mode),
			formatFloat(a.Features.Speechiness),
			formatFloat(a.Features.Acousticness),
			formatFloat(a.Features.Instrumentalness),
			formatFloat(a.Features.Liveness),
			formatFloat(a.Features.Valence),
			formatFloat(a.Meta.Tempo),
			strconv.Itoa(a.Meta.DurationMs),
			strconv.Itoa(a.Meta.TimeSignature),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
