package songattrs

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/mager/broca/broca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSongs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.csv")
	content := "track_title,artist_name\n" +
		"Around the World,Daft Punk\n" +
		"Africa,Toto\n" +
		",Missing Title\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	songs, err := ReadSongs(path)
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, broca.Song{Artist: "Daft Punk", Title: "Around the World"}, songs[0])
	assert.Equal(t, broca.Song{Artist: "Toto", Title: "Africa"}, songs[1])
}

func TestReadSongsMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, err := ReadSongs(path)
	assert.Error(t, err)
}

func TestWriteAttributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attributes.csv")

	attrs := []broca.SongAttributes{
		{
			Artist:     "Daft Punk",
			Title:      "Around the World",
			SourceID:   "1pKYYY0dkg23sQQXi0Q5zN",
			Source:     "SPOTIFY",
			Popularity: 71,
			Meta: broca.TrackMeta{
				DurationMs:    428186,
				Key:           1,
				Mode:          0,
				Tempo:         121.294,
				TimeSignature: 4,
			},
			Features: broca.TrackFeatures{
				Acousticness:     0.0128,
				Danceability:     0.956,
				Energy:           0.795,
				Instrumentalness: 0.885,
				Liveness:         0.0994,
				Loudness:         -8.168,
				Speechiness:      0.0758,
				Valence:          0.841,
			},
		},
	}

	require.NoError(t, WriteAttributes(path, attrs))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, attributeHeader, records[0])
	row := records[1]
	assert.Equal(t, "Daft Punk", row[0])
	assert.Equal(t, "1pKYYY0dkg23sQQXi0Q5zN", row[2])
	assert.Equal(t, "71", row[3])
	assert.Equal(t, "0.956", row[4])
	assert.Equal(t, "428186", row[15])
}
