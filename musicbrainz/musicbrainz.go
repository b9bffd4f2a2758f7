package musicbrainz

import (
	"github.com/mager/musicbrainz-go/musicbrainz"
)

type MusicbrainzClient struct {
	Client *musicbrainz.MusicbrainzClient
}

func ProvideMusicbrainz() *MusicbrainzClient {
	var c MusicbrainzClient
	c.Client = musicbrainz.NewMusicbrainzClient().
		WithUserAgent("beatbrain/broca", "1.0.0", "https://github.com/mager/broca")

	return &c
}

// LookupRecording searches MusicBrainz for a recording by artist and
// track name and returns the first hit's MBID, or empty when nothing
// matched. Used as a diagnostic fallback when Spotify search misses.
func (c *MusicbrainzClient) LookupRecording(artist, track string) (string, error) {
	resp, err := c.Client.SearchRecordingsByArtistAndTrack(musicbrainz.SearchRecordingsByArtistAndTrackRequest{
		Artist: artist,
		Track:  track,
	})
	if err != nil {
		return "", err
	}
	if resp.Count == 0 || len(resp.Recordings) == 0 {
		return "", nil
	}
	return resp.Recordings[0].ID, nil
}

var Options = ProvideMusicbrainz
