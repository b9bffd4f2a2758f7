package songattrs

import (
	"context"

	spot "github.com/zmb3/spotify/v2"

	"github.com/mager/broca/broca"
	"github.com/mager/broca/checkpoint"
	"github.com/mager/broca/spotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// featureBatchSize is the per-request cap on the batch feature endpoint.
const featureBatchSize = 99

// Fetcher turns resolved track IDs into full attribute records via the
// batch audio-features endpoint.
type Fetcher struct {
	log           *zap.SugaredLogger
	spotifyClient *spotify.SpotifyClient
	limiter       *rate.Limiter
}

func NewFetcher(log *zap.SugaredLogger, spotifyClient *spotify.SpotifyClient, limiter *rate.Limiter) *Fetcher {
	return &Fetcher{
		log:           log,
		spotifyClient: spotifyClient,
		limiter:       limiter,
	}
}

// FetchAttributes fetches audio features for the given entries in
// batches and merges them with the identification fields. A failed or
// partially empty batch is logged and skipped, never fatal.
func (f *Fetcher) FetchAttributes(ctx context.Context, entries []checkpoint.Entry) ([]broca.SongAttributes, error) {
	f.log.Infof("Looking for descriptors for %d songs", len(entries))

	byID := make(map[spot.ID]checkpoint.Entry, len(entries))
	ids := make([]spot.ID, 0, len(entries))
	for _, e := range entries {
		id := spot.ID(e.ID)
		if _, dup := byID[id]; dup {
			continue
		}
		byID[id] = e
		ids = append(ids, id)
	}

	out := make([]broca.SongAttributes, 0, len(ids))
	for start := 0; start < len(ids); start += featureBatchSize {
		end := start + featureBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		features, err := f.spotifyClient.Client.GetAudioFeatures(ctx, ids[start:end]...)
		if err != nil {
			f.log.Errorw("audio features lookup failed", "batch_start", start, "error", err)
			continue
		}

		for _, af := range features {
			if af == nil {
				continue
			}
			entry, ok := byID[af.ID]
			if !ok {
				f.log.Warnw("features for unrequested track", "id", af.ID)
				continue
			}
			out = append(out, merge(entry, af))
		}
	}

	f.log.Infof("Found descriptors for %d songs", len(out))
	return out, nil
}

func merge(e checkpoint.Entry, af *spot.AudioFeatures) broca.SongAttributes {
	return broca.SongAttributes{
		Artist:     e.Artist,
		Title:      e.Title,
		SourceID:   string(af.ID),
		Source:     "SPOTIFY",
		Popularity: e.Popularity,
		Meta: broca.TrackMeta{
			DurationMs:    int(af.Duration),
			Key:           int(af.Key),
			Mode:          int(af.Mode),
			Tempo:         af.Tempo,
			TimeSignature: int(af.TimeSignature),
		},
		Features: broca.TrackFeatures{
			Acousticness:     af.Acousticness,
			Danceability:     af.Danceability,
			Energy:           af.Energy,
			Instrumentalness: af.Instrumentalness,
			Liveness:         af.Liveness,
			Loudness:         af.Loudness,
			Speechiness:      af.Speechiness,
			Valence:          af.Valence,
		},
	}
}
