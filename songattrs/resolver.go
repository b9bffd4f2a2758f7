// Package songattrs resolves survey song titles to Spotify tracks and
// their audio-feature vectors, checkpointing every lookup so the run
// can resume where it stopped.
package songattrs

import (
	"context"
	"fmt"
	"strings"

	spot "github.com/zmb3/spotify/v2"

	"github.com/mager/broca/checkpoint"
	"github.com/mager/broca/musicbrainz"
	"github.com/mager/broca/spotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Markets lists the country catalogs searched for a song, in order.
var Markets = []string{"US", "DE", "FR", "ES", "IT", "GB"}

// searchRetries bounds the straight retry loop per market.
const searchRetries = 10

// Resolver looks up one song at a time against the Spotify search
// endpoint. The limiter spaces out requests as a courtesy; token
// refresh lives in the client's oauth2 transport.
type Resolver struct {
	log               *zap.SugaredLogger
	spotifyClient     *spotify.SpotifyClient
	musicbrainzClient *musicbrainz.MusicbrainzClient
	limiter           *rate.Limiter
}

// NewResolver builds a Resolver. The MusicBrainz client is optional and
// only used for diagnostics on misses.
func NewResolver(
	log *zap.SugaredLogger,
	spotifyClient *spotify.SpotifyClient,
	musicbrainzClient *musicbrainz.MusicbrainzClient,
	limiter *rate.Limiter,
) *Resolver {
	return &Resolver{
		log:               log,
		spotifyClient:     spotifyClient,
		musicbrainzClient: musicbrainzClient,
		limiter:           limiter,
	}
}

// Resolve finds the track ID and popularity for a song. The first item
// whose title and artist both match exactly (case-insensitively) wins.
// A song that cannot be matched in any market comes back with Matched
// false; only exhausted transport retries surface as an error.
func (r *Resolver) Resolve(ctx context.Context, artist, title string) (checkpoint.Entry, error) {
	entry := checkpoint.Entry{Artist: artist, Title: title}

	for _, market := range Markets {
		result, err := r.search(ctx, title, market)
		if err != nil {
			return entry, err
		}
		if result.Tracks == nil {
			r.log.Warnw("unexpected search response", "artist", artist, "title", title, "market", market)
			continue
		}

		for _, item := range result.Tracks.Tracks {
			if !strings.EqualFold(strings.TrimSpace(item.Name), strings.TrimSpace(title)) {
				continue
			}
			if !spotify.MatchesArtist(item.Artists, artist) {
				r.log.Debugw("title match credited to a different artist",
					"title", title, "credited", spotify.GetFirstArtist(item.Artists), "market", market)
				continue
			}
			entry.ID = string(item.ID)
			entry.Popularity = int(item.Popularity)
			entry.Matched = true
			r.log.Infow("matched song",
				"artist", artist, "title", title,
				"credited", spotify.ConcatArtists(item.Artists), "market", market)
			return entry, nil
		}
	}

	if r.musicbrainzClient != nil {
		mbid, err := r.musicbrainzClient.LookupRecording(artist, title)
		if err != nil {
			r.log.Debugw("musicbrainz fallback failed", "artist", artist, "title", title, "error", err)
		} else if mbid != "" {
			r.log.Infow("song known to MusicBrainz but not matched on Spotify",
				"artist", artist, "title", title, "mbid", mbid)
		}
	}

	return entry, nil
}

func (r *Resolver) search(ctx context.Context, title, market string) (*spot.SearchResult, error) {
	var lastErr error
	for attempt := 1; attempt <= searchRetries; attempt++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, err := r.spotifyClient.Client.Search(ctx, strings.ToLower(title),
			spot.SearchTypeTrack, spot.Market(market), spot.Limit(20))
		if err != nil {
			lastErr = err
			r.log.Warnw("search failed", "title", title, "market", market, "attempt", attempt, "error", err)
			continue
		}
		return result, nil
	}
	return nil, fmt.Errorf("search %q in %s: %w", title, market, lastErr)
}
