// Command songattrs resolves the survey song list against the Spotify
// catalog and writes each song's audio-feature vector. Lookups are
// checkpointed, so an interrupted run picks up where it stopped.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/mager/broca/checkpoint"
	"github.com/mager/broca/config"
	"github.com/mager/broca/logger"
	"github.com/mager/broca/musicbrainz"
	"github.com/mager/broca/songattrs"
	"github.com/mager/broca/spotify"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.ProvideConfig()
	log := logger.ProvideLogger()
	defer log.Sync()

	var (
		songsPath      = flag.String("songs", "resources/survey_songs.csv", "CSV file with artist_name and track_title columns")
		checkpointPath = flag.String("checkpoint", "resources/song_search_results.tsv", "checkpoint file for resumable lookups")
		outPath        = flag.String("out", "resources/song_attributes.csv", "where to write the merged attribute table")
	)
	flag.Parse()

	spotifyClient := spotify.ProvideSpotify(cfg, log)
	if spotifyClient.Client == nil {
		log.Fatal("spotify credentials missing; set BROCA_SPOTIFYID and BROCA_SPOTIFYSECRET")
	}
	musicbrainzClient := musicbrainz.ProvideMusicbrainz()

	songs, err := songattrs.ReadSongs(*songsPath)
	if err != nil {
		log.Fatalf("could not read song list: %v", err)
	}

	store, err := checkpoint.Open(log, *checkpointPath)
	if err != nil {
		log.Fatalf("could not open checkpoint: %v", err)
	}
	defer store.Close()

	// One request per second, as a courtesy to the API.
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)

	resolver := songattrs.NewResolver(log, spotifyClient, musicbrainzClient, limiter)
	fetcher := songattrs.NewFetcher(log, spotifyClient, limiter)
	pipeline := songattrs.NewPipeline(log, resolver, fetcher, store)

	if err := pipeline.Run(context.Background(), songs, *outPath); err != nil {
		log.Fatalf("song attribute run failed: %v", err)
	}
}
