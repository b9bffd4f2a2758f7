package spotify

import (
	"context"

	"github.com/mager/broca/config"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
)

// SpotifyClient wraps a client-credentials Spotify client. The oauth2
// transport refreshes the bearer token on expiry, so callers never deal
// with re-authentication themselves.
type SpotifyClient struct {
	Client *spotify.Client
	ID     string
	Secret string
}

func ProvideSpotify(cfg config.Config, log *zap.SugaredLogger) *SpotifyClient {
	c := &SpotifyClient{
		ID:     cfg.SpotifyID,
		Secret: cfg.SpotifySecret,
	}

	if cfg.SpotifyID == "" || cfg.SpotifySecret == "" {
		log.Warn("spotify credentials not configured")
		return c
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.SpotifyID,
		ClientSecret: cfg.SpotifySecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	httpClient := creds.Client(context.Background())
	c.Client = spotify.New(httpClient)

	log.Info("spotify client configured")
	return c
}

var Options = ProvideSpotify
