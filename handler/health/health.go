package health

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/mager/broca/config"
	"github.com/mager/broca/spotify"
	"go.uber.org/zap"
)

// HealthHandler is an http.Handler reporting whether the server and
// its external pieces are configured.
type HealthHandler struct {
	log           *zap.SugaredLogger
	cfg           config.Config
	spotifyClient *spotify.SpotifyClient
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, cfg config.Config, spotifyClient *spotify.SpotifyClient) *HealthHandler {
	return &HealthHandler{
		log:           log,
		cfg:           cfg,
		spotifyClient: spotifyClient,
	}
}

type Response struct {
	Server  bool `json:"server"`
	Spotify bool `json:"spotify"`
	Bundle  bool `json:"bundle"`
}

// Get service health
// @Summary Get service health
// @Description Reports server, Spotify client, and classifier bundle state
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp Response

	h.log.Info("health check")

	resp.Server = true

	// Make sure Spotify client is set up properly
	if h.spotifyClient.ID != "" && h.spotifyClient.Secret != "" {
		resp.Spotify = true
	}

	if _, err := os.Stat(h.cfg.BundlePath); err == nil {
		resp.Bundle = true
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
