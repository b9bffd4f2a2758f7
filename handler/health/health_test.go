package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/broca/config"
	"github.com/mager/broca/logger"
	"github.com/mager/broca/spotify"
)

func TestHealthHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	cfg := config.Config{BundlePath: "does/not/exist.bundle"}
	handler := NewHealthHandler(log, cfg, &spotify.SpotifyClient{ID: "id", Secret: "secret"})

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	// Check the response body
	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}

	if !resp.Server {
		t.Error("expected server to report healthy")
	}
	if !resp.Spotify {
		t.Error("expected spotify to report configured")
	}
	if resp.Bundle {
		t.Error("expected bundle to report missing")
	}
}

func TestHealthHandlerWithoutCredentials(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewHealthHandler(log, config.Config{}, &spotify.SpotifyClient{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Spotify {
		t.Error("expected spotify to report unconfigured")
	}
}
