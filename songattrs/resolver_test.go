package songattrs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	spot "github.com/zmb3/spotify/v2"

	"github.com/mager/broca/logger"
	"github.com/mager/broca/spotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// testSpotifyClient points a real client at a local server standing in
// for the web API.
func testSpotifyClient(t *testing.T, handler http.Handler) *spotify.SpotifyClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &spotify.SpotifyClient{
		Client: spot.New(srv.Client(), spot.WithBaseURL(srv.URL+"/")),
	}
}

func trackItem(id, name string, popularity int, artists ...string) map[string]any {
	credited := make([]map[string]any, len(artists))
	for i, a := range artists {
		credited[i] = map[string]any{"name": a}
	}
	return map[string]any{
		"id":         id,
		"name":       name,
		"popularity": popularity,
		"artists":    credited,
	}
}

func writeSearchResult(w http.ResponseWriter, items ...map[string]any) {
	if items == nil {
		items = []map[string]any{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"tracks": map[string]any{
			"items": items,
			"limit": 20,
			"total": len(items),
		},
	})
}

func newTestResolver(t *testing.T, handler http.Handler) *Resolver {
	t.Helper()
	log, _ := logger.NewTestLogger()
	return NewResolver(log, testSpotifyClient(t, handler), nil, rate.NewLimiter(rate.Inf, 1))
}

func TestResolveMatchesInLaterMarket(t *testing.T) {
	markets := []string{}
	r := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		market := req.URL.Query().Get("market")
		markets = append(markets, market)
		if market != "DE" {
			writeSearchResult(w)
			return
		}
		writeSearchResult(w,
			trackItem("cover123", "Africa", 40, "Some Cover Band"),
			trackItem("2374M0fQpWi3dLnB54qaLX", "Africa", 84, "Toto"),
		)
	}))

	entry, err := r.Resolve(context.Background(), "Toto", "Africa")
	require.NoError(t, err)

	assert.True(t, entry.Matched)
	assert.Equal(t, "2374M0fQpWi3dLnB54qaLX", entry.ID)
	assert.Equal(t, 84, entry.Popularity)
	assert.Equal(t, []string{"US", "DE"}, markets, "resolution stops at the first matching market")
}

func TestResolveRecordsMiss(t *testing.T) {
	searches := 0
	r := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		searches++
		// A same-titled track by someone else must not count as a match.
		writeSearchResult(w, trackItem("other456", "Africa", 12, "Karaoke Allstars"))
	}))

	entry, err := r.Resolve(context.Background(), "Toto", "Africa")
	require.NoError(t, err)

	assert.False(t, entry.Matched)
	assert.Empty(t, entry.ID)
	assert.Equal(t, "Toto", entry.Artist)
	assert.Equal(t, "Africa", entry.Title)
	assert.Equal(t, len(Markets), searches, "every market is tried before giving up")
}

func TestResolveSurfacesRetryExhaustion(t *testing.T) {
	searches := 0
	r := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		searches++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"status": 500, "message": "server error"},
		})
	}))

	_, err := r.Resolve(context.Background(), "Toto", "Africa")
	require.Error(t, err)
	assert.Equal(t, searchRetries, searches, "transport failures get a bounded retry, not a market cascade")
}
