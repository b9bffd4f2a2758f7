package classify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mager/broca/classifier"
	"github.com/mager/broca/config"
	"github.com/mager/broca/dataset"
	"github.com/mager/broca/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainBundle(t *testing.T) string {
	t.Helper()

	ds := &dataset.Dataset{
		Messages: []string{
			"the river flooded our village and water is everywhere",
			"flood water rising in the streets",
			"water levels keep rising after the storm",
			"we are hungry and need food supplies",
			"no bread or rice left people are starving",
			"volunteers registered at the town hall",
			"roads reopened near the northern district",
		},
		Categories: []string{"water"},
		Labels: map[string][]int{
			"water": {1, 1, 1, 0, 0, 0, 0},
		},
	}

	log, _ := logger.NewTestLogger()
	estimators := classifier.Train(log, ds, 0.99)

	bundle, err := classifier.NewBundle(estimators, ds.Categories)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "classifier.bundle")
	require.NoError(t, bundle.Save(path))
	return path
}

func TestClassifyHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewClassifyHandler(log, config.Config{BundlePath: trainBundle(t)})

	body := strings.NewReader(`{"message": "flood water is rising in our village"}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/classify", body))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Categories, "water")
}

func TestClassifyHandlerRejectsEmptyMessage(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewClassifyHandler(log, config.Config{BundlePath: trainBundle(t)})

	body := strings.NewReader(`{"message": ""}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/classify", body))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestClassifyHandlerWithoutBundle(t *testing.T) {
	log, logs := logger.NewTestLogger()
	handler := NewClassifyHandler(log, config.Config{BundlePath: filepath.Join(t.TempDir(), "missing.bundle")})

	body := strings.NewReader(`{"message": "flood water"}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/classify", body))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, 1, logs.FilterMessageSnippet("bundle unavailable").Len())
}
