package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCategoryDistribution(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	err := RenderCategoryDistribution(dir,
		[]string{"water", "food", "shelter"},
		[]int{120, 45, 10},
	)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, CategoryDistributionFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Category distribution")
	assert.Contains(t, string(raw), "water")
}

func TestRenderLanguageSources(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	err := RenderLanguageSources(dir, []string{"eng", "fra", "eng", "spa", "eng"})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, LanguageSourcesFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Language sources")
	assert.Contains(t, string(raw), "fra")
}
