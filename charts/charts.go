// Package charts renders the static dataset visualizations as
// standalone HTML files.
package charts

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/exp/maps"
)

const (
	CategoryDistributionFile = "category_distribution.html"
	LanguageSourcesFile      = "language_sources.html"
)

// RenderCategoryDistribution writes a bar chart of positive sample
// counts per category.
func RenderCategoryDistribution(dir string, categories []string, counts []int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Category distribution"}),
	)

	data := make([]opts.BarData, len(counts))
	for i, n := range counts {
		data[i] = opts.BarData{Value: n}
	}
	bar.SetXAxis(categories).AddSeries("amount", data)

	f, err := create(dir, CategoryDistributionFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}

// RenderLanguageSources writes a pie chart of how many ground-truth
// messages came from each detected language.
func RenderLanguageSources(dir string, languages []string) error {
	tally := make(map[string]int)
	for _, lang := range languages {
		tally[lang]++
	}

	names := maps.Keys(tally)
	sort.Strings(names)

	data := make([]opts.PieData, 0, len(names))
	for _, name := range names {
		data = append(data, opts.PieData{Name: name, Value: tally[name]})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Language sources"}),
	)
	pie.AddSeries("languages", data)

	f, err := create(dir, LanguageSourcesFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return pie.Render(f)
}

func create(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(dir, name))
}
