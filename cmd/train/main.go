// Command train builds the disaster-response message classifiers: it
// loads the labeled message table, trains one classifier per category,
// exports the bundle, renders the dataset charts, and optionally prints
// a performance report.
package main

import (
	"context"
	"flag"

	"github.com/mager/broca/charts"
	"github.com/mager/broca/classifier"
	"github.com/mager/broca/config"
	"github.com/mager/broca/database"
	"github.com/mager/broca/dataset"
	"github.com/mager/broca/logger"
)

func main() {
	cfg := config.ProvideConfig()
	log := logger.ProvideLogger()
	defer log.Sync()

	var (
		databaseURL = flag.String("database", cfg.DatabaseURL, "URL or path of the dataset database")
		table       = flag.String("table", "Dataset", "name of the table for data extraction")
		trainSize   = flag.Float64("train-size", 0.99, "sample data share for training (0..1)")
		runAnalysis = flag.Bool("run-analysis", true, "run a performance evaluation on the classifiers")
		bundlePath  = flag.String("out", cfg.BundlePath, "where to write the classifier bundle")
		chartsDir   = flag.String("charts-dir", cfg.ChartsDir, "where to write the generated charts")
	)
	flag.Parse()

	if *trainSize <= 0 || *trainSize >= 1 {
		log.Fatalf("train-size must be in (0, 1), got %v", *trainSize)
	}
	if *databaseURL == "" {
		log.Fatal("no database configured; pass -database or set BROCA_DATABASEURL")
	}

	ctx := context.Background()

	db, err := database.Open(log, *databaseURL)
	if err != nil {
		log.Fatalf("could not open dataset database: %v", err)
	}
	defer db.Close()

	ds, err := dataset.Load(ctx, log, db, *table)
	if err != nil {
		log.Fatalf("could not load dataset: %v", err)
	}

	estimators := classifier.Train(log, ds, *trainSize)

	bundle, err := classifier.NewBundle(estimators, ds.Categories)
	if err != nil {
		log.Fatalf("could not pack classifier bundle: %v", err)
	}
	if err := bundle.Save(*bundlePath); err != nil {
		log.Fatalf("could not write classifier bundle: %v", err)
	}
	log.Infof("Successfully exported package to %q", *bundlePath)

	if err := charts.RenderCategoryDistribution(*chartsDir, ds.Categories, ds.CategoryCounts()); err != nil {
		log.Errorw("could not render category distribution", "error", err)
	}
	if err := charts.RenderLanguageSources(*chartsDir, ds.DetectLanguages()); err != nil {
		log.Errorw("could not render language sources", "error", err)
	}

	if *runAnalysis {
		classifier.Report(log, estimators)
	}
}
