package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string

	SpotifyID     string
	SpotifySecret string

	// BundlePath is where the trainer writes the classifier bundle and
	// where the API server looks for it.
	BundlePath string `default:"resources/classifier.bundle"`

	// ChartsDir holds the generated chart HTML files.
	ChartsDir string `default:"resources/charts"`
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("broca", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
