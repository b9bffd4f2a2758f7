package main

import (
	"context"
	"net"
	"net/http"

	chartHandler "github.com/mager/broca/handler/chart"
	classifyHandler "github.com/mager/broca/handler/classify"
	"github.com/mager/broca/handler/health"

	"github.com/mager/broca/config"
	"github.com/mager/broca/logger"
	"github.com/mager/broca/spotify"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

//	@title			Broca
//	@version		1.0
//	@description	This is the API for broca

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(
		fx.Provide(NewHTTPServer,
			config.Options,
			logger.Options,
			spotify.Options,
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

func NewHTTPServer(
	lc fx.Lifecycle,
	log *zap.SugaredLogger,
	cfg config.Config,
	spotifyClient *spotify.SpotifyClient,
) *http.Server {
	mux := http.NewServeMux()

	srv := &http.Server{Addr: ":8080", Handler: mux}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infof("Starting HTTP server at %s", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	// Define handlers
	healthHandler := health.NewHealthHandler(log, cfg, spotifyClient)
	mux.Handle(healthHandler.Pattern(), healthHandler)

	classify := classifyHandler.NewClassifyHandler(log, cfg)
	mux.Handle(classify.Pattern(), classify)

	charts := chartHandler.NewChartHandler(log, cfg)
	mux.Handle(charts.Pattern(), charts)

	return srv
}
