package chart

import (
	"net/http"

	"github.com/mager/broca/config"
	"go.uber.org/zap"
)

// ChartHandler serves the chart HTML files the trainer renders.
type ChartHandler struct {
	log   *zap.SugaredLogger
	files http.Handler
}

func (*ChartHandler) Pattern() string {
	return "/charts/"
}

// NewChartHandler builds a new ChartHandler.
func NewChartHandler(log *zap.SugaredLogger, cfg config.Config) *ChartHandler {
	return &ChartHandler{
		log:   log,
		files: http.StripPrefix("/charts/", http.FileServer(http.Dir(cfg.ChartsDir))),
	}
}

// Get a generated chart
// @Summary Get a generated chart
// @Description Serves the category distribution and language source charts
// @Produce html
// @Router /charts/{file} [get]
func (h *ChartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debugw("serving chart", "path", r.URL.Path)
	h.files.ServeHTTP(w, r)
}
