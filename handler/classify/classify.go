package classify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/jbrukh/bayesian"
	"github.com/mager/broca/classifier"
	"github.com/mager/broca/config"
	"go.uber.org/zap"
)

// ClassifyHandler scores a message against every classifier in the
// trained bundle. The bundle is loaded lazily on first use so the
// server can come up before a trainer run has happened.
type ClassifyHandler struct {
	log *zap.SugaredLogger
	cfg config.Config

	mu          sync.Mutex
	bundle      *classifier.Bundle
	classifiers map[string]*bayesian.Classifier
}

func (*ClassifyHandler) Pattern() string {
	return "/classify"
}

// NewClassifyHandler builds a new ClassifyHandler.
func NewClassifyHandler(log *zap.SugaredLogger, cfg config.Config) *ClassifyHandler {
	return &ClassifyHandler{
		log: log,
		cfg: cfg,
	}
}

type Request struct {
	Message string `json:"message"`
}

type Response struct {
	Message    string   `json:"message"`
	Categories []string `json:"categories"`
}

// load reads and decodes the bundle once; a failed load is retried on
// the next request so a fresh trainer run gets picked up without a
// restart.
func (h *ClassifyHandler) load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.classifiers != nil {
		return nil
	}

	bundle, err := classifier.LoadBundle(h.cfg.BundlePath)
	if err != nil {
		return err
	}
	classifiers, err := bundle.Decode()
	if err != nil {
		return err
	}

	h.bundle = bundle
	h.classifiers = classifiers
	return nil
}

// Classify a disaster-response message
// @Summary Classify a message
// @Description Returns the disaster-response categories the trained classifiers assign to a message
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Router /classify [post]
func (h *ClassifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "missing message", http.StatusBadRequest)
		return
	}

	if err := h.load(); err != nil {
		h.log.Errorw("classifier bundle unavailable", "path", h.cfg.BundlePath, "error", err)
		http.Error(w, "classifier bundle unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := Response{
		Message:    req.Message,
		Categories: classifier.Classify(h.classifiers, h.bundle.Categories, req.Message),
	}
	json.NewEncoder(w).Encode(resp)
}
