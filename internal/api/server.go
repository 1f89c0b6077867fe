package api

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"

	"protmotif/internal/domain"
)

// maxBodyBytes bounds request bodies; the longest accepted sequence is far
// smaller.
const maxBodyBytes = 1 << 20

// Config carries the dependencies of a Server.
type Config struct {
	Proteins domain.ProteinService
	Analyzer domain.AnalysisService
	Users    domain.UserStore
	// Ping reports database health for /healthz. Nil means always healthy.
	Ping func(context.Context) error
	// ExportDir holds the snapshot files served under /files/proteins/.
	// Empty disables the route.
	ExportDir string
	Logger    *log.Logger
}

// Server routes HTTP requests to the protein and analysis services.
type Server struct {
	proteins  domain.ProteinService
	analyzer  domain.AnalysisService
	users     domain.UserStore
	ping      func(context.Context) error
	exportDir string
	logger    *log.Logger
}

// New constructs a Server from cfg.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		proteins:  cfg.Proteins,
		analyzer:  cfg.Analyzer,
		users:     cfg.Users,
		ping:      cfg.Ping,
		exportDir: cfg.ExportDir,
		logger:    logger,
	}
}

// Handler returns the routed handler wrapped in the access log.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /api/proteins", s.auth(s.handleSubmitJSON))
	mux.Handle("POST /api/proteins/sequence", s.auth(s.handleSubmitText))
	mux.Handle("GET /api/proteins", s.auth(s.handleList))
	mux.Handle("GET /api/proteins/search", s.auth(s.handleSearch))
	mux.Handle("GET /api/proteins/{id}", s.auth(s.handleGet))
	mux.Handle("PUT /api/proteins/{id}", s.auth(s.handleUpdate))
	mux.Handle("DELETE /api/proteins/{id}", s.auth(s.handleDelete))
	mux.Handle("GET /api/proteins/{id}/fragments", s.auth(s.handleFragments))
	mux.Handle("GET /api/proteins/{id}/sequence", s.auth(s.handleSequence))
	mux.Handle("GET /api/proteins/{id}/structure", s.auth(s.handleStructure))
	mux.Handle("GET /api/fragments/{id}", s.auth(s.handleFragment))
	mux.Handle("POST /api/analysis/structure", s.auth(s.handleAnalyzeStructure))
	mux.Handle("POST /api/analysis/motifs", s.auth(s.handleAnalyzeMotifs))

	if s.exportDir != "" {
		mux.Handle("GET /files/proteins/", http.StripPrefix("/files/proteins/", http.FileServer(http.Dir(s.exportDir))))
	}
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return accessLog(s.logger, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			s.logger.Error("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "database unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
