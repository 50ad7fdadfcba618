package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/nguyentantai21042004/meeting-agent/internal/artifact"
	"github.com/nguyentantai21042004/meeting-agent/internal/config"
	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
	"github.com/nguyentantai21042004/meeting-agent/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-agent/internal/report"
	"github.com/nguyentantai21042004/meeting-agent/internal/repository"
)

type handler struct {
	pipeline  pipeline.Pipeline
	repo      repository.Repository
	renderer  report.Renderer
	store     artifact.Store
	maxUpload int64
	logger    logger.Logger
}

// New builds the HTTP API: the route table wrapped in the CORS policy.
func New(
	pipe pipeline.Pipeline,
	repo repository.Repository,
	renderer report.Renderer,
	store artifact.Store,
	cfg config.ServerConfig,
	log logger.Logger,
) http.Handler {
	h := &handler{
		pipeline:  pipe,
		repo:      repo,
		renderer:  renderer,
		store:     store,
		maxUpload: cfg.MaxUploadMB << 20,
		logger:    log,
	}

	r := mux.NewRouter()
	r.Use(h.logRequests)
	r.HandleFunc("/", h.root).Methods(http.MethodGet)
	r.HandleFunc("/transcribe", h.transcribe).Methods(http.MethodPost)
	r.HandleFunc("/search", h.search).Methods(http.MethodGet)
	r.HandleFunc("/download/{meeting_id}", h.download).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r)
}
