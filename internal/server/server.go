// Package server exposes the audit pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/webatelier/siteaudit/internal/config"
	"github.com/webatelier/siteaudit/internal/models"
	"github.com/webatelier/siteaudit/internal/store"
	"github.com/webatelier/siteaudit/pkg/audit"
	"github.com/webatelier/siteaudit/pkg/recommend"
)

// Server holds the HTTP handlers' dependencies.
type Server struct {
	engine *audit.Engine
	store  *store.Store
	log    zerolog.Logger
}

// New builds a Server over an audit engine and a store. The store may
// be nil, in which case results are returned but not persisted and the
// lookup endpoints report 404.
func New(engine *audit.Engine, st *store.Store, log zerolog.Logger) *Server {
	return &Server{engine: engine, store: st, log: log}
}

// Router assembles the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/audit", s.handleAudit)
		r.Get("/audits", s.handleListAudits)
		r.Get("/audits/{id}", s.handleGetAudit)
		r.Get("/packages", s.handlePackages)
	})
	return r
}

// ListenAndServe runs the server with the configured address and
// timeouts, blocking until the listener fails.
func (s *Server) ListenAndServe(cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	s.log.Info().Str("addr", srv.Addr).Msg("server listening")
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type auditRequest struct {
	URL          string `json:"url"`
	BusinessType string `json:"business_type"`
	Locale       string `json:"locale"`
}

// handleAudit runs a full audit synchronously. POST /api/audit
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		s.writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	business := models.BusinessType(req.BusinessType)
	if !business.Valid() {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown business_type %q", req.BusinessType))
		return
	}
	locale := models.Locale(req.Locale)
	if req.Locale == "" {
		locale = models.LocaleCS
	}
	if !locale.Valid() {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown locale %q", req.Locale))
		return
	}

	result, err := s.engine.Run(r.Context(), req.URL, business, locale)
	if err != nil {
		s.log.Error().Err(err).Str("url", req.URL).Msg("audit failed")
		s.writeError(w, http.StatusBadGateway, "audit failed: "+err.Error())
		return
	}

	if s.store != nil {
		if err := s.store.SaveAudit(result); err != nil {
			// The audit itself succeeded; log and return it anyway.
			s.log.Error().Err(err).Str("id", result.ID).Msg("persisting audit failed")
		}
	}

	s.log.Info().
		Str("id", result.ID).
		Str("url", result.URL).
		Int("total", result.Scores.Total).
		Msg("audit completed")
	s.writeJSON(w, http.StatusOK, result)
}

// handleGetAudit returns a stored run. GET /api/audits/{id}
func (s *Server) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "persistence disabled")
		return
	}
	id := chi.URLParam(r, "id")
	result, err := s.store.GetAudit(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "audit not found")
			return
		}
		s.log.Error().Err(err).Str("id", id).Msg("loading audit failed")
		s.writeError(w, http.StatusInternalServerError, "loading audit failed")
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleListAudits returns recent run summaries. GET /api/audits
func (s *Server) handleListAudits(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeJSON(w, http.StatusOK, []store.AuditSummary{})
		return
	}
	summaries, err := s.store.ListAudits(50)
	if err != nil {
		s.log.Error().Err(err).Msg("listing audits failed")
		s.writeError(w, http.StatusInternalServerError, "listing audits failed")
		return
	}
	if summaries == nil {
		summaries = []store.AuditSummary{}
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

type packageView struct {
	models.Package
	Price   string `json:"price"`
	Text    string `json:"text"`
	Payback string `json:"payback"`
}

// handlePackages returns the localized offer tiers. GET /api/packages?locale=
func (s *Server) handlePackages(w http.ResponseWriter, r *http.Request) {
	locale := models.Locale(r.URL.Query().Get("locale"))
	if locale == "" {
		locale = models.LocaleCS
	}
	if !locale.Valid() {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown locale %q", locale))
		return
	}

	views := make([]packageView, 0, len(recommend.Packages))
	for _, pkg := range recommend.Packages {
		text, err := recommend.PackageText(pkg.ID, locale)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, "rendering packages failed")
			return
		}
		views = append(views, packageView{
			Package: pkg,
			Price:   recommend.FormatPriceRange(pkg.PriceMin, pkg.PriceMax, locale),
			Text:    text,
			Payback: recommend.PaybackEstimate(pkg.ID, locale),
		})
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("encoding response failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
