package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/conorfennell/quizflow/internal/domain"
	"github.com/conorfennell/quizflow/internal/flow"
	"github.com/conorfennell/quizflow/internal/scoring"
	"github.com/conorfennell/quizflow/internal/session"
)

//go:embed all:static
var staticFiles embed.FS

//go:embed all:templates
var templateFiles embed.FS

// Options configures a Server.
type Options struct {
	CheckoutURL  string
	BankVersion  string
	Testimonials []domain.Testimonial
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	store     *session.Store
	router    *http.ServeMux
	templates *template.Template
	logger    *zap.Logger
	opts      Options
}

// NewServer creates and configures a new server.
func NewServer(store *session.Store, opts Options, logger *zap.Logger) (*Server, error) {
	tpl, err := template.New("quizflow").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if opts.Testimonials == nil {
		opts.Testimonials = Testimonials
	}

	s := &Server{
		store:     store,
		router:    http.NewServeMux(),
		templates: tpl,
		logger:    logger,
		opts:      opts,
	}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

var templateFuncs = template.FuncMap{
	"clock": scoring.FormatClock,
	"cues": func(cues []flow.Cue) string {
		names := make([]string, len(cues))
		for i, c := range cues {
			names[i] = c.String()
		}
		return strings.Join(names, " ")
	},
	"slots": func() []int {
		slots := make([]int, scoring.StarSlots)
		for i := range slots {
			slots[i] = i
		}
		return slots
	},
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.router.ServeHTTP(rec, r)
	s.logger.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("took", time.Since(start)),
	)
}

// routes sets up the routing for the server.
func (s *Server) routes() error {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create sub-filesystem for static assets: %w", err)
	}
	fileServer := http.FileServer(http.FS(staticFS))

	s.router.Handle("GET /static/", http.StripPrefix("/static/", fileServer))
	s.router.HandleFunc("GET /{$}", s.handleIndex())
	s.router.HandleFunc("GET /healthz", s.handleHealth())
	s.router.HandleFunc("GET /checkout", s.handleCheckout())

	// HTMX-based routes
	s.router.HandleFunc("GET /session/{id}", s.handleGetStep())
	s.router.HandleFunc("POST /session/{id}/start", s.handleAction("start", start))
	s.router.HandleFunc("POST /session/{id}/answer", s.handleAction("answer", answer))
	s.router.HandleFunc("POST /session/{id}/hint", s.handleAction("hint", hint))
	s.router.HandleFunc("POST /session/{id}/continue", s.handleAction("continue", next))
	s.router.HandleFunc("POST /session/{id}/close", s.handleClose())

	// JSON snapshot for non-HTML clients
	s.router.HandleFunc("GET /api/session/{id}", s.handleGetSnapshot())
	return nil
}

// pageData is what the step templates render.
type pageData struct {
	ID           string
	View         flow.View
	Cues         []flow.Cue
	Testimonials []domain.Testimonial
	CheckoutURL  string
}

func (s *Server) data(id string, ctrl *flow.Controller) pageData {
	return pageData{
		ID:           id,
		View:         ctrl.Snapshot(),
		Cues:         ctrl.DrainCues(),
		Testimonials: s.opts.Testimonials,
		CheckoutURL:  "/checkout",
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
	}
}

// handleIndex starts a fresh session on every page load and renders the intro.
// HEAD requests get the headers only and never create a session.
func (s *Server) handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusOK)
			return
		}
		id, ctrl := s.store.Create()
		s.render(w, "page", s.data(id, ctrl))
	}
}

// handleGetStep renders the current step; the page polls it every second.
func (s *Server) handleGetStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		ctrl, ok := s.store.Get(id)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			s.render(w, "expired", nil)
			return
		}
		s.render(w, "step", s.data(id, ctrl))
	}
}

// action applies one user interaction to a controller.
type action func(ctrl *flow.Controller, r *http.Request) (bool, error)

func start(ctrl *flow.Controller, _ *http.Request) (bool, error) {
	return ctrl.Start(), nil
}

func answer(ctrl *flow.Controller, r *http.Request) (bool, error) {
	choice, err := strconv.Atoi(r.PostFormValue("choice"))
	if err != nil || choice < 0 {
		return false, fmt.Errorf("invalid choice %q", r.PostFormValue("choice"))
	}
	return ctrl.SubmitAnswer(choice), nil
}

func hint(ctrl *flow.Controller, _ *http.Request) (bool, error) {
	return ctrl.RevealHint(), nil
}

func next(ctrl *flow.Controller, _ *http.Request) (bool, error) {
	return ctrl.Continue(), nil
}

// handleAction applies an interaction and re-renders the step to be swapped by HTMX.
func (s *Server) handleAction(name string, apply action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		ctrl, ok := s.store.Get(id)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			s.render(w, "expired", nil)
			return
		}

		applied, err := apply(ctrl, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !applied {
			// Repeated or out-of-step interactions are ignored.
			s.logger.Debug("action ignored", zap.String("action", name), zap.String("session", id))
		}
		s.render(w, "step", s.data(id, ctrl))
	}
}

// handleClose ends a session when the visitor leaves the page.
func (s *Server) handleClose() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.store.Remove(r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleGetSnapshot returns the session state as JSON.
func (s *Server) handleGetSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl, ok := s.store.Get(r.PathValue("id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		s.writeJSON(w, http.StatusOK, newSnapshot(ctrl.Snapshot(), ctrl.DrainCues()))
	}
}

// handleCheckout sends the visitor to the external checkout.
func (s *Server) handleCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.opts.CheckoutURL, http.StatusFound)
	}
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": s.store.Len(),
			"bank":     s.opts.BankVersion,
		})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
