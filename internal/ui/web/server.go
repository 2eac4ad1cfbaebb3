package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
	"github.com/Amruth-empire/crop-prediction/internal/usecase"
)

const (
	optionsCacheKey       = "options"
	optionsFailedCacheKey = "options.failed"

	// Bounds on the suggestion lookup: how long one lookup may take and how
	// long a failed one is remembered.
	defaultOptionsTimeout = 2 * time.Second
	defaultOptionsRetry   = 30 * time.Second

	optionsUnavailableMessage = "Options unavailable"
)

var errOptionsUnavailable = errors.New("options unavailable")

type Deps struct {
	Predictor   ports.YieldPredictor
	Recommender ports.CropRecommender
	Options     ports.OptionsProvider

	ServiceURL string
	Logger     *slog.Logger
}

// Server hosts the two-tab form page and a small JSON API.
type Server struct {
	cfg  domain.ServeConfig
	deps Deps
	log  *slog.Logger

	submitYield          *usecase.SubmitYield
	submitRecommendation *usecase.SubmitRecommendation
	loadOptions          *usecase.LoadOptions

	options        *cache.Cache
	optionsTimeout time.Duration
	optionsRetry   time.Duration
}

func New(cfg domain.ServeConfig, deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	s := &Server{
		cfg:     cfg,
		deps:    deps,
		log:     log,
		options: cache.New(cfg.OptionsTTL, 2*cfg.OptionsTTL),

		optionsTimeout: defaultOptionsTimeout,
		optionsRetry:   defaultOptionsRetry,
	}
	if deps.Predictor != nil {
		s.submitYield = usecase.NewSubmitYield(deps.Predictor, usecase.WithLogger(log))
	}
	if deps.Recommender != nil {
		s.submitRecommendation = usecase.NewSubmitRecommendation(deps.Recommender, usecase.WithLogger(log))
	}
	if deps.Options != nil {
		s.loadOptions = usecase.NewLoadOptions(deps.Options, usecase.WithLogger(log))
	}
	return s
}

// Handler builds the router with its middleware.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(recoveryMiddleware(s.log))
	r.Use(loggingMiddleware(s.log))

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/yield", s.handleYield).Methods(http.MethodPost)
	r.HandleFunc("/recommendation", s.handleRecommendation).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         86400,
	})

	api := r.PathPrefix("/api").Subrouter()
	api.Use(c.Handler)
	api.HandleFunc("/options", s.handleOptions).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web.listening", "addr", s.cfg.Addr, "service", s.deps.ServiceURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return &domain.OpError{Op: "web.listen", Kind: domain.KindExecution, Path: s.cfg.Addr, Err: err}
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("web.shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return &domain.OpError{Op: "web.shutdown", Kind: domain.KindExecution, Err: err}
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tab := tabYield
	if r.URL.Query().Get("tab") == tabRecommendation {
		tab = tabRecommendation
	}

	data := s.basePage(tab)
	data.YieldFields = yieldFieldViews(domain.YieldForm{}, nil)
	data.RecommendationFields = recommendationFieldViews(domain.RecommendationForm{}, nil)
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) handleYield(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	var form domain.YieldForm
	for _, f := range domain.YieldFields() {
		form.Set(f, r.PostForm.Get(f.Key()))
	}

	data := s.basePage(tabYield)
	data.RecommendationFields = recommendationFieldViews(domain.RecommendationForm{}, nil)

	issues := domain.CheckYield(form)
	data.YieldFields = yieldFieldViews(form, issues)
	if len(issues) > 0 {
		s.render(w, r, http.StatusUnprocessableEntity, data)
		return
	}
	if s.submitYield == nil {
		data.YieldError = domain.GenericFailureMessage
		s.render(w, r, http.StatusOK, data)
		return
	}

	var sub domain.Submission[domain.YieldResult]
	tok, _ := sub.Begin()
	out := s.submitYield.Execute(r.Context(), form)
	if r.Context().Err() != nil {
		sub.Close()
		s.log.Debug("web.yield.client_gone")
		return
	}
	sub.Settle(tok, out)

	if res, ok := sub.Result(); ok {
		data.YieldResult = &yieldResultView{
			Prediction: domain.FormatPrediction(res.Prediction),
			Unit:       res.Unit,
			Message:    res.Message,
		}
	}
	data.YieldError = sub.Err()
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	var form domain.RecommendationForm
	for _, f := range domain.RecommendationFields() {
		form.Set(f, r.PostForm.Get(f.Key()))
	}

	data := s.basePage(tabRecommendation)
	data.YieldFields = yieldFieldViews(domain.YieldForm{}, nil)

	issues := domain.CheckRecommendation(form)
	data.RecommendationFields = recommendationFieldViews(form, issues)
	if len(issues) > 0 {
		s.render(w, r, http.StatusUnprocessableEntity, data)
		return
	}
	if s.submitRecommendation == nil {
		data.RecommendationError = domain.GenericFailureMessage
		s.render(w, r, http.StatusOK, data)
		return
	}

	var sub domain.Submission[domain.RecommendationResult]
	tok, _ := sub.Begin()
	out := s.submitRecommendation.Execute(r.Context(), form)
	if r.Context().Err() != nil {
		sub.Close()
		s.log.Debug("web.recommendation.client_gone")
		return
	}
	sub.Settle(tok, out)

	if res, ok := sub.Result(); ok {
		data.RecommendationResult = &recommendationResultView{
			Crop:       res.RecommendedCrop,
			Confidence: domain.FormatConfidence(res.Confidence),
			Message:    res.Message,
		}
	}
	data.RecommendationError = sub.Err()
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.cachedOptions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": optionsUnavailableMessage})
		return
	}
	writeJSON(w, http.StatusOK, optionsJSON{
		States:    nonNil(opts.States),
		Districts: nonNil(opts.Districts),
		Seasons:   nonNil(opts.Seasons),
		Crops:     nonNil(opts.Crops),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// cachedOptions returns the suggestion lists, bounded by optionsTimeout. A
// failure is cached for optionsRetry so pages stop waiting on a dead endpoint.
func (s *Server) cachedOptions(ctx context.Context) (domain.Options, error) {
	if v, ok := s.options.Get(optionsCacheKey); ok {
		return v.(domain.Options), nil
	}
	if _, failed := s.options.Get(optionsFailedCacheKey); failed {
		return domain.Options{}, errOptionsUnavailable
	}
	if s.loadOptions == nil {
		return domain.Options{}, errOptionsUnavailable
	}

	lookupCtx := ctx
	if s.optionsTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, s.optionsTimeout)
		defer cancel()
	}

	opts, err := s.loadOptions.Execute(lookupCtx)
	if err != nil {
		s.log.Warn("web.options_unavailable", "err", err)
		if ctx.Err() == nil {
			s.options.Set(optionsFailedCacheKey, struct{}{}, s.optionsRetry)
		}
		return domain.Options{}, errOptionsUnavailable
	}
	if s.cfg.OptionsTTL > 0 {
		s.options.Set(optionsCacheKey, opts, cache.DefaultExpiration)
	}
	return opts, nil
}

func (s *Server) basePage(tab string) pageData {
	return pageData{Tab: tab, ServiceURL: s.deps.ServiceURL}
}

// render writes the page. The yield tab's suggestions are looked up last so a
// submission never waits on them; without them the page renders as is.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	if data.IsYield() {
		if opts, err := s.cachedOptions(r.Context()); err == nil {
			data.States = opts.States
			data.Districts = opts.Districts
			data.Crops = opts.Crops
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Error("web.render_failed", "err", err)
	}
}

type optionsJSON struct {
	States    []string `json:"states"`
	Districts []string `json:"districts"`
	Seasons   []string `json:"seasons"`
	Crops     []string `json:"crops"`
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
