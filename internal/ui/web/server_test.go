package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

type stubService struct {
	mu        sync.Mutex
	yieldReqs []domain.YieldRequest
	recReqs   []domain.RecommendationRequest
	optCalls  int

	yield    domain.YieldResult
	yieldErr error
	rec      domain.RecommendationResult
	recErr   error
	opts     domain.Options
	optsErr  error

	// blockOptions makes Options wait for its context to end.
	blockOptions bool
	calls        []string
}

func (s *stubService) PredictYield(_ context.Context, req domain.YieldRequest) (domain.YieldResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yieldReqs = append(s.yieldReqs, req)
	s.calls = append(s.calls, "predict")
	return s.yield, s.yieldErr
}

func (s *stubService) RecommendCrop(_ context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recReqs = append(s.recReqs, req)
	return s.rec, s.recErr
}

func (s *stubService) Options(ctx context.Context) (domain.Options, error) {
	s.mu.Lock()
	s.optCalls++
	s.calls = append(s.calls, "options")
	block := s.blockOptions
	s.mu.Unlock()

	if block {
		<-ctx.Done()
		return domain.Options{}, ctx.Err()
	}
	return s.opts, s.optsErr
}

func (s *stubService) optionCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.optCalls
}

func newTestServer(t *testing.T, svc *stubService, ttl time.Duration) http.Handler {
	t.Helper()
	return newServer(t, svc, ttl).Handler()
}

func newServer(t *testing.T, svc *stubService, ttl time.Duration) *Server {
	t.Helper()
	return New(domain.ServeConfig{
		Addr:           "127.0.0.1:0",
		AllowedOrigins: []string{"http://example.test"},
		OptionsTTL:     ttl,
	}, Deps{
		Predictor:   svc,
		Recommender: svc,
		Options:     svc,
		ServiceURL:  "http://ml.test",
	})
}

func postForm(h http.Handler, path string, vals url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func validYield() url.Values {
	return url.Values{
		"state":    {"Punjab"},
		"district": {"Ludhiana"},
		"season":   {"Kharif"},
		"crop":     {"Rice"},
		"area":     {"100"},
	}
}

func validRecommendation() url.Values {
	return url.Values{
		"nitrogen":    {"90"},
		"phosphorus":  {"42"},
		"potassium":   {"43"},
		"ph":          {"6.5"},
		"temperature": {"20.87"},
		"humidity":    {"82"},
		"rainfall":    {"202.9"},
	}
}

func TestIndex_RendersYieldTabByDefault(t *testing.T) {
	svc := &stubService{opts: domain.Options{States: []string{"Punjab"}, Crops: []string{"Rice"}}}
	h := newTestServer(t, svc, time.Minute)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/yield"`)
	assert.NotContains(t, body, `action="/recommendation"`)
	assert.Contains(t, body, `<option value="Punjab">`)
	assert.Contains(t, body, "Kharif (Monsoon)")
	assert.Contains(t, body, "http://ml.test")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestIndex_RecommendationTab(t *testing.T) {
	h := newTestServer(t, &stubService{}, time.Minute)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?tab=recommendation", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/recommendation"`)
	assert.Contains(t, rec.Body.String(), "Nitrogen (N)")
}

func TestPostYield_Success(t *testing.T) {
	svc := &stubService{yield: domain.YieldResult{Prediction: 2.456, Unit: "tonnes/hectare", Message: "Good harvest"}}
	h := newTestServer(t, svc, time.Minute)

	rec := postForm(h, "/yield", validYield())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "2.46")
	assert.Contains(t, body, "tonnes/hectare")
	assert.Contains(t, body, "Good harvest")

	require.Len(t, svc.yieldReqs, 1)
	assert.Equal(t, domain.SeasonKharif, svc.yieldReqs[0].Season)
	assert.Equal(t, 100.0, svc.yieldReqs[0].Area)
}

func TestPostYield_ServiceDetailShown(t *testing.T) {
	svc := &stubService{yieldErr: &domain.ServiceError{Status: 400, Detail: "Unknown district"}}
	h := newTestServer(t, svc, time.Minute)

	rec := postForm(h, "/yield", validYield())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown district")
	assert.NotContains(t, rec.Body.String(), "Prediction Result")
}

func TestPostYield_FallbackWhenNoDetail(t *testing.T) {
	svc := &stubService{yieldErr: &domain.ServiceError{Status: 500}}
	h := newTestServer(t, svc, time.Minute)

	rec := postForm(h, "/yield", validYield())

	assert.Contains(t, rec.Body.String(), domain.YieldFallbackMessage)
}

func TestPostYield_InvalidFormNotSubmitted(t *testing.T) {
	svc := &stubService{}
	h := newTestServer(t, svc, time.Minute)

	vals := validYield()
	vals.Set("area", "-5")
	vals.Del("season")

	rec := postForm(h, "/yield", vals)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please select an item in the list.")
	assert.Contains(t, body, "Value must be greater than or equal to 0.")
	assert.Contains(t, body, `value="Punjab"`)
	assert.Empty(t, svc.yieldReqs)
}

func TestPostRecommendation_Success(t *testing.T) {
	svc := &stubService{rec: domain.RecommendationResult{RecommendedCrop: "rice", Confidence: 87.25, Message: "Best fit"}}
	h := newTestServer(t, svc, time.Minute)

	rec := postForm(h, "/recommendation", validRecommendation())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "rice")
	assert.Contains(t, body, "87.3%")
	assert.Contains(t, body, "Best fit")
	require.Len(t, svc.recReqs, 1)
	assert.Equal(t, 6.5, svc.recReqs[0].PH)
}

func TestPostRecommendation_OutOfRange(t *testing.T) {
	svc := &stubService{}
	h := newTestServer(t, svc, time.Minute)

	vals := validRecommendation()
	vals.Set("ph", "15")
	rec := postForm(h, "/recommendation", vals)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Value must be less than or equal to 14.")
	assert.Empty(t, svc.recReqs)
}

func TestPostRecommendation_TransportError(t *testing.T) {
	svc := &stubService{recErr: errors.New("dial tcp: connection refused")}
	h := newTestServer(t, svc, time.Minute)

	rec := postForm(h, "/recommendation", validRecommendation())

	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestPostYield_ClientGoneWritesNothing(t *testing.T) {
	svc := &stubService{}
	h := newTestServer(t, svc, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/yield", strings.NewReader(validYield().Encode())).WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Body.String())
}

func TestAPIOptions_CachedWithinTTL(t *testing.T) {
	svc := &stubService{opts: domain.Options{States: []string{"Punjab"}, Seasons: []string{"Kharif"}}}
	h := newTestServer(t, svc, time.Minute)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
		req.Header.Set("Origin", "http://example.test")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.test", rec.Header().Get("Access-Control-Allow-Origin"))

		var got optionsJSON
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []string{"Punjab"}, got.States)
		assert.Equal(t, []string{}, got.Crops)
	}
	assert.Equal(t, 1, svc.optCalls)
}

func TestAPIOptions_NoCacheWhenTTLZero(t *testing.T) {
	svc := &stubService{}
	h := newTestServer(t, svc, 0)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/options", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, svc.optCalls)
}

func TestAPIOptions_UnknownOriginNotAllowed(t *testing.T) {
	h := newTestServer(t, &stubService{}, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIOptions_ServiceDown(t *testing.T) {
	svc := &stubService{optsErr: errors.New("connection refused")}
	h := newTestServer(t, svc, time.Minute)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/options", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, optionsUnavailableMessage, got["error"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestIndex_StalledOptionsDoNotHoldPage(t *testing.T) {
	svc := &stubService{blockOptions: true}
	srv := newServer(t, svc, time.Minute)
	srv.optionsTimeout = 50 * time.Millisecond
	h := srv.Handler()

	for i := 0; i < 2; i++ {
		start := time.Now()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Less(t, time.Since(start), time.Second)
		assert.Contains(t, rec.Body.String(), `action="/yield"`)
		assert.NotContains(t, rec.Body.String(), `<option value="Punjab">`)
	}
	assert.Equal(t, 1, svc.optionCalls(), "failed lookup must be remembered")
}

func TestPostYield_SubmitsBeforeLookingUpSuggestions(t *testing.T) {
	svc := &stubService{
		blockOptions: true,
		yield:        domain.YieldResult{Prediction: 4, Unit: "tonnes/hectare"},
	}
	srv := newServer(t, svc, time.Minute)
	srv.optionsTimeout = 50 * time.Millisecond

	rec := postForm(srv.Handler(), "/yield", validYield())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "4.00")
	svc.mu.Lock()
	defer svc.mu.Unlock()
	require.NotEmpty(t, svc.calls)
	assert.Equal(t, "predict", svc.calls[0])
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, &stubService{}, time.Minute)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	srv := New(domain.ServeConfig{}, Deps{})
	h := recoveryMiddleware(srv.log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestPostYield_NotConfigured(t *testing.T) {
	srv := New(domain.ServeConfig{}, Deps{})

	rec := postForm(srv.Handler(), "/yield", validYield())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.GenericFailureMessage)
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	srv := New(domain.ServeConfig{Addr: "127.0.0.1:0"}, Deps{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
