package predictclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

type captured struct {
	method string
	path   string
	header http.Header
	body   map[string]any
}

func newServer(t *testing.T, status int, respBody string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			got.method = r.Method
			got.path = r.URL.Path
			got.header = r.Header.Clone()
			b, _ := io.ReadAll(r.Body)
			if len(b) > 0 {
				_ = json.Unmarshal(b, &got.body)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, base string) *Client {
	t.Helper()
	c, err := FromConfig(domain.APIConfig{
		BaseURL:      base,
		YieldPath:    domain.DefaultYieldPath,
		RecommendURL: "{{base_url}}/recommend-crop",
	}, WithRequestID(func() string { return "req-1" }))
	require.NoError(t, err)
	return c
}

func TestPredictYieldSendsFormAndDecodesResult(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, `{"prediction":2.5,"unit":"tonnes/hectare","message":"ok"}`, &got)
	c := newClient(t, srv.URL)

	res, err := c.PredictYield(context.Background(), domain.YieldRequest{
		State:    "Punjab",
		District: "Ludhiana",
		Season:   domain.SeasonKharif,
		Crop:     "Rice",
		Area:     100,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.YieldResult{Prediction: 2.5, Unit: "tonnes/hectare", Message: "ok"}, res)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/predict-yield", got.path)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.header.Get("Accept"))
	assert.Equal(t, "req-1", got.header.Get("X-Request-ID"))

	want := map[string]any{
		"state":    "Punjab",
		"district": "Ludhiana",
		"season":   "Kharif",
		"crop":     "Rice",
		"area":     float64(100),
	}
	if diff := cmp.Diff(want, got.body); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestPredictYieldSendsNullForUnparseableArea(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, `{"prediction":1,"unit":"t/ha"}`, &got)
	c := newClient(t, srv.URL)

	_, err := c.PredictYield(context.Background(), domain.YieldRequest{Crop: "Rice", Area: math.NaN()})
	require.NoError(t, err)

	v, ok := got.body["area"]
	require.True(t, ok, "area key must be present")
	assert.Nil(t, v)
}

func TestRecommendCropUsesRenderedURL(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, `{"recommended_crop":"Rice","confidence":72.3,"message":"m"}`, &got)
	c := newClient(t, srv.URL)

	res, err := c.RecommendCrop(context.Background(), domain.RecommendationRequest{
		Nitrogen: 90, Phosphorus: 42, Potassium: 43,
		Temperature: 20.8, Humidity: 82, PH: 6.5, Rainfall: 202.9,
	})
	require.NoError(t, err)

	assert.Equal(t, "/recommend-crop", got.path)
	assert.Equal(t, "Rice", res.RecommendedCrop)
	assert.InDelta(t, 72.3, res.Confidence, 1e-9)
	assert.Equal(t, float64(6.5), got.body["ph"])
	assert.Len(t, got.body, 7)
}

func TestServiceErrorCarriesDetail(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest, `{"detail":"Unknown crop"}`, nil)
	c := newClient(t, srv.URL)

	_, err := c.PredictYield(context.Background(), domain.YieldRequest{Crop: "Moon"})
	require.Error(t, err)

	var se *domain.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "Unknown crop", se.Detail)

	out := domain.Resolve(domain.YieldResult{}, err, domain.YieldFallbackMessage)
	f, _ := out.Failure()
	assert.Equal(t, "Unknown crop", f.Message)
}

func TestServiceErrorWithoutDetailFallsBack(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `<html>oops</html>`, nil)
	c := newClient(t, srv.URL)

	_, err := c.RecommendCrop(context.Background(), domain.RecommendationRequest{})
	var se *domain.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Empty(t, se.Detail)

	out := domain.Resolve(domain.RecommendationResult{}, err, domain.RecommendationFallbackMessage)
	f, _ := out.Failure()
	assert.Equal(t, domain.RecommendationFallbackMessage, f.Message)
}

func TestMalformedSuccessBodyIsDecodeError(t *testing.T) {
	srv := newServer(t, http.StatusOK, `not json`, nil)
	c := newClient(t, srv.URL)

	_, err := c.PredictYield(context.Background(), domain.YieldRequest{})
	var de *domain.DecodeError
	require.True(t, errors.As(err, &de))
}

func TestTransportErrorPassesThrough(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`, nil)
	c := newClient(t, srv.URL)
	srv.Close()

	_, err := c.PredictYield(context.Background(), domain.YieldRequest{})
	require.Error(t, err)

	var se *domain.ServiceError
	assert.False(t, errors.As(err, &se))
}

func TestCanceledContext(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`, nil)
	c := newClient(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Options(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptionsAndHealth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/options", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"states":["Punjab"],"districts":["Ludhiana"],"seasons":["Kharif"],"crops":["Rice"]}`))
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"healthy","models_loaded":{"yield":true,"recommendation":false}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := newClient(t, srv.URL)

	opts, err := c.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Options{
		States:    []string{"Punjab"},
		Districts: []string{"Ludhiana"},
		Seasons:   []string{"Kharif"},
		Crops:     []string{"Rice"},
	}, opts)

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, h.Healthy())
	assert.Equal(t, []string{"recommendation"}, h.MissingModels())
}
