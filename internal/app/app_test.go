package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockdash/config"
	"github.com/guttosm/stockdash/internal/provider"
)

// stubHistory avoids real network calls during wiring tests.
type stubHistory struct{ pingErr error }

func (s *stubHistory) FetchDailyHistory(_ context.Context, tickers []string, _, _ time.Time) (*provider.Batch, error) {
	b := provider.NewBatch()
	for _, t := range tickers {
		b.AddError(t, provider.ErrNoData)
	}
	return b, nil
}

func (s *stubHistory) Ping(context.Context) error { return s.pingErr }

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()

	orig := providerCtor
	providerCtor = func(config.Config) provider.History { return &stubHistory{} }
	defer func() { providerCtor = orig }()

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("init error: %v", err)
	}
	defer cleanup()

	// Health endpoints registered and answering.
	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}

	// API route wired; all tickers unresolved means 404 with a clean error body.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/prices?tickers=NOPE&start=2024-01-01&end=2024-06-30", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unresolved tickers, got %d", w.Code)
	}
}
