package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resabot/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/api/chat", "POST", 200, 12*time.Millisecond)
	observability.ObserveIntent("greeting")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "resabot_http_requests_total") {
		t.Fatalf("expected resabot_http_requests_total in output")
	}
	if !strings.Contains(out, `resabot_intents_total{intent="greeting"}`) {
		t.Fatalf("expected intent counter in output")
	}
}
