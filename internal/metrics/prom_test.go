package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream(t *testing.T) {
	m := New()

	m.ObserveUpstream("generate", OutcomeSuccess, 10*time.Millisecond)
	m.ObserveUpstream("generate", OutcomeError, 5*time.Millisecond)
	m.ObserveUpstream("generate", OutcomeError, 5*time.Millisecond)

	if got := testutil.ToFloat64(m.upstreamCalls.WithLabelValues("generate", OutcomeError)); got != 2 {
		t.Errorf("Expected 2 failed generate calls, got %v", got)
	}
	if got := testutil.ToFloat64(m.upstreamCalls.WithLabelValues("generate", OutcomeSuccess)); got != 1 {
		t.Errorf("Expected 1 successful generate call, got %v", got)
	}
}

func TestHandler_ExposesCounters(t *testing.T) {
	m := New()
	m.ObserveRequest("/db-test", 200, time.Millisecond)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(recorder.Body)
	if !strings.Contains(string(body), `proxy_http_requests_total{code="200",route="/db-test"} 1`) {
		t.Errorf("Expected request counter in exposition, got:\n%s", body)
	}
}
