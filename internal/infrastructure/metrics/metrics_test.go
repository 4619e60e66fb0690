package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordHTTPRequest("GET", "/api/search", "200", 0.01)
	m.RecordHTTPRequest("GET", "/api/search", "200", 0.02)
	m.RecordHTTPRequest("GET", "/api/feed", "401", 0.001)

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/search", "200"))
	if got != 2 {
		t.Fatalf("expected 2 search requests, got %v", got)
	}

	got = testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/feed", "401"))
	if got != 1 {
		t.Fatalf("expected 1 feed request, got %v", got)
	}
}

func TestRecordStreamStatusEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordStreamStatusEvent()
	m.RecordStreamStatusEvent()
	m.RecordStreamStatusError()

	if got := testutil.ToFloat64(m.StreamStatusEvents); got != 2 {
		t.Fatalf("expected 2 events, got %v", got)
	}
	if got := testutil.ToFloat64(m.StreamStatusErrors); got != 1 {
		t.Fatalf("expected 1 error, got %v", got)
	}
}

func TestSeparateRegistries(t *testing.T) {
	m1 := NewMetrics(prometheus.NewRegistry())
	m2 := NewMetrics(prometheus.NewRegistry())

	m1.RecordStreamStatusEvent()

	if got := testutil.ToFloat64(m2.StreamStatusEvents); got != 0 {
		t.Fatalf("expected isolated registries, got %v", got)
	}
}
