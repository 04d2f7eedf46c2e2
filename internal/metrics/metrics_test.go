package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestCollector_Lifecycle(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.FetchStarted("popular")
	c.FetchStarted("popular")
	c.FetchStarted("popular")
	if got := gaugeValue(t, c.fetchInflight.WithLabelValues("popular")); got != 3 {
		t.Errorf("inflight = %v, expected 3", got)
	}

	c.FetchFinished("popular", nil, 120*time.Millisecond)
	c.FetchFinished("popular", errors.New("boom"), time.Second)
	c.FetchDiscarded("popular")

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"success", counterValue(t, c.fetchTotal.WithLabelValues("popular", OutcomeSuccess)), 1},
		{"error", counterValue(t, c.fetchTotal.WithLabelValues("popular", OutcomeError)), 1},
		{"discarded", counterValue(t, c.fetchDiscarded.WithLabelValues("popular")), 1},
		{"inflight", gaugeValue(t, c.fetchInflight.WithLabelValues("popular")), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %v, expected %v", tt.name, tt.got, tt.expected)
		}
	}

	if n := histogramCount(t, c.fetchDuration.WithLabelValues("popular")); n != 2 {
		t.Errorf("duration samples = %d, expected 2", n)
	}
}

func TestCollector_SectionsAreIndependent(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	c.FetchStarted("top_rated")
	c.FetchFinished("top_rated", nil, time.Millisecond)

	if got := counterValue(t, c.fetchTotal.WithLabelValues("upcoming", OutcomeSuccess)); got != 0 {
		t.Errorf("upcoming success = %v, expected 0", got)
	}
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.FetchStarted("trending")
	c.FetchFinished("trending", nil, 10*time.Millisecond)

	srv := httptest.NewServer(Router(reg))
	defer srv.Close()

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/metrics", http.StatusOK, `jetflix_fetch_total{outcome="success",section="trending"} 1`},
		{"/healthz", http.StatusOK, "ok"},
		{"/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != tt.status {
			t.Errorf("GET %s status = %d, expected %d", tt.path, resp.StatusCode, tt.status)
		}
		if tt.contains != "" && !strings.Contains(string(body), tt.contains) {
			t.Errorf("GET %s body missing %q:\n%s", tt.path, tt.contains, body)
		}
	}
}
