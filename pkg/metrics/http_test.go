package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestObserveRequestRecordsSamples(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/products", "200", 25*time.Millisecond)
	m.ObserveRequest("GET", "/api/products", "200", 30*time.Millisecond)
	m.ObserveRequest("POST", "", "400", time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("expected 2 metric families, got %d", len(families))
	}

	for _, fam := range families {
		if fam.GetName() == "http_requests_total" {
			var total float64
			for _, metric := range fam.GetMetric() {
				total += metric.GetCounter().GetValue()
				for _, label := range metric.GetLabel() {
					if label.GetName() == "route" && label.GetValue() == "" {
						t.Fatal("empty route label should normalize to unknown")
					}
				}
			}
			if total != 3 {
				t.Fatalf("expected 3 requests counted, got %v", total)
			}
		}
	}
}

func TestObserveRequestNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", "200", time.Second)

	unregistered := NewHTTPMetrics(nil)
	unregistered.ObserveRequest("GET", "/", "200", time.Second)
}
