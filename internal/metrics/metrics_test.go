package metrics

import "testing"

func TestNewRegistersCollectors(t *testing.T) {
	m := New()
	m.RequestsTotal.WithLabelValues("GET", "/api/products", "200").Inc()
	m.RequestDuration.WithLabelValues("GET", "/api/products").Observe(0.1)
	m.OrdersPlaced.Inc()
	m.ReportsProcessed.WithLabelValues("completed").Inc()
	m.CacheHits.WithLabelValues("hit").Inc()

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather returned error: %v", err)
	}

	want := map[string]bool{
		"storefront_http_requests_total":           false,
		"storefront_http_request_duration_seconds": false,
		"storefront_orders_placed_total":           false,
		"storefront_reports_processed_total":       false,
		"storefront_cache_requests_total":          false,
	}
	for _, family := range families {
		if _, ok := want[family.GetName()]; ok {
			want[family.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("metric %s not registered", name)
		}
	}
}

func TestNewProducesIndependentRegistries(t *testing.T) {
	first := New()
	second := New()
	if first.Registry == second.Registry {
		t.Fatal("expected separate registries")
	}
}
