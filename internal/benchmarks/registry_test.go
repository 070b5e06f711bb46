package benchmarks

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDefaultsWithoutRegistry(t *testing.T) {
	registryURL = ""

	if got := NationalAvgAnnualCost(); !got.Equal(defaults[KeyNationalAvgAnnualCost]) {
		t.Fatalf("expected default national average, got %s", got)
	}
	if got := CostPerRiskPoint(); !got.Equal(defaults[KeyCostPerRiskPoint]) {
		t.Fatalf("expected default cost per risk point, got %s", got)
	}
}

func TestGetValuesFetchesAndCaches(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/benchmarks/" + KeyNationalAvgAnnualCost:
			w.Write([]byte(`{"key": "national_avg_annual_cost", "value": 6100.50}`))
		case "/benchmarks/" + KeyCostPerRiskPoint:
			w.Write([]byte(`{"key": "cost_per_risk_point", "value": 610}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	registryURL = srv.URL
	client = srv.Client()
	cache.Delete(KeyNationalAvgAnnualCost)
	cache.Delete(KeyCostPerRiskPoint)
	defer func() {
		registryURL = ""
		cache.Delete(KeyNationalAvgAnnualCost)
		cache.Delete(KeyCostPerRiskPoint)
	}()

	values := GetValues([]string{KeyNationalAvgAnnualCost, KeyCostPerRiskPoint})

	if got := values[KeyNationalAvgAnnualCost].String(); got != "6100.5" {
		t.Fatalf("expected fetched national average 6100.5, got %s", got)
	}
	if got := values[KeyCostPerRiskPoint].String(); got != "610" {
		t.Fatalf("expected fetched cost per point 610, got %s", got)
	}
	if got := requests.Load(); got != 2 {
		t.Fatalf("expected 2 registry requests, got %d", got)
	}

	// Second lookup must come from the cache.
	GetValues([]string{KeyNationalAvgAnnualCost, KeyCostPerRiskPoint})
	if got := requests.Load(); got != 2 {
		t.Fatalf("expected cached values to skip the registry, got %d requests", got)
	}
}

func TestFetchFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	registryURL = srv.URL
	client = srv.Client()
	cache.Delete(KeyNationalAvgAnnualCost)
	defer func() {
		registryURL = ""
		cache.Delete(KeyNationalAvgAnnualCost)
	}()

	if got := NationalAvgAnnualCost(); !got.Equal(defaults[KeyNationalAvgAnnualCost]) {
		t.Fatalf("expected fallback to default, got %s", got)
	}
}
