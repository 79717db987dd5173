package threatfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	svc := NewService("", NewCache(time.Hour), zap.NewNop())
	svc.baseURL = server.URL
	return svc, server, &calls
}

func TestFetchRecentCVEsLive(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("resultsPerPage") != "50" {
			t.Errorf("resultsPerPage = %s, want 50", q.Get("resultsPerPage"))
		}
		if q.Get("pubStartDate") == "" || q.Get("pubEndDate") == "" {
			t.Error("date window params missing")
		}
		w.Write([]byte(sampleResponse))
	})

	records := svc.FetchRecentCVEs(context.Background(), 7, 50)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].ID != "CVE-2025-1111" {
		t.Errorf("first record = %s, want CVE-2025-1111", records[0].ID)
	}
}

func TestFetchUsesCacheWithinTTL(t *testing.T) {
	svc, _, calls := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleResponse))
	})

	first, src := svc.fetch(context.Background(), 7, 50)
	if src != SourceLive {
		t.Fatalf("first fetch source = %s, want live", src)
	}

	second, src := svc.fetch(context.Background(), 7, 50)
	if src != SourceCache {
		t.Fatalf("second fetch source = %s, want cache", src)
	}
	if calls.Load() != 1 {
		t.Errorf("upstream called %d times, want 1", calls.Load())
	}
	if len(first) != len(second) || first[0].ID != second[0].ID {
		t.Error("cache hit must return identical records")
	}
}

func TestFetchDifferentWindowsFetchSeparately(t *testing.T) {
	svc, _, calls := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleResponse))
	})

	svc.FetchRecentCVEs(context.Background(), 7, 50)
	svc.FetchRecentCVEs(context.Background(), 30, 50)

	if calls.Load() != 2 {
		t.Errorf("upstream called %d times, want 2 for distinct windows", calls.Load())
	}
}

func TestFetchFallsBackOnUpstreamError(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	records, src := svc.fetch(context.Background(), 7, 4)
	if src != SourceFallback {
		t.Fatalf("source = %s, want fallback", src)
	}
	if len(records) != 4 {
		t.Errorf("got %d fallback records, want 4 (limit)", len(records))
	}

	// Fallback results are not cached, the next call retries upstream
	if _, ok := svc.cache.Get(7, 4); ok {
		t.Error("fallback data must not be cached")
	}
}

func TestFetchFallsBackOnGarbagePayload(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json at all"))
	})

	records, src := svc.fetch(context.Background(), 7, 50)
	if src != SourceFallback {
		t.Fatalf("source = %s, want fallback on unparseable payload", src)
	}
	if len(records) == 0 {
		t.Fatal("expected a usable record list")
	}
}

func TestGetSeverityDistributionFromSameRecords(t *testing.T) {
	svc, _, calls := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleResponse))
	})

	dist := svc.GetSeverityDistribution(context.Background(), 30)
	if dist.Total != 3 {
		t.Errorf("Total = %d, want 3", dist.Total)
	}

	// The category view reuses the cached record set: no second fetch
	svc.GetCategoryDistribution(context.Background(), 30)
	if calls.Load() != 1 {
		t.Errorf("upstream called %d times, want 1", calls.Load())
	}
}

func TestFallbackPoolSmallerThanLimit(t *testing.T) {
	records := sampleRecords(500)
	if len(records) != len(fallbackRecords) {
		t.Errorf("got %d records, want the whole pool (%d)", len(records), len(fallbackRecords))
	}
}
