// Package threatfeed fetches CVE records from the NVD feed, normalizes them
// into canonical records, caches them per query window, and derives the
// severity and category distributions used by the dashboard charts.
package threatfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/riskdigest/digest-backend/model"
	"github.com/riskdigest/digest-backend/util"
)

const (
	defaultBaseURL = "https://services.nvd.nist.gov/rest/json/cves/2.0"

	// CacheTTL is how long a fetched window stays valid
	CacheTTL = 3600 * time.Second

	// fetchTimeout bounds one live fetch including retries
	fetchTimeout = 30 * time.Second

	// distributionLimit is the record budget used for chart distributions
	distributionLimit = 200
)

// Source records where a fetch result came from. The public contract always
// returns a usable record list; Source exists for observability and tests.
type Source int

// Fetch result provenance
const (
	SourceCache Source = iota
	SourceLive
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceLive:
		return "live"
	default:
		return "fallback"
	}
}

// Service owns the NVD client and the record cache
type Service struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *Cache
	logger  *zap.Logger
}

// NewService creates a threat feed service. An empty apiKey is not fatal; the
// feed degrades to unauthenticated rate limits. The cache is injected so
// tests can drive it with a fake clock.
func NewService(apiKey string, cache *Cache, logger *zap.Logger) *Service {
	return &Service{
		baseURL: util.GetEnvDefault("NVD_API_URL", defaultBaseURL),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: fetchTimeout},
		cache:   cache,
		logger:  logger,
	}
}

// FetchRecentCVEs returns up to limit normalized records published within the
// last days. It never returns an error: upstream failures substitute the
// fallback sample set.
func (s *Service) FetchRecentCVEs(ctx context.Context, days, limit int) []model.VulnerabilityRecord {
	records, _ := s.fetch(ctx, days, limit)
	return records
}

// GetSeverityDistribution derives the severity chart data for the window.
// It is computed from the same record set the tables render, so the two
// views cannot drift apart.
func (s *Service) GetSeverityDistribution(ctx context.Context, days int) model.SeverityDistribution {
	records, _ := s.fetch(ctx, days, distributionLimit)
	return ClassifySeverity(records)
}

// GetCategoryDistribution derives the category chart data for the window
func (s *Service) GetCategoryDistribution(ctx context.Context, days int) model.CategoryDistribution {
	records, _ := s.fetch(ctx, days, distributionLimit)
	return ClassifyCategory(records)
}

// fetch resolves a window through the cache, falling back to a live fetch
// and, when that fails, the sample record pool
func (s *Service) fetch(ctx context.Context, days, limit int) ([]model.VulnerabilityRecord, Source) {
	if cached, ok := s.cache.Get(days, limit); ok {
		return cached, SourceCache
	}

	records, err := s.fetchLive(ctx, days, limit)
	if err != nil {
		s.logger.Sugar().Warnf("Error fetching CVEs, serving sample data: %v", err)
		return sampleRecords(limit), SourceFallback
	}

	s.cache.Put(days, limit, records)
	return records, SourceLive
}

// fetchLive queries the NVD API for the inclusive date window ending now and
// starting days earlier, retrying transient failures within the fetch timeout
func (s *Service) fetchLive(ctx context.Context, days, limit int) ([]model.VulnerabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	params := url.Values{}
	params.Set("pubStartDate", startDate.Format("2006-01-02")+"T00:00:00.000")
	params.Set("pubEndDate", endDate.Format("2006-01-02")+"T23:59:59.999")
	params.Set("resultsPerPage", strconv.Itoa(limit))

	var records []model.VulnerabilityRecord

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	err := backoff.RetryNotify(func() error {
		body, err := s.doRequest(ctx, params)
		if err != nil {
			return err
		}
		if !gjson.ValidBytes(body) {
			return fmt.Errorf("invalid NVD response payload")
		}
		records = normalizeResponse(body, limit)
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, 2), ctx), func(err error, _ time.Duration) {
		s.logger.Sugar().Warnf("Retrying NVD fetch: %v", err)
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Service) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create NVD request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("apiKey", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NVD request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NVD returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read NVD response: %w", err)
	}
	return body, nil
}
