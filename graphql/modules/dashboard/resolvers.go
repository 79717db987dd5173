// Package dashboard implements the resolvers for dashboard metrics.
package dashboard

import (
	"context"

	"github.com/riskdigest/digest-backend/internal/threatfeed"
)

// ResolveOverview summarizes the severity mix of the current window for the
// top cards
func ResolveOverview(ctx context.Context, feed *threatfeed.Service, days int) (interface{}, error) {
	dist := feed.GetSeverityDistribution(ctx, days)

	counts := make(map[string]int, len(dist.Labels))
	for i, label := range dist.Labels {
		counts[label] = dist.Data[i]
	}

	return map[string]interface{}{
		"total":    dist.Total,
		"critical": counts["CRITICAL"],
		"high":     counts["HIGH"],
		"medium":   counts["MEDIUM"],
		"low":      counts["LOW"],
	}, nil
}

// ResolveSeverityDistribution fetches the current severity breakdown
func ResolveSeverityDistribution(ctx context.Context, feed *threatfeed.Service, days int) (interface{}, error) {
	return feed.GetSeverityDistribution(ctx, days), nil
}

// ResolveCategoryDistribution fetches the current category breakdown
func ResolveCategoryDistribution(ctx context.Context, feed *threatfeed.Service, days int) (interface{}, error) {
	return feed.GetCategoryDistribution(ctx, days), nil
}

// ResolveRecentThreats fetches the normalized CVE list for the threat table
func ResolveRecentThreats(ctx context.Context, feed *threatfeed.Service, days, limit int) (interface{}, error) {
	records := feed.FetchRecentCVEs(ctx, days, limit)

	rows := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		refs := make([]map[string]interface{}, 0, len(rec.References))
		for _, ref := range rec.References {
			refs = append(refs, map[string]interface{}{
				"url":    ref.URL,
				"source": ref.Source,
			})
		}
		rows = append(rows, map[string]interface{}{
			"id":          rec.ID,
			"description": rec.Description,
			"cvss_score":  rec.CVSSScore,
			"severity":    rec.Severity,
			"published":   rec.Published,
			"references":  refs,
		})
	}
	return rows, nil
}
