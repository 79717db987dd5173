// Package model - shared data types exchanged between the services and the API layer.
package model

// Reference is a single advisory link attached to a vulnerability record
type Reference struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// VulnerabilityRecord is the canonical, normalized shape of one CVE entry.
// Records are created fresh on every upstream fetch and never mutated after
// creation; cached slices must be treated as read-only.
type VulnerabilityRecord struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	CVSSScore   float64     `json:"cvss_score"`
	Severity    string      `json:"severity"`
	Published   string      `json:"published"`
	References  []Reference `json:"references"`
}

// SeverityDistribution is the chart-ready breakdown of records by severity tier.
// Labels carry the four ranked tiers; records outside them (UNKNOWN) still
// count toward Total.
type SeverityDistribution struct {
	Labels      []string  `json:"labels"`
	Data        []int     `json:"data"`
	Percentages []float64 `json:"percentages"`
	Total       int       `json:"total"`
}

// CategoryDistribution is the chart-ready breakdown of records by threat category
type CategoryDistribution struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
