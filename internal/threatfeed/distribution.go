package threatfeed

import (
	"strings"

	"github.com/riskdigest/digest-backend/model"
	"github.com/riskdigest/digest-backend/util"
)

// severityTiers are the four ranked tiers reported on charts. UNKNOWN records
// count toward the total but get no label of their own.
var severityTiers = []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}

// threatCategory pairs a category label with its matching keywords
type threatCategory struct {
	Name     string
	Keywords []string
}

// threatCategories is evaluated in order with first-match-wins semantics.
// The order is a deliberate precedence rule, not an optimization target:
// a description matching both "xss" and "network" belongs to Web Application.
var threatCategories = []threatCategory{
	{Name: "Web Application", Keywords: []string{"xss", "sql injection", "csrf", "web", "http"}},
	{Name: "Network", Keywords: []string{"network", "protocol", "tcp", "udp", "dns"}},
	{Name: "Authentication", Keywords: []string{"authentication", "password", "credential", "login"}},
	{Name: "Privilege Escalation", Keywords: []string{"privilege", "escalation", "root", "admin"}},
	{Name: "Code Execution", Keywords: []string{"remote code execution", "rce", "execute", "arbitrary code"}},
	{Name: "Data Exposure", Keywords: []string{"information disclosure", "data leak", "exposure", "sensitive"}},
}

// ClassifySeverity counts records per severity tier and derives percentages.
// Percentages are 0 when there are no records, never a division by zero.
func ClassifySeverity(records []model.VulnerabilityRecord) model.SeverityDistribution {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Severity]++
	}

	total := len(records)
	data := make([]int, len(severityTiers))
	percentages := make([]float64, len(severityTiers))
	for i, tier := range severityTiers {
		data[i] = counts[tier]
		if total > 0 {
			percentages[i] = util.Round1(float64(counts[tier]) / float64(total) * 100)
		}
	}

	return model.SeverityDistribution{
		Labels:      append([]string{}, severityTiers...),
		Data:        data,
		Percentages: percentages,
		Total:       total,
	}
}

// ClassifyCategory buckets each record into the first category whose keyword
// set matches its description. Records matching nothing land in "Other".
// Each record contributes to exactly one bucket.
func ClassifyCategory(records []model.VulnerabilityRecord) model.CategoryDistribution {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[categorize(rec.Description)]++
	}

	labels := make([]string, len(threatCategories))
	data := make([]int, len(threatCategories))
	for i, cat := range threatCategories {
		labels[i] = cat.Name
		data[i] = counts[cat.Name]
	}

	return model.CategoryDistribution{
		Labels: labels,
		Data:   data,
	}
}

func categorize(description string) string {
	desc := strings.ToLower(description)
	for _, cat := range threatCategories {
		for _, keyword := range cat.Keywords {
			if strings.Contains(desc, keyword) {
				return cat.Name
			}
		}
	}
	return "Other"
}
