package threatfeed

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/riskdigest/digest-backend/model"
	"github.com/riskdigest/digest-backend/util"
)

const (
	maxDescriptionLen = 300
	maxReferences     = 3
)

// cvssMetricKeys lists the NVD metric blocks in probe order, most recent
// scoring standard first. The first block with data wins.
var cvssMetricKeys = []string{"cvssMetricV31", "cvssMetricV30", "cvssMetricV2"}

// normalizeResponse converts a raw NVD 2.0 response body into canonical
// records. Missing fields never drop an entry; they default per field.
func normalizeResponse(body []byte, limit int) []model.VulnerabilityRecord {
	records := []model.VulnerabilityRecord{}

	items := gjson.GetBytes(body, "vulnerabilities").Array()
	for _, item := range items {
		if len(records) >= limit {
			break
		}
		records = append(records, normalizeEntry(item.Get("cve")))
	}

	return records
}

// normalizeEntry maps one NVD "cve" object onto a VulnerabilityRecord
func normalizeEntry(cve gjson.Result) model.VulnerabilityRecord {
	description := cve.Get("descriptions.0.value").String()

	score, severity := extractSeverity(cve.Get("metrics"))

	references := []model.Reference{}
	for i, ref := range cve.Get("references").Array() {
		if i >= maxReferences {
			break
		}
		references = append(references, model.Reference{
			URL:    ref.Get("url").String(),
			Source: ref.Get("source").String(),
		})
	}

	return model.VulnerabilityRecord{
		ID:          cve.Get("id").String(),
		Description: util.TruncateDescription(description, maxDescriptionLen),
		CVSSScore:   score,
		Severity:    strings.ToUpper(severity),
		Published:   cve.Get("published").String(),
		References:  references,
	}
}

// extractSeverity probes the metric blocks in priority order and returns the
// first usable (score, tier) pair. Entries without usable severity data yield
// (0.0, UNKNOWN) rather than being dropped.
func extractSeverity(metrics gjson.Result) (float64, string) {
	for _, key := range cvssMetricKeys {
		blocks := metrics.Get(key).Array()
		if len(blocks) == 0 {
			continue
		}
		metric := blocks[0]
		cvssData := metric.Get("cvssData")

		score := cvssData.Get("baseScore").Float()
		if score == 0 {
			// Some feeds carry only the vector; derive the score from it.
			score = util.CalculateCVSSScore(cvssData.Get("vectorString").String())
		}

		severity := cvssData.Get("baseSeverity").String()
		if severity == "" {
			severity = metric.Get("baseSeverity").String()
		}
		if severity == "" {
			severity = util.GetSeverityRating(score)
		}

		return score, severity
	}
	return 0.0, "UNKNOWN"
}
