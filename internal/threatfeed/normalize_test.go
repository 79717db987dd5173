package threatfeed

import (
	"fmt"
	"strings"
	"testing"
)

const sampleResponse = `{
	"vulnerabilities": [
		{
			"cve": {
				"id": "CVE-2025-1111",
				"descriptions": [
					{"lang": "en", "value": "SQL injection in the login form allows remote attackers to read the user table"}
				],
				"metrics": {
					"cvssMetricV31": [
						{"cvssData": {"baseScore": 9.8, "baseSeverity": "Critical"}}
					]
				},
				"published": "2025-05-01T10:00:00.000",
				"references": [
					{"url": "https://example.com/a", "source": "vendor"},
					{"url": "https://example.com/b", "source": "NVD"},
					{"url": "https://example.com/c", "source": "NVD"},
					{"url": "https://example.com/d", "source": "NVD"}
				]
			}
		},
		{
			"cve": {
				"id": "CVE-2025-2222",
				"descriptions": [
					{"lang": "en", "value": "Metric block only has the older scoring scheme"}
				],
				"metrics": {
					"cvssMetricV2": [
						{"cvssData": {"baseScore": 5.0}, "baseSeverity": "MEDIUM"}
					]
				},
				"published": "2025-05-02T10:00:00.000",
				"references": []
			}
		},
		{
			"cve": {
				"id": "CVE-2025-3333",
				"descriptions": [],
				"metrics": {},
				"references": []
			}
		}
	]
}`

func TestNormalizeResponse(t *testing.T) {
	records := normalizeResponse([]byte(sampleResponse), 50)

	if len(records) != 3 {
		t.Fatalf("normalized %d records, want 3", len(records))
	}

	first := records[0]
	if first.ID != "CVE-2025-1111" {
		t.Errorf("ID = %s, want CVE-2025-1111", first.ID)
	}
	if first.CVSSScore != 9.8 {
		t.Errorf("CVSSScore = %v, want 9.8", first.CVSSScore)
	}
	if first.Severity != "CRITICAL" {
		t.Errorf("Severity = %s, want CRITICAL (upper-cased)", first.Severity)
	}
	if len(first.References) != 3 {
		t.Errorf("kept %d references, want at most 3", len(first.References))
	}

	// V2-only entry uses the metric-level baseSeverity
	second := records[1]
	if second.CVSSScore != 5.0 || second.Severity != "MEDIUM" {
		t.Errorf("v2 entry = (%v, %s), want (5.0, MEDIUM)", second.CVSSScore, second.Severity)
	}

	// Entry without severity data is kept, not dropped
	third := records[2]
	if third.Severity != "UNKNOWN" || third.CVSSScore != 0.0 {
		t.Errorf("bare entry = (%v, %s), want (0.0, UNKNOWN)", third.CVSSScore, third.Severity)
	}
}

func TestNormalizeResponseRespectsLimit(t *testing.T) {
	records := normalizeResponse([]byte(sampleResponse), 2)
	if len(records) != 2 {
		t.Errorf("normalized %d records, want 2", len(records))
	}
}

func TestNormalizeTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("a", 400)
	body := fmt.Sprintf(`{"vulnerabilities":[{"cve":{"id":"CVE-2025-4444","descriptions":[{"lang":"en","value":"%s"}]}}]}`, long)

	records := normalizeResponse([]byte(body), 10)
	if len(records) != 1 {
		t.Fatalf("normalized %d records, want 1", len(records))
	}

	desc := records[0].Description
	if !strings.HasSuffix(desc, "...") {
		t.Error("long description should end with ellipsis marker")
	}
	if len([]rune(desc)) != 303 {
		t.Errorf("description length = %d, want 300 + ellipsis", len([]rune(desc)))
	}
}

func TestNormalizePrefersNewerMetrics(t *testing.T) {
	body := `{"vulnerabilities":[{"cve":{
		"id": "CVE-2025-5555",
		"descriptions": [{"lang": "en", "value": "both metric versions present"}],
		"metrics": {
			"cvssMetricV31": [{"cvssData": {"baseScore": 8.1, "baseSeverity": "HIGH"}}],
			"cvssMetricV2": [{"cvssData": {"baseScore": 4.0}, "baseSeverity": "MEDIUM"}]
		}
	}}]}`

	records := normalizeResponse([]byte(body), 10)
	if records[0].CVSSScore != 8.1 || records[0].Severity != "HIGH" {
		t.Errorf("got (%v, %s), want the v3.1 metrics (8.1, HIGH)",
			records[0].CVSSScore, records[0].Severity)
	}
}

func TestNormalizeDerivesScoreFromVector(t *testing.T) {
	body := `{"vulnerabilities":[{"cve":{
		"id": "CVE-2025-6666",
		"descriptions": [{"lang": "en", "value": "vector string without a numeric base score"}],
		"metrics": {
			"cvssMetricV31": [{"cvssData": {"vectorString": "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", "baseSeverity": "CRITICAL"}}]
		}
	}}]}`

	records := normalizeResponse([]byte(body), 10)
	if records[0].CVSSScore != 9.8 {
		t.Errorf("CVSSScore = %v, want 9.8 derived from the vector", records[0].CVSSScore)
	}
	if records[0].Severity != "CRITICAL" {
		t.Errorf("Severity = %s, want CRITICAL", records[0].Severity)
	}
}
