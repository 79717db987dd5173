package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	scoring "github.com/riskdigest/digest-backend/internal/assessment"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	calc, err := scoring.NewCalculator()
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	app := fiber.New()
	app.Get("/api/v1/assessment/questions", GetQuestions(calc))
	app.Post("/api/v1/assessment/score", PostScore(calc))
	return app
}

func TestGetQuestions(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessment/questions", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Categories []struct {
			Key       string `json:"key"`
			Questions []struct {
				ID       string `json:"id"`
				Question string `json:"question"`
				Weight   int    `json:"weight"`
			} `json:"questions"`
		} `json:"categories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Categories) != 6 {
		t.Errorf("got %d categories, want 6", len(body.Categories))
	}
}

func TestPostScore(t *testing.T) {
	app := newTestApp(t)

	payload := `{"answers": {"ac1": true, "ac2": true}, "industry": "fintech"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessment/score", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		OverallScore   float64            `json:"overall_score"`
		CategoryScores map[string]float64 `json:"category_scores"`
		Grade          string             `json:"grade"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := result.CategoryScores["access_control"]; got != 58.1 {
		t.Errorf("access_control = %v, want 58.1", got)
	}
	if result.Grade == "" {
		t.Error("grade missing from response")
	}
}

func TestPostScoreRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"answers": `},
		{name: "missing answers", body: `{"industry": "saas"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/assessment/score", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
