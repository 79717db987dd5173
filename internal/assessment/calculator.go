// Package assessment implements the security posture scoring engine:
// weighted category scores from questionnaire answers, industry benchmark
// comparison, letter grades, and prioritized recommendations.
package assessment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskdigest/digest-backend/model"
	"github.com/riskdigest/digest-backend/util"
)

const fallbackIndustry = "general"

// priorityRank orders recommendations HIGH before MEDIUM before LOW
var priorityRank = map[string]int{"HIGH": 0, "MEDIUM": 1, "LOW": 2}

// Calculator scores questionnaire submissions against the static question
// and benchmark tables. The tables are read-only after construction, so one
// Calculator is safe for concurrent use.
type Calculator struct {
	categories []model.QuestionCategory
	benchmarks map[string]model.BenchmarkProfile
}

// NewCalculator loads the embedded question and benchmark tables
func NewCalculator() (*Calculator, error) {
	categories, err := loadQuestions()
	if err != nil {
		return nil, err
	}
	benchmarks, err := loadBenchmarks()
	if err != nil {
		return nil, err
	}
	return &Calculator{
		categories: categories,
		benchmarks: benchmarks,
	}, nil
}

// Questions returns all assessment categories in declaration order
func (c *Calculator) Questions() []model.QuestionCategory {
	return c.categories
}

// BenchmarkFor returns the benchmark profile for an industry. The lookup is
// case-insensitive and falls back to the general profile; it never fails.
func (c *Calculator) BenchmarkFor(industry string) model.BenchmarkProfile {
	if profile, ok := c.benchmarks[strings.ToLower(industry)]; ok {
		return profile
	}
	return c.benchmarks[fallbackIndustry]
}

// CalculateScore converts an answer set into category scores, an overall
// score, a benchmark comparison, recommendations, and a letter grade.
// Question ids missing from the answer map count as false.
func (c *Calculator) CalculateScore(req model.AssessmentRequest) model.ScoreResult {
	categoryScores := make(map[string]float64, len(c.categories))
	for _, category := range c.categories {
		totalWeight := 0
		earnedWeight := 0
		for _, q := range category.Questions {
			totalWeight += q.Weight
			if req.Answers[q.ID] {
				earnedWeight += q.Weight
			}
		}

		score := 0.0
		if totalWeight > 0 {
			score = util.Round1(float64(earnedWeight) / float64(totalWeight) * 100)
		}
		categoryScores[category.Key] = score
	}

	// Overall score is the plain mean of category percentages: every
	// category counts equally regardless of its total question weight.
	sum := 0.0
	for _, category := range c.categories {
		sum += categoryScores[category.Key]
	}
	overall := util.Round1(sum / float64(len(c.categories)))

	benchmark := c.BenchmarkFor(req.Industry)

	return model.ScoreResult{
		OverallScore:    overall,
		CategoryScores:  categoryScores,
		RadarData:       c.radarData(categoryScores, benchmark),
		Benchmark:       benchmark,
		Recommendations: c.recommendations(categoryScores),
		Grade:           gradeFor(overall),
	}
}

// radarData formats scores and benchmark values in category order for the
// radar chart
func (c *Calculator) radarData(scores map[string]float64, benchmark model.BenchmarkProfile) model.RadarData {
	data := model.RadarData{
		Labels:    make([]string, len(c.categories)),
		Scores:    make([]float64, len(c.categories)),
		Benchmark: make([]int, len(c.categories)),
	}
	for i, category := range c.categories {
		data.Labels[i] = util.TitleFromKey(category.Key)
		data.Scores[i] = scores[category.Key]
		data.Benchmark[i] = benchmark[category.Key]
	}
	return data
}

// recommendations classifies each category by fixed thresholds and sorts the
// result by priority. The sort is stable so equal priorities keep category
// declaration order.
func (c *Calculator) recommendations(scores map[string]float64) []model.Recommendation {
	recommendations := make([]model.Recommendation, 0, len(c.categories))

	for _, category := range c.categories {
		score := scores[category.Key]
		title := util.TitleFromKey(category.Key)

		var priority, message string
		switch {
		case score < 60:
			priority = "HIGH"
			message = fmt.Sprintf("Critical gaps in %s. Immediate action required.", title)
		case score < 75:
			priority = "MEDIUM"
			message = fmt.Sprintf("Improvement needed in %s.", title)
		default:
			priority = "LOW"
			message = fmt.Sprintf("%s is well-managed. Continue monitoring.", title)
		}

		recommendations = append(recommendations, model.Recommendation{
			Category: title,
			Score:    score,
			Priority: priority,
			Message:  message,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return priorityRank[recommendations[i].Priority] < priorityRank[recommendations[j].Priority]
	})

	return recommendations
}

// gradeFor maps an overall score to a letter grade with inclusive lower bounds
func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
