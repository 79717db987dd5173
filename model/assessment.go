package model

// AssessmentQuestion is a single weighted yes/no question
type AssessmentQuestion struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Weight   int    `json:"weight" yaml:"weight"`
}

// QuestionCategory groups the questions of one assessment category.
// Category order is significant: it drives recommendation tie-breaks.
type QuestionCategory struct {
	Key       string               `json:"key" yaml:"key"`
	Questions []AssessmentQuestion `json:"questions" yaml:"questions"`
}

// BenchmarkProfile holds reference per-category scores for one industry
type BenchmarkProfile map[string]int

// AssessmentRequest is the submitted questionnaire
type AssessmentRequest struct {
	Answers     map[string]bool `json:"answers"`
	Industry    string          `json:"industry"`
	CompanySize string          `json:"company_size"`
}

// Recommendation is one prioritized improvement suggestion
type Recommendation struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Priority string  `json:"priority"`
	Message  string  `json:"message"`
}

// RadarData is the chart payload comparing user scores against the benchmark
type RadarData struct {
	Labels    []string  `json:"labels"`
	Scores    []float64 `json:"scores"`
	Benchmark []int     `json:"benchmark"`
}

// ScoreResult is the full outcome of one score calculation. It is derived
// per request and never persisted.
type ScoreResult struct {
	OverallScore    float64            `json:"overall_score"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	RadarData       RadarData          `json:"radar_data"`
	Benchmark       BenchmarkProfile   `json:"benchmark"`
	Recommendations []Recommendation   `json:"recommendations"`
	Grade           string             `json:"grade"`
}
