package assessment

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/riskdigest/digest-backend/model"
)

//go:embed questions.yaml
var questionsYAML []byte

//go:embed benchmarks.yaml
var benchmarksYAML []byte

type questionFile struct {
	Categories []model.QuestionCategory `yaml:"categories"`
}

type benchmarkFile struct {
	Benchmarks map[string]model.BenchmarkProfile `yaml:"benchmarks"`
}

// loadQuestions decodes the embedded questionnaire, preserving category order
func loadQuestions() ([]model.QuestionCategory, error) {
	var file questionFile
	if err := yaml.Unmarshal(questionsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse questions.yaml: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("questions.yaml contains no categories")
	}
	return file.Categories, nil
}

// loadBenchmarks decodes the embedded benchmark table
func loadBenchmarks() (map[string]model.BenchmarkProfile, error) {
	var file benchmarkFile
	if err := yaml.Unmarshal(benchmarksYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse benchmarks.yaml: %w", err)
	}
	if _, ok := file.Benchmarks[fallbackIndustry]; !ok {
		return nil, fmt.Errorf("benchmarks.yaml is missing the %q profile", fallbackIndustry)
	}
	return file.Benchmarks, nil
}
