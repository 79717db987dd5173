// Package tools serves the static security tools directory: a flat embedded
// dataset with category and keyword filtering.
package tools

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/riskdigest/digest-backend/model"
)

//go:embed tools.json
var toolsJSON []byte

// Directory holds the immutable tools dataset
type Directory struct {
	tools []model.Tool
}

// NewDirectory loads the embedded dataset
func NewDirectory() (*Directory, error) {
	var tools []model.Tool
	if err := json.Unmarshal(toolsJSON, &tools); err != nil {
		return nil, fmt.Errorf("failed to parse tools.json: %w", err)
	}
	return &Directory{tools: tools}, nil
}

// All returns every tool in the dataset
func (d *Directory) All() []model.Tool {
	return d.tools
}

// ByID returns the tool with the given id, or nil
func (d *Directory) ByID(id string) *model.Tool {
	for i := range d.tools {
		if d.tools[i].ID == id {
			return &d.tools[i]
		}
	}
	return nil
}

// Categories returns the sorted set of distinct tool categories
func (d *Directory) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, tool := range d.tools {
		if !seen[tool.Category] {
			seen[tool.Category] = true
			categories = append(categories, tool.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Filter narrows the dataset by category and a case-insensitive search term
// matched against name, description, and tags. "All" and empty category mean
// no category filter.
func (d *Directory) Filter(category, search string) []model.Tool {
	filtered := make([]model.Tool, 0, len(d.tools))
	searchLower := strings.ToLower(search)

	for _, tool := range d.tools {
		if category != "" && category != "All" && tool.Category != category {
			continue
		}
		if searchLower != "" && !matchesSearch(tool, searchLower) {
			continue
		}
		filtered = append(filtered, tool)
	}
	return filtered
}

func matchesSearch(tool model.Tool, searchLower string) bool {
	if strings.Contains(strings.ToLower(tool.Name), searchLower) {
		return true
	}
	if strings.Contains(strings.ToLower(tool.Description), searchLower) {
		return true
	}
	for _, tag := range tool.Tags {
		if strings.Contains(strings.ToLower(tag), searchLower) {
			return true
		}
	}
	return false
}
