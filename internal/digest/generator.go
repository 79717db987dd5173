// Package digest generates and serves the daily risk digest: a date-seeded
// selection of security tips, checks, and patterns from a fixed item pool.
package digest

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/riskdigest/digest-backend/model"
)

//go:embed pool.yaml
var poolYAML []byte

type poolFile struct {
	Headlines []string           `yaml:"headlines"`
	Items     []model.DigestItem `yaml:"items"`
}

// Generator produces deterministic digests from the embedded item pool
type Generator struct {
	headlines []string
	items     []model.DigestItem
}

// NewGenerator loads the embedded pool
func NewGenerator() (*Generator, error) {
	var pool poolFile
	if err := yaml.Unmarshal(poolYAML, &pool); err != nil {
		return nil, fmt.Errorf("failed to parse pool.yaml: %w", err)
	}
	if len(pool.Items) < 8 || len(pool.Headlines) == 0 {
		return nil, fmt.Errorf("pool.yaml is too small: %d items, %d headlines",
			len(pool.Items), len(pool.Headlines))
	}
	return &Generator{
		headlines: pool.Headlines,
		items:     pool.Items,
	}, nil
}

// Generate builds the digest for a YYYY-MM-DD date. The random source is
// seeded from the date digits so regenerating the same day is stable.
func (g *Generator) Generate(date string) (model.Digest, error) {
	seed, err := strconv.ParseInt(strings.ReplaceAll(date, "-", ""), 10, 64)
	if err != nil {
		return model.Digest{}, fmt.Errorf("invalid digest date %q: %w", date, err)
	}
	r := rand.New(rand.NewSource(seed))

	numItems := 5 + r.Intn(4) // 5 to 8 items per day

	items := make([]model.DigestItem, 0, numItems)
	for _, idx := range r.Perm(len(g.items))[:numItems] {
		items = append(items, g.items[idx])
	}

	return model.Digest{
		Date:        date,
		Headline:    g.headlines[r.Intn(len(g.headlines))],
		DigestItems: items,
	}, nil
}
