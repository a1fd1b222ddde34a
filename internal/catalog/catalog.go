package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/insight"
)

// CurrentVersion is the catalog file format version
const CurrentVersion = "1"

// Catalog is the read-only content a dashboard runs on: rule tables,
// authored insights and the KPI boards.
type Catalog struct {
	Version  string                            `yaml:"version" json:"version"`
	Boards   map[classifier.DashboardID]*Board `yaml:"dashboards" json:"dashboards"`
	Insights map[insight.Kind]insight.Entry    `yaml:"insights" json:"insights"`
}

// Board is one dashboard's rules and mock KPI content
type Board struct {
	Title       string            `yaml:"title" json:"title"`
	DefaultKind insight.Kind      `yaml:"default_kind" json:"default_kind"`
	Rules       []classifier.Rule `yaml:"rules" json:"rules"`
	Cards       []Card            `yaml:"cards,omitempty" json:"cards,omitempty"`
	Categories  []Category        `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// Card is a KPI card
type Card struct {
	Label  string    `yaml:"label" json:"label"`
	Value  string    `yaml:"value" json:"value"`
	Unit   string    `yaml:"unit,omitempty" json:"unit,omitempty"`
	Series []float64 `yaml:"series,omitempty" json:"series,omitempty"`
}

// Category is a tier-3 deep-dive group of cards
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Cards []Card `yaml:"cards" json:"cards"`
}

// RuleTable returns the board's classification table
func (b *Board) RuleTable(id classifier.DashboardID) classifier.RuleTable {
	return classifier.RuleTable{
		Dashboard: id,
		Default:   b.DefaultKind,
		Rules:     slices.Clone(b.Rules),
	}
}

// Category returns a category by id
func (b *Board) Category(id string) (Category, bool) {
	for _, c := range b.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Board returns the board of a dashboard
func (c *Catalog) Board(id classifier.DashboardID) (*Board, bool) {
	b, ok := c.Boards[id]
	return b, ok && b != nil
}

// RuleTables returns the rule tables in dashboard order
func (c *Catalog) RuleTables() []classifier.RuleTable {
	var tables []classifier.RuleTable
	for _, id := range classifier.Dashboards() {
		if b, ok := c.Board(id); ok {
			tables = append(tables, b.RuleTable(id))
		}
	}
	return tables
}

// Classifier builds a classifier from the catalog's rule tables
func (c *Catalog) Classifier() (*classifier.Classifier, error) {
	return classifier.New(c.RuleTables())
}

// Resolver builds a resolver from the catalog's authored insights
func (c *Catalog) Resolver() *insight.Resolver {
	return insight.NewResolver(c.Insights)
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("카탈로그 파일 읽기 실패: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("카탈로그 파싱 실패: %w", err)
	}

	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Boards == nil {
		c.Boards = make(map[classifier.DashboardID]*Board)
	}
	if c.Insights == nil {
		c.Insights = make(map[insight.Kind]insight.Entry)
	}

	return &c, nil
}

// Save writes a catalog to a YAML file
func Save(path string, c *Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("디렉토리 생성 실패: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("카탈로그 직렬화 실패: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("카탈로그 파일 저장 실패: %w", err)
	}

	return nil
}
