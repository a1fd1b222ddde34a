package dashboard

import (
	"fmt"

	"github.com/n0roo/opsdash/internal/catalog"
	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/insight"
)

// Engine classifies labels and resolves insights. It holds only
// read-only tables and is safe to share between instances.
type Engine struct {
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
	resolver   *insight.Resolver
}

// NewEngine builds an engine from a catalog. A catalog with validation
// errors is rejected; warnings such as unauthored kinds are allowed.
func NewEngine(c *catalog.Catalog) (*Engine, error) {
	if err := c.Validate().Err(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 카탈로그: %w", err)
	}

	cl, err := c.Classifier()
	if err != nil {
		return nil, err
	}

	return &Engine{
		catalog:    c,
		classifier: cl,
		resolver:   c.Resolver(),
	}, nil
}

// Catalog returns the catalog the engine was built from
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Classify maps a label on a dashboard to a kind
func (e *Engine) Classify(label string, dashboard classifier.DashboardID) (insight.Kind, error) {
	return e.classifier.Classify(label, dashboard)
}

// Explain classifies a label and reports the rule that fired
func (e *Engine) Explain(label string, dashboard classifier.DashboardID) (classifier.Result, error) {
	return e.classifier.Explain(label, dashboard)
}

// Resolve returns the insight payload of a kind
func (e *Engine) Resolve(kind insight.Kind) insight.Payload {
	return e.resolver.Resolve(kind)
}

// Inspect classifies a label and resolves its payload
func (e *Engine) Inspect(label string, dashboard classifier.DashboardID) (insight.Payload, error) {
	kind, err := e.Classify(label, dashboard)
	if err != nil {
		return insight.Payload{}, err
	}
	return e.Resolve(kind), nil
}
