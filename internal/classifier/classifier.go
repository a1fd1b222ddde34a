package classifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/n0roo/opsdash/internal/insight"
)

// DashboardID identifies a dashboard and the rule table it classifies with
type DashboardID string

const (
	DashboardBiomedical     DashboardID = "biomedical"
	DashboardTransfusion    DashboardID = "transfusion"
	DashboardLabMedicine    DashboardID = "lab-medicine"
	DashboardSupplyChain    DashboardID = "supply-chain"
	DashboardInfrastructure DashboardID = "infrastructure"
)

// ErrUnknownDashboard is returned for a dashboard outside the declared set
var ErrUnknownDashboard = errors.New("unknown dashboard")

var dashboardOrder = []DashboardID{
	DashboardBiomedical,
	DashboardTransfusion,
	DashboardLabMedicine,
	DashboardSupplyChain,
	DashboardInfrastructure,
}

var dashboardDomains = map[DashboardID]insight.Domain{
	DashboardBiomedical:     insight.DomainBiomedical,
	DashboardTransfusion:    insight.DomainTransfusion,
	DashboardLabMedicine:    insight.DomainLabMedicine,
	DashboardSupplyChain:    insight.DomainSupplyChain,
	DashboardInfrastructure: insight.DomainInfrastructure,
}

// Dashboards returns all dashboards in tab order
func Dashboards() []DashboardID {
	out := make([]DashboardID, len(dashboardOrder))
	copy(out, dashboardOrder)
	return out
}

// ParseDashboard parses a dashboard id
func ParseDashboard(s string) (DashboardID, error) {
	id := DashboardID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownDashboard, s)
	}
	return id, nil
}

// Valid reports whether the id is a declared dashboard
func (d DashboardID) Valid() bool {
	_, ok := dashboardDomains[d]
	return ok
}

// Domain returns the dashboard's home domain
func (d DashboardID) Domain() insight.Domain {
	return dashboardDomains[d]
}

// Rule maps a label substring to a kind
type Rule struct {
	Match string       `yaml:"match" json:"match"`
	Kind  insight.Kind `yaml:"kind" json:"kind"`
}

// RuleTable is the ordered rule list of one dashboard.
// Rule order is part of the contract: the first matching rule wins.
type RuleTable struct {
	Dashboard DashboardID  `yaml:"-" json:"dashboard"`
	Default   insight.Kind `yaml:"default_kind" json:"default_kind"`
	Rules     []Rule       `yaml:"rules" json:"rules"`
}

// Match returns the index of the first rule whose substring is in label,
// or -1 when none matches.
func (t RuleTable) Match(label string) int {
	for i, r := range t.Rules {
		if strings.Contains(label, r.Match) {
			return i
		}
	}
	return -1
}

// Validate checks the table for unknown kinds, empty substrings and a missing default
func (t RuleTable) Validate() error {
	if !t.Dashboard.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownDashboard, t.Dashboard)
	}
	if t.Default == "" {
		return fmt.Errorf("%s: default kind이 없습니다", t.Dashboard)
	}
	if !t.Default.Valid() {
		return fmt.Errorf("%s: 알 수 없는 default kind %q", t.Dashboard, t.Default)
	}
	for i, r := range t.Rules {
		if r.Match == "" {
			return fmt.Errorf("%s: rule %d의 match가 비어 있습니다", t.Dashboard, i)
		}
		if !r.Kind.Valid() {
			return fmt.Errorf("%s: rule %d의 kind %q를 알 수 없습니다", t.Dashboard, i, r.Kind)
		}
	}
	return nil
}

// Classifier maps UI labels to kinds using per-dashboard rule tables
type Classifier struct {
	tables map[DashboardID]RuleTable
}

// Result describes which rule produced a classification
type Result struct {
	Kind      insight.Kind   `json:"kind"`
	Domain    insight.Domain `json:"domain"`
	RuleIndex int            `json:"rule_index"`
	Rule      *Rule          `json:"rule,omitempty"`
}

// Defaulted reports whether no rule matched
func (r Result) Defaulted() bool {
	return r.RuleIndex < 0
}

// New creates a classifier. Every declared dashboard needs a valid table.
func New(tables []RuleTable) (*Classifier, error) {
	c := &Classifier{tables: make(map[DashboardID]RuleTable, len(tables))}

	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.tables[t.Dashboard]; dup {
			return nil, fmt.Errorf("%s: rule table이 중복되었습니다", t.Dashboard)
		}
		t.Rules = append([]Rule(nil), t.Rules...)
		c.tables[t.Dashboard] = t
	}

	for _, d := range dashboardOrder {
		if _, ok := c.tables[d]; !ok {
			return nil, fmt.Errorf("%s: rule table이 없습니다", d)
		}
	}

	return c, nil
}

// Classify returns the kind for a label on a dashboard. It only fails for
// dashboards outside the declared set.
func (c *Classifier) Classify(label string, dashboard DashboardID) (insight.Kind, error) {
	res, err := c.Explain(label, dashboard)
	if err != nil {
		return "", err
	}
	return res.Kind, nil
}

// Explain classifies a label and reports the rule that fired
func (c *Classifier) Explain(label string, dashboard DashboardID) (Result, error) {
	t, ok := c.tables[dashboard]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownDashboard, dashboard)
	}

	res := Result{Kind: t.Default, RuleIndex: -1}
	if i := t.Match(label); i >= 0 {
		rule := t.Rules[i]
		res.Kind = rule.Kind
		res.RuleIndex = i
		res.Rule = &rule
	}
	res.Domain, _ = insight.DomainOf(res.Kind)

	return res, nil
}

// Table returns a copy of a dashboard's rule table
func (c *Classifier) Table(dashboard DashboardID) (RuleTable, bool) {
	t, ok := c.tables[dashboard]
	if !ok {
		return RuleTable{}, false
	}
	t.Rules = append([]Rule(nil), t.Rules...)
	return t, true
}

// Shadowed returns indexes of rules that can never fire because an earlier
// rule's substring is contained in theirs.
func (t RuleTable) Shadowed() []int {
	var out []int
	for i, r := range t.Rules {
		for _, earlier := range t.Rules[:i] {
			if strings.Contains(r.Match, earlier.Match) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
