package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/insight"
)

// Level is the severity of a validation issue
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Issue is one validation finding
type Issue struct {
	Level   Level  `json:"level"`
	Where   string `json:"where"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Level, i.Where, i.Message)
}

// Report is the result of validating a catalog
type Report struct {
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any issue is an error
func (r Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Level == LevelError {
			return true
		}
	}
	return false
}

// Errors returns the error-level issues
func (r Report) Errors() []Issue {
	return r.filter(LevelError)
}

// Warnings returns the warning-level issues
func (r Report) Warnings() []Issue {
	return r.filter(LevelWarning)
}

// Err returns the errors joined, or nil
func (r Report) Err() error {
	var errs []error
	for _, i := range r.Errors() {
		errs = append(errs, errors.New(i.String()))
	}
	return errors.Join(errs...)
}

func (r Report) filter(level Level) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Level == level {
			out = append(out, i)
		}
	}
	return out
}

func (r *Report) add(level Level, where, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Level: level, Where: where, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a catalog for completeness. Unauthored kinds are warnings;
// anything that would make classification or resolution ill-defined is an error.
func (c *Catalog) Validate() Report {
	var r Report

	for _, id := range slices.Sorted(maps.Keys(c.Boards)) {
		if !id.Valid() {
			r.add(LevelError, string(id), "알 수 없는 대시보드입니다")
		}
	}

	for _, id := range classifier.Dashboards() {
		b, ok := c.Board(id)
		if !ok {
			r.add(LevelError, string(id), "대시보드 정의가 없습니다")
			continue
		}
		validateBoard(&r, id, b)
	}

	for _, kind := range slices.Sorted(maps.Keys(c.Insights)) {
		entry := c.Insights[kind]
		where := "insights." + string(kind)
		if !kind.Valid() {
			r.add(LevelError, where, "알 수 없는 kind입니다")
			continue
		}
		if strings.TrimSpace(entry.Narrative) == "" {
			r.add(LevelError, where, "narrative가 비어 있습니다")
		}
		if strings.TrimSpace(entry.RecommendedAction) == "" {
			r.add(LevelError, where, "recommended_action이 비어 있습니다")
		}
		if n := len(entry.AffectedItems); n > insight.MaxDisplayedItems {
			r.add(LevelWarning, where, "affected_items %d개 중 %d개만 표시됩니다", n, insight.MaxDisplayedItems)
		}
	}

	for _, kind := range insight.Kinds() {
		if _, ok := c.Insights[kind]; !ok {
			r.add(LevelWarning, "insights."+string(kind), "작성된 인사이트가 없어 fallback이 사용됩니다")
		}
	}

	return r
}

func validateBoard(r *Report, id classifier.DashboardID, b *Board) {
	where := "dashboards." + string(id)

	table := b.RuleTable(id)
	if err := table.Validate(); err != nil {
		r.add(LevelError, where, "%v", err)
	}
	for _, i := range table.Shadowed() {
		r.add(LevelError, fmt.Sprintf("%s.rules[%d]", where, i), "앞선 규칙에 가려져 절대 매칭되지 않습니다 (%q)", table.Rules[i].Match)
	}
	for i, rule := range table.Rules {
		if d, ok := insight.DomainOf(rule.Kind); ok && d != id.Domain() {
			r.add(LevelWarning, fmt.Sprintf("%s.rules[%d]", where, i), "kind %s는 %s 도메인입니다", rule.Kind, d)
		}
	}

	validateCards(r, where+".cards", b.Cards)

	seen := make(map[string]bool)
	for i, cat := range b.Categories {
		cw := fmt.Sprintf("%s.categories[%d]", where, i)
		if cat.ID == "" {
			r.add(LevelError, cw, "id가 비어 있습니다")
		} else if seen[cat.ID] {
			r.add(LevelError, cw, "id %q가 중복되었습니다", cat.ID)
		}
		seen[cat.ID] = true
		validateCards(r, cw+".cards", cat.Cards)
	}
}

func validateCards(r *Report, where string, cards []Card) {
	for i, card := range cards {
		if strings.TrimSpace(card.Label) == "" {
			r.add(LevelError, fmt.Sprintf("%s[%d]", where, i), "label이 비어 있습니다")
		}
	}
}
