package insight

// MaxDisplayedItems is how many affected items a view shows before
// offering the full list.
const MaxDisplayedItems = 5

// NoAnomaliesText is shown when a payload has no affected items
const NoAnomaliesText = "No anomalies detected"

// AffectedItem is one row of an insight's impacted entities
type AffectedItem struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Location string `yaml:"location" json:"location"`
	Status   string `yaml:"status" json:"status"`
}

// Impact holds the estimated impact of an insight
type Impact struct {
	Financial   string `yaml:"financial" json:"financial"`
	Operational string `yaml:"operational" json:"operational"`
}

// Entry is authored insight content for one kind
type Entry struct {
	Narrative         string         `yaml:"narrative" json:"narrative"`
	AffectedItems     []AffectedItem `yaml:"affected_items,omitempty" json:"affected_items,omitempty"`
	Impact            Impact         `yaml:"impact" json:"impact"`
	RecommendedAction string         `yaml:"recommended_action" json:"recommended_action"`
}

// Payload is a resolved insight
type Payload struct {
	Kind              Kind           `json:"kind"`
	Domain            Domain         `json:"domain"`
	Narrative         string         `json:"narrative"`
	AffectedItems     []AffectedItem `json:"affected_items"`
	Impact            Impact         `json:"impact"`
	RecommendedAction string         `json:"recommended_action"`
	Fallback          bool           `json:"fallback"`
}

// Noun returns the section header for the payload's affected items
func (p Payload) Noun() string {
	return Noun(p.Domain)
}

// Visible returns the items a view should render
func (p Payload) Visible() []AffectedItem {
	if len(p.AffectedItems) <= MaxDisplayedItems {
		return p.AffectedItems
	}
	return p.AffectedItems[:MaxDisplayedItems]
}

// Overflow returns how many items are hidden behind "View Full List"
func (p Payload) Overflow() int {
	if n := len(p.AffectedItems) - MaxDisplayedItems; n > 0 {
		return n
	}
	return 0
}
