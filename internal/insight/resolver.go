package insight

import "slices"

var fallbackEntry = Entry{
	Narrative: "This metric shows a deviation from standard operating procedure. " +
		"No specific root cause has been authored for it yet.",
	Impact: Impact{
		Financial:   "Not estimated",
		Operational: "Under review",
	},
	RecommendedAction: "Review the metric with the department lead against the standard operating procedure",
}

// Resolver maps a kind to its insight content
type Resolver struct {
	entries map[Kind]Entry
}

// NewResolver creates a resolver over authored entries.
// The entries are copied; later changes to the argument are not observed.
func NewResolver(entries map[Kind]Entry) *Resolver {
	table := make(map[Kind]Entry, len(entries))
	for k, e := range entries {
		e.AffectedItems = slices.Clone(e.AffectedItems)
		table[k] = e
	}
	return &Resolver{entries: table}
}

// Resolve returns the payload for a kind. Unauthored kinds get the
// fallback payload. Every call builds a new payload.
func (r *Resolver) Resolve(kind Kind) Payload {
	domain, _ := DomainOf(kind)

	entry, ok := r.entries[kind]
	if !ok {
		entry = fallbackEntry
	}

	items := slices.Clone(entry.AffectedItems)
	if items == nil {
		items = []AffectedItem{}
	}

	return Payload{
		Kind:              kind,
		Domain:            domain,
		Narrative:         entry.Narrative,
		AffectedItems:     items,
		Impact:            entry.Impact,
		RecommendedAction: entry.RecommendedAction,
		Fallback:          !ok,
	}
}

// Authored reports whether a kind has authored content
func (r *Resolver) Authored(kind Kind) bool {
	_, ok := r.entries[kind]
	return ok
}

// Unauthored returns declared kinds that resolve to the fallback
func (r *Resolver) Unauthored() []Kind {
	var out []Kind
	for _, k := range kindOrder {
		if !r.Authored(k) {
			out = append(out, k)
		}
	}
	return out
}
