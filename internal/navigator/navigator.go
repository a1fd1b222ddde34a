package navigator

import "github.com/n0roo/opsdash/internal/insight"

// Tier is the drill-down depth of a dashboard
type Tier int

const (
	TierCollapsed Tier = iota
	Tier2
	Tier3
)

func (t Tier) String() string {
	switch t {
	case Tier2:
		return "tier2"
	case Tier3:
		return "tier3"
	default:
		return "collapsed"
	}
}

// Overlay is the open insight overlay
type Overlay struct {
	Title string       `json:"title"`
	Value string       `json:"value"`
	Kind  insight.Kind `json:"kind"`
}

// State is a snapshot of where the operator is in one dashboard.
// Tier3Category is empty when no tier-3 panel is open.
type State struct {
	Tier2Open     bool     `json:"tier2_open"`
	Tier3Category string   `json:"tier3_category,omitempty"`
	Insight       *Overlay `json:"insight,omitempty"`
}

// Event names a navigation transition
type Event string

const (
	EventOpenTier2    Event = "open_tier2"
	EventCloseTier2   Event = "close_tier2"
	EventOpenTier3    Event = "open_tier3"
	EventCloseTier3   Event = "close_tier3"
	EventOpenInsight  Event = "open_insight"
	EventCloseInsight Event = "close_insight"
)

// Observer is called after every attempted transition
type Observer func(ev Event, applied bool, s State)

// Option configures a Navigator
type Option func(*Navigator)

// WithObserver registers a transition observer
func WithObserver(fn Observer) Option {
	return func(n *Navigator) {
		n.observer = fn
	}
}

// Navigator tracks the open tier and insight overlay of one dashboard.
// Invalid transitions are ignored and reported as not applied.
type Navigator struct {
	tier2Open bool
	tier3     string
	overlay   *Overlay
	observer  Observer
}

// New creates a collapsed navigator
func New(opts ...Option) *Navigator {
	n := &Navigator{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// State returns a copy of the current state
func (n *Navigator) State() State {
	s := State{
		Tier2Open:     n.tier2Open,
		Tier3Category: n.tier3,
	}
	if n.overlay != nil {
		o := *n.overlay
		s.Insight = &o
	}
	return s
}

// Tier returns the current drill-down depth
func (n *Navigator) Tier() Tier {
	switch {
	case n.tier3 != "":
		return Tier3
	case n.tier2Open:
		return Tier2
	default:
		return TierCollapsed
	}
}

// OpenTier2 opens the detailed analytics panel
func (n *Navigator) OpenTier2() bool {
	applied := !n.tier2Open
	n.tier2Open = true
	return n.notify(EventOpenTier2, applied)
}

// CloseTier2 collapses the dashboard and closes everything nested in it,
// including the insight overlay.
func (n *Navigator) CloseTier2() bool {
	if !n.tier2Open {
		return n.notify(EventCloseTier2, false)
	}
	n.tier2Open = false
	n.tier3 = ""
	n.overlay = nil
	return n.notify(EventCloseTier2, true)
}

// OpenTier3 opens the deep-dive panel for a category, replacing any open one.
// Ignored while tier 2 is closed or for an empty category.
func (n *Navigator) OpenTier3(category string) bool {
	if !n.tier2Open || category == "" || category == n.tier3 {
		return n.notify(EventOpenTier3, false)
	}
	n.tier3 = category
	return n.notify(EventOpenTier3, true)
}

// CloseTier3 returns to the tier-2 panel
func (n *Navigator) CloseTier3() bool {
	if n.tier3 == "" {
		return n.notify(EventCloseTier3, false)
	}
	n.tier3 = ""
	return n.notify(EventCloseTier3, true)
}

// OpenInsight opens the insight overlay, replacing any open one.
// It is independent of the tier state.
func (n *Navigator) OpenInsight(title, value string, kind insight.Kind) bool {
	n.overlay = &Overlay{Title: title, Value: value, Kind: kind}
	return n.notify(EventOpenInsight, true)
}

// CloseInsight closes the insight overlay
func (n *Navigator) CloseInsight() bool {
	if n.overlay == nil {
		return n.notify(EventCloseInsight, false)
	}
	n.overlay = nil
	return n.notify(EventCloseInsight, true)
}

// Back closes the innermost open element: insight, tier 3, then tier 2.
func (n *Navigator) Back() bool {
	switch {
	case n.overlay != nil:
		return n.CloseInsight()
	case n.tier3 != "":
		return n.CloseTier3()
	default:
		return n.CloseTier2()
	}
}

func (n *Navigator) notify(ev Event, applied bool) bool {
	if n.observer != nil {
		n.observer(ev, applied, n.State())
	}
	return applied
}
