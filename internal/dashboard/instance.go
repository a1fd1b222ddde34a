package dashboard

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/n0roo/opsdash/internal/catalog"
	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/insight"
	"github.com/n0roo/opsdash/internal/navigator"
)

// Instance is one mounted dashboard with its own navigation state
type Instance struct {
	ID    string
	Board classifier.DashboardID

	engine *Engine
	nav    *navigator.Navigator
	logger *zap.Logger
}

func newInstance(board classifier.DashboardID, engine *Engine, logger *zap.Logger) *Instance {
	inst := &Instance{
		ID:     uuid.NewString(),
		Board:  board,
		engine: engine,
	}
	inst.logger = logger.With(zap.String("instance", inst.ID), zap.String("dashboard", string(board)))
	inst.nav = navigator.New(navigator.WithObserver(inst.observe))
	return inst
}

func (i *Instance) observe(ev navigator.Event, applied bool, s navigator.State) {
	if !applied {
		i.logger.Debug("Ignored navigation", zap.String("event", string(ev)))
		return
	}
	i.logger.Debug("Navigation",
		zap.String("event", string(ev)),
		zap.Bool("tier2", s.Tier2Open),
		zap.String("tier3", s.Tier3Category),
		zap.Bool("insight", s.Insight != nil))
}

// Content returns the board's KPI content
func (i *Instance) Content() *catalog.Board {
	if b, ok := i.engine.Catalog().Board(i.Board); ok {
		return b
	}
	return &catalog.Board{}
}

// Inspect classifies a clicked metric, resolves its insight and opens the overlay
func (i *Instance) Inspect(title, value string) insight.Payload {
	// Board is validated at mount, so classification cannot fail here
	kind, err := i.engine.Classify(title, i.Board)
	if err != nil {
		i.logger.Error("Classification failed", zap.String("label", title), zap.Error(err))
		kind = i.Content().DefaultKind
	}

	payload := i.engine.Resolve(kind)
	i.nav.OpenInsight(title, value, kind)

	i.logger.Info("Inspect",
		zap.String("label", title),
		zap.String("kind", string(kind)),
		zap.Bool("fallback", payload.Fallback),
		zap.Int("affected", len(payload.AffectedItems)))

	return payload
}

// Insight re-resolves the payload of the open overlay
func (i *Instance) Insight() (navigator.Overlay, insight.Payload, bool) {
	o := i.nav.State().Insight
	if o == nil {
		return navigator.Overlay{}, insight.Payload{}, false
	}
	return *o, i.engine.Resolve(o.Kind), true
}

// State returns the navigation state
func (i *Instance) State() navigator.State { return i.nav.State() }

// Tier returns the drill-down depth
func (i *Instance) Tier() navigator.Tier { return i.nav.Tier() }

// OpenTier2 opens the detailed analytics panel
func (i *Instance) OpenTier2() bool { return i.nav.OpenTier2() }

// CloseTier2 collapses the dashboard
func (i *Instance) CloseTier2() bool { return i.nav.CloseTier2() }

// ToggleTier2 opens or collapses the detailed analytics panel
func (i *Instance) ToggleTier2() bool {
	if i.nav.State().Tier2Open {
		return i.nav.CloseTier2()
	}
	return i.nav.OpenTier2()
}

// OpenTier3 opens a category deep-dive. Unknown categories are ignored.
func (i *Instance) OpenTier3(category string) bool {
	if _, ok := i.Content().Category(category); !ok {
		i.logger.Debug("Unknown category", zap.String("category", category))
		return false
	}
	return i.nav.OpenTier3(category)
}

// CloseTier3 returns to tier 2
func (i *Instance) CloseTier3() bool { return i.nav.CloseTier3() }

// CloseInsight closes the insight overlay
func (i *Instance) CloseInsight() bool { return i.nav.CloseInsight() }

// Back closes the innermost open element
func (i *Instance) Back() bool { return i.nav.Back() }
