package dashboard

import (
	"go.uber.org/zap"

	"github.com/n0roo/opsdash/internal/classifier"
)

// Registry tracks mounted dashboard instances. It is not safe for
// concurrent use; it belongs to a single UI event loop.
type Registry struct {
	engine    *Engine
	instances map[string]*Instance
	logger    *zap.Logger
}

// NewRegistry creates a registry. A nil logger disables logging.
func NewRegistry(engine *Engine, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		engine:    engine,
		instances: make(map[string]*Instance),
		logger:    logger,
	}
}

// Mount creates a collapsed instance of a dashboard
func (r *Registry) Mount(board classifier.DashboardID) (*Instance, error) {
	if _, err := classifier.ParseDashboard(string(board)); err != nil {
		return nil, err
	}

	inst := newInstance(board, r.engine, r.logger)
	r.instances[inst.ID] = inst
	r.logger.Debug("Mounted", zap.String("instance", inst.ID), zap.String("dashboard", string(board)))

	return inst, nil
}

// Unmount destroys an instance and its navigation state
func (r *Registry) Unmount(id string) bool {
	if _, ok := r.instances[id]; !ok {
		return false
	}
	delete(r.instances, id)
	r.logger.Debug("Unmounted", zap.String("instance", id))
	return true
}

// Get returns a mounted instance
func (r *Registry) Get(id string) (*Instance, bool) {
	inst, ok := r.instances[id]
	return inst, ok
}

// Len returns the number of mounted instances
func (r *Registry) Len() int {
	return len(r.instances)
}

// Engine returns the current engine
func (r *Registry) Engine() *Engine {
	return r.engine
}

// Rebind swaps in a new engine, e.g. after a catalog reload.
// Navigation state of mounted instances is kept, except a tier-3 panel
// whose category no longer exists.
func (r *Registry) Rebind(engine *Engine) {
	r.engine = engine
	for _, inst := range r.instances {
		inst.engine = engine
		if cat := inst.State().Tier3Category; cat != "" {
			if _, ok := inst.Content().Category(cat); !ok {
				inst.CloseTier3()
			}
		}
	}
	r.logger.Info("Engine rebound", zap.Int("instances", len(r.instances)))
}
