// Package template maps the canonical portfolio record onto the view models of
// the individual visual templates.
package template

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"portfolio-builder/internal/model"
)

// ErrUnknownTemplate is returned for template ids with no registered adapter.
var ErrUnknownTemplate = errors.New("unknown template")

// Adapter builds one template's view model from a canonical record.
type Adapter interface {
	Adapt(p *model.Portfolio) interface{}
}

// Func lifts a typed mapping function into an Adapter.
type Func[T any] func(p *model.Portfolio) T

func (f Func[T]) Adapt(p *model.Portfolio) interface{} {
	return f(p)
}

// Template ids.
const (
	IDColorful     = "colorful"
	IDNeoBrutalist = "neo-brutalist"
	IDModern       = "modern"
	IDSpace        = "space"
)

// Registry is a lookup table of adapters keyed by template id. It is safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: map[string]Adapter{}}
}

// Default returns a registry holding every built-in template.
func Default() *Registry {
	r := NewRegistry()
	r.Register(IDColorful, Func[ColorfulBundle](Colorful))
	r.Register(IDNeoBrutalist, Func[NeoData](NeoBrutalist))
	r.Register(IDModern, Func[ModernData](Modern))
	r.Register(IDSpace, Func[SpaceData](Space))
	return r
}

// Register adds or replaces the adapter for id.
func (r *Registry) Register(id string, a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[id] = a
}

func (r *Registry) Get(id string) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[id]
	return a, ok
}

// Has reports whether an adapter is registered for id.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Adapt runs the adapter registered for id. A nil record is treated as an
// empty one.
func (r *Registry) Adapt(id string, p *model.Portfolio) (interface{}, error) {
	a, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	if p == nil {
		p = model.Empty()
	}
	return a.Adapt(p), nil
}

// IDs lists the registered template ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.adapters))
	for id := range r.adapters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
