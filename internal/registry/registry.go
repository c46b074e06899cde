// Package registry holds the process-wide topic → handler bindings. It is an
// explicit object constructed once at startup and injected into the
// dispatcher and the reconciliation routine; there is no package-level state.
package registry

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Handler transforms raw event data into a deliverable payload body. The
// returned value must be nil, a string, or a map[string]any; anything else is
// rejected at dispatch time.
type Handler func(data map[string]any) any

// Registry maps topic names to handlers for the process lifetime.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	log      zerolog.Logger
}

// New creates an empty registry.
func New(log zerolog.Logger) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		log:      log,
	}
}

// Register binds a handler to a topic name. Registering the same name twice
// is last-write-wins; the duplicate is flagged with a startup warning rather
// than an error.
func (r *Registry) Register(topic string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[topic]; exists {
		r.log.Warn().Str("topic", topic).Msg("duplicate topic registration, previous handler replaced")
	}
	r.handlers[topic] = h
}

// Resolve returns the handler bound to topic, or false if none is registered.
func (r *Registry) Resolve(topic string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[topic]
	return h, ok
}

// Topics returns the sorted set of registered topic names.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
