package integration

import (
	"iter"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// keyedSet is an identifier-keyed set that remembers registration order.
// It is not safe for concurrent use; the Registry guards it.
type keyedSet[T any] struct {
	order []string
	items map[string]T
}

func newKeyedSet[T any]() keyedSet[T] {
	return keyedSet[T]{items: make(map[string]T)}
}

// put inserts or replaces the entry. A replaced entry keeps its position.
func (s *keyedSet[T]) put(id string, v T) (replaced bool) {
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	} else {
		replaced = true
	}
	s.items[id] = v
	return replaced
}

func (s *keyedSet[T]) remove(id string) bool {
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == id })
	return true
}

func (s *keyedSet[T]) get(id string) (T, bool) {
	v, ok := s.items[id]
	return v, ok
}

// snapshot copies the current values in registration order.
func (s *keyedSet[T]) snapshot() []T {
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *keyedSet[T]) ids() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Registry owns the capability providers of the host.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	furniture keyedSet[FurnitureProvider]
	areas     keyedSet[AreaProvider]
	packet    PacketProvider
	closed    bool
	logger    *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		furniture: newKeyedSet[FurnitureProvider](),
		areas:     newKeyedSet[AreaProvider](),
		logger:    logger,
	}
}

// RegisterFurnitureProvider adds p, replacing any provider with the same identifier.
// A nil p is ignored.
func (r *Registry) RegisterFurnitureProvider(p FurnitureProvider) {
	if p == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rejectLocked("furniture", p.Identifier()) {
		return
	}
	replaced := r.furniture.put(p.Identifier(), p)
	r.logger.Debug("Registered furniture provider",
		zap.String("provider", p.Identifier()),
		zap.Bool("replaced", replaced),
	)
}

// UnregisterFurnitureProvider removes the provider with the given identifier, if any.
func (r *Registry) UnregisterFurnitureProvider(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.furniture.remove(id) {
		r.logger.Debug("Unregistered furniture provider", zap.String("provider", id))
	}
}

// FurnitureProvider returns the furniture provider registered under id.
func (r *Registry) FurnitureProvider(id string) (FurnitureProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.furniture.get(id)
}

// FurnitureProviders returns the furniture providers registered at call time,
// in registration order. Later registry changes do not affect the sequence.
func (r *Registry) FurnitureProviders() iter.Seq[FurnitureProvider] {
	r.mu.RLock()
	snapshot := r.furniture.snapshot()
	r.mu.RUnlock()
	return slices.Values(snapshot)
}

// FurnitureProviderIDs returns the identifiers of the furniture providers in registration order.
func (r *Registry) FurnitureProviderIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.furniture.ids()
}

// RegisterAreaProvider adds p, replacing any provider with the same identifier.
// A nil p is ignored.
func (r *Registry) RegisterAreaProvider(p AreaProvider) {
	if p == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rejectLocked("area", p.Identifier()) {
		return
	}
	replaced := r.areas.put(p.Identifier(), p)
	r.logger.Debug("Registered area provider",
		zap.String("provider", p.Identifier()),
		zap.Bool("replaced", replaced),
	)
}

// UnregisterAreaProvider removes the provider with the given identifier, if any.
func (r *Registry) UnregisterAreaProvider(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.areas.remove(id) {
		r.logger.Debug("Unregistered area provider", zap.String("provider", id))
	}
}

// AreaProvider returns the area provider registered under id.
func (r *Registry) AreaProvider(id string) (AreaProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.areas.get(id)
}

// AreaProviders returns the area providers registered at call time, in registration order.
func (r *Registry) AreaProviders() iter.Seq[AreaProvider] {
	r.mu.RLock()
	snapshot := r.areas.snapshot()
	r.mu.RUnlock()
	return slices.Values(snapshot)
}

// AreaProviderIDs returns the identifiers of the area providers in registration order.
func (r *Registry) AreaProviderIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.areas.ids()
}

// SetPacketProvider replaces the packet provider. A nil p clears the slot.
func (r *Registry) SetPacketProvider(p PacketProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p != nil && r.rejectLocked("packet", p.Identifier()) {
		return
	}
	r.packet = p
}

// PacketProvider returns the current packet provider.
func (r *Registry) PacketProvider() (PacketProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.packet, r.packet != nil
}

// Close stops the registry from accepting new providers.
// Lookups keep answering from the providers already registered.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// rejectLocked reports whether a registration must be dropped because the registry is closed.
func (r *Registry) rejectLocked(kind, id string) bool {
	if !r.closed {
		return false
	}
	r.logger.Debug("Registry closed, ignoring registration",
		zap.String("kind", kind),
		zap.String("provider", id),
	)
	return true
}
