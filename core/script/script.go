package script

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"tooltips/core/integration"

	"github.com/google/uuid"
)

// ErrUnknownAction is returned by Run when no action is registered under the name.
var ErrUnknownAction = errors.New("unknown action")

// Target is the subject a hook is evaluated for.
type Target struct {
	// Player is the id of the player the hook runs for.
	Player uuid.UUID
	// Location is the block the player is targeting.
	Location integration.Location
}

// Condition reports whether it holds for the target.
type Condition func(ctx context.Context, target Target) bool

// Action performs a side effect for the target.
type Action func(ctx context.Context, target Target, args []string) error

// Expansion resolves placeholder keys under its identifier.
type Expansion interface {
	Identifier() string
	Resolve(ctx context.Context, target Target, key string) (string, bool)
}

// Registry holds the named conditions, actions and expansions.
type Registry struct {
	mu         sync.RWMutex
	conditions map[string]Condition
	actions    map[string]Action
	expansions map[string]Expansion
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conditions: make(map[string]Condition),
		actions:    make(map[string]Action),
		expansions: make(map[string]Expansion),
	}
}

// RegisterCondition adds or replaces the condition under name.
func (r *Registry) RegisterCondition(name string, c Condition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conditions[strings.ToLower(name)] = c
}

// Check evaluates the named condition. found is false if no such condition exists.
func (r *Registry) Check(ctx context.Context, name string, target Target) (result, found bool) {
	r.mu.RLock()
	c, ok := r.conditions[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return false, false
	}
	return c(ctx, target), true
}

// RegisterAction adds or replaces the action under name.
func (r *Registry) RegisterAction(name string, a Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[strings.ToLower(name)] = a
}

// Run executes the named action.
func (r *Registry) Run(ctx context.Context, name string, target Target, args []string) error {
	r.mu.RLock()
	a, ok := r.actions[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if err := a(ctx, target, args); err != nil {
		return fmt.Errorf("action %s: %w", name, err)
	}
	return nil
}

// RegisterExpansion adds e, replacing any expansion with the same identifier.
func (r *Registry) RegisterExpansion(e Expansion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expansions[strings.ToLower(e.Identifier())] = e
}

// UnregisterExpansion removes the expansion with the given identifier, if any.
func (r *Registry) UnregisterExpansion(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.expansions, strings.ToLower(id))
}

// IsExpansionRegistered reports whether an expansion is registered under id.
func (r *Registry) IsExpansionRegistered(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.expansions[strings.ToLower(id)]
	return ok
}

// Names lists the registered conditions, actions and expansions, sorted.
func (r *Registry) Names() (conditions, actions, expansions []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.conditions), sortedKeys(r.actions), sortedKeys(r.expansions)
}

// Expand replaces every "%identifier_key%" token in text that a registered expansion resolves.
func (r *Registry) Expand(ctx context.Context, text string, target Target) string {
	var b strings.Builder
	rest := text
	for {
		start := strings.IndexByte(rest, '%')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+1:], '%')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start + 1

		token := rest[start+1 : end]
		if value, ok := r.resolve(ctx, token, target); ok {
			b.WriteString(rest[:start])
			b.WriteString(value)
			rest = rest[end+1:]
			continue
		}
		// Keep the closing '%' available as the start of the next token.
		b.WriteString(rest[:end])
		rest = rest[end:]
	}
	return b.String()
}

func (r *Registry) resolve(ctx context.Context, token string, target Target) (string, bool) {
	id, key, ok := strings.Cut(token, "_")
	if !ok || id == "" {
		return "", false
	}
	r.mu.RLock()
	e, exists := r.expansions[strings.ToLower(id)]
	r.mu.RUnlock()
	if !exists {
		return "", false
	}
	return e.Resolve(ctx, target, key)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
