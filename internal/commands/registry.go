package commands

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Command
	primary []Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds c under its name and aliases.
// Names are case-sensitive; any clash with an existing name or alias is an error.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("command %q: blank name or alias", c.Name())
		}
		if prev, exists := r.byName[key]; exists {
			return fmt.Errorf("command %q: %q already registered by %q", c.Name(), key, prev.Name())
		}
	}

	for _, key := range keys {
		r.byName[key] = c
	}
	r.primary = append(r.primary, c)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns each command once, sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := slices.Clone(r.primary)
	slices.SortFunc(all, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return all
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry and panics on a clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
