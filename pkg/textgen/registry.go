// Package textgen resolves configured text generation providers.
package textgen

import (
	"fmt"
	"strings"

	"orgboard/pkg/orgboard"
)

// Registry resolves configured text generators by stable profile key.
//
// The generator map is copied on construction and remains immutable
// afterward, so Resolve is safe for concurrent use.
type Registry struct {
	generators map[string]orgboard.TextGenerator
}

// NewRegistry constructs one immutable generator registry.
func NewRegistry(generators map[string]orgboard.TextGenerator) (*Registry, error) {
	if len(generators) == 0 {
		return nil, fmt.Errorf("new text generator registry: empty generators")
	}

	cloned := make(map[string]orgboard.TextGenerator, len(generators))
	for key, generator := range generators {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return nil, fmt.Errorf("new text generator registry: empty generator key")
		}
		if generator == nil {
			return nil, fmt.Errorf("new text generator registry: generator %s is nil", trimmedKey)
		}
		if _, exists := cloned[trimmedKey]; exists {
			return nil, fmt.Errorf("new text generator registry: duplicate generator key %s", trimmedKey)
		}
		cloned[trimmedKey] = generator
	}

	return &Registry{generators: cloned}, nil
}

// Resolve returns one configured generator by key.
func (r *Registry) Resolve(key string) (orgboard.TextGenerator, error) {
	if r == nil {
		return nil, fmt.Errorf("resolve text generator: nil registry")
	}

	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, fmt.Errorf("resolve text generator: empty generator key")
	}

	resolved, exists := r.generators[trimmed]
	if !exists {
		return nil, fmt.Errorf("resolve text generator: generator %s is not configured", trimmed)
	}

	return resolved, nil
}
