// Package config implements the YAML configuration surface around the
// resolution core: derivation policy files (per-operator strategy order
// overrides) and profile spec files (declarative operator sets used by the
// inspection tool to build throwaway profiles).
//
// Neither file format is consulted on the resolve path; both exist to
// configure or inspect a core before it is frozen and shared.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/overload/internal/derive"
	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/registry"
)

// Policy overrides the priority order of derivation strategies.
type Policy struct {
	// Order maps a symbolic operator name (e.g. "abs") to the full list
	// of its strategy names in the desired priority order. Each list must
	// be a permutation of the operator's strategies.
	//
	// Example:
	//   order:
	//     abs: [spaceship+sub, spaceship+neg, lt+sub, lt+neg]
	Order map[string][]string `yaml:"order"`
}

// ParsePolicy decodes a policy document.
func ParsePolicy(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing policy: %w", err)
	}
	return &p, nil
}

// LoadPolicy reads and decodes a policy file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePolicy(data)
}

// Apply reorders the graph's strategies per the policy. The graph must not
// be shared yet.
func (p *Policy) Apply(g *derive.Graph) error {
	for name, order := range p.Order {
		kind, ok := operator.Parse(name)
		if !ok {
			return fmt.Errorf("policy: not an overridable operator: %q", name)
		}
		if err := g.Reorder(kind, order); err != nil {
			return fmt.Errorf("policy: %w", err)
		}
	}
	return nil
}

// ProfileSpec declares a type's overload set without handler bodies. The
// inspection tool builds a profile from it with stub handlers, so the
// resolver can report how each operator would resolve.
type ProfileSpec struct {
	// Type is the name of the type owning the profile.
	Type string `yaml:"type"`

	// Operators lists the directly registered operators by symbolic name
	// (e.g. "+", "<=>", "\"\"", "++").
	Operators []string `yaml:"operators"`

	// Fallback reports whether the type installs a catch-all handler.
	Fallback bool `yaml:"fallback,omitempty"`

	// FallbackEnabled gates the catch-all path. Defaults to the value of
	// Fallback, so declaring a catch-all enables it unless overridden.
	FallbackEnabled *bool `yaml:"fallback_enabled,omitempty"`
}

// ParseProfileSpec decodes a profile spec document.
func ParseProfileSpec(data []byte) (*ProfileSpec, error) {
	var s ProfileSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing profile spec: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadProfileSpec reads and decodes a profile spec file.
func LoadProfileSpec(path string) (*ProfileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfileSpec(data)
}

// Validate checks the spec against the operator catalog.
func (s *ProfileSpec) Validate() error {
	if s.Type == "" {
		return fmt.Errorf("profile spec: type name is required")
	}
	for _, name := range s.Operators {
		if _, ok := operator.Parse(name); !ok {
			return fmt.Errorf("profile spec: not an overridable operator: %q", name)
		}
	}
	return nil
}

// Build constructs a frozen profile from the spec. Handlers are stubs that
// echo the receiver value; they exist so derivation sees direct
// registrations, not to compute anything meaningful.
func (s *ProfileSpec) Build() (*registry.Profile, error) {
	p := registry.NewProfile(s.Type)
	for _, name := range s.Operators {
		kind, ok := operator.Parse(name)
		if !ok {
			return nil, fmt.Errorf("profile spec: not an overridable operator: %q", name)
		}
		stub := func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
			return recv.Value, nil
		}
		if err := p.Register(kind, stub, kind.Mutating()); err != nil {
			return nil, err
		}
	}
	if s.Fallback {
		if err := p.SetFallback(func(_ operator.Kind, recv, _ *registry.Operand, _ bool) (registry.Value, error) {
			return recv.Value, nil
		}); err != nil {
			return nil, err
		}
		enabled := true
		if s.FallbackEnabled != nil {
			enabled = *s.FallbackEnabled
		}
		if err := p.SetFallbackEnabled(enabled); err != nil {
			return nil, err
		}
	}
	p.Freeze()
	return p, nil
}
