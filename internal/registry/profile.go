// Package registry holds per-type operator handler tables. A Profile is
// built while a type declares its handlers, frozen, and then read by any
// number of concurrent resolver calls. The registry is a pure data store:
// Lookup never derives anything, that is the resolver's job.
package registry

import (
	"sort"

	"github.com/google/uuid"

	"github.com/funvibe/overload/internal/operator"
)

// Profile is one type's overload set: its direct handlers, its catch-all
// handler and the flag gating it.
//
// Lifecycle is single-writer-then-many-readers: all mutation happens during
// the owning type's declaration phase, then Freeze marks the profile
// read-only. The caller must establish a happens-before edge between the
// Freeze and the first concurrent use; the profile itself takes no locks.
type Profile struct {
	typeName string
	id       uuid.UUID

	handlers        map[operator.Kind]*Handler
	fallback        FallbackFunc
	fallbackEnabled bool
	frozen          bool
}

// NewProfile creates an empty profile for the named type. The catch-all
// path starts disabled.
func NewProfile(typeName string) *Profile {
	return &Profile{
		typeName: typeName,
		id:       uuid.New(),
		handlers: make(map[operator.Kind]*Handler),
	}
}

// TypeName returns the name of the type owning this profile.
func (p *Profile) TypeName() string { return p.typeName }

// ID returns the profile's identity, used to tell profiles apart in
// diagnostics output.
func (p *Profile) ID() uuid.UUID { return p.id }

// Register adds a direct handler for kind. It fails with
// *DuplicateHandlerError if the type already handles kind, and with
// *InvalidKindError for anything outside the catalog.
func (p *Profile) Register(kind operator.Kind, fn Func, mutating bool) error {
	if p.frozen {
		return ErrFrozenProfile
	}
	if !kind.Valid() {
		return &InvalidKindError{Name: kind.String()}
	}
	if _, ok := p.handlers[kind]; ok {
		return &DuplicateHandlerError{TypeName: p.typeName, Kind: kind}
	}
	p.handlers[kind] = &Handler{Kind: kind, Fn: fn, Mutating: mutating}
	return nil
}

// Replace installs a handler for kind, overwriting any existing one. This
// is the explicit re-registration path; Register never overwrites.
func (p *Profile) Replace(kind operator.Kind, fn Func, mutating bool) error {
	if p.frozen {
		return ErrFrozenProfile
	}
	if !kind.Valid() {
		return &InvalidKindError{Name: kind.String()}
	}
	p.handlers[kind] = &Handler{Kind: kind, Fn: fn, Mutating: mutating}
	return nil
}

// SetFallback installs the type's catch-all handler. The catch-all is only
// consulted when SetFallbackEnabled(true) was also called.
func (p *Profile) SetFallback(fn FallbackFunc) error {
	if p.frozen {
		return ErrFrozenProfile
	}
	p.fallback = fn
	return nil
}

// SetFallbackEnabled gates the catch-all path.
func (p *Profile) SetFallbackEnabled(enabled bool) error {
	if p.frozen {
		return ErrFrozenProfile
	}
	p.fallbackEnabled = enabled
	return nil
}

// Lookup returns the direct handler for kind, if any. It never triggers
// derivation.
func (p *Profile) Lookup(kind operator.Kind) (*Handler, bool) {
	h, ok := p.handlers[kind]
	return h, ok
}

// Fallback returns the catch-all handler when one is installed and enabled.
func (p *Profile) Fallback() (FallbackFunc, bool) {
	if p.fallback == nil || !p.fallbackEnabled {
		return nil, false
	}
	return p.fallback, true
}

// Kinds returns the directly registered operators in catalog order.
func (p *Profile) Kinds() []operator.Kind {
	out := make([]operator.Kind, 0, len(p.handlers))
	for k := range p.handlers {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Freeze marks the profile read-only. Further Register/Replace/SetFallback
// calls fail with ErrFrozenProfile.
func (p *Profile) Freeze() { p.frozen = true }

// Frozen reports whether the profile has been frozen.
func (p *Profile) Frozen() bool { return p.frozen }

// Registry maps type names to their overload profiles, the way a runtime
// keys its per-type method tables.
type Registry struct {
	types map[string]*Profile
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Profile)}
}

// Declare returns the profile for typeName, creating it on first use.
func (r *Registry) Declare(typeName string) *Profile {
	if p, ok := r.types[typeName]; ok {
		return p
	}
	p := NewProfile(typeName)
	r.types[typeName] = p
	return p
}

// Profile returns the profile for typeName, if declared.
func (r *Registry) Profile(typeName string) (*Profile, bool) {
	p, ok := r.types[typeName]
	return p, ok
}

// TypeNames returns every declared type name, sorted.
func (r *Registry) TypeNames() []string {
	out := make([]string, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
