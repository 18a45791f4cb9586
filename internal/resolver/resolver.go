// Package resolver turns "type X, operator op" into an executable handler.
// Resolution order: direct lookup in the type's profile, then the
// derivation graph (first strategy whose required sources are all directly
// registered), then the type's catch-all handler when enabled, then
// absent. Exhausting derivation strategies is recovered locally — only
// true absence of any path is surfaced to the caller.
package resolver

import (
	"reflect"

	"github.com/funvibe/overload/internal/derive"
	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/registry"
)

// Resolver resolves operators against type profiles using one shared
// derivation graph. It is stateless apart from the graph and safe for
// concurrent use once the graph and the profiles it is handed are frozen.
type Resolver struct {
	graph *derive.Graph
}

// New creates a resolver over graph. A nil graph means the default
// rule set.
func New(graph *derive.Graph) *Resolver {
	if graph == nil {
		graph = derive.Default()
	}
	return &Resolver{graph: graph}
}

// Resolve returns an executable handler for kind on the profile's type,
// or ok=false when no direct, derived or catch-all path exists.
func (r *Resolver) Resolve(p *registry.Profile, kind operator.Kind) (*registry.Handler, bool) {
	if p == nil || !kind.Valid() {
		return nil, false
	}
	if h, ok := r.resolveOwn(p, kind); ok {
		return h, true
	}
	return r.resolveFallback(p, kind)
}

// resolveOwn covers the paths where the type genuinely owns the operator:
// a direct handler or a one-step derivation from direct handlers.
func (r *Resolver) resolveOwn(p *registry.Profile, kind operator.Kind) (*registry.Handler, bool) {
	if h, ok := p.Lookup(kind); ok {
		return h, true
	}
	for _, s := range r.graph.Strategies(kind) {
		src, ok := gatherSources(p, s.Requires)
		if !ok {
			continue // next strategy; exhaustion is not an error
		}
		h := s.Compose(kind, src)
		if kind.Mutating() && !h.Mutating {
			h = withWriteBack(h)
		}
		return h, true
	}
	return nil, false
}

// resolveFallback routes kind through the type's catch-all handler, when
// one is installed and enabled. The requested kind is passed to the
// handler as data so it can branch on which operator triggered it.
func (r *Resolver) resolveFallback(p *registry.Profile, kind operator.Kind) (*registry.Handler, bool) {
	fb, ok := p.Fallback()
	if !ok {
		return nil, false
	}
	typeName := p.TypeName()
	fn := func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
		v, err := fb(kind, recv, arg, swapped)
		if err != nil {
			return nil, &FallbackHandlerError{TypeName: typeName, Kind: kind, Err: err}
		}
		return v, nil
	}
	// The catch-all is trusted like a registered handler: no synthesized
	// write-back on top of it.
	return &registry.Handler{
		Kind:     kind,
		Fn:       fn,
		Mutating: kind.Mutating(),
		Derived:  true,
		Fallback: true,
	}, true
}

// ResolveBinary picks the receiving operand for a binary operator. The
// left operand's type wins when it owns the operator (directly or by
// derivation); otherwise the right operand's type is tried with
// swapped=true. Catch-all handlers are only consulted after neither side
// owns the operator, left first.
func (r *Resolver) ResolveBinary(left, right *registry.Profile, kind operator.Kind) (h *registry.Handler, swapped, ok bool) {
	if !kind.Valid() || kind.Arity() != operator.Binary {
		return nil, false, false
	}
	if left != nil {
		if h, ok := r.resolveOwn(left, kind); ok {
			return h, false, true
		}
	}
	if right != nil && right != left {
		if h, ok := r.resolveOwn(right, kind); ok {
			return h, true, true
		}
	}
	if left != nil {
		if h, ok := r.resolveFallback(left, kind); ok {
			return h, false, true
		}
	}
	if right != nil && right != left {
		if h, ok := r.resolveFallback(right, kind); ok {
			return h, true, true
		}
	}
	return nil, false, false
}

// Invoke runs a resolved handler. A nil handler yields an
// *UnsupportedOperatorError with blank fields — a nil handler names
// neither a type nor an operator, and the caller holding the failed
// Resolve knows both; surfacing absence is otherwise its business.
func (r *Resolver) Invoke(h *registry.Handler, recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
	if h == nil {
		return nil, &UnsupportedOperatorError{}
	}
	return h.Fn(recv, arg, swapped)
}

// gatherSources checks that every required kind has a direct handler.
// Derived handlers never count as sources — derivation depth is one.
func gatherSources(p *registry.Profile, requires []operator.Kind) (derive.Sources, bool) {
	src := make(derive.Sources, len(requires))
	for _, k := range requires {
		h, ok := p.Lookup(k)
		if !ok {
			return nil, false
		}
		src[k] = h
	}
	return src, true
}

// withWriteBack wraps a pure composed handler with the mutating-operator
// contract: compute the new value, then rebind the receiver only when the
// value actually changed. Rebinding unconditionally would change object
// identity even when the value did not. A handler error propagates before
// any rebind, leaving the receiver untouched.
func withWriteBack(h *registry.Handler) *registry.Handler {
	inner := h.Fn
	return &registry.Handler{
		Kind:    h.Kind,
		Derived: h.Derived,
		Fn: func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
			old := recv.Value
			v, err := inner(recv, arg, swapped)
			if err != nil {
				return nil, err
			}
			if !sameValue(old, v) {
				recv.Rebind(v)
			}
			return v, nil
		},
		Mutating: true,
	}
}

// sameValue is native sameness: identical interface value when the dynamic
// type is comparable (pointer identity for pointer-shaped hosts), never
// equal otherwise. Using the type's own Eq handler here would chain a
// second resolution into the write-back, breaking the depth-one guarantee.
func sameValue(a, b registry.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
