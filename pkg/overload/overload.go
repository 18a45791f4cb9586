// Package overload is the public surface of the operator-overloading
// resolution core. An Engine owns a registry of per-type overload profiles
// and a resolver over a derivation graph; an external evaluator registers
// handlers during each type's declaration phase, freezes the profiles, and
// then calls Resolve/Invoke on every operator use.
//
// The engine never inspects host values, never evaluates expressions and
// never supplies native operator behavior — when Resolve reports an
// operator as absent, choosing a default is the evaluator's business.
package overload

import (
	"github.com/funvibe/overload/internal/derive"
	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/registry"
	"github.com/funvibe/overload/internal/resolver"
)

// Engine ties a handler registry to a resolver.
type Engine struct {
	reg *registry.Registry
	res *resolver.Resolver
}

// New creates an engine with the default derivation graph.
func New() *Engine {
	return NewWithGraph(nil)
}

// NewWithGraph creates an engine over a custom derivation graph, e.g. one
// reordered by a config.Policy. A nil graph means the default rule set.
func NewWithGraph(g *Graph) *Engine {
	return &Engine{
		reg: registry.NewRegistry(),
		res: resolver.New(g),
	}
}

// RegisterHandler adds a direct handler for kind to typeName's profile,
// declaring the type on first use. Registering the same operator twice
// fails with *DuplicateHandlerError; use ReplaceHandler to overwrite.
func (e *Engine) RegisterHandler(typeName string, kind Kind, fn Func, mutating bool) error {
	return e.reg.Declare(typeName).Register(kind, fn, mutating)
}

// ReplaceHandler installs a handler for kind, overwriting any existing one.
func (e *Engine) ReplaceHandler(typeName string, kind Kind, fn Func, mutating bool) error {
	return e.reg.Declare(typeName).Replace(kind, fn, mutating)
}

// RegisterFallback installs typeName's catch-all handler and enables it.
func (e *Engine) RegisterFallback(typeName string, fn FallbackFunc) error {
	p := e.reg.Declare(typeName)
	if err := p.SetFallback(fn); err != nil {
		return err
	}
	return p.SetFallbackEnabled(true)
}

// SetFallbackEnabled gates typeName's catch-all path.
func (e *Engine) SetFallbackEnabled(typeName string, enabled bool) error {
	return e.reg.Declare(typeName).SetFallbackEnabled(enabled)
}

// Freeze marks typeName's profile read-only. Call it when the type's
// declaration phase ends, before the profile is read concurrently.
func (e *Engine) Freeze(typeName string) error {
	p, ok := e.reg.Profile(typeName)
	if !ok {
		return registry.ErrUnknownType
	}
	p.Freeze()
	return nil
}

// FreezeAll freezes every declared profile.
func (e *Engine) FreezeAll() {
	for _, name := range e.reg.TypeNames() {
		if p, ok := e.reg.Profile(name); ok {
			p.Freeze()
		}
	}
}

// Profile returns typeName's profile, if declared.
func (e *Engine) Profile(typeName string) (*Profile, bool) {
	return e.reg.Profile(typeName)
}

// Resolve returns an executable handler for kind on typeName, trying the
// direct handler, then one-step derivation, then the enabled catch-all.
// ok=false means the operator is unsupported for the type.
func (e *Engine) Resolve(typeName string, kind Kind) (*Handler, bool) {
	p, ok := e.reg.Profile(typeName)
	if !ok {
		return nil, false
	}
	return e.res.Resolve(p, kind)
}

// ResolveBinary picks the receiver for a binary operator between two
// operand types. swapped=true means the right operand's type won and the
// handler must see the operands in exchanged order. Either type name may
// be empty for a plain native operand.
func (e *Engine) ResolveBinary(leftType, rightType string, kind Kind) (h *Handler, swapped, ok bool) {
	var left, right *registry.Profile
	if leftType != "" {
		left, _ = e.reg.Profile(leftType)
	}
	if rightType != "" {
		right, _ = e.reg.Profile(rightType)
	}
	return e.res.ResolveBinary(left, right, kind)
}

// Invoke runs a resolved handler against the operands.
func (e *Engine) Invoke(h *Handler, recv, arg *Operand, swapped bool) (Value, error) {
	return e.res.Invoke(h, recv, arg, swapped)
}

// Explain reports how kind would resolve for typeName without composing a
// handler: direct, derived (and via which strategy), fallback or absent.
func (e *Engine) Explain(typeName string, kind Kind) Resolution {
	p, ok := e.reg.Profile(typeName)
	if !ok {
		return Resolution{Kind: kind}
	}
	return e.res.Explain(p, kind)
}

// NewGraph builds a derivation graph with the standard rule set, for
// callers that want to Reorder strategies before constructing an engine.
func NewGraph() *Graph {
	return derive.NewGraph()
}

// Parse resolves a symbolic operator name (e.g. "+", "<=>", `""`) to its
// kind.
func Parse(name string) (Kind, bool) {
	return operator.Parse(name)
}

// Kinds returns the full operator catalog in declaration order.
func Kinds() []Kind {
	return operator.Kinds()
}
