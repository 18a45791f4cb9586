package registry

import (
	"github.com/funvibe/overload/internal/operator"
)

// Value is an opaque host value. The registry and resolver never inspect
// it beyond handing it to handlers; only derivation glue coerces the
// results of conversion handlers to native Go strings, numbers and bools.
type Value = any

// Func is the shape of every operator handler.
//
// recv is the receiving operand (the one whose type registered the
// handler). arg is the other operand for binary operators and nil for
// unary ones. swapped reports that the operands were exchanged relative to
// registration order, so handlers of order-sensitive operators
// (subtraction, comparisons) can correct their sign.
//
// Handlers registered as mutating are trusted to rebind recv themselves
// via Operand.Rebind; pure handlers must not touch the binding.
type Func func(recv, arg *Operand, swapped bool) (Value, error)

// FallbackFunc is a type's catch-all ("nomethod") handler. It receives the
// operator that failed to resolve so it can branch on it.
type FallbackFunc func(kind operator.Kind, recv, arg *Operand, swapped bool) (Value, error)

// Handler is a resolved, executable handler for one operator.
type Handler struct {
	Kind     operator.Kind
	Fn       Func
	Mutating bool // performs its own receiver write-back
	Derived  bool // synthesized by the resolver rather than registered directly
	Fallback bool // routes through the type's catch-all handler
}

// Operand pairs a host value with the binding it was read from. Mutating
// operators rebind through it; everything else only reads Value.
//
// An Operand never owns the value — rebinding goes through the caller's
// store callback, so composed handlers hold no reference back into the
// operand once invocation returns.
type Operand struct {
	Value Value
	store func(Value)
}

// Val wraps a value with no binding. Rebind on such an operand is a no-op
// on the caller's side.
func Val(v Value) *Operand {
	return &Operand{Value: v}
}

// Bound wraps a value together with the callback that writes a replacement
// back into the operand's binding.
func Bound(v Value, store func(Value)) *Operand {
	return &Operand{Value: v, store: store}
}

// Rebind replaces the operand's bound value.
func (o *Operand) Rebind(v Value) {
	if o.store != nil {
		o.store(v)
	}
	o.Value = v
}

// Bindable reports whether the operand carries a writable binding.
func (o *Operand) Bindable() bool {
	return o.store != nil
}

// exhausted is the type of the Exhausted sentinel.
type exhausted struct{}

func (exhausted) String() string { return "exhausted" }

// Exhausted is the sentinel an Iterate handler returns when its sequence
// has no more elements. The resolver never caches or replays iteration
// results; restartability is the handler's own business.
var Exhausted Value = exhausted{}
