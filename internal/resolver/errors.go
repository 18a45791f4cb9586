package resolver

import (
	"fmt"

	"github.com/funvibe/overload/internal/operator"
)

// UnsupportedOperatorError reports that no direct handler, derivation
// strategy or enabled catch-all resolves the operator for the type. The
// evaluator decides whether this is fatal or falls back to native
// behavior; the resolver only signals absence.
//
// TypeName and Kind are blank when the failure is an invocation of a nil
// handler: a nil handler carries neither, and naming them is the caller's
// job (it knows what it failed to resolve).
type UnsupportedOperatorError struct {
	TypeName string
	Kind     operator.Kind
}

func (e *UnsupportedOperatorError) Error() string {
	if e.TypeName == "" && !e.Kind.Valid() {
		return "no handler resolved for operator invocation"
	}
	if e.TypeName == "" {
		return fmt.Sprintf("operator %s not supported", e.Kind)
	}
	return fmt.Sprintf("operator %s not supported for type %s", e.Kind, e.TypeName)
}

// FallbackHandlerError wraps a failure signaled by a type's catch-all
// handler. The payload is propagated unchanged.
type FallbackHandlerError struct {
	TypeName string
	Kind     operator.Kind
	Err      error
}

func (e *FallbackHandlerError) Error() string {
	return fmt.Sprintf("fallback handler for type %s failed on operator %s: %s", e.TypeName, e.Kind, e.Err)
}

func (e *FallbackHandlerError) Unwrap() error { return e.Err }
