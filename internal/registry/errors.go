package registry

import (
	"errors"
	"fmt"

	"github.com/funvibe/overload/internal/operator"
)

// ErrFrozenProfile is returned when a profile is modified after Freeze.
var ErrFrozenProfile = errors.New("profile is frozen")

// ErrUnknownType is returned when a registry operation names a type that
// was never declared.
var ErrUnknownType = errors.New("unknown type")

// DuplicateHandlerError reports a second registration for an operator the
// type already handles. Re-registration must go through Replace; silent
// overwrites would change derivation results behind the caller's back.
type DuplicateHandlerError struct {
	TypeName string
	Kind     operator.Kind
}

func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("operator %s already registered for type %s", e.Kind, e.TypeName)
}

// InvalidKindError reports an attempt to register a handler for something
// outside the operator catalog.
type InvalidKindError struct {
	Name string
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("not an overridable operator: %s", e.Name)
}
