package overload

import (
	"github.com/funvibe/overload/internal/derive"
	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/registry"
	"github.com/funvibe/overload/internal/resolver"
)

// Re-exports of the core vocabulary, so callers never import internal
// packages.

type (
	// Kind identifies one overridable operation.
	Kind = operator.Kind
	// Arity is an operator's operand count.
	Arity = operator.Arity
	// Category groups operators by handler contract.
	Category = operator.Category

	// Value is an opaque host value.
	Value = registry.Value
	// Func is the shape of every operator handler.
	Func = registry.Func
	// FallbackFunc is a type's catch-all handler.
	FallbackFunc = registry.FallbackFunc
	// Handler is a resolved, executable handler.
	Handler = registry.Handler
	// Operand pairs a host value with its binding.
	Operand = registry.Operand
	// Profile is one type's overload set.
	Profile = registry.Profile

	// Graph is the derivation rule table.
	Graph = derive.Graph

	// Resolution is an Explain report.
	Resolution = resolver.Resolution
	// Outcome classifies a Resolution.
	Outcome = resolver.Outcome

	// DuplicateHandlerError reports re-registration without Replace.
	DuplicateHandlerError = registry.DuplicateHandlerError
	// UnsupportedOperatorError reports absence of any resolution path.
	UnsupportedOperatorError = resolver.UnsupportedOperatorError
	// FallbackHandlerError wraps a catch-all handler failure.
	FallbackHandlerError = resolver.FallbackHandlerError
)

// Operand constructors.
var (
	// Val wraps a value with no binding.
	Val = registry.Val
	// Bound wraps a value with a write-back callback.
	Bound = registry.Bound
)

// Exhausted is the sentinel an Iterate handler returns when its sequence
// has no more elements.
var Exhausted = registry.Exhausted

// Registration-time sentinels.
var (
	ErrFrozenProfile = registry.ErrFrozenProfile
	ErrUnknownType   = registry.ErrUnknownType
)

// Arities.
const (
	Unary  = operator.Unary
	Binary = operator.Binary
)

// Explain outcomes.
const (
	OutcomeAbsent   = resolver.OutcomeAbsent
	OutcomeDirect   = resolver.OutcomeDirect
	OutcomeDerived  = resolver.OutcomeDerived
	OutcomeFallback = resolver.OutcomeFallback
)

// The operator catalog.
const (
	Stringify = operator.Stringify
	Numify    = operator.Numify
	Boolify   = operator.Boolify

	Add = operator.Add
	Sub = operator.Sub
	Mul = operator.Mul
	Div = operator.Div
	Mod = operator.Mod
	Pow = operator.Pow

	Shl    = operator.Shl
	Shr    = operator.Shr
	BitAnd = operator.BitAnd
	BitOr  = operator.BitOr
	BitXor = operator.BitXor

	Neg    = operator.Neg
	Not    = operator.Not
	BitNot = operator.BitNot
	Abs    = operator.Abs

	Concat = operator.Concat

	Lt        = operator.Lt
	Le        = operator.Le
	Gt        = operator.Gt
	Ge        = operator.Ge
	Eq        = operator.Eq
	Ne        = operator.Ne
	Spaceship = operator.Spaceship

	StrLt   = operator.StrLt
	StrLe   = operator.StrLe
	StrGt   = operator.StrGt
	StrGe   = operator.StrGe
	StrEq   = operator.StrEq
	StrNe   = operator.StrNe
	Compare = operator.Compare

	AddAssign    = operator.AddAssign
	SubAssign    = operator.SubAssign
	MulAssign    = operator.MulAssign
	DivAssign    = operator.DivAssign
	ModAssign    = operator.ModAssign
	PowAssign    = operator.PowAssign
	ConcatAssign = operator.ConcatAssign
	ShlAssign    = operator.ShlAssign
	ShrAssign    = operator.ShrAssign
	BitAndAssign = operator.BitAndAssign
	BitOrAssign  = operator.BitOrAssign
	BitXorAssign = operator.BitXorAssign

	PreIncrement = operator.PreIncrement
	PreDecrement = operator.PreDecrement

	Iterate = operator.Iterate

	DerefScalar = operator.DerefScalar
	DerefArray  = operator.DerefArray
	DerefHash   = operator.DerefHash
	DerefFunc   = operator.DerefFunc
	DerefGlob   = operator.DerefGlob
)
