// Package operator defines the catalog of overridable operations: every
// operator a type may register a handler for, with its arity, category and
// mutation contract. The catalog is fixed at compile time; it is the key
// space of the handler registry and the derivation graph.
//
// Short-circuiting control-flow operators (&&, ||, ?:) are deliberately
// absent: they suspend evaluation of unevaluated operands, which cannot be
// expressed as a handler substitution.
package operator

// Kind identifies one overridable operation.
type Kind int

const (
	Invalid Kind = iota

	// Conversions
	Stringify // ""
	Numify    // 0+
	Boolify   // bool

	// Binary arithmetic
	Add // +
	Sub // -
	Mul // *
	Div // /
	Mod // %
	Pow // **

	// Binary bitwise
	Shl    // <<
	Shr    // >>
	BitAnd // &
	BitOr  // |
	BitXor // ^

	// Unary
	Neg    // neg
	Not    // !
	BitNot // ~
	Abs    // abs

	// String
	Concat // .

	// Numeric comparison
	Lt        // <
	Le        // <=
	Gt        // >
	Ge        // >=
	Eq        // ==
	Ne        // !=
	Spaceship // <=>

	// Lexical comparison
	StrLt   // lt
	StrLe   // le
	StrGt   // gt
	StrGe   // ge
	StrEq   // eq
	StrNe   // ne
	Compare // cmp

	// Compound assignment
	AddAssign    // +=
	SubAssign    // -=
	MulAssign    // *=
	DivAssign    // /=
	ModAssign    // %=
	PowAssign    // **=
	ConcatAssign // .=
	ShlAssign    // <<=
	ShrAssign    // >>=
	BitAndAssign // &=
	BitOrAssign  // |=
	BitXorAssign // ^=

	// Increment/decrement
	PreIncrement // ++
	PreDecrement // --

	// Iteration
	Iterate // <>

	// Dereference
	DerefScalar // ${}
	DerefArray  // @{}
	DerefHash   // %{}
	DerefFunc   // &{}
	DerefGlob   // *{}

	kindCount
)

// Arity is the operand count of an operator.
type Arity int

const (
	Unary Arity = iota + 1
	Binary
)

// Category groups operators by the contract their handlers follow.
type Category int

const (
	CategoryInvalid Category = iota
	CategoryConversion
	CategoryArithmetic
	CategoryBitwise
	CategoryComparison
	CategoryString
	CategoryAssignment
	CategoryMutating
	CategoryIteration
	CategoryDereference
)

func (c Category) String() string {
	switch c {
	case CategoryConversion:
		return "conversion"
	case CategoryArithmetic:
		return "arithmetic"
	case CategoryBitwise:
		return "bitwise"
	case CategoryComparison:
		return "comparison"
	case CategoryString:
		return "string"
	case CategoryAssignment:
		return "assignment"
	case CategoryMutating:
		return "mutating"
	case CategoryIteration:
		return "iteration"
	case CategoryDereference:
		return "dereference"
	default:
		return "invalid"
	}
}

// info is the static property record of one catalog entry.
type info struct {
	name     string // symbolic key, the way handlers are declared
	arity    Arity
	category Category
	ordered  bool // binary only: operand order matters (swapped flag is meaningful)
	mutating bool // handler must rebind the receiver
}

var infos = [kindCount]info{
	Stringify: {`""`, Unary, CategoryConversion, false, false},
	Numify:    {"0+", Unary, CategoryConversion, false, false},
	Boolify:   {"bool", Unary, CategoryConversion, false, false},

	Add: {"+", Binary, CategoryArithmetic, false, false},
	Sub: {"-", Binary, CategoryArithmetic, true, false},
	Mul: {"*", Binary, CategoryArithmetic, false, false},
	Div: {"/", Binary, CategoryArithmetic, true, false},
	Mod: {"%", Binary, CategoryArithmetic, true, false},
	Pow: {"**", Binary, CategoryArithmetic, true, false},

	Shl:    {"<<", Binary, CategoryBitwise, true, false},
	Shr:    {">>", Binary, CategoryBitwise, true, false},
	BitAnd: {"&", Binary, CategoryBitwise, false, false},
	BitOr:  {"|", Binary, CategoryBitwise, false, false},
	BitXor: {"^", Binary, CategoryBitwise, false, false},

	Neg:    {"neg", Unary, CategoryArithmetic, false, false},
	Not:    {"!", Unary, CategoryArithmetic, false, false},
	BitNot: {"~", Unary, CategoryBitwise, false, false},
	Abs:    {"abs", Unary, CategoryArithmetic, false, false},

	Concat: {".", Binary, CategoryString, true, false},

	Lt:        {"<", Binary, CategoryComparison, true, false},
	Le:        {"<=", Binary, CategoryComparison, true, false},
	Gt:        {">", Binary, CategoryComparison, true, false},
	Ge:        {">=", Binary, CategoryComparison, true, false},
	Eq:        {"==", Binary, CategoryComparison, false, false},
	Ne:        {"!=", Binary, CategoryComparison, false, false},
	Spaceship: {"<=>", Binary, CategoryComparison, true, false},

	StrLt:   {"lt", Binary, CategoryComparison, true, false},
	StrLe:   {"le", Binary, CategoryComparison, true, false},
	StrGt:   {"gt", Binary, CategoryComparison, true, false},
	StrGe:   {"ge", Binary, CategoryComparison, true, false},
	StrEq:   {"eq", Binary, CategoryComparison, false, false},
	StrNe:   {"ne", Binary, CategoryComparison, false, false},
	Compare: {"cmp", Binary, CategoryComparison, true, false},

	AddAssign:    {"+=", Binary, CategoryAssignment, true, true},
	SubAssign:    {"-=", Binary, CategoryAssignment, true, true},
	MulAssign:    {"*=", Binary, CategoryAssignment, true, true},
	DivAssign:    {"/=", Binary, CategoryAssignment, true, true},
	ModAssign:    {"%=", Binary, CategoryAssignment, true, true},
	PowAssign:    {"**=", Binary, CategoryAssignment, true, true},
	ConcatAssign: {".=", Binary, CategoryAssignment, true, true},
	ShlAssign:    {"<<=", Binary, CategoryAssignment, true, true},
	ShrAssign:    {">>=", Binary, CategoryAssignment, true, true},
	BitAndAssign: {"&=", Binary, CategoryAssignment, true, true},
	BitOrAssign:  {"|=", Binary, CategoryAssignment, true, true},
	BitXorAssign: {"^=", Binary, CategoryAssignment, true, true},

	PreIncrement: {"++", Unary, CategoryMutating, false, true},
	PreDecrement: {"--", Unary, CategoryMutating, false, true},

	Iterate: {"<>", Unary, CategoryIteration, false, false},

	DerefScalar: {"${}", Unary, CategoryDereference, false, false},
	DerefArray:  {"@{}", Unary, CategoryDereference, false, false},
	DerefHash:   {"%{}", Unary, CategoryDereference, false, false},
	DerefFunc:   {"&{}", Unary, CategoryDereference, false, false},
	DerefGlob:   {"*{}", Unary, CategoryDereference, false, false},
}

// byName maps symbolic keys back to kinds, for configuration files and
// diagnostics. Built once at init.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, int(kindCount))
	for k := Kind(1); k < kindCount; k++ {
		m[infos[k].name] = k
	}
	return m
}()

// Valid reports whether k is a catalog entry.
func (k Kind) Valid() bool {
	return k > Invalid && k < kindCount
}

// String returns the symbolic key of the operator (e.g. "+", "<=>", `""`).
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return infos[k].name
}

// Arity returns the operand count of the operator.
func (k Kind) Arity() Arity {
	if !k.Valid() {
		return 0
	}
	return infos[k].arity
}

// Category returns the operator's contract category.
func (k Kind) Category() Category {
	if !k.Valid() {
		return CategoryInvalid
	}
	return infos[k].category
}

// Ordered reports whether operand order matters for a binary operator.
// Handlers of ordered operators must honor the swapped flag.
func (k Kind) Ordered() bool {
	return k.Valid() && infos[k].ordered
}

// Mutating reports whether the operator must rebind its receiver.
func (k Kind) Mutating() bool {
	return k.Valid() && infos[k].mutating
}

// Parse resolves a symbolic key to its kind. It fails for anything outside
// the catalog, including the short-circuit operators ("&&", "||").
func Parse(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// Kinds returns every catalog entry in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount)-1)
	for k := Kind(1); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
