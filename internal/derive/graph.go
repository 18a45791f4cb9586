// Package derive encodes the autogeneration rules: which operators can be
// synthesized from which directly registered ones, and how. The graph is
// data, built once and shared read-only; trying strategies in order and
// composing the winner is the resolver's job.
//
// Derivation depth is exactly one: a strategy's required kinds must be
// directly registered on the type, never themselves derived. That bounds
// resolution at O(strategies) and rules out derivation cycles.
package derive

import (
	"fmt"

	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/registry"
)

// Sources holds the direct handlers a strategy matched, keyed by kind.
type Sources map[operator.Kind]*registry.Handler

// Strategy is one way to synthesize a target operator.
type Strategy struct {
	// Name identifies the strategy within its target's rule, for
	// diagnostics and policy files.
	Name string

	// Requires lists the kinds that must be directly registered.
	Requires []operator.Kind

	build buildFunc
}

// Compose builds the synthesized handler for target from the matched
// sources. The handler is marked Derived; it is marked Mutating only when
// it delegates to a source that performs its own write-back.
func (s Strategy) Compose(target operator.Kind, src Sources) *registry.Handler {
	fn, selfWriting := s.build(src)
	return &registry.Handler{
		Kind:     target,
		Fn:       fn,
		Mutating: selfWriting,
		Derived:  true,
	}
}

// Graph maps each derivable operator to its strategies in priority order.
type Graph struct {
	rules map[operator.Kind][]Strategy
}

// Default is the process-wide graph with the standard rule set and
// priority order. Built once at init; never mutated.
var defaultGraph = NewGraph()

func Default() *Graph { return defaultGraph }

// Strategies returns the strategies targeting kind, in priority order.
// Callers must not modify the returned slice.
func (g *Graph) Strategies(target operator.Kind) []Strategy {
	return g.rules[target]
}

// Derivable reports whether any rule targets kind.
func (g *Graph) Derivable(target operator.Kind) bool {
	return len(g.rules[target]) > 0
}

// Reorder permutes the strategy priority of one target. names must be a
// permutation of the target's strategy names. Only call before the graph
// is shared; a shared graph is read-only.
func (g *Graph) Reorder(target operator.Kind, names []string) error {
	current := g.rules[target]
	if len(current) == 0 {
		return fmt.Errorf("operator %s has no derivation rule", target)
	}
	if len(names) != len(current) {
		return fmt.Errorf("operator %s has %d strategies, got %d names", target, len(current), len(names))
	}
	byName := make(map[string]Strategy, len(current))
	for _, s := range current {
		byName[s.Name] = s
	}
	reordered := make([]Strategy, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return fmt.Errorf("operator %s has no strategy %q", target, name)
		}
		if seen[name] {
			return fmt.Errorf("strategy %q listed twice for operator %s", name, target)
		}
		seen[name] = true
		reordered = append(reordered, s)
	}
	g.rules[target] = reordered
	return nil
}

// NewGraph builds a graph with the standard rule set.
func NewGraph() *Graph {
	g := &Graph{rules: make(map[operator.Kind][]Strategy)}

	req := func(kinds ...operator.Kind) []operator.Kind { return kinds }

	// Unary arithmetic.
	g.rules[operator.Neg] = []Strategy{
		{Name: "sub", Requires: req(operator.Sub), build: negFromSub},
	}

	// String concatenation.
	g.rules[operator.Concat] = []Strategy{
		{Name: "stringify", Requires: req(operator.Stringify), build: concatFromStringify},
	}

	// Logical negation: any conversion gives a truth value to invert.
	g.rules[operator.Not] = []Strategy{
		{Name: "boolify", Requires: req(operator.Boolify), build: notVia(operator.Boolify)},
		{Name: "stringify", Requires: req(operator.Stringify), build: notVia(operator.Stringify)},
		{Name: "numify", Requires: req(operator.Numify), build: notVia(operator.Numify)},
	}

	// Conversion triangle: any one conversion yields the other two.
	g.rules[operator.Stringify] = []Strategy{
		{Name: "numify", Requires: req(operator.Numify), build: stringifyFromNumify},
		{Name: "boolify", Requires: req(operator.Boolify), build: stringifyFromBoolify},
	}
	g.rules[operator.Numify] = []Strategy{
		{Name: "stringify", Requires: req(operator.Stringify), build: numifyFromStringify},
		{Name: "boolify", Requires: req(operator.Boolify), build: numifyFromBoolify},
	}
	g.rules[operator.Boolify] = []Strategy{
		{Name: "stringify", Requires: req(operator.Stringify), build: boolifyVia(operator.Stringify)},
		{Name: "numify", Requires: req(operator.Numify), build: boolifyVia(operator.Numify)},
	}

	// Relational families as sign predicates over their three-way operator.
	numeric := []operator.Kind{operator.Lt, operator.Le, operator.Gt, operator.Ge, operator.Eq, operator.Ne}
	for _, k := range numeric {
		g.rules[k] = []Strategy{
			{Name: "spaceship", Requires: req(operator.Spaceship), build: relationalVia(operator.Spaceship, k)},
		}
	}
	lexical := []operator.Kind{operator.StrLt, operator.StrLe, operator.StrGt, operator.StrGe, operator.StrEq, operator.StrNe}
	for _, k := range lexical {
		g.rules[k] = []Strategy{
			{Name: "compare", Requires: req(operator.Compare), build: relationalVia(operator.Compare, k)},
		}
	}

	// Compound assignments from their binary operator; the resolver adds
	// the conditional write-back.
	compound := map[operator.Kind]struct {
		name   string
		binary operator.Kind
	}{
		operator.AddAssign:    {"add", operator.Add},
		operator.SubAssign:    {"sub", operator.Sub},
		operator.MulAssign:    {"mul", operator.Mul},
		operator.DivAssign:    {"div", operator.Div},
		operator.ModAssign:    {"mod", operator.Mod},
		operator.PowAssign:    {"pow", operator.Pow},
		operator.ConcatAssign: {"concat", operator.Concat},
		operator.ShlAssign:    {"shl", operator.Shl},
		operator.ShrAssign:    {"shr", operator.Shr},
		operator.BitAndAssign: {"bit-and", operator.BitAnd},
		operator.BitOrAssign:  {"bit-or", operator.BitOr},
		operator.BitXorAssign: {"bit-xor", operator.BitXor},
	}
	for target, c := range compound {
		g.rules[target] = []Strategy{
			{Name: c.name, Requires: req(c.binary), build: compoundFromBinary(c.binary)},
		}
	}

	// Increment/decrement: the compound assignment already carries the
	// mutation contract, so it outranks the plain binary form.
	g.rules[operator.PreIncrement] = []Strategy{
		{Name: "add-assign", Requires: req(operator.AddAssign), build: stepViaAssign(operator.AddAssign)},
		{Name: "add", Requires: req(operator.Add), build: stepViaBinary(operator.Add)},
	}
	g.rules[operator.PreDecrement] = []Strategy{
		{Name: "sub-assign", Requires: req(operator.SubAssign), build: stepViaAssign(operator.SubAssign)},
		{Name: "sub", Requires: req(operator.Sub), build: stepViaBinary(operator.Sub)},
	}

	// Absolute value: compare against zero, negate when negative. The
	// order between the four combinations is a policy choice; it can be
	// permuted with Reorder.
	g.rules[operator.Abs] = []Strategy{
		{Name: "lt+neg", Requires: req(operator.Lt, operator.Neg), build: absVia(operator.Lt, operator.Neg)},
		{Name: "lt+sub", Requires: req(operator.Lt, operator.Sub), build: absVia(operator.Lt, operator.Sub)},
		{Name: "spaceship+neg", Requires: req(operator.Spaceship, operator.Neg), build: absVia(operator.Spaceship, operator.Neg)},
		{Name: "spaceship+sub", Requires: req(operator.Spaceship, operator.Sub), build: absVia(operator.Spaceship, operator.Sub)},
	}

	return g
}
