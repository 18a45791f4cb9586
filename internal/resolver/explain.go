package resolver

import (
	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/registry"
)

// Outcome classifies how an operator resolves for a type.
type Outcome int

const (
	OutcomeAbsent Outcome = iota
	OutcomeDirect
	OutcomeDerived
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDirect:
		return "direct"
	case OutcomeDerived:
		return "derived"
	case OutcomeFallback:
		return "fallback"
	default:
		return "absent"
	}
}

// Resolution describes one Explain result.
type Resolution struct {
	Kind     operator.Kind
	Outcome  Outcome
	Strategy string          // winning strategy name, for derived outcomes
	Requires []operator.Kind // the strategy's source operators
}

// Explain reports how kind would resolve for the profile's type, without
// composing a handler. It follows the same order as Resolve.
func (r *Resolver) Explain(p *registry.Profile, kind operator.Kind) Resolution {
	res := Resolution{Kind: kind}
	if p == nil || !kind.Valid() {
		return res
	}
	if _, ok := p.Lookup(kind); ok {
		res.Outcome = OutcomeDirect
		return res
	}
	for _, s := range r.graph.Strategies(kind) {
		if _, ok := gatherSources(p, s.Requires); ok {
			res.Outcome = OutcomeDerived
			res.Strategy = s.Name
			res.Requires = s.Requires
			return res
		}
	}
	if _, ok := p.Fallback(); ok {
		res.Outcome = OutcomeFallback
		return res
	}
	return res
}
