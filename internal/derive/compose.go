package derive

import (
	"github.com/funvibe/overload/internal/operator"
	"github.com/funvibe/overload/internal/registry"
)

// Composition builders. Each takes the directly registered source handlers
// a strategy matched and returns the synthesized handler body plus whether
// that body performs its own receiver write-back (true only when it
// delegates to a source that is itself mutating). The resolver adds the
// conditional write-back for mutating targets whose body is pure.

type buildFunc func(src Sources) (fn registry.Func, selfWriting bool)

// callUnary invokes a conversion-shaped source handler on the receiver.
func callUnary(h *registry.Handler, recv *registry.Operand) (registry.Value, error) {
	return h.Fn(recv, nil, false)
}

// negFromSub: -x computed as 0 - x. The receiver stays the receiver and
// the swapped flag tells the Sub handler the zero is really on the left.
func negFromSub(src Sources) (registry.Func, bool) {
	sub := src[operator.Sub]
	return func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
		return sub.Fn(recv, nativeZero(), true)
	}, false
}

// concatFromStringify: stringify both operands, then concatenate natively
// in evaluation order. The receiver always goes through the type's
// Stringify handler; the other operand does too unless it already is a
// native string (a mixed expression like obj . "suffix").
func concatFromStringify(src Sources) (registry.Func, bool) {
	str := src[operator.Stringify]
	stringifyOperand := func(o *registry.Operand) (string, error) {
		v, err := callUnary(str, o)
		if err != nil {
			return "", err
		}
		return asString(v)
	}
	return func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
		rs, err := stringifyOperand(recv)
		if err != nil {
			return nil, err
		}
		as, ok := arg.Value.(string)
		if !ok {
			as, err = stringifyOperand(arg)
			if err != nil {
				return nil, err
			}
		}
		if swapped {
			return as + rs, nil
		}
		return rs + as, nil
	}, false
}

// Truthiness of the receiver through one of the conversion handlers:
// boolify directly, stringify via non-emptiness, numify via non-zero.
func truthVia(kind operator.Kind, src Sources) registry.Func {
	h := src[kind]
	return func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
		v, err := callUnary(h, recv)
		if err != nil {
			return nil, err
		}
		switch kind {
		case operator.Boolify:
			return asBool(v)
		case operator.Stringify:
			s, err := asString(v)
			if err != nil {
				return nil, err
			}
			return s != "", nil
		default: // Numify
			n, err := asNumber(v)
			if err != nil {
				return nil, err
			}
			return n != 0, nil
		}
	}
}

func notVia(kind operator.Kind) buildFunc {
	return func(src Sources) (registry.Func, bool) {
		truth := truthVia(kind, src)
		return func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
			v, err := truth(recv, arg, swapped)
			if err != nil {
				return nil, err
			}
			return !v.(bool), nil
		}, false
	}
}

func boolifyVia(kind operator.Kind) buildFunc {
	return func(src Sources) (registry.Func, bool) {
		return truthVia(kind, src), false
	}
}

// Conversion triangle, remaining synthesized directions.

func stringifyFromNumify(src Sources) (registry.Func, bool) {
	num := src[operator.Numify]
	return func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
		v, err := callUnary(num, recv)
		if err != nil {
			return nil, err
		}
		return formatNumber(v)
	}, false
}

func stringifyFromBoolify(src Sources) (registry.Func, bool) {
	truth := truthVia(operator.Boolify, src)
	return func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
		v, err := truth(recv, arg, swapped)
		if err != nil {
			return nil, err
		}
		if v.(bool) {
			return "1", nil
		}
		return "", nil
	}, false
}

func numifyFromStringify(src Sources) (registry.Func, bool) {
	str := src[operator.Stringify]
	return func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
		v, err := callUnary(str, recv)
		if err != nil {
			return nil, err
		}
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		return parseNumber(s)
	}, false
}

func numifyFromBoolify(src Sources) (registry.Func, bool) {
	truth := truthVia(operator.Boolify, src)
	return func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
		v, err := truth(recv, arg, swapped)
		if err != nil {
			return nil, err
		}
		if v.(bool) {
			return int64(1), nil
		}
		return int64(0), nil
	}, false
}

// relationalVia: a relational operator as a sign predicate over a
// three-way comparison (Spaceship for the numeric family, Compare for the
// lexical one). The swapped flag is passed straight through — the source
// handler corrects its own sign.
func relationalVia(threeWay, target operator.Kind) buildFunc {
	return func(src Sources) (registry.Func, bool) {
		cmp := src[threeWay]
		return func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
			v, err := cmp.Fn(recv, arg, swapped)
			if err != nil {
				return nil, err
			}
			sign, err := signOf(v)
			if err != nil {
				return nil, err
			}
			switch target {
			case operator.Lt, operator.StrLt:
				return sign < 0, nil
			case operator.Le, operator.StrLe:
				return sign <= 0, nil
			case operator.Gt, operator.StrGt:
				return sign > 0, nil
			case operator.Ge, operator.StrGe:
				return sign >= 0, nil
			case operator.Eq, operator.StrEq:
				return sign == 0, nil
			default: // Ne, StrNe
				return sign != 0, nil
			}
		}, false
	}
}

// compoundFromBinary: the compound assignment computes through the plain
// binary handler; the resolver supplies the conditional write-back.
func compoundFromBinary(binary operator.Kind) buildFunc {
	return func(src Sources) (registry.Func, bool) {
		h := src[binary]
		return func(recv, arg *registry.Operand, swapped bool) (registry.Value, error) {
			return h.Fn(recv, arg, swapped)
		}, h.Mutating
	}
}

// stepViaAssign: ++/-- through the corresponding compound assignment with
// a literal 1. The compound handler carries the mutation contract itself.
func stepViaAssign(assign operator.Kind) buildFunc {
	return func(src Sources) (registry.Func, bool) {
		h := src[assign]
		return func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
			return h.Fn(recv, nativeOne(), false)
		}, h.Mutating
	}
}

// stepViaBinary: ++/-- through plain Add/Sub with a literal 1; the
// resolver supplies the write-back.
func stepViaBinary(binary operator.Kind) buildFunc {
	return func(src Sources) (registry.Func, bool) {
		h := src[binary]
		return func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
			return h.Fn(recv, nativeOne(), false)
		}, h.Mutating
	}
}

// absVia: compare the receiver against zero, negate when negative.
// The comparison source is Lt or Spaceship, the negation source Neg or Sub.
func absVia(cmpKind, negKind operator.Kind) buildFunc {
	return func(src Sources) (registry.Func, bool) {
		cmp := src[cmpKind]
		neg := src[negKind]
		return func(recv, _ *registry.Operand, _ bool) (registry.Value, error) {
			v, err := cmp.Fn(recv, nativeZero(), false)
			if err != nil {
				return nil, err
			}
			var negative bool
			if cmpKind == operator.Lt {
				negative, err = asBool(v)
			} else {
				var sign int
				sign, err = signOf(v)
				negative = sign < 0
			}
			if err != nil {
				return nil, err
			}
			if !negative {
				return recv.Value, nil
			}
			if negKind == operator.Neg {
				return neg.Fn(recv, nil, false)
			}
			return neg.Fn(recv, nativeZero(), true) // 0 - x
		}, false
	}
}
