package derive

import (
	"fmt"
	"strconv"

	"github.com/funvibe/overload/internal/registry"
)

// Native glue for synthesized handlers. Derived conversion directions and
// sign predicates have to look at what a source handler returned: a
// Stringify handler must have produced a native string, a Numify or
// three-way handler a native number, a Boolify handler a native bool.
// Anything else is a contract violation by the handler and fails the
// composed invocation.

func asString(v registry.Value) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected native string, got %T", v)
}

func asBool(v registry.Value) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("expected native bool, got %T", v)
}

func asNumber(v registry.Value) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected native number, got %T", v)
	}
}

// signOf reduces a three-way comparison result to -1, 0 or 1.
func signOf(v registry.Value) (int, error) {
	n, err := asNumber(v)
	if err != nil {
		return 0, err
	}
	switch {
	case n < 0:
		return -1, nil
	case n > 0:
		return 1, nil
	default:
		return 0, nil
	}
}

// parseNumber implements the stringify→numify direction of the conversion
// triangle: integer form first, float form second.
func parseNumber(s string) (registry.Value, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as a number", s)
	}
	return f, nil
}

// formatNumber implements the numify→stringify direction.
func formatNumber(v registry.Value) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("expected native number, got %T", v)
	}
}

// nativeZero and nativeOne are the literals fed to Sub and Add handlers
// when negation and increment/decrement are derived from them.
func nativeZero() *registry.Operand { return registry.Val(int64(0)) }
func nativeOne() *registry.Operand  { return registry.Val(int64(1)) }
