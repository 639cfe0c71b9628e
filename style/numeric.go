// Package style implements the per-element style bag (spec 3. "Style")
// and its percentage/additive evaluator (spec 4.2).
package style

import "math"

// Status tracks whether a property has ever been set, matching spec
// 3.'s "status ∈ {UNINITIALIZED, INITIALIZED, VALUE}" tri-state.
type Status int

const (
	Uninitialized Status = iota
	Initialized
	Value
)

// EvalType selects how a Numeric resolves against its parent context.
type EvalType int

const (
	Absolute EvalType = iota
	Percentage
	Additive
)

// Numeric is a typed dimension/position property. ABSOLUTE values
// resolve as-is; PERCENTAGE values resolve against the parent's
// current extent; ADDITIVE values sum their resolved Parts.
type Numeric struct {
	Status Status
	Eval   EvalType
	Amount float64
	Parts  []Numeric
}

// Abs builds an absolute numeric value.
func Abs(v float64) Numeric {
	return Numeric{Status: Value, Eval: Absolute, Amount: v}
}

// Pct builds a percentage numeric value (v in [0,1]).
func Pct(v float64) Numeric {
	return Numeric{Status: Value, Eval: Percentage, Amount: v}
}

// Add builds an additive numeric value summing the resolved parts.
func Add(parts ...Numeric) Numeric {
	return Numeric{Status: Value, Eval: Additive, Parts: parts}
}

// Resolve evaluates the numeric against parentExtent, which is the
// parent's current resolved width/height (or the terminal size if the
// element has no parent), per spec 4.2.
func (n Numeric) Resolve(parentExtent int) int {
	switch n.Eval {
	case Percentage:
		return int(math.Round(n.Amount * float64(parentExtent)))
	case Additive:
		sum := 0
		for _, p := range n.Parts {
			sum += p.Resolve(parentExtent)
		}
		return sum
	default:
		return int(math.Round(n.Amount))
	}
}

// IsSet reports whether the property carries a real value, as opposed
// to its zero value.
func (n Numeric) IsSet() bool { return n.Status != Uninitialized }

// Equal reports whether two numerics would resolve identically for
// every parentExtent — used by the "setting a style property to its
// current value does not dirty any stain" invariant (spec 8.).
func (n Numeric) Equal(o Numeric) bool {
	if n.Status != o.Status || n.Eval != o.Eval {
		return false
	}
	if n.Eval == Additive {
		if len(n.Parts) != len(o.Parts) {
			return false
		}
		for i := range n.Parts {
			if !n.Parts[i].Equal(o.Parts[i]) {
				return false
			}
		}
		return true
	}
	return n.Amount == o.Amount
}
