package symgo

import (
	"fmt"
	"math"
)

// Eval evaluates e to a number using binds to resolve variables.
//
// An unresolved variable yields an *UnboundVariableError. Division by a
// zero denominator is not an error: it follows float64 semantics and
// produces ±Inf or NaN. In a product a zero-valued factor dominates:
// every factor is still evaluated (so unbound variables are always
// reported), but the result is zero even when another factor is
// infinite.
func Eval(e Expr, binds map[string]float64) (float64, error) {
	switch x := e.(type) {
	case *Literal:
		return x.val, nil
	case *Constant:
		return x.val, nil
	case *Variable:
		v, ok := binds[x.name]
		if !ok {
			return 0, &UnboundVariableError{Name: x.name}
		}
		return v, nil
	case *Sum:
		total := 0.0
		for _, t := range x.terms {
			v, err := Eval(t, binds)
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	case *Neg:
		v, err := Eval(x.operand, binds)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *Product:
		product := 1.0
		zero := false
		for _, f := range x.factors {
			v, err := Eval(f, binds)
			if err != nil {
				return 0, err
			}
			if v == 0 {
				zero = true
				continue
			}
			product *= v
		}
		if zero {
			return 0, nil
		}
		return product, nil
	case *Quotient:
		n, err := Eval(x.num, binds)
		if err != nil {
			return 0, err
		}
		d, err := Eval(x.den, binds)
		if err != nil {
			return 0, err
		}
		return n / d, nil
	case *Power:
		base, err := Eval(x.base, binds)
		if err != nil {
			return 0, err
		}
		exp, err := Eval(x.exp, binds)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	case *Exponential:
		v, err := Eval(x.exponent, binds)
		if err != nil {
			return 0, err
		}
		return math.Exp(v), nil
	case *Sin:
		v, err := Eval(x.operand, binds)
		if err != nil {
			return 0, err
		}
		return math.Sin(v), nil
	case *Cos:
		v, err := Eval(x.operand, binds)
		if err != nil {
			return 0, err
		}
		return math.Cos(v), nil
	case *Ln:
		v, err := Eval(x.operand, binds)
		if err != nil {
			return 0, err
		}
		return math.Log(v), nil
	case *Log:
		base, err := Eval(x.base, binds)
		if err != nil {
			return 0, err
		}
		v, err := Eval(x.operand, binds)
		if err != nil {
			return 0, err
		}
		return math.Log(v) / math.Log(base), nil
	case *Abs:
		v, err := Eval(x.operand, binds)
		if err != nil {
			return 0, err
		}
		return math.Abs(v), nil
	default:
		panic(fmt.Sprintf("symgo: unknown expression variant %T", e))
	}
}

// EvalVector evaluates e once per index of the bound sequences and
// returns the results in order.
//
// All sequences in binds must have equal length; this is a caller
// contract and is not re-validated, so mismatched lengths panic on an
// out-of-range index. With an empty binds map the expression is
// evaluated once and a single-element result is returned.
func EvalVector(e Expr, binds map[string][]float64) ([]float64, error) {
	if len(binds) == 0 {
		v, err := Eval(e, nil)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}
	n := 0
	for _, vs := range binds {
		n = len(vs)
		break
	}
	out := make([]float64, 0, n)
	scalar := make(map[string]float64, len(binds))
	for i := 0; i < n; i++ {
		for name, vs := range binds {
			scalar[name] = vs[i]
		}
		v, err := Eval(e, scalar)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
