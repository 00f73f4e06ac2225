package symgo

import "math"

// Simplify returns a new expression denoting the same value with
// redundant structure removed. Children are simplified first, then the
// parent's own rule is applied; the pass is not a fixed-point loop, so
// a second call may occasionally reduce further.
func (b *Builder) Simplify(e Expr) Expr { return simplifyExpr(e, b.cfg) }

func simplifyExpr(e Expr, cfg Config) Expr {
	switch x := e.(type) {
	case *Literal, *Constant, *Variable:
		return e

	case *Sum:
		kept := make([]Expr, 0, len(x.terms))
		for _, t := range x.terms {
			s := simplifyExpr(t, cfg)
			if isLiteral(s, 0) {
				continue
			}
			// A simplified child may itself have reduced to a Sum
			// (e.g. an unwrapped product); keep the tree flat.
			if inner, ok := s.(*Sum); ok {
				kept = append(kept, inner.terms...)
			} else {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			return &Literal{val: 0}
		}
		if len(kept) == 1 {
			return kept[0]
		}
		return &Sum{terms: kept}

	case *Neg:
		return &Neg{operand: simplifyExpr(x.operand, cfg)}

	case *Product:
		coeff := 1.0
		kept := make([]Expr, 0, len(x.factors))
		for _, f := range x.factors {
			s := simplifyExpr(f, cfg)
			elems := []Expr{s}
			if inner, ok := s.(*Product); ok {
				elems = inner.factors
			}
			for _, el := range elems {
				if isLiteral(el, 0) {
					return &Literal{val: 0}
				}
				if isLiteral(el, 1) {
					continue
				}
				if lit, ok := el.(*Literal); ok {
					coeff *= lit.val
					continue
				}
				kept = append(kept, el)
			}
		}
		if coeff == 0 {
			return &Literal{val: 0}
		}
		if len(kept) == 0 {
			return &Literal{val: coeff}
		}
		if coeff != 1 {
			kept = append([]Expr{&Literal{val: coeff}}, kept...)
		}
		if len(kept) == 1 {
			return kept[0]
		}
		return &Product{factors: kept}

	case *Quotient:
		num := simplifyExpr(x.num, cfg)
		den := simplifyExpr(x.den, cfg)
		if isLiteral(num, 0) {
			return &Literal{val: 0}
		}
		return &Quotient{num: num, den: den}

	case *Power:
		base := simplifyExpr(x.base, cfg)
		exp := simplifyExpr(x.exp, cfg)
		if v, ok := numericValue(exp); ok {
			if v == 0 {
				return &Literal{val: 1}
			}
			if v == 1 {
				return base
			}
		}
		if bl, ok := base.(*Literal); ok {
			if el, ok2 := exp.(*Literal); ok2 {
				v := math.Pow(bl.val, el.val)
				// Fold only when the literal stays readable; otherwise
				// the symbolic form is kept.
				if len(formatFloat(v)) <= cfg.powerFoldWidth() {
					return &Literal{val: v}
				}
				return &Power{base: base, exp: exp}
			}
		}
		if inner, ok := base.(*Power); ok {
			merged := &Product{factors: flattenProducts([]Expr{inner.exp, exp})}
			return simplifyExpr(&Power{base: inner.base, exp: merged}, cfg)
		}
		return &Power{base: base, exp: exp}

	case *Exponential:
		p := simplifyExpr(x.exponent, cfg)
		if ln, ok := p.(*Ln); ok {
			return ln.operand
		}
		if lg, ok := p.(*Log); ok {
			if c, ok2 := lg.base.(*Constant); ok2 && c.val == math.E {
				return lg.operand
			}
		}
		return &Exponential{exponent: p}

	case *Sin:
		return &Sin{operand: simplifyExpr(x.operand, cfg)}
	case *Cos:
		return &Cos{operand: simplifyExpr(x.operand, cfg)}
	case *Ln:
		return &Ln{operand: simplifyExpr(x.operand, cfg)}
	case *Log:
		return &Log{base: simplifyExpr(x.base, cfg), operand: simplifyExpr(x.operand, cfg)}

	case *Abs:
		op := simplifyExpr(x.operand, cfg)
		if p, ok := op.(*Power); ok {
			if l, ok2 := p.exp.(*Literal); ok2 && isEvenInteger(l.val) {
				// Even powers are non-negative already.
				return op
			}
		}
		return &Abs{operand: op}
	}
	return e
}

func isEvenInteger(v float64) bool {
	return v == math.Trunc(v) && math.Mod(v, 2) == 0
}
