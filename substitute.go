package symgo

// Substitute returns a new expression with every sub-expression equal
// to target (under Equal's partial structural equality) replaced by
// replacement. Matching is top-down: a matched node is replaced whole
// and its children are not searched further.
//
// Because equality is partial, only Literal, Constant, Quotient, Power
// and Exponential targets match structurally; other variants match only
// the identical node.
func Substitute(e, target, replacement Expr) Expr {
	if Equal(e, target) {
		return replacement
	}
	switch x := e.(type) {
	case *Literal, *Constant, *Variable:
		return e
	case *Sum:
		terms := make([]Expr, len(x.terms))
		for i, t := range x.terms {
			terms[i] = Substitute(t, target, replacement)
		}
		return &Sum{terms: flattenSums(terms)}
	case *Neg:
		return &Neg{operand: Substitute(x.operand, target, replacement)}
	case *Product:
		factors := make([]Expr, len(x.factors))
		for i, f := range x.factors {
			factors[i] = Substitute(f, target, replacement)
		}
		return &Product{factors: flattenProducts(factors)}
	case *Quotient:
		return &Quotient{
			num: Substitute(x.num, target, replacement),
			den: Substitute(x.den, target, replacement),
		}
	case *Power:
		return &Power{
			base: Substitute(x.base, target, replacement),
			exp:  Substitute(x.exp, target, replacement),
		}
	case *Exponential:
		return &Exponential{exponent: Substitute(x.exponent, target, replacement)}
	case *Sin:
		return &Sin{operand: Substitute(x.operand, target, replacement)}
	case *Cos:
		return &Cos{operand: Substitute(x.operand, target, replacement)}
	case *Ln:
		return &Ln{operand: Substitute(x.operand, target, replacement)}
	case *Log:
		return &Log{
			base:    Substitute(x.base, target, replacement),
			operand: Substitute(x.operand, target, replacement),
		}
	case *Abs:
		return &Abs{operand: Substitute(x.operand, target, replacement)}
	}
	return e
}
