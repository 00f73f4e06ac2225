package symgo

// Derivative returns d(e)/d(variable) as a new expression.
//
// With an empty variable name the variable is inferred: an expression
// with no variables differentiates to zero, one distinct variable is
// used directly, and two or more yield an *AmbiguousVariableError.
// When the builder's AutoSimplify is set the result is simplified.
func (b *Builder) Derivative(e Expr, variable string) (Expr, error) {
	if variable == "" {
		vars := Variables(e)
		switch len(vars) {
		case 0:
			return &Literal{val: 0}, nil
		case 1:
			variable = vars[0]
		default:
			return nil, &AmbiguousVariableError{Count: len(vars)}
		}
	}
	d := b.diff(e, variable)
	if b.cfg.AutoSimplify {
		d = b.Simplify(d)
	}
	return d, nil
}

// DerivativeN applies Derivative order times. Intermediate results are
// re-simplified between steps when AutoSimplify is set, which keeps the
// combinatorial growth of repeated product rules in check.
func (b *Builder) DerivativeN(e Expr, variable string, order int) (Expr, error) {
	out := e
	for i := 0; i < order; i++ {
		d, err := b.Derivative(out, variable)
		if err != nil {
			return nil, err
		}
		out = d
	}
	return out, nil
}

func (b *Builder) diff(e Expr, v string) Expr {
	switch x := e.(type) {
	case *Literal, *Constant:
		return &Literal{val: 0}

	case *Variable:
		if x.name == v {
			return &Literal{val: 1}
		}
		return &Literal{val: 0}

	case *Sum:
		terms := make([]Expr, len(x.terms))
		for i, t := range x.terms {
			terms[i] = b.diff(t, v)
		}
		return b.Sum(terms...)

	case *Neg:
		return b.Neg(b.diff(x.operand, v))

	case *Product:
		// Product rule generalized to n factors: sum over i of the
		// i-th derivative times the remaining factors in order.
		terms := make([]Expr, len(x.factors))
		for i := range x.factors {
			fs := make([]Expr, 0, len(x.factors))
			fs = append(fs, b.diff(x.factors[i], v))
			for j, f := range x.factors {
				if j != i {
					fs = append(fs, f)
				}
			}
			terms[i] = b.Product(fs...)
		}
		return b.Sum(terms...)

	case *Quotient:
		du := b.diff(x.num, v)
		dv := b.diff(x.den, v)
		num := b.Sub(b.Product(du, x.den), b.Product(x.num, dv))
		return b.Div(num, b.Pow(x.den, b.Int(2)))

	case *Power:
		// Logarithmic differentiation, applied uniformly whether or
		// not the exponent is constant (valid for base > 0).
		logTerm := b.Product(b.diff(x.exp, v), b.Ln(x.base))
		baseTerm := b.Div(b.Product(b.diff(x.base, v), x.exp), x.base)
		return b.Product(b.Pow(x.base, x.exp), b.Sum(logTerm, baseTerm))

	case *Exponential:
		return b.Product(b.Exp(x.exponent), b.diff(x.exponent, v))

	case *Sin:
		return b.Product(b.Cos(x.operand), b.diff(x.operand, v))

	case *Cos:
		return b.Product(b.Neg(b.Sin(x.operand)), b.diff(x.operand, v))

	case *Ln:
		return b.Div(b.diff(x.operand, v), x.operand)

	case *Log:
		// The base is treated as constant; a variable base is out of
		// scope for this rule.
		return b.Div(b.diff(x.operand, v), b.Product(b.Ln(x.base), x.operand))

	case *Abs:
		return b.Product(b.Div(x.operand, b.Abs(x.operand)), b.diff(x.operand, v))
	}
	return &Literal{val: 0}
}
