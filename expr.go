// Package symgo is a symbolic-mathematics engine for Go.
//
// Expressions are immutable trees built through a Builder, which carries
// the construction configuration (auto-simplification and the numeric
// power folding width). The engine provides numeric evaluation (scalar
// and vectorized), symbolic differentiation, rule-based simplification,
// sub-expression substitution, and string rendering.
//
// Trees are never mutated after construction: every transformation
// returns a new tree, so distinct trees may be used from independent
// goroutines without coordination.
package symgo

import (
	"sort"
	"strconv"
)

// Expr is a node in a symbolic expression tree. The set of variants is
// closed: Literal, Constant, Variable, Sum, Neg, Product, Quotient,
// Power, Exponential, Sin, Cos, Ln, Log and Abs.
type Expr interface {
	String() string
	expr()
}

// Literal is a constant numeric value.
type Literal struct{ val float64 }

// Constant is a named numeric constant such as π or e. It displays as
// its name and evaluates as its value.
type Constant struct {
	name string
	val  float64
}

// Variable is a symbolic unknown; it evaluates only through a binding.
type Variable struct{ name string }

// Sum is the addition of its terms. Nested sums are flattened into the
// parent at construction time, so terms are never themselves sums.
type Sum struct{ terms []Expr }

// Neg is unary negation.
type Neg struct{ operand Expr }

// Product is the multiplication of its factors. Nested products are
// flattened at construction time.
type Product struct{ factors []Expr }

// Quotient is numerator divided by denominator.
type Quotient struct{ num, den Expr }

// Power is base raised to exponent.
type Power struct{ base, exp Expr }

// Exponential is e raised to its exponent.
type Exponential struct{ exponent Expr }

// Sin is the sine of its operand.
type Sin struct{ operand Expr }

// Cos is the cosine of its operand.
type Cos struct{ operand Expr }

// Ln is the natural logarithm of its operand.
type Ln struct{ operand Expr }

// Log is the logarithm of operand in the given base.
type Log struct {
	base    Expr
	operand Expr
}

// Abs is the absolute value of its operand.
type Abs struct{ operand Expr }

func (*Literal) expr()     {}
func (*Constant) expr()    {}
func (*Variable) expr()    {}
func (*Sum) expr()         {}
func (*Neg) expr()         {}
func (*Product) expr()     {}
func (*Quotient) expr()    {}
func (*Power) expr()       {}
func (*Exponential) expr() {}
func (*Sin) expr()         {}
func (*Cos) expr()         {}
func (*Ln) expr()          {}
func (*Log) expr()         {}
func (*Abs) expr()         {}

func (l *Literal) Value() float64      { return l.val }
func (c *Constant) Name() string       { return c.name }
func (c *Constant) Value() float64     { return c.val }
func (v *Variable) Name() string       { return v.name }
func (s *Sum) Terms() []Expr           { return s.terms }
func (n *Neg) Operand() Expr           { return n.operand }
func (p *Product) Factors() []Expr     { return p.factors }
func (q *Quotient) Numerator() Expr    { return q.num }
func (q *Quotient) Denominator() Expr  { return q.den }
func (p *Power) Base() Expr            { return p.base }
func (p *Power) Exponent() Expr        { return p.exp }
func (e *Exponential) Exponent() Expr  { return e.exponent }
func (s *Sin) Operand() Expr           { return s.operand }
func (c *Cos) Operand() Expr           { return c.operand }
func (l *Ln) Operand() Expr            { return l.operand }
func (l *Log) Base() Expr              { return l.base }
func (l *Log) Operand() Expr           { return l.operand }
func (a *Abs) Operand() Expr           { return a.operand }

// flattenSums splices the terms of any *Sum element into the enclosing
// term list. Children were built by the same constructors, so one level
// is enough to keep n-ary sums flat.
func flattenSums(terms []Expr) []Expr {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if s, ok := t.(*Sum); ok {
			flat = append(flat, s.terms...)
		} else {
			flat = append(flat, t)
		}
	}
	return flat
}

func flattenProducts(factors []Expr) []Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if p, ok := f.(*Product); ok {
			flat = append(flat, p.factors...)
		} else {
			flat = append(flat, f)
		}
	}
	return flat
}

// numericValue reports the stored value of a numeric-valued leaf
// (Literal or Constant).
func numericValue(e Expr) (float64, bool) {
	switch x := e.(type) {
	case *Literal:
		return x.val, true
	case *Constant:
		return x.val, true
	}
	return 0, false
}

func isLiteral(e Expr, v float64) bool {
	l, ok := e.(*Literal)
	return ok && l.val == v
}

// Equal reports structural equality between two expressions.
//
// Equality is deliberately partial: Literal and Constant compare by
// numeric value (including against each other), and Quotient, Power and
// Exponential compare field-wise against the same variant. Every other
// variant compares by node identity, so two separately built but
// identically shaped sums are NOT equal. Substitute inherits this
// boundary.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Literal:
		v, ok := numericValue(b)
		return ok && x.val == v
	case *Constant:
		v, ok := numericValue(b)
		return ok && x.val == v
	case *Quotient:
		y, ok := b.(*Quotient)
		return ok && Equal(x.num, y.num) && Equal(x.den, y.den)
	case *Power:
		y, ok := b.(*Power)
		return ok && Equal(x.base, y.base) && Equal(x.exp, y.exp)
	case *Exponential:
		y, ok := b.(*Exponential)
		return ok && Equal(x.exponent, y.exponent)
	default:
		return a == b
	}
}

// Variables returns the sorted distinct variable names occurring in e.
func Variables(e Expr) []string {
	seen := map[string]struct{}{}
	collectVariables(e, seen)
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func collectVariables(e Expr, out map[string]struct{}) {
	switch x := e.(type) {
	case *Variable:
		out[x.name] = struct{}{}
	case *Sum:
		for _, t := range x.terms {
			collectVariables(t, out)
		}
	case *Neg:
		collectVariables(x.operand, out)
	case *Product:
		for _, f := range x.factors {
			collectVariables(f, out)
		}
	case *Quotient:
		collectVariables(x.num, out)
		collectVariables(x.den, out)
	case *Power:
		collectVariables(x.base, out)
		collectVariables(x.exp, out)
	case *Exponential:
		collectVariables(x.exponent, out)
	case *Sin:
		collectVariables(x.operand, out)
	case *Cos:
		collectVariables(x.operand, out)
	case *Ln:
		collectVariables(x.operand, out)
	case *Log:
		collectVariables(x.base, out)
		collectVariables(x.operand, out)
	case *Abs:
		collectVariables(x.operand, out)
	}
}

// formatFloat renders a float64 in its default Go textual form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
