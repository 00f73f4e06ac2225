package symgo

import "strings"

// Display renders e as a fully parenthesized string, e.g.
// ((5) * ((x)^(2))) for 5*x².
func Display(e Expr) string {
	switch x := e.(type) {
	case *Literal:
		return formatFloat(x.val)
	case *Constant:
		return x.name
	case *Variable:
		return x.name
	case *Sum:
		return joinWrapped(x.terms, " + ")
	case *Neg:
		return "-(" + Display(x.operand) + ")"
	case *Product:
		return joinWrapped(x.factors, " * ")
	case *Quotient:
		return "(" + Display(x.num) + ") / (" + Display(x.den) + ")"
	case *Power:
		return "(" + Display(x.base) + ")^(" + Display(x.exp) + ")"
	case *Exponential:
		return "exp(" + Display(x.exponent) + ")"
	case *Sin:
		return "sin(" + Display(x.operand) + ")"
	case *Cos:
		return "cos(" + Display(x.operand) + ")"
	case *Ln:
		return "ln(" + Display(x.operand) + ")"
	case *Log:
		return "log_(" + Display(x.base) + ")(" + Display(x.operand) + ")"
	case *Abs:
		return "|" + Display(x.operand) + "|"
	}
	return ""
}

func joinWrapped(elems []Expr, sep string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = "(" + Display(e) + ")"
	}
	return strings.Join(parts, sep)
}

func (l *Literal) String() string     { return Display(l) }
func (c *Constant) String() string    { return Display(c) }
func (v *Variable) String() string    { return Display(v) }
func (s *Sum) String() string         { return Display(s) }
func (n *Neg) String() string         { return Display(n) }
func (p *Product) String() string     { return Display(p) }
func (q *Quotient) String() string    { return Display(q) }
func (p *Power) String() string       { return Display(p) }
func (e *Exponential) String() string { return Display(e) }
func (s *Sin) String() string         { return Display(s) }
func (c *Cos) String() string         { return Display(c) }
func (l *Ln) String() string          { return Display(l) }
func (l *Log) String() string         { return Display(l) }
func (a *Abs) String() string         { return Display(a) }
