package symgo

import (
	"fmt"
	"math"
)

// DefaultPowerFoldWidth is the widest decimal rendering a numerically
// folded power may have before the symbolic form is kept instead.
const DefaultPowerFoldWidth = 6

// Config controls expression construction. It is an immutable value
// carried by a Builder; there is no process-wide flag.
type Config struct {
	// AutoSimplify runs the simplifier on the result of every composite
	// constructor and every derivative step.
	AutoSimplify bool

	// PowerFoldWidth bounds the decimal width of literals produced by
	// folding a numeric base^exponent during simplification. Zero or
	// negative selects DefaultPowerFoldWidth.
	PowerFoldWidth int
}

// DefaultConfig returns the standard configuration: auto-simplify on.
func DefaultConfig() Config {
	return Config{AutoSimplify: true, PowerFoldWidth: DefaultPowerFoldWidth}
}

func (c Config) powerFoldWidth() int {
	if c.PowerFoldWidth <= 0 {
		return DefaultPowerFoldWidth
	}
	return c.PowerFoldWidth
}

// Builder constructs expressions under a fixed Config. Its composite
// constructors are the engine's operator sugar: they flatten nested
// sums/products and, when AutoSimplify is set, immediately simplify
// their result.
type Builder struct{ cfg Config }

// New returns a Builder with DefaultConfig.
func New() *Builder { return &Builder{cfg: DefaultConfig()} }

// NewBuilder returns a Builder with the given configuration.
func NewBuilder(cfg Config) *Builder { return &Builder{cfg: cfg} }

// Config returns the builder's configuration.
func (b *Builder) Config() Config { return b.cfg }

func (b *Builder) finish(e Expr) Expr {
	if b.cfg.AutoSimplify {
		return simplifyExpr(e, b.cfg)
	}
	return e
}

// Num returns a numeric literal.
func (b *Builder) Num(v float64) Expr { return &Literal{val: v} }

// Int returns an integer-valued numeric literal.
func (b *Builder) Int(v int64) Expr { return &Literal{val: float64(v)} }

// Const returns a named constant, e.g. Const("π", math.Pi).
func (b *Builder) Const(name string, v float64) Expr {
	return &Constant{name: name, val: v}
}

// Pi returns the named constant π.
func (b *Builder) Pi() Expr { return b.Const("π", math.Pi) }

// E returns the named constant e.
func (b *Builder) E() Expr { return b.Const("e", math.E) }

// Var returns a symbolic variable.
func (b *Builder) Var(name string) Expr { return &Variable{name: name} }

// Lit lifts a raw Go numeric value (or an Expr, returned unchanged)
// into an expression. It panics on any other type.
func (b *Builder) Lit(v any) Expr {
	switch x := v.(type) {
	case Expr:
		return x
	case int:
		return &Literal{val: float64(x)}
	case int32:
		return &Literal{val: float64(x)}
	case int64:
		return &Literal{val: float64(x)}
	case float32:
		return &Literal{val: float64(x)}
	case float64:
		return &Literal{val: x}
	default:
		panic(fmt.Sprintf("symgo: cannot lift %T into an expression", v))
	}
}

// Sum returns the sum of terms, splicing in the terms of any nested Sum.
func (b *Builder) Sum(terms ...Expr) Expr {
	return b.finish(&Sum{terms: flattenSums(terms)})
}

// Neg returns the negation of e.
func (b *Builder) Neg(e Expr) Expr { return b.finish(&Neg{operand: e}) }

// Sub returns lhs - rhs, encoded as Sum(lhs, Neg(rhs)).
func (b *Builder) Sub(lhs, rhs Expr) Expr {
	return b.Sum(lhs, b.Neg(rhs))
}

// Product returns the product of factors, splicing in nested Products.
func (b *Builder) Product(factors ...Expr) Expr {
	return b.finish(&Product{factors: flattenProducts(factors)})
}

// Div returns num divided by den.
func (b *Builder) Div(num, den Expr) Expr {
	return b.finish(&Quotient{num: num, den: den})
}

// Pow returns base raised to exp.
func (b *Builder) Pow(base, exp Expr) Expr {
	return b.finish(&Power{base: base, exp: exp})
}

// Exp returns e raised to exponent.
func (b *Builder) Exp(exponent Expr) Expr {
	return b.finish(&Exponential{exponent: exponent})
}

// Sin returns the sine of e.
func (b *Builder) Sin(e Expr) Expr { return b.finish(&Sin{operand: e}) }

// Cos returns the cosine of e.
func (b *Builder) Cos(e Expr) Expr { return b.finish(&Cos{operand: e}) }

// Ln returns the natural logarithm of e.
func (b *Builder) Ln(e Expr) Expr { return b.finish(&Ln{operand: e}) }

// Log returns the logarithm of e in the given base.
func (b *Builder) Log(base, e Expr) Expr {
	return b.finish(&Log{base: base, operand: e})
}

// Abs returns the absolute value of e.
func (b *Builder) Abs(e Expr) Expr { return b.finish(&Abs{operand: e}) }
