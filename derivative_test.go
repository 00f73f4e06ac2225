package symgo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symgo"
)

// derivativeAt differentiates e with respect to v and evaluates the
// result at the given point.
func derivativeAt(t *testing.T, b *symgo.Builder, e symgo.Expr, v string, at float64) float64 {
	t.Helper()
	d, err := b.Derivative(e, v)
	require.NoError(t, err)
	got, err := symgo.Eval(d, map[string]float64{v: at})
	require.NoError(t, err)
	return got
}

func TestDerivative_Constant(t *testing.T) {
	b := symgo.New()
	d, err := b.Derivative(b.Num(5), "x")
	require.NoError(t, err)
	assert.True(t, symgo.Equal(d, b.Num(0)), "d/dx(5) should be 0, got %s", symgo.Display(d))

	d, err = b.Derivative(b.Pi(), "x")
	require.NoError(t, err)
	assert.True(t, symgo.Equal(d, b.Num(0)))
}

func TestDerivative_Variable(t *testing.T) {
	b := symgo.New()
	x := b.Var("x")

	d, err := b.Derivative(x, "x")
	require.NoError(t, err)
	assert.True(t, symgo.Equal(d, b.Num(1)))

	d, err = b.Derivative(b.Var("y"), "x")
	require.NoError(t, err)
	assert.True(t, symgo.Equal(d, b.Num(0)))
}

func TestDerivative_Square(t *testing.T) {
	// d/dx(x^2) at x=3 is 6.
	b := symgo.New()
	f := b.Pow(b.Var("x"), b.Int(2))
	assert.InDelta(t, 6.0, derivativeAt(t, b, f, "x", 3), 1e-12)
}

func TestDerivative_SinAtZero(t *testing.T) {
	// d/dx(sin(x)) at x=0 is cos(0) = 1.
	b := symgo.New()
	f := b.Sin(b.Var("x"))
	assert.InDelta(t, 1.0, derivativeAt(t, b, f, "x", 0), 1e-12)
}

func TestDerivative_PerVariantRules(t *testing.T) {
	b := symgo.New()
	x := b.Var("x")
	const at = 1.3

	cases := []struct {
		name string
		expr symgo.Expr
		want float64 // analytic derivative at x=1.3
	}{
		{"sum", b.Sum(b.Pow(x, b.Int(2)), b.Product(b.Int(3), x)), 2*at + 3},
		{"neg", b.Neg(b.Pow(x, b.Int(3))), -3 * at * at},
		{"product", b.Product(x, b.Sin(x)), math.Sin(at) + at*math.Cos(at)},
		{"quotient", b.Div(b.Sin(x), x), (at*math.Cos(at) - math.Sin(at)) / (at * at)},
		{"power", b.Pow(x, x), math.Pow(at, at) * (math.Log(at) + 1)},
		{"exponential", b.Exp(b.Pow(x, b.Int(2))), 2 * at * math.Exp(at*at)},
		{"sin", b.Sin(b.Pow(x, b.Int(2))), 2 * at * math.Cos(at*at)},
		{"cos", b.Cos(x), -math.Sin(at)},
		{"ln", b.Ln(b.Pow(x, b.Int(2))), 2 / at},
		{"log", b.Log(b.Int(2), x), 1 / (at * math.Log(2))},
		{"abs", b.Abs(x), 1}, // x > 0, so |x|' = 1
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, derivativeAt(t, b, tc.expr, "x", at), 1e-9)
		})
	}
}

func TestDerivative_ProductRuleThreeFactors(t *testing.T) {
	// d/dx(x * sin(x) * exp(x)) at x: sum of three product-rule terms.
	b := symgo.New()
	x := b.Var("x")
	f := b.Product(x, b.Sin(x), b.Exp(x))

	const at = 0.7
	want := math.Sin(at)*math.Exp(at) +
		at*math.Cos(at)*math.Exp(at) +
		at*math.Sin(at)*math.Exp(at)
	assert.InDelta(t, want, derivativeAt(t, b, f, "x", at), 1e-9)
}

func TestDerivative_InfersSingleVariable(t *testing.T) {
	b := symgo.New()
	f := b.Pow(b.Var("t"), b.Int(2))

	d, err := b.Derivative(f, "")
	require.NoError(t, err)
	got, err := symgo.Eval(d, map[string]float64{"t": 3})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-12)
}

func TestDerivative_NoVariablesIsZero(t *testing.T) {
	b := symgo.New()
	d, err := b.Derivative(b.Sum(b.Int(2), b.Pi()), "")
	require.NoError(t, err)
	assert.True(t, symgo.Equal(d, b.Num(0)))
}

func TestDerivative_AmbiguousVariable(t *testing.T) {
	b := symgo.New()
	f := b.Sum(b.Var("x"), b.Var("y"), b.Var("z"))

	_, err := b.Derivative(f, "")
	require.Error(t, err)
	var ambiguous *symgo.AmbiguousVariableError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, 3, ambiguous.Count)
	assert.Contains(t, err.Error(), "3")
}

func TestDerivativeN_FourthOfXToTheFourth(t *testing.T) {
	// d^4/dx^4(x^4) = 24.
	b := symgo.New()
	f := b.Pow(b.Var("x"), b.Int(4))

	d4, err := b.DerivativeN(f, "x", 4)
	require.NoError(t, err)
	got, err := symgo.Eval(d4, map[string]float64{"x": 2.5})
	require.NoError(t, err)
	assert.InDelta(t, 24.0, got, 1e-9)
}

func TestDerivative_Scenario(t *testing.T) {
	// f = 5*x^2 - 4*sin(exp(x)); f'(0) = -4*cos(1).
	b := symgo.New()
	x := b.Var("x")
	f := b.Sub(
		b.Product(b.Int(5), b.Pow(x, b.Int(2))),
		b.Product(b.Int(4), b.Sin(b.Exp(x))),
	)

	df, err := b.Derivative(f, "x")
	require.NoError(t, err)
	got, err := symgo.Eval(df, map[string]float64{"x": 0})
	require.NoError(t, err)
	assert.InDelta(t, -4*math.Cos(1), got, 1e-9)
}
