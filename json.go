package symgo

import (
	"encoding/json"
	"fmt"
)

// MarshalExpr encodes an expression tree as a JSON object. Each node is
// an object with a "type" discriminator; this is tree serialization for
// the server boundary, not a textual math syntax.
func MarshalExpr(e Expr) ([]byte, error) {
	return json.Marshal(exprToJSON(e))
}

func exprToJSON(e Expr) map[string]any {
	switch x := e.(type) {
	case *Literal:
		return map[string]any{"type": "literal", "value": x.val}
	case *Constant:
		return map[string]any{"type": "constant", "name": x.name, "value": x.val}
	case *Variable:
		return map[string]any{"type": "variable", "name": x.name}
	case *Sum:
		return map[string]any{"type": "sum", "terms": childrenToJSON(x.terms)}
	case *Neg:
		return map[string]any{"type": "neg", "operand": exprToJSON(x.operand)}
	case *Product:
		return map[string]any{"type": "product", "factors": childrenToJSON(x.factors)}
	case *Quotient:
		return map[string]any{"type": "quotient", "num": exprToJSON(x.num), "den": exprToJSON(x.den)}
	case *Power:
		return map[string]any{"type": "power", "base": exprToJSON(x.base), "exp": exprToJSON(x.exp)}
	case *Exponential:
		return map[string]any{"type": "exp", "exponent": exprToJSON(x.exponent)}
	case *Sin:
		return map[string]any{"type": "sin", "operand": exprToJSON(x.operand)}
	case *Cos:
		return map[string]any{"type": "cos", "operand": exprToJSON(x.operand)}
	case *Ln:
		return map[string]any{"type": "ln", "operand": exprToJSON(x.operand)}
	case *Log:
		return map[string]any{"type": "log", "base": exprToJSON(x.base), "operand": exprToJSON(x.operand)}
	case *Abs:
		return map[string]any{"type": "abs", "operand": exprToJSON(x.operand)}
	}
	return nil
}

func childrenToJSON(elems []Expr) []map[string]any {
	out := make([]map[string]any, len(elems))
	for i, e := range elems {
		out[i] = exprToJSON(e)
	}
	return out
}

type exprEnvelope struct {
	Type     string            `json:"type"`
	Value    *float64          `json:"value,omitempty"`
	Name     string            `json:"name,omitempty"`
	Terms    []json.RawMessage `json:"terms,omitempty"`
	Factors  []json.RawMessage `json:"factors,omitempty"`
	Operand  json.RawMessage   `json:"operand,omitempty"`
	Num      json.RawMessage   `json:"num,omitempty"`
	Den      json.RawMessage   `json:"den,omitempty"`
	Base     json.RawMessage   `json:"base,omitempty"`
	Exp      json.RawMessage   `json:"exp,omitempty"`
	Exponent json.RawMessage   `json:"exponent,omitempty"`
}

// UnmarshalExpr decodes a JSON expression tree. Composite nodes are
// rebuilt through the builder, so flattening and the builder's
// auto-simplify policy apply to decoded trees as well. The "symgo:"
// prefix is added once here; the recursive decode below stays bare so
// nested errors carry a single prefix.
func (b *Builder) UnmarshalExpr(data []byte) (Expr, error) {
	e, err := b.decodeExpr(data)
	if err != nil {
		return nil, fmt.Errorf("symgo: %w", err)
	}
	return e, nil
}

func (b *Builder) decodeExpr(data []byte) (Expr, error) {
	var env exprEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode expression: %w", err)
	}
	return b.fromEnvelope(&env)
}

func (b *Builder) fromEnvelope(env *exprEnvelope) (Expr, error) {
	child := func(field string, raw json.RawMessage) (Expr, error) {
		if raw == nil {
			return nil, fmt.Errorf("%s: missing %q", env.Type, field)
		}
		e, err := b.decodeExpr(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", env.Type, field, err)
		}
		return e, nil
	}
	children := func(field string, raws []json.RawMessage) ([]Expr, error) {
		if len(raws) == 0 {
			return nil, fmt.Errorf("%s: missing or empty %q", env.Type, field)
		}
		out := make([]Expr, len(raws))
		for i, raw := range raws {
			e, err := b.decodeExpr(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %s[%d]: %w", env.Type, field, i, err)
			}
			out[i] = e
		}
		return out, nil
	}

	switch env.Type {
	case "literal":
		if env.Value == nil {
			return nil, fmt.Errorf("literal: missing \"value\"")
		}
		return b.Num(*env.Value), nil
	case "constant":
		if env.Name == "" {
			return nil, fmt.Errorf("constant: missing \"name\"")
		}
		if env.Value == nil {
			return nil, fmt.Errorf("constant: missing \"value\"")
		}
		return b.Const(env.Name, *env.Value), nil
	case "variable":
		if env.Name == "" {
			return nil, fmt.Errorf("variable: missing \"name\"")
		}
		return b.Var(env.Name), nil
	case "sum":
		terms, err := children("terms", env.Terms)
		if err != nil {
			return nil, err
		}
		return b.Sum(terms...), nil
	case "neg":
		op, err := child("operand", env.Operand)
		if err != nil {
			return nil, err
		}
		return b.Neg(op), nil
	case "product":
		factors, err := children("factors", env.Factors)
		if err != nil {
			return nil, err
		}
		return b.Product(factors...), nil
	case "quotient":
		num, err := child("num", env.Num)
		if err != nil {
			return nil, err
		}
		den, err := child("den", env.Den)
		if err != nil {
			return nil, err
		}
		return b.Div(num, den), nil
	case "power":
		base, err := child("base", env.Base)
		if err != nil {
			return nil, err
		}
		exp, err := child("exp", env.Exp)
		if err != nil {
			return nil, err
		}
		return b.Pow(base, exp), nil
	case "exp":
		p, err := child("exponent", env.Exponent)
		if err != nil {
			return nil, err
		}
		return b.Exp(p), nil
	case "sin":
		op, err := child("operand", env.Operand)
		if err != nil {
			return nil, err
		}
		return b.Sin(op), nil
	case "cos":
		op, err := child("operand", env.Operand)
		if err != nil {
			return nil, err
		}
		return b.Cos(op), nil
	case "ln":
		op, err := child("operand", env.Operand)
		if err != nil {
			return nil, err
		}
		return b.Ln(op), nil
	case "log":
		base, err := child("base", env.Base)
		if err != nil {
			return nil, err
		}
		op, err := child("operand", env.Operand)
		if err != nil {
			return nil, err
		}
		return b.Log(base, op), nil
	case "abs":
		op, err := child("operand", env.Operand)
		if err != nil {
			return nil, err
		}
		return b.Abs(op), nil
	case "":
		return nil, fmt.Errorf("expression object missing \"type\"")
	default:
		return nil, fmt.Errorf("unknown expression type %q", env.Type)
	}
}
