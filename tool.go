package symgo

import (
	"encoding/json"
	"fmt"
)

// OpRequest is a single operation against the engine, with the
// expression(s) given as JSON trees (see MarshalExpr).
type OpRequest struct {
	Op             string               `json:"op"`
	Expr           json.RawMessage      `json:"expr,omitempty"`
	Target         json.RawMessage      `json:"target,omitempty"`
	Replacement    json.RawMessage      `json:"replacement,omitempty"`
	Variable       string               `json:"variable,omitempty"`
	Order          int                  `json:"order,omitempty"`
	Bindings       map[string]float64   `json:"bindings,omitempty"`
	VectorBindings map[string][]float64 `json:"vector_bindings,omitempty"`
}

// OpResponse carries the result of an OpRequest. Exactly one of the
// result fields is set on success; Error is set otherwise.
type OpResponse struct {
	Expr      map[string]any `json:"expr,omitempty"`
	Display   string         `json:"display,omitempty"`
	Value     *float64       `json:"value,omitempty"`
	Values    []float64      `json:"values,omitempty"`
	Variables []string       `json:"variables,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Ops supported by HandleOp.
const (
	OpSimplify       = "simplify"
	OpDerivative     = "derivative"
	OpEvaluate       = "evaluate"
	OpEvaluateVector = "evaluate_vector"
	OpSubstitute     = "substitute"
	OpDisplay        = "display"
	OpVariables      = "variables"
)

// HandleOp executes a single operation under the builder's
// configuration.
func HandleOp(b *Builder, req OpRequest) OpResponse {
	fail := func(err error) OpResponse { return OpResponse{Error: err.Error()} }

	decode := func(field string, raw json.RawMessage) (Expr, error) {
		if raw == nil {
			return nil, fmt.Errorf("missing param %q", field)
		}
		return b.UnmarshalExpr(raw)
	}

	e, err := decode("expr", req.Expr)
	if err != nil {
		return fail(err)
	}

	switch req.Op {
	case OpSimplify:
		s := b.Simplify(e)
		return OpResponse{Expr: exprToJSON(s), Display: Display(s)}

	case OpDerivative:
		order := req.Order
		if order <= 0 {
			order = 1
		}
		d, err := b.DerivativeN(e, req.Variable, order)
		if err != nil {
			return fail(err)
		}
		return OpResponse{Expr: exprToJSON(d), Display: Display(d)}

	case OpEvaluate:
		v, err := Eval(e, req.Bindings)
		if err != nil {
			return fail(err)
		}
		return OpResponse{Value: &v}

	case OpEvaluateVector:
		vs, err := EvalVector(e, req.VectorBindings)
		if err != nil {
			return fail(err)
		}
		return OpResponse{Values: vs}

	case OpSubstitute:
		target, err := decode("target", req.Target)
		if err != nil {
			return fail(err)
		}
		repl, err := decode("replacement", req.Replacement)
		if err != nil {
			return fail(err)
		}
		s := Substitute(e, target, repl)
		return OpResponse{Expr: exprToJSON(s), Display: Display(s)}

	case OpDisplay:
		return OpResponse{Display: Display(e)}

	case OpVariables:
		return OpResponse{Variables: Variables(e)}

	default:
		return fail(fmt.Errorf("unknown op %q", req.Op))
	}
}
