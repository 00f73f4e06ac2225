package symgo

import "fmt"

// UnboundVariableError reports evaluation of a Variable that has no
// matching binding.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("symgo: unbound variable %q", e.Name)
}

// AmbiguousVariableError reports a derivative request with no variable
// given over an expression containing more than one distinct variable.
type AmbiguousVariableError struct {
	Count int
}

func (e *AmbiguousVariableError) Error() string {
	return fmt.Sprintf("symgo: ambiguous derivative variable: expression has %d distinct variables", e.Count)
}
