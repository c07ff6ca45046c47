package funcs

import (
	"fmt"
	"strings"
)

// Kind is the type of a function parameter or result as seen by the
// expression evaluator.
type Kind int

const (
	Number Kind = iota
	List
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case List:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Spec describes one registered function.
type Spec struct {
	Name    string
	Params  []Kind
	Returns Kind
	Doc     string
}

// Signature renders the spec as name(kind, ...) -> kind.
func (s Spec) Signature() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s(%s) -> %s", s.Name, strings.Join(params, ", "), s.Returns)
}
