package loader

import "fmt"

type InvalidNode struct {
	Path   string
	Reason string
}

func (e InvalidNode) Error() string {
	return fmt.Sprintf("invalid node at %s: %s", e.Path, e.Reason)
}

type UnknownOperator struct {
	Path   string
	Symbol string
}

func (e UnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q at %s", e.Symbol, e.Path)
}
