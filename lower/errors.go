package lower

import "fmt"

type UnknownType struct {
	Name string
}

func (e UnknownType) Error() string {
	return fmt.Sprintf("unknown type '%s'", e.Name)
}

type UnsupportedType struct {
	Name string
}

func (e UnsupportedType) Error() string {
	return fmt.Sprintf("type '%s' cannot be lowered", e.Name)
}

type UnknownIdentifier struct {
	Function string
	Name     string
}

func (e UnknownIdentifier) Error() string {
	return fmt.Sprintf("%s: '%s' is not declared", e.Function, e.Name)
}

type NotAssignable struct {
	Function string
	Target   string
}

func (e NotAssignable) Error() string {
	return fmt.Sprintf("%s: cannot assign to '%s'", e.Function, e.Target)
}

type UnsupportedNode struct {
	Function string
	Node     string
}

func (e UnsupportedNode) Error() string {
	if e.Function == "" {
		return fmt.Sprintf("unsupported top level node %q", e.Node)
	}
	return fmt.Sprintf("%s: unsupported node %q", e.Function, e.Node)
}

type DuplicateFunction struct {
	Name string
}

func (e DuplicateFunction) Error() string {
	return fmt.Sprintf("function '%s' declared more than once", e.Name)
}

type DuplicateArgument struct {
	Function string
	Name     string
}

func (e DuplicateArgument) Error() string {
	return fmt.Sprintf("%s: argument '%s' declared more than once", e.Function, e.Name)
}

// uerror carries a user-facing error out of the lowering walk.
type uerror struct {
	err error
}
