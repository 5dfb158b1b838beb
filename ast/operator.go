package ast

type BinaryOperatorKind int

const (
	Plus BinaryOperatorKind = iota
	Minus
	Mul
	Div
	Less
	Greater
)

type OperatorAssociativity int

const (
	Left OperatorAssociativity = iota
	Right
)

func (a OperatorAssociativity) String() string {
	if a == Right {
		return "Right"
	}
	return "Left"
}

var operatorSymbols = map[BinaryOperatorKind]string{
	Plus:    "+",
	Minus:   "-",
	Mul:     "*",
	Div:     "/",
	Less:    "<",
	Greater: ">",
}

// String returns the operator's source symbol.
func (op BinaryOperatorKind) String() string {
	return operatorSymbols[op]
}

// Precedence orders operators for expression climbing; higher binds
// tighter. Tiers are spaced by 20 so new operators can slot in between.
func (op BinaryOperatorKind) Precedence() int {
	switch op {
	case Less, Greater:
		return 0
	case Plus, Minus:
		return 20
	case Mul, Div:
		return 40
	}
	return 0
}

func (op BinaryOperatorKind) Associativity() OperatorAssociativity {
	switch op {
	case Less, Greater, Plus, Minus, Mul, Div:
		return Left
	}
	return Left
}

// LookupOperator maps a source symbol back to its operator.
func LookupOperator(symbol string) (BinaryOperatorKind, bool) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

func (b BinaryExpr) Precedence() int {
	return b.Operator.Precedence()
}

func (b BinaryExpr) Associativity() OperatorAssociativity {
	return b.Operator.Associativity()
}

func (b Binary) Precedence() int {
	return b.Operator.Precedence()
}

func (b Binary) Associativity() OperatorAssociativity {
	return b.Operator.Associativity()
}
