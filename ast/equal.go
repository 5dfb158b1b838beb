package ast

// Equal reports whether two trees are structurally identical down to leaf
// values and operator/type tags. A nil block and an empty block are equal.
func Equal(a, b Ast) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Expr:
		y, ok := b.(Expr)
		return ok && EqualExpr(x.Kind, y.Kind)
	case BasicBlock:
		y, ok := b.(BasicBlock)
		if !ok || len(x.Implementation) != len(y.Implementation) {
			return false
		}
		for i := range x.Implementation {
			if !Equal(x.Implementation[i], y.Implementation[i]) {
				return false
			}
		}
		return true
	case Stmt:
		y, ok := b.(Stmt)
		return ok && EqualStmt(x.Kind, y.Kind)
	case FunDecl:
		y, ok := b.(FunDecl)
		if !ok || x.Name != y.Name || x.Returns != y.Returns || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if x.Args[i] != y.Args[i] {
				return false
			}
		}
		return Equal(x.Implementation, y.Implementation)
	}
	return false
}

func EqualExpr(a, b ExprKind) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Identifier:
		y, ok := b.(Identifier)
		return ok && x == y
	case Literal:
		y, ok := b.(Literal)
		return ok && x == y
	case Binary:
		y, ok := b.(Binary)
		return ok && x.Operator == y.Operator &&
			EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	}
	return false
}

func EqualStmt(a, b StmtKind) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Assign:
		y, ok := b.(Assign)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case VarDecl:
		y, ok := b.(VarDecl)
		return ok && x == y
	}
	return false
}

func EqualType(a, b TypeKind) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Buildin:
		y, ok := b.(Buildin)
		return ok && x == y
	case Aggregate:
		y, ok := b.(Aggregate)
		return ok && x.Name == y.Name && len(x.Fields) == len(y.Fields)
	}
	return false
}
