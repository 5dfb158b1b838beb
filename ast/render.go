package ast

import (
	"strconv"
	"strings"
)

// Render returns the canonical prefix form of a tree. Binary expressions are
// always fully parenthesized, and block children and function arguments are
// concatenated without a separator. A nil child renders as nothing.
func Render(node Ast) string {
	var b strings.Builder
	writeAst(&b, node)
	return b.String()
}

func RenderExpr(expr ExprKind) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func RenderStmt(stmt StmtKind) string {
	var b strings.Builder
	writeStmt(&b, stmt)
	return b.String()
}

func writeAst(b *strings.Builder, node Ast) {
	switch n := node.(type) {
	case nil:
	case Expr:
		writeExpr(b, n.Kind)
	case BasicBlock:
		b.WriteString("(BasicBlock ")
		for _, child := range n.Implementation {
			writeAst(b, child)
		}
		b.WriteString(") \n")
	case Stmt:
		writeStmt(b, n.Kind)
	case FunDecl:
		b.WriteString("(FunDecl ")
		b.WriteString(n.Name)
		b.WriteString(" (args ")
		for _, arg := range n.Args {
			writeArg(b, arg)
		}
		b.WriteString(") (returns ")
		b.WriteString(n.Returns.Name)
		b.WriteString("))\n ")
		writeAst(b, n.Implementation)
	}
}

func writeExpr(b *strings.Builder, expr ExprKind) {
	switch e := expr.(type) {
	case nil:
	case Identifier:
		b.WriteString(string(e))
	case Literal:
		b.WriteString(strconv.FormatInt(int64(e.Value), 10))
	case Binary:
		b.WriteByte('(')
		b.WriteString(e.Operator.String())
		b.WriteByte(' ')
		writeExpr(b, e.Left)
		b.WriteByte(' ')
		writeExpr(b, e.Right)
		b.WriteByte(')')
	}
}

func writeStmt(b *strings.Builder, stmt StmtKind) {
	switch s := stmt.(type) {
	case nil:
	case Assign:
		b.WriteString("(assign ")
		writeExpr(b, s.Left)
		b.WriteByte(' ')
		writeExpr(b, s.Right)
		b.WriteByte(')')
	case VarDecl:
		b.WriteString(string(s))
	}
}

func writeArg(b *strings.Builder, arg FunArg) {
	b.WriteString("(arg ")
	b.WriteString(arg.ArgType.Name)
	b.WriteByte(' ')
	b.WriteString(arg.Name)
	b.WriteByte(')')
}

func (v Expr) String() string       { return Render(v) }
func (v BasicBlock) String() string { return Render(v) }
func (v Stmt) String() string       { return Render(v) }
func (v FunDecl) String() string    { return Render(v) }

func (v Identifier) String() string { return RenderExpr(v) }
func (v Literal) String() string    { return RenderExpr(v) }
func (v Binary) String() string     { return RenderExpr(v) }

func (v Assign) String() string  { return RenderStmt(v) }
func (v VarDecl) String() string { return RenderStmt(v) }

func (a FunArg) String() string {
	var b strings.Builder
	writeArg(&b, a)
	return b.String()
}
