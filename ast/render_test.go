package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		node Ast
		want string
	}{
		{
			name: "nested binary",
			node: NewExpr(NewBinary(Plus,
				NewIntLiteral(1),
				NewBinary(Mul, NewIdentifier("x"), NewIntLiteral(2)),
			)),
			want: "(+ 1 (* x 2))",
		},
		{
			name: "lower tier inside higher tier",
			node: NewExpr(NewBinary(Mul,
				NewBinary(Minus, NewIdentifier("a"), NewIdentifier("b")),
				NewIntLiteral(3),
			)),
			want: "(* (- a b) 3)",
		},
		{
			name: "comparison",
			node: NewExpr(NewBinary(Less, NewIdentifier("i"), NewIntLiteral(10))),
			want: "(< i 10)",
		},
		{
			name: "negative literal",
			node: NewExpr(NewIntLiteral(-42)),
			want: "-42",
		},
		{
			name: "var decl",
			node: NewStmt(NewVarDecl("count")),
			want: "count",
		},
		{
			name: "assign",
			node: NewStmt(NewAssign(NewIdentifier("x"), NewIntLiteral(5))),
			want: "(assign x 5)",
		},
		{
			name: "block concatenates children",
			node: NewBasicBlock(NewStmt(NewVarDecl("a")), NewStmt(NewVarDecl("b"))),
			want: "(BasicBlock ab) \n",
		},
		{
			name: "empty block",
			node: BasicBlock{},
			want: "(BasicBlock ) \n",
		},
		{
			name: "fun decl",
			node: NewFunDecl("f",
				[]FunArg{NewFunArg("x", NewUnresolvedType("Int"))},
				NewUnresolvedType("Int"),
				NewBasicBlock(),
			),
			want: "(FunDecl f (args (arg Int x)) (returns Int))\n (BasicBlock ) \n",
		},
		{
			name: "fun decl args concatenate",
			node: NewFunDecl("g",
				[]FunArg{
					NewFunArg("a", NewUnresolvedType("Int")),
					NewFunArg("b", NewUnresolvedType("Int")),
				},
				NewUnresolvedType("Int"),
				NewBasicBlock(NewStmt(NewAssign(NewIdentifier("a"), NewIdentifier("b")))),
			),
			want: "(FunDecl g (args (arg Int a)(arg Int b)) (returns Int))\n (BasicBlock (assign a b)) \n",
		},
		{
			name: "fun decl with expression body",
			node: NewFunDecl("h", nil, NewUnresolvedType("Int"), NewExpr(NewIntLiteral(0))),
			want: "(FunDecl h (args ) (returns Int))\n 0",
		},
		{
			name: "nil children",
			node: NewFunDecl("n", nil, NewUnresolvedType("Int"), nil),
			want: "(FunDecl n (args ) (returns Int))\n ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.node))
		})
	}
}

func TestRenderIgnoresPrecedence(t *testing.T) {
	// a - b - c parsed left-associatively.
	left := NewBinary(Minus, NewBinary(Minus, NewIdentifier("a"), NewIdentifier("b")), NewIdentifier("c"))
	// a - (b - c)
	right := NewBinary(Minus, NewIdentifier("a"), NewBinary(Minus, NewIdentifier("b"), NewIdentifier("c")))

	assert.Equal(t, "(- (- a b) c)", RenderExpr(left))
	assert.Equal(t, "(- a (- b c))", RenderExpr(right))
}

func TestRenderDeterministic(t *testing.T) {
	tree := NewFunDecl("main", nil, NewUnresolvedType("Int"), NewBasicBlock(
		NewStmt(NewVarDecl("x")),
		NewStmt(NewAssign(NewIdentifier("x"), NewBinary(Div, NewIntLiteral(8), NewIntLiteral(2)))),
		NewExpr(NewIdentifier("x")),
	))

	first := Render(tree)
	assert.Equal(t, first, Render(tree))
	assert.Equal(t, first, tree.String())
}

func TestRenderDeepTree(t *testing.T) {
	const depth = 1000

	var expr ExprKind = NewIntLiteral(0)
	for i := 0; i < depth; i++ {
		expr = NewBinary(Plus, expr, NewIntLiteral(1))
	}
	out := RenderExpr(expr)
	assert.Equal(t, depth, strings.Count(out, "("))
	assert.True(t, strings.HasPrefix(out, strings.Repeat("(+ ", depth)+"0 1)"))

	var node Ast = NewStmt(NewVarDecl("v"))
	for i := 0; i < depth; i++ {
		node = NewBasicBlock(node)
	}
	out = Render(node)
	assert.Equal(t, depth, strings.Count(out, "(BasicBlock "))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "x", NewIdentifier("x").String())
	assert.Equal(t, "7", NewIntLiteral(7).String())
	assert.Equal(t, "(/ 1 2)", NewBinary(Div, NewIntLiteral(1), NewIntLiteral(2)).String())
	assert.Equal(t, "(assign y 1)", NewAssign(NewIdentifier("y"), NewIntLiteral(1)).String())
	assert.Equal(t, "z", NewVarDecl("z").String())
	assert.Equal(t, "(arg Int q)", NewFunArg("q", NewUnresolvedType("Int")).String())
	assert.Equal(t, "Int", Int.String())
}
