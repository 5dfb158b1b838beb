package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() Ast {
	return NewFunDecl("f",
		[]FunArg{NewFunArg("x", NewUnresolvedType("Int"))},
		NewUnresolvedType("Int"),
		NewBasicBlock(
			NewStmt(NewVarDecl("y")),
			NewStmt(NewAssign(NewIdentifier("y"), NewBinary(Plus, NewIdentifier("x"), NewIntLiteral(1)))),
			NewExpr(NewIdentifier("y")),
		),
	)
}

func TestEqual(t *testing.T) {
	a, b, c := sampleTree(), sampleTree(), sampleTree()

	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
	assert.True(t, Equal(b, c) && Equal(a, c))
}

func TestNotEqual(t *testing.T) {
	base := sampleTree()

	tests := []struct {
		name  string
		other Ast
	}{
		{"different name", NewFunDecl("g", base.(FunDecl).Args, base.(FunDecl).Returns, base.(FunDecl).Implementation)},
		{"different arg type", NewFunDecl("f",
			[]FunArg{NewFunArg("x", NewUnresolvedType("Bool"))},
			NewUnresolvedType("Int"), base.(FunDecl).Implementation)},
		{"missing arg", NewFunDecl("f", nil, NewUnresolvedType("Int"), base.(FunDecl).Implementation)},
		{"different body", NewFunDecl("f", base.(FunDecl).Args, NewUnresolvedType("Int"), NewBasicBlock())},
		{"different variant", NewStmt(NewVarDecl("f"))},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Equal(base, tt.other))
			assert.False(t, Equal(tt.other, base))
		})
	}
}

func TestEqualExpr(t *testing.T) {
	assert.True(t, EqualExpr(NewIntLiteral(3), NewIntLiteral(3)))
	assert.False(t, EqualExpr(NewIntLiteral(3), NewIntLiteral(4)))
	assert.False(t, EqualExpr(NewIntLiteral(3), NewIdentifier("3")))
	assert.False(t, EqualExpr(
		NewBinary(Plus, NewIdentifier("a"), NewIdentifier("b")),
		NewBinary(Minus, NewIdentifier("a"), NewIdentifier("b")),
	))
	assert.False(t, EqualExpr(
		NewBinary(Plus, NewIdentifier("a"), NewIdentifier("b")),
		NewBinary(Plus, NewIdentifier("b"), NewIdentifier("a")),
	))
	assert.True(t, EqualExpr(nil, nil))
}

func TestEqualStmt(t *testing.T) {
	assert.True(t, EqualStmt(NewVarDecl("a"), NewVarDecl("a")))
	assert.False(t, EqualStmt(NewVarDecl("a"), NewAssign(NewIdentifier("a"), NewIntLiteral(0))))
	assert.False(t, EqualStmt(
		NewAssign(NewIdentifier("a"), NewIntLiteral(0)),
		NewAssign(NewIdentifier("a"), NewIntLiteral(1)),
	))
}

func TestEqualBlockNilAndEmpty(t *testing.T) {
	assert.True(t, Equal(BasicBlock{}, NewBasicBlock()))
	assert.False(t, Equal(NewBasicBlock(), NewBasicBlock(NewStmt(NewVarDecl("a")))))
}

func TestEqualType(t *testing.T) {
	assert.True(t, EqualType(NewBuildin(Int), NewBuildin(Int)))
	assert.True(t, EqualType(NewAggregate("P", AggregateField{}), NewAggregate("P", AggregateField{})))
	assert.False(t, EqualType(NewAggregate("P"), NewAggregate("Q")))
	assert.False(t, EqualType(NewAggregate("P"), NewAggregate("P", AggregateField{})))
	assert.False(t, EqualType(NewAggregate("Int"), NewBuildin(Int)))
}
