// Package ast defines the syntax tree produced by the tawa front end and its
// canonical textual form.
//
// Every node is a plain value. Sum types (Ast, ExprKind, StmtKind, TypeKind)
// are sealed interfaces whose variants are generated from nodes.adt; the
// payload structs those variants are defined over live in this file.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/nodes_gen.go ast"

type BuildinTypeKind int

const (
	Int BuildinTypeKind = iota
)

func (k BuildinTypeKind) String() string {
	switch k {
	case Int:
		return "Int"
	}
	return "BuildinTypeKind(?)"
}

// Block is the payload of BasicBlock.
type Block struct {
	Implementation []Ast
}

// Function is the payload of FunDecl. Implementation is conventionally a
// BasicBlock but any Ast is accepted.
type Function struct {
	Name           string
	Args           []FunArg
	Returns        UnresolvedType
	Implementation Ast
}

// LiteralExpr is an integer constant. ConstantType is always Int for now.
type LiteralExpr struct {
	ConstantType BuildinTypeKind
	Value        int32
}

type BinaryExpr struct {
	Operator BinaryOperatorKind
	Left     ExprKind
	Right    ExprKind
}

// AssignExpr stores the value of Right into the addressable Left.
type AssignExpr struct {
	Left  ExprKind
	Right ExprKind
}

// AggregateField has no fields yet.
type AggregateField struct{}

type AggregateType struct {
	Name   string
	Fields []AggregateField
}

// UnresolvedType is a type reference as written in source.
type UnresolvedType struct {
	Name string
}

type FunArg struct {
	Name    string
	ArgType UnresolvedType
}

func NewExpr(kind ExprKind) Expr {
	return Expr{Kind: kind}
}

func NewStmt(kind StmtKind) Stmt {
	return Stmt{Kind: kind}
}

func NewBasicBlock(implementation ...Ast) BasicBlock {
	if implementation == nil {
		implementation = []Ast{}
	}
	return BasicBlock{Implementation: implementation}
}

func NewFunDecl(name string, args []FunArg, returns UnresolvedType, implementation Ast) FunDecl {
	return FunDecl{
		Name:           name,
		Args:           args,
		Returns:        returns,
		Implementation: implementation,
	}
}

func NewIdentifier(name string) Identifier {
	return Identifier(name)
}

func NewIntLiteral(value int32) Literal {
	return Literal{ConstantType: Int, Value: value}
}

func NewBinary(op BinaryOperatorKind, left, right ExprKind) Binary {
	return Binary{Operator: op, Left: left, Right: right}
}

func NewAssign(left, right ExprKind) Assign {
	return Assign{Left: left, Right: right}
}

func NewVarDecl(name string) VarDecl {
	return VarDecl(name)
}

func NewUnresolvedType(name string) UnresolvedType {
	return UnresolvedType{Name: name}
}

func NewFunArg(name string, argType UnresolvedType) FunArg {
	return FunArg{Name: name, ArgType: argType}
}

func NewBuildin(kind BuildinTypeKind) Buildin {
	return Buildin(kind)
}

func NewAggregate(name string, fields ...AggregateField) Aggregate {
	if fields == nil {
		fields = []AggregateField{}
	}
	return Aggregate{Name: name, Fields: fields}
}
