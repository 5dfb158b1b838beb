// Package loader builds syntax trees from YAML fixture documents.
//
// A document is a sequence of nodes. Each node is a mapping holding exactly
// one of the keys below:
//
//	fun:    function name, with args, returns and body
//	block:  sequence of nodes
//	var:    variable name
//	assign: {left: <expr>, right: <expr>}
//	expr:   <expr>
//
// and each expression holds exactly one of ident, int, or binary
// ({op: "+", left: <expr>, right: <expr>}).
package loader

import (
	"fmt"
	"io/ioutil"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tawast/ast"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawast", "loader")

type arg struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type node struct {
	Fun     *string `yaml:"fun"`
	Args    []arg   `yaml:"args"`
	Returns string  `yaml:"returns"`
	Body    *node   `yaml:"body"`

	Block  *[]node `yaml:"block"`
	Var    *string `yaml:"var"`
	Assign *assign `yaml:"assign"`
	Expr   *expr   `yaml:"expr"`
}

type assign struct {
	Left  *expr `yaml:"left"`
	Right *expr `yaml:"right"`
}

type binary struct {
	Op    string `yaml:"op"`
	Left  *expr  `yaml:"left"`
	Right *expr  `yaml:"right"`
}

type expr struct {
	Ident  *string `yaml:"ident"`
	Int    *int32  `yaml:"int"`
	Binary *binary `yaml:"binary"`
}

// Load reads and decodes the fixture at path.
func Load(path string) ([]ast.Ast, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	plog.Debugf("loading trees from %s", path)
	return Decode(data)
}

// Decode converts a YAML document into trees.
func Decode(data []byte) ([]ast.Ast, error) {
	var doc []node
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, tracerr.Wrap(err)
	}

	trees := make([]ast.Ast, 0, len(doc))
	for i := range doc {
		tree, err := convertNode(&doc[i], fmt.Sprintf("[%d]", i))
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		trees = append(trees, tree)
	}

	plog.Debugf("decoded %d trees", len(trees))
	return trees, nil
}

func countSet(set ...bool) (n int) {
	for _, s := range set {
		if s {
			n++
		}
	}
	return
}

func convertNode(n *node, path string) (ast.Ast, error) {
	if n == nil {
		return nil, InvalidNode{Path: path, Reason: "missing node"}
	}
	if countSet(n.Fun != nil, n.Block != nil, n.Var != nil, n.Assign != nil, n.Expr != nil) != 1 {
		return nil, InvalidNode{Path: path, Reason: "expected exactly one of fun, block, var, assign, expr"}
	}

	if n.Fun == nil && (n.Args != nil || n.Returns != "" || n.Body != nil) {
		return nil, InvalidNode{Path: path, Reason: "args, returns and body are only valid on fun"}
	}

	switch {
	case n.Fun != nil:
		if n.Returns == "" {
			return nil, InvalidNode{Path: path, Reason: "function without returns"}
		}

		var args []ast.FunArg
		for i, a := range n.Args {
			if a.Name == "" || a.Type == "" {
				return nil, InvalidNode{Path: fmt.Sprintf("%s.args[%d]", path, i), Reason: "argument needs name and type"}
			}
			args = append(args, ast.NewFunArg(a.Name, ast.NewUnresolvedType(a.Type)))
		}

		body, err := convertNode(n.Body, path+".body")
		if err != nil {
			return nil, err
		}

		return ast.NewFunDecl(*n.Fun, args, ast.NewUnresolvedType(n.Returns), body), nil
	case n.Block != nil:
		children := make([]ast.Ast, 0, len(*n.Block))
		for i := range *n.Block {
			child, err := convertNode(&(*n.Block)[i], fmt.Sprintf("%s.block[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return ast.NewBasicBlock(children...), nil
	case n.Var != nil:
		return ast.NewStmt(ast.NewVarDecl(*n.Var)), nil
	case n.Assign != nil:
		left, err := convertExpr(n.Assign.Left, path+".assign.left")
		if err != nil {
			return nil, err
		}
		right, err := convertExpr(n.Assign.Right, path+".assign.right")
		if err != nil {
			return nil, err
		}
		return ast.NewStmt(ast.NewAssign(left, right)), nil
	default:
		e, err := convertExpr(n.Expr, path+".expr")
		if err != nil {
			return nil, err
		}
		return ast.NewExpr(e), nil
	}
}

func convertExpr(e *expr, path string) (ast.ExprKind, error) {
	if e == nil {
		return nil, InvalidNode{Path: path, Reason: "missing expression"}
	}
	if countSet(e.Ident != nil, e.Int != nil, e.Binary != nil) != 1 {
		return nil, InvalidNode{Path: path, Reason: "expected exactly one of ident, int, binary"}
	}

	switch {
	case e.Ident != nil:
		return ast.NewIdentifier(*e.Ident), nil
	case e.Int != nil:
		return ast.NewIntLiteral(*e.Int), nil
	default:
		op, ok := ast.LookupOperator(e.Binary.Op)
		if !ok {
			return nil, UnknownOperator{Path: path + ".binary.op", Symbol: e.Binary.Op}
		}
		left, err := convertExpr(e.Binary.Left, path+".binary.left")
		if err != nil {
			return nil, err
		}
		right, err := convertExpr(e.Binary.Right, path+".binary.right")
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(op, left, right), nil
	}
}
