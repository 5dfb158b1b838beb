// Package lower translates function declarations into LLVM IR.
//
// Every value is an i32. Arguments and declared variables live in stack
// slots; comparisons yield 0 or 1. A function returns the value of the last
// expression it evaluated, or 0 when it evaluated none.
package lower

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/pontaoski/tawast/ast"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawast", "lower")

type Settings struct {
	PackageName string
	Target      string
	Resolver    *Resolver
}

type ctx struct {
	resolver               *Resolver
	funcs                  map[string]*ir.Func
	names                  []map[string]value.Value
	function               string
	forwardDeclarationPass bool
	info                   typeInfo
}

func (c *ctx) fail(err error) {
	panic(uerror{err})
}

func (c *ctx) pushScope() {
	c.names = append(c.names, make(map[string]value.Value))
}

func (c *ctx) popScope() {
	c.names = c.names[:len(c.names)-1]
}

func (c *ctx) top() map[string]value.Value {
	return c.names[len(c.names)-1]
}

func (c *ctx) lookup(name string) value.Value {
	for i := len(c.names) - 1; i >= 0; i-- {
		if slot, ok := c.names[i][name]; ok {
			return slot
		}
	}

	c.fail(UnknownIdentifier{Function: c.function, Name: name})
	return nil
}

func (c *ctx) resolve(t ast.UnresolvedType) types.Type {
	kind, err := c.resolver.Resolve(t)
	if err != nil {
		c.fail(err)
	}
	typ, err := llvmType(kind)
	if err != nil {
		c.fail(err)
	}
	return typ
}

func (c *ctx) lowerExpression(e ast.ExprKind, b *ir.Block) value.Value {
	switch expr := e.(type) {
	case ast.Identifier:
		return b.NewLoad(Int32, c.lookup(string(expr)))
	case ast.Literal:
		return constant.NewInt(Int32, int64(expr.Value))
	case ast.Binary:
		left := c.lowerExpression(expr.Left, b)
		right := c.lowerExpression(expr.Right, b)

		switch expr.Operator {
		case ast.Plus:
			return b.NewAdd(left, right)
		case ast.Minus:
			return b.NewSub(left, right)
		case ast.Mul:
			return b.NewMul(left, right)
		case ast.Div:
			return b.NewSDiv(left, right)
		case ast.Less:
			return b.NewZExt(b.NewICmp(enum.IPredSLT, left, right), Int32)
		case ast.Greater:
			return b.NewZExt(b.NewICmp(enum.IPredSGT, left, right), Int32)
		}
	}

	c.fail(UnsupportedNode{Function: c.function, Node: ast.RenderExpr(e)})
	return nil
}

// lowerNode returns the value of the last expression evaluated under node,
// or nil if none was.
func (c *ctx) lowerNode(node ast.Ast, b *ir.Block) value.Value {
	switch n := node.(type) {
	case ast.Expr:
		return c.lowerExpression(n.Kind, b)
	case ast.BasicBlock:
		var last value.Value

		c.pushScope()
		for _, child := range n.Implementation {
			if v := c.lowerNode(child, b); v != nil {
				last = v
			}
		}
		c.popScope()

		return last
	case ast.Stmt:
		c.lowerStatement(n.Kind, b)
		return nil
	}

	c.fail(UnsupportedNode{Function: c.function, Node: ast.Render(node)})
	return nil
}

func (c *ctx) lowerStatement(s ast.StmtKind, b *ir.Block) {
	switch stmt := s.(type) {
	case ast.VarDecl:
		slot := b.NewAlloca(Int32)
		b.NewStore(constant.NewInt(Int32, 0), slot)
		c.top()[string(stmt)] = slot
	case ast.Assign:
		target, ok := stmt.Left.(ast.Identifier)
		if !ok {
			c.fail(NotAssignable{Function: c.function, Target: ast.RenderExpr(stmt.Left)})
		}
		val := c.lowerExpression(stmt.Right, b)
		b.NewStore(val, c.lookup(string(target)))
	default:
		c.fail(UnsupportedNode{Function: c.function, Node: ast.RenderStmt(s)})
	}
}

func (c *ctx) lowerToplevel(node ast.Ast, m *ir.Module) {
	decl, ok := node.(ast.FunDecl)
	if !ok {
		c.fail(UnsupportedNode{Node: ast.Render(node)})
	}

	if c.forwardDeclarationPass {
		if _, ok := c.funcs[decl.Name]; ok {
			c.fail(DuplicateFunction{Name: decl.Name})
		}

		seen := map[string]bool{}
		var params []*ir.Param
		for _, arg := range decl.Args {
			if seen[arg.Name] {
				c.fail(DuplicateArgument{Function: decl.Name, Name: arg.Name})
			}
			seen[arg.Name] = true
			params = append(params, ir.NewParam(arg.Name, c.resolve(arg.ArgType)))
		}
		c.funcs[decl.Name] = m.NewFunc(decl.Name, c.resolve(decl.Returns), params...)
		c.info.add(decl)
		return
	}

	plog.Debugf("lowering function %s", decl.Name)

	fn := c.funcs[decl.Name]
	entry := fn.NewBlock("entry")
	c.function = decl.Name

	c.pushScope()
	for i, arg := range decl.Args {
		slot := entry.NewAlloca(Int32)
		entry.NewStore(fn.Params[i], slot)
		c.top()[arg.Name] = slot
	}
	ret := c.lowerNode(decl.Implementation, entry)
	c.popScope()

	if ret == nil {
		ret = constant.NewInt(Int32, 0)
	}
	entry.NewRet(ret)
}

// Module lowers decls, which must all be function declarations, into a
// single LLVM module.
func Module(decls []ast.Ast, s Settings) (m *ir.Module, err error) {
	defer func() {
		if v := recover(); v != nil {
			if u, ok := v.(uerror); ok {
				m = nil
				err = tracerr.Wrap(u.err)
			} else {
				panic(v)
			}
		}
	}()

	resolver := s.Resolver
	if resolver == nil {
		resolver = NewResolver()
	}

	c := &ctx{
		resolver: resolver,
		funcs:    map[string]*ir.Func{},
		info:     typeInfo{Functions: map[string]string{}},
	}

	m = ir.NewModule()
	m.SourceFilename = s.PackageName
	m.TargetTriple = s.Target

	c.forwardDeclarationPass = true
	for _, decl := range decls {
		c.lowerToplevel(decl, m)
	}
	c.forwardDeclarationPass = false
	for _, decl := range decls {
		c.lowerToplevel(decl, m)
	}

	registerTypeInfoWithModule(c.info, m)
	plog.Infof("lowered %d functions", len(c.funcs))

	return m, nil
}
