package lower

import (
	"github.com/llir/llvm/ir/types"
	"github.com/pontaoski/tawast/ast"
)

// Resolver binds type names as written in source to type kinds.
type Resolver struct {
	names map[string]ast.TypeKind
}

func NewResolver() *Resolver {
	return &Resolver{
		names: map[string]ast.TypeKind{
			ast.Int.String(): ast.NewBuildin(ast.Int),
		},
	}
}

// Declare adds or replaces a named type.
func (r *Resolver) Declare(name string, kind ast.TypeKind) {
	r.names[name] = kind
}

func (r *Resolver) Resolve(t ast.UnresolvedType) (ast.TypeKind, error) {
	kind, ok := r.names[t.Name]
	if !ok {
		return nil, UnknownType{Name: t.Name}
	}
	return kind, nil
}

var Int32 = types.I32

func llvmType(kind ast.TypeKind) (types.Type, error) {
	switch k := kind.(type) {
	case ast.Buildin:
		if ast.BuildinTypeKind(k) == ast.Int {
			return Int32, nil
		}
	case ast.Aggregate:
		return nil, UnsupportedType{Name: k.Name}
	}
	return nil, UnsupportedType{Name: "<unknown>"}
}
