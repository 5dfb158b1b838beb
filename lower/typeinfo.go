package lower

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/pontaoski/tawast/ast"
	"github.com/ztrue/tracerr"
)

// TypeInfoGlobal names the global that holds a module's signatures.
const TypeInfoGlobal = "__tawast_types"

type typeInfo struct {
	Functions map[string]string `json:"functions"`
}

// signature formats decl as "(Int, Int) Int" using the unresolved names.
func signature(decl ast.FunDecl) string {
	args := make([]string, 0, len(decl.Args))
	for _, arg := range decl.Args {
		args = append(args, arg.ArgType.Name)
	}
	return "(" + strings.Join(args, ", ") + ") " + decl.Returns.Name
}

func (t typeInfo) add(decl ast.FunDecl) {
	t.Functions[decl.Name] = signature(decl)
}

func registerTypeInfoWithModule(t typeInfo, m *ir.Module) {
	data, err := json.Marshal(t)
	if err != nil {
		panic(err)
	}

	g := m.NewGlobalDef(TypeInfoGlobal, constant.NewCharArray(append(data, 0)))
	g.Immutable = true
}

// Signatures reads back the function signatures recorded in m.
func Signatures(m *ir.Module) (map[string]string, error) {
	for _, g := range m.Globals {
		if g.Name() != TypeInfoGlobal {
			continue
		}
		arr, ok := g.Init.(*constant.CharArray)
		if !ok {
			break
		}

		var t typeInfo
		if err := json.Unmarshal(bytes.TrimRight(arr.X, "\x00"), &t); err != nil {
			return nil, tracerr.Wrap(err)
		}
		return t.Functions, nil
	}

	return nil, tracerr.Errorf("module has no %s global", TypeInfoGlobal)
}
