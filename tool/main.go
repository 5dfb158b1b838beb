// Command tool generates the sealed sum type boilerplate for package ast.
//
// Usage: tool <in.adt> <out.go> <package>
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"
	"github.com/ztrue/tracerr"

	. "github.com/dave/jennifer/jen"
)

// Schema is a whole .adt file.
type Schema struct {
	SumTypes []*SumType `@@*`
}

// SumType is `type Name = | Variant of Payload ... ;`.
type SumType struct {
	Name     string     `"type" @Ident "="`
	Variants []*Variant `("|" @@)+ ";"`
}

type Variant struct {
	Name    string `@Ident "of"`
	Payload string `@Ident`
}

func (s *Schema) isSum(name string) bool {
	for _, sum := range s.SumTypes {
		if sum.Name == name {
			return true
		}
	}
	return false
}

// GenerateDecls emits one marker interface per sum type and one defined
// type per variant. Variants whose payload is itself a sum type wrap it in
// a struct with a Kind field, so the wrapper does not inherit the marker.
func GenerateDecls(pkgname string, s *Schema) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by tool; DO NOT EDIT.")

	for _, sum := range s.SumTypes {
		marker := "is" + sum.Name
		f.Type().Id(sum.Name).Interface(
			Id(marker).Params(),
		)

		for _, v := range sum.Variants {
			if s.isSum(v.Payload) {
				f.Type().Id(v.Name).Struct(Id("Kind").Id(v.Payload))
			} else {
				f.Type().Id(v.Name).Id(v.Payload)
			}

			f.Func().Params(Id("v").Id(v.Name)).Id(marker).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

var parser = participle.MustBuild(&Schema{})

func parseSchema(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := parser.ParseBytes(data, s); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return s, nil
}

func generate(in, out, pkgname string) error {
	data, err := ioutil.ReadFile(in)
	if err != nil {
		return tracerr.Wrap(err)
	}

	s, err := parseSchema(data)
	if err != nil {
		return err
	}

	return tracerr.Wrap(ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, s)), 0644))
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: tool <in.adt> <out.go> <package>")
		os.Exit(2)
	}

	if err := generate(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}
