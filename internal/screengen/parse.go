package screengen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
)

// Set is a parsed screen set declaration.
type Set struct {
	// Package is the package the declaration lives in.
	Package string

	// TypeName is the name of the struct listing the screens.
	TypeName string

	// Screens are the struct's fields, in declaration order.
	Screens []Screen
}

// Screen is one screen kind of a Set.
type Screen struct {
	// Name is the field name. It names the ID constant.
	Name string

	// Type is the screen type without a leading pointer, such as "HomeScreen".
	Type string
}

// Parse finds the struct typeName in the Go source src and reads its fields.
// filename is only used in error positions.
func Parse(filename string, src []byte, typeName string) (*Set, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	spec := findType(file, typeName)
	if spec == nil {
		return nil, errorf(token.Position{Filename: filename}, "type %s not found", typeName)
	}
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, errorf(fset.Position(spec.Pos()), "type %s is not a struct", typeName)
	}

	set := &Set{Package: file.Name.Name, TypeName: typeName}
	seen := make(map[string]bool)

	for _, field := range st.Fields.List {
		pos := fset.Position(field.Pos())
		if len(field.Names) == 0 {
			return nil, errorf(pos, "embedded field %s: every screen needs a field name", types.ExprString(field.Type))
		}

		typ, err := screenType(field.Type)
		if err != nil {
			return nil, errorf(pos, "%v", err)
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			if seen[name.Name] {
				return nil, errorf(pos, "duplicate screen %s", name.Name)
			}
			seen[name.Name] = true
			set.Screens = append(set.Screens, Screen{Name: name.Name, Type: typ})
		}
	}

	if len(set.Screens) == 0 {
		return nil, errorf(fset.Position(spec.Pos()), "type %s has no screens", typeName)
	}
	return set, nil
}

// Lookup returns the screen named name.
func (s *Set) Lookup(name string) (Screen, bool) {
	for _, sc := range s.Screens {
		if sc.Name == name {
			return sc, true
		}
	}
	return Screen{}, false
}

// TypeNames returns the struct types declared in src, for error messages and
// for picking the type when only one is declared.
func TypeNames(filename string, src []byte) ([]string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if _, ok := ts.Type.(*ast.StructType); ok {
				names = append(names, ts.Name.Name)
			}
		}
	}
	return names, nil
}

func findType(file *ast.File, name string) *ast.TypeSpec {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			if ts := spec.(*ast.TypeSpec); ts.Name.Name == name {
				return ts
			}
		}
	}
	return nil
}

// screenType accepts T, *T, pkg.T and *pkg.T.
func screenType(expr ast.Expr) (string, error) {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, nil
	case *ast.SelectorExpr:
		if _, ok := e.X.(*ast.Ident); ok {
			return types.ExprString(e), nil
		}
	}
	return "", &Error{Message: "unsupported screen type " + strings.TrimSpace(types.ExprString(expr)) + ": want a named type"}
}
