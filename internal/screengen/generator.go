package screengen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"golang.org/x/tools/imports"
)

// ImportPath is the import path of the tui package used by generated code.
const ImportPath = "github.com/grindlemire/go-tuistack"

// Generator writes the Go source for a Set.
type Generator struct {
	buf    bytes.Buffer
	indent int

	// IDType names the generated ID enum. Default "ScreenID".
	IDType string

	// StateType is the application state type. Default "tui.NoState".
	StateType string

	// Prefix is prepended to field names to form ID constants. Default "Screen".
	Prefix string

	// Default is the field used by Default. Defaults to the first field.
	Default string

	// SourceFile is recorded in the header and used by goimports.
	SourceFile string

	// SkipImports uses format.Source instead of imports.Process (faster for tests)
	SkipImports bool
}

// NewGenerator creates a Generator with default settings.
func NewGenerator() *Generator {
	return &Generator{
		IDType:    "ScreenID",
		StateType: "tui.NoState",
		Prefix:    "Screen",
	}
}

// Generate produces formatted Go source for set.
func (g *Generator) Generate(set *Set) ([]byte, error) {
	g.buf.Reset()
	g.indent = 0

	def := set.Screens[0]
	if g.Default != "" {
		sc, ok := set.Lookup(g.Default)
		if !ok {
			return nil, fmt.Errorf("default screen %s is not a field of %s", g.Default, set.TypeName)
		}
		def = sc
	}
	if g.IDType == "" || g.StateType == "" {
		return nil, fmt.Errorf("ID and state types must be set")
	}

	g.generateHeader(set)
	g.generateIDs(set)
	g.generateString(set)
	g.generateDefault(set, def)
	g.generateNew(set)

	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}
	return imports.Process(g.SourceFile, g.buf.Bytes(), nil)
}

func (g *Generator) generateHeader(set *Set) {
	g.writeln("// Code generated by stackgen. DO NOT EDIT.")
	if g.SourceFile != "" {
		g.writef("// Source: %s\n", g.SourceFile)
	}
	g.writeln("")
	g.writef("package %s\n\n", set.Package)
	g.writeln("import (")
	g.indent++
	g.writeln(`"fmt"`)
	g.writeln("")
	g.writef("tui %q\n", ImportPath)
	g.indent--
	g.writeln(")")
	g.writeln("")
}

func (g *Generator) generateIDs(set *Set) {
	g.writef("// %s identifies a screen of %s.\n", g.IDType, set.TypeName)
	g.writef("type %s int\n\n", g.IDType)
	g.writeln("const (")
	g.indent++
	for i, sc := range set.Screens {
		if i == 0 {
			g.writef("%s %s = iota\n", g.constName(sc), g.IDType)
			continue
		}
		g.writeln(g.constName(sc))
	}
	g.indent--
	g.writeln(")")
	g.writeln("")
}

func (g *Generator) generateString(set *Set) {
	g.writef("func (id %s) String() string {\n", g.IDType)
	g.indent++
	g.writeln("switch id {")
	for _, sc := range set.Screens {
		g.writef("case %s:\n", g.constName(sc))
		g.indent++
		g.writef("return %q\n", sc.Name)
		g.indent--
	}
	g.writeln("default:")
	g.indent++
	g.writef("return fmt.Sprintf(\"%s(%%d)\", int(id))\n", g.IDType)
	g.indent--
	g.writeln("}")
	g.indent--
	g.writeln("}")
	g.writeln("")
}

func (g *Generator) generateDefault(set *Set, def Screen) {
	g.writef("// Default creates the %s screen.\n", def.Name)
	g.writef("func (%s) Default() tui.Screen[%s, %s] {\n", set.TypeName, g.IDType, g.StateType)
	g.indent++
	g.writef("return new(%s)\n", def.Type)
	g.indent--
	g.writeln("}")
	g.writeln("")
}

func (g *Generator) generateNew(set *Set) {
	g.writeln("// New creates a fresh screen for id.")
	g.writef("func (%s) New(id %s) tui.Screen[%s, %s] {\n", set.TypeName, g.IDType, g.IDType, g.StateType)
	g.indent++
	g.writeln("switch id {")
	for _, sc := range set.Screens {
		g.writef("case %s:\n", g.constName(sc))
		g.indent++
		g.writef("return new(%s)\n", sc.Type)
		g.indent--
	}
	g.writeln("default:")
	g.indent++
	g.writef("panic(fmt.Sprintf(\"%s: unknown screen %%d\", int(id)))\n", set.TypeName)
	g.indent--
	g.writeln("}")
	g.indent--
	g.writeln("}")
}

func (g *Generator) constName(sc Screen) string {
	return g.Prefix + sc.Name
}

func (g *Generator) writef(format string, args ...any) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *Generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

func (g *Generator) writeIndent() {
	g.buf.WriteString(strings.Repeat("\t", g.indent))
}

// OutputFileName returns the file the generated code for typeName goes to,
// next to the source file.
func OutputFileName(typeName string) string {
	return strings.ToLower(typeName) + "_stackgen.go"
}
