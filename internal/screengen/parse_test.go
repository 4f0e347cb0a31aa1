package screengen

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	type tc struct {
		src         string
		typeName    string
		wantScreens []Screen
		wantErr     string
	}

	tests := map[string]tc{
		"value and pointer fields": {
			src: `package app
type AppScreens struct {
	Home HomeScreen
	List *ListScreen
}`,
			typeName: "AppScreens",
			wantScreens: []Screen{
				{Name: "Home", Type: "HomeScreen"},
				{Name: "List", Type: "ListScreen"},
			},
		},
		"grouped names and qualified types": {
			src: `package app
type Screens struct {
	A, B widgets.Panel
	_    Ignored
}`,
			typeName: "Screens",
			wantScreens: []Screen{
				{Name: "A", Type: "widgets.Panel"},
				{Name: "B", Type: "widgets.Panel"},
			},
		},
		"missing type": {
			src:      "package app\ntype Other struct{ A B }",
			typeName: "AppScreens",
			wantErr:  "type AppScreens not found",
		},
		"not a struct": {
			src:      "package app\ntype AppScreens int",
			typeName: "AppScreens",
			wantErr:  "is not a struct",
		},
		"embedded field": {
			src:      "package app\ntype AppScreens struct{ HomeScreen }",
			typeName: "AppScreens",
			wantErr:  "embedded field HomeScreen",
		},
		"unsupported type": {
			src:      "package app\ntype AppScreens struct{ Home []HomeScreen }",
			typeName: "AppScreens",
			wantErr:  "unsupported screen type []HomeScreen",
		},
		"empty struct": {
			src:      "package app\ntype AppScreens struct{}",
			typeName: "AppScreens",
			wantErr:  "has no screens",
		},
		"syntax error": {
			src:      "package app\ntype AppScreens struct{",
			typeName: "AppScreens",
			wantErr:  "expected",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			set, err := Parse("screens.go", []byte(tt.src), tt.typeName)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if set.Package != "app" || set.TypeName != tt.typeName {
				t.Errorf("Parse() = package %q type %q", set.Package, set.TypeName)
			}
			if len(set.Screens) != len(tt.wantScreens) {
				t.Fatalf("Screens = %v, want %v", set.Screens, tt.wantScreens)
			}
			for i, want := range tt.wantScreens {
				if set.Screens[i] != want {
					t.Errorf("Screens[%d] = %v, want %v", i, set.Screens[i], want)
				}
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	src := "package app\n\ntype AppScreens struct {\n\tHome HomeScreen\n\tHome ListScreen\n}\n"
	_, err := Parse("screens.go", []byte(src), "AppScreens")

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %v, want *Error", err)
	}
	if perr.Pos.Line != 5 {
		t.Errorf("error line = %d, want 5", perr.Pos.Line)
	}
	if !strings.HasPrefix(err.Error(), "screens.go:5:") {
		t.Errorf("Error() = %q, want screens.go:5 prefix", err.Error())
	}
}

func TestTypeNames(t *testing.T) {
	src := `package app
type A struct{}
type B int
type (
	C struct{ X int }
	D = A
)`
	names, err := TypeNames("x.go", []byte(src))
	if err != nil {
		t.Fatalf("TypeNames: %v", err)
	}
	if strings.Join(names, ",") != "A,C" {
		t.Errorf("TypeNames() = %v, want [A C]", names)
	}
}
