// Package main provides stackgen, the screen set generator for go-tuistack.
//
// Usage:
//
//	stackgen generate [flags] [file.go]   Generate a screen set
//	stackgen check [flags] [file.go]      List the screens without generating
//	stackgen help                         Show help
//
// Under go generate the file defaults to $GOFILE:
//
//	//go:generate go run github.com/grindlemire/go-tuistack/cmd/stackgen generate -type AppScreens -state State
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `stackgen - screen set generator for go-tuistack

Usage:
  stackgen <command> [flags] [file.go]

Commands:
  generate    Generate the ID enum and ScreenSet methods for a struct
  check       Parse the struct and list its screens
  version     Print version information
  help        Show this help message

Flags:
  -t, --type      Struct listing the screens (default: the only struct in the file)
      --id        Name of the generated ID type (default "ScreenID")
      --state     Application state type (default "tui.NoState")
      --prefix    Prefix for ID constants (default "Screen")
      --default   Field used by Default (default: the first field)
  -o, --output    Output file (default: <type>_stackgen.go next to the input)
  -v, --verbose   Verbose output

Examples:
  stackgen generate -t AppScreens --state State screens.go
  stackgen check -t AppScreens screens.go
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("stackgen version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
