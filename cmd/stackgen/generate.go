package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/grindlemire/go-tuistack/internal/screengen"
)

type options struct {
	typeName string
	idType   string
	state    string
	prefix   string
	def      string
	output   string
	verbose  bool
	input    string
}

func parseFlags(name string, args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&opts.typeName, "type", "t", "", "struct listing the screens")
	fs.StringVar(&opts.idType, "id", "ScreenID", "name of the generated ID type")
	fs.StringVar(&opts.state, "state", "tui.NoState", "application state type")
	fs.StringVar(&opts.prefix, "prefix", "Screen", "prefix for ID constants")
	fs.StringVar(&opts.def, "default", "", "field used by Default")
	fs.StringVarP(&opts.output, "output", "o", "", "output file")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
		opts.input = os.Getenv("GOFILE")
		if opts.input == "" {
			return nil, errors.New("no input file and $GOFILE is not set")
		}
	case 1:
		opts.input = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	return opts, nil
}

// loadSet reads and parses the screen struct named by opts.
func loadSet(opts *options) (*screengen.Set, error) {
	src, err := os.ReadFile(opts.input)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.input, err)
	}

	if opts.typeName == "" {
		names, err := screengen.TypeNames(opts.input, src)
		if err != nil {
			return nil, err
		}
		if len(names) != 1 {
			return nil, fmt.Errorf("%s declares %d structs (%s); pick one with --type",
				opts.input, len(names), strings.Join(names, ", "))
		}
		opts.typeName = names[0]
	}

	return screengen.Parse(opts.input, src, opts.typeName)
}

// runGenerate implements the generate subcommand.
func runGenerate(args []string) error {
	opts, err := parseFlags("generate", args)
	if err != nil {
		return err
	}
	set, err := loadSet(opts)
	if err != nil {
		return err
	}

	gen := screengen.NewGenerator()
	gen.IDType = opts.idType
	gen.StateType = opts.state
	gen.Prefix = opts.prefix
	gen.Default = opts.def
	gen.SourceFile = filepath.Base(opts.input)

	out, err := gen.Generate(set)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(opts.input), screengen.OutputFileName(set.TypeName))
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	if opts.verbose {
		fmt.Printf("Generated %s (%d screens) -> %s\n", set.TypeName, len(set.Screens), outputPath)
	}
	return nil
}

// runCheck implements the check subcommand.
func runCheck(args []string) error {
	opts, err := parseFlags("check", args)
	if err != nil {
		return err
	}
	set, err := loadSet(opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s.%s:\n", set.Package, set.TypeName)
	for _, sc := range set.Screens {
		fmt.Printf("  %s%s -> %s\n", opts.prefix, sc.Name, sc.Type)
	}
	return nil
}
