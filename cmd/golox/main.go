// Command golox is the interpreter's driver: REPL when run with no
// arguments, single-file execution when given a script path. Built with
// spf13/cobra (sourced from the retrieval pack's opal-lang-opal, which
// uses it as its root command framework) rather than the teacher's hand
// rolled flag handling in main/main.go, while keeping the teacher's
// colored-diagnostic and banner conventions.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/config"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/eval"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/repl"
)

var (
	flagWatch    bool
	flagNoColor  bool
	flagConfig   string
	flagPrintAST bool
)

func main() {
	root := &cobra.Command{
		Use:   "golox [script]",
		Short: "golox — a tree-walking Lox interpreter",
		// Args is intentionally permissive (no cobra-level validation):
		// the "golox <path> <extra...>" usage-error case has an exact
		// message/exit-code contract (spec.md §6) that cobra's own
		// arg-count errors don't reproduce, so it's handled by hand in
		// RunE below.
		Args: cobra.ArbitraryArgs,
		RunE: run,
		// Disable cobra's own usage/error templates for this case; golox
		// prints its own "Usage: ..." line and exits 64, matching
		// original_source/src/main.rs precisely.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVar(&flagWatch, "watch", false, "re-run the script whenever it changes on disk (file mode only)")
	root.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored diagnostic output")
	root.Flags().StringVar(&flagConfig, "config", "", "path to a .golox.yaml config file")
	root.Flags().BoolVar(&flagPrintAST, "ast", false, "print the parsed AST before executing (file mode only)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Printf("Usage: %s [script]\n", os.Args[0])
		os.Exit(64)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor {
		cfg.Color = false
		color.NoColor = true
	}

	if len(args) == 0 {
		return repl.New(cfg).Start(os.Stdout)
	}
	return runFile(args[0], cfg)
}

func runFile(path string, cfg *config.Config) error {
	errColor := color.New(color.FgRed)
	if !cfg.Color {
		color.NoColor = true
	}

	exec := func() bool {
		src, err := os.ReadFile(path)
		if err != nil {
			errColor.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return runSource(string(src), errColor)
	}

	ok := exec()
	if !flagWatch {
		if !ok {
			os.Exit(70)
		}
		return nil
	}

	return watchAndRerun(path, exec)
}

// runSource lexes, parses, optionally prints the AST, and evaluates src
// against a fresh environment (per spec.md: file-mode execution starts
// clean, unlike the REPL's long-lived environment). It reports whether
// execution completed without error.
func runSource(src string, errColor *color.Color) bool {
	tokens, lexErrs := lexer.New(src).Tokenize()
	p := parser.New(tokens)
	prog := p.Parse()

	allErrs := append(append([]string{}, lexErrs...), p.Errors()...)
	if len(allErrs) > 0 {
		for _, e := range allErrs {
			errColor.Fprintln(os.Stderr, e)
		}
		return false
	}

	if flagPrintAST {
		fmt.Print(ast.Print(prog))
	}

	evaluator := eval.New()
	if err := evaluator.Run(prog, environment.New()); err != nil {
		errColor.Fprintln(os.Stderr, err.Error())
		return false
	}
	return true
}

// watchAndRerun re-executes exec every time path changes on disk, via
// fsnotify (sourced from opal-lang-opal/runtime's dependency on the same
// library for its own file-watch support).
func watchAndRerun(path string, exec func() bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	infoColor := color.New(color.FgCyan)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				infoColor.Fprintf(os.Stdout, "--- re-running %s ---\n", path)
				exec()
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return werr
		}
	}
}
