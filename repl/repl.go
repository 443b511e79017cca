// Package repl implements golox's interactive loop. It is a direct
// descendant of the teacher's repl.Repl (chzyer/readline for line editing
// and history, fatih/color for the banner and diagnostics), generalized to
// hold one long-lived *environment.Environment across every line, per
// spec.md's "REPL continuity" and original_source/src/lib/mod.rs's
// interactive loop sharing a single Environment across stdin lines.
package repl

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/golox-lang/golox/config"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/eval"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
)

// Repl runs golox's read-eval-print loop against a single shared
// environment, the way the teacher's Repl struct bundles banner/prompt
// text with the readline-backed loop.
type Repl struct {
	Cfg *config.Config

	errColor  *color.Color
	infoColor *color.Color
}

// New creates a Repl from cfg. When cfg.Color is false, the color package
// is told to disable itself so diagnostics print as plain text.
func New(cfg *config.Config) *Repl {
	if !cfg.Color {
		color.NoColor = true
	}
	return &Repl{
		Cfg:       cfg,
		errColor:  color.New(color.FgRed),
		infoColor: color.New(color.FgCyan),
	}
}

// PrintBanner writes the configured banner to w, matching the teacher's
// Repl.PrintBannerInfo.
func (r *Repl) PrintBanner(w io.Writer) {
	if !r.Cfg.ShowBanner {
		return
	}
	r.infoColor.Fprintln(w, r.Cfg.Banner)
}

// Start runs the loop, reading lines via chzyer/readline until EOF or an
// interrupt. Each line is lexed, parsed, and evaluated against the same
// environment as every prior line, so `var`/`fun` declarations persist
// across entries.
func (r *Repl) Start(out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Cfg.Prompt,
		HistoryFile:     r.Cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.PrintBanner(out)

	env := environment.New()
	evaluator := &eval.Evaluator{Out: out}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		r.evalLine(line, env, evaluator, out)
	}
}

func (r *Repl) evalLine(line string, env *environment.Environment, evaluator *eval.Evaluator, out io.Writer) {
	tokens, lexErrs := lexer.New(line).Tokenize()
	p := parser.New(tokens)
	prog := p.Parse()

	allErrs := append(append([]string{}, lexErrs...), p.Errors()...)
	if len(allErrs) > 0 {
		for _, e := range allErrs {
			r.errColor.Fprintln(out, e)
		}
		return
	}

	if err := evaluator.Run(prog, env); err != nil {
		r.errColor.Fprintln(out, err.Error())
	}
}
