// Package cli implements the lilith command: script execution and the
// interactive REPL.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/lilith-lang/lilith/internal/config"
	"github.com/lilith-lang/lilith/internal/evaluator"
	"github.com/lilith-lang/lilith/pkg/lilith"
)

// Run executes the command and returns the process exit code. With file
// arguments each file runs in order; otherwise an interactive REPL starts
// when both ends are terminals, and stdin is read as a script when not.
func Run(args []string) int {
	env, err := lilith.Init()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer lilith.Teardown(env)

	if len(args) > 0 {
		for _, path := range args {
			if code := runFile(env, path); code != 0 {
				return code
			}
		}
		return 0
	}

	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return runREPL(env)
	}
	return runScript(env, os.Stdin, "stdin")
}

func runFile(env *evaluator.Environment, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return evalSource(env, string(src), path)
}

func runScript(env *evaluator.Environment, r io.Reader, name string) int {
	src, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return evalSource(env, string(src), name)
}

// evalSource evaluates every top-level form, printing only Errors.
func evalSource(env *evaluator.Environment, src, name string) int {
	forms, err := lilith.ReadString(name, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, form := range forms {
		if rv := lilith.Eval(env, form); rv.Type() == evaluator.ERROR_OBJ {
			fmt.Fprintln(os.Stderr, rv.Inspect())
			return 1
		}
	}
	return 0
}

func runREPL(env *evaluator.Environment) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer rl.Close()

	fmt.Printf("lilith %s\n", config.Version)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		forms, err := lilith.ReadString("repl", line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, form := range forms {
			rv := lilith.Eval(env, form)
			if rv.Type() == evaluator.ERROR_OBJ {
				fmt.Fprintln(os.Stderr, paint(cfg, rv.Inspect()))
				continue
			}
			fmt.Println(rv.Inspect())
		}
	}
	return 0
}

func paint(cfg Config, s string) string {
	if !cfg.Color {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}
