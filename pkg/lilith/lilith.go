// Package lilith is the embedding surface of the interpreter: environment
// initialization, reading, evaluation and teardown.
package lilith

import (
	"fmt"

	"github.com/lilith-lang/lilith/internal/evaluator"
	"github.com/lilith-lang/lilith/internal/lexer"
	"github.com/lilith-lang/lilith/internal/parser"
	"github.com/lilith-lang/lilith/internal/stdlib"
)

// ReadString parses source text into its top-level forms. name labels reader
// diagnostics.
func ReadString(name, src string) ([]evaluator.Object, error) {
	return parser.New(lexer.New(src), name).Parse()
}

// Eval reduces one form to normal form in env.
func Eval(env *evaluator.Environment, v evaluator.Object) evaluator.Object {
	return evaluator.Eval(env, v)
}

// EvalAll evaluates forms sequentially and returns the last result, or the
// first Error value encountered.
func EvalAll(env *evaluator.Environment, forms []evaluator.Object) evaluator.Object {
	var last evaluator.Object = &evaluator.Sexpr{}
	for _, form := range forms {
		last = evaluator.Eval(env, form)
		if last.Type() == evaluator.ERROR_OBJ {
			return last
		}
	}
	return last
}

// Init builds the ready-to-use global environment: a read-only native scope
// holding every builtin, with a mutable scope under it for the bootstrapped
// standard library and all subsequent top-level definitions. Any Error
// surfacing from the bootstrap is fatal; no environment is returned.
func Init() (*evaluator.Environment, error) {
	root := evaluator.NewRootEnvironment()
	env := evaluator.NewEnclosedEnvironment(root)

	forms, err := ReadString(stdlib.Name, stdlib.Source)
	if err != nil {
		return nil, fmt.Errorf("standard library: %w", err)
	}
	if rv := EvalAll(env, forms); rv.Type() == evaluator.ERROR_OBJ {
		return nil, fmt.Errorf("standard library: %s", rv.Inspect())
	}
	return env, nil
}

// Teardown releases the bootstrap scope and then every ancestor, the native
// scope last.
func Teardown(env *evaluator.Environment) {
	for e := env; e != nil; e = e.Outer() {
		e.Release()
	}
}

// Render returns the literal surface form of a value.
func Render(v evaluator.Object) string { return v.Inspect() }

// Display renders a value with string contents unquoted.
func Display(v evaluator.Object) string { return evaluator.Display(v) }

// Copy deep-copies a value, including a lambda's captured environment.
func Copy(v evaluator.Object) evaluator.Object { return evaluator.CopyObject(v) }
