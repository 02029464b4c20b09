package evaluator

import (
	"fmt"

	"github.com/lilith-lang/lilith/internal/config"
)

func newError(format string, a ...interface{}) *Error {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > config.ErrorMessageCap {
		msg = msg[:config.ErrorMessageCap]
	}
	return &Error{Message: msg}
}

// Each assert* helper checks one contract and returns a non-nil Error on
// violation, before the builtin consumes anything from the argument sequence.

func assertEnv(env *Environment, name string) *Error {
	if env == nil {
		return newError("environment not set for '%s'", name)
	}
	return nil
}

func assertArgCount(args *Sexpr, expected int, name string) *Error {
	if len(args.Elements) != expected {
		return newError("function '%s' expects %d argument, received %d",
			name, expected, len(args.Elements))
	}
	return nil
}

func assertArgType(args *Sexpr, idx int, expected ObjectType, name string) *Error {
	if got := args.Elements[idx].Type(); got != expected {
		return newError("function '%s' type mismatch - expected %s, received %s",
			name, TypeName(expected), TypeName(got))
	}
	return nil
}

func assertNonEmptyQexpr(args *Sexpr, idx int, name string) *Error {
	if q, ok := args.Elements[idx].(*Qexpr); ok && len(q.Elements) == 0 {
		return newError("empty q-expression passed to '%s'", name)
	}
	return nil
}
