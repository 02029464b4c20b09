package evaluator

import (
	"io"
	"os"

	"github.com/lilith-lang/lilith/internal/config"
)

// Out is where the print builtin writes. The CLI and tests may redirect it.
var Out io.Writer = os.Stdout

// Builtins maps every native primitive to its Builtin value.
var Builtins = map[string]*Builtin{}

func register(name string, fn BuiltinFunc) {
	Builtins[name] = &Builtin{Name: name, Fn: fn}
}

func init() {
	register(config.HeadFuncName, builtinHead)
	register(config.TailFuncName, builtinTail)
	register(config.InitFuncName, builtinInit)
	register(config.ListFuncName, builtinList)
	register(config.EvalFuncName, builtinEval)
	register(config.JoinFuncName, builtinJoin)
	register(config.LenFuncName, builtinLen)
	register(config.ConsFuncName, builtinCons)
	register(config.DefFuncName, builtinDef)
	register(config.PutFuncName, builtinPut)
	register(config.LambdaFuncName, builtinLambda)
	register(config.IfFuncName, builtinIf)
	register(config.EqFuncName, builtinEq)
	register(config.NeqFuncName, builtinEq)
	register(config.ErrorFuncName, builtinError)
	register(config.PrintFuncName, builtinPrint)

	for _, entry := range builtinOps {
		op := entry.op
		register(entry.name, func(env *Environment, name string, args *Sexpr) Object {
			return builtinOp(env, name, args, op)
		})
	}
}

// RegisterBuiltins installs every builtin into env.
func RegisterBuiltins(env *Environment) {
	for name, b := range Builtins {
		env.DefineLocal(name, b)
	}
}

// NewRootEnvironment builds the native scope: every builtin bound, then the
// scope frozen so user code cannot rebind them.
func NewRootEnvironment() *Environment {
	env := NewEnvironment()
	RegisterBuiltins(env)
	env.MarkReadOnly()
	return env
}
