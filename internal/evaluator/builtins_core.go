package evaluator

import (
	"fmt"

	"github.com/lilith-lang/lilith/internal/config"
)

// builtinHead returns a one-element q-expression holding the first element.
func builtinHead(env *Environment, name string, args *Sexpr) Object {
	if err := validateSeqArg(env, name, args); err != nil {
		return err
	}
	q := args.Elements[0].(*Qexpr)
	return (&Qexpr{}).Add(q.Pop(0))
}

// builtinTail returns all elements except the first.
func builtinTail(env *Environment, name string, args *Sexpr) Object {
	if err := validateSeqArg(env, name, args); err != nil {
		return err
	}
	q := args.Elements[0].(*Qexpr)
	q.Pop(0)
	return q
}

// builtinInit returns all elements except the last.
func builtinInit(env *Environment, name string, args *Sexpr) Object {
	if err := validateSeqArg(env, name, args); err != nil {
		return err
	}
	q := args.Elements[0].(*Qexpr)
	q.Pop(len(q.Elements) - 1)
	return q
}

// validateSeqArg covers the shared head/tail/init contract: one non-empty
// q-expression.
func validateSeqArg(env *Environment, name string, args *Sexpr) *Error {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 1, name); err != nil {
		return err
	}
	if err := assertArgType(args, 0, QEXPR_OBJ, name); err != nil {
		return err
	}
	return assertNonEmptyQexpr(args, 0, name)
}

// builtinList retags the whole argument sequence to a q-expression without
// touching its contents.
func builtinList(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	return &Qexpr{Elements: args.Elements}
}

// builtinEval retags a q-expression to an s-expression and evaluates it; the
// language's sole unquote.
func builtinEval(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 1, name); err != nil {
		return err
	}
	if err := assertArgType(args, 0, QEXPR_OBJ, name); err != nil {
		return err
	}
	q := args.Elements[0].(*Qexpr)
	return Eval(env, &Sexpr{Elements: q.Elements})
}

// builtinJoin concatenates the elements of every operand, in call order.
func builtinJoin(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if len(args.Elements) == 0 {
		return newError("function '%s' expects 1 argument, received 0", name)
	}
	for i := range args.Elements {
		if err := assertArgType(args, i, QEXPR_OBJ, name); err != nil {
			return err
		}
	}

	rv := args.Elements[0].(*Qexpr)
	for _, el := range args.Elements[1:] {
		rv.Elements = append(rv.Elements, el.(*Qexpr).Elements...)
	}
	return rv
}

// builtinLen returns the element count of a q-expression.
func builtinLen(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 1, name); err != nil {
		return err
	}
	if err := assertArgType(args, 0, QEXPR_OBJ, name); err != nil {
		return err
	}
	q := args.Elements[0].(*Qexpr)
	return &Integer{Value: int64(len(q.Elements))}
}

// builtinCons prepends a scalar or function to a q-expression.
func builtinCons(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 2, name); err != nil {
		return err
	}
	switch args.Elements[0].Type() {
	case SEXPR_OBJ, QEXPR_OBJ, ERROR_OBJ:
		return newError("first '%s' parameter should be a value or a function", name)
	}
	if args.Elements[1].Type() != QEXPR_OBJ {
		return newError("second '%s' parameter should be a q-expression", name)
	}

	rv := (&Qexpr{}).Add(args.Elements[0])
	rv.Elements = append(rv.Elements, args.Elements[1].(*Qexpr).Elements...)
	return rv
}

// builtinDef binds symbols in the global scope; builtinPut binds them in the
// calling scope. Both share builtinVar.
func builtinDef(env *Environment, name string, args *Sexpr) Object {
	return builtinVar(env, name, args, true)
}

func builtinPut(env *Environment, name string, args *Sexpr) Object {
	return builtinVar(env, name, args, false)
}

// builtinVar validates the symbol list against the value count, then binds
// pairwise. The loop is not transactional: a refused redefinition reports an
// Error but bindings already applied in the same call stay in place.
func builtinVar(env *Environment, name string, args *Sexpr, global bool) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if len(args.Elements) == 0 {
		return newError("function '%s' expects 1 argument, received 0", name)
	}
	if err := assertArgType(args, 0, QEXPR_OBJ, name); err != nil {
		return err
	}

	syms := args.Elements[0].(*Qexpr)
	for _, s := range syms.Elements {
		if s.Type() != SYMBOL_OBJ {
			return newError("function '%s' type mismatch - expected %s, received %s",
				name, TypeName(SYMBOL_OBJ), TypeName(s.Type()))
		}
	}
	if len(syms.Elements) != len(args.Elements)-1 {
		return newError("function '%s' argument mismatch - %d symbols, %d values",
			name, len(syms.Elements), len(args.Elements)-1)
	}

	for i, s := range syms.Elements {
		sym := s.(*Symbol)
		var refused bool
		if global {
			refused = env.DefineGlobal(sym.Value, args.Elements[i+1])
		} else {
			refused = env.DefineLocal(sym.Value, args.Elements[i+1])
		}
		if refused {
			return newError("function '%s' is a built-in", sym.Value)
		}
	}

	return &Sexpr{}
}

// builtinLambda constructs a user function from a formal list and a body.
func builtinLambda(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 2, name); err != nil {
		return err
	}
	if err := assertArgType(args, 0, QEXPR_OBJ, name); err != nil {
		return err
	}
	if err := assertArgType(args, 1, QEXPR_OBJ, name); err != nil {
		return err
	}

	formals := args.Elements[0].(*Qexpr)
	for _, s := range formals.Elements {
		if s.Type() != SYMBOL_OBJ {
			return newError("function '%s' type mismatch - expected %s, received %s",
				name, TypeName(SYMBOL_OBJ), TypeName(s.Type()))
		}
	}

	return NewLambda(formals, args.Elements[1].(*Qexpr))
}

// builtinIf evaluates one of two quoted branches.
func builtinIf(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 3, name); err != nil {
		return err
	}
	if err := assertArgType(args, 0, BOOLEAN_OBJ, name); err != nil {
		return err
	}
	if err := assertArgType(args, 1, QEXPR_OBJ, name); err != nil {
		return err
	}
	if err := assertArgType(args, 2, QEXPR_OBJ, name); err != nil {
		return err
	}

	branch := args.Elements[2].(*Qexpr)
	if args.Elements[0].(*Boolean).Value {
		branch = args.Elements[1].(*Qexpr)
	}
	return Eval(env, &Sexpr{Elements: branch.Elements})
}

func builtinEq(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 2, name); err != nil {
		return err
	}
	eq := ObjectsEqual(args.Elements[0], args.Elements[1])
	if name == config.NeqFuncName {
		eq = !eq
	}
	return &Boolean{Value: eq}
}

// builtinError turns a string into an Error value.
func builtinError(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	if err := assertArgCount(args, 1, name); err != nil {
		return err
	}
	if err := assertArgType(args, 0, STRING_OBJ, name); err != nil {
		return err
	}
	return newError("%s", args.Elements[0].(*String).Value)
}

// builtinPrint renders every argument in display mode, space separated, with
// a trailing newline.
func builtinPrint(env *Environment, name string, args *Sexpr) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	for i, el := range args.Elements {
		if i > 0 {
			fmt.Fprint(Out, " ")
		}
		fmt.Fprint(Out, Display(el))
	}
	fmt.Fprintln(Out)
	return &Sexpr{}
}
