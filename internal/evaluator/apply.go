package evaluator

// applyFunction applies a function value to an evaluated argument sequence.
func applyFunction(env *Environment, fn Object, args *Sexpr) Object {
	switch fn := fn.(type) {
	case *Builtin:
		return fn.Fn(env, fn.Name, args)
	case *Lambda:
		return applyLambda(env, fn, args)
	}
	return newError("s-expression does not start with function, '%s'", TypeName(fn.Type()))
}

// applyLambda binds the supplied arguments to the leading formals inside the
// lambda's own scope. A '&' formal collects every remaining argument as a
// Qexpr. When formals remain unbound the partially-applied lambda is the
// result; when all are bound the body runs in the lambda scope grafted onto
// the calling environment, which is how named functions reach themselves and
// the globals without any self pre-binding.
func applyLambda(env *Environment, fn *Lambda, args *Sexpr) Object {
	supplied := len(args.Elements)
	total := len(fn.Formals.Elements)

	for len(args.Elements) > 0 {
		if len(fn.Formals.Elements) == 0 {
			return newError("function expects %d argument, received %d", total, supplied)
		}

		sym, ok := fn.Formals.Pop(0).(*Symbol)
		if !ok {
			return newError("function formal is not a %s", TypeName(SYMBOL_OBJ))
		}

		if sym.Value == "&" {
			rest, err := restFormal(fn.Formals)
			if err != nil {
				return err
			}
			fn.Env.DefineLocal(rest, &Qexpr{Elements: args.Elements})
			args.Elements = nil
			break
		}

		fn.Env.DefineLocal(sym.Value, args.Pop(0))
	}

	// A trailing '&' with no arguments left binds the empty list.
	if len(fn.Formals.Elements) > 0 {
		if sym, ok := fn.Formals.Elements[0].(*Symbol); ok && sym.Value == "&" {
			fn.Formals.Pop(0)
			rest, err := restFormal(fn.Formals)
			if err != nil {
				return err
			}
			fn.Env.DefineLocal(rest, &Qexpr{})
		}
	}

	if len(fn.Formals.Elements) > 0 {
		// Partially applied: the copy with its leading formals bound is
		// itself the result.
		return fn
	}

	fn.Env.SetOuter(env)
	body := CopyObject(fn.Body).(*Qexpr)
	return Eval(fn.Env, &Sexpr{Elements: body.Elements})
}

func restFormal(formals *Qexpr) (string, *Error) {
	if len(formals.Elements) != 1 {
		return "", newError("function format invalid - symbol '&' not followed by single symbol")
	}
	sym, ok := formals.Pop(0).(*Symbol)
	if !ok {
		return "", newError("function format invalid - symbol '&' not followed by single symbol")
	}
	return sym.Value, nil
}
