package evaluator

// Eval reduces a value to normal form. Symbols resolve through the
// environment in one step; s-expressions reduce via evalSexpr; every other
// kind, q-expressions included, is already normal form and returns unchanged.
func Eval(env *Environment, v Object) Object {
	switch val := v.(type) {
	case *Symbol:
		return env.Lookup(val.Value)
	case *Sexpr:
		return evalSexpr(env, val)
	default:
		return v
	}
}

func evalSexpr(env *Environment, s *Sexpr) Object {
	// Evaluate children left to right, in place.
	for i, el := range s.Elements {
		s.Elements[i] = Eval(env, el)
	}

	// The first Error becomes the whole expression's result.
	for _, el := range s.Elements {
		if el.Type() == ERROR_OBJ {
			return el
		}
	}

	// An empty s-expression is the success/void sentinel.
	if len(s.Elements) == 0 {
		return s
	}

	// A single element reduces to itself.
	if len(s.Elements) == 1 {
		return s.Elements[0]
	}

	first := s.Pop(0)
	if !IsFunction(first) {
		return newError("s-expression does not start with function, '%s'", TypeName(first.Type()))
	}

	// The remaining elements travel as one aggregate argument sequence,
	// together with the calling environment so impure builtins can reach the
	// caller's scope.
	return applyFunction(env, first, s)
}
