package evaluator

// ObjectsEqual performs a deep equality check between two lilith values.
// An Integer equals a Float of the same magnitude; sequences compare by
// kind, length and elements in order; lambdas compare formals and body but
// never their closure environments; builtins compare by registered name.
func ObjectsEqual(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Type() != b.Type() {
		if x, ok := a.(*Integer); ok {
			if y, ok := b.(*Float); ok {
				return float64(x.Value) == y.Value
			}
		}
		if x, ok := a.(*Float); ok {
			if y, ok := b.(*Integer); ok {
				return x.Value == float64(y.Value)
			}
		}
		return false
	}

	switch aVal := a.(type) {
	case *Integer:
		return aVal.Value == b.(*Integer).Value
	case *Float:
		return aVal.Value == b.(*Float).Value
	case *Boolean:
		return aVal.Value == b.(*Boolean).Value
	case *String:
		return aVal.Value == b.(*String).Value
	case *Symbol:
		return aVal.Value == b.(*Symbol).Value
	case *Error:
		return aVal.Message == b.(*Error).Message
	case *Builtin:
		return aVal.Name == b.(*Builtin).Name
	case *Lambda:
		bVal := b.(*Lambda)
		return ObjectsEqual(aVal.Formals, bVal.Formals) && ObjectsEqual(aVal.Body, bVal.Body)
	case *Sexpr:
		return elementsEqual(aVal.Elements, b.(*Sexpr).Elements)
	case *Qexpr:
		return elementsEqual(aVal.Elements, b.(*Qexpr).Elements)
	}

	return false
}

func elementsEqual(a, b []Object) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ObjectsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
