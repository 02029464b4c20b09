package evaluator

// CopyObject performs a deep copy: every owned child is duplicated,
// including a lambda's captured environment. The environment stores copies
// and lookup hands out copies, so bindings never alias live values.
func CopyObject(obj Object) Object {
	switch o := obj.(type) {
	case *Integer:
		return &Integer{Value: o.Value}
	case *Float:
		return &Float{Value: o.Value}
	case *Boolean:
		return &Boolean{Value: o.Value}
	case *String:
		return &String{Value: o.Value}
	case *Symbol:
		return &Symbol{Value: o.Value}
	case *Error:
		return &Error{Message: o.Message}
	case *Builtin:
		return &Builtin{Name: o.Name, Fn: o.Fn}
	case *Sexpr:
		rv := &Sexpr{Elements: make([]Object, 0, len(o.Elements))}
		for _, el := range o.Elements {
			rv.Add(CopyObject(el))
		}
		return rv
	case *Qexpr:
		rv := &Qexpr{Elements: make([]Object, 0, len(o.Elements))}
		for _, el := range o.Elements {
			rv.Add(CopyObject(el))
		}
		return rv
	case *Lambda:
		return &Lambda{
			Env:     o.Env.Copy(),
			Formals: CopyObject(o.Formals).(*Qexpr),
			Body:    CopyObject(o.Body).(*Qexpr),
		}
	default:
		return obj
	}
}
