package evaluator

// BuiltinFunc is the native implementation behind a Builtin. It receives the
// calling environment (impure builtins like def mutate it), the name the
// builtin was registered under (for diagnostics) and the evaluated argument
// sequence.
type BuiltinFunc func(env *Environment, name string, args *Sexpr) Object

// Builtin is a native primitive registered by name into the root scope.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "<builtin>" }

// Lambda is a user function: formal parameters, a body and the captured
// environment that becomes its closure scope.
type Lambda struct {
	Env     *Environment
	Formals *Qexpr
	Body    *Qexpr
}

func (l *Lambda) Type() ObjectType { return LAMBDA_OBJ }
func (l *Lambda) Inspect() string {
	return "(\\ " + l.Formals.Inspect() + " " + l.Body.Inspect() + ")"
}

// NewLambda builds a user function around a fresh, initially empty
// environment.
func NewLambda(formals, body *Qexpr) *Lambda {
	return &Lambda{Env: NewEnvironment(), Formals: formals, Body: body}
}
