package evaluator

// Shared constructors for tests.

func num(n int64) *Integer    { return &Integer{Value: n} }
func flt(f float64) *Float    { return &Float{Value: f} }
func str(s string) *String    { return &String{Value: s} }
func sym(s string) *Symbol    { return &Symbol{Value: s} }
func sx(elems ...Object) *Sexpr { return &Sexpr{Elements: elems} }
func qx(elems ...Object) *Qexpr { return &Qexpr{Elements: elems} }

// testEnv returns a mutable scope under the read-only native root, the same
// shape Init builds.
func testEnv() *Environment {
	return NewEnclosedEnvironment(NewRootEnvironment())
}
