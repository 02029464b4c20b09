package evaluator

import "math"

// opCode indexes the kernel table, giving constant-time operator dispatch.
type opCode int

const (
	opAdd opCode = iota
	opSub
	opMul
	opDiv
	opPow
	opMax
	opMin
	opMod
	opGT
	opLT
	opGTE
	opLTE
)

// kernel holds the two implementations of one operator: intFn runs when both
// operands are Integers, floatFn otherwise. Comparison operators carry no
// intFn and always compare as floats.
type kernel struct {
	intFn   func(x, y int64) Object
	floatFn func(x, y float64) Object
}

var kernels = [...]kernel{
	opAdd: {intFn: addI, floatFn: addF},
	opSub: {intFn: subI, floatFn: subF},
	opMul: {intFn: mulI, floatFn: mulF},
	opDiv: {intFn: divI, floatFn: divF},
	opPow: {intFn: powI, floatFn: powF},
	opMax: {intFn: maxI, floatFn: maxF},
	opMin: {intFn: minI, floatFn: minF},
	opMod: {intFn: modI, floatFn: modF},
	opGT:  {floatFn: gtF},
	opLT:  {floatFn: ltF},
	opGTE: {floatFn: gteF},
	opLTE: {floatFn: lteF},
}

func addI(x, y int64) Object { return &Integer{Value: x + y} }
func subI(x, y int64) Object { return &Integer{Value: x - y} }
func mulI(x, y int64) Object { return &Integer{Value: x * y} }
func maxI(x, y int64) Object {
	if x > y {
		return &Integer{Value: x}
	}
	return &Integer{Value: y}
}
func minI(x, y int64) Object {
	if x < y {
		return &Integer{Value: x}
	}
	return &Integer{Value: y}
}
func powI(x, y int64) Object { return &Integer{Value: intPow(x, y)} }

// Integer division still yields a Decimal so evenly divisible operands are
// not silently truncated.
func divI(x, y int64) Object {
	if y == 0 {
		return newError("divide by zero")
	}
	return &Float{Value: float64(x) / float64(y)}
}

func modI(x, y int64) Object {
	if y == 0 {
		return newError("divide by zero")
	}
	return &Integer{Value: x % y}
}

func addF(x, y float64) Object { return &Float{Value: x + y} }
func subF(x, y float64) Object { return &Float{Value: x - y} }
func mulF(x, y float64) Object { return &Float{Value: x * y} }
func powF(x, y float64) Object { return &Float{Value: math.Pow(x, y)} }
func maxF(x, y float64) Object { return &Float{Value: math.Max(x, y)} }
func minF(x, y float64) Object { return &Float{Value: math.Min(x, y)} }

func divF(x, y float64) Object {
	if y == 0.0 {
		return newError("divide by zero")
	}
	return &Float{Value: x / y}
}

func modF(x, y float64) Object {
	if y == 0.0 {
		return newError("divide by zero")
	}
	return &Float{Value: math.Mod(x, y)}
}

func gtF(x, y float64) Object  { return &Boolean{Value: x > y} }
func ltF(x, y float64) Object  { return &Boolean{Value: x < y} }
func gteF(x, y float64) Object { return &Boolean{Value: x >= y} }
func lteF(x, y float64) Object { return &Boolean{Value: x <= y} }

func intPow(n, m int64) int64 {
	if m < 0 {
		return 0
	}
	var result int64 = 1
	for i := int64(0); i < m; i++ {
		result *= n
	}
	return result
}

// doCalc performs one binary operation, promoting an Integer operand to
// float whenever the other operand is a Float or the operator has no integer
// kernel.
func doCalc(op opCode, x, y Object) Object {
	k := kernels[op]
	xi, xok := x.(*Integer)
	yi, yok := y.(*Integer)
	if k.intFn != nil && xok && yok {
		return k.intFn(xi.Value, yi.Value)
	}
	return k.floatFn(toFloat(x), toFloat(y))
}

func toFloat(obj Object) float64 {
	if i, ok := obj.(*Integer); ok {
		return float64(i.Value)
	}
	return obj.(*Float).Value
}

// builtinOp validates the whole operand list up front, special-cases
// single-operand subtraction as negation, then folds the kernel left to
// right.
func builtinOp(env *Environment, name string, args *Sexpr, op opCode) Object {
	if err := assertEnv(env, name); err != nil {
		return err
	}
	for _, el := range args.Elements {
		if !IsNumeric(el) {
			return newError("function '%s' type mismatch - expected numeric, received %s",
				name, TypeName(el.Type()))
		}
	}
	if len(args.Elements) == 0 {
		return newError("function '%s' expects 1 argument, received 0", name)
	}

	x := args.Pop(0)

	if len(args.Elements) == 0 && op == opSub {
		switch n := x.(type) {
		case *Integer:
			n.Value = -n.Value
		case *Float:
			n.Value = -n.Value
		}
	}

	for len(args.Elements) > 0 {
		y := args.Pop(0)
		x = doCalc(op, x, y)
		if x.Type() == ERROR_OBJ {
			return x
		}
	}

	return x
}

// builtinOps lists the operator builtins registered into the root scope.
var builtinOps = []struct {
	name string
	op   opCode
}{
	{"+", opAdd},
	{"-", opSub},
	{"*", opMul},
	{"/", opDiv},
	{"^", opPow},
	{"max", opMax},
	{"min", opMin},
	{"%", opMod},
	{">", opGT},
	{"<", opLT},
	{">=", opGTE},
	{"<=", opLTE},
}
