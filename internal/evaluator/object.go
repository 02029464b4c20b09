package evaluator

type ObjectType string

const (
	INTEGER_OBJ = "INTEGER"
	FLOAT_OBJ   = "FLOAT"
	BOOLEAN_OBJ = "BOOLEAN"
	STRING_OBJ  = "STRING"
	SYMBOL_OBJ  = "SYMBOL"
	ERROR_OBJ   = "ERROR"
	SEXPR_OBJ   = "SEXPR"
	QEXPR_OBJ   = "QEXPR"
	BUILTIN_OBJ = "BUILTIN"
	LAMBDA_OBJ  = "LAMBDA"
)

// Object is the runtime value. Every value the reader produces and the
// evaluator returns implements it; Inspect renders the literal surface form.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// TypeName returns the user-facing name of a kind, as it appears in
// type-mismatch diagnostics.
func TypeName(t ObjectType) string {
	switch t {
	case INTEGER_OBJ:
		return "Number"
	case FLOAT_OBJ:
		return "Decimal"
	case BOOLEAN_OBJ:
		return "Boolean"
	case STRING_OBJ:
		return "String"
	case SYMBOL_OBJ:
		return "Symbol"
	case ERROR_OBJ:
		return "Error"
	case SEXPR_OBJ:
		return "S-Expression"
	case QEXPR_OBJ:
		return "Q-Expression"
	case BUILTIN_OBJ, LAMBDA_OBJ:
		return "Function"
	default:
		return "Unknown"
	}
}

// IsFunction reports whether obj can sit in the operator position of an
// s-expression.
func IsFunction(obj Object) bool {
	t := obj.Type()
	return t == BUILTIN_OBJ || t == LAMBDA_OBJ
}

// IsNumeric reports whether obj is an operand the arithmetic engine accepts.
func IsNumeric(obj Object) bool {
	t := obj.Type()
	return t == INTEGER_OBJ || t == FLOAT_OBJ
}
