package evaluator

import "strings"

func inspectSeq(elems []Object, open, close byte) string {
	var sb strings.Builder
	sb.WriteByte(open)
	for i, el := range elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(el.Inspect())
	}
	sb.WriteByte(close)
	return sb.String()
}

// Display renders obj in display mode: identical to Inspect except that
// string contents print raw, without quotes or escapes, at any depth.
func Display(obj Object) string {
	switch o := obj.(type) {
	case *String:
		return o.Value
	case *Sexpr:
		return displaySeq(o.Elements, '(', ')')
	case *Qexpr:
		return displaySeq(o.Elements, '{', '}')
	case *Lambda:
		return "(\\ " + Display(o.Formals) + " " + Display(o.Body) + ")"
	default:
		return obj.Inspect()
	}
}

func displaySeq(elems []Object, open, close byte) string {
	var sb strings.Builder
	sb.WriteByte(open)
	for i, el := range elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Display(el))
	}
	sb.WriteByte(close)
	return sb.String()
}
