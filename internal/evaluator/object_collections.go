package evaluator

// Sexpr is an evaluable ordered sequence. Evaluation reduces each element,
// then applies the first as a function to the rest.
type Sexpr struct {
	Elements []Object
}

func (s *Sexpr) Type() ObjectType { return SEXPR_OBJ }
func (s *Sexpr) Inspect() string  { return inspectSeq(s.Elements, '(', ')') }

// Add appends an element and returns the sequence.
func (s *Sexpr) Add(obj Object) *Sexpr {
	s.Elements = append(s.Elements, obj)
	return s
}

// Pop removes and returns the element at i.
func (s *Sexpr) Pop(i int) Object {
	obj := s.Elements[i]
	s.Elements = append(s.Elements[:i], s.Elements[i+1:]...)
	return obj
}

// Qexpr is a quoted ordered sequence. It evaluates to itself; only the eval
// builtin retags it to an Sexpr to force evaluation.
type Qexpr struct {
	Elements []Object
}

func (q *Qexpr) Type() ObjectType { return QEXPR_OBJ }
func (q *Qexpr) Inspect() string  { return inspectSeq(q.Elements, '{', '}') }

// Add appends an element and returns the sequence.
func (q *Qexpr) Add(obj Object) *Qexpr {
	q.Elements = append(q.Elements, obj)
	return q
}

// Pop removes and returns the element at i.
func (q *Qexpr) Pop(i int) Object {
	obj := q.Elements[i]
	q.Elements = append(q.Elements[:i], q.Elements[i+1:]...)
	return obj
}
