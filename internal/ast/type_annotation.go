package ast

// TypeAnnotation is the syntactic type written by the user in a variable,
// parameter, or return-type position — as opposed to Expression's
// InferredType, which is the value type the judgement walker computes.
// The declaration pass resolves a TypeAnnotation into a types.ValueType
// against the class registry.
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
}

// ClassTypeAnnotation names a class by identifier, e.g. "int" or a
// user-declared class name.
type ClassTypeAnnotation struct {
	base
	Name string
}

func (c *ClassTypeAnnotation) typeAnnotationNode() {}
func (c *ClassTypeAnnotation) String() string      { return c.Name }

// ListTypeAnnotation names a parametric list type, e.g. "[int]".
type ListTypeAnnotation struct {
	base
	Element TypeAnnotation
}

func (l *ListTypeAnnotation) typeAnnotationNode() {}
func (l *ListTypeAnnotation) String() string      { return "[" + l.Element.String() + "]" }
