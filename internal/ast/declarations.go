package ast

import "bytes"

// Param is a single function or method parameter: a name plus its
// declared type annotation. For a method, Params[0] is conventionally
// named "self" and its annotation names the enclosing class.
type Param struct {
	base
	Name string
	Type TypeAnnotation
}

func (p *Param) String() string { return p.Name + ": " + p.Type.String() }

// VarDef declares a variable (at program scope, function scope, or as a
// class attribute) with a required type annotation and initial value.
type VarDef struct {
	declBase
	Name  Identifier
	Type  TypeAnnotation
	Value Expression
}

func (n *VarDef) String() string {
	return n.Name.Name + ": " + n.Type.String() + " = " + n.Value.String()
}

// FuncDef declares a function or, when nested inside a ClassDef, a
// method. ReturnType is nil for a function declared to return None.
type FuncDef struct {
	declBase
	Name         Identifier
	Params       []Param
	ReturnType   TypeAnnotation
	Declarations []Declaration
	Statements   []Statement
}

func (n *FuncDef) String() string {
	var out bytes.Buffer
	out.WriteString("def ")
	out.WriteString(n.Name.Name)
	out.WriteString("(")
	for i, p := range n.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(")")
	if n.ReturnType != nil {
		out.WriteString(" -> ")
		out.WriteString(n.ReturnType.String())
	}
	out.WriteString(":\n")
	for _, d := range n.Declarations {
		out.WriteString(indentBlock(d.String()))
		out.WriteString("\n")
	}
	for _, s := range n.Statements {
		out.WriteString(indentBlock(s.String()))
		out.WriteString("\n")
	}
	return out.String()
}

// ClassDef declares a class, its single superclass, and its member
// declarations (attributes as VarDef, methods as FuncDef).
type ClassDef struct {
	declBase
	Name         Identifier
	SuperClass   Identifier
	Declarations []Declaration
}

func (n *ClassDef) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(n.Name.Name)
	out.WriteString("(")
	out.WriteString(n.SuperClass.Name)
	out.WriteString("):\n")
	for _, d := range n.Declarations {
		out.WriteString(indentBlock(d.String()))
		out.WriteString("\n")
	}
	return out.String()
}

// GlobalDecl declares that, within the enclosing function, Name refers
// to the global-scope binding rather than a fresh local one.
type GlobalDecl struct {
	declBase
	Name Identifier
}

func (n *GlobalDecl) String() string { return "global " + n.Name.Name }

// NonLocalDecl declares that, within the enclosing function, Name refers
// to a binding in an enclosing (but non-global) function scope.
type NonLocalDecl struct {
	declBase
	Name Identifier
}

func (n *NonLocalDecl) String() string { return "nonlocal " + n.Name.Name }
