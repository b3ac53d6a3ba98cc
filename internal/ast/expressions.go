package ast

import (
	"bytes"
	"strconv"
)

// IntegerLiteral is an int literal, e.g. 42.
type IntegerLiteral struct {
	exprBase
	Value int64
}

func (n *IntegerLiteral) String() string { return strconv.FormatInt(n.Value, 10) }

// BooleanLiteral is a bool literal, True or False.
type BooleanLiteral struct {
	exprBase
	Value bool
}

func (n *BooleanLiteral) String() string {
	if n.Value {
		return "True"
	}
	return "False"
}

// StringLiteral is a str literal.
type StringLiteral struct {
	exprBase
	Value string
}

func (n *StringLiteral) String() string { return "\"" + n.Value + "\"" }

// NoneLiteral is the None literal, inferred as <None>.
type NoneLiteral struct {
	exprBase
}

func (n *NoneLiteral) String() string { return "None" }

// Identifier is a name reference, resolved against the symbol
// environment by the judgement walker.
type Identifier struct {
	exprBase
	Name string
}

func (n *Identifier) String() string { return n.Name }

// ListExpr is a list display, e.g. [1, 2, 3] or [].
type ListExpr struct {
	exprBase
	Elements []Expression
}

func (n *ListExpr) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, e := range n.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.String())
	}
	out.WriteString("]")
	return out.String()
}

// IndexExpr is a subscript expression, e.g. xs[i].
type IndexExpr struct {
	exprBase
	List  Expression
	Index Expression
}

func (n *IndexExpr) String() string {
	return n.List.String() + "[" + n.Index.String() + "]"
}

// UnaryExpr is a prefix operator application: "-" or "not".
type UnaryExpr struct {
	exprBase
	Operator string
	Operand  Expression
}

func (n *UnaryExpr) String() string {
	if n.Operator == "not" {
		return "(not " + n.Operand.String() + ")"
	}
	return "(" + n.Operator + n.Operand.String() + ")"
}

// BinaryExpr is an infix operator application.
type BinaryExpr struct {
	exprBase
	Operator string
	Left     Expression
	Right    Expression
}

func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

// IfExpr is the conditional expression form: "t if c else e".
type IfExpr struct {
	exprBase
	Cond Expression
	Then Expression
	Else Expression
}

func (n *IfExpr) String() string {
	return "(" + n.Then.String() + " if " + n.Cond.String() + " else " + n.Else.String() + ")"
}

// CallExpr is a function call or, when Func names a class, a
// constructor invocation.
type CallExpr struct {
	exprBase
	Func Identifier
	Args []Expression
}

func (n *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(n.Func.Name)
	out.WriteString("(")
	for i, a := range n.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}

// MemberExpr is attribute access, e.g. obj.attr.
type MemberExpr struct {
	exprBase
	Object Expression
	Member Identifier
}

func (n *MemberExpr) String() string { return n.Object.String() + "." + n.Member.Name }

// MethodCallExpr is a method call, e.g. obj.m(args).
type MethodCallExpr struct {
	exprBase
	Object Expression
	Method Identifier
	Args   []Expression
}

func (n *MethodCallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(n.Object.String())
	out.WriteString(".")
	out.WriteString(n.Method.Name)
	out.WriteString("(")
	for i, a := range n.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}
