// Package ast defines the Abstract Syntax Tree node contract for the
// ChocoPy-style checker: every node carries a source location and a
// mutable diagnostic slot, expression nodes additionally carry a mutable
// inferred type, and statement nodes carry a definite-return flag.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cwbudde/chocotype/internal/types"
)

// Location is a 1-based (line, column) source position.
type Location struct {
	Line int
	Col  int
}

func (l Location) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Col) }

// Diagnostic is one entry of the Program's errors collector: a location
// paired with a human-readable message. Message text is not part of the
// stable contract (§6); only the count and the anchoring node are. Kind
// is an additional, non-stable field (a semantic.SemanticErrorKind
// value, kept as a plain string so this package stays independent of
// internal/semantic) that downstream presentation and config
// hint-demotion may use.
type Diagnostic struct {
	Loc     Location
	Message string
	Kind    string
}

// Node is the base interface every AST node implements: a source
// location, a debug string, and the mutable errorMsg slot. The errorMsg
// slot gates to at most one message per node; SetError reports whether
// it actually recorded the message.
type Node interface {
	Pos() Location
	String() string
	ErrorMsg() string
	SetError(msg string) bool
	HasError() bool
}

// base is embedded in every concrete node and implements Node except
// String, which each node kind provides itself.
type base struct {
	Loc Location
	Msg string
}

func (b *base) Pos() Location    { return b.Loc }
func (b *base) ErrorMsg() string { return b.Msg }
func (b *base) HasError() bool   { return b.Msg != "" }

// SetError records msg as the node's diagnostic if none is set yet. It
// returns false, recording nothing, if the node already carries a
// message — the "at most one diagnostic per node" gate.
func (b *base) SetError(msg string) bool {
	if b.Msg != "" {
		return false
	}
	b.Msg = msg
	return true
}

// Expression is any node that produces a value and carries a mutable
// inferredType slot, populated by the judgement walker.
type Expression interface {
	Node
	expressionNode()
	InferredType() types.ValueType
	SetInferredType(t types.ValueType)
}

// exprBase embeds base and adds the inferredType slot shared by every
// expression node kind.
type exprBase struct {
	base
	inferred types.ValueType
}

func (e *exprBase) expressionNode() {}

func (e *exprBase) InferredType() types.ValueType { return e.inferred }

func (e *exprBase) SetInferredType(t types.ValueType) { e.inferred = t }

// Statement is any node that performs an action and carries the
// isReturn flag used by definite-return analysis.
type Statement interface {
	Node
	statementNode()
	IsReturn() bool
	SetIsReturn(v bool)
}

// stmtBase embeds base and adds the isReturn flag shared by every
// statement node kind.
type stmtBase struct {
	base
	returns bool
}

func (s *stmtBase) statementNode() {}

func (s *stmtBase) IsReturn() bool { return s.returns }

func (s *stmtBase) SetIsReturn(v bool) { s.returns = v }

// Declaration is a top-level or nested binding form: VarDef, FuncDef,
// ClassDef, GlobalDecl, or NonLocalDecl. Declarations do not produce a
// value and are not subject to definite-return analysis, so they embed
// base directly rather than exprBase/stmtBase.
type Declaration interface {
	Node
	declarationNode()
}

type declBase struct {
	base
}

func (d *declBase) declarationNode() {}

// Program is the root of the tree: an ordered sequence of top-level
// declarations, an ordered sequence of top-level statements, and the
// errors collector the parser collaborator seeds and the checker
// appends to.
type Program struct {
	Declarations []Declaration
	Statements   []Statement
	Errors       []Diagnostic
}

// AddError appends a diagnostic to the program's errors collector. The
// message is formatted with the stable ". Line L Col C" suffix.
func (p *Program) AddError(loc Location, message string) {
	p.AddKindedError(loc, "", message)
}

// AddKindedError is AddError plus the non-stable Kind field.
func (p *Program) AddKindedError(loc Location, kind, message string) {
	p.Errors = append(p.Errors, Diagnostic{
		Loc:     loc,
		Kind:    kind,
		Message: fmt.Sprintf("%s. Line %d Col %d", message, loc.Line, loc.Col),
	})
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Declarations {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() Location {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return Location{Line: 1, Col: 1}
}

// indentBlock re-indents a multi-line debug string by two spaces per
// level, matching the teacher's block-statement String() convention.
func indentBlock(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
