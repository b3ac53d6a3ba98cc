// Package semantic implements the ChocoPy-style judgement system: the
// symbol environment (Environment), the structured diagnostic taxonomy
// (SemanticError), and the Checker that runs the declaration pass and
// judgement walker described by the type lattice in internal/types.
package semantic

import (
	"fmt"

	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/types"
)

// Checker owns the single pass over a Program: the scope stack, the
// class registry, and the small amount of context (current class,
// current function's declared return type) the judgement rules need.
// There is no process-wide state; every field lives on the Checker
// value, which a host constructs fresh per Program.
type Checker struct {
	program  *ast.Program
	env      *Environment
	registry *types.Registry

	// currentClass is the enclosing class's name while checking a
	// method body or a class-body VarDef initializer; "" otherwise.
	currentClass string
	// currentReturn is the declared return type of the innermost
	// enclosing function; nil outside any function.
	currentReturn types.ValueType
	haveReturn    bool
}

// NewChecker creates a Checker with a fresh class registry and
// environment, seeded with the built-in hierarchy and globals (§6).
func NewChecker() *Checker {
	registry := types.NewRegistry()
	return &Checker{registry: registry, env: NewEnvironment(registry)}
}

// Registry exposes the checker's class registry, e.g. for a host that
// wants to extend it with config-provided extra builtins before Check.
func (c *Checker) Registry() *types.Registry { return c.registry }

// Environment exposes the checker's scope stack for the same reason.
func (c *Checker) Environment() *Environment { return c.env }

// Check runs the declaration pass and judgement walker over program,
// mutating it in place: every expression's inferredType is populated,
// zero or more errorMsg fields are set, and program.Errors accumulates
// the diagnostics in the order they were raised.
func (c *Checker) Check(program *ast.Program) {
	c.program = program
	c.runScope(program.Declarations, program.Statements)
}

// runScope is the declaration pass of §4.3, generalized so the same
// two-phase algorithm runs once for the program and recursively for
// every function body's local declarations. Phase A registers every
// declared name (and, for ClassDef, its registry entry) before Phase B
// visits each declaration's body and the trailing statements.
func (c *Checker) runScope(decls []ast.Declaration, stmts []ast.Statement) {
	for _, d := range decls {
		c.declarePhaseA(d)
	}
	for _, d := range decls {
		c.visitPhaseB(d)
	}
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

// report records e on node, subject to the at-most-one-diagnostic gate,
// and appends it to the program's errors collector. No-op if node
// already carries a message.
func (c *Checker) report(node ast.Node, e *SemanticError) {
	if node.HasError() {
		return
	}
	c.program.AddKindedError(e.Loc, string(e.Kind), e.Message)
	node.SetError(c.program.Errors[len(c.program.Errors)-1].Message)
}

// resolveAnnotation converts a written TypeAnnotation into the
// ValueType it denotes. An annotation naming an unregistered class
// resolves to object, the checker's best-effort fallback (§7).
func (c *Checker) resolveAnnotation(ta ast.TypeAnnotation) types.ValueType {
	switch t := ta.(type) {
	case *ast.ClassTypeAnnotation:
		if !c.registry.ClassExists(t.Name) {
			c.report(t, newError(KindUnknownSuperclass, t.Pos(), fmt.Sprintf("Unknown class: %s", t.Name)))
			return types.Object
		}
		return types.ClassValueType{Name: t.Name}
	case *ast.ListTypeAnnotation:
		return types.ListValueType{Element: c.resolveAnnotation(t.Element)}
	default:
		return types.Object
	}
}

// synthesizeFuncType builds the FuncType a FuncDef (function or method)
// declares, resolving every parameter and the return annotation. A nil
// ReturnType (bare "def f(...):") denotes None.
func (c *Checker) synthesizeFuncType(n *ast.FuncDef) *types.FuncType {
	params := make([]types.ValueType, len(n.Params))
	for i, p := range n.Params {
		params[i] = c.resolveAnnotation(p.Type)
	}
	ret := types.ValueType(types.None)
	if n.ReturnType != nil {
		ret = c.resolveAnnotation(n.ReturnType)
	}
	return &types.FuncType{Params: params, Return: ret}
}
