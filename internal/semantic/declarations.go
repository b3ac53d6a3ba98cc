package semantic

import (
	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/types"
)

// declarePhaseA dispatches a single declaration to its Phase A
// registration rule (§4.3 Phase A).
func (c *Checker) declarePhaseA(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.VarDef:
		c.registerVarDef(n)
	case *ast.FuncDef:
		c.registerFuncDef(n)
	case *ast.ClassDef:
		c.registerClassDef(n)
	case *ast.GlobalDecl:
		c.registerGlobalDecl(n)
	case *ast.NonLocalDecl:
		c.registerNonLocalDecl(n)
	}
}

// visitPhaseB dispatches a single declaration to its Phase B body
// visit, skipping declarations whose identifier already carries an
// error (§4.3 Phase B: "a declaration whose identifier already has an
// errorMsg is skipped").
func (c *Checker) visitPhaseB(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.VarDef:
		if n.Name.HasError() {
			return
		}
		c.visitVarDef(n)
	case *ast.FuncDef:
		if n.Name.HasError() {
			return
		}
		c.visitFuncDef(n)
	case *ast.ClassDef:
		if n.Name.HasError() {
			return
		}
		c.visitClassDef(n)
	}
	// GlobalDecl/NonLocalDecl have no body to visit.
}

// isDuplicateName reports whether name is already bound in the current
// scope or names a registered class — either clash is a duplicate
// declaration per §4.3 Phase A.
func (c *Checker) isDuplicateName(name string) bool {
	return c.env.DefinedInCurrent(name) || c.registry.ClassExists(name)
}

func (c *Checker) registerVarDef(n *ast.VarDef) {
	if c.isDuplicateName(n.Name.Name) {
		c.report(&n.Name, errDuplicateDeclaration(n.Name.Pos(), n.Name.Name))
		return
	}
	c.env.AddType(n.Name.Name, c.resolveAnnotation(n.Type))
}

func (c *Checker) visitVarDef(n *ast.VarDef) {
	c.checkExpr(n.Value)
	annot := c.resolveAnnotation(n.Type)
	if !c.registry.CanAssign(n.Value.InferredType(), annot) {
		c.report(n, errAnnotationMismatch(n.Pos(), annot, n.Value.InferredType()))
	}
}

func (c *Checker) registerFuncDef(n *ast.FuncDef) {
	if c.isDuplicateName(n.Name.Name) {
		c.report(&n.Name, errDuplicateDeclaration(n.Name.Pos(), n.Name.Name))
		return
	}
	c.env.AddType(n.Name.Name, c.synthesizeFuncType(n))
}

// visitFuncDef enters a new scope, binds every parameter, runs the
// declaration pass recursively over the function's own local
// declarations and statements, performs definite-return analysis, and
// exits the scope (§4.3, §4.4 "Function bodies").
func (c *Checker) visitFuncDef(n *ast.FuncDef) {
	ft, ok := c.lookupFuncType(n.Name.Name)
	if !ok {
		return
	}

	c.env.EnterScope()
	defer c.env.ExitScope()

	for i, p := range n.Params {
		if i < len(ft.Params) {
			c.env.AddType(p.Name, ft.Params[i])
		} else {
			c.env.AddType(p.Name, c.resolveAnnotation(p.Type))
		}
	}

	prevReturn, prevHave := c.currentReturn, c.haveReturn
	c.currentReturn, c.haveReturn = ft.Return, true

	c.runScope(n.Declarations, n.Statements)

	definite := false
	for _, s := range n.Statements {
		if s.IsReturn() {
			definite = true
			break
		}
	}
	if !definite && !c.registry.CanAssign(types.None, ft.Return) {
		c.report(n, errExpectedReturn(n.Pos(), ft.Return))
	}

	c.currentReturn, c.haveReturn = prevReturn, prevHave
}

// lookupFuncType resolves name's FuncType from the current scope (a
// plain function) or, failing that, from the current class (a method),
// since method FuncTypes live in the registry rather than the scope
// stack.
func (c *Checker) lookupFuncType(name string) (*types.FuncType, bool) {
	if t, ok := c.env.LookupCurrent(name); ok {
		if ft, ok := t.(*types.FuncType); ok {
			return ft, true
		}
	}
	if c.currentClass != "" {
		return c.registry.GetMethod(c.currentClass, name)
	}
	return nil, false
}

func (c *Checker) registerGlobalDecl(n *ast.GlobalDecl) {
	t, ok := c.env.LookupGlobal(n.Name.Name)
	vt, isValue := t.(types.ValueType)
	if !ok || !isValue {
		c.report(&n.Name, errUnknownGlobal(n.Name.Pos(), n.Name.Name))
		return
	}
	c.env.AddType(n.Name.Name, vt)
}

func (c *Checker) registerNonLocalDecl(n *ast.NonLocalDecl) {
	t, ok := c.env.LookupNonlocal(n.Name.Name)
	vt, isValue := t.(types.ValueType)
	if !ok || !isValue {
		c.report(&n.Name, errUnknownNonlocal(n.Name.Pos(), n.Name.Name))
		return
	}
	c.env.AddType(n.Name.Name, vt)
}
