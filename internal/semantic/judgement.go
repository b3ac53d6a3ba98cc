package semantic

import (
	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/types"
)

// checkExpr is the exhaustive per-node-kind dispatch of §4.4: every
// expression kind infers its type, records it on the node, and
// returns it so callers can use the value without a redundant
// InferredType() read.
func (c *Checker) checkExpr(e ast.Expression) types.ValueType {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return c.infer(n, types.Int)
	case *ast.BooleanLiteral:
		return c.infer(n, types.Bool)
	case *ast.StringLiteral:
		return c.infer(n, types.Str)
	case *ast.NoneLiteral:
		return c.infer(n, types.None)
	case *ast.Identifier:
		return c.checkIdentifier(n)
	case *ast.ListExpr:
		return c.checkListExpr(n)
	case *ast.IndexExpr:
		return c.checkIndexExpr(n)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(n)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(n)
	case *ast.IfExpr:
		return c.checkIfExpr(n)
	case *ast.CallExpr:
		return c.checkCallExpr(n)
	case *ast.MemberExpr:
		return c.checkMemberExpr(n)
	case *ast.MethodCallExpr:
		return c.checkMethodCallExpr(n)
	default:
		return c.infer(e, types.Object)
	}
}

func (c *Checker) infer(e ast.Expression, t types.ValueType) types.ValueType {
	e.SetInferredType(t)
	return t
}

// checkIdentifier resolves a bare name reference: lookupGlobal at file
// or class scope (no enclosing function), lookupAny inside a function.
func (c *Checker) checkIdentifier(n *ast.Identifier) types.ValueType {
	var t types.SymbolType
	var ok bool
	if c.env.InFunction() {
		t, ok = c.env.LookupAny(n.Name)
	} else {
		t, ok = c.env.LookupGlobal(n.Name)
	}
	vt, isValue := t.(types.ValueType)
	if !ok || !isValue {
		c.report(n, errUnknownIdentifier(n.Pos(), n.Name))
		return c.infer(n, types.Object)
	}
	return c.infer(n, vt)
}

func (c *Checker) checkListExpr(n *ast.ListExpr) types.ValueType {
	if len(n.Elements) == 0 {
		return c.infer(n, types.Empty)
	}
	var joined types.ValueType
	for i, e := range n.Elements {
		et := c.checkExpr(e)
		if i == 0 {
			joined = et
			continue
		}
		joined = c.registry.Join(joined, et)
	}
	return c.infer(n, types.ListValueType{Element: joined})
}

func (c *Checker) checkIndexExpr(n *ast.IndexExpr) types.ValueType {
	lt := c.checkExpr(n.List)
	it := c.checkExpr(n.Index)
	if !it.Equals(types.Int) {
		c.report(n.Index, errExpectedIntIndex(n.Index.Pos()))
	}
	if lt.Equals(types.Str) {
		return c.infer(n, types.Str)
	}
	if lv, ok := lt.(types.ListValueType); ok {
		return c.infer(n, lv.Element)
	}
	c.report(n, errCannotIndexInto(n.Pos(), lt))
	return c.infer(n, types.Object)
}

func (c *Checker) checkUnaryExpr(n *ast.UnaryExpr) types.ValueType {
	ot := c.checkExpr(n.Operand)
	switch n.Operator {
	case "-":
		if !ot.Equals(types.Int) {
			c.report(n, errUnaryOperatorMismatch(n.Pos(), n.Operator, ot))
			return c.infer(n, types.Object)
		}
		return c.infer(n, types.Int)
	case "not":
		if !ot.Equals(types.Bool) {
			c.report(n, errUnaryOperatorMismatch(n.Pos(), n.Operator, ot))
			return c.infer(n, types.Object)
		}
		return c.infer(n, types.Bool)
	default:
		return c.infer(n, types.Object)
	}
}

// checkBinaryExpr implements the BinaryExpr rule table of §4.4.
func (c *Checker) checkBinaryExpr(n *ast.BinaryExpr) types.ValueType {
	l := c.checkExpr(n.Left)
	r := c.checkExpr(n.Right)

	switch n.Operator {
	case "+":
		ll, lIsList := l.(types.ListValueType)
		rl, rIsList := r.(types.ListValueType)
		if lIsList && rIsList {
			return c.infer(n, types.ListValueType{Element: c.registry.Join(ll.Element, rl.Element)})
		}
		if l.Equals(r) && (l.Equals(types.Int) || l.Equals(types.Str)) {
			return c.infer(n, l)
		}
	case "-", "*", "//", "%":
		if l.Equals(types.Int) && r.Equals(types.Int) {
			return c.infer(n, types.Int)
		}
	case "<", "<=", ">", ">=":
		if l.Equals(types.Int) && r.Equals(types.Int) {
			return c.infer(n, types.Bool)
		}
	case "==", "!=":
		if l.Equals(r) && types.IsPrimitive(l) {
			return c.infer(n, types.Bool)
		}
	case "is":
		if !types.IsPrimitive(l) && !types.IsPrimitive(r) {
			return c.infer(n, types.Bool)
		}
	case "and", "or":
		if l.Equals(types.Bool) && r.Equals(types.Bool) {
			return c.infer(n, types.Bool)
		}
	}
	c.report(n, errOperatorMismatch(n.Pos(), n.Operator, l, r))
	return c.infer(n, types.Object)
}

func (c *Checker) checkIfExpr(n *ast.IfExpr) types.ValueType {
	ct := c.checkExpr(n.Cond)
	if !ct.Equals(types.Bool) {
		c.report(n.Cond, errNonBoolCondition(n.Cond.Pos()))
	}
	tt := c.checkExpr(n.Then)
	et := c.checkExpr(n.Else)
	return c.infer(n, c.registry.Join(tt, et))
}

// checkCallExpr branches on whether Func names a class (constructor
// invocation via __init__) or a plain function binding.
func (c *Checker) checkCallExpr(n *ast.CallExpr) types.ValueType {
	argTypes := make([]types.ValueType, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = c.checkExpr(a)
	}

	if c.registry.ClassExists(n.Func.Name) {
		return c.checkConstructorCall(n, argTypes)
	}

	lookup := c.env.LookupGlobal
	if c.env.InFunction() {
		lookup = c.env.LookupAny
	}
	t, found := lookup(n.Func.Name)
	ft, isFunc := t.(*types.FuncType)
	if !found || !isFunc {
		c.report(&n.Func, errUnknownIdentifier(n.Func.Pos(), n.Func.Name))
		return c.infer(n, types.Object)
	}

	if len(ft.Params) != len(argTypes) {
		c.report(n, errArgumentCountMismatch(n.Pos(), n.Func.Name, len(ft.Params), len(argTypes)))
		return c.infer(n, types.Object)
	}
	for i, at := range argTypes {
		if !c.registry.CanAssign(at, ft.Params[i]) {
			c.report(n, errArgumentTypeMismatch(n.Pos(), i, ft.Params[i], at))
		}
	}
	return c.infer(n, ft.Return)
}

func (c *Checker) checkConstructorCall(n *ast.CallExpr, argTypes []types.ValueType) types.ValueType {
	result := types.ClassValueType{Name: n.Func.Name}

	ctor, ok := c.registry.GetMethod(n.Func.Name, "__init__")
	if !ok {
		c.report(n, errAttributeOrMethodMissing(n.Pos(), "__init__", n.Func.Name))
		return c.infer(n, result)
	}

	// A user-declared __init__ carries the receiver at Params[0]; the
	// built-in __init__ (types.NewInitType) has no parameters at all.
	offset := 1
	if len(ctor.Params) == 0 {
		offset = 0
	}
	expected := len(ctor.Params) - offset
	if expected != len(argTypes) {
		c.report(n, errArgumentCountMismatch(n.Pos(), n.Func.Name, expected, len(argTypes)))
		return c.infer(n, result)
	}
	for i, at := range argTypes {
		if !c.registry.CanAssign(at, ctor.Params[i+offset]) {
			c.report(n, errArgumentTypeMismatch(n.Pos(), i, ctor.Params[i+offset], at))
		}
	}
	return c.infer(n, result)
}

func (c *Checker) checkMemberExpr(n *ast.MemberExpr) types.ValueType {
	ot := c.checkExpr(n.Object)
	oc, ok := ot.(types.ClassValueType)
	if !ok || types.IsPrimitive(ot) {
		c.report(n, errAttributeOrMethodMissing(n.Pos(), n.Member.Name, ot.String()))
		return c.infer(n, types.Object)
	}
	at, ok := c.registry.GetAttr(oc.Name, n.Member.Name)
	if !ok {
		c.report(n, errAttributeOrMethodMissing(n.Pos(), n.Member.Name, oc.Name))
		return c.infer(n, types.Object)
	}
	return c.infer(n, at)
}

func (c *Checker) checkMethodCallExpr(n *ast.MethodCallExpr) types.ValueType {
	ot := c.checkExpr(n.Object)
	argTypes := make([]types.ValueType, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = c.checkExpr(a)
	}

	oc, ok := ot.(types.ClassValueType)
	if !ok || types.IsPrimitive(ot) {
		c.report(n, errAttributeOrMethodMissing(n.Pos(), n.Method.Name, ot.String()))
		return c.infer(n, types.Object)
	}
	mt, ok := c.registry.GetMethod(oc.Name, n.Method.Name)
	if !ok {
		c.report(n, errAttributeOrMethodMissing(n.Pos(), n.Method.Name, oc.Name))
		return c.infer(n, types.Object)
	}

	expected := len(mt.Params) - 1
	if expected != len(argTypes) {
		c.report(n, errArgumentCountMismatch(n.Pos(), n.Method.Name, expected, len(argTypes)))
		return c.infer(n, mt.Return)
	}
	for i, at := range argTypes {
		if !c.registry.CanAssign(at, mt.Params[i+1]) {
			c.report(n, errArgumentTypeMismatch(n.Pos(), i, mt.Params[i+1], at))
		}
	}
	return c.infer(n, mt.Return)
}

// checkStmt is the exhaustive per-node-kind dispatch for statements.
func (c *Checker) checkStmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.AssignStmt:
		c.checkAssignStmt(n)
	case *ast.ExprStmt:
		c.checkExpr(n.Expr)
	case *ast.PassStmt:
		// no-op
	case *ast.IfStmt:
		c.checkIfStmt(n)
	case *ast.WhileStmt:
		c.checkWhileStmt(n)
	case *ast.ForStmt:
		c.checkForStmt(n)
	case *ast.ReturnStmt:
		c.checkReturnStmt(n)
	}
}

func anyReturn(stmts []ast.Statement) bool {
	for _, s := range stmts {
		if s.IsReturn() {
			return true
		}
	}
	return false
}

// checkAssignStmt applies the multi-target [<None>] restriction before
// validating each target independently against the value's type.
func (c *Checker) checkAssignStmt(n *ast.AssignStmt) {
	vt := c.checkExpr(n.Value)

	if len(n.Targets) > 1 {
		if lv, ok := vt.(types.ListValueType); ok {
			if nc, ok := lv.Element.(types.ClassValueType); ok && nc.Name == types.NoneClassName {
				c.report(n, errMultipleAssignNoneList(n.Pos()))
			}
		}
	}

	for _, t := range n.Targets {
		c.checkAssignTarget(t, vt)
	}
}

// checkAssignTarget validates one assignment target against the
// value's inferred type, per the per-target-kind rules of §4.4.
func (c *Checker) checkAssignTarget(t ast.Expression, vt types.ValueType) {
	switch target := t.(type) {
	case *ast.Identifier:
		st, ok := c.env.LookupCurrent(target.Name)
		dt, isValue := st.(types.ValueType)
		if !ok || !isValue {
			c.report(target, errNotInCurrentScope(target.Pos(), target.Name))
			c.infer(target, types.Object)
			return
		}
		c.infer(target, dt)
		if !c.registry.CanAssign(vt, dt) {
			c.report(target, errAnnotationMismatch(target.Pos(), dt, vt))
		}
	case *ast.IndexExpr:
		tt := c.checkExpr(target)
		if target.List.InferredType().Equals(types.Str) {
			c.report(target, errAssignToStringIndex(target.Pos()))
			return
		}
		if !c.registry.CanAssign(vt, tt) {
			c.report(target, errAnnotationMismatch(target.Pos(), tt, vt))
		}
	case *ast.MemberExpr:
		tt := c.checkExpr(target)
		if !c.registry.CanAssign(vt, tt) {
			c.report(target, errAnnotationMismatch(target.Pos(), tt, vt))
		}
	default:
		c.checkExpr(t)
	}
}

func (c *Checker) checkIfStmt(n *ast.IfStmt) {
	ct := c.checkExpr(n.Cond)
	if !ct.Equals(types.Bool) {
		c.report(n.Cond, errNonBoolCondition(n.Cond.Pos()))
	}
	for _, s := range n.Then {
		c.checkStmt(s)
	}
	for _, s := range n.Else {
		c.checkStmt(s)
	}
	n.SetIsReturn(anyReturn(n.Then) && anyReturn(n.Else))
}

func (c *Checker) checkWhileStmt(n *ast.WhileStmt) {
	ct := c.checkExpr(n.Cond)
	if !ct.Equals(types.Bool) {
		c.report(n.Cond, errNonBoolCondition(n.Cond.Pos()))
	}
	for _, s := range n.Body {
		c.checkStmt(s)
	}
	n.SetIsReturn(anyReturn(n.Body))
}

// checkForStmt treats the loop variable as a pre-declared assignment
// target resolved in the current scope, matching ChocoPy's rule that a
// for-target is never implicitly declared by the loop itself.
func (c *Checker) checkForStmt(n *ast.ForStmt) {
	it := c.checkExpr(n.Iter)

	st, ok := c.env.LookupCurrent(n.Var.Name)
	idType, isValue := st.(types.ValueType)
	if !ok || !isValue {
		c.report(&n.Var, errNotInCurrentScope(n.Var.Pos(), n.Var.Name))
		idType = types.Object
	}
	c.infer(&n.Var, idType)

	switch elem := it.(type) {
	case types.ListValueType:
		if !c.registry.CanAssign(elem.Element, idType) {
			c.report(n, errAnnotationMismatch(n.Pos(), idType, elem.Element))
		}
	default:
		if it.Equals(types.Str) {
			if !c.registry.CanAssign(types.Str, idType) {
				c.report(n, errAnnotationMismatch(n.Pos(), idType, types.Str))
			}
		} else {
			c.report(n, errExpectedIterable(n.Pos()))
		}
	}

	for _, s := range n.Body {
		c.checkStmt(s)
	}
	n.SetIsReturn(anyReturn(n.Body))
}

// checkReturnStmt requires an enclosing function and checks the
// returned value (or, for a bare return, <None>) against the
// function's declared return type.
func (c *Checker) checkReturnStmt(n *ast.ReturnStmt) {
	if !c.haveReturn {
		c.report(n, errReturnOutsideFunction(n.Pos()))
		n.SetIsReturn(true)
		return
	}
	if n.Value == nil {
		if !c.registry.CanAssign(types.None, c.currentReturn) {
			c.report(n, errReturnTypeMismatch(n.Pos(), c.currentReturn, types.None))
		}
		n.SetIsReturn(true)
		return
	}
	vt := c.checkExpr(n.Value)
	if !c.registry.CanAssign(vt, c.currentReturn) {
		c.report(n, errReturnTypeMismatch(n.Pos(), c.currentReturn, vt))
	}
	n.SetIsReturn(true)
}
