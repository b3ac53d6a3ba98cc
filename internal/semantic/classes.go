package semantic

import (
	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/types"
)

// registerClassDef is the ClassDef branch of Phase A (§4.3): validate
// the superclass and, on success, create the empty registry entry.
// Forbidden superclasses (int, bool, str, self) are checked before
// existence so a self-referencing or built-in superclass always reads
// as "illegal", never as "unknown".
func (c *Checker) registerClassDef(n *ast.ClassDef) {
	if c.isDuplicateName(n.Name.Name) {
		c.report(&n.Name, errDuplicateDeclaration(n.Name.Pos(), n.Name.Name))
		return
	}

	super := n.SuperClass.Name
	switch super {
	case types.IntClassName, types.BoolClassName, types.StrClassName:
		c.report(&n.SuperClass, errIllegalSuperclass(n.SuperClass.Pos(), super))
		return
	}
	if super == n.Name.Name {
		c.report(&n.SuperClass, errIllegalSuperclass(n.SuperClass.Pos(), super))
		return
	}
	if !c.registry.ClassExists(super) {
		c.report(&n.SuperClass, errUnknownSuperclass(n.SuperClass.Pos(), super))
		return
	}

	c.registry.DeclareClass(n.Name.Name, super)
}

// visitClassDef runs the class body registration pass described in
// §4.3 ("Class body registration") — attributes and methods go into
// the class registry, not the scope stack — and then visits every
// member's body with currentClass set, so self-typed parameters and
// member lookups resolve against this class.
func (c *Checker) visitClassDef(n *ast.ClassDef) {
	if !c.registry.ClassExists(n.Name.Name) {
		return
	}

	prevClass := c.currentClass
	c.currentClass = n.Name.Name
	defer func() { c.currentClass = prevClass }()

	for _, d := range n.Declarations {
		c.registerClassMember(d)
	}
	for _, d := range n.Declarations {
		c.visitClassMember(d)
	}
}

func (c *Checker) registerClassMember(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.VarDef:
		c.registerAttribute(n)
	case *ast.FuncDef:
		c.registerMethod(n)
	}
}

// registerAttribute rejects an attribute name already defined anywhere
// on the class or an ancestor — including an attribute or method
// registered earlier in this same pass, since SetMember mutates the
// registry as the declarations are walked in source order.
func (c *Checker) registerAttribute(n *ast.VarDef) {
	if _, ok := c.registry.GetAttrOrMethod(c.currentClass, n.Name.Name); ok {
		c.report(&n.Name, errCannotRedefineAttribute(n.Name.Pos(), n.Name.Name))
		return
	}
	c.registry.SetMember(c.currentClass, n.Name.Name, c.resolveAnnotation(n.Type))
}

// registerMethod validates the self parameter, checks for a duplicate
// or incompatible override against the class's own members and the
// nearest ancestor declaring the same name, and registers the method's
// FuncType.
func (c *Checker) registerMethod(n *ast.FuncDef) {
	ft := c.synthesizeFuncType(n)

	if len(n.Params) == 0 || n.Params[0].Name != "self" {
		c.report(&n.Name, errMissingSelfParam(n.Name.Pos()))
		return
	}
	if selfClass, ok := ft.Params[0].(types.ClassValueType); !ok || selfClass.Name != c.currentClass {
		c.report(&n.Name, errMissingSelfParam(n.Name.Pos()))
		return
	}

	if c.registry.HasOwnMember(c.currentClass, n.Name.Name) {
		c.report(&n.Name, errDuplicateDeclaration(n.Name.Pos(), n.Name.Name))
		return
	}

	if super, ok := c.registry.SuperOf(c.currentClass); ok {
		if inherited, ok := c.registry.GetAttrOrMethod(super, n.Name.Name); ok {
			inheritedFunc, isFunc := inherited.(*types.FuncType)
			if !isFunc {
				c.report(&n.Name, errMethodShadowsAttribute(n.Name.Pos()))
				return
			}
			if !ft.MethodEquals(inheritedFunc) {
				c.report(&n.Name, errMethodSignatureMismatch(n.Name.Pos()))
				return
			}
		}
	}

	c.registry.SetMember(c.currentClass, n.Name.Name, ft)
}

// visitClassMember visits an attribute initializer or a method body,
// reusing the same judgement rules Phase B applies at any other scope
// (§4.3: "A declaration whose identifier already has an errorMsg is
// skipped").
func (c *Checker) visitClassMember(d ast.Declaration) {
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
	}
}
