// Package types implements the ChocoPy-style value-type lattice: value
// types, function types, and the subtype/assignability/join operations
// defined over a dynamic, nominal class hierarchy.
package types

import "fmt"

// ObjectClassName, IntClassName, BoolClassName, StrClassName, NoneClassName
// and EmptyClassName are the reserved sentinel class names. NoneClassName
// and EmptyClassName are never written by a user; they arise only from
// literal inference (None, []).
const (
	ObjectClassName = "object"
	IntClassName    = "int"
	BoolClassName   = "bool"
	StrClassName    = "str"
	NoneClassName   = "<None>"
	EmptyClassName  = "<Empty>"
)

// SymbolType is anything that can be bound to a name in a scope: either a
// ValueType or a FuncType. It has no methods of its own; callers type-switch
// on the concrete type.
type SymbolType interface {
	isSymbolType()
	String() string
}

// ValueType is a type that can appear as the type of a value: a class type
// or a list type. Every ValueType is also a SymbolType.
type ValueType interface {
	SymbolType
	isValueType()
	// Equals reports structural equality: same class name, or list types
	// whose element types are themselves Equals.
	Equals(other ValueType) bool
}

// ClassValueType is a named class type, including the six built-in
// sentinels. Name is never empty.
type ClassValueType struct {
	Name string
}

func (c ClassValueType) isSymbolType() {}
func (c ClassValueType) isValueType()  {}

func (c ClassValueType) String() string { return c.Name }

// Equals reports whether other is a ClassValueType with the same Name.
func (c ClassValueType) Equals(other ValueType) bool {
	o, ok := other.(ClassValueType)
	return ok && o.Name == c.Name
}

// ListValueType is a parametric list whose Element is itself a ValueType.
type ListValueType struct {
	Element ValueType
}

func (l ListValueType) isSymbolType() {}
func (l ListValueType) isValueType()  {}

func (l ListValueType) String() string {
	return fmt.Sprintf("[%s]", l.Element.String())
}

// Equals reports whether other is a ListValueType whose Element Equals
// this one's. ListValueType is invariant under structural equality.
func (l ListValueType) Equals(other ValueType) bool {
	o, ok := other.(ListValueType)
	return ok && l.Element.Equals(o.Element)
}

// Sentinel value types. These are the only instances the checker ever
// needs to construct for built-in classes; user classes get fresh
// ClassValueType values from the class registry.
var (
	Object = ClassValueType{Name: ObjectClassName}
	Int    = ClassValueType{Name: IntClassName}
	Bool   = ClassValueType{Name: BoolClassName}
	Str    = ClassValueType{Name: StrClassName}
	None   = ClassValueType{Name: NoneClassName}
	Empty  = ClassValueType{Name: EmptyClassName}
)

// IsPrimitive reports whether t is one of int, bool, str — the set S used
// by the BinaryExpr rules (§4.4) and the is-operator rule.
func IsPrimitive(t ValueType) bool {
	c, ok := t.(ClassValueType)
	if !ok {
		return false
	}
	switch c.Name {
	case IntClassName, BoolClassName, StrClassName:
		return true
	default:
		return false
	}
}
