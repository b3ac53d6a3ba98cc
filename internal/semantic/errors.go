package semantic

import (
	"fmt"

	"github.com/cwbudde/chocotype/internal/ast"
)

// SemanticErrorKind classifies a SemanticError into the four families
// of the checker's error taxonomy: declaration errors (found while
// registering declarations and class members), scope errors (name resolution),
// type errors (the judgement walker's per-rule violations), and
// structural errors (shape violations that are neither scope nor a
// single type mismatch). The kind never changes which diagnostics
// fire or how many — it exists purely for downstream presentation and
// grouping (internal/errors, internal/config hint-demotion).
type SemanticErrorKind string

const (
	// Declaration errors.
	KindDuplicateDeclaration     SemanticErrorKind = "duplicate_declaration"
	KindUnknownSuperclass        SemanticErrorKind = "unknown_superclass"
	KindIllegalSuperclass        SemanticErrorKind = "illegal_superclass"
	KindAttributeRedefinition    SemanticErrorKind = "attribute_redefinition"
	KindMissingSelfParam         SemanticErrorKind = "missing_self_param"
	KindMethodSignatureMismatch  SemanticErrorKind = "method_signature_mismatch"
	KindMethodShadowsAttribute   SemanticErrorKind = "method_shadows_attribute"

	// Scope errors.
	KindUnknownIdentifier        SemanticErrorKind = "unknown_identifier"
	KindUnknownGlobal            SemanticErrorKind = "unknown_global"
	KindUnknownNonlocal          SemanticErrorKind = "unknown_nonlocal"
	KindNotInCurrentScope        SemanticErrorKind = "not_in_current_scope"

	// Type errors.
	KindOperatorMismatch         SemanticErrorKind = "operator_mismatch"
	KindArgumentMismatch         SemanticErrorKind = "argument_mismatch"
	KindAnnotationMismatch       SemanticErrorKind = "annotation_mismatch"
	KindReturnTypeMismatch       SemanticErrorKind = "return_type_mismatch"
	KindNonIterable              SemanticErrorKind = "non_iterable"
	KindNonBoolCondition         SemanticErrorKind = "non_bool_condition"
	KindIndexNonIndexable        SemanticErrorKind = "index_non_indexable"
	KindAttributeOrMethodMissing SemanticErrorKind = "attribute_or_method_missing"
	KindReturnOutsideFunction    SemanticErrorKind = "return_outside_function"

	// Structural errors.
	KindMultipleAssignNoneList SemanticErrorKind = "multiple_assign_none_list"
	KindAssignToStringIndex    SemanticErrorKind = "assign_to_string_index"
	KindMissingReturn          SemanticErrorKind = "missing_return"
)

// SemanticError is a structured diagnostic: a Kind from the taxonomy
// above, the exact message recorded on the offending node, and the
// node's location.
type SemanticError struct {
	Kind    SemanticErrorKind
	Message string
	Loc     ast.Location
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Loc.String())
}

func newError(kind SemanticErrorKind, loc ast.Location, message string) *SemanticError {
	return &SemanticError{Kind: kind, Message: message, Loc: loc}
}

func errDuplicateDeclaration(loc ast.Location, name string) *SemanticError {
	return newError(KindDuplicateDeclaration, loc, fmt.Sprintf("Duplicate declaration of identifier: %s", name))
}

func errUnknownSuperclass(loc ast.Location, name string) *SemanticError {
	return newError(KindUnknownSuperclass, loc, fmt.Sprintf("Unknown superclass: %s", name))
}

func errIllegalSuperclass(loc ast.Location, name string) *SemanticError {
	return newError(KindIllegalSuperclass, loc, fmt.Sprintf("Illegal superclass: %s", name))
}

func errCannotRedefineAttribute(loc ast.Location, name string) *SemanticError {
	return newError(KindAttributeRedefinition, loc, fmt.Sprintf("Cannot redefine attribute: %s", name))
}

func errMissingSelfParam(loc ast.Location) *SemanticError {
	return newError(KindMissingSelfParam, loc, "Missing self param in method")
}

func errMethodSignatureMismatch(loc ast.Location) *SemanticError {
	return newError(KindMethodSignatureMismatch, loc, "Redefined method doesn't match superclass signature")
}

func errMethodShadowsAttribute(loc ast.Location) *SemanticError {
	return newError(KindMethodShadowsAttribute, loc, "Method name shadows attribute")
}

func errUnknownIdentifier(loc ast.Location, name string) *SemanticError {
	return newError(KindUnknownIdentifier, loc, fmt.Sprintf("Unknown identifier: %s", name))
}

func errUnknownGlobal(loc ast.Location, name string) *SemanticError {
	return newError(KindUnknownGlobal, loc, fmt.Sprintf("Unknown global variable: %s", name))
}

func errUnknownNonlocal(loc ast.Location, name string) *SemanticError {
	return newError(KindUnknownNonlocal, loc, fmt.Sprintf("Unknown nonlocal variable: %s", name))
}

func errNotInCurrentScope(loc ast.Location, name string) *SemanticError {
	return newError(KindNotInCurrentScope, loc, fmt.Sprintf("Identifier not defined in current scope: %s", name))
}

func errOperatorMismatch(loc ast.Location, op string, l, r fmt.Stringer) *SemanticError {
	return newError(KindOperatorMismatch, loc, fmt.Sprintf("Cannot use operator %s on types %s and %s", op, l, r))
}

func errUnaryOperatorMismatch(loc ast.Location, op string, operand fmt.Stringer) *SemanticError {
	return newError(KindOperatorMismatch, loc, fmt.Sprintf("Cannot use operator %s on type %s", op, operand))
}

func errExpectedIntIndex(loc ast.Location) *SemanticError {
	return newError(KindIndexNonIndexable, loc, "Expected int index")
}

func errCannotIndexInto(loc ast.Location, t fmt.Stringer) *SemanticError {
	return newError(KindIndexNonIndexable, loc, fmt.Sprintf("Cannot index into %s", t))
}

func errAttributeOrMethodMissing(loc ast.Location, member, class string) *SemanticError {
	return newError(KindAttributeOrMethodMissing, loc, fmt.Sprintf("Attribute %s doesn't exist for class %s", member, class))
}

func errArgumentCountMismatch(loc ast.Location, name string, expected, got int) *SemanticError {
	return newError(KindArgumentMismatch, loc, fmt.Sprintf("Function %s expects %d arguments, got %d", name, expected, got))
}

func errArgumentTypeMismatch(loc ast.Location, index int, expected, got fmt.Stringer) *SemanticError {
	return newError(KindArgumentMismatch, loc, fmt.Sprintf("Argument %d: cannot assign %s to %s", index, got, expected))
}

func errAnnotationMismatch(loc ast.Location, expected, got fmt.Stringer) *SemanticError {
	return newError(KindAnnotationMismatch, loc, fmt.Sprintf("Cannot assign %s to %s", got, expected))
}

func errReturnOutsideFunction(loc ast.Location) *SemanticError {
	return newError(KindReturnOutsideFunction, loc, "Return statement outside of function definition")
}

func errReturnTypeMismatch(loc ast.Location, expected, got fmt.Stringer) *SemanticError {
	return newError(KindReturnTypeMismatch, loc, fmt.Sprintf("Cannot return %s from function returning %s", got, expected))
}

func errExpectedReturn(loc ast.Location, t fmt.Stringer) *SemanticError {
	return newError(KindMissingReturn, loc, fmt.Sprintf("Expected return statement of type %s", t))
}

func errNonBoolCondition(loc ast.Location) *SemanticError {
	return newError(KindNonBoolCondition, loc, "Condition must be of type bool")
}

func errExpectedIterable(loc ast.Location) *SemanticError {
	return newError(KindNonIterable, loc, "Expected iterable")
}

func errMultipleAssignNoneList(loc ast.Location) *SemanticError {
	return newError(KindMultipleAssignNoneList, loc, "Multiple assignment of [<None>] is forbidden")
}

func errAssignToStringIndex(loc ast.Location) *SemanticError {
	return newError(KindAssignToStringIndex, loc, "Cannot assign to index of string")
}
