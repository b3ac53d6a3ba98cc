package semantic

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/types"
)

func ident(name string, line int) ast.Identifier {
	return ast.Identifier{Name: name}
}

func identPtr(name string, line int) *ast.Identifier {
	id := ident(name, line)
	return &id
}

func intLit(v int64) *ast.IntegerLiteral  { return &ast.IntegerLiteral{Value: v} }
func strLit(v string) *ast.StringLiteral  { return &ast.StringLiteral{Value: v} }
func boolLit(v bool) *ast.BooleanLiteral  { return &ast.BooleanLiteral{Value: v} }
func noneLit() *ast.NoneLiteral           { return &ast.NoneLiteral{} }
func classAnnot(name string) *ast.ClassTypeAnnotation {
	return &ast.ClassTypeAnnotation{Name: name}
}
func listAnnot(elem ast.TypeAnnotation) *ast.ListTypeAnnotation {
	return &ast.ListTypeAnnotation{Element: elem}
}

func varDef(name string, annot ast.TypeAnnotation, value ast.Expression) *ast.VarDef {
	return &ast.VarDef{Name: ident(name, 0), Type: annot, Value: value}
}

// Scenario 1: x: int = 3; y: int = "a" — one error, annotation mismatch.
func TestEndToEndScenario1AnnotationMismatch(t *testing.T) {
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("x", classAnnot(types.IntClassName), intLit(3)),
			varDef("y", classAnnot(types.IntClassName), strLit("a")),
		},
	}
	NewChecker().Check(program)

	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}
	y := program.Declarations[1].(*ast.VarDef)
	if !y.Value.InferredType().Equals(types.Str) {
		t.Errorf("y.value.inferredType = %v, want str", y.Value.InferredType())
	}
}

// Scenario 2: def f(a: int) -> int: return a \n f(1) — no errors.
func TestEndToEndScenario2NoErrorsOnWellTypedCall(t *testing.T) {
	fn := &ast.FuncDef{
		Name:       ident("f", 0),
		Params:     []ast.Param{{Name: "a", Type: classAnnot(types.IntClassName)}},
		ReturnType: classAnnot(types.IntClassName),
		Statements: []ast.Statement{&ast.ReturnStmt{Value: identPtr("a", 0)}},
	}
	call := &ast.ExprStmt{Expr: &ast.CallExpr{Func: ident("f", 0), Args: []ast.Expression{intLit(1)}}}

	program := &ast.Program{
		Declarations: []ast.Declaration{fn},
		Statements:   []ast.Statement{call},
	}
	NewChecker().Check(program)

	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	callExpr := call.Expr.(*ast.CallExpr)
	if !callExpr.InferredType().Equals(types.Int) {
		t.Errorf("f(1).inferredType = %v, want int", callExpr.InferredType())
	}
}

// Scenario 3: class A(object): x: int = 0; class B(A): x: int = 1 —
// redefining x on B is an error.
func TestEndToEndScenario3CannotRedefineAttribute(t *testing.T) {
	classA := &ast.ClassDef{
		Name:       ident("A", 0),
		SuperClass: ident(types.ObjectClassName, 0),
		Declarations: []ast.Declaration{
			varDef("x", classAnnot(types.IntClassName), intLit(0)),
		},
	}
	classB := &ast.ClassDef{
		Name:       ident("B", 0),
		SuperClass: ident("A", 0),
		Declarations: []ast.Declaration{
			varDef("x", classAnnot(types.IntClassName), intLit(1)),
		},
	}
	program := &ast.Program{Declarations: []ast.Declaration{classA, classB}}
	NewChecker().Check(program)

	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}
	if want := "Cannot redefine attribute: x"; !containsMessage(program.Errors, want) {
		t.Errorf("expected an error containing %q, got %v", want, program.Errors)
	}
}

// Scenario 4: a: [int] = None — no error (canAssign(<None>, [int])).
func TestEndToEndScenario4NoneAssignableToListType(t *testing.T) {
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("a", listAnnot(classAnnot(types.IntClassName)), noneLit()),
		},
	}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
}

// Scenario 5: a: [int] = []; b: [[int]] = [None] — no error on either.
func TestEndToEndScenario5EmptyAndNoneListWidenings(t *testing.T) {
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("a", listAnnot(classAnnot(types.IntClassName)), &ast.ListExpr{}),
			varDef("b", listAnnot(listAnnot(classAnnot(types.IntClassName))),
				&ast.ListExpr{Elements: []ast.Expression{noneLit()}}),
		},
	}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
}

// Scenario 6: def f() -> int: if True: return 1 — missing else branch,
// definite-return not satisfied.
func TestEndToEndScenario6MissingDefiniteReturn(t *testing.T) {
	fn := &ast.FuncDef{
		Name:       ident("f", 0),
		ReturnType: classAnnot(types.IntClassName),
		Statements: []ast.Statement{
			&ast.IfStmt{
				Cond: boolLit(true),
				Then: []ast.Statement{&ast.ReturnStmt{Value: intLit(1)}},
			},
		},
	}
	program := &ast.Program{Declarations: []ast.Declaration{fn}}
	NewChecker().Check(program)

	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}
	if want := "Expected return statement of type int"; !containsMessage(program.Errors, want) {
		t.Errorf("expected an error containing %q, got %v", want, program.Errors)
	}
}

// Scenario 7: class A(int): pass — illegal superclass.
func TestEndToEndScenario7IllegalSuperclass(t *testing.T) {
	classA := &ast.ClassDef{
		Name:       ident("A", 0),
		SuperClass: ident(types.IntClassName, 0),
	}
	program := &ast.Program{Declarations: []ast.Declaration{classA}}
	NewChecker().Check(program)

	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}
	if want := "Illegal superclass: int"; !containsMessage(program.Errors, want) {
		t.Errorf("expected an error containing %q, got %v", want, program.Errors)
	}
}

// Scenario 8: top-level def f(): nonlocal x; x = 1 — unknown nonlocal,
// since a top-level function has no enclosing function scope.
func TestEndToEndScenario8UnknownNonlocal(t *testing.T) {
	fn := &ast.FuncDef{
		Name: ident("f", 0),
		Declarations: []ast.Declaration{
			&ast.NonLocalDecl{Name: ident("x", 0)},
		},
		Statements: []ast.Statement{
			&ast.AssignStmt{Targets: []ast.Expression{identPtr("x", 0)}, Value: intLit(1)},
		},
	}
	program := &ast.Program{Declarations: []ast.Declaration{fn}}
	NewChecker().Check(program)

	if !containsMessage(program.Errors, "Unknown nonlocal variable: x") {
		t.Errorf("expected an 'Unknown nonlocal variable: x' error, got %v", program.Errors)
	}
}

func containsMessage(diags []ast.Diagnostic, substr string) bool {
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}

// TestEndToEndDiagnosticSnapshot snapshots the full diagnostic list of
// scenarios 1 and 7 checked together as one program, the way the teacher
// snapshots analyzer output across its fixture suite.
func TestEndToEndDiagnosticSnapshot(t *testing.T) {
	classA := &ast.ClassDef{
		Name:       ident("A", 0),
		SuperClass: ident(types.IntClassName, 0),
	}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("x", classAnnot(types.IntClassName), intLit(3)),
			varDef("y", classAnnot(types.IntClassName), strLit("a")),
			classA,
		},
	}
	NewChecker().Check(program)
	snaps.MatchSnapshot(t, "scenario-1-and-7-diagnostics", program.Errors)
}
