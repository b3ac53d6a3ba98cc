package semantic

import (
	"strings"
	"testing"

	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/types"
)

func assignStmt(target ast.Expression, value ast.Expression) *ast.AssignStmt {
	return &ast.AssignStmt{Targets: []ast.Expression{target}, Value: value}
}

func TestForStmtIteratesListAndInfersElementType(t *testing.T) {
	for_ := &ast.ForStmt{Var: ident("x", 0), Iter: identPtr("a", 0), Body: []ast.Statement{&ast.PassStmt{}}}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("x", classAnnot(types.IntClassName), intLit(0)),
			varDef("a", listAnnot(classAnnot(types.IntClassName)), &ast.ListExpr{Elements: []ast.Expression{intLit(1)}}),
		},
		Statements: []ast.Statement{for_},
	}
	NewChecker().Check(program)

	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !for_.Var.InferredType().Equals(types.Int) {
		t.Errorf("for_.Var.InferredType() = %v, want int", for_.Var.InferredType())
	}
}

func TestForStmtIteratesStringInfersStr(t *testing.T) {
	for_ := &ast.ForStmt{Var: ident("c", 0), Iter: identPtr("s", 0), Body: []ast.Statement{&ast.PassStmt{}}}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("c", classAnnot(types.StrClassName), strLit("")),
			varDef("s", classAnnot(types.StrClassName), strLit("abc")),
		},
		Statements: []ast.Statement{for_},
	}
	NewChecker().Check(program)

	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !for_.Var.InferredType().Equals(types.Str) {
		t.Errorf("for_.Var.InferredType() = %v, want str", for_.Var.InferredType())
	}
}

// TestForStmtUndeclaredTargetReportsAndInfersObject guards the fix for
// the ForStmt.Var inferredType gap: an undeclared loop target must
// still end up with a non-nil inferredType (types.Object), not nil.
func TestForStmtUndeclaredTargetReportsAndInfersObject(t *testing.T) {
	for_ := &ast.ForStmt{Var: ident("x", 0), Iter: identPtr("a", 0), Body: []ast.Statement{&ast.PassStmt{}}}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("a", listAnnot(classAnnot(types.IntClassName)), &ast.ListExpr{Elements: []ast.Expression{intLit(1)}}),
		},
		Statements: []ast.Statement{for_},
	}
	NewChecker().Check(program)

	if !containsMessage(program.Errors, "Identifier not defined in current scope: x") {
		t.Fatalf("expected a not-in-current-scope error, got %v", program.Errors)
	}
	if for_.Var.InferredType() == nil {
		t.Fatal("for_.Var.InferredType() must not be nil even when the target is undeclared")
	}
	if !for_.Var.InferredType().Equals(types.Object) {
		t.Errorf("for_.Var.InferredType() = %v, want object", for_.Var.InferredType())
	}
}

func TestWhileStmtAcceptsBoolCondition(t *testing.T) {
	ws := &ast.WhileStmt{Cond: boolLit(false), Body: []ast.Statement{&ast.PassStmt{}}}
	program := &ast.Program{Statements: []ast.Statement{ws}}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
}

func TestWhileStmtRequiresBoolCondition(t *testing.T) {
	ws := &ast.WhileStmt{Cond: intLit(1), Body: []ast.Statement{&ast.PassStmt{}}}
	program := &ast.Program{Statements: []ast.Statement{ws}}
	NewChecker().Check(program)
	if !containsMessage(program.Errors, "Condition must be of type bool") {
		t.Errorf("expected a non-bool-condition error, got %v", program.Errors)
	}
}

func TestUnaryExprNegateRequiresInt(t *testing.T) {
	u := &ast.UnaryExpr{Operator: "-", Operand: intLit(3)}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExprStmt{Expr: u}}}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !u.InferredType().Equals(types.Int) {
		t.Errorf("(-3).InferredType() = %v, want int", u.InferredType())
	}
}

func TestUnaryExprNegateRejectsNonInt(t *testing.T) {
	u := &ast.UnaryExpr{Operator: "-", Operand: strLit("a")}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExprStmt{Expr: u}}}
	NewChecker().Check(program)
	if !containsMessage(program.Errors, "Cannot use operator - on type str") {
		t.Errorf("expected an operator-mismatch error, got %v", program.Errors)
	}
}

func TestUnaryExprNotRequiresBool(t *testing.T) {
	u := &ast.UnaryExpr{Operator: "not", Operand: boolLit(true)}
	program := &ast.Program{Statements: []ast.Statement{&ast.ExprStmt{Expr: u}}}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !u.InferredType().Equals(types.Bool) {
		t.Errorf("(not True).InferredType() = %v, want bool", u.InferredType())
	}
}

func TestIndexExprOnListInfersElementType(t *testing.T) {
	idx := &ast.IndexExpr{List: identPtr("a", 0), Index: intLit(0)}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("a", listAnnot(classAnnot(types.IntClassName)), &ast.ListExpr{Elements: []ast.Expression{intLit(1)}}),
		},
		Statements: []ast.Statement{&ast.ExprStmt{Expr: idx}},
	}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !idx.InferredType().Equals(types.Int) {
		t.Errorf("a[0].InferredType() = %v, want int", idx.InferredType())
	}
}

func TestIndexExprOnStringInfersStr(t *testing.T) {
	idx := &ast.IndexExpr{List: identPtr("s", 0), Index: intLit(0)}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("s", classAnnot(types.StrClassName), strLit("abc")),
		},
		Statements: []ast.Statement{&ast.ExprStmt{Expr: idx}},
	}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !idx.InferredType().Equals(types.Str) {
		t.Errorf("s[0].InferredType() = %v, want str", idx.InferredType())
	}
}

func TestIndexExprNonIntIndexReportsError(t *testing.T) {
	idx := &ast.IndexExpr{List: identPtr("a", 0), Index: strLit("0")}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("a", listAnnot(classAnnot(types.IntClassName)), &ast.ListExpr{Elements: []ast.Expression{intLit(1)}}),
		},
		Statements: []ast.Statement{&ast.ExprStmt{Expr: idx}},
	}
	NewChecker().Check(program)
	if !containsMessage(program.Errors, "Expected int index") {
		t.Errorf("expected an 'Expected int index' error, got %v", program.Errors)
	}
}

func TestMemberExprResolvesAttribute(t *testing.T) {
	classA := &ast.ClassDef{
		Name:       ident("A", 0),
		SuperClass: ident(types.ObjectClassName, 0),
		Declarations: []ast.Declaration{
			varDef("x", classAnnot(types.IntClassName), intLit(0)),
		},
	}
	member := &ast.MemberExpr{Object: identPtr("a", 0), Member: ident("x", 0)}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			classA,
			varDef("a", classAnnot("A"), &ast.CallExpr{Func: ident("A", 0)}),
		},
		Statements: []ast.Statement{&ast.ExprStmt{Expr: member}},
	}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !member.InferredType().Equals(types.Int) {
		t.Errorf("a.x.InferredType() = %v, want int", member.InferredType())
	}
}

func TestMemberExprMissingAttributeReportsError(t *testing.T) {
	classA := &ast.ClassDef{Name: ident("A", 0), SuperClass: ident(types.ObjectClassName, 0)}
	member := &ast.MemberExpr{Object: identPtr("a", 0), Member: ident("missing", 0)}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			classA,
			varDef("a", classAnnot("A"), &ast.CallExpr{Func: ident("A", 0)}),
		},
		Statements: []ast.Statement{&ast.ExprStmt{Expr: member}},
	}
	NewChecker().Check(program)
	if !containsMessage(program.Errors, "Attribute missing doesn't exist for class A") {
		t.Errorf("expected an attribute-missing error, got %v", program.Errors)
	}
}

func TestMethodCallExprResolvesReturnType(t *testing.T) {
	classA := &ast.ClassDef{
		Name:       ident("A", 0),
		SuperClass: ident(types.ObjectClassName, 0),
		Declarations: []ast.Declaration{
			&ast.FuncDef{
				Name:       ident("get", 0),
				Params:     []ast.Param{{Name: "self", Type: classAnnot("A")}},
				ReturnType: classAnnot(types.IntClassName),
				Statements: []ast.Statement{&ast.ReturnStmt{Value: intLit(1)}},
			},
		},
	}
	call := &ast.MethodCallExpr{Object: identPtr("a", 0), Method: ident("get", 0)}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			classA,
			varDef("a", classAnnot("A"), &ast.CallExpr{Func: ident("A", 0)}),
		},
		Statements: []ast.Statement{&ast.ExprStmt{Expr: call}},
	}
	NewChecker().Check(program)
	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if !call.InferredType().Equals(types.Int) {
		t.Errorf("a.get().InferredType() = %v, want int", call.InferredType())
	}
}

func TestMethodCallExprArgumentCountMismatch(t *testing.T) {
	classA := &ast.ClassDef{
		Name:       ident("A", 0),
		SuperClass: ident(types.ObjectClassName, 0),
		Declarations: []ast.Declaration{
			&ast.FuncDef{
				Name:       ident("get", 0),
				Params:     []ast.Param{{Name: "self", Type: classAnnot("A")}},
				ReturnType: classAnnot(types.IntClassName),
				Statements: []ast.Statement{&ast.ReturnStmt{Value: intLit(1)}},
			},
		},
	}
	call := &ast.MethodCallExpr{Object: identPtr("a", 0), Method: ident("get", 0), Args: []ast.Expression{intLit(1)}}
	program := &ast.Program{
		Declarations: []ast.Declaration{
			classA,
			varDef("a", classAnnot("A"), &ast.CallExpr{Func: ident("A", 0)}),
		},
		Statements: []ast.Statement{&ast.ExprStmt{Expr: call}},
	}
	NewChecker().Check(program)
	if !containsMessage(program.Errors, "Function get expects 0 arguments, got 1") {
		t.Errorf("expected an argument-count-mismatch error, got %v", program.Errors)
	}
}

func TestAssignStmtToUndeclaredTargetInfersObject(t *testing.T) {
	as := assignStmt(identPtr("x", 0), intLit(1))
	program := &ast.Program{Statements: []ast.Statement{as}}
	NewChecker().Check(program)
	if !strings.Contains(program.Errors[0].Message, "Identifier not defined in current scope: x") {
		t.Fatalf("expected a not-in-current-scope error, got %v", program.Errors)
	}
	target := as.Targets[0]
	if target.InferredType() == nil || !target.InferredType().Equals(types.Object) {
		t.Errorf("x.InferredType() = %v, want object", target.InferredType())
	}
}
