package passes

import (
	"fmt"

	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/semantic"
)

// ValidationPass re-walks the annotated tree DeclarationPass produced
// and checks the two structural invariants of spec.md §8 that a host
// cares about before trusting the tree downstream: every expression
// node carries a non-nil inferredType (invariant 4), and every
// diagnostic in the program's errors collector is anchored at a node
// that actually carries a matching errorMsg (invariant 5). It never
// reports a new semantic diagnostic — a violation here is a checker
// bug, not a user-facing error, so it is returned as a Go error.
type ValidationPass struct{}

// NewValidationPass creates a ValidationPass.
func NewValidationPass() *ValidationPass { return &ValidationPass{} }

func (p *ValidationPass) Name() string { return "validation" }

func (p *ValidationPass) Run(program *ast.Program, ctx *semantic.PassContext) error {
	anchored := make(map[string]bool, len(program.Errors))

	var walkExpr func(e ast.Expression) error
	var walkStmt func(s ast.Statement) error
	var walkDecl func(d ast.Declaration) error

	note := func(n ast.Node) {
		if n.HasError() {
			anchored[n.ErrorMsg()] = true
		}
	}

	walkExpr = func(e ast.Expression) error {
		if e == nil {
			return nil
		}
		note(e)
		if e.InferredType() == nil {
			return fmt.Errorf("validation: %s at %s has no inferredType", e.String(), e.Pos())
		}
		switch n := e.(type) {
		case *ast.ListExpr:
			for _, el := range n.Elements {
				if err := walkExpr(el); err != nil {
					return err
				}
			}
		case *ast.IndexExpr:
			if err := walkExpr(n.List); err != nil {
				return err
			}
			return walkExpr(n.Index)
		case *ast.UnaryExpr:
			return walkExpr(n.Operand)
		case *ast.BinaryExpr:
			if err := walkExpr(n.Left); err != nil {
				return err
			}
			return walkExpr(n.Right)
		case *ast.IfExpr:
			if err := walkExpr(n.Cond); err != nil {
				return err
			}
			if err := walkExpr(n.Then); err != nil {
				return err
			}
			return walkExpr(n.Else)
		case *ast.CallExpr:
			for _, a := range n.Args {
				if err := walkExpr(a); err != nil {
					return err
				}
			}
		case *ast.MemberExpr:
			return walkExpr(n.Object)
		case *ast.MethodCallExpr:
			if err := walkExpr(n.Object); err != nil {
				return err
			}
			for _, a := range n.Args {
				if err := walkExpr(a); err != nil {
					return err
				}
			}
		}
		return nil
	}

	walkStmt = func(s ast.Statement) error {
		if s == nil {
			return nil
		}
		note(s)
		switch n := s.(type) {
		case *ast.AssignStmt:
			for _, t := range n.Targets {
				if err := walkExpr(t); err != nil {
					return err
				}
			}
			return walkExpr(n.Value)
		case *ast.ExprStmt:
			return walkExpr(n.Expr)
		case *ast.IfStmt:
			if err := walkExpr(n.Cond); err != nil {
				return err
			}
			for _, s := range n.Then {
				if err := walkStmt(s); err != nil {
					return err
				}
			}
			for _, s := range n.Else {
				if err := walkStmt(s); err != nil {
					return err
				}
			}
		case *ast.WhileStmt:
			if err := walkExpr(n.Cond); err != nil {
				return err
			}
			for _, s := range n.Body {
				if err := walkStmt(s); err != nil {
					return err
				}
			}
		case *ast.ForStmt:
			if err := walkExpr(&n.Var); err != nil {
				return err
			}
			if err := walkExpr(n.Iter); err != nil {
				return err
			}
			for _, s := range n.Body {
				if err := walkStmt(s); err != nil {
					return err
				}
			}
		case *ast.ReturnStmt:
			return walkExpr(n.Value)
		}
		return nil
	}

	walkDecl = func(d ast.Declaration) error {
		if d == nil {
			return nil
		}
		note(d)
		switch n := d.(type) {
		case *ast.VarDef:
			return walkExpr(n.Value)
		case *ast.FuncDef:
			for _, nested := range n.Declarations {
				if err := walkDecl(nested); err != nil {
					return err
				}
			}
			for _, s := range n.Statements {
				if err := walkStmt(s); err != nil {
					return err
				}
			}
		case *ast.ClassDef:
			for _, nested := range n.Declarations {
				if err := walkDecl(nested); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, d := range program.Declarations {
		if err := walkDecl(d); err != nil {
			return err
		}
	}
	for _, s := range program.Statements {
		if err := walkStmt(s); err != nil {
			return err
		}
	}

	for _, diag := range program.Errors {
		if !anchored[diag.Message] {
			return fmt.Errorf("validation: diagnostic %q has no anchoring node", diag.Message)
		}
	}

	return nil
}
