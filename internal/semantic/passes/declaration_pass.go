// Package passes wraps internal/semantic.Checker as a two-stage
// Pass/PassManager pipeline, giving a host (the CLI, tests) a single
// RunAll entry point instead of calling Checker directly.
package passes

import (
	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/semantic"
)

// DeclarationPass runs the checker's declaration pass and judgement
// walker over the whole program. In this language the two are not
// separable into independent global passes — spec.md §4.3 runs them
// interleaved, recursively, once per scope — so this pass is the
// single outermost call into Checker.Check; per-scope recursion
// happens inside it exactly as spec.md describes.
type DeclarationPass struct{}

// NewDeclarationPass creates a DeclarationPass.
func NewDeclarationPass() *DeclarationPass { return &DeclarationPass{} }

func (p *DeclarationPass) Name() string { return "declaration" }

func (p *DeclarationPass) Run(program *ast.Program, ctx *semantic.PassContext) error {
	ctx.Checker.Check(program)
	return nil
}
