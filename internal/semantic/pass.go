package semantic

import "github.com/cwbudde/chocotype/internal/ast"

// Pass is a single stage of the checker pipeline. The multi-pass shape
// exists so a host (the CLI, a test harness) can run the declaration
// pass and judgement walker through one PassManager.RunAll call
// instead of calling Checker methods directly, and so a future pass
// (e.g. a lint-style pass over the annotated tree) slots in without
// touching Checker itself.
type Pass interface {
	// Name returns the pass's name, for logging and test failure output.
	Name() string

	// Run executes the pass over program using ctx's Checker. It
	// returns an error only for a fatal internal failure; semantic
	// diagnostics are recorded on program.Errors, never returned here.
	Run(program *ast.Program, ctx *PassContext) error
}

// PassManager runs a fixed sequence of passes in order.
type PassManager struct {
	passes []Pass
}

// NewPassManager creates a PassManager that will run passes in the
// given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// AddPass appends a pass, to be run after every pass already added.
func (pm *PassManager) AddPass(pass Pass) {
	pm.passes = append(pm.passes, pass)
}

// Passes returns the registered passes in run order.
func (pm *PassManager) Passes() []Pass {
	return pm.passes
}

// RunAll runs every registered pass in order, stopping at the first
// one that returns a fatal error.
func (pm *PassManager) RunAll(program *ast.Program, ctx *PassContext) error {
	for _, pass := range pm.passes {
		if err := pass.Run(program, ctx); err != nil {
			return err
		}
	}
	return nil
}
