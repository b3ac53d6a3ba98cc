package semantic

// PassContext is the state threaded through a PassManager run: the
// Checker instance every pass reads and mutates. Unlike the teacher's
// PassContext (a grab-bag of DWScript-specific registries — helper
// types, subranges, function pointers, operator overloads), this
// language has no such ambient state beyond what Checker already owns,
// so PassContext is a thin handle plus the error-inspection helpers a
// host needs after RunAll returns.
type PassContext struct {
	Checker *Checker
}

// NewPassContext creates a PassContext around a fresh Checker.
func NewPassContext() *PassContext {
	return &PassContext{Checker: NewChecker()}
}

// HasErrors reports whether the checked program collected any
// diagnostics.
func (ctx *PassContext) HasErrors() bool {
	return ctx.Checker.program != nil && len(ctx.Checker.program.Errors) > 0
}

// ErrorCount returns the number of diagnostics collected so far.
func (ctx *PassContext) ErrorCount() int {
	if ctx.Checker.program == nil {
		return 0
	}
	return len(ctx.Checker.program.Errors)
}
