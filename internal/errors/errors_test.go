package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/chocotype/internal/ast"
)

func TestFormatIncludesCaretAtColumn(t *testing.T) {
	e := NewCompilerError(ast.Location{Line: 2, Col: 5}, "Unknown identifier: y", "x: int = 1\ny: int = z", "")
	got := e.Format(false)
	if !strings.Contains(got, "Unknown identifier: y") {
		t.Errorf("Format output missing message: %q", got)
	}
	if !strings.Contains(got, "y: int = z") {
		t.Errorf("Format output missing source line: %q", got)
	}
	// "   2 | " is 7 columns wide, so column 5 puts the caret after 11 spaces.
	if !strings.Contains(got, "\n"+strings.Repeat(" ", 11)+"^\n") {
		t.Errorf("Format output missing caret under column 5: %q", got)
	}
}

func TestFormatErrorsSingleVsMultiple(t *testing.T) {
	one := []*CompilerError{NewCompilerError(ast.Location{Line: 1, Col: 1}, "boom", "", "")}
	if got := FormatErrors(one, false); strings.Contains(got, "error(s)") {
		t.Errorf("single-error output should not include the batch header: %q", got)
	}

	many := []*CompilerError{
		NewCompilerError(ast.Location{Line: 1, Col: 1}, "first", "", ""),
		NewCompilerError(ast.Location{Line: 2, Col: 1}, "second", "", ""),
	}
	got := FormatErrors(many, false)
	if !strings.Contains(got, "2 error(s)") {
		t.Errorf("batch output should report the error count: %q", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("batch output should include every error: %q", got)
	}
}

func TestFromDiagnostics(t *testing.T) {
	diags := []ast.Diagnostic{
		{Loc: ast.Location{Line: 3, Col: 2}, Message: "Unknown identifier: z. Line 3 Col 2"},
	}
	errs := FromDiagnostics(diags, "", "")
	if len(errs) != 1 {
		t.Fatalf("len(errs) = %d, want 1", len(errs))
	}
	if errs[0].Pos.Line != 3 || errs[0].Pos.Col != 2 {
		t.Errorf("errs[0].Pos = %+v, want {3 2}", errs[0].Pos)
	}
}
