package semantic

import (
	"testing"

	"github.com/cwbudde/chocotype/internal/ast"
)

type recordingPass struct {
	name string
	ran  *[]string
}

func (p *recordingPass) Name() string { return p.name }

func (p *recordingPass) Run(program *ast.Program, ctx *PassContext) error {
	*p.ran = append(*p.ran, p.name)
	return nil
}

func TestPassManagerRunsPassesInOrder(t *testing.T) {
	var ran []string
	pm := NewPassManager(&recordingPass{name: "a", ran: &ran}, &recordingPass{name: "b", ran: &ran})
	pm.AddPass(&recordingPass{name: "c", ran: &ran})

	if err := pm.RunAll(&ast.Program{}, NewPassContext()); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(ran) != len(want) {
		t.Fatalf("ran = %v, want %v", ran, want)
	}
	for i, name := range want {
		if ran[i] != name {
			t.Errorf("ran[%d] = %q, want %q", i, ran[i], name)
		}
	}
}

func TestPassContextErrorCountTracksChecker(t *testing.T) {
	ctx := NewPassContext()
	if ctx.HasErrors() {
		t.Fatal("fresh context should have no errors")
	}

	program := &ast.Program{
		Declarations: []ast.Declaration{
			varDef("y", classAnnot("int"), strLit("a")),
		},
	}
	ctx.Checker.Check(program)

	if !ctx.HasErrors() {
		t.Error("context should report errors after a failing check")
	}
	if ctx.ErrorCount() != len(program.Errors) {
		t.Errorf("ErrorCount() = %d, want %d", ctx.ErrorCount(), len(program.Errors))
	}
}
