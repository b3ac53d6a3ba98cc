package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/semantic"
)

func TestApplyRegistersExtraBuiltins(t *testing.T) {
	cfg := &CheckerConfig{
		ExtraBuiltins: map[string]BuiltinSignature{
			"abs": {"int", "int"},
		},
	}
	checker := semantic.NewChecker()
	if err := cfg.Apply(checker); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := checker.Environment().LookupGlobal("abs"); !ok {
		t.Error("abs should be registered as a global after Apply")
	}
}

func TestApplyRejectsEmptySignature(t *testing.T) {
	cfg := &CheckerConfig{ExtraBuiltins: map[string]BuiltinSignature{"bad": {}}}
	if err := cfg.Apply(semantic.NewChecker()); err == nil {
		t.Fatal("expected an error for an empty builtin signature")
	}
}

func TestDemoteHintsRewritesUnknownIdentifierOnly(t *testing.T) {
	program := &ast.Program{
		Errors: []ast.Diagnostic{
			{Message: "Unknown identifier: q", Kind: "unknown_identifier"},
			{Message: "Illegal superclass: int", Kind: "illegal_superclass"},
		},
	}
	cfg := &CheckerConfig{DemoteUnknownIdentifierToHint: true}
	cfg.DemoteHints(program)

	if got := program.Errors[0].Message; got != "Hint: Unknown identifier: q" {
		t.Errorf("errors[0].Message = %q, want hint-prefixed", got)
	}
	if got := program.Errors[1].Message; got != "Illegal superclass: int" {
		t.Errorf("errors[1].Message = %q, should be untouched", got)
	}
}

func TestDemoteHintsNoopWhenDisabled(t *testing.T) {
	program := &ast.Program{
		Errors: []ast.Diagnostic{{Message: "Unknown identifier: q", Kind: "unknown_identifier"}},
	}
	cfg := Default()
	cfg.DemoteHints(program)
	if got := program.Errors[0].Message; got != "Unknown identifier: q" {
		t.Errorf("errors[0].Message = %q, should be untouched when disabled", got)
	}
}

func TestLoadParsesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checker.yaml")
	contents := "extraBuiltins:\n  abs:\n    - int\n    - int\ndemoteUnknownIdentifierToHint: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.DemoteUnknownIdentifierToHint {
		t.Error("demoteUnknownIdentifierToHint should be true")
	}
	sig, ok := cfg.ExtraBuiltins["abs"]
	if !ok || len(sig) != 2 || sig[0] != "int" || sig[1] != "int" {
		t.Errorf("ExtraBuiltins[\"abs\"] = %v, want [int int]", sig)
	}
}

func TestLoadReturnsErrorForMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
