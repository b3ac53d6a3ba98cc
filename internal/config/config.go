// Package config loads the checker's ambient, non-judgement settings:
// which extra built-in globals a host wants in frame 0 beyond
// print/input/len, and whether unknown-identifier diagnostics are
// demoted to hints. None of it changes canAssign/join/isSubtype.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/semantic"
	"github.com/cwbudde/chocotype/internal/types"
)

// BuiltinSignature is an extra builtin's signature as written in YAML:
// an ordered list of parameter type names followed by the return type
// name, e.g. ["object", "<None>"] for a one-argument, None-returning
// function.
type BuiltinSignature []string

// CheckerConfig is the YAML-loadable checker configuration of
// SPEC_FULL.md §3.6.
type CheckerConfig struct {
	ExtraBuiltins                 map[string]BuiltinSignature `yaml:"extraBuiltins"`
	DemoteUnknownIdentifierToHint bool                        `yaml:"demoteUnknownIdentifierToHint"`
}

// hintPrefix marks a demoted diagnostic's message, the same
// convention the teacher's PassContext.HasCriticalErrors used to
// distinguish hints from hard errors.
const hintPrefix = "Hint: "

// Default returns the zero-value configuration: no extra builtins, no
// hint demotion.
func Default() *CheckerConfig {
	return &CheckerConfig{ExtraBuiltins: map[string]BuiltinSignature{}}
}

// Load reads and parses a CheckerConfig from a YAML file at path.
func Load(path string) (*CheckerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSignature converts a BuiltinSignature's type names into a
// FuncType, resolving each against registry. An unrecognized class
// name resolves to object, matching the checker's own best-effort
// fallback for unresolved annotations (§7).
func resolveSignature(registry *types.Registry, sig BuiltinSignature) (*types.FuncType, error) {
	if len(sig) == 0 {
		return nil, fmt.Errorf("config: builtin signature must name at least a return type")
	}
	names := sig[:len(sig)-1]
	params := make([]types.ValueType, len(names))
	for i, name := range names {
		params[i] = resolveTypeName(registry, name)
	}
	return &types.FuncType{Params: params, Return: resolveTypeName(registry, sig[len(sig)-1])}, nil
}

func resolveTypeName(registry *types.Registry, name string) types.ValueType {
	if registry.ClassExists(name) {
		return types.ClassValueType{Name: name}
	}
	return types.Object
}

// Apply registers every extra builtin into checker's global frame.
// Called once, before Checker.Check, so the bindings are visible to
// the whole program.
func (cfg *CheckerConfig) Apply(checker *semantic.Checker) error {
	for name, sig := range cfg.ExtraBuiltins {
		ft, err := resolveSignature(checker.Registry(), sig)
		if err != nil {
			return fmt.Errorf("config: builtin %q: %w", name, err)
		}
		checker.Environment().AddType(name, ft)
	}
	return nil
}

// DemoteHints rewrites every "unknown_identifier"-kind diagnostic's
// message with the hintPrefix when DemoteUnknownIdentifierToHint is
// set. The diagnostic is still recorded and still anchored at its
// node — only its presentation changes (SPEC_FULL.md §3.6).
func (cfg *CheckerConfig) DemoteHints(program *ast.Program) {
	if !cfg.DemoteUnknownIdentifierToHint {
		return
	}
	for i, diag := range program.Errors {
		if diag.Kind == "unknown_identifier" {
			program.Errors[i].Message = hintPrefix + diag.Message
		}
	}
}
