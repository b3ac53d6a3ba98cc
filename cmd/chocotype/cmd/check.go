package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/chocotype/internal/ast"
	"github.com/cwbudde/chocotype/internal/astjson"
	"github.com/cwbudde/chocotype/internal/config"
	"github.com/cwbudde/chocotype/internal/errors"
	"github.com/cwbudde/chocotype/internal/semantic"
	"github.com/cwbudde/chocotype/internal/semantic/passes"
)

var (
	jsonOutput bool
	configPath string
	queryPath  string
	setPatches []string
)

var checkCmd = &cobra.Command{
	Use:   "check <file.json>",
	Short: "Type-check a JSON-encoded AST",
	Long: `check decodes a Program from a JSON AST file (or stdin, with "-"),
runs the declaration pass and judgement walker over it, and reports the
result.

By default it prints a human-readable diagnostic report and exits
non-zero if any diagnostics were raised. With --json it instead prints
the annotated tree, re-encoded in the same stable shape it was read in.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the annotated AST as JSON instead of a diagnostic report")
	checkCmd.Flags().StringVar(&configPath, "config", "", "path to a CheckerConfig YAML file")
	checkCmd.Flags().StringVar(&queryPath, "query", "", "gjson path to query in the re-encoded, annotated tree")
	checkCmd.Flags().StringArrayVar(&setPatches, "set", nil, "path=value to patch into the input AST before checking (repeatable), e.g. --set declarations.0.value.value=7")
}

func runCheck(_ *cobra.Command, args []string) error {
	data, filename, err := readInput(args[0])
	if err != nil {
		return err
	}

	for _, patch := range setPatches {
		data, err = applySetPatch(data, patch)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	program, err := astjson.Decode(data)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	ctx := semantic.NewPassContext()
	if err := cfg.Apply(ctx.Checker); err != nil {
		return fmt.Errorf("check: %w", err)
	}

	pm := semantic.NewPassManager(passes.NewDeclarationPass(), passes.NewValidationPass())
	if err := pm.RunAll(program, ctx); err != nil {
		return fmt.Errorf("check: internal error: %w", err)
	}

	cfg.DemoteHints(program)

	encoded, err := astjson.Encode(program)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	if queryPath != "" {
		result, err := astjson.Query(encoded, queryPath)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		fmt.Println(result)
		return nil
	}

	if jsonOutput {
		fmt.Println(string(encoded))
		return checkExitStatus(program)
	}

	compilerErrors := errors.FromDiagnostics(program.Errors, "", filename)
	if len(compilerErrors) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatErrors(compilerErrors, false))
	} else if verbose {
		fmt.Println("no diagnostics")
	}

	return checkExitStatus(program)
}

// applySetPatch applies one "path=value" patch to data via
// astjson.Set. value is parsed as JSON when possible (so --set
// x=7 or --set x=true patch a number/bool rather than a string),
// falling back to the literal string otherwise.
func applySetPatch(data []byte, patch string) ([]byte, error) {
	path, raw, ok := strings.Cut(patch, "=")
	if !ok {
		return nil, fmt.Errorf("--set %q: expected path=value", patch)
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}
	return astjson.Set(data, path, value)
}

func checkExitStatus(program *ast.Program) error {
	if len(program.Errors) > 0 {
		return fmt.Errorf("checking failed")
	}
	return nil
}

func readInput(path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("check: reading stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("check: reading %s: %w", path, err)
	}
	return data, path, nil
}
