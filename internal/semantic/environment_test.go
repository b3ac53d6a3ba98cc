package semantic

import (
	"testing"

	"github.com/cwbudde/chocotype/internal/types"
)

func TestNewEnvironmentSeedsBuiltins(t *testing.T) {
	env := NewEnvironment(types.NewRegistry())
	for _, name := range []string{"print", "input", "len"} {
		if _, ok := env.LookupGlobal(name); !ok {
			t.Errorf("global frame missing built-in %q", name)
		}
	}
}

func TestExitScopeNeverPopsGlobal(t *testing.T) {
	env := NewEnvironment(types.NewRegistry())
	env.ExitScope()
	if _, ok := env.LookupGlobal("print"); !ok {
		t.Fatal("ExitScope on the global-only stack must not remove the global frame")
	}
}

func TestLookupVariants(t *testing.T) {
	env := NewEnvironment(types.NewRegistry())
	env.AddType("g", types.Int)

	env.EnterScope() // enclosing function
	env.AddType("e", types.Str)

	env.EnterScope() // current (innermost) function
	env.AddType("c", types.Bool)

	if !env.DefinedInCurrent("c") {
		t.Error("c should be defined in current frame")
	}
	if env.DefinedInCurrent("e") {
		t.Error("e should not be defined in current frame")
	}

	if _, ok := env.LookupNonlocal("c"); ok {
		t.Error("lookupNonlocal must skip the current frame")
	}
	if _, ok := env.LookupNonlocal("g"); ok {
		t.Error("lookupNonlocal must skip the global frame")
	}
	if _, ok := env.LookupNonlocal("e"); !ok {
		t.Error("lookupNonlocal should find e in the enclosing function frame")
	}

	if _, ok := env.LookupGlobal("c"); ok {
		t.Error("lookupGlobal must not see the current frame")
	}
	if _, ok := env.LookupGlobal("g"); !ok {
		t.Error("lookupGlobal should find g")
	}

	for _, name := range []string{"g", "e", "c"} {
		if _, ok := env.LookupAny(name); !ok {
			t.Errorf("lookupAny should find %q across all frames", name)
		}
	}
}

func TestLookupAnyFirstHitWins(t *testing.T) {
	env := NewEnvironment(types.NewRegistry())
	env.AddType("x", types.Int)
	env.EnterScope()
	env.AddType("x", types.Str)

	got, ok := env.LookupAny("x")
	if !ok {
		t.Fatal("expected a hit for x")
	}
	if !got.(types.ValueType).Equals(types.Str) {
		t.Errorf("LookupAny(x) = %v, want str (the innermost binding)", got)
	}
}

func TestInFunction(t *testing.T) {
	env := NewEnvironment(types.NewRegistry())
	if env.InFunction() {
		t.Error("a fresh environment has only the global frame open")
	}
	env.EnterScope()
	if !env.InFunction() {
		t.Error("after EnterScope, InFunction should be true")
	}
	env.ExitScope()
	if env.InFunction() {
		t.Error("after matching ExitScope, InFunction should be false again")
	}
}
