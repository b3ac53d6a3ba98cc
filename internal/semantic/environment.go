package semantic

import "github.com/cwbudde/chocotype/internal/types"

// frame is a single lexical scope: a flat name-to-symbol-type map.
type frame map[string]types.SymbolType

// Environment is the scope stack of §3.3: a non-empty ordered sequence
// of frames cooperating with a class registry. Frame 0 is the global
// frame and is seeded with the built-in functions print, input, and
// len; the top frame is the current (innermost) scope. Class bodies do
// not open a frame — class members live in the registry, not here.
type Environment struct {
	registry *types.Registry
	frames   []frame
}

// NewEnvironment creates an Environment over registry with a single,
// seeded global frame.
func NewEnvironment(registry *types.Registry) *Environment {
	global := frame{
		"print": &types.FuncType{Params: []types.ValueType{types.Object}, Return: types.None},
		"input": &types.FuncType{Params: nil, Return: types.Str},
		"len":   &types.FuncType{Params: []types.ValueType{types.Object}, Return: types.Int},
	}
	return &Environment{registry: registry, frames: []frame{global}}
}

// Registry returns the class registry backing getMethod/getAttr lookups.
func (e *Environment) Registry() *types.Registry { return e.registry }

// EnterScope pushes a new, empty frame. Called on entering a function body.
func (e *Environment) EnterScope() {
	e.frames = append(e.frames, frame{})
}

// ExitScope pops the current frame. It never pops frame 0 — calling it
// with only the global frame open is a no-op.
func (e *Environment) ExitScope() {
	if len(e.frames) <= 1 {
		return
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// AddType binds name to t in the current (top) frame, overwriting any
// existing binding. Callers that must reject redeclaration check
// DefinedInCurrent first.
func (e *Environment) AddType(name string, t types.SymbolType) {
	e.frames[len(e.frames)-1][name] = t
}

// DefinedInCurrent reports whether name is bound in the current frame.
func (e *Environment) DefinedInCurrent(name string) bool {
	_, ok := e.frames[len(e.frames)-1][name]
	return ok
}

// LookupCurrent resolves name in the current frame only.
func (e *Environment) LookupCurrent(name string) (types.SymbolType, bool) {
	t, ok := e.frames[len(e.frames)-1][name]
	return t, ok
}

// LookupAny scans every frame top to bottom, including the global
// frame; the first hit wins.
func (e *Environment) LookupAny(name string) (types.SymbolType, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if t, ok := e.frames[i][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// LookupNonlocal scans frames [1 .. top-1] top to bottom, skipping both
// the global frame and the current frame.
func (e *Environment) LookupNonlocal(name string) (types.SymbolType, bool) {
	for i := len(e.frames) - 2; i >= 1; i-- {
		if t, ok := e.frames[i][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// LookupGlobal resolves name in frame 0 only.
func (e *Environment) LookupGlobal(name string) (types.SymbolType, bool) {
	t, ok := e.frames[0][name]
	return t, ok
}

// InFunction reports whether any function scope is currently open,
// i.e. whether the declaration/judgement code is running inside a
// FuncDef body rather than at program or class-attribute scope.
func (e *Environment) InFunction() bool {
	return len(e.frames) > 1
}

// ClassExists delegates to the class registry.
func (e *Environment) ClassExists(name string) bool {
	return e.registry.ClassExists(name)
}

// GetMethod delegates to the class registry.
func (e *Environment) GetMethod(class, name string) (*types.FuncType, bool) {
	return e.registry.GetMethod(class, name)
}

// GetAttr delegates to the class registry.
func (e *Environment) GetAttr(class, name string) (types.ValueType, bool) {
	return e.registry.GetAttr(class, name)
}

// GetAttrOrMethod delegates to the class registry.
func (e *Environment) GetAttrOrMethod(class, name string) (types.SymbolType, bool) {
	return e.registry.GetAttrOrMethod(class, name)
}
