package types

// Registry is the class registry of §3.2: a partial function from class
// name to superclass name, plus a per-class mapping from member name to
// symbol type. It is also the "dynamic class hierarchy" the lattice
// operations (IsSubClass, IsSubtype, CanAssign, Join) are defined over, so
// the type lattice and the class registry are the same value.
type Registry struct {
	super   map[string]string // child -> parent; object maps to ""
	members map[string]map[string]SymbolType
	order   []string // declaration order, for deterministic iteration
}

// NewRegistry creates a Registry seeded with the built-in hierarchy:
// object at the root, and int/bool/str/<None>/<Empty> as direct children
// of object, each carrying an __init__ : Func([], T) entry.
func NewRegistry() *Registry {
	r := &Registry{
		super:   make(map[string]string),
		members: make(map[string]map[string]SymbolType),
	}
	r.declare(ObjectClassName, "")
	r.members[ObjectClassName]["__init__"] = NewInitType(ObjectClassName)
	for _, name := range []string{IntClassName, BoolClassName, StrClassName, NoneClassName, EmptyClassName} {
		r.declare(name, ObjectClassName)
		r.members[name]["__init__"] = NewInitType(name)
	}
	return r
}

// declare creates an empty registry entry for name with the given parent.
// The root class (object) is declared with an empty parent string.
func (r *Registry) declare(name, parent string) {
	r.super[name] = parent
	r.members[name] = make(map[string]SymbolType)
	r.order = append(r.order, name)
}

// ClassExists reports whether name has been declared in the registry.
func (r *Registry) ClassExists(name string) bool {
	_, ok := r.super[name]
	return ok
}

// SuperOf returns the declared superclass of name and true, or ("", false)
// if name is not registered or is the root class (object has no super).
func (r *Registry) SuperOf(name string) (string, bool) {
	parent, ok := r.super[name]
	if !ok || parent == "" {
		return "", false
	}
	return parent, true
}

// DeclareClass registers a new, empty class entry with the given
// superclass. It does not validate the superclass — the declaration pass
// (§4.3) performs that validation before calling DeclareClass, since the
// diagnostics for "unknown superclass" and "illegal superclass" differ.
// DeclareClass returns false without effect if name is already registered.
func (r *Registry) DeclareClass(name, super string) bool {
	if r.ClassExists(name) {
		return false
	}
	r.declare(name, super)
	return true
}

// HasOwnMember reports whether class declares member directly (not
// inherited).
func (r *Registry) HasOwnMember(class, member string) bool {
	m, ok := r.members[class]
	if !ok {
		return false
	}
	_, ok = m[member]
	return ok
}

// SetMember binds member to t in class's own member map. It returns false
// without effect if class is not registered or member is already bound in
// class's own map (callers must check HasOwnMember/inheritance rules
// themselves for the richer duplicate-vs-shadow diagnostics of §4.3).
func (r *Registry) SetMember(class, member string, t SymbolType) bool {
	m, ok := r.members[class]
	if !ok {
		return false
	}
	if _, exists := m[member]; exists {
		return false
	}
	m[member] = t
	return true
}

// OwnMember returns the symbol type class declares directly for member,
// ignoring inheritance.
func (r *Registry) OwnMember(class, member string) (SymbolType, bool) {
	m, ok := r.members[class]
	if !ok {
		return nil, false
	}
	t, ok := m[member]
	return t, ok
}

// GetMethod walks the superclass chain of class starting at class itself,
// returning the first member named methodName whose symbol type is a
// *FuncType. The walk stops at the nearest class declaring methodName:
// if that member is a value type, GetMethod reports no method rather
// than continuing to ancestors.
func (r *Registry) GetMethod(class, methodName string) (*FuncType, bool) {
	for cur := class; cur != ""; {
		if m, ok := r.members[cur]; ok {
			if t, ok := m[methodName]; ok {
				ft, isFunc := t.(*FuncType)
				return ft, isFunc
			}
		}
		parent, ok := r.SuperOf(cur)
		if !ok {
			break
		}
		cur = parent
	}
	return nil, false
}

// GetAttr walks the superclass chain of class, returning the first member
// named attrName whose symbol type is a ValueType. See GetMethod for the
// shadowing rule.
func (r *Registry) GetAttr(class, attrName string) (ValueType, bool) {
	for cur := class; cur != ""; {
		if m, ok := r.members[cur]; ok {
			if t, ok := m[attrName]; ok {
				vt, isValue := t.(ValueType)
				return vt, isValue
			}
		}
		parent, ok := r.SuperOf(cur)
		if !ok {
			break
		}
		cur = parent
	}
	return nil, false
}

// GetAttrOrMethod walks the superclass chain of class, returning the
// first member named name regardless of kind.
func (r *Registry) GetAttrOrMethod(class, name string) (SymbolType, bool) {
	for cur := class; cur != ""; {
		if m, ok := r.members[cur]; ok {
			if t, ok := m[name]; ok {
				return t, true
			}
		}
		parent, ok := r.SuperOf(cur)
		if !ok {
			break
		}
		cur = parent
	}
	return nil, false
}

// IsSubClass reports whether a is the same class as b or a (possibly
// transitive) subclass of b, walking super from a. Halts because the
// registry's hierarchy is required to be acyclic (§3.2).
func (r *Registry) IsSubClass(a, b string) bool {
	for cur := a; ; {
		if cur == b {
			return true
		}
		parent, ok := r.SuperOf(cur)
		if !ok {
			return false
		}
		cur = parent
	}
}

// IsSubtype reports whether a is a subtype of b (§4.1). object is the
// lattice top; ListValueType is invariant (falls through to structural
// equality).
func (r *Registry) IsSubtype(a, b ValueType) bool {
	if bc, ok := b.(ClassValueType); ok && bc.Name == ObjectClassName {
		return true
	}
	ac, aIsClass := a.(ClassValueType)
	bc, bIsClass := b.(ClassValueType)
	if aIsClass && bIsClass {
		return r.IsSubClass(ac.Name, bc.Name)
	}
	return a.Equals(b)
}

// CanAssign reports whether a value of type a may flow into a hole
// requiring type b (§4.1). This is strictly wider than IsSubtype due to
// the None/Empty-list accommodations.
func (r *Registry) CanAssign(a, b ValueType) bool {
	if r.IsSubtype(a, b) {
		return true
	}
	if ac, ok := a.(ClassValueType); ok && ac.Name == NoneClassName {
		if bc, ok := b.(ClassValueType); ok {
			switch bc.Name {
			case IntClassName, BoolClassName, StrClassName:
				return false
			}
		}
		return true
	}
	if ac, ok := a.(ClassValueType); ok && ac.Name == EmptyClassName {
		if _, ok := b.(ListValueType); ok {
			return true
		}
	}
	if al, ok := a.(ListValueType); ok {
		if bl, ok := b.(ListValueType); ok {
			if ac, ok := al.Element.(ClassValueType); ok && ac.Name == NoneClassName {
				return r.CanAssign(al.Element, bl.Element)
			}
		}
	}
	return false
}

// Join computes the least upper bound of a and b over the class lattice
// (§4.1). The asymmetric-list case (exactly one of a, b a ListValueType)
// is resolved to object before the ancestor-path computation, which
// otherwise assumes both operands are ClassValueType.
func (r *Registry) Join(a, b ValueType) ValueType {
	if r.CanAssign(a, b) {
		return b
	}
	if r.CanAssign(b, a) {
		return a
	}
	al, aIsList := a.(ListValueType)
	bl, bIsList := b.(ListValueType)
	if aIsList && bIsList {
		return ListValueType{Element: r.Join(al.Element, bl.Element)}
	}
	if aIsList != bIsList {
		return Object
	}
	ac, _ := a.(ClassValueType)
	bc, _ := b.(ClassValueType)
	aPath := r.rootPath(ac.Name)
	bPath := r.rootPath(bc.Name)
	last := ObjectClassName
	for i := 0; i < len(aPath) && i < len(bPath); i++ {
		if aPath[i] != bPath[i] {
			break
		}
		last = aPath[i]
	}
	return ClassValueType{Name: last}
}

// rootPath returns the chain of class names from object down to name,
// inclusive, i.e. the reverse of the walk from name up to object. If name
// is not registered, the path is just [name], which shares no prefix with
// a registered class's path, so Join falls back to object.
func (r *Registry) rootPath(name string) []string {
	var up []string
	cur := name
	for {
		up = append(up, cur)
		parent, ok := r.SuperOf(cur)
		if !ok {
			break
		}
		cur = parent
	}
	// up is [name, ..., object]; reverse it.
	for i, j := 0, len(up)-1; i < j; i, j = i+1, j-1 {
		up[i], up[j] = up[j], up[i]
	}
	return up
}
