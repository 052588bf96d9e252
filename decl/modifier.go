package decl

import (
	"fmt"
	"strings"
)

type Modifier string

const (
	Public    Modifier = "public"
	Private   Modifier = "private"
	Protected Modifier = "protected"
	Internal  Modifier = "internal"
	Static    Modifier = "static"
	Abstract  Modifier = "abstract"
	Virtual   Modifier = "virtual"
	Override  Modifier = "override"
	Sealed    Modifier = "sealed"
	Readonly  Modifier = "readonly"
	Const     Modifier = "const"
	New       Modifier = "new"
	Async     Modifier = "async"
	Partial   Modifier = "partial"
	Extern    Modifier = "extern"
	Volatile  Modifier = "volatile"
	Unsafe    Modifier = "unsafe"
)

// Kind is the kind of declaration a modifier set is attached to.
type Kind string

const (
	KindClass       Kind = "class"
	KindInterface   Kind = "interface"
	KindField       Kind = "field"
	KindProperty    Kind = "property"
	KindMethod      Kind = "method"
	KindConstructor Kind = "constructor"
)

var access = map[Modifier]bool{
	Public:    true,
	Private:   true,
	Protected: true,
	Internal:  true,
}

var allowed = map[Kind][]Modifier{
	KindClass:       {Public, Private, Protected, Internal, Static, Abstract, Sealed, New, Partial, Unsafe},
	KindInterface:   {Public, Private, Protected, Internal, New, Partial, Unsafe},
	KindField:       {Public, Private, Protected, Internal, Static, Readonly, Const, New, Volatile, Unsafe},
	KindProperty:    {Public, Private, Protected, Internal, Static, Abstract, Virtual, Override, Sealed, New, Extern, Unsafe},
	KindMethod:      {Public, Private, Protected, Internal, Static, Abstract, Virtual, Override, Sealed, New, Async, Partial, Extern, Unsafe},
	KindConstructor: {Public, Private, Protected, Internal, Static, Extern, Unsafe},
}

// conflicts lists pairs that may not appear together on any declaration.
var conflicts = [][2]Modifier{
	{Abstract, Sealed},
	{Abstract, Static},
	{Abstract, Virtual},
	{Abstract, Extern},
	{Static, Virtual},
	{Static, Override},
	{Virtual, Override},
	{Virtual, Sealed},
	{Const, Static},
	{Const, Readonly},
	{Const, Volatile},
	{Readonly, Volatile},
}

// ValidationError reports a modifier combination that is not allowed.
type ValidationError struct {
	Kind      Kind
	Name      string
	Conflicts []Modifier
	Reason    string
}

func (e *ValidationError) Error() string {
	mods := make([]string, len(e.Conflicts))
	for i, m := range e.Conflicts {
		mods[i] = string(m)
	}
	return fmt.Sprintf("decl: %s %s: %s (%s)", e.Kind, e.Name, e.Reason, strings.Join(mods, ", "))
}

// Modifiers is an ordered modifier list; it renders in the order given.
type Modifiers []Modifier

func (m Modifiers) Has(mod Modifier) bool {
	for _, x := range m {
		if x == mod {
			return true
		}
	}
	return false
}

// Access returns the access modifiers in m.
func (m Modifiers) Access() Modifiers {
	var out Modifiers
	for _, x := range m {
		if access[x] {
			out = append(out, x)
		}
	}
	return out
}

func (m Modifiers) String() string {
	parts := make([]string, len(m))
	for i, x := range m {
		parts[i] = string(x)
	}
	return strings.Join(parts, " ")
}

// Validate checks m for a declaration of the given kind and name.
func (m Modifiers) Validate(kind Kind, name string) error {
	fail := func(reason string, mods ...Modifier) error {
		return &ValidationError{Kind: kind, Name: name, Conflicts: mods, Reason: reason}
	}

	seen := make(map[Modifier]bool, len(m))
	for _, x := range m {
		if seen[x] {
			return fail("duplicate modifier", x)
		}
		seen[x] = true
		if !isAllowed(kind, x) {
			return fail("modifier not allowed on a "+string(kind), x)
		}
	}

	if acc := m.Access(); len(acc) > 1 && !compoundAccess(acc) {
		return fail("conflicting access modifiers", acc...)
	}

	for _, pair := range conflicts {
		if seen[pair[0]] && seen[pair[1]] {
			return fail("conflicting modifiers", pair[0], pair[1])
		}
	}

	if seen[Sealed] && kind != KindClass && !seen[Override] {
		return fail("sealed member must also be override", Sealed)
	}
	if (seen[Virtual] || seen[Abstract]) && seen[Private] && kind != KindClass {
		return fail("virtual or abstract member cannot be private", m.Access()...)
	}
	return nil
}

func isAllowed(kind Kind, mod Modifier) bool {
	for _, x := range allowed[kind] {
		if x == mod {
			return true
		}
	}
	return false
}

// compoundAccess reports whether acc is "protected internal" or
// "private protected", in either order.
func compoundAccess(acc Modifiers) bool {
	if len(acc) != 2 {
		return false
	}
	return acc.Has(Protected) && (acc.Has(Internal) || acc.Has(Private))
}

// ParseModifiers splits a space separated modifier list such as
// "public static".
func ParseModifiers(s string) Modifiers {
	var out Modifiers
	for _, f := range strings.Fields(s) {
		out = append(out, Modifier(f))
	}
	return out
}
