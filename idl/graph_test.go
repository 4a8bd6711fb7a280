package idl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/servo/webidl/types"
)

func TestInheritanceCycles(t *testing.T) {
	for name, src := range map[string]string{
		"self":                 `interface A : A {};`,
		"two interfaces":       `interface A : B {}; interface B : A {};`,
		"three interfaces":     `interface A : C {}; interface C : B {}; interface B : A {};`,
		"two dictionaries":     `dictionary A : B {}; dictionary B : A {};`,
		"three dictionaries":   `dictionary A : C {}; dictionary C : B {}; dictionary B : A {};`,
		"cycle below a root":   `interface R {}; interface X : A {}; interface A : B {}; interface B : A {};`,
		"callback interfaces":  `callback interface A : B { void f(); }; callback interface B : A { void g(); };`,
		"dictionary self root": `dictionary A : A {};`,
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			_, err := finish(t, src)
			requireKind(t, InheritanceCycleError, err)
		})
	}
}

func TestInheritanceCycleNames(t *testing.T) {
	_, err := finish(t, `interface A : B {}; interface B : A {};`)
	requireKind(t, InheritanceCycleError, err)
	require.ElementsMatch(t, []string{"::A", "::B"}, err.(*Error).Names)
}

func TestImplementsCycles(t *testing.T) {
	for name, src := range map[string]string{
		"mutual":            `interface A {}; interface B {}; A implements B; B implements A;`,
		"self":              `interface A {}; A implements A;`,
		"through a parent":  `interface A {}; interface B : A {}; A implements B;`,
		"through ancestors": `interface A {}; interface B : A {}; interface C : B {}; interface D {}; D implements C; A implements D;`,
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			_, err := finish(t, src)
			requireKind(t, ImplementsCycleError, err)
		})
	}
}

func TestIncludesAndImplements(t *testing.T) {
	defs := finishOK(t, `
interface mixin M { attribute long m; };
interface mixin N { void n(); };
interface J { attribute long j; };
interface A {};
A includes M;
A implements J;
A includes N;
interface B : A {};
B includes M;
`)
	a := find(defs, "A").(*Interface)
	require.Equal(t, []string{"M", "N"}, a.Includes)
	require.Equal(t, []string{"J"}, a.Implements)
	b := find(defs, "B").(*Interface)
	require.Equal(t, []string{"M"}, b.Includes)
}

func TestIllegalRelations(t *testing.T) {
	for name, tc := range map[string]struct {
		src  string
		kind ErrorKind
	}{
		"interface inherits dictionary":    {`dictionary D {}; interface A : D {};`, IllegalInheritanceError},
		"interface inherits external":      {`interface X; interface A : X {};`, IllegalInheritanceError},
		"dictionary inherits interface":    {`interface I {}; dictionary D : I {};`, IllegalInheritanceError},
		"interface inherits callback":      {`callback interface C { void f(); }; interface A : C {};`, IllegalInheritanceError},
		"callback inherits interface":      {`interface A {}; callback interface C : A { void f(); };`, IllegalInheritanceError},
		"includes interface":               {`interface A {}; interface B {}; A includes B;`, IllegalInheritanceError},
		"mixin includes mixin":             {`interface mixin M {}; interface mixin N {}; M includes N;`, IllegalInheritanceError},
		"implements mixin":                 {`interface mixin M {}; interface A {}; A implements M;`, IllegalInheritanceError},
		"dictionary includes":              {`dictionary D {}; interface mixin M {}; D includes M;`, IllegalInheritanceError},
		"unknown parent":                   {`interface A : Missing {};`, UnresolvedIdentifierError},
		"unknown dictionary parent":        {`dictionary A : Missing {};`, UnresolvedIdentifierError},
		"unknown mixin":                    {`interface A {}; A includes Missing;`, UnresolvedIdentifierError},
		"unknown includer":                 {`interface mixin M {}; Missing includes M;`, UnresolvedIdentifierError},
		"unknown type":                     {`interface A { attribute Missing m; };`, UnresolvedIdentifierError},
		"unknown argument type":            {`interface A { void f(Missing m); };`, UnresolvedIdentifierError},
		"unknown constructor argument":     {`[Constructor(Missing m)] interface A {};`, UnresolvedIdentifierError},
		"self referential typedef":         {`typedef sequence<T> T;`, UnresolvedIdentifierError},
		"mutually referential typedefs":    {`typedef sequence<B> A; typedef (A or long) B;`, UnresolvedIdentifierError},
		"mixin used as a type":             {`interface mixin M {}; interface A { void f(M m); };`, IllegalTypeError},
		"unknown callback return type":     {`callback C = Missing ();`, UnresolvedIdentifierError},
		"unknown dictionary member type":   {`dictionary D { Missing m; };`, UnresolvedIdentifierError},
		"unknown iterable type":            {`interface A { iterable<Missing>; };`, UnresolvedIdentifierError},
		"unknown sequence element in args": {`interface A { void f(sequence<Missing> m); };`, UnresolvedIdentifierError},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			_, err := finish(t, tc.src)
			requireKind(t, tc.kind, err)
		})
	}
}

func TestResolvedTypes(t *testing.T) {
	defs := finishOK(t, `
interface X;
dictionary D {};
enum E { "a" };
callback C = void (long x);
callback interface CI { void f(); };
interface I {};
typedef (long or DOMString) LS;
typedef sequence<LS> LSList;
interface T {
  void i(I v);
  void ci(CI v);
  void c(C v);
  void e(E v);
  void d(optional D v);
  void x(X v);
  void ls(LS v);
  void list(LSList v);
  void n(I? v);
};
`)
	tt := find(defs, "T").(*Interface)
	arg := func(i int) *types.Type { return tt.Members[i].(*Operation).Signature.Args[0].Type }

	require.Equal(t, types.Named(types.Interface, "I"), arg(0))
	require.Equal(t, types.Named(types.CallbackInterface, "CI"), arg(1))
	require.Equal(t, types.Named(types.Callback, "C"), arg(2))
	require.Equal(t, types.Named(types.Enum, "E"), arg(3))
	require.Equal(t, types.Named(types.Dictionary, "D"), arg(4))
	require.True(t, arg(5).External)
	require.Equal(t, types.Interface, arg(5).Kind)
	require.Equal(t, "(long or DOMString)", arg(6).String())
	require.Equal(t, types.Union, arg(6).Kind)
	require.Equal(t, "sequence<(long or DOMString)>", arg(7).String())
	require.Equal(t, types.NullableOf(types.Named(types.Interface, "I")), arg(8))
}

func TestRelated(t *testing.T) {
	defs := finishOK(t, `
interface Ancestor {};
interface Iface : Ancestor {};
interface Implemented {};
interface Unrelated {};
Iface implements Implemented;
`)
	// Finish has already recorded the implements statement on Iface.
	g := newGraph(defs)
	require.True(t, g.Related("Iface", "Ancestor"))
	require.True(t, g.Related("Ancestor", "Iface"))
	require.True(t, g.Related("Iface", "Implemented"))
	require.True(t, g.Related("Ancestor", "Implemented"))
	require.False(t, g.Related("Unrelated", "Iface"))
	require.False(t, g.Related("Unrelated", "Ancestor"))
}

func TestChainCycle(t *testing.T) {
	parents := map[string]string{"A": "B", "B": "C", "C": "B"}
	cycle := chainCycle("A", func(n string) string { return parents[n] })
	require.Equal(t, []string{"B", "C"}, cycle)
	require.Equal(t, "B -> C -> B", cycleString(cycle))
	require.Nil(t, chainCycle("X", func(string) string { return "" }))
}
