package idl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecursiveDictionaries(t *testing.T) {
	for name, src := range map[string]string{
		"direct":         `dictionary Foo { Foo foo; };`,
		"nested":         `dictionary Foo { sequence<sequence<sequence<Foo>>> c; };`,
		"union arm":      `dictionary Foo { (Foo or long) u; };`,
		"record":         `dictionary Foo { record<DOMString, Foo> r; };`,
		"frozen array":   `dictionary Foo { FrozenArray<Foo> f; };`,
		"nullable union": `dictionary Foo { (sequence<Foo> or long)? u; };`,
		"through members": `
dictionary Foo { Bar b; };
dictionary Bar { Foo f; };`,
		"through ancestors": `
dictionary Foo1 : Foo2 {};
dictionary Foo2 : Foo3 {};
dictionary Foo3 { Foo d; };
dictionary Foo { Foo1 c; };`,
		"member of inherited type": `
dictionary Base { Child c; };
dictionary Child : Base {};`,
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			_, err := finish(t, src)
			requireKind(t, RecursiveDictionaryError, err)
		})
	}
}

func TestNonRecursiveDictionaries(t *testing.T) {
	finishOK(t, `
dictionary A { long x = 3; };
dictionary B : A { A a; sequence<A> list; record<DOMString, A> byName; };
dictionary C { B b; (A or long) u; };
`)
}

func TestNullableDictionary(t *testing.T) {
	_, err := finish(t, `dictionary A {}; dictionary Bar { A? d; };`)
	requireKind(t, IllegalNullableError, err)

	_, err = finish(t, `dictionary A {}; interface I { void f(optional A? a); };`)
	requireKind(t, IllegalNullableError, err)
}

func TestDictionaryMemberDuplicates(t *testing.T) {
	for name, src := range map[string]string{
		"same dictionary":  `dictionary A { long x; DOMString x; };`,
		"parent":           `dictionary A { long x; }; dictionary B : A { long x; };`,
		"grandparent":      `dictionary A { long x; }; dictionary B : A {}; dictionary C : B { long x; };`,
		"partial and base": `dictionary A { long x; }; partial dictionary A { long x; };`,
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			_, err := finish(t, src)
			requireKind(t, DuplicateMemberError, err)
		})
	}
}

func TestDictionaryDefaults(t *testing.T) {
	for _, tc := range []struct {
		src  string
		kind ErrorKind
	}{
		{`dictionary A { long x = 1; };`, NoKind},
		{`dictionary A { required long x; };`, NoKind},
		{`dictionary A { required long x = 1; };`, IllegalDefaultValueError},
		{`dictionary A { DOMString s = "a"; };`, NoKind},
		{`dictionary A { DOMString s = 1; };`, IllegalDefaultValueError},
		{`dictionary A { long? x = null; };`, NoKind},
		{`dictionary A { long x = null; };`, IllegalDefaultValueError},
		{`dictionary A { sequence<long> s = []; };`, NoKind},
		{`dictionary A { long s = []; };`, IllegalDefaultValueError},
		{`dictionary B {}; dictionary A { B b = {}; };`, NoKind},
		{`enum E { "a", "b" }; dictionary A { E e = "b"; };`, NoKind},
		{`enum E { "a", "b" }; dictionary A { E e = "c"; };`, IllegalDefaultValueError},
		{`dictionary A { boolean b = true; };`, NoKind},
		{`dictionary A { boolean b = 0; };`, IllegalDefaultValueError},
		{`dictionary A { octet o = 255; };`, NoKind},
		{`dictionary A { octet o = 256; };`, IllegalDefaultValueError},
		{`dictionary A { (long or DOMString) u = "a"; };`, NoKind},
		{`dictionary A { (long or DOMString) u = true; };`, IllegalDefaultValueError},
		{`dictionary A { any a = null; };`, NoKind},
	} {
		_, err := finish(t, tc.src)
		if tc.kind == NoKind {
			require.NoError(t, err, tc.src)
		} else {
			requireKind(t, tc.kind, err)
		}
	}
}

func TestFloatDefaults(t *testing.T) {
	for _, typ := range []string{"float", "double"} {
		for _, val := range []string{"Infinity", "-Infinity", "NaN"} {
			src := "dictionary A { unrestricted " + typ + " f = " + val + "; };"
			finishOK(t, src)

			src = "dictionary A { " + typ + " f = " + val + "; };"
			_, err := finish(t, src)
			requireKind(t, IllegalDefaultValueError, err)

			src = "interface I { void f(optional " + typ + " f = " + val + "); };"
			_, err = finish(t, src)
			requireKind(t, IllegalDefaultValueError, err)

			src = "interface I { const unrestricted " + typ + " C = " + val + "; };"
			finishOK(t, src)
		}
		finishOK(t, "dictionary A { "+typ+" f = 1.5; "+typ+" g = 2; };")
	}
}
