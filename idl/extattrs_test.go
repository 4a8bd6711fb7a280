package idl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/servo/webidl/types"
)

func TestExtendedAttributes(t *testing.T) {
	for _, tc := range []struct {
		src  string
		kind ErrorKind
	}{
		{`[Bogus] interface I {};`, UnknownExtendedAttributeError},
		{`interface I { [Bogus] attribute long x; };`, UnknownExtendedAttributeError},
		{`interface I { void f([Bogus] long x); };`, UnknownExtendedAttributeError},
		{`dictionary D { [TreatNullAs=EmptyString] DOMString s; };`, UnknownExtendedAttributeError},
		{`[Constructor] dictionary D {};`, UnknownExtendedAttributeError},
		{`[Constructor] callback interface C { void f(); };`, UnknownExtendedAttributeError},
		{`[NoInterfaceObject] callback interface C { void f(); };`, NoKind},
		{`[Exposed=Window] enum E { "a" };`, UnknownExtendedAttributeError},
		{`[Clamp] typedef long L;`, NoKind},
		{`interface I { [Replaceable] const long x = 1; };`, UnknownExtendedAttributeError},
		{`[Constructor=Foo] interface I {};`, IllegalExtendedAttributeError},
		{`[Exposed] interface I {};`, IllegalExtendedAttributeError},
		{`[Exposed=(Window,Worker)] interface I { [Exposed=Window] attribute long x; };`, NoKind},
		{`[Global=(Window,Worker), SecureContext] interface I {};`, NoKind},
		{`interface I { [Clamp] attribute long x; };`, NoKind},
		{`interface I { [EnforceRange] attribute unsigned long long? x; };`, NoKind},
		{`interface I { [Clamp, EnforceRange] attribute long x; };`, IllegalExtendedAttributeError},
		{`interface I { [Clamp] attribute DOMString x; };`, IllegalExtendedAttributeError},
		{`interface I { void f([EnforceRange] double x); };`, IllegalExtendedAttributeError},
		{`dictionary D { [Clamp] octet o; };`, NoKind},
		{`dictionary D { [EnforceRange] boolean b; };`, IllegalExtendedAttributeError},
		{`interface I { void f([TreatNullAs=EmptyString] DOMString s); };`, NoKind},
		{`interface I { void f([TreatNullAs=Null] DOMString s); };`, IllegalExtendedAttributeError},
		{`interface I { void f([TreatNullAs=EmptyString] long s); };`, IllegalExtendedAttributeError},
		{`interface J { attribute long y; }; interface I { [PutForwards=y] readonly attribute J j; };`, NoKind},
		{`interface J { attribute long y; }; interface I { [PutForwards=y] attribute J j; };`, IllegalExtendedAttributeError},
		{`interface I { [Replaceable] attribute long x; };`, IllegalExtendedAttributeError},
		{`interface J {}; [ArrayClass] interface I : J {};`, IllegalExtendedAttributeError},
		{`[ArrayClass] interface I {};`, NoKind},
		{`interface I { [Throws, NewObject] I clone(); };`, NoKind},
		{`[Constructor([Clamp] long x)] interface I {};`, NoKind},
		{`[Constructor([Bogus] long x)] interface I {};`, UnknownExtendedAttributeError},
		{`callback C = void ([Clamp] DOMString s);`, IllegalExtendedAttributeError},
		{`[Pref="dom.foo.enabled"] interface I {};`, NoKind},
		{`interface mixin M { [Bogus] void f(); };`, UnknownExtendedAttributeError},
		{`[SecureContext] interface mixin M {};`, NoKind},
	} {
		_, err := finish(t, tc.src)
		if tc.kind == NoKind {
			require.NoError(t, err, tc.src)
		} else {
			requireKind(t, tc.kind, err)
		}
	}
}

func TestConstructors(t *testing.T) {
	defs := finishOK(t, `
[Constructor, Constructor(long w, optional long h), NamedConstructor=Image(long w)]
interface I {};
`)
	i := defs[0].(*Interface)
	require.Len(t, i.Constructors, 2)
	require.Equal(t, types.Named(types.Interface, "I"), i.Constructors[0].Return)
	require.Empty(t, i.Constructors[0].Args)
	require.Len(t, i.Constructors[1].Args, 2)
	require.True(t, i.Constructors[1].Args[1].Optional)

	require.Len(t, i.NamedConstructors, 1)
	require.Equal(t, "Image", i.NamedConstructors[0].Name)
	require.Equal(t, types.Named(types.Interface, "I"), i.NamedConstructors[0].Signature.Return)
	require.Equal(t, "w", i.NamedConstructors[0].Signature.Args[0].Name)
}

func TestAmbiguousConstructors(t *testing.T) {
	_, err := finish(t, `[Constructor(long x), Constructor(short y)] interface I {};`)
	requireKind(t, AmbiguousOverloadError, err)

	_, err = finish(t, `[NamedConstructor=A(long x), NamedConstructor=A(short y)] interface I {};`)
	requireKind(t, AmbiguousOverloadError, err)

	finishOK(t, `[NamedConstructor=A(long x), NamedConstructor=B(short y)] interface I {};`)
}

func TestCustomAttributeTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Attributes["ChromeConstructor"] = AttributeRule{Targets: TargetInterface, Shapes: ShapeNone}
	p := NewParser(cfg)
	require.NoError(t, p.Parse(`[ChromeConstructor] interface I {};`))
	_, err := p.Finish()
	require.NoError(t, err)

	// The default table is not affected.
	_, err = finish(t, `[ChromeConstructor] interface I {};`)
	requireKind(t, UnknownExtendedAttributeError, err)
}

func TestPartialAttributePolicy(t *testing.T) {
	const src = `[Exposed=Window] interface A {}; [SecureContext] partial interface A {};`

	defs := finishOK(t, src)
	a := defs[0].(*Interface)
	require.True(t, a.ExtAttrs.Has("Exposed"))
	require.True(t, a.ExtAttrs.Has("SecureContext"))

	cfg := DefaultConfig()
	cfg.PartialAttributes = RejectPartialAttributes
	p := NewParser(cfg)
	require.NoError(t, p.Parse(src))
	_, err := p.Finish()
	requireKind(t, IllegalExtendedAttributeError, err)

	p.Reset()
	require.NoError(t, p.Parse(`[Exposed=Window] interface A {}; partial interface A { attribute long x; };`))
	_, err = p.Finish()
	require.NoError(t, err)
}

func TestExtendedAttributeShape(t *testing.T) {
	for shape, a := range map[Shape]*ExtendedAttribute{
		ShapeNone:         {Name: "A"},
		ShapeIdent:        {Name: "A", Value: "B"},
		ShapeIdentList:    {Name: "A", Values: []string{"B", "C"}},
		ShapeArgList:      {Name: "A", HasArgs: true},
		ShapeNamedArgList: {Name: "A", Value: "B", HasArgs: true},
	} {
		require.Equal(t, shape, a.Shape(), "%s", shape)
	}
	l := ExtendedAttributes{{Name: "A", Value: "1"}, {Name: "B"}, {Name: "A", Value: "2"}}
	require.Equal(t, "1", l.Get("A").Value)
	require.Nil(t, l.Get("C"))
	require.True(t, l.Has("B"))
	require.Len(t, l.All("A"), 2)
}
