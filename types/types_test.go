package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// related pairs interfaces that share a descendant.
type related map[[2]string]bool

func (r related) Related(a, b string) bool {
	return r[[2]string{a, b}] || r[[2]string{b, a}]
}

func universe() []*Type {
	iface := Named(Interface, "Node")
	dict := Named(Dictionary, "Init")
	return []*Type{
		Builtin(Boolean),
		NullableOf(Builtin(Boolean)),
		Builtin(Byte),
		Builtin(Long),
		NullableOf(Builtin(Long)),
		Builtin(UnrestrictedDouble),
		Builtin(DOMString),
		Builtin(ByteString),
		Builtin(USVString),
		Named(Enum, "Mode"),
		Builtin(Object),
		iface,
		NullableOf(iface),
		Named(Interface, "Element"),
		Named(Interface, "Window"),
		Named(CallbackInterface, "Listener"),
		NullableOf(Named(CallbackInterface, "Listener")),
		Named(CallbackInterface, "Listener2"),
		dict,
		Named(Dictionary, "Init2"),
		Named(Callback, "Fn"),
		SequenceOf(Builtin(Long)),
		SequenceOf(Builtin(Short)),
		FrozenArrayOf(Builtin(DOMString)),
		RecordOf(Builtin(DOMString), Builtin(Long)),
		RecordOf(nil, dict),
		Builtin(Date),
		NullableOf(Builtin(Date)),
		Builtin(Any),
		PromiseOf(Builtin(Any)),
		NullableOf(PromiseOf(Builtin(Any))),
		Builtin(ArrayBuffer),
		Builtin(ArrayBufferView),
		Builtin(SharedArrayBuffer),
		Builtin(DataView),
		Builtin(Uint8Array),
		Builtin(Float32Array),
		UnionOf(Builtin(Long), Named(Callback, "Fn")),
		UnionOf(Builtin(Long), dict),
		UnionOf(Builtin(DOMString), NullableOf(iface)),
	}
}

func TestDistinguishableSymmetric(t *testing.T) {
	h := related{{"Node", "Element"}: true}
	all := universe()
	for _, a := range all {
		for _, b := range all {
			require.Equal(t, Distinguishable(a, b, h), Distinguishable(b, a, h), "%v vs %v", a, b)
		}
	}
}

func TestDistinguishableReflexive(t *testing.T) {
	for _, a := range universe() {
		require.False(t, Distinguishable(a, a, nil), "%v", a)
	}
}

func TestDistinguishableAbsorbing(t *testing.T) {
	absorbers := []*Type{
		Builtin(Any),
		PromiseOf(Builtin(Any)),
		PromiseOf(Builtin(Long)),
		NullableOf(PromiseOf(Builtin(Any))),
	}
	for _, a := range absorbers {
		for _, b := range universe() {
			require.False(t, Distinguishable(a, b, nil), "%v vs %v", a, b)
		}
	}
}

func TestDistinguishable(t *testing.T) {
	h := related{{"Node", "Element"}: true}
	iface := Named(Interface, "Node")
	dict := Named(Dictionary, "Init")
	cases := []struct {
		a, b *Type
		exp  bool
	}{
		{Builtin(Long), Builtin(Double), false},
		{Builtin(Long), NullableOf(Builtin(Short)), false},
		{Builtin(Long), Builtin(Boolean), true},
		{Builtin(DOMString), Named(Enum, "Mode"), false},
		{Builtin(DOMString), Builtin(Long), true},
		{NullableOf(Builtin(Long)), NullableOf(Builtin(DOMString)), false},
		{NullableOf(Builtin(Long)), Builtin(DOMString), true},
		{NullableOf(Builtin(Long)), dict, false},
		{Builtin(Long), dict, true},
		{iface, Named(Interface, "Element"), false},
		{iface, Named(Interface, "Window"), true},
		{iface, NullableOf(iface), false},
		{iface, Named(CallbackInterface, "Listener"), true},
		{Named(CallbackInterface, "A"), Named(CallbackInterface, "B"), false},
		{Named(CallbackInterface, "A"), dict, false},
		{Named(CallbackInterface, "A"), Named(Callback, "Fn"), false},
		{dict, Named(Dictionary, "Other"), false},
		{dict, RecordOf(Builtin(DOMString), Builtin(Long)), false},
		{dict, SequenceOf(Builtin(Long)), true},
		{Builtin(Object), iface, false},
		{Builtin(Object), Builtin(Long), true},
		{Builtin(Object), Builtin(Date), false},
		{SequenceOf(Builtin(Long)), FrozenArrayOf(Builtin(DOMString)), false},
		{SequenceOf(Builtin(Long)), RecordOf(nil, Builtin(Long)), true},
		{Builtin(Date), NullableOf(Builtin(Date)), false},
		{Builtin(Date), iface, true},
		{Builtin(ArrayBufferView), Builtin(Uint8Array), false},
		{Builtin(ArrayBufferView), Builtin(DataView), false},
		{Builtin(ArrayBufferView), Builtin(ArrayBuffer), true},
		{Builtin(Uint8Array), Builtin(Uint16Array), true},
		{Builtin(ArrayBuffer), Builtin(SharedArrayBuffer), true},
		{Builtin(ArrayBuffer), iface, true},
		{UnionOf(Builtin(Long), Named(Callback, "Fn")), Builtin(Boolean), true},
		{UnionOf(Builtin(Long), Named(Callback, "Fn")), Builtin(Short), false},
		{UnionOf(Builtin(Long), dict), NullableOf(Builtin(Boolean)), false},
		{UnionOf(Builtin(Long), dict), Builtin(Boolean), true},
		{&Type{Kind: Interface, Name: "Ext", External: true}, iface, true},
	}
	for _, c := range cases {
		require.Equal(t, c.exp, Distinguishable(c.a, c.b, h), "%v vs %v", c.a, c.b)
	}
}

func TestPredicates(t *testing.T) {
	dict := Named(Dictionary, "D")
	u := UnionOf(Builtin(Long), UnionOf(NullableOf(Builtin(DOMString)), dict))

	require.True(t, u.IsUnion())
	require.True(t, NullableOf(u).IsUnion())
	require.True(t, u.HasDictionary())
	require.True(t, u.HasNullableMember())
	require.True(t, u.AcceptsNull())
	require.Equal(t, 1, u.NullableMembers())
	require.Len(t, u.FlatMembers(), 3)

	require.True(t, NullableOf(Builtin(Octet)).IsInteger())
	require.True(t, Builtin(UnrestrictedFloat).Unrestricted())
	require.False(t, Builtin(Float).Unrestricted())
	require.True(t, Builtin(Float).IsPrimitive())
	require.True(t, Named(Enum, "E").IsString())
	require.True(t, Builtin(DataView).IsBufferSource())
	require.False(t, Builtin(DataView).IsTypedArray())
	require.True(t, Builtin(Uint8ClampedArray).IsTypedArray())
	require.False(t, Builtin(Long).AcceptsNull())
	require.True(t, dict.AcceptsNull())
}

func TestEqualAndString(t *testing.T) {
	a := NullableOf(UnionOf(Builtin(UnsignedLongLong), RecordOf(Builtin(DOMString), SequenceOf(Named(Interface, "Node")))))
	b := NullableOf(UnionOf(Builtin(UnsignedLongLong), RecordOf(Builtin(DOMString), SequenceOf(Named(Interface, "Node")))))
	require.True(t, Equal(a, b))
	require.False(t, Equal(a, NullableOf(Builtin(UnsignedLongLong))))
	require.False(t, Equal(RecordOf(nil, Builtin(Long)), RecordOf(Builtin(DOMString), Builtin(Long))))
	require.Equal(t, "(unsigned long long or record<DOMString, sequence<Node>>)?", a.String())
	require.Equal(t, "MozMap<object>", RecordOf(nil, Builtin(Object)).String())
	require.Equal(t, "FrozenArray<Promise<void>>", FrozenArrayOf(PromiseOf(Builtin(Void))).String())
}

func TestLookupBuiltin(t *testing.T) {
	k, ok := LookupBuiltin("unrestricted double")
	require.True(t, ok)
	require.Equal(t, UnrestrictedDouble, k)

	k, ok = LookupBuiltin("Uint8ClampedArray")
	require.True(t, ok)
	require.Equal(t, Uint8ClampedArray, k)

	_, ok = LookupBuiltin("Node")
	require.False(t, ok)
	_, ok = LookupBuiltin("sequence")
	require.False(t, ok)
}
