package idl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const distinguishFixture = `
interface Ancestor {};
interface Iface : Ancestor {};
interface Implemented {};
interface Unrelated {};
Iface implements Implemented;
callback interface CallbackIface { void handle(); };
dictionary Dict {};
`

// overloadSource declares f twice on a test interface, once per argument type.
func overloadSource(a, b string) string {
	arg := func(typ string) string {
		if typ == "Dict" {
			return "optional Dict arg"
		}
		return typ + " arg"
	}
	return fmt.Sprintf("%sinterface Test { void f(%s); void f(%s); };", distinguishFixture, arg(a), arg(b))
}

// checkMatrix checks every pair of argTypes against the rows of exp, where
// exp[i][j] is 'y' when argTypes[i] and argTypes[j] are distinguishable.
func checkMatrix(t *testing.T, argTypes []string, exp []string) {
	require.Len(t, exp, len(argTypes))
	for i, a := range argTypes {
		require.Len(t, exp[i], len(argTypes), a)
		for j, b := range argTypes {
			if i == j {
				continue
			}
			require.Equal(t, exp[i][j], exp[j][i], "expectations for %s and %s are not symmetric", a, b)
			_, err := finish(t, overloadSource(a, b))
			if exp[i][j] == 'y' {
				require.NoError(t, err, "%s and %s", a, b)
			} else {
				requireKind(t, AmbiguousOverloadError, err)
			}
		}
	}
}

func TestOverloadInterfaceDistinguishability(t *testing.T) {
	argTypes := []string{"Iface", "Iface?", "Ancestor", "Unrelated", "Implemented"}
	checkMatrix(t, argTypes, []string{
		"-nnyn",
		"n-nyn",
		"nn-yn",
		"yyy-y",
		"nnny-",
	})
}

func TestOverloadDistinguishability(t *testing.T) {
	argTypes := []string{
		"long", "long?", "Iface", "Unrelated", "CallbackIface", "object", "Date",
		"ArrayBufferView", "Dict", "sequence<long>", "MozMap<object>",
	}
	//  long long? Iface Unrelated CallbackIface object Date ArrayBufferView Dict sequence MozMap
	checkMatrix(t, argTypes, []string{
		"-nyyyyyyyyy",
		"n-yyyyyynyy",
		"yy-yynyyyyy",
		"yyy-ynyyyyy",
		"yyyy-nyynyn",
		"yynnn-nnnnn",
		"yyyyyn-yyyy",
		"yyyyyny-yyy",
		"ynyynnyy-yn",
		"yyyyynyyy-y",
		"yyyynnyyny-",
	})
}

func TestOverloadRules(t *testing.T) {
	for _, tc := range []struct {
		ops string
		ok  bool
	}{
		{`void f(long a); void f(long b);`, false},
		{`void f(long a); void f(long a, long b);`, true},
		{`void f(long a, optional long b); void f(long a);`, false},
		{`void f(long a, DOMString b); void f(long a, long b);`, true},
		{`void f(long a, DOMString b); void f(short a, long b);`, false},
		{`void f(long... a); void f(DOMString s);`, true},
		{`void f(long... a); void f(short s);`, false},
		{`void f(); void f(optional long a);`, false},
		{`void f(DOMString a); void f(long a); void f(boolean a);`, true},
		{`void f(DOMString a); void f(long a); void f(double a);`, false},
		{`void f(DOMString a, long b); void f(DOMString a, DOMString b); void f(long a);`, true},
		{`void f(sequence<long> a); void f(sequence<DOMString> a);`, false},
		{`void f(any a); void f(long a);`, false},
		{`void f(Promise<long> a); void f(long a);`, false},
		{`void f((long or DOMString) a); void f(boolean a);`, true},
		{`void f((long or DOMString) a); void f(DOMString a);`, false},
		{`static void f(long a); static void f(DOMString a);`, true},
		{`static void f(long a); static void f(short a);`, false},
	} {
		_, err := finish(t, "interface I { "+tc.ops+" };")
		if tc.ok {
			require.NoError(t, err, tc.ops)
		} else {
			requireKind(t, AmbiguousOverloadError, err)
		}
	}
}

func TestOverloadInMixin(t *testing.T) {
	_, err := finish(t, `interface mixin M { void f(long a); void f(short a); };`)
	requireKind(t, AmbiguousOverloadError, err)
	finishOK(t, `interface mixin M { void f(long a); void f(DOMString a); };`)
}

func TestAmbiguousOverloadMessage(t *testing.T) {
	_, err := finish(t, `interface I { void f(long a, DOMString b); void f(short a, long b); };`)
	requireKind(t, AmbiguousOverloadError, err)
	e := err.(*Error)
	require.True(t, strings.HasPrefix(e.Message, "overloads ::I::f(long, DOMString) and ::I::f(short, long) are ambiguous"), e.Message)
	require.Equal(t, []string{"::I::f"}, e.Names)
	require.Len(t, e.Locations, 2)
}
