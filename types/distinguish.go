package types

// Hierarchy answers interface relationship queries for Distinguishable.
type Hierarchy interface {
	// Related reports whether some interface inherits from or implements
	// both a and b.
	Related(a, b string) bool
}

type category int

const (
	catBoolean category = iota
	catNumeric
	catString
	catObject
	catInterface
	catCallbackInterface
	catDictionary
	catCallback
	catSequence
	catRecord
	catDate
	catBuffer
	catAny
	catPromise
	numCategories
)

func categoryOf(t *Type) category {
	switch t.Kind {
	case Boolean:
		return catBoolean
	case Byte, Octet, Short, UnsignedShort, Long, UnsignedLong, LongLong, UnsignedLongLong,
		Float, UnrestrictedFloat, Double, UnrestrictedDouble:
		return catNumeric
	case DOMString, ByteString, USVString, Enum:
		return catString
	case Object:
		return catObject
	case Interface:
		return catInterface
	case CallbackInterface:
		return catCallbackInterface
	case Dictionary:
		return catDictionary
	case Callback:
		return catCallback
	case Sequence, FrozenArray:
		return catSequence
	case Record:
		return catRecord
	case Date:
		return catDate
	case ArrayBuffer, ArrayBufferView, SharedArrayBuffer, DataView, Int8Array, Uint8Array,
		Uint8ClampedArray, Int16Array, Uint16Array, Int32Array, Uint32Array, Float32Array, Float64Array:
		return catBuffer
	case Promise:
		return catPromise
	case Void, Undefined, Any, Reference, Union, Nullable:
		return catAny
	}
	panic("types: unhandled kind " + t.Kind.String())
}

type verdict int

const (
	no verdict = iota
	yes
	byInterface
	byBuffer
)

// distinguishTable is indexed by the categories of two flat, non-nullable types.
var distinguishTable = func() [numCategories][numCategories]verdict {
	const (
		n = no
		y = yes
		i = byInterface
		b = byBuffer
	)
	return [numCategories][numCategories]verdict{
		//            bool num str obj ifc cbi dic cb seq rec date buf any prom
		catBoolean:           {n, y, y, y, y, y, y, y, y, y, y, y, n, n},
		catNumeric:           {y, n, y, y, y, y, y, y, y, y, y, y, n, n},
		catString:            {y, y, n, y, y, y, y, y, y, y, y, y, n, n},
		catObject:            {y, y, y, n, n, n, n, n, n, n, n, n, n, n},
		catInterface:         {y, y, y, n, i, i, y, y, y, y, y, y, n, n},
		catCallbackInterface: {y, y, y, n, i, i, n, n, y, n, y, y, n, n},
		catDictionary:        {y, y, y, n, y, n, n, n, y, n, y, y, n, n},
		catCallback:          {y, y, y, n, y, n, n, n, y, n, y, y, n, n},
		catSequence:          {y, y, y, n, y, y, y, y, n, y, y, y, n, n},
		catRecord:            {y, y, y, n, y, n, n, n, y, n, y, y, n, n},
		catDate:              {y, y, y, n, y, y, y, y, y, y, n, y, n, n},
		catBuffer:            {y, y, y, n, y, y, y, y, y, y, y, b, n, n},
		catAny:               {n, n, n, n, n, n, n, n, n, n, n, n, n, n},
		catPromise:           {n, n, n, n, n, n, n, n, n, n, n, n, n, n},
	}
}()

// Distinguishable reports whether overload resolution can always tell a
// value of type a from a value of type b. The result is symmetric. h may be
// nil, in which case distinct interface names are treated as unrelated.
func Distinguishable(a, b *Type, h Hierarchy) bool {
	if a.AcceptsNull() && b.AcceptsNull() {
		return false
	}
	for _, ma := range a.FlatMembers() {
		for _, mb := range b.FlatMembers() {
			if !distinguishFlat(ma, mb, h) {
				return false
			}
		}
	}
	return true
}

func distinguishFlat(a, b *Type, h Hierarchy) bool {
	switch distinguishTable[categoryOf(a)][categoryOf(b)] {
	case yes:
		return true
	case byInterface:
		return distinctInterfaces(a, b, h)
	case byBuffer:
		return distinctBuffers(a.Kind, b.Kind)
	}
	return false
}

func distinctInterfaces(a, b *Type, h Hierarchy) bool {
	if a.Kind == CallbackInterface && b.Kind == CallbackInterface {
		return false
	}
	if a.Name == b.Name {
		return false
	}
	if a.External || b.External || h == nil {
		return true
	}
	return !h.Related(a.Name, b.Name)
}

func distinctBuffers(a, b Kind) bool {
	if a == b {
		return false
	}
	isView := func(k Kind) bool {
		return k == DataView || (k >= Int8Array && k <= Float64Array)
	}
	if a == ArrayBufferView && isView(b) || b == ArrayBufferView && isView(a) {
		return false
	}
	return true
}
