// Package types models resolved WebIDL type expressions.
package types

import (
	"strconv"
	"strings"
)

// Kind is the closed set of WebIDL type kinds.
type Kind int

const (
	Void Kind = iota
	Undefined
	Any
	Boolean
	Byte
	Octet
	Short
	UnsignedShort
	Long
	UnsignedLong
	LongLong
	UnsignedLongLong
	Float
	UnrestrictedFloat
	Double
	UnrestrictedDouble
	DOMString
	ByteString
	USVString
	Object
	Date

	ArrayBuffer
	ArrayBufferView
	SharedArrayBuffer
	DataView
	Int8Array
	Uint8Array
	Uint8ClampedArray
	Int16Array
	Uint16Array
	Int32Array
	Uint32Array
	Float32Array
	Float64Array

	// Kinds naming a definition; Type.Name holds the identifier.
	Interface
	CallbackInterface
	Dictionary
	Enum
	Callback

	Sequence
	FrozenArray
	Record
	Promise
	Union
	Nullable

	// Reference is a name that has not been resolved yet.
	Reference
)

var kindNames = [...]string{
	Void:               "void",
	Undefined:          "undefined",
	Any:                "any",
	Boolean:            "boolean",
	Byte:               "byte",
	Octet:              "octet",
	Short:              "short",
	UnsignedShort:      "unsigned short",
	Long:               "long",
	UnsignedLong:       "unsigned long",
	LongLong:           "long long",
	UnsignedLongLong:   "unsigned long long",
	Float:              "float",
	UnrestrictedFloat:  "unrestricted float",
	Double:             "double",
	UnrestrictedDouble: "unrestricted double",
	DOMString:          "DOMString",
	ByteString:         "ByteString",
	USVString:          "USVString",
	Object:             "object",
	Date:               "Date",
	ArrayBuffer:        "ArrayBuffer",
	ArrayBufferView:    "ArrayBufferView",
	SharedArrayBuffer:  "SharedArrayBuffer",
	DataView:           "DataView",
	Int8Array:          "Int8Array",
	Uint8Array:         "Uint8Array",
	Uint8ClampedArray:  "Uint8ClampedArray",
	Int16Array:         "Int16Array",
	Uint16Array:        "Uint16Array",
	Int32Array:         "Int32Array",
	Uint32Array:        "Uint32Array",
	Float32Array:       "Float32Array",
	Float64Array:       "Float64Array",
	Interface:          "interface",
	CallbackInterface:  "callback interface",
	Dictionary:         "dictionary",
	Enum:               "enum",
	Callback:           "callback",
	Sequence:           "sequence",
	FrozenArray:        "FrozenArray",
	Record:             "record",
	Promise:            "Promise",
	Union:              "union",
	Nullable:           "nullable",
	Reference:          "reference",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// builtins maps the spelling of every built-in type to its kind.
var builtins = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := Void; k <= Float64Array; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// LookupBuiltin returns the kind of a built-in type name such as
// "unsigned long" or "Uint8Array".
func LookupBuiltin(name string) (Kind, bool) {
	k, ok := builtins[name]
	return k, ok
}

// Type is a WebIDL type expression.
type Type struct {
	Kind Kind
	// Name of the referenced definition for the named kinds and Reference.
	Name string
	// External is set on interface types declared only by a forward declaration.
	External bool
	// Elem is the element of sequences, frozen arrays, records and promises,
	// and the inner type of a nullable.
	Elem *Type
	// Key of a record; nil for the legacy MozMap form.
	Key *Type
	// Members of a union, as written.
	Members []*Type
}

// Builtin returns a type of the given built-in kind.
func Builtin(k Kind) *Type {
	return &Type{Kind: k}
}

// Named returns a type referring to the named definition.
func Named(k Kind, name string) *Type {
	return &Type{Kind: k, Name: name}
}

// Ref returns an unresolved reference to name.
func Ref(name string) *Type {
	return &Type{Kind: Reference, Name: name}
}

func SequenceOf(t *Type) *Type    { return &Type{Kind: Sequence, Elem: t} }
func FrozenArrayOf(t *Type) *Type { return &Type{Kind: FrozenArray, Elem: t} }
func PromiseOf(t *Type) *Type     { return &Type{Kind: Promise, Elem: t} }
func NullableOf(t *Type) *Type    { return &Type{Kind: Nullable, Elem: t} }

// RecordOf returns record<key, t>; a nil key gives MozMap<t>.
func RecordOf(key, t *Type) *Type {
	return &Type{Kind: Record, Key: key, Elem: t}
}

func UnionOf(members ...*Type) *Type {
	return &Type{Kind: Union, Members: members}
}

// Inner strips one nullable layer.
func (t *Type) Inner() *Type {
	if t.Kind == Nullable {
		return t.Elem
	}
	return t
}

func (t *Type) IsNullable() bool { return t.Kind == Nullable }

func (t *Type) IsUnion() bool { return t.Inner().Kind == Union }

func (t *Type) IsDictionary() bool { return t.Inner().Kind == Dictionary }

func (t *Type) IsSequence() bool {
	k := t.Inner().Kind
	return k == Sequence || k == FrozenArray
}

func (t *Type) IsRecord() bool { return t.Inner().Kind == Record }

func (t *Type) IsInteger() bool {
	switch t.Inner().Kind {
	case Byte, Octet, Short, UnsignedShort, Long, UnsignedLong, LongLong, UnsignedLongLong:
		return true
	}
	return false
}

func (t *Type) IsFloat() bool {
	switch t.Inner().Kind {
	case Float, UnrestrictedFloat, Double, UnrestrictedDouble:
		return true
	}
	return false
}

func (t *Type) IsNumeric() bool { return t.IsInteger() || t.IsFloat() }

// IsPrimitive reports boolean and numeric types.
func (t *Type) IsPrimitive() bool { return t.Inner().Kind == Boolean || t.IsNumeric() }

// IsString reports the string types, enums included.
func (t *Type) IsString() bool {
	switch t.Inner().Kind {
	case DOMString, ByteString, USVString, Enum:
		return true
	}
	return false
}

func (t *Type) IsBufferSource() bool {
	k := t.Inner().Kind
	return k >= ArrayBuffer && k <= Float64Array
}

func (t *Type) IsTypedArray() bool {
	k := t.Inner().Kind
	return k >= Int8Array && k <= Float64Array
}

// Unrestricted reports floating point types that admit Infinity and NaN.
func (t *Type) Unrestricted() bool {
	k := t.Inner().Kind
	return k == UnrestrictedFloat || k == UnrestrictedDouble
}

// FlatMembers returns the flattened member types of a union with nullable
// layers removed. Any other type yields itself without its nullable layer.
func (t *Type) FlatMembers() []*Type {
	t = t.Inner()
	if t.Kind != Union {
		return []*Type{t}
	}
	var out []*Type
	for _, m := range t.Members {
		out = append(out, m.FlatMembers()...)
	}
	return out
}

// NullableMembers counts the nullable member types of a union, nested unions included.
func (t *Type) NullableMembers() int {
	t = t.Inner()
	if t.Kind != Union {
		return 0
	}
	n := 0
	for _, m := range t.Members {
		if m.IsNullable() {
			n++
		}
		n += m.NullableMembers()
	}
	return n
}

func (t *Type) HasNullableMember() bool { return t.NullableMembers() > 0 }

// HasDictionary reports a dictionary type, or a union with a dictionary member.
func (t *Type) HasDictionary() bool {
	for _, m := range t.FlatMembers() {
		if m.Kind == Dictionary {
			return true
		}
	}
	return false
}

// AcceptsNull reports whether null is a valid value of the type. Dictionaries
// accept it as the empty dictionary.
func (t *Type) AcceptsNull() bool {
	switch t.Kind {
	case Nullable, Any, Dictionary:
		return true
	case Union:
		return t.HasNullableMember() || t.HasDictionary()
	}
	return false
}

// Equal reports structural equality.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Name != b.Name || len(a.Members) != len(b.Members) {
		return false
	}
	if !Equal(a.Elem, b.Elem) || !Equal(a.Key, b.Key) {
		return false
	}
	for i := range a.Members {
		if !Equal(a.Members[i], b.Members[i]) {
			return false
		}
	}
	return true
}

// String returns the WebIDL spelling of the type.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case Interface, CallbackInterface, Dictionary, Enum, Callback, Reference:
		return t.Name
	case Sequence, FrozenArray, Promise:
		return t.Kind.String() + "<" + t.Elem.String() + ">"
	case Record:
		if t.Key == nil {
			return "MozMap<" + t.Elem.String() + ">"
		}
		return "record<" + t.Key.String() + ", " + t.Elem.String() + ">"
	case Union:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.String()
		}
		return "(" + strings.Join(parts, " or ") + ")"
	case Nullable:
		return t.Elem.String() + "?"
	}
	return t.Kind.String()
}
