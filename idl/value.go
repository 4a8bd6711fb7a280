package idl

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/servo/webidl/types"
)

// ValueKind classifies constant and default values.
type ValueKind int

const (
	NullValue ValueKind = iota
	BooleanValue
	IntegerValue
	FloatValue
	StringValue
	InfinityValue
	NegativeInfinityValue
	NaNValue
	EmptySequenceValue
	EmptyDictionaryValue
)

var valueKindNames = [...]string{
	NullValue:             "null",
	BooleanValue:          "boolean",
	IntegerValue:          "integer",
	FloatValue:            "float",
	StringValue:           "string",
	InfinityValue:         "Infinity",
	NegativeInfinityValue: "-Infinity",
	NaNValue:              "NaN",
	EmptySequenceValue:    "[]",
	EmptyDictionaryValue:  "{}",
}

func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(valueKindNames) {
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
	return valueKindNames[k]
}

// Value is a constant or default value. Text holds the literal as written,
// without quotes for strings.
type Value struct {
	Kind ValueKind
	Text string
}

func (v *Value) String() string {
	if v.Kind == StringValue {
		return strconv.Quote(v.Text)
	}
	return v.Text
}

// parseValue classifies a literal as produced by the parser.
func parseValue(lit string) *Value {
	switch lit {
	case "null":
		return &Value{Kind: NullValue, Text: lit}
	case "true", "false":
		return &Value{Kind: BooleanValue, Text: lit}
	case "Infinity":
		return &Value{Kind: InfinityValue, Text: lit}
	case "-Infinity":
		return &Value{Kind: NegativeInfinityValue, Text: lit}
	case "NaN":
		return &Value{Kind: NaNValue, Text: lit}
	case "[]":
		return &Value{Kind: EmptySequenceValue, Text: lit}
	case "{}":
		return &Value{Kind: EmptyDictionaryValue, Text: lit}
	}
	if strings.HasPrefix(lit, `"`) {
		return &Value{Kind: StringValue, Text: strings.Trim(lit, `"`)}
	}
	hex := strings.HasPrefix(strings.TrimPrefix(lit, "-"), "0x") || strings.HasPrefix(strings.TrimPrefix(lit, "-"), "0X")
	if !hex && strings.ContainsAny(lit, ".eE") {
		return &Value{Kind: FloatValue, Text: lit}
	}
	return &Value{Kind: IntegerValue, Text: lit}
}

// integerRanges holds the inclusive bounds of every integer kind.
var integerRanges = map[types.Kind][2]*big.Int{
	types.Byte:             {big.NewInt(-1 << 7), big.NewInt(1<<7 - 1)},
	types.Octet:            {big.NewInt(0), big.NewInt(1<<8 - 1)},
	types.Short:            {big.NewInt(-1 << 15), big.NewInt(1<<15 - 1)},
	types.UnsignedShort:    {big.NewInt(0), big.NewInt(1<<16 - 1)},
	types.Long:             {big.NewInt(-1 << 31), big.NewInt(1<<31 - 1)},
	types.UnsignedLong:     {big.NewInt(0), big.NewInt(1<<32 - 1)},
	types.LongLong:         {big.NewInt(-1 << 63), big.NewInt(1<<63 - 1)},
	types.UnsignedLongLong: {big.NewInt(0), new(big.Int).SetUint64(1<<64 - 1)},
}

// parseInteger parses a decimal, hexadecimal or octal WebIDL integer.
func parseInteger(text string) (*big.Int, bool) {
	neg := strings.HasPrefix(text, "-")
	digits := strings.TrimPrefix(text, "-")
	base := 10
	switch {
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		base, digits = 16, digits[2:]
	case len(digits) > 1 && digits[0] == '0':
		base, digits = 8, digits[1:]
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}

// checkValue reports why v is not a legal value of type t, or "" if it is.
// enums resolves enum names for string values.
func checkValue(t *types.Type, v *Value, enums func(name string) *Enum) string {
	// A dictionary takes null as the empty dictionary.
	if v.Kind == NullValue {
		if t.AcceptsNull() {
			return ""
		}
		if t.Kind == types.Union {
			return "null is not a valid value of " + t.String()
		}
		return "null is only valid for nullable types and dictionaries, not " + t.String()
	}
	switch t.Kind {
	case types.Any:
		return ""
	case types.Nullable:
		return checkValue(t.Elem, v, enums)
	case types.Union:
		for _, m := range t.FlatMembers() {
			if checkValue(m, v, enums) == "" {
				return ""
			}
		}
		return v.String() + " is not a valid value of " + t.String()
	}

	mismatch := v.String() + " is not a valid value of " + t.String()
	switch v.Kind {
	case BooleanValue:
		if t.Kind != types.Boolean {
			return mismatch
		}
	case IntegerValue:
		n, ok := parseInteger(v.Text)
		if !ok {
			return mismatch
		}
		if t.IsFloat() {
			return ""
		}
		if !t.IsInteger() {
			return mismatch
		}
		r := integerRanges[t.Kind]
		if n.Cmp(r[0]) < 0 || n.Cmp(r[1]) > 0 {
			return v.Text + " is out of range for " + t.String()
		}
	case FloatValue:
		if !t.IsFloat() {
			return mismatch
		}
		if _, err := strconv.ParseFloat(v.Text, 64); err != nil {
			return mismatch
		}
	case InfinityValue, NegativeInfinityValue, NaNValue:
		if !t.Unrestricted() {
			return v.Text + " is only valid for unrestricted float and double, not " + t.String()
		}
	case StringValue:
		if !t.IsString() {
			return mismatch
		}
		if t.Kind == types.Enum {
			if e := enums(t.Name); e != nil && !e.Has(v.Text) {
				return v.String() + " is not a value of enum " + t.Name
			}
		}
	case EmptySequenceValue:
		if !t.IsSequence() {
			return mismatch
		}
	case EmptyDictionaryValue:
		if t.Kind != types.Dictionary {
			return mismatch
		}
	}
	return ""
}
