package idl

import (
	"fmt"
	"sort"
	"strings"
)

// Target is a set of constructs an extended attribute may appear on.
type Target uint32

const (
	TargetInterface Target = 1 << iota
	TargetCallbackInterface
	TargetMixin
	TargetDictionary
	TargetDictionaryMember
	TargetEnum
	TargetCallback
	TargetTypedef
	TargetOperation
	TargetAttribute
	TargetConstant
	TargetArgument
)

var targetNames = []struct {
	t    Target
	name string
}{
	{TargetInterface, "interface"},
	{TargetCallbackInterface, "callback-interface"},
	{TargetMixin, "mixin"},
	{TargetDictionary, "dictionary"},
	{TargetDictionaryMember, "dictionary-member"},
	{TargetEnum, "enum"},
	{TargetCallback, "callback"},
	{TargetTypedef, "typedef"},
	{TargetOperation, "operation"},
	{TargetAttribute, "attribute"},
	{TargetConstant, "constant"},
	{TargetArgument, "argument"},
}

// Names returns the names of the targets in the set.
func (t Target) Names() []string {
	var out []string
	for _, n := range targetNames {
		if t&n.t != 0 {
			out = append(out, n.name)
		}
	}
	return out
}

func (t Target) String() string { return strings.Join(t.Names(), "|") }

func (t Target) MarshalYAML() (interface{}, error) {
	return t.Names(), nil
}

func (t *Target) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var names []string
	if err := unmarshal(&names); err != nil {
		return err
	}
	*t = 0
next:
	for _, name := range names {
		for _, n := range targetNames {
			if n.name == name {
				*t |= n.t
				continue next
			}
		}
		return fmt.Errorf("unknown extended attribute target %q", name)
	}
	return nil
}

// Shape is a set of syntactic forms of an extended attribute.
type Shape uint8

const (
	ShapeNone         Shape = 1 << iota // [A]
	ShapeIdent                          // [A=B]
	ShapeIdentList                      // [A=(B,C)]
	ShapeArgList                        // [A(long x)]
	ShapeNamedArgList                   // [A=B(long x)]
)

var shapeNames = []struct {
	s    Shape
	name string
}{
	{ShapeNone, "none"},
	{ShapeIdent, "ident"},
	{ShapeIdentList, "ident-list"},
	{ShapeArgList, "args"},
	{ShapeNamedArgList, "named-args"},
}

func (s Shape) Names() []string {
	var out []string
	for _, n := range shapeNames {
		if s&n.s != 0 {
			out = append(out, n.name)
		}
	}
	return out
}

func (s Shape) String() string { return strings.Join(s.Names(), "|") }

func (s Shape) MarshalYAML() (interface{}, error) {
	return s.Names(), nil
}

func (s *Shape) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var names []string
	if err := unmarshal(&names); err != nil {
		return err
	}
	*s = 0
next:
	for _, name := range names {
		for _, n := range shapeNames {
			if n.name == name {
				*s |= n.s
				continue next
			}
		}
		return fmt.Errorf("unknown extended attribute shape %q", name)
	}
	return nil
}

// AttributeRule says where an extended attribute may appear and in which forms.
type AttributeRule struct {
	Targets Target `yaml:"targets"`
	Shapes  Shape  `yaml:"shapes"`
	Doc     string `yaml:"doc,omitempty"`
}

// AttributeTable maps extended attribute names to their rules.
type AttributeTable map[string]AttributeRule

// Names returns the attribute names in sorted order.
func (t AttributeTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	targetMembers   = TargetOperation | TargetAttribute | TargetConstant
	targetExposable = TargetInterface | TargetMixin | targetMembers
	targetConverted = TargetAttribute | TargetArgument | TargetDictionaryMember
)

// DefaultAttributes returns the extended attributes recognized by default.
func DefaultAttributes() AttributeTable {
	return AttributeTable{
		"Constructor":       {TargetInterface, ShapeNone | ShapeArgList, "interface has a constructor with the given arguments"},
		"NamedConstructor":  {TargetInterface, ShapeIdent | ShapeNamedArgList, "named constructor function"},
		"HTMLConstructor":   {TargetInterface, ShapeNone, "custom element constructor"},
		"Exposed":           {targetExposable, ShapeIdent | ShapeIdentList, "globals the construct is exposed in"},
		"Global":            {TargetInterface, ShapeNone | ShapeIdent | ShapeIdentList, "interface is a global object"},
		"PrimaryGlobal":     {TargetInterface, ShapeNone | ShapeIdent, "interface is the primary global object"},
		"NoInterfaceObject": {TargetInterface | TargetCallbackInterface, ShapeNone, "no interface object is exposed"},
		"ArrayClass":        {TargetInterface, ShapeNone, "prototype chain includes Array.prototype"},
		"OverrideBuiltins":  {TargetInterface, ShapeNone, "named properties shadow prototype properties"},
		"Abstract":          {TargetInterface, ShapeNone, "interface is never instantiated directly"},
		"Pref":              {targetExposable | TargetDictionaryMember, ShapeIdent, "preference guarding the construct"},
		"Func":              {targetExposable | TargetDictionaryMember, ShapeIdent, "function guarding the construct"},
		"ChromeOnly":        {targetExposable | TargetDictionaryMember, ShapeNone, "only exposed to privileged code"},
		"SecureContext":     {targetExposable, ShapeNone, "only exposed in secure contexts"},
		"Unforgeable":       {TargetInterface | TargetOperation | TargetAttribute, ShapeNone, "property is not configurable"},
		"LenientThis":       {TargetAttribute, ShapeNone, "invalid this values are ignored"},
		"Replaceable":       {TargetAttribute, ShapeNone, "assignments replace the property"},
		"PutForwards":       {TargetAttribute, ShapeIdent, "assignments forward to the named attribute"},
		"SameObject":        {TargetAttribute, ShapeNone, "getter always returns the same object"},
		"NewObject":         {TargetOperation | TargetAttribute, ShapeNone, "returns a new object each time"},
		"Throws":            {TargetOperation | TargetAttribute, ShapeNone, "may throw"},
		"Pure":              {TargetOperation | TargetAttribute, ShapeNone, "no side effects"},
		"CEReactions":       {TargetOperation | TargetAttribute, ShapeNone, "runs custom element reactions"},
		"BinaryName":        {TargetOperation | TargetAttribute, ShapeIdent, "name used by generated code"},
		"Alias":             {TargetOperation, ShapeIdent, "additional property name"},
		"Default":           {TargetOperation, ShapeNone, "default toJSON behavior"},
		"TreatNullAs":       {TargetAttribute | TargetArgument, ShapeIdent, "null converts to the empty string"},
		"Clamp":             {targetConverted | TargetTypedef, ShapeNone, "out of range integers are clamped"},
		"EnforceRange":      {targetConverted | TargetTypedef, ShapeNone, "out of range integers throw"},
		"AllowShared":       {targetConverted | TargetTypedef, ShapeNone, "buffer may be shared"},

		"LegacyUnenumerableNamedProperties": {TargetInterface, ShapeNone, "named properties are not enumerable"},
	}
}
