// Package idl builds and validates a WebIDL definition model.
//
// A Parser accumulates WebIDL source with Parse and produces the merged,
// resolved and validated definitions with Finish. All cross references in the
// model (parents, included mixins, named types) are by name; the definitions
// returned by Finish are the only owners.
package idl

import (
	"github.com/servo/webidl/types"
)

// Identifier is a name in an enclosing scope. Top-level definitions have an
// empty scope; members are scoped by their owner's name.
type Identifier struct {
	Name  string
	Scope string
}

func (id Identifier) Ident() Identifier { return id }

// QName returns the fully qualified name, such as ::Foo or ::Foo::bar.
func (id Identifier) QName() string {
	if id.Scope == "" {
		return "::" + id.Name
	}
	return "::" + id.Scope + "::" + id.Name
}

type node struct {
	Location Location
}

func (n *node) Pos() Location { return n.Location }

// Definition is one of *Interface, *Mixin, *Dictionary, *Enum, *Callback,
// *Typedef, *ExternalInterface or *Includes.
type Definition interface {
	Ident() Identifier
	QName() string
	Pos() Location
	isDefinition()
}

// Interface is an interface or a callback interface.
type Interface struct {
	Identifier
	node
	Parent       string
	Partial      bool
	Callback     bool
	Members      []Member
	ExtAttrs     ExtendedAttributes
	CustomOps    []string
	Constructors []*Signature
	// NamedConstructors come from [NamedConstructor=Name(...)].
	NamedConstructors []*NamedConstructor

	// Includes lists mixins applied by includes statements, and Implements the
	// interfaces applied by legacy implements statements, in source order.
	Includes   []string
	Implements []string
}

type NamedConstructor struct {
	Name      string
	Signature *Signature
}

// Mixin is an interface mixin.
type Mixin struct {
	Identifier
	node
	Partial   bool
	Members   []Member
	ExtAttrs  ExtendedAttributes
	CustomOps []string
}

type Dictionary struct {
	Identifier
	node
	Parent   string
	Partial  bool
	Members  []*DictionaryMember
	ExtAttrs ExtendedAttributes
}

type Enum struct {
	Identifier
	node
	Values   []string
	ExtAttrs ExtendedAttributes
}

// Has reports whether v is one of the enum values.
func (e *Enum) Has(v string) bool {
	for _, s := range e.Values {
		if s == v {
			return true
		}
	}
	return false
}

type Callback struct {
	Identifier
	node
	Signature *Signature
	ExtAttrs  ExtendedAttributes
}

type Typedef struct {
	Identifier
	node
	Type     *types.Type
	ExtAttrs ExtendedAttributes
}

// ExternalInterface is a forward declaration: interface Foo;
type ExternalInterface struct {
	Identifier
	node
}

// Includes is an includes statement, or a legacy implements statement when
// Legacy is set.
type Includes struct {
	node
	Interface string
	Mixin     string
	Legacy    bool
}

func (d *Includes) Ident() Identifier { return Identifier{Name: d.Interface} }

func (d *Includes) QName() string {
	verb := " includes "
	if d.Legacy {
		verb = " implements "
	}
	return "::" + d.Interface + verb + d.Mixin
}

func (*Interface) isDefinition()         {}
func (*Mixin) isDefinition()             {}
func (*Dictionary) isDefinition()        {}
func (*Enum) isDefinition()              {}
func (*Callback) isDefinition()          {}
func (*Typedef) isDefinition()           {}
func (*ExternalInterface) isDefinition() {}
func (*Includes) isDefinition()          {}

// Member is one of *Operation, *Attribute, *Constant or *Iterable.
type Member interface {
	Ident() Identifier
	QName() string
	Pos() Location
	isMember()
}

// Operation is a regular, static or special operation. Special operations
// (getter, setter, deleter, legacycaller, stringifier) may be unnamed.
type Operation struct {
	Identifier
	node
	Static    bool
	Special   string
	Signature *Signature
	ExtAttrs  ExtendedAttributes
}

type Attribute struct {
	Identifier
	node
	Type        *types.Type
	Readonly    bool
	Static      bool
	Inherit     bool
	Stringifier bool
	ExtAttrs    ExtendedAttributes
}

type Constant struct {
	Identifier
	node
	Type     *types.Type
	Value    *Value
	ExtAttrs ExtendedAttributes
}

// Iterable is iterable<Value> or iterable<Key, Value>. Key is nil for value
// iterators.
type Iterable struct {
	Identifier
	node
	Key   *types.Type
	Value *types.Type
}

func (*Operation) isMember() {}
func (*Attribute) isMember() {}
func (*Constant) isMember()  {}
func (*Iterable) isMember()  {}

type DictionaryMember struct {
	Identifier
	node
	Type     *types.Type
	Default  *Value
	Required bool
	ExtAttrs ExtendedAttributes
}

type Argument struct {
	node
	Name     string
	Type     *types.Type
	Optional bool
	Variadic bool
	Default  *Value
	ExtAttrs ExtendedAttributes
}

type Signature struct {
	Return *types.Type
	Args   []*Argument
}

// ExtendedAttribute is one entry of an extended attribute list:
// [Name], [Name=Value], [Name=(Values)], [Name(Args)] or [Name=Value(Args)].
type ExtendedAttribute struct {
	node
	Name    string
	Value   string
	Values  []string
	HasArgs bool
	Args    []*Argument
}

// Shape returns the syntactic form of the attribute.
func (a *ExtendedAttribute) Shape() Shape {
	switch {
	case a.HasArgs && a.Value != "":
		return ShapeNamedArgList
	case a.HasArgs:
		return ShapeArgList
	case a.Values != nil:
		return ShapeIdentList
	case a.Value != "":
		return ShapeIdent
	}
	return ShapeNone
}

type ExtendedAttributes []*ExtendedAttribute

// Get returns the first attribute with the given name, or nil.
func (l ExtendedAttributes) Get(name string) *ExtendedAttribute {
	for _, a := range l {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func (l ExtendedAttributes) Has(name string) bool { return l.Get(name) != nil }

// All returns every attribute with the given name.
func (l ExtendedAttributes) All(name string) []*ExtendedAttribute {
	var out []*ExtendedAttribute
	for _, a := range l {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}
