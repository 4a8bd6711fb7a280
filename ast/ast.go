package ast

type Node interface {
	NodeBase() *Base
}

type Base struct {
	Start    int          `json:"start"` // byte offset
	End      int          `json:"end"`   // byte offset
	Comments []string     `json:"comments,omitempty"`
	Errors   []*ErrorNode `json:"errors,omitempty"`
}

func (b *Base) NodeBase() *Base {
	return b
}

// error occurred; value is text of error
type ErrorNode struct {
	Base
	Message string `json:"message"`
}

type Decl interface {
	Node
	isDecl()
}

// The file root node
type File struct {
	Base
	Declarations []Decl `json:"declarations,omitempty"`
}

// interface Foo : Bar { ... }
type Interface struct {
	Base
	Name        string        `json:"name"`
	Inherits    string        `json:"inherits,omitempty"`
	Partial     bool          `json:"partial,omitempty"`
	Callback    bool          `json:"callback,omitempty"`
	External    bool          `json:"external,omitempty"` // interface Foo;
	Annotations []*Annotation `json:"annotations,omitempty"`
	Members     []*Member     `json:"members,omitempty"`
	CustomOps   []*CustomOp   `json:"custom_ops,omitempty"`
	Iterable    *Iterable     `json:"iterable,omitempty"`
}

func (Interface) isDecl() {}

// interface mixin Foo { ... }
type Mixin struct {
	Base
	Name        string        `json:"name"`
	Partial     bool          `json:"partial,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Members     []*Member     `json:"members,omitempty"`
	CustomOps   []*CustomOp   `json:"custom_ops,omitempty"`
}

func (Mixin) isDecl() {}

type Dictionary struct {
	Base
	Name        string        `json:"name"`
	Inherits    string        `json:"inherits,omitempty"`
	Partial     bool          `json:"partial,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Members     []*Member     `json:"members,omitempty"`
}

func (Dictionary) isDecl() {}

type Enum struct {
	Base
	Name        string        `json:"name"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Values      []*Literal    `json:"values,omitempty"`
}

func (Enum) isDecl() {}

// callback Foo = void (long x);
type Callback struct {
	Base
	Name        string        `json:"name"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Return      Type          `json:"return,omitempty"`
	Parameters  []*Parameter  `json:"parameters,omitempty"`
}

func (Callback) isDecl() {}

// typedef (long or DOMString) Foo;
type Typedef struct {
	Base
	Name        string        `json:"name"`
	Annotations []*Annotation `json:"annotations,omitempty"`
	Type        Type          `json:"type"`
}

func (Typedef) isDecl() {}

// [Constructor], []
type Annotation struct {
	Base
	Name       string       `json:"name"`
	Value      string       `json:"value,omitempty"`      // [A=B]
	ArgList    bool         `json:"arg_list,omitempty"`   // [A()], [A=B()]
	Parameters []*Parameter `json:"parameters,omitempty"` // [A(X x, Y y)]
	Values     []string     `json:"values,omitempty"`     // [A=(a,b,c)]
}

// optional any SomeArg
type Parameter struct {
	Base
	Annotations []*Annotation `json:"annotations,omitempty"`
	Type        Type          `json:"type"`
	Optional    bool          `json:"optional,omitempty"`
	Variadic    bool          `json:"variadic,omitempty"`
	Name        string        `json:"name"`
	Init        *Literal      `json:"init,omitempty"`
}

// Window implements ECMA262Globals
type Implementation struct {
	Base
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (Implementation) isDecl() {}

// Document includes DocumentOrShadowRoot
type Includes struct {
	Base
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (Includes) isDecl() {}

// readonly attribute something
type Member struct {
	Base
	Name           string        `json:"name,omitempty"`
	Type           Type          `json:"type,omitempty"`
	Init           *Literal      `json:"init,omitempty"`
	Attribute      bool          `json:"attribute,omitempty"`
	Static         bool          `json:"static,omitempty"`
	Const          bool          `json:"const,omitempty"`
	Readonly       bool          `json:"readonly,omitempty"`
	Required       bool          `json:"required,omitempty"`
	Inherit        bool          `json:"inherit,omitempty"`
	Specialization string        `json:"specialization,omitempty"`
	Parameters     []*Parameter  `json:"parameters,omitempty"`
	Annotations    []*Annotation `json:"annotations,omitempty"`
}

// serializer; jsonifier; stringifier;
type CustomOp struct {
	Base
	Name string `json:"name"`
}

// iterable<V> or iterable<K, V>
type Iterable struct {
	Base
	Key  Type `json:"key,omitempty"`
	Type Type `json:"type"`
}

// Literal is a constant or default value exactly as written:
// 42, 0x1F, 1.5, "str", true, null, Infinity, -Infinity, NaN, [] or {}.
type Literal struct {
	Base
	Value string `json:"value"`
}

type Type interface {
	Node
	isType()
}

type TypeName struct {
	Base
	Name string `json:"name"`
}

func (TypeName) isType() {}

type AnyType struct {
	Base
}

func (AnyType) isType() {}

type SequenceType struct {
	Base
	Elem Type `json:"elem"`
}

func (SequenceType) isType() {}

type FrozenArrayType struct {
	Base
	Elem Type `json:"elem"`
}

func (FrozenArrayType) isType() {}

type PromiseType struct {
	Base
	Elem Type `json:"elem"`
}

func (PromiseType) isType() {}

// record<K, V>; the legacy MozMap<V> form leaves Key nil.
type RecordType struct {
	Base
	Key  Type `json:"key,omitempty"`
	Elem Type `json:"elem"`
}

func (RecordType) isType() {}

type UnionType struct {
	Base
	Types []Type `json:"types"`
}

func (UnionType) isType() {}

type NullableType struct {
	Base
	Type Type `json:"type"`
}

func (NullableType) isType() {}
