package idl

import (
	"sort"

	"github.com/servo/webidl/ast"
	"github.com/servo/webidl/types"
)

// builder converts a parse tree into unresolved definitions.
type builder struct {
	file  string
	lines []int // byte offsets of line starts
	err   error
}

func newBuilder(file, text string) *builder {
	b := &builder{file: file, lines: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lines = append(b.lines, i+1)
		}
	}
	return b
}

// location converts a byte offset into a line and column, both 1-based.
func (b *builder) location(offset int) Location {
	line := sort.Search(len(b.lines), func(i int) bool { return b.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Location{File: b.file, Line: line + 1, Column: offset - b.lines[line] + 1}
}

func (b *builder) loc(n ast.Node) Location {
	return b.location(n.NodeBase().Start)
}

func (b *builder) fail(err *Error) {
	if b.err == nil {
		b.err = err
	}
}

// syntaxError reports the first error node of the tree, if any.
func (b *builder) syntaxError(f *ast.File) error {
	errs := ast.Errors(f)
	if len(errs) == 0 {
		return nil
	}
	loc := b.location(errs[0].Start)
	return errorf(SyntaxError, "%s", errs[0].Message).at(loc)
}

func (b *builder) build(f *ast.File) ([]Definition, error) {
	var out []Definition
	for _, d := range f.Declarations {
		if def := b.decl(d); def != nil {
			out = append(out, def)
		}
	}
	if b.err != nil {
		return nil, b.err
	}
	return out, nil
}

func (b *builder) decl(d ast.Decl) Definition {
	top := func(name string) Identifier { return Identifier{Name: name} }
	switch d := d.(type) {
	case *ast.Interface:
		if d.External {
			return &ExternalInterface{Identifier: top(d.Name), node: node{b.loc(d)}}
		}
		out := &Interface{
			Identifier: top(d.Name),
			node:       node{b.loc(d)},
			Parent:     d.Inherits,
			Partial:    d.Partial,
			Callback:   d.Callback,
			ExtAttrs:   b.extAttrs(d.Annotations),
		}
		out.Members = b.members(d.Name, d.Members)
		for _, op := range d.CustomOps {
			out.CustomOps = append(out.CustomOps, op.Name)
		}
		if d.Iterable != nil {
			it := &Iterable{
				Identifier: Identifier{Name: "iterable", Scope: d.Name},
				node:       node{b.loc(d.Iterable)},
				Value:      b.typ(d.Iterable.Type),
			}
			if d.Iterable.Key != nil {
				it.Key = b.typ(d.Iterable.Key)
			}
			out.Members = append(out.Members, it)
		}
		return out
	case *ast.Mixin:
		out := &Mixin{
			Identifier: top(d.Name),
			node:       node{b.loc(d)},
			Partial:    d.Partial,
			ExtAttrs:   b.extAttrs(d.Annotations),
			Members:    b.members(d.Name, d.Members),
		}
		for _, op := range d.CustomOps {
			out.CustomOps = append(out.CustomOps, op.Name)
		}
		return out
	case *ast.Dictionary:
		out := &Dictionary{
			Identifier: top(d.Name),
			node:       node{b.loc(d)},
			Parent:     d.Inherits,
			Partial:    d.Partial,
			ExtAttrs:   b.extAttrs(d.Annotations),
		}
		for _, m := range d.Members {
			dm := &DictionaryMember{
				Identifier: Identifier{Name: m.Name, Scope: d.Name},
				node:       node{b.loc(m)},
				Type:       b.typ(m.Type),
				Required:   m.Required,
				ExtAttrs:   b.extAttrs(m.Annotations),
			}
			if m.Init != nil {
				dm.Default = parseValue(m.Init.Value)
			}
			if m.Const || m.Static || m.Readonly || m.Specialization != "" {
				b.fail(errorf(SyntaxError, "dictionary member %s cannot be a constant, static, readonly or special", dm.QName()).at(dm.Location))
			}
			out.Members = append(out.Members, dm)
		}
		return out
	case *ast.Enum:
		out := &Enum{
			Identifier: top(d.Name),
			node:       node{b.loc(d)},
			ExtAttrs:   b.extAttrs(d.Annotations),
		}
		for _, v := range d.Values {
			out.Values = append(out.Values, parseValue(v.Value).Text)
		}
		return out
	case *ast.Callback:
		return &Callback{
			Identifier: top(d.Name),
			node:       node{b.loc(d)},
			Signature:  &Signature{Return: b.typ(d.Return), Args: b.args(d.Parameters)},
			ExtAttrs:   b.extAttrs(d.Annotations),
		}
	case *ast.Typedef:
		return &Typedef{
			Identifier: top(d.Name),
			node:       node{b.loc(d)},
			Type:       b.typ(d.Type),
			ExtAttrs:   b.extAttrs(d.Annotations),
		}
	case *ast.Includes:
		return &Includes{node: node{b.loc(d)}, Interface: d.Name, Mixin: d.Source}
	case *ast.Implementation:
		return &Includes{node: node{b.loc(d)}, Interface: d.Name, Mixin: d.Source, Legacy: true}
	}
	return nil
}

func (b *builder) members(owner string, list []*ast.Member) []Member {
	var out []Member
	for _, m := range list {
		id := Identifier{Name: m.Name, Scope: owner}
		n := node{b.loc(m)}
		attrs := b.extAttrs(m.Annotations)
		switch {
		case m.Const:
			c := &Constant{Identifier: id, node: n, Type: b.typ(m.Type), ExtAttrs: attrs}
			if m.Init == nil {
				b.fail(errorf(SyntaxError, "constant %s has no value", id.QName()).at(n.Location))
				continue
			}
			c.Value = parseValue(m.Init.Value)
			out = append(out, c)
		case m.Attribute:
			if m.Init != nil {
				b.fail(errorf(SyntaxError, "attribute %s cannot have a value", id.QName()).at(n.Location))
			}
			out = append(out, &Attribute{
				Identifier:  id,
				node:        n,
				Type:        b.typ(m.Type),
				Readonly:    m.Readonly,
				Static:      m.Static,
				Inherit:     m.Inherit,
				Stringifier: m.Specialization == "stringifier",
				ExtAttrs:    attrs,
			})
		default:
			if m.Init != nil || m.Readonly || m.Inherit {
				b.fail(errorf(SyntaxError, "operation %s cannot be readonly, inherited or have a value", id.QName()).at(n.Location))
			}
			if m.Name == "" && m.Specialization == "" {
				b.fail(errorf(SyntaxError, "operation in %s has no name", owner).at(n.Location))
			}
			out = append(out, &Operation{
				Identifier: id,
				node:       n,
				Static:     m.Static,
				Special:    m.Specialization,
				Signature:  &Signature{Return: b.typ(m.Type), Args: b.args(m.Parameters)},
				ExtAttrs:   attrs,
			})
		}
	}
	return out
}

func (b *builder) args(list []*ast.Parameter) []*Argument {
	var out []*Argument
	for _, p := range list {
		a := &Argument{
			node:     node{b.loc(p)},
			Name:     p.Name,
			Type:     b.typ(p.Type),
			Optional: p.Optional,
			Variadic: p.Variadic,
			ExtAttrs: b.extAttrs(p.Annotations),
		}
		if p.Init != nil {
			a.Default = parseValue(p.Init.Value)
		}
		out = append(out, a)
	}
	return out
}

func (b *builder) extAttrs(list []*ast.Annotation) ExtendedAttributes {
	var out ExtendedAttributes
	for _, a := range list {
		out = append(out, &ExtendedAttribute{
			node:    node{b.loc(a)},
			Name:    a.Name,
			Value:   a.Value,
			Values:  a.Values,
			HasArgs: a.ArgList,
			Args:    b.args(a.Parameters),
		})
	}
	return out
}

// typ converts a syntactic type; names that are not built in stay unresolved.
func (b *builder) typ(t ast.Type) *types.Type {
	switch t := t.(type) {
	case *ast.TypeName:
		if k, ok := types.LookupBuiltin(t.Name); ok {
			return types.Builtin(k)
		}
		return types.Ref(t.Name)
	case *ast.AnyType:
		return types.Builtin(types.Any)
	case *ast.SequenceType:
		return types.SequenceOf(b.typ(t.Elem))
	case *ast.FrozenArrayType:
		return types.FrozenArrayOf(b.typ(t.Elem))
	case *ast.PromiseType:
		return types.PromiseOf(b.typ(t.Elem))
	case *ast.RecordType:
		var key *types.Type
		if t.Key != nil {
			key = b.typ(t.Key)
		}
		return types.RecordOf(key, b.typ(t.Elem))
	case *ast.UnionType:
		members := make([]*types.Type, len(t.Types))
		for i, m := range t.Types {
			members[i] = b.typ(m)
		}
		return types.UnionOf(members...)
	case *ast.NullableType:
		return types.NullableOf(b.typ(t.Type))
	}
	return types.Builtin(types.Any)
}
