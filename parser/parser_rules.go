// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package parser

import (
	"github.com/servo/webidl/ast"
)

// consumeTopLevel attempts to consume the top-level constructs of a WebIDL file.
func (p *sourceParser) consumeTopLevel() *ast.File {
	n := &ast.File{}
	defer p.node(n)()

	// Start at the first token.
	p.consumeToken()

	if p.cur.kind == tokenTypeError {
		p.emitError("%s", p.cur.value)
		return n
	}

	// A declaration that failed leaves the parser mid-way through it, so the
	// rest of the file is not looked at.
	add := func(d ast.Decl) bool {
		n.Declarations = append(n.Declarations, d)
		return len(ast.Errors(d)) == 0
	}

Loop:
	for !p.isToken(tokenTypeEOF) {
		switch {
		case p.isToken(tokenTypeLeftBracket) || p.isIdentifier("interface") ||
			p.isIdentifier("partial") || p.isIdentifier("callback") ||
			p.isIdentifier("dictionary") || p.isIdentifier("enum") ||
			p.isIdentifier("typedef"):
			if !add(p.consumeDeclaration()) {
				break Loop
			}
			continue
		case p.isToken(tokenTypeIdentifier) && p.isNextKeyword("implements"):
			if !add(p.consumeImplementation()) {
				break Loop
			}
			continue
		case p.isToken(tokenTypeIdentifier) && p.isNextKeyword("includes"):
			if !add(p.consumeIncludes()) {
				break Loop
			}
			continue
		case p.isToken(tokenTypeError):
			p.emitError("%s", p.cur.value)
			break Loop
		}
		p.emitError("Unexpected token at root level: %v", p.cur.kind)
		break Loop
	}

	return n
}

func (p *sourceParser) consumeInterfaceOrMixin(partial bool, ann []*ast.Annotation, base *ast.Base, finish func()) ast.Decl {
	p.consumeKeyword("interface")
	if p.tryConsumeKeyword("mixin") {
		return p.consumeMixin(partial, ann, base, finish)
	}
	return p.consumeInterface(partial, false, ann, base, finish)
}

func (p *sourceParser) consumeInterface(partial, callback bool, ann []*ast.Annotation, base *ast.Base, finish func()) *ast.Interface {
	n := &ast.Interface{Annotations: ann, Partial: partial, Callback: callback}
	defer func() {
		finish()
		n.Base = *base
	}()

	n.Name = p.consumeIdentifier()

	// interface Foo;
	if !partial && !callback {
		if _, ok := p.tryConsume(tokenTypeSemicolon); ok {
			n.External = true
			return n
		}
	}

	if _, ok := p.tryConsume(tokenTypeColon); ok {
		n.Inherits = p.consumeIdentifier()
	}

	body := p.consumeInterfaceBody()
	n.Members = body.members
	n.CustomOps = body.customOps
	n.Iterable = body.iterable
	return n
}

func (p *sourceParser) consumeMixin(partial bool, ann []*ast.Annotation, base *ast.Base, finish func()) *ast.Mixin {
	n := &ast.Mixin{Annotations: ann, Partial: partial}
	defer func() {
		finish()
		n.Base = *base
	}()

	n.Name = p.consumeIdentifier()

	body := p.consumeInterfaceBody()
	if body.iterable != nil {
		p.emitError("Interface mixin %s cannot declare an iterable", n.Name)
	}
	n.Members = body.members
	n.CustomOps = body.customOps
	return n
}

// interfaceBody holds the contents of an interface or mixin body.
type interfaceBody struct {
	members   []*ast.Member
	customOps []*ast.CustomOp
	iterable  *ast.Iterable
}

// consumeInterfaceBody consumes `{ members };` of an interface or mixin.
func (p *sourceParser) consumeInterfaceBody() interfaceBody {
	var body interfaceBody

	// {
	p.consume(tokenTypeLeftBrace)

loop:
	for !p.isToken(tokenTypeRightBrace, tokenTypeEOF) {
		switch {
		case p.isIdentifier("serializer") || p.isIdentifier("jsonifier") ||
			(p.isIdentifier("stringifier") && p.isNextToken(tokenTypeSemicolon)):
			op := &ast.CustomOp{}
			finish := p.node(op)
			op.Name = p.consumeIdentifier()
			_, ok := p.consume(tokenTypeSemicolon)
			finish()

			body.customOps = append(body.customOps, op)

			if !ok {
				break loop
			}
			continue

		case p.isIdentifier("iterable"):
			if body.iterable != nil {
				p.emitError("Duplicate iterable declaration")
			}
			body.iterable = p.consumeIterable()
			if _, ok := p.consume(tokenTypeSemicolon); !ok {
				break loop
			}
			continue
		}

		body.members = append(body.members, p.consumeMember(false))

		if _, ok := p.consume(tokenTypeSemicolon); !ok {
			break
		}
	}

	// };
	p.consume(tokenTypeRightBrace)
	p.consume(tokenTypeSemicolon)
	return body
}

// consumeIterable consumes iterable<V> or iterable<K, V>.
func (p *sourceParser) consumeIterable() *ast.Iterable {
	n := &ast.Iterable{}
	defer p.node(n)()

	p.consumeKeyword("iterable")
	p.consume(tokenTypeLeftTri)
	first := p.consumeType()
	if _, ok := p.tryConsume(tokenTypeComma); ok {
		n.Key = first
		n.Type = p.consumeType()
	} else {
		n.Type = first
	}
	p.consume(tokenTypeRightTri)
	return n
}

func (p *sourceParser) consumeDictionary(partial bool, ann []*ast.Annotation, base *ast.Base, finish func()) *ast.Dictionary {
	n := &ast.Dictionary{Annotations: ann, Partial: partial}
	defer func() {
		finish()
		n.Base = *base
	}()
	p.consumeKeyword("dictionary")

	n.Name = p.consumeIdentifier()
	if _, ok := p.tryConsume(tokenTypeColon); ok {
		n.Inherits = p.consumeIdentifier()
	}

	// {
	p.consume(tokenTypeLeftBrace)
	for !p.isToken(tokenTypeRightBrace, tokenTypeEOF) {
		n.Members = append(n.Members, p.consumeMember(true))

		if _, ok := p.consume(tokenTypeSemicolon); !ok {
			break
		}
	}

	// };
	p.consume(tokenTypeRightBrace)
	p.consume(tokenTypeSemicolon)
	return n
}

func (p *sourceParser) consumeEnum(ann []*ast.Annotation, base *ast.Base, finish func()) *ast.Enum {
	n := &ast.Enum{Annotations: ann}
	defer func() {
		finish()
		n.Base = *base
	}()
	p.consumeKeyword("enum")
	n.Name = p.consumeIdentifier()

	// {
	p.consume(tokenTypeLeftBrace)
	for !p.isToken(tokenTypeRightBrace) {
		if len(n.Values) != 0 {
			if _, ok := p.tryConsume(tokenTypeComma); !ok {
				break
			}
			// trailing comma
			if p.isToken(tokenTypeRightBrace) {
				break
			}
		}
		if !p.isToken(tokenTypeString) {
			p.emitError("Expected string enum value, found: %v", p.cur.kind)
			break
		}
		n.Values = append(n.Values, p.consumeLiteral())
	}
	if len(n.Values) == 0 {
		p.emitError("Enum %s has no values", n.Name)
	}
	// };
	p.consume(tokenTypeRightBrace)
	p.consume(tokenTypeSemicolon)
	return n
}

func (p *sourceParser) consumeTypedef(ann []*ast.Annotation, base *ast.Base, finish func()) *ast.Typedef {
	n := &ast.Typedef{Annotations: ann}
	defer func() {
		finish()
		n.Base = *base
	}()
	p.consumeKeyword("typedef")
	n.Annotations = append(n.Annotations, p.tryConsumeAnnotations()...)
	n.Type = p.consumeType()
	n.Name = p.consumeIdentifier()
	p.consume(tokenTypeSemicolon)
	return n
}

// consumeDeclaration attempts to consume a declaration, with optional attributes.
func (p *sourceParser) consumeDeclaration() ast.Decl {
	base := &ast.Base{}
	finish := p.node(base)
	ann := p.tryConsumeAnnotations()
	switch {
	case p.isIdentifier("enum"):
		return p.consumeEnum(ann, base, finish)
	case p.isIdentifier("typedef"):
		return p.consumeTypedef(ann, base, finish)
	case p.isIdentifier("callback"):
		_ = p.consumeIdentifier()
		if p.tryConsumeKeyword("interface") {
			return p.consumeInterface(false, true, ann, base, finish)
		}
		name := p.consumeIdentifier()
		p.consume(tokenTypeEquals)
		ret := p.consumeType()
		par := p.consumeParameters()
		p.consume(tokenTypeSemicolon)
		finish()
		return &ast.Callback{Base: *base, Name: name, Annotations: ann, Return: ret, Parameters: par}
	case p.isIdentifier("partial"):
		p.consumeKeyword("partial")
		if p.isIdentifier("dictionary") {
			return p.consumeDictionary(true, ann, base, finish)
		}
		return p.consumeInterfaceOrMixin(true, ann, base, finish)
	case p.isIdentifier("interface"):
		return p.consumeInterfaceOrMixin(false, ann, base, finish)
	case p.isIdentifier("dictionary"):
		return p.consumeDictionary(false, ann, base, finish)
	default:
		p.emitError("Expected interface or dictionary, got: %v", p.cur.kind)
		// first, consume until '{'
		for !p.isToken(tokenTypeLeftBrace, tokenTypeEOF) {
			p.consumeToken()
		}
		// then consume until '}'
		for !p.isToken(tokenTypeRightBrace, tokenTypeEOF) {
			p.consumeToken()
		}
		p.consume(tokenTypeSemicolon)
		finish()
		return &ast.Interface{Base: *base}
	}
}

// consumeMember attempts to consume a member definition in a declaration.
func (p *sourceParser) consumeMember(dict bool) *ast.Member {
	n := &ast.Member{}
	defer p.node(n)()

	n.Annotations = p.tryConsumeAnnotations()
	n.Attribute = dict

	// getter/setter
	if p.isIdentifier("getter") || p.isIdentifier("setter") ||
		p.isIdentifier("deleter") || p.isIdentifier("legacycaller") {
		n.Specialization = p.consumeIdentifier()
	} else if p.tryConsumeKeyword("stringifier") {
		n.Specialization = "stringifier"
	}

	if p.tryConsumeKeyword("const") {
		n.Const = true
	}

	if p.tryConsumeKeyword("static") {
		n.Static = true
	}

	if p.tryConsumeKeyword("inherit") {
		n.Inherit = true
	}

	if p.tryConsumeKeyword("readonly") {
		n.Readonly = true
	}

	if dict && p.tryConsumeKeyword("required") {
		n.Required = true
	}

	if p.tryConsumeKeyword("attribute") {
		n.Attribute = true
	}

	if len(n.Annotations) == 0 {
		n.Annotations = p.tryConsumeAnnotations()
	}

	// Consume the type of the member.
	n.Type = p.consumeType()

	// Consume the member's name.
	n.Name, _ = p.tryConsumeIdentifier()
	if n.Name == "" && (n.Attribute || n.Const) {
		p.emitError("Expected member name, found token %v", p.cur.kind)
	}

	// If not an attribute, consume the parameters of the member.
	if !n.Attribute && !n.Const {
		n.Parameters = p.consumeParameters()
	}
	n.Init = p.tryConsumeDefaultValue()
	return n
}

// tryConsumeAnnotations consumes any annotations found on the parent node.
func (p *sourceParser) tryConsumeAnnotations() (out []*ast.Annotation) {
	for {
		// [
		if _, ok := p.tryConsume(tokenTypeLeftBracket); !ok {
			return
		}

		for {
			// Foo()
			out = append(out, p.consumeAnnotationPart())

			// ,
			if _, ok := p.tryConsume(tokenTypeComma); !ok {
				break
			}
		}

		// ]
		if _, ok := p.consume(tokenTypeRightBracket); !ok {
			return
		}
	}
}

// consumeAnnotationPart consumes an annotation, as found within a set of brackets `[]`.
func (p *sourceParser) consumeAnnotationPart() *ast.Annotation {
	n := &ast.Annotation{}
	defer p.node(n)()

	// Consume the name of the annotation.
	n.Name = p.consumeIdentifier()

	// "="
	if _, ok := p.tryConsume(tokenTypeEquals); ok {
		// Consume (optional) value.

		// "("
		if list, ok := p.tryConsumeIdentifiersList(); ok {
			n.Values = list
			return n
		}
		if token, ok := p.tryConsume(tokenTypeIdentifier, tokenTypeString, tokenTypeNumber); ok {
			n.Value = token.value
		} else {
			p.emitError("Expected annotation value, found token %v", p.cur.kind)
		}
	}

	if p.isToken(tokenTypeLeftParen) {
		// Consume (optional) parameters.
		n.ArgList = true
		n.Parameters = p.consumeParameters()
	}

	return n
}

func (p *sourceParser) tryConsumeIdentifiersList() ([]string, bool) {
	// "("
	_, ok := p.tryConsume(tokenTypeLeftParen)
	if !ok {
		return nil, false
	}
	// identifier list
	var list []string
	for {
		list = append(list, p.consumeIdentifier())
		// ","
		if _, ok := p.tryConsume(tokenTypeComma); !ok {
			break
		}
	}
	// ")"
	p.consume(tokenTypeRightParen)
	return list, true
}

// expandedTypeKeywords defines the keywords that form the prefixes for expanded types:
// multi-identifier type names.
var expandedTypeKeywords = map[string][]string{
	"unsigned":     {"short", "long"},
	"long":         {"long"},
	"unrestricted": {"float", "double"},
}

// genericTypeNames are the type names that take <type parameters>.
var genericTypeNames = map[string]bool{
	"sequence":    true,
	"FrozenArray": true,
	"Promise":     true,
	"record":      true,
	"MozMap":      true,
}

func (p *sourceParser) consumeType() ast.Type {
	t := p.consumeNonNullableType()
	if _, ok := p.tryConsume(tokenTypeQuestionMark); ok {
		nl := &ast.NullableType{Type: t}
		nl.Start = t.NodeBase().Start
		nl.End = t.NodeBase().End + 1
		return nl
	}
	return t
}

func (p *sourceParser) consumeNonNullableType() ast.Type {
	base := &ast.Base{}
	finish := p.node(base)
	if p.tryConsumeKeyword("any") {
		finish()
		return &ast.AnyType{Base: *base}
	}

	if p.isToken(tokenTypeIdentifier) && genericTypeNames[p.cur.value] {
		name := p.consumeIdentifier()
		p.consume(tokenTypeLeftTri)
		elem := p.consumeType()
		var key ast.Type
		if name == "record" {
			key = elem
			p.consume(tokenTypeComma)
			elem = p.consumeType()
		}
		p.consume(tokenTypeRightTri)
		finish()
		switch name {
		case "sequence":
			return &ast.SequenceType{Base: *base, Elem: elem}
		case "FrozenArray":
			return &ast.FrozenArrayType{Base: *base, Elem: elem}
		case "Promise":
			return &ast.PromiseType{Base: *base, Elem: elem}
		default:
			return &ast.RecordType{Base: *base, Key: key, Elem: elem}
		}
	}

	if _, ok := p.tryConsume(tokenTypeLeftParen); ok {
		// "("
		var types []ast.Type
		for {
			types = append(types, p.consumeType())
			if !p.tryConsumeKeyword("or") {
				break
			}
		}
		if len(types) < 2 {
			p.emitError("Union type must have at least two member types")
		}
		// ")"
		p.consume(tokenTypeRightParen)
		finish()
		return &ast.UnionType{Base: *base, Types: types}
	}

	identifier := p.consumeIdentifier()
	typeName := identifier

	// If the identifier is the beginning of a possible expanded type name, check for the
	// secondary portions: unsigned long long is three identifiers long.
	for last := identifier; ; {
		secondaries, ok := expandedTypeKeywords[last]
		if !ok {
			break
		}
		matched := false
		for _, secondary := range secondaries {
			if p.isIdentifier(secondary) {
				typeName += " " + secondary
				last = secondary
				p.consume(tokenTypeIdentifier)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	finish()
	return &ast.TypeName{Base: *base, Name: typeName}
}

// consumeParameter attempts to consume a parameter.
func (p *sourceParser) consumeParameter() *ast.Parameter {
	n := &ast.Parameter{}
	defer p.node(n)()
	n.Annotations = p.tryConsumeAnnotations()

	// optional
	if p.tryConsumeKeyword("optional") {
		n.Optional = true
	}

	// Consume the parameter's type.
	n.Type = p.consumeType()
	if _, ok := p.tryConsume(tokenTypeVariadic); ok {
		n.Variadic = true
	}

	// Consume the parameter's name.
	n.Name = p.consumeIdentifier()

	n.Init = p.tryConsumeDefaultValue()

	return n
}

func (p *sourceParser) tryConsumeDefaultValue() *ast.Literal {
	if _, ok := p.tryConsume(tokenTypeEquals); ok {
		return p.consumeLiteral()
	}
	return nil
}

// literalKeywords are the identifiers accepted as constant values.
var literalKeywords = map[string]bool{
	"true":     true,
	"false":    true,
	"null":     true,
	"Infinity": true,
	"NaN":      true,
}

// consumeLiteral consumes a constant or default value.
func (p *sourceParser) consumeLiteral() *ast.Literal {
	n := &ast.Literal{}
	defer p.node(n)()

	switch {
	case p.isToken(tokenTypeString, tokenTypeNumber):
		n.Value = p.cur.value
		p.consumeToken()
	case p.isToken(tokenTypeIdentifier) && literalKeywords[p.cur.value]:
		n.Value = p.cur.value
		p.consumeToken()
	case p.isToken(tokenTypeMinus):
		p.consumeToken()
		if !p.isIdentifier("Infinity") {
			p.emitError("Expected Infinity after '-', found: %v", p.cur.kind)
			return n
		}
		n.Value = "-Infinity"
		p.consumeToken()
	case p.isToken(tokenTypeLeftBracket):
		p.consumeToken()
		p.consume(tokenTypeRightBracket)
		n.Value = "[]"
	case p.isToken(tokenTypeLeftBrace):
		p.consumeToken()
		p.consume(tokenTypeRightBrace)
		n.Value = "{}"
	default:
		p.emitError("Expected literal value, found: %v", p.cur.kind)
	}
	return n
}

// consumeParameters attempts to consume a set of parameters.
func (p *sourceParser) consumeParameters() (out []*ast.Parameter) {
	p.consume(tokenTypeLeftParen)
	if _, ok := p.tryConsume(tokenTypeRightParen); ok {
		return
	}

	for {
		out = append(out, p.consumeParameter())
		if _, ok := p.tryConsume(tokenTypeRightParen); ok {
			return
		}

		if _, ok := p.consume(tokenTypeComma); !ok {
			return
		}
	}
}

// consumeImplementation attempts to consume an implementation definition.
func (p *sourceParser) consumeImplementation() *ast.Implementation {
	n := &ast.Implementation{}
	defer p.node(n)()

	// identifier
	n.Name = p.consumeIdentifier()

	// implements
	if !p.consumeKeyword("implements") {
		return n
	}

	// identifier
	n.Source = p.consumeIdentifier()

	// semicolon
	p.consume(tokenTypeSemicolon)
	return n
}

func (p *sourceParser) consumeIncludes() *ast.Includes {
	n := &ast.Includes{}
	defer p.node(n)()

	// identifier
	n.Name = p.consumeIdentifier()

	// includes
	if !p.consumeKeyword("includes") {
		return n
	}

	// identifier
	n.Source = p.consumeIdentifier()

	// semicolon
	p.consume(tokenTypeSemicolon)
	return n
}
