// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser translates WebIDL (https://webidl.spec.whatwg.org/) source
// into an AST.
package parser

import (
	"fmt"

	"github.com/servo/webidl/ast"
)

// Parse parses the given WebIDL source into a parse tree. Syntax errors do not
// stop the parse; they are attached to the nodes as *ast.ErrorNode values and
// can be collected with ast.Errors.
func Parse(input string) *ast.File {
	p := &sourceParser{
		lex:  lex(input),
		cur:  token{lexeme: lexeme{kind: tokenTypeEOF}},
		prev: token{lexeme: lexeme{kind: tokenTypeEOF}},
	}
	return p.consumeTopLevel()
}

// token is a significant lexeme together with the comments that preceded it.
type token struct {
	lexeme
	comments []string
}

// sourceParser is a recursive-descent parser over the lexer output. Rules
// live in parser_rules.go.
type sourceParser struct {
	lex   *lexer
	nodes nodeStack
	cur   token // the token under examination
	prev  token // the last consumed token, used for end positions
}

// skipped reports whether tokens of the given kind are invisible to the
// grammar.
func skipped(kind tokenType) bool {
	return kind == tokenTypeWhitespace || kind == tokenTypeComment
}

// consumeToken moves to the next significant token, collecting the comments
// in between, and returns it.
func (p *sourceParser) consumeToken() token {
	var comments []string
	for {
		l := p.lex.nextToken()
		if isCommentToken(l.kind) {
			comments = append(comments, l.value)
		}
		if !skipped(l.kind) {
			p.prev, p.cur = p.cur, token{lexeme: l, comments: comments}
			return p.cur
		}
	}
}

// nextToken returns the significant token after the current one without
// consuming anything.
func (p *sourceParser) nextToken() lexeme {
	for i := 1; ; i++ {
		if l := p.lex.peekToken(i); !skipped(l.kind) {
			return l
		}
	}
}

// node pushes n, starting at the current token, and returns the function that
// pops it again, ending it at the last consumed token.
func (p *sourceParser) node(n ast.Node) func() {
	p.start(n, p.cur)
	p.nodes.push(n)
	return func() {
		top := p.nodes.pop()
		if top == nil {
			panic(fmt.Sprintf("node stack is empty at token %q", p.cur.value))
		}
		p.end(top, p.prev)
	}
}

func (p *sourceParser) start(n ast.Node, t token) {
	b := n.NodeBase()
	b.Start = int(t.position)
	b.Comments = append(b.Comments, t.comments...)
}

func (p *sourceParser) end(n ast.Node, t token) {
	n.NodeBase().End = int(t.position) + len(t.value) - 1
}

// emitError attaches an error at the current token to the node on top of the
// stack. A lexer error replaces the message, since it explains the token.
func (p *sourceParser) emitError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.cur.kind == tokenTypeError && p.cur.value != "" {
		msg = p.cur.value
	}
	e := &ast.ErrorNode{Message: msg}
	p.start(e, p.cur)
	p.end(e, p.cur)
	b := p.nodes.topValue().NodeBase()
	b.Errors = append(b.Errors, e)
}

func (p *sourceParser) isToken(kinds ...tokenType) bool {
	for _, k := range kinds {
		if p.cur.kind == k {
			return true
		}
	}
	return false
}

func (p *sourceParser) isNextToken(kinds ...tokenType) bool {
	next := p.nextToken().kind
	for _, k := range kinds {
		if next == k {
			return true
		}
	}
	return false
}

// isIdentifier reports whether the current token is the identifier value.
// WebIDL keywords are lexed as identifiers, so this also matches keywords.
func (p *sourceParser) isIdentifier(value string) bool {
	return p.cur.kind == tokenTypeIdentifier && p.cur.value == value
}

// isNextKeyword is isIdentifier for the token after the current one.
func (p *sourceParser) isNextKeyword(keyword string) bool {
	next := p.nextToken()
	return next.kind == tokenTypeIdentifier && next.value == keyword
}

func (p *sourceParser) tryConsume(kinds ...tokenType) (lexeme, bool) {
	if !p.isToken(kinds...) {
		return lexeme{kind: tokenTypeError, position: -1}, false
	}
	t := p.cur
	p.consumeToken()
	return t.lexeme, true
}

// consume is tryConsume that records an error when the current token is not
// one of kinds.
func (p *sourceParser) consume(kinds ...tokenType) (lexeme, bool) {
	l, ok := p.tryConsume(kinds...)
	if !ok {
		p.emitError("Expected one of: %v, found: %v", kinds, p.cur.kind)
	}
	return l, ok
}

func (p *sourceParser) tryConsumeKeyword(keyword string) bool {
	if !p.isIdentifier(keyword) {
		return false
	}
	p.consumeToken()
	return true
}

func (p *sourceParser) consumeKeyword(keyword string) bool {
	if !p.tryConsumeKeyword(keyword) {
		p.emitError("Expected keyword %s, found token %v", keyword, p.cur.kind)
		return false
	}
	return true
}

func (p *sourceParser) tryConsumeIdentifier() (string, bool) {
	l, ok := p.tryConsume(tokenTypeIdentifier)
	return l.value, ok
}

func (p *sourceParser) consumeIdentifier() string {
	name, ok := p.tryConsumeIdentifier()
	if !ok {
		p.emitError("Expected identifier, found token %v", p.cur.kind)
	}
	return name
}
