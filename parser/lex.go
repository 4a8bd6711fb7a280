// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on design first introduced in: http://blog.golang.org/two-go-talks-lexical-scanning-in-go-and
// Portions copied and modified from: https://github.com/golang/go/blob/master/src/text/template/parse/lex.go

package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EOFRUNE is returned by next when the input is exhausted.
const EOFRUNE = -1

// bytePosition is a byte offset into the lexer input.
type bytePosition int

// lexeme represents a token returned from scanning the contents of a file.
type lexeme struct {
	kind     tokenType    // The type of this lexeme.
	position bytePosition // The starting position of this token in the input string.
	value    string       // The textual value of this token.
}

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the scanner.
type lexer struct {
	input   string       // the string being scanned
	source  stateFn      // the top-level state every sub-state returns to
	state   stateFn      // the next lexing function to enter
	pos     bytePosition // current position in the input
	start   bytePosition // start position of this token
	width   bytePosition // width of last rune read from input
	lexemes []lexeme     // scanned lexemes not yet handed out
}

// buildlex creates a new scanner for the input string, starting in the given state.
func buildlex(input string, source stateFn) *lexer {
	return &lexer{
		input:  input,
		source: source,
		state:  source,
	}
}

// lexSource re-enters the top-level state of the lexer.
func lexSource(l *lexer) stateFn {
	return l.source(l)
}

// nextToken returns the next token from the input, running the state machine
// until at least one token is available. Once the machine halts every call
// returns an EOF token.
func (l *lexer) nextToken() lexeme {
	for len(l.lexemes) == 0 {
		if l.state == nil {
			return lexeme{tokenTypeEOF, l.pos, ""}
		}
		l.state = l.state(l)
	}

	token := l.lexemes[0]
	l.lexemes = l.lexemes[1:]
	return token
}

// peekToken returns the count-th upcoming token without consuming it.
// peekToken(1) is the token the next call to nextToken will return.
func (l *lexer) peekToken(count int) lexeme {
	if count < 1 {
		panic(fmt.Sprintf("Expected count >= 1, received: %v", count))
	}

	for len(l.lexemes) < count {
		if l.state == nil {
			return lexeme{tokenTypeEOF, l.pos, ""}
		}
		l.state = l.state(l)
	}
	return l.lexemes[count-1]
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if int(l.pos) >= len(l.input) {
		l.width = 0
		return EOFRUNE
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = bytePosition(w)
	l.pos += l.width
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can be called only once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// emit passes a token back to the client.
func (l *lexer) emit(t tokenType) {
	l.lexemes = append(l.lexemes, lexeme{t, l.start, l.input[l.start:l.pos]})
	l.start = l.pos
}

// accept consumes the next rune if it's from the valid set.
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set and reports whether
// at least one rune was consumed.
func (l *lexer) acceptRun(valid string) bool {
	found := false
	for strings.ContainsRune(valid, l.next()) {
		found = true
	}
	l.backup()
	return found
}

// acceptString consumes the given string if the input continues with it.
func (l *lexer) acceptString(value string) bool {
	if strings.HasPrefix(l.input[l.pos:], value) {
		l.pos += bytePosition(len(value))
		return true
	}
	return false
}

// errorf returns an error token and terminates the scan by passing
// back a nil pointer that will be the next state.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.lexemes = append(l.lexemes, lexeme{tokenTypeError, l.start, fmt.Sprintf(format, args...)})
	return nil
}

// buildLexUntil returns a state that consumes runes for as long as the checker
// accepts them, then emits a single token of the given kind.
func buildLexUntil(kind tokenType, checker func(r rune) (bool, error)) stateFn {
	return func(l *lexer) stateFn {
		for {
			ok, err := checker(l.peek())
			if err != nil {
				return l.errorf("%v", err)
			}
			if !ok {
				break
			}
			l.next()
		}
		l.emit(kind)
		return lexSource
	}
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isNewline reports whether r is an end-of-line character.
func isNewline(r rune) bool {
	return r == '\r' || r == '\n'
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
