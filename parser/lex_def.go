// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"errors"
	"strconv"
)

// lex creates a new scanner for the input string.
func lex(input string) *lexer {
	return buildlex(input, performLexSource)
}

// tokenType identifies the type of lexer lexemes.
type tokenType int

const (
	tokenTypeError tokenType = iota // error occurred; value is text of error
	tokenTypeEOF
	tokenTypeWhitespace
	tokenTypeComment

	tokenTypeIdentifier // helloworld, interface
	tokenTypeString     // "hello"
	tokenTypeNumber     // 123

	tokenTypeLeftBrace    // {
	tokenTypeRightBrace   // }
	tokenTypeLeftParen    // (
	tokenTypeRightParen   // )
	tokenTypeLeftBracket  // [
	tokenTypeRightBracket // ]
	tokenTypeLeftTri      // <
	tokenTypeRightTri     // >

	tokenTypeEquals       // =
	tokenTypeSemicolon    // ;
	tokenTypeComma        // ,
	tokenTypeQuestionMark // ?
	tokenTypeColon        // :
	tokenTypeVariadic     // ...
	tokenTypeMinus        // -
)

var tokenTypeNames = [...]string{
	tokenTypeError:        "Error",
	tokenTypeEOF:          "EOF",
	tokenTypeWhitespace:   "Whitespace",
	tokenTypeComment:      "Comment",
	tokenTypeIdentifier:   "Identifier",
	tokenTypeString:       "String",
	tokenTypeNumber:       "Number",
	tokenTypeLeftBrace:    "LeftBrace",
	tokenTypeRightBrace:   "RightBrace",
	tokenTypeLeftParen:    "LeftParen",
	tokenTypeRightParen:   "RightParen",
	tokenTypeLeftBracket:  "LeftBracket",
	tokenTypeRightBracket: "RightBracket",
	tokenTypeLeftTri:      "LeftTri",
	tokenTypeRightTri:     "RightTri",
	tokenTypeEquals:       "Equals",
	tokenTypeSemicolon:    "Semicolon",
	tokenTypeComma:        "Comma",
	tokenTypeQuestionMark: "QuestionMark",
	tokenTypeColon:        "Colon",
	tokenTypeVariadic:     "Variadic",
	tokenTypeMinus:        "Minus",
}

func (t tokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "tokenType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenTypeNames[t]
}

func isCommentToken(kind tokenType) bool {
	return kind == tokenTypeComment
}

// performLexSource scans until EOFRUNE
func performLexSource(l *lexer) stateFn {
Loop:
	for {
		switch r := l.next(); {
		case r == EOFRUNE:
			break Loop

		case r == '{':
			l.emit(tokenTypeLeftBrace)

		case r == '}':
			l.emit(tokenTypeRightBrace)

		case r == '(':
			l.emit(tokenTypeLeftParen)

		case r == ')':
			l.emit(tokenTypeRightParen)

		case r == '[':
			l.emit(tokenTypeLeftBracket)

		case r == ']':
			l.emit(tokenTypeRightBracket)

		case r == '<':
			l.emit(tokenTypeLeftTri)

		case r == '>':
			l.emit(tokenTypeRightTri)

		case r == ';':
			l.emit(tokenTypeSemicolon)

		case r == ',':
			l.emit(tokenTypeComma)

		case r == '.':
			if l.acceptString("..") {
				l.emit(tokenTypeVariadic)
			} else if isDigit(l.peek()) {
				l.backup()
				return lexNumber
			} else {
				return l.errorf("unrecognized character at this location: %#U", r)
			}

		case r == '-':
			if next := l.peek(); isDigit(next) || next == '.' {
				l.backup()
				return lexNumber
			}
			l.emit(tokenTypeMinus)

		case r == '=':
			l.emit(tokenTypeEquals)

		case r == '?':
			l.emit(tokenTypeQuestionMark)

		case r == ':':
			l.emit(tokenTypeColon)

		case isSpace(r) || isNewline(r):
			l.emit(tokenTypeWhitespace)

		case r == '"':
			l.backup()
			return lexStringLiteral

		case isDigit(r):
			l.backup()
			return lexNumber

		case isAlphaNumeric(r):
			l.backup()
			return lexIdentifierOrKeyword

		case r == '/':
			switch l.peek() {
			case '/':
				return lexSinglelineComment
			case '*':
				return lexMultilineComment
			}
			return l.errorf("unrecognized character at this location: %#U", r)

		default:
			return l.errorf("unrecognized character at this location: %#U", r)
		}
	}

	l.emit(tokenTypeEOF)
	return nil
}

// lexSinglelineComment scans until newline or EOFRUNE
func lexSinglelineComment(l *lexer) stateFn {
	checker := func(r rune) (bool, error) {
		result := r == EOFRUNE || isNewline(r)
		return !result, nil
	}

	l.accept("/")
	return buildLexUntil(tokenTypeComment, checker)
}

// lexMultilineComment scans until the closing */
func lexMultilineComment(l *lexer) stateFn {
	l.accept("*")
	star := false
	checker := func(r rune) (bool, error) {
		if r == EOFRUNE {
			return false, errors.New("unterminated comment")
		}
		if star && r == '/' {
			l.next()
			return false, nil
		}
		star = r == '*'
		return true, nil
	}
	return buildLexUntil(tokenTypeComment, checker)
}

// lexIdentifierOrKeyword searches for a keyword or literal identifier.
func lexIdentifierOrKeyword(l *lexer) stateFn {
	for {
		if !isAlphaNumeric(l.peek()) {
			break
		}

		l.next()
	}
	l.emit(tokenTypeIdentifier)
	return lexSource
}

const (
	decimalDigits = "0123456789"
	hexDigits     = "0123456789abcdefABCDEF"
)

// lexNumber scans an integer or decimal literal, with an optional leading minus.
func lexNumber(l *lexer) stateFn {
	l.accept("-")
	if l.accept("0") && l.accept("xX") {
		if !l.acceptRun(hexDigits) {
			return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
		}
	} else {
		l.acceptRun(decimalDigits)
		if l.accept(".") {
			l.acceptRun(decimalDigits)
		}
		if l.accept("eE") {
			l.accept("+-")
			if !l.acceptRun(decimalDigits) {
				return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
			}
		}
	}
	if isAlphaNumeric(l.peek()) {
		l.next()
		return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
	}
	l.emit(tokenTypeNumber)
	return lexSource
}

func lexStringLiteral(l *lexer) stateFn {
	l.accept(`"`)
	esc := false
	for {
		c := l.peek()
		if c == EOFRUNE || isNewline(c) {
			return l.errorf("unterminated string literal")
		}
		if c == '"' && !esc {
			l.next()
			break
		}
		esc = c == '\\' && !esc
		l.next()
	}
	l.emit(tokenTypeString)
	return lexSource
}
