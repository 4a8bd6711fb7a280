// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "github.com/servo/webidl/ast"

// nodeStack holds the nodes currently under construction; errors emitted
// while parsing attach to the top of the stack.
type nodeStack []ast.Node

func (s nodeStack) topValue() ast.Node {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s *nodeStack) push(value ast.Node) {
	*s = append(*s, value)
}

func (s *nodeStack) pop() ast.Node {
	if len(*s) == 0 {
		return nil
	}
	value := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return value
}
