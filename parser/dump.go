package parser

import (
	"io"

	"github.com/kr/pretty"

	"github.com/servo/webidl/ast"
)

// Dump writes the parse tree rooted at n to w, one field per line.
func Dump(w io.Writer, n ast.Node) error {
	_, err := io.WriteString(w, DumpString(n))
	return err
}

// DumpString renders the parse tree rooted at n. Parser tests compare it
// against the .tree files under tests/.
func DumpString(n ast.Node) string {
	return pretty.Sprintf("%# v", n)
}
