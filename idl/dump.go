package idl

import (
	"bytes"
	"io"

	"github.com/kr/pretty"
)

// Dump writes a readable rendering of defs to w.
func Dump(w io.Writer, defs []Definition) error {
	for _, d := range defs {
		if _, err := pretty.Fprintf(w, "%s %s\n%# v\n", defKind(d), d.QName(), d); err != nil {
			return err
		}
	}
	return nil
}

func DumpString(defs []Definition) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, defs); err != nil {
		panic(err)
	}
	return buf.String()
}
