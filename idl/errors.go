package idl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind classifies validation failures.
type ErrorKind int

const (
	// NoKind is returned by KindOf for errors not produced by this package.
	NoKind ErrorKind = iota
	SyntaxError
	NameCollisionError
	InheritanceCycleError
	ImplementsCycleError
	DuplicateMemberError
	RecursiveDictionaryError
	IllegalNullableError
	IllegalDefaultValueError
	IllegalOptionalArgumentError
	AmbiguousOverloadError
	UnknownExtendedAttributeError
	UnresolvedIdentifierError
	IllegalInheritanceError
	IllegalUnionError
	IllegalTypeError
	IllegalExtendedAttributeError
)

var errorKindNames = [...]string{
	NoKind:                        "NoKind",
	SyntaxError:                   "SyntaxError",
	NameCollisionError:            "NameCollisionError",
	InheritanceCycleError:         "InheritanceCycleError",
	ImplementsCycleError:          "ImplementsCycleError",
	DuplicateMemberError:          "DuplicateMemberError",
	RecursiveDictionaryError:      "RecursiveDictionaryError",
	IllegalNullableError:          "IllegalNullableError",
	IllegalDefaultValueError:      "IllegalDefaultValueError",
	IllegalOptionalArgumentError:  "IllegalOptionalArgumentError",
	AmbiguousOverloadError:        "AmbiguousOverloadError",
	UnknownExtendedAttributeError: "UnknownExtendedAttributeError",
	UnresolvedIdentifierError:     "UnresolvedIdentifierError",
	IllegalInheritanceError:       "IllegalInheritanceError",
	IllegalUnionError:             "IllegalUnionError",
	IllegalTypeError:              "IllegalTypeError",
	IllegalExtendedAttributeError: "IllegalExtendedAttributeError",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return errorKindNames[k]
}

// Location is a position in WebIDL source.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (l Location) IsValid() bool { return l.Line > 0 }

func (l Location) String() string {
	pos := strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
	if l.File == "" {
		return pos
	}
	return l.File + ":" + pos
}

// Error is a fatal WebIDL error.
type Error struct {
	Kind    ErrorKind
	Message string
	// Names are the qualified names of the constructs involved.
	Names     []string
	Locations []Location
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	for _, l := range e.Locations {
		if !l.IsValid() {
			continue
		}
		b.WriteString("\n  at ")
		b.WriteString(l.String())
	}
	return b.String()
}

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// at appends source locations to the error.
func (e *Error) at(locs ...Location) *Error {
	e.Locations = append(e.Locations, locs...)
	return e
}

// named appends construct names to the error.
func (e *Error) named(names ...string) *Error {
	e.Names = append(e.Names, names...)
	return e
}

// ErrFinished is returned when a finished Parser is used without Reset.
var ErrFinished = errors.New("webidl: parser is finished; call Reset")

// KindOf returns the kind of a WebIDL error, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return NoKind
}
