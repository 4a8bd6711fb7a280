package idl

import (
	"github.com/golang/glog"

	"github.com/servo/webidl/parser"
)

type state int

const (
	stateEmpty state = iota
	stateAccumulating
	stateFinished
)

func (s state) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateAccumulating:
		return "accumulating"
	}
	return "finished"
}

// Parser is a WebIDL parse session. Source is added with Parse or ParseFile
// and the validated definitions are produced once by Finish. A Parser is not
// safe for concurrent use.
type Parser struct {
	cfg     Config
	state   state
	pending []Definition
	err     error
}

// NewParser returns an empty session that validates with cfg.
func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// Parse adds the definitions in text to the session.
func (p *Parser) Parse(text string) error {
	return p.ParseFile("", text)
}

// ParseFile is like Parse, but locations in errors name the file.
//
// A syntax error is sticky: the definitions of the failing chunk are
// discarded and every later Parse and Finish returns the same error until
// Reset.
func (p *Parser) ParseFile(name, text string) error {
	if p.state == stateFinished {
		return ErrFinished
	}
	if p.err != nil {
		return p.err
	}
	f := parser.Parse(text)
	b := newBuilder(name, text)
	if err := b.syntaxError(f); err != nil {
		p.err = err
		return err
	}
	defs, err := b.build(f)
	if err != nil {
		p.err = err
		return err
	}
	p.pending = append(p.pending, defs...)
	p.transition(stateAccumulating)
	glog.V(1).Infof("webidl: parsed %d definitions from %q, %d pending", len(defs), name, len(p.pending))
	return nil
}

// Finish merges partial definitions, resolves names and validates the
// session. It returns the definitions in first-seen order, or the first
// error found, in which case no definitions are returned. A Parser can be
// finished once; use Reset to start over.
func (p *Parser) Finish() ([]Definition, error) {
	if p.state == stateFinished {
		return nil, ErrFinished
	}
	p.transition(stateFinished)
	if p.err != nil {
		return nil, p.err
	}
	defs, err := p.finish()
	p.pending = nil
	if err != nil {
		p.err = err
		return nil, err
	}
	return defs, nil
}

func (p *Parser) finish() ([]Definition, error) {
	s := newScope()
	for _, d := range p.pending {
		if err := s.declare(d, isPartial(d)); err != nil {
			return nil, err
		}
	}
	defs, err := s.merge(p.cfg.PartialAttributes)
	if err != nil {
		return nil, err
	}
	if err := validate(p.cfg, defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Reset discards all definitions and errors and returns p, ready for a new
// session with the same configuration.
func (p *Parser) Reset() *Parser {
	p.transition(stateEmpty)
	p.pending = nil
	p.err = nil
	return p
}

func (p *Parser) transition(to state) {
	if p.state != to {
		glog.V(1).Infof("webidl: session %s -> %s", p.state, to)
		p.state = to
	}
}
