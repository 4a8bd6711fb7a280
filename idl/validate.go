package idl

import (
	"github.com/golang/glog"

	"github.com/servo/webidl/types"
)

type validator struct {
	cfg Config
	g   *graph
}

// pass is one validation step. Passes run in order and the first error
// stops validation.
type pass struct {
	name string
	run  func(v *validator) error
}

var passes = []pass{
	{"relations", func(v *validator) error { return v.g.resolveRelations() }},
	{"types", func(v *validator) error { return v.g.resolveTypes() }},
	{"extended attributes", (*validator).checkAttributes},
	{"inheritance cycles", func(v *validator) error { return v.g.checkInheritanceCycles() }},
	{"implements cycles", func(v *validator) error { return v.g.checkImplementsCycles() }},
	{"type legality", (*validator).checkTypes},
	{"members", (*validator).checkMembers},
	{"dictionaries", (*validator).checkDictionaries},
	{"arguments", (*validator).checkArguments},
	{"overloads", (*validator).checkOverloads},
}

// validate resolves and checks merged definitions in place.
func validate(cfg Config, defs []Definition) error {
	v := &validator{cfg: cfg, g: newGraph(defs)}
	for _, p := range passes {
		glog.V(2).Infof("webidl: running %s pass over %d definitions", p.name, len(defs))
		if err := p.run(v); err != nil {
			glog.V(2).Infof("webidl: %s pass failed: %v", p.name, err)
			return err
		}
	}
	return nil
}

// checkDefault checks a constant or default value against its type.
func (v *validator) checkDefault(t *types.Type, val *Value, where string, loc Location) error {
	if msg := checkValue(t, val, v.g.enum); msg != "" {
		return errorf(IllegalDefaultValueError, "%s: %s", where, msg).named(where).at(loc)
	}
	return nil
}
