package idl

import (
	"strings"

	"github.com/servo/webidl/types"
)

// overloadSet is a group of signatures that share a name on one owner.
type overloadSet struct {
	name string
	sigs []*Signature
	locs []Location
}

// applicable reports whether s can be called with argc arguments.
func applicable(s *Signature, argc int) bool {
	n := len(s.Args)
	switch {
	case n == argc:
		return true
	case argc < n:
		return s.Args[argc].Optional || s.Args[argc].Variadic
	}
	return n > 0 && s.Args[n-1].Variadic
}

// argType returns the type of argument i, repeating a trailing variadic one.
func argType(s *Signature, i int) *types.Type {
	if i < len(s.Args) {
		return s.Args[i].Type
	}
	return s.Args[len(s.Args)-1].Type
}

func signatureString(name string, s *Signature) string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.Type.String()
		if a.Variadic {
			parts[i] += "..."
		}
		if a.Optional {
			parts[i] = "optional " + parts[i]
		}
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// check verifies that for every argument count the applicable signatures
// differ at some index, and that at the first such index every pair of
// types is distinguishable.
func (o *overloadSet) check(h types.Hierarchy) error {
	if len(o.sigs) < 2 {
		return nil
	}
	maxArgs := 0
	for _, s := range o.sigs {
		if len(s.Args) > maxArgs {
			maxArgs = len(s.Args)
		}
	}
	for argc := 0; argc <= maxArgs; argc++ {
		var set []int
		for i, s := range o.sigs {
			if applicable(s, argc) {
				set = append(set, i)
			}
		}
		if len(set) < 2 {
			continue
		}
		index := -1
		for i := 0; i < argc && index < 0; i++ {
			first := argType(o.sigs[set[0]], i)
			for _, j := range set[1:] {
				if !types.Equal(first, argType(o.sigs[j], i)) {
					index = i
					break
				}
			}
		}
		if index < 0 {
			return o.ambiguous(set[0], set[1], "with %d arguments", argc)
		}
		for x := 0; x < len(set); x++ {
			for y := x + 1; y < len(set); y++ {
				a, b := argType(o.sigs[set[x]], index), argType(o.sigs[set[y]], index)
				if !types.Distinguishable(a, b, h) {
					return o.ambiguous(set[x], set[y], "with %d arguments: %s and %s at index %d are not distinguishable", argc, a, b, index)
				}
			}
		}
	}
	return nil
}

func (o *overloadSet) ambiguous(i, j int, format string, args ...interface{}) error {
	a, b := signatureString(o.name, o.sigs[i]), signatureString(o.name, o.sigs[j])
	params := append([]interface{}{a, b}, args...)
	return errorf(AmbiguousOverloadError, "overloads %s and %s are ambiguous "+format, params...).
		named(o.name).at(o.locs[i], o.locs[j])
}

// operationSets groups the named operations of one owner by name and
// staticness, in declaration order.
func operationSets(list []Member) []*overloadSet {
	type key struct {
		name   string
		static bool
	}
	index := make(map[key]*overloadSet)
	var out []*overloadSet
	for _, m := range list {
		op, ok := m.(*Operation)
		if !ok || op.Name == "" {
			continue
		}
		k := key{op.Name, op.Static}
		set := index[k]
		if set == nil {
			set = &overloadSet{name: op.QName()}
			index[k] = set
			out = append(out, set)
		}
		set.sigs = append(set.sigs, op.Signature)
		set.locs = append(set.locs, op.Location)
	}
	return out
}

// checkOverloads checks every overloaded operation and constructor set.
func (v *validator) checkOverloads() error {
	for _, d := range v.g.defs {
		var sets []*overloadSet
		switch d := d.(type) {
		case *Interface:
			sets = operationSets(d.Members)
			if len(d.Constructors) > 0 {
				ctors := &overloadSet{name: d.QName() + "::constructor"}
				for _, c := range d.Constructors {
					ctors.sigs = append(ctors.sigs, c)
					ctors.locs = append(ctors.locs, d.Location)
				}
				sets = append(sets, ctors)
			}
			named := make(map[string]*overloadSet)
			for _, c := range d.NamedConstructors {
				set := named[c.Name]
				if set == nil {
					set = &overloadSet{name: "::" + c.Name}
					named[c.Name] = set
					sets = append(sets, set)
				}
				set.sigs = append(set.sigs, c.Signature)
				set.locs = append(set.locs, d.Location)
			}
		case *Mixin:
			sets = operationSets(d.Members)
		}
		for _, set := range sets {
			if err := set.check(v.g); err != nil {
				return err
			}
		}
	}
	return nil
}
