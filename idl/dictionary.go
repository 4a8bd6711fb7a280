package idl

import (
	"github.com/servo/webidl/types"
)

// ancestors returns the dictionary followed by its parents.
func (g *graph) ancestors(d *Dictionary) []*Dictionary {
	var out []*Dictionary
	for d != nil {
		out = append(out, d)
		if d.Parent == "" {
			break
		}
		d = g.dictionary(d.Parent)
	}
	return out
}

// typeContains reports whether values of t can hold the dictionary target,
// looking through nullable, sequence, frozen array, record and union layers.
func (g *graph) typeContains(t *types.Type, target string, seen map[string]bool) bool {
	switch t.Kind {
	case types.Nullable, types.Sequence, types.FrozenArray, types.Record:
		return g.typeContains(t.Elem, target, seen)
	case types.Union:
		for _, m := range t.Members {
			if g.typeContains(m, target, seen) {
				return true
			}
		}
	case types.Dictionary:
		return g.dictContains(t.Name, target, seen)
	}
	return false
}

// dictContains reports whether the dictionary name is target, or inherits
// from or has a member containing target.
func (g *graph) dictContains(name, target string, seen map[string]bool) bool {
	if name == target {
		return true
	}
	if seen[name] {
		return false
	}
	seen[name] = true
	d := g.dictionary(name)
	if d == nil {
		return false
	}
	if d.Parent != "" && g.dictContains(d.Parent, target, seen) {
		return true
	}
	for _, m := range d.Members {
		if g.typeContains(m.Type, target, seen) {
			return true
		}
	}
	return false
}

// checkDictionaries checks member uniqueness across ancestors,
// self-containment, and member defaults.
func (v *validator) checkDictionaries() error {
	for _, def := range v.g.defs {
		d, ok := def.(*Dictionary)
		if !ok {
			continue
		}

		seen := make(map[string]*DictionaryMember)
		for _, a := range v.g.ancestors(d) {
			for _, m := range a.Members {
				if prev, ok := seen[m.Name]; ok {
					return errorf(DuplicateMemberError, "dictionary %s has more than one member named %s", d.Name, m.Name).
						named(prev.QName(), m.QName()).at(prev.Location, m.Location)
				}
				seen[m.Name] = m
			}
		}

		for _, m := range d.Members {
			if v.g.typeContains(m.Type, d.Name, make(map[string]bool)) {
				return errorf(RecursiveDictionaryError, "member %s of type %s makes dictionary %s contain itself", m.Name, m.Type, d.Name).
					named(d.QName(), m.QName()).at(m.Location)
			}
			if m.Default == nil {
				continue
			}
			if m.Required {
				return errorf(IllegalDefaultValueError, "required member %s cannot have a default value", m.QName()).
					named(m.QName()).at(m.Location)
			}
			if err := v.checkDefault(m.Type, m.Default, m.QName(), m.Location); err != nil {
				return err
			}
		}
	}
	return nil
}
