package idl

import (
	"github.com/golang/glog"
)

// scope is the table of top-level names for one session.
type scope struct {
	defs     map[string]Definition
	partials map[string][]Definition
	// order holds each name once, in first-seen order, and every includes
	// statement at its position.
	order []scopeEntry
}

type scopeEntry struct {
	name     string
	includes *Includes
}

func newScope() *scope {
	return &scope{
		defs:     make(map[string]Definition),
		partials: make(map[string][]Definition),
	}
}

// defKind names the kind a partial must share with its base.
func defKind(d Definition) string {
	switch d := d.(type) {
	case *Interface:
		if d.Callback {
			return "callback interface"
		}
		return "interface"
	case *Mixin:
		return "interface mixin"
	case *Dictionary:
		return "dictionary"
	case *Enum:
		return "enum"
	case *Callback:
		return "callback"
	case *Typedef:
		return "typedef"
	case *ExternalInterface:
		return "external interface"
	case *Includes:
		return "includes"
	}
	panic("idl: unknown definition type")
}

func isPartial(d Definition) bool {
	switch d := d.(type) {
	case *Interface:
		return d.Partial
	case *Mixin:
		return d.Partial
	case *Dictionary:
		return d.Partial
	}
	return false
}

func collision(format string, a, b Definition) *Error {
	return errorf(NameCollisionError, format, a.Ident().Name, defKind(a), defKind(b)).
		named(a.QName()).at(b.Pos(), a.Pos())
}

// declare adds a definition to the table. Repeated external interface
// declarations keep the first one.
func (s *scope) declare(def Definition, partial bool) error {
	if inc, ok := def.(*Includes); ok {
		s.order = append(s.order, scopeEntry{includes: inc})
		return nil
	}
	name := def.Ident().Name
	base := s.defs[name]
	if base == nil && len(s.partials[name]) == 0 {
		s.order = append(s.order, scopeEntry{name: name})
	}
	if partial {
		if base != nil && defKind(base) != defKind(def) {
			return collision("partial %s (%s) does not match its %s definition", def, base)
		}
		for _, p := range s.partials[name] {
			if defKind(p) != defKind(def) {
				return collision("partial %s (%s) does not match an earlier partial %s", def, p)
			}
		}
		s.partials[name] = append(s.partials[name], def)
		return nil
	}
	if base != nil {
		_, ext1 := base.(*ExternalInterface)
		_, ext2 := def.(*ExternalInterface)
		if ext1 && ext2 {
			return nil
		}
		return collision("%s (%s) is already defined as %s", def, base)
	}
	for _, p := range s.partials[name] {
		if defKind(p) != defKind(def) {
			return collision("%s (%s) does not match an earlier partial %s", def, p)
		}
	}
	s.defs[name] = def
	return nil
}

func (s *scope) resolve(name string) (Definition, bool) {
	d, ok := s.defs[name]
	return d, ok
}

// merge folds partial definitions into their bases and returns the
// definitions in first-seen order.
func (s *scope) merge(policy PartialAttributePolicy) ([]Definition, error) {
	out := make([]Definition, 0, len(s.order))
	for _, e := range s.order {
		if e.includes != nil {
			out = append(out, e.includes)
			continue
		}
		base, ok := s.resolve(e.name)
		if !ok {
			p := s.partials[e.name][0]
			return nil, errorf(UnresolvedIdentifierError, "partial %s %s has no base definition", defKind(p), e.name).
				named(p.QName()).at(p.Pos())
		}
		for _, p := range s.partials[e.name] {
			if err := mergeInto(base, p, policy); err != nil {
				return nil, err
			}
		}
		if n := len(s.partials[e.name]); n > 0 {
			glog.V(2).Infof("webidl: merged %d partial definitions into %s", n, base.QName())
		}
		out = append(out, base)
	}
	return out, nil
}

func mergeAttrs(base *ExtendedAttributes, partial ExtendedAttributes, name string, policy PartialAttributePolicy) error {
	if len(partial) == 0 {
		return nil
	}
	if policy == RejectPartialAttributes {
		return errorf(IllegalExtendedAttributeError, "extended attribute [%s] is not allowed on partial definition of %s", partial[0].Name, name).
			named("::" + name).at(partial[0].Location)
	}
	*base = append(*base, partial...)
	return nil
}

func mergeInto(base, partial Definition, policy PartialAttributePolicy) error {
	switch b := base.(type) {
	case *Interface:
		p := partial.(*Interface)
		if err := mergeAttrs(&b.ExtAttrs, p.ExtAttrs, b.Name, policy); err != nil {
			return err
		}
		b.Members = append(b.Members, p.Members...)
		b.CustomOps = append(b.CustomOps, p.CustomOps...)
	case *Mixin:
		p := partial.(*Mixin)
		if err := mergeAttrs(&b.ExtAttrs, p.ExtAttrs, b.Name, policy); err != nil {
			return err
		}
		b.Members = append(b.Members, p.Members...)
		b.CustomOps = append(b.CustomOps, p.CustomOps...)
	case *Dictionary:
		p := partial.(*Dictionary)
		if err := mergeAttrs(&b.ExtAttrs, p.ExtAttrs, b.Name, policy); err != nil {
			return err
		}
		b.Members = append(b.Members, p.Members...)
	}
	return nil
}
