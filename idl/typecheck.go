package idl

import (
	"github.com/servo/webidl/types"
)

// checkType enforces the nullable, union and record rules on t and every
// type nested in it.
func (v *validator) checkType(t *types.Type, where string, loc Location) error {
	fail := func(kind ErrorKind, format string, args ...interface{}) error {
		return errorf(kind, format, args...).named(where).at(loc)
	}
	switch t.Kind {
	case types.Nullable:
		inner := t.Elem
		switch {
		case inner.Kind == types.Nullable:
			return fail(IllegalNullableError, "%s: nullable type %s is already nullable", where, inner)
		case inner.Kind == types.Any:
			return fail(IllegalNullableError, "%s: any cannot be nullable", where)
		case inner.Kind == types.Dictionary:
			return fail(IllegalNullableError, "%s: dictionary %s cannot be nullable", where, inner)
		case inner.Kind == types.Union && inner.HasNullableMember():
			return fail(IllegalNullableError, "%s: union %s already has a nullable member", where, inner)
		case inner.Kind == types.Union && inner.HasDictionary():
			return fail(IllegalNullableError, "%s: union %s has a dictionary member and cannot be nullable", where, inner)
		}
		return v.checkType(inner, where, loc)
	case types.Union:
		if t.NullableMembers() > 1 {
			return fail(IllegalUnionError, "%s: union %s has more than one nullable member", where, t)
		}
		if t.HasNullableMember() && t.HasDictionary() {
			return fail(IllegalNullableError, "%s: union %s has both a dictionary and a nullable member", where, t)
		}
		for _, m := range t.Members {
			if err := v.checkType(m, where, loc); err != nil {
				return err
			}
		}
		flat := t.FlatMembers()
		for i := range flat {
			for j := i + 1; j < len(flat); j++ {
				if !types.Distinguishable(flat[i], flat[j], v.g) {
					return fail(IllegalUnionError, "%s: union %s has indistinguishable members %s and %s", where, t, flat[i], flat[j])
				}
			}
		}
	case types.Record:
		if t.Key != nil {
			switch t.Key.Kind {
			case types.DOMString, types.ByteString, types.USVString:
			default:
				return fail(IllegalTypeError, "%s: record key must be a string type, not %s", where, t.Key)
			}
		}
		return v.checkType(t.Elem, where, loc)
	case types.Sequence, types.FrozenArray, types.Promise:
		return v.checkType(t.Elem, where, loc)
	}
	return nil
}

// checkValueType checks the type of an attribute, argument, member or
// constant, which may not be void.
func (v *validator) checkValueType(t *types.Type, where string, loc Location) error {
	if t.Kind == types.Void {
		return errorf(IllegalTypeError, "%s cannot have type void", where).named(where).at(loc)
	}
	return v.checkType(t, where, loc)
}

func (v *validator) checkSignatureTypes(s *Signature, where string, loc Location) error {
	if err := v.checkType(s.Return, where, loc); err != nil {
		return err
	}
	for _, a := range s.Args {
		if err := v.checkValueType(a.Type, where+"("+a.Name+")", a.Location); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) checkMemberTypes(list []Member) error {
	for _, m := range list {
		switch m := m.(type) {
		case *Operation:
			if err := v.checkSignatureTypes(m.Signature, m.QName(), m.Location); err != nil {
				return err
			}
		case *Attribute:
			if err := v.checkValueType(m.Type, m.QName(), m.Location); err != nil {
				return err
			}
			for _, f := range m.Type.FlatMembers() {
				switch f.Kind {
				case types.Dictionary, types.Sequence, types.Record:
					return errorf(IllegalTypeError, "attribute %s cannot be of type %s", m.QName(), m.Type).
						named(m.QName()).at(m.Location)
				}
			}
		case *Constant:
			if m.Type.IsNullable() || !m.Type.IsPrimitive() {
				return errorf(IllegalTypeError, "constant %s must have a boolean or numeric type, not %s", m.QName(), m.Type).
					named(m.QName()).at(m.Location)
			}
			if err := v.checkDefault(m.Type, m.Value, m.QName(), m.Location); err != nil {
				return err
			}
		case *Iterable:
			if m.Key != nil {
				if err := v.checkValueType(m.Key, m.QName(), m.Location); err != nil {
					return err
				}
			}
			if err := v.checkValueType(m.Value, m.QName(), m.Location); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkTypes enforces type legality everywhere a type is written.
func (v *validator) checkTypes() error {
	for _, d := range v.g.defs {
		var err error
		switch d := d.(type) {
		case *Interface:
			err = v.checkMemberTypes(d.Members)
			for _, c := range d.Constructors {
				if err == nil {
					err = v.checkSignatureTypes(c, d.QName(), d.Location)
				}
			}
			for _, c := range d.NamedConstructors {
				if err == nil {
					err = v.checkSignatureTypes(c.Signature, "::"+c.Name, d.Location)
				}
			}
		case *Mixin:
			err = v.checkMemberTypes(d.Members)
		case *Dictionary:
			for _, m := range d.Members {
				if err = v.checkValueType(m.Type, m.QName(), m.Location); err != nil {
					break
				}
			}
		case *Callback:
			err = v.checkSignatureTypes(d.Signature, d.QName(), d.Location)
		case *Typedef:
			err = v.checkType(d.Type, d.QName(), d.Location)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
