package idl

import (
	"github.com/servo/webidl/types"
)

// checkExtAttrs checks every attribute in list against the configured table.
func (v *validator) checkExtAttrs(list ExtendedAttributes, target Target, where string) error {
	for _, a := range list {
		rule, ok := v.cfg.Attributes[a.Name]
		if !ok {
			return errorf(UnknownExtendedAttributeError, "unknown extended attribute [%s] on %s", a.Name, where).
				named(where).at(a.Location)
		}
		if rule.Targets&target == 0 {
			return errorf(UnknownExtendedAttributeError, "extended attribute [%s] is not allowed on %s %s (allowed on %s)", a.Name, target, where, rule.Targets).
				named(where).at(a.Location)
		}
		if rule.Shapes&a.Shape() == 0 {
			return errorf(IllegalExtendedAttributeError, "extended attribute [%s] on %s has form %s, expected %s", a.Name, where, a.Shape(), rule.Shapes).
				named(where).at(a.Location)
		}
	}
	return nil
}

// checkConversion checks the attributes that alter how values of t convert.
func checkConversion(list ExtendedAttributes, t *types.Type, where string) error {
	fail := func(a *ExtendedAttribute, format string, args ...interface{}) error {
		return errorf(IllegalExtendedAttributeError, "%s: [%s] "+format, append([]interface{}{where, a.Name}, args...)...).
			named(where).at(a.Location)
	}
	clamp, enforce := list.Get("Clamp"), list.Get("EnforceRange")
	if clamp != nil && enforce != nil {
		return fail(clamp, "cannot be combined with [EnforceRange]")
	}
	for _, a := range []*ExtendedAttribute{clamp, enforce} {
		if a != nil && !t.IsInteger() {
			return fail(a, "requires an integer type, not %s", t)
		}
	}
	if a := list.Get("TreatNullAs"); a != nil {
		if a.Value != "EmptyString" {
			return fail(a, "value must be EmptyString, not %s", a.Value)
		}
		if t.Inner().Kind != types.DOMString {
			return fail(a, "requires type DOMString, not %s", t)
		}
	}
	return nil
}

func (v *validator) checkArgAttrs(args []*Argument, where string) error {
	for _, a := range args {
		name := where + "(" + a.Name + ")"
		if err := v.checkExtAttrs(a.ExtAttrs, TargetArgument, name); err != nil {
			return err
		}
		if err := checkConversion(a.ExtAttrs, a.Type, name); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) checkMemberAttrs(list []Member) error {
	for _, m := range list {
		switch m := m.(type) {
		case *Operation:
			if err := v.checkExtAttrs(m.ExtAttrs, TargetOperation, m.QName()); err != nil {
				return err
			}
			if err := v.checkArgAttrs(m.Signature.Args, m.QName()); err != nil {
				return err
			}
		case *Attribute:
			if err := v.checkExtAttrs(m.ExtAttrs, TargetAttribute, m.QName()); err != nil {
				return err
			}
			if err := checkConversion(m.ExtAttrs, m.Type, m.QName()); err != nil {
				return err
			}
			for _, name := range []string{"PutForwards", "Replaceable"} {
				if a := m.ExtAttrs.Get(name); a != nil && !m.Readonly {
					return errorf(IllegalExtendedAttributeError, "[%s] requires %s to be readonly", name, m.QName()).
						named(m.QName()).at(a.Location)
				}
			}
		case *Constant:
			if err := v.checkExtAttrs(m.ExtAttrs, TargetConstant, m.QName()); err != nil {
				return err
			}
		}
	}
	return nil
}

// interfaceAttrs checks the attributes of an interface and derives its
// constructors from them.
func (v *validator) interfaceAttrs(d *Interface) error {
	target := TargetInterface
	if d.Callback {
		target = TargetCallbackInterface
	}
	if err := v.checkExtAttrs(d.ExtAttrs, target, d.QName()); err != nil {
		return err
	}
	if a := d.ExtAttrs.Get("ArrayClass"); a != nil && d.Parent != "" {
		return errorf(IllegalExtendedAttributeError, "[ArrayClass] interface %s cannot inherit from %s", d.Name, d.Parent).
			named(d.QName()).at(a.Location)
	}
	d.Constructors = nil
	d.NamedConstructors = nil
	for _, a := range d.ExtAttrs {
		switch a.Name {
		case "Constructor":
			d.Constructors = append(d.Constructors, &Signature{
				Return: types.Named(types.Interface, d.Name),
				Args:   a.Args,
			})
		case "NamedConstructor":
			d.NamedConstructors = append(d.NamedConstructors, &NamedConstructor{
				Name: a.Value,
				Signature: &Signature{
					Return: types.Named(types.Interface, d.Name),
					Args:   a.Args,
				},
			})
		default:
			continue
		}
		if err := v.checkArgAttrs(a.Args, d.QName()); err != nil {
			return err
		}
	}
	return v.checkMemberAttrs(d.Members)
}

// checkAttributes checks extended attributes everywhere they may appear.
func (v *validator) checkAttributes() error {
	for _, d := range v.g.defs {
		var err error
		switch d := d.(type) {
		case *Interface:
			err = v.interfaceAttrs(d)
		case *Mixin:
			if err = v.checkExtAttrs(d.ExtAttrs, TargetMixin, d.QName()); err == nil {
				err = v.checkMemberAttrs(d.Members)
			}
		case *Dictionary:
			err = v.checkExtAttrs(d.ExtAttrs, TargetDictionary, d.QName())
			for _, m := range d.Members {
				if err != nil {
					break
				}
				if err = v.checkExtAttrs(m.ExtAttrs, TargetDictionaryMember, m.QName()); err == nil {
					err = checkConversion(m.ExtAttrs, m.Type, m.QName())
				}
			}
		case *Enum:
			err = v.checkExtAttrs(d.ExtAttrs, TargetEnum, d.QName())
		case *Callback:
			if err = v.checkExtAttrs(d.ExtAttrs, TargetCallback, d.QName()); err == nil {
				err = v.checkArgAttrs(d.Signature.Args, d.QName())
			}
		case *Typedef:
			err = v.checkExtAttrs(d.ExtAttrs, TargetTypedef, d.QName())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
