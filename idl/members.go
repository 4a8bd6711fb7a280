package idl

// memberOwner records which definition contributed a member name.
type memberOwner struct {
	owner  string
	member Member
}

func memberKind(m Member) string {
	switch m := m.(type) {
	case *Operation:
		if m.Static {
			return "static operation"
		}
		return "operation"
	case *Attribute:
		return "attribute"
	case *Constant:
		return "constant"
	case *Iterable:
		return "iterable"
	}
	return "member"
}

// addMembers adds the members of owner to names. Only operations of the same
// owner and the same staticness may share a name.
func addMembers(names map[string]memberOwner, target, owner string, list []Member) error {
	for _, m := range list {
		name := m.Ident().Name
		if name == "" {
			continue
		}
		prev, ok := names[name]
		if !ok {
			names[name] = memberOwner{owner, m}
			continue
		}
		op1, ok1 := prev.member.(*Operation)
		op2, ok2 := m.(*Operation)
		if ok1 && ok2 && prev.owner == owner && op1.Static == op2.Static {
			continue
		}
		msg := "%s has more than one member named %s: %s from %s and %s from %s"
		return errorf(DuplicateMemberError, msg, target, name, memberKind(prev.member), prev.owner, memberKind(m), owner).
			named(prev.member.QName(), m.QName()).at(prev.member.Pos(), m.Pos())
	}
	return nil
}

// checkMembers rejects member name collisions within interfaces and mixins,
// including the members an interface gets from included mixins and
// implemented interfaces, and duplicate enum values.
func (v *validator) checkMembers() error {
	for _, d := range v.g.defs {
		switch d := d.(type) {
		case *Interface:
			names := make(map[string]memberOwner)
			if err := addMembers(names, d.QName(), d.Name, d.Members); err != nil {
				return err
			}
			for _, name := range d.Includes {
				if err := addMembers(names, d.QName(), name, v.g.mixin(name).Members); err != nil {
					return err
				}
			}
			for _, name := range d.Implements {
				if err := addMembers(names, d.QName(), name, v.g.iface(name).Members); err != nil {
					return err
				}
			}
			if err := checkSpecials(d.QName(), d.Members, d.CustomOps); err != nil {
				return err
			}
		case *Mixin:
			if err := addMembers(make(map[string]memberOwner), d.QName(), d.Name, d.Members); err != nil {
				return err
			}
			if err := checkSpecials(d.QName(), d.Members, d.CustomOps); err != nil {
				return err
			}
		case *Enum:
			seen := make(map[string]bool)
			for _, val := range d.Values {
				if seen[val] {
					return errorf(DuplicateMemberError, "enum %s has duplicate value %q", d.Name, val).
						named(d.QName()).at(d.Location)
				}
				seen[val] = true
			}
		}
	}
	return nil
}

// checkSpecials allows at most one stringifier, one serializer and one
// jsonifier per interface or mixin. Iterables are checked as members.
func checkSpecials(where string, list []Member, customOps []string) error {
	count := make(map[string]int)
	for _, op := range customOps {
		count[op]++
	}
	for _, m := range list {
		switch m := m.(type) {
		case *Operation:
			if m.Special == "stringifier" {
				count["stringifier"]++
			}
		case *Attribute:
			if m.Stringifier {
				count["stringifier"]++
			}
		}
	}
	for _, name := range []string{"stringifier", "serializer", "jsonifier"} {
		if count[name] > 1 {
			return errorf(DuplicateMemberError, "%s has more than one %s", where, name).named(where)
		}
	}
	return nil
}

// checkArgumentList enforces optional and variadic ordering, the optional
// dictionary rule and argument defaults.
func (v *validator) checkArgumentList(args []*Argument, where string) error {
	fail := func(kind ErrorKind, a *Argument, format string, params ...interface{}) error {
		return errorf(kind, "%s: argument %s "+format, append([]interface{}{where, a.Name}, params...)...).
			named(where).at(a.Location)
	}
	optional := false
	for i, a := range args {
		if a.Variadic && a.Optional {
			return fail(IllegalOptionalArgumentError, a, "cannot be both optional and variadic")
		}
		if a.Variadic && i != len(args)-1 {
			return fail(IllegalOptionalArgumentError, a, "is variadic but not last")
		}
		if !a.Optional && !a.Variadic && optional {
			return fail(IllegalOptionalArgumentError, a, "is required but follows an optional argument")
		}
		optional = optional || a.Optional
		if a.Default != nil {
			if !a.Optional {
				return fail(IllegalDefaultValueError, a, "has a default value but is not optional")
			}
			if err := v.checkDefault(a.Type, a.Default, where+"("+a.Name+")", a.Location); err != nil {
				return err
			}
		}
	}
	// A dictionary argument followed only by optional arguments must itself
	// be optional.
	for i := len(args) - 1; i >= 0; i-- {
		a := args[i]
		if !a.Optional && !a.Variadic {
			if a.Type.HasDictionary() {
				return fail(IllegalOptionalArgumentError, a, "of dictionary type %s must be optional", a.Type)
			}
			break
		}
	}
	return nil
}

func (v *validator) checkOperations(list []Member) error {
	for _, m := range list {
		if op, ok := m.(*Operation); ok {
			if err := v.checkArgumentList(op.Signature.Args, op.QName()); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkArguments checks the arguments of every operation and constructor,
// and argument defaults of callbacks.
func (v *validator) checkArguments() error {
	for _, d := range v.g.defs {
		var err error
		switch d := d.(type) {
		case *Interface:
			err = v.checkOperations(d.Members)
			for _, c := range d.Constructors {
				if err == nil {
					err = v.checkArgumentList(c.Args, d.QName())
				}
			}
			for _, c := range d.NamedConstructors {
				if err == nil {
					err = v.checkArgumentList(c.Signature.Args, "::"+c.Name)
				}
			}
		case *Mixin:
			err = v.checkOperations(d.Members)
		case *Callback:
			for _, a := range d.Signature.Args {
				if a.Default == nil {
					continue
				}
				if err = v.checkDefault(a.Type, a.Default, d.QName()+"("+a.Name+")", a.Location); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
