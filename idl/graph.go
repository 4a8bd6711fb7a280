package idl

import (
	"strings"

	"github.com/servo/webidl/types"
)

// graph is the merged set of definitions addressed by name.
type graph struct {
	defs   []Definition
	byName map[string]Definition
	// bases maps each interface to the interfaces it inherits from or
	// implements, itself included.
	bases map[string]map[string]bool
}

func newGraph(defs []Definition) *graph {
	g := &graph{defs: defs, byName: make(map[string]Definition)}
	for _, d := range defs {
		if _, ok := d.(*Includes); ok {
			continue
		}
		g.byName[d.Ident().Name] = d
	}
	return g
}

func (g *graph) iface(name string) *Interface {
	d, _ := g.byName[name].(*Interface)
	return d
}

func (g *graph) mixin(name string) *Mixin {
	d, _ := g.byName[name].(*Mixin)
	return d
}

func (g *graph) dictionary(name string) *Dictionary {
	d, _ := g.byName[name].(*Dictionary)
	return d
}

func (g *graph) enum(name string) *Enum {
	d, _ := g.byName[name].(*Enum)
	return d
}

func unresolved(name, where string, loc Location) *Error {
	return errorf(UnresolvedIdentifierError, "unresolved identifier %s in %s", name, where).named(where).at(loc)
}

// resolveRelations checks parents and includes statements and records the
// included mixins on each interface.
func (g *graph) resolveRelations() error {
	for _, d := range g.defs {
		switch d := d.(type) {
		case *Interface:
			if d.Parent == "" {
				continue
			}
			p, ok := g.byName[d.Parent]
			if !ok {
				return unresolved(d.Parent, d.QName(), d.Location)
			}
			parent, ok := p.(*Interface)
			if !ok {
				return errorf(IllegalInheritanceError, "interface %s cannot inherit from %s %s", d.Name, defKind(p), d.Parent).
					named(d.QName(), p.QName()).at(d.Location, p.Pos())
			}
			if parent.Callback != d.Callback {
				return errorf(IllegalInheritanceError, "%s %s cannot inherit from %s %s", defKind(d), d.Name, defKind(parent), parent.Name).
					named(d.QName(), parent.QName()).at(d.Location, parent.Location)
			}
		case *Dictionary:
			if d.Parent == "" {
				continue
			}
			p, ok := g.byName[d.Parent]
			if !ok {
				return unresolved(d.Parent, d.QName(), d.Location)
			}
			if _, ok := p.(*Dictionary); !ok {
				return errorf(IllegalInheritanceError, "dictionary %s cannot inherit from %s %s", d.Name, defKind(p), d.Parent).
					named(d.QName(), p.QName()).at(d.Location, p.Pos())
			}
		case *Includes:
			left, ok := g.byName[d.Interface]
			if !ok {
				return unresolved(d.Interface, d.QName(), d.Location)
			}
			right, ok := g.byName[d.Mixin]
			if !ok {
				return unresolved(d.Mixin, d.QName(), d.Location)
			}
			iface, ok := left.(*Interface)
			if !ok || iface.Callback {
				return errorf(IllegalInheritanceError, "left side of %s must be an interface, not %s", d.QName(), defKind(left)).
					named(d.QName()).at(d.Location, left.Pos())
			}
			if d.Legacy {
				impl, ok := right.(*Interface)
				if !ok || impl.Callback {
					return errorf(IllegalInheritanceError, "right side of %s must be an interface, not %s", d.QName(), defKind(right)).
						named(d.QName()).at(d.Location, right.Pos())
				}
				iface.Implements = append(iface.Implements, impl.Name)
				continue
			}
			if _, ok := right.(*Mixin); !ok {
				return errorf(IllegalInheritanceError, "right side of %s must be an interface mixin, not %s", d.QName(), defKind(right)).
					named(d.QName()).at(d.Location, right.Pos())
			}
			iface.Includes = append(iface.Includes, d.Mixin)
		}
	}
	return nil
}

// typeResolver replaces references with the kinds of the named definitions
// and expands typedefs.
type typeResolver struct {
	g         *graph
	expanding map[string]bool
}

func (r *typeResolver) resolve(t *types.Type, where string, loc Location) (*types.Type, error) {
	if t == nil {
		return nil, nil
	}
	switch t.Kind {
	case types.Reference:
		return r.lookup(t.Name, where, loc)
	case types.Sequence, types.FrozenArray, types.Promise, types.Nullable, types.Record:
		elem, err := r.resolve(t.Elem, where, loc)
		if err != nil {
			return nil, err
		}
		key, err := r.resolve(t.Key, where, loc)
		if err != nil {
			return nil, err
		}
		return &types.Type{Kind: t.Kind, Elem: elem, Key: key}, nil
	case types.Union:
		members := make([]*types.Type, len(t.Members))
		for i, m := range t.Members {
			rm, err := r.resolve(m, where, loc)
			if err != nil {
				return nil, err
			}
			members[i] = rm
		}
		return types.UnionOf(members...), nil
	}
	return t, nil
}

func (r *typeResolver) lookup(name, where string, loc Location) (*types.Type, error) {
	d, ok := r.g.byName[name]
	if !ok {
		return nil, unresolved(name, where, loc)
	}
	switch d := d.(type) {
	case *Interface:
		if d.Callback {
			return types.Named(types.CallbackInterface, name), nil
		}
		return types.Named(types.Interface, name), nil
	case *ExternalInterface:
		return &types.Type{Kind: types.Interface, Name: name, External: true}, nil
	case *Dictionary:
		return types.Named(types.Dictionary, name), nil
	case *Enum:
		return types.Named(types.Enum, name), nil
	case *Callback:
		return types.Named(types.Callback, name), nil
	case *Typedef:
		if r.expanding[name] {
			return nil, errorf(UnresolvedIdentifierError, "typedef %s refers to itself", name).named(d.QName()).at(d.Location)
		}
		r.expanding[name] = true
		defer delete(r.expanding, name)
		return r.resolve(d.Type, d.QName(), d.Location)
	case *Mixin:
		return nil, errorf(IllegalTypeError, "interface mixin %s cannot be used as a type in %s", name, where).
			named(where, d.QName()).at(loc, d.Location)
	}
	return nil, unresolved(name, where, loc)
}

// resolveTypes resolves every type expression in the graph.
func (g *graph) resolveTypes() error {
	r := &typeResolver{g: g, expanding: make(map[string]bool)}
	res := func(t **types.Type, where string, loc Location) error {
		rt, err := r.resolve(*t, where, loc)
		if err != nil {
			return err
		}
		*t = rt
		return nil
	}
	sig := func(s *Signature, where string, loc Location) error {
		if err := res(&s.Return, where, loc); err != nil {
			return err
		}
		for _, a := range s.Args {
			if err := res(&a.Type, where, a.Location); err != nil {
				return err
			}
		}
		return nil
	}
	members := func(list []Member) error {
		for _, m := range list {
			var err error
			switch m := m.(type) {
			case *Operation:
				err = sig(m.Signature, m.QName(), m.Location)
			case *Attribute:
				err = res(&m.Type, m.QName(), m.Location)
			case *Constant:
				err = res(&m.Type, m.QName(), m.Location)
			case *Iterable:
				if err = res(&m.Key, m.QName(), m.Location); err == nil {
					err = res(&m.Value, m.QName(), m.Location)
				}
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	for _, d := range g.defs {
		var err error
		switch d := d.(type) {
		case *Interface:
			err = members(d.Members)
			for _, a := range d.ExtAttrs {
				if err != nil {
					break
				}
				err = sig(&Signature{Args: a.Args}, d.QName(), a.Location)
			}
		case *Mixin:
			err = members(d.Members)
		case *Dictionary:
			for _, m := range d.Members {
				if err = res(&m.Type, m.QName(), m.Location); err != nil {
					break
				}
			}
		case *Callback:
			err = sig(d.Signature, d.QName(), d.Location)
		case *Typedef:
			r.expanding[d.Name] = true
			err = res(&d.Type, d.QName(), d.Location)
			delete(r.expanding, d.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// chainCycle follows single-parent links from start and returns the cycle
// it runs into, or nil.
func chainCycle(start string, parent func(string) string) []string {
	seen := map[string]int{}
	var path []string
	for name := start; name != ""; name = parent(name) {
		if i, ok := seen[name]; ok {
			return path[i:]
		}
		seen[name] = len(path)
		path = append(path, name)
	}
	return nil
}

func cycleString(cycle []string) string {
	return strings.Join(append(cycle, cycle[0]), " -> ")
}

// checkInheritanceCycles rejects cyclic interface and dictionary parents.
func (g *graph) checkInheritanceCycles() error {
	ifaceParent := func(name string) string {
		if d := g.iface(name); d != nil {
			return d.Parent
		}
		return ""
	}
	dictParent := func(name string) string {
		if d := g.dictionary(name); d != nil {
			return d.Parent
		}
		return ""
	}
	for _, d := range g.defs {
		var cycle []string
		switch d := d.(type) {
		case *Interface:
			cycle = chainCycle(d.Name, ifaceParent)
		case *Dictionary:
			cycle = chainCycle(d.Name, dictParent)
		default:
			continue
		}
		if cycle != nil {
			names := make([]string, len(cycle))
			for i, n := range cycle {
				names[i] = "::" + n
			}
			return errorf(InheritanceCycleError, "%s %s inherits from itself: %s", defKind(d), d.Ident().Name, cycleString(cycle)).
				named(names...).at(d.Pos())
		}
	}
	return nil
}

// checkImplementsCycles rejects cycles in the graph of parent, includes and
// implements edges. Inheritance cycles are rejected before this runs, so any
// cycle found here goes through an includes or implements edge.
func (g *graph) checkImplementsCycles() error {
	const (
		white = iota
		grey
		black
	)
	color := map[string]int{}
	var stack []string
	var visit func(name string) []string
	visit = func(name string) []string {
		switch color[name] {
		case grey:
			for i, n := range stack {
				if n == name {
					return append([]string(nil), stack[i:]...)
				}
			}
		case black:
			return nil
		}
		color[name] = grey
		stack = append(stack, name)
		if d := g.iface(name); d != nil {
			next := append([]string(nil), d.Includes...)
			next = append(next, d.Implements...)
			if d.Parent != "" {
				next = append(next, d.Parent)
			}
			for _, n := range next {
				if c := visit(n); c != nil {
					return c
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[name] = black
		return nil
	}
	for _, d := range g.defs {
		iface, ok := d.(*Interface)
		if !ok {
			continue
		}
		if cycle := visit(iface.Name); cycle != nil {
			names := make([]string, len(cycle))
			for i, n := range cycle {
				names[i] = "::" + n
			}
			return errorf(ImplementsCycleError, "interface %s implements itself: %s", cycle[0], cycleString(cycle)).
				named(names...).at(g.byName[cycle[0]].Pos())
		}
	}
	return nil
}

// computeBases fills the inherited-or-implemented closure of every interface.
func (g *graph) computeBases() {
	g.bases = make(map[string]map[string]bool)
	var collect func(name string, into map[string]bool)
	collect = func(name string, into map[string]bool) {
		if into[name] {
			return
		}
		into[name] = true
		d := g.iface(name)
		if d == nil {
			return
		}
		if d.Parent != "" {
			collect(d.Parent, into)
		}
		for _, impl := range d.Implements {
			collect(impl, into)
		}
	}
	for _, d := range g.defs {
		if iface, ok := d.(*Interface); ok {
			set := make(map[string]bool)
			collect(iface.Name, set)
			g.bases[iface.Name] = set
		}
	}
}

// Related reports whether some interface inherits from or implements both a
// and b. It is the hierarchy used for distinguishability.
func (g *graph) Related(a, b string) bool {
	if g.bases == nil {
		g.computeBases()
	}
	for _, set := range g.bases {
		if set[a] && set[b] {
			return true
		}
	}
	return false
}
