package ast

import "sort"

// Walk traverses the tree rooted at n in depth-first order. fn is called for
// every node before its children; if it returns false, the children of that
// node are skipped. Error nodes are not visited.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *File:
		for _, d := range n.Declarations {
			Walk(d, fn)
		}
	case *Interface:
		walkAnnotations(n.Annotations, fn)
		for _, m := range n.Members {
			Walk(m, fn)
		}
		for _, op := range n.CustomOps {
			Walk(op, fn)
		}
		if n.Iterable != nil {
			Walk(n.Iterable, fn)
		}
	case *Mixin:
		walkAnnotations(n.Annotations, fn)
		for _, m := range n.Members {
			Walk(m, fn)
		}
		for _, op := range n.CustomOps {
			Walk(op, fn)
		}
	case *Dictionary:
		walkAnnotations(n.Annotations, fn)
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *Enum:
		walkAnnotations(n.Annotations, fn)
		for _, v := range n.Values {
			Walk(v, fn)
		}
	case *Callback:
		walkAnnotations(n.Annotations, fn)
		Walk(n.Return, fn)
		walkParameters(n.Parameters, fn)
	case *Typedef:
		walkAnnotations(n.Annotations, fn)
		Walk(n.Type, fn)
	case *Annotation:
		walkParameters(n.Parameters, fn)
	case *Parameter:
		walkAnnotations(n.Annotations, fn)
		Walk(n.Type, fn)
		if n.Init != nil {
			Walk(n.Init, fn)
		}
	case *Member:
		walkAnnotations(n.Annotations, fn)
		Walk(n.Type, fn)
		walkParameters(n.Parameters, fn)
		if n.Init != nil {
			Walk(n.Init, fn)
		}
	case *Iterable:
		Walk(n.Key, fn)
		Walk(n.Type, fn)
	case *SequenceType:
		Walk(n.Elem, fn)
	case *FrozenArrayType:
		Walk(n.Elem, fn)
	case *PromiseType:
		Walk(n.Elem, fn)
	case *RecordType:
		Walk(n.Key, fn)
		Walk(n.Elem, fn)
	case *UnionType:
		for _, t := range n.Types {
			Walk(t, fn)
		}
	case *NullableType:
		Walk(n.Type, fn)
	}
}

func walkAnnotations(list []*Annotation, fn func(Node) bool) {
	for _, a := range list {
		Walk(a, fn)
	}
}

func walkParameters(list []*Parameter, fn func(Node) bool) {
	for _, p := range list {
		Walk(p, fn)
	}
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *File:
		return n == nil
	case *Interface:
		return n == nil
	case *Mixin:
		return n == nil
	case *Dictionary:
		return n == nil
	case *Enum:
		return n == nil
	case *Callback:
		return n == nil
	case *Typedef:
		return n == nil
	case *Annotation:
		return n == nil
	case *Parameter:
		return n == nil
	case *Member:
		return n == nil
	case *Iterable:
		return n == nil
	case *Literal:
		return n == nil
	case *TypeName:
		return n == nil
	}
	return false
}

// Errors returns every error node attached to n or to any of its descendants,
// ordered by position.
func Errors(n Node) []*ErrorNode {
	var out []*ErrorNode
	Walk(n, func(n Node) bool {
		out = append(out, n.NodeBase().Errors...)
		return true
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
