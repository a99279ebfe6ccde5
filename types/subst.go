// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptySubst = immutable.NewSortedMap(nil)

// Subst is an immutable substitution from type-variable names to types.
//
// The zero value is an empty substitution.
type Subst struct {
	m *immutable.SortedMap
}

// Empty substitution
var EmptySubst = Subst{emptySubst}

// Create a substitution with a single binding.
func SingletonSubst(name string, t Type) Subst {
	return Subst{emptySubst.Set(name, t)}
}

func (s Subst) sortedMap() *immutable.SortedMap {
	if s.m == nil {
		return emptySubst
	}
	return s.m
}

// Get the number of bindings in the substitution.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Get the type bound to the given type variable.
func (s Subst) Get(name string) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a substitution which binds name to t, replacing any previous binding for name.
func (s Subst) Set(name string, t Type) Subst {
	return Subst{s.sortedMap().Set(name, t)}
}

// Delete returns a substitution without a binding for name.
func (s Subst) Delete(name string) Subst {
	if s.m == nil {
		return s
	}
	return Subst{s.m.Delete(name)}
}

// Iterate sequentially through the bindings in the substitution, ordered by name.
func (s Subst) Range(f func(string, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Apply the substitution to t.
//
// Bound variables are resolved transitively: if `T0` is bound to `[T1]` and `T1` is bound to `Int`,
// `T0` resolves to `[Int]`. A variable which is reached again while it is being resolved is left in
// place. Quantified variables shadow bindings of the same name within the quantifier's body.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t, nil)
}

func (s Subst) apply(t Type, resolving []string) Type {
	switch t := t.(type) {
	case *Var:
		bound, ok := s.Get(t.Name)
		if !ok {
			return t
		}
		for _, name := range resolving {
			if name == t.Name {
				return t
			}
		}
		return s.apply(bound, append(resolving, t.Name))
	case *Arrow:
		return &Arrow{Left: s.apply(t.Left, resolving), Right: s.apply(t.Right, resolving)}
	case Int, Unit:
		return t
	case *List:
		return &List{Elem: s.apply(t.Elem, resolving)}
	case *Ref:
		return &Ref{Inner: s.apply(t.Inner, resolving)}
	case *Forall:
		inner := s.Delete(t.Var)
		if inner.Len() == 0 {
			return t
		}
		return &Forall{Var: t.Var, Body: inner.apply(t.Body, resolving)}
	}
	panic(unexpected(t))
}

// Compose returns the substitution which applies s and then later.
//
// Every binding of s is rewritten by later; bindings of later whose names are not bound by s are
// then added.
func (s Subst) Compose(later Subst) Subst {
	if later.Len() == 0 {
		return s
	}
	if s.Len() == 0 {
		return later
	}
	m := s.m
	s.Range(func(name string, t Type) bool {
		m = m.Set(name, later.Apply(t))
		return true
	})
	later.Range(func(name string, t Type) bool {
		if _, ok := s.m.Get(name); !ok {
			m = m.Set(name, t)
		}
		return true
	})
	return Subst{m}
}
