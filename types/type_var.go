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

// VarSet is a set of type-variable names.
type VarSet map[string]struct{}

// Has reports whether name is in the set.
func (s VarSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add all names to the set.
func (s VarSet) Add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// FreeVars returns the names of type variables which occur free in t, de-duplicated, in order of
// first (left-to-right) appearance.
func FreeVars(t Type) []string {
	var names []string
	seen := make(VarSet)
	freeVars(t, nil, seen, &names)
	return names
}

func freeVars(t Type, bound []string, seen VarSet, names *[]string) {
	switch t := t.(type) {
	case *Var:
		for _, b := range bound {
			if b == t.Name {
				return
			}
		}
		if !seen.Has(t.Name) {
			seen.Add(t.Name)
			*names = append(*names, t.Name)
		}
	case *Arrow:
		freeVars(t.Left, bound, seen, names)
		freeVars(t.Right, bound, seen, names)
	case Int, Unit:
	case *List:
		freeVars(t.Elem, bound, seen, names)
	case *Ref:
		freeVars(t.Inner, bound, seen, names)
	case *Forall:
		freeVars(t.Body, append(bound[:len(bound):len(bound)], t.Var), seen, names)
	default:
		panic(unexpected(t))
	}
}

// Occurs reports whether the type variable name occurs free in t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Name == name
	case *Arrow:
		return Occurs(name, t.Left) || Occurs(name, t.Right)
	case Int, Unit:
		return false
	case *List:
		return Occurs(name, t.Elem)
	case *Ref:
		return Occurs(name, t.Inner)
	case *Forall:
		return t.Var != name && Occurs(name, t.Body)
	}
	panic(unexpected(t))
}

// Substitute replaces free occurrences of the type variable name within t with replacement.
// A quantifier over name shadows it within its body.
func Substitute(t Type, name string, replacement Type) Type {
	switch t := t.(type) {
	case *Var:
		if t.Name == name {
			return replacement
		}
		return t
	case *Arrow:
		return &Arrow{Left: Substitute(t.Left, name, replacement), Right: Substitute(t.Right, name, replacement)}
	case Int, Unit:
		return t
	case *List:
		return &List{Elem: Substitute(t.Elem, name, replacement)}
	case *Ref:
		return &Ref{Inner: Substitute(t.Inner, name, replacement)}
	case *Forall:
		if t.Var == name {
			return t
		}
		return &Forall{Var: t.Var, Body: Substitute(t.Body, name, replacement)}
	}
	panic(unexpected(t))
}

// SubstituteAll simultaneously replaces free occurrences of each type variable named in replacements.
// Replacement types are not themselves rewritten.
func SubstituteAll(t Type, replacements map[string]Type) Type {
	if len(replacements) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if r, ok := replacements[t.Name]; ok {
			return r
		}
		return t
	case *Arrow:
		return &Arrow{Left: SubstituteAll(t.Left, replacements), Right: SubstituteAll(t.Right, replacements)}
	case Int, Unit:
		return t
	case *List:
		return &List{Elem: SubstituteAll(t.Elem, replacements)}
	case *Ref:
		return &Ref{Inner: SubstituteAll(t.Inner, replacements)}
	case *Forall:
		if _, shadowed := replacements[t.Var]; shadowed {
			inner := make(map[string]Type, len(replacements)-1)
			for name, r := range replacements {
				if name != t.Var {
					inner[name] = r
				}
			}
			return &Forall{Var: t.Var, Body: SubstituteAll(t.Body, inner)}
		}
		return &Forall{Var: t.Var, Body: SubstituteAll(t.Body, replacements)}
	}
	panic(unexpected(t))
}
