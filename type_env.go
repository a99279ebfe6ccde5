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

package plambda

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/plambda/types"
)

var emptyEnv = immutable.NewSortedMap(nil)

// TypeEnv is an immutable type-environment containing mappings from variable names to declared types
// or type schemes.
//
// Extending a type-environment returns a new environment which shares structure with the original;
// the original is never modified, so a type-environment may be shared freely. The zero value is an
// empty environment.
type TypeEnv struct {
	m *immutable.SortedMap
}

// Create an empty type-environment.
func NewTypeEnv() TypeEnv { return TypeEnv{emptyEnv} }

func (e TypeEnv) sortedMap() *immutable.SortedMap {
	if e.m == nil {
		return emptyEnv
	}
	return e.m
}

// Get the number of bindings in the type-environment.
func (e TypeEnv) Len() int {
	if e.m == nil {
		return 0
	}
	return e.m.Len()
}

// Lookup the type for a variable in the type-environment. Nil will be returned if the variable is not bound.
func (e TypeEnv) Lookup(name string) types.Type {
	if e.m == nil {
		return nil
	}
	t, ok := e.m.Get(name)
	if !ok {
		return nil
	}
	return t.(types.Type)
}

// Declare returns a type-environment in which name is bound to t, shadowing any previous binding for name.
func (e TypeEnv) Declare(name string, t types.Type) TypeEnv {
	return TypeEnv{e.sortedMap().Set(name, t)}
}

// Remove returns a type-environment without a binding for name.
func (e TypeEnv) Remove(name string) TypeEnv {
	if e.m == nil {
		return e
	}
	return TypeEnv{e.m.Delete(name)}
}

// Merge returns a type-environment containing the bindings of e and other. Bindings of other take
// precedence.
func (e TypeEnv) Merge(other TypeEnv) TypeEnv {
	if e.Len() == 0 {
		return other
	}
	m := e.m
	other.Range(func(name string, t types.Type) bool {
		m = m.Set(name, t)
		return true
	})
	return TypeEnv{m}
}

// Iterate sequentially through the bindings in the type-environment, ordered by name.
func (e TypeEnv) Range(f func(string, types.Type) bool) {
	if e.m == nil {
		return
	}
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}

// Apply a substitution to every type in the type-environment.
func (e TypeEnv) Apply(subst types.Subst) TypeEnv {
	if subst.Len() == 0 || e.Len() == 0 {
		return e
	}
	m := e.m
	e.Range(func(name string, t types.Type) bool {
		m = m.Set(name, subst.Apply(t))
		return true
	})
	return TypeEnv{m}
}

// FreeTypeVars returns the type-variables which occur free in any type within the type-environment.
func (e TypeEnv) FreeTypeVars() types.VarSet {
	vars := make(types.VarSet)
	e.Range(func(_ string, t types.Type) bool {
		vars.Add(types.FreeVars(t)...)
		return true
	})
	return vars
}

// ApplySubstToEnv applies subst to every type in env.
func ApplySubstToEnv(subst types.Subst, env TypeEnv) TypeEnv { return env.Apply(subst) }
