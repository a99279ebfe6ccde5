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

package ast

// FreeVars returns the names of variables which occur free in t.
//
// Abs removes its name from the free variables of its body. Let removes its name only from the
// free variables of its body; free occurrences of the name within the bound value remain free.
func FreeVars(t Term) NameSet {
	switch t := t.(type) {
	case *Var:
		return NewNameSet(t.Name)
	case *Int, *Nil, *Unit, *Region:
		return NewNameSet()
	case *Abs:
		return FreeVars(t.Body).Remove(t.Name)
	case *Let:
		return FreeVars(t.Value).Union(FreeVars(t.Body).Remove(t.Name))
	case *App:
		return FreeVars(t.Left).Union(FreeVars(t.Right))
	case *Cons:
		return FreeVars(t.Head).Union(FreeVars(t.Tail))
	case *Head:
		return FreeVars(t.List)
	case *Tail:
		return FreeVars(t.List)
	case *Add:
		return FreeVars(t.Left).Union(FreeVars(t.Right))
	case *Sub:
		return FreeVars(t.Left).Union(FreeVars(t.Right))
	case *Izte:
		return FreeVars(t.Cond).Union(FreeVars(t.Then)).Union(FreeVars(t.Else))
	case *Iete:
		return FreeVars(t.Cond).Union(FreeVars(t.Then)).Union(FreeVars(t.Else))
	case *Fix:
		return FreeVars(t.Func)
	case *Mkref:
		return FreeVars(t.Expr)
	case *Deref:
		return FreeVars(t.Expr)
	case *Assign:
		return FreeVars(t.Ref).Union(FreeVars(t.Value))
	}
	panic(unexpected(t))
}
