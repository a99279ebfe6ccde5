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

// AlphaConvert returns a copy of t in which every name bound by an Abs or Let is replaced by a fresh
// name from supply. Replacements for enclosing binders are taken from renaming; free variables are
// never renamed.
//
// After conversion every bound name within the term is unique, so substitution into the result
// cannot capture.
func AlphaConvert(t Term, renaming Renaming, supply *NameSupply) Term {
	switch t := t.(type) {
	case *Var:
		if fresh, ok := renaming.Get(t.Name); ok {
			return &Var{Name: fresh}
		}
		return t

	case *Int, *Nil, *Unit, *Region:
		return t

	case *Abs:
		fresh := supply.Fresh()
		return &Abs{Name: fresh, Body: AlphaConvert(t.Body, renaming.Set(t.Name, fresh), supply)}

	case *Let:
		fresh := supply.Fresh()
		// the bound name is not in scope within the value
		value := AlphaConvert(t.Value, renaming, supply)
		return &Let{Name: fresh, Value: value, Body: AlphaConvert(t.Body, renaming.Set(t.Name, fresh), supply)}

	case *App:
		return &App{Left: AlphaConvert(t.Left, renaming, supply), Right: AlphaConvert(t.Right, renaming, supply)}

	case *Cons:
		return &Cons{Head: AlphaConvert(t.Head, renaming, supply), Tail: AlphaConvert(t.Tail, renaming, supply)}

	case *Head:
		return &Head{List: AlphaConvert(t.List, renaming, supply)}

	case *Tail:
		return &Tail{List: AlphaConvert(t.List, renaming, supply)}

	case *Add:
		return &Add{Left: AlphaConvert(t.Left, renaming, supply), Right: AlphaConvert(t.Right, renaming, supply)}

	case *Sub:
		return &Sub{Left: AlphaConvert(t.Left, renaming, supply), Right: AlphaConvert(t.Right, renaming, supply)}

	case *Izte:
		return &Izte{
			Cond: AlphaConvert(t.Cond, renaming, supply),
			Then: AlphaConvert(t.Then, renaming, supply),
			Else: AlphaConvert(t.Else, renaming, supply),
		}

	case *Iete:
		return &Iete{
			Cond: AlphaConvert(t.Cond, renaming, supply),
			Then: AlphaConvert(t.Then, renaming, supply),
			Else: AlphaConvert(t.Else, renaming, supply),
		}

	case *Fix:
		return &Fix{Func: AlphaConvert(t.Func, renaming, supply)}

	case *Mkref:
		return &Mkref{Expr: AlphaConvert(t.Expr, renaming, supply)}

	case *Deref:
		return &Deref{Expr: AlphaConvert(t.Expr, renaming, supply)}

	case *Assign:
		return &Assign{Ref: AlphaConvert(t.Ref, renaming, supply), Value: AlphaConvert(t.Value, renaming, supply)}
	}
	panic(unexpected(t))
}
