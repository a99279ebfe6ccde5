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

// Substitute replaces free occurrences of name within t with replacement.
//
// An Abs binding name is returned unchanged. A Let binding name substitutes within its value but not
// its body. Substitute does not rename binders: callers must ensure that no name bound within t is
// free in replacement, e.g. by applying AlphaConvert beforehand.
func Substitute(t Term, name string, replacement Term) Term {
	switch t := t.(type) {
	case *Var:
		if t.Name == name {
			return replacement
		}
		return t

	case *Int, *Nil, *Unit, *Region:
		return t

	case *Abs:
		if t.Name == name {
			return t
		}
		return &Abs{Name: t.Name, Body: Substitute(t.Body, name, replacement)}

	case *Let:
		value := Substitute(t.Value, name, replacement)
		body := t.Body
		if t.Name != name {
			body = Substitute(body, name, replacement)
		}
		return &Let{Name: t.Name, Value: value, Body: body}

	case *App:
		return &App{Left: Substitute(t.Left, name, replacement), Right: Substitute(t.Right, name, replacement)}

	case *Cons:
		return &Cons{Head: Substitute(t.Head, name, replacement), Tail: Substitute(t.Tail, name, replacement)}

	case *Head:
		return &Head{List: Substitute(t.List, name, replacement)}

	case *Tail:
		return &Tail{List: Substitute(t.List, name, replacement)}

	case *Add:
		return &Add{Left: Substitute(t.Left, name, replacement), Right: Substitute(t.Right, name, replacement)}

	case *Sub:
		return &Sub{Left: Substitute(t.Left, name, replacement), Right: Substitute(t.Right, name, replacement)}

	case *Izte:
		return &Izte{
			Cond: Substitute(t.Cond, name, replacement),
			Then: Substitute(t.Then, name, replacement),
			Else: Substitute(t.Else, name, replacement),
		}

	case *Iete:
		return &Iete{
			Cond: Substitute(t.Cond, name, replacement),
			Then: Substitute(t.Then, name, replacement),
			Else: Substitute(t.Else, name, replacement),
		}

	case *Fix:
		return &Fix{Func: Substitute(t.Func, name, replacement)}

	case *Mkref:
		return &Mkref{Expr: Substitute(t.Expr, name, replacement)}

	case *Deref:
		return &Deref{Expr: Substitute(t.Expr, name, replacement)}

	case *Assign:
		return &Assign{Ref: Substitute(t.Ref, name, replacement), Value: Substitute(t.Value, name, replacement)}
	}
	panic(unexpected(t))
}
