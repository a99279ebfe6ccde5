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

// WalkTerm calls f for t and then, left to right, for every sub-term of t.
func WalkTerm(t Term, f func(Term)) {
	switch t := t.(type) {
	case *Var, *Int, *Nil, *Unit, *Region:
		f(t)

	case *Abs:
		f(t)
		WalkTerm(t.Body, f)

	case *App:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case *Let:
		f(t)
		WalkTerm(t.Value, f)
		WalkTerm(t.Body, f)

	case *Cons:
		f(t)
		WalkTerm(t.Head, f)
		WalkTerm(t.Tail, f)

	case *Head:
		f(t)
		WalkTerm(t.List, f)

	case *Tail:
		f(t)
		WalkTerm(t.List, f)

	case *Add:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case *Sub:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case *Izte:
		f(t)
		WalkTerm(t.Cond, f)
		WalkTerm(t.Then, f)
		WalkTerm(t.Else, f)

	case *Iete:
		f(t)
		WalkTerm(t.Cond, f)
		WalkTerm(t.Then, f)
		WalkTerm(t.Else, f)

	case *Fix:
		f(t)
		WalkTerm(t.Func, f)

	case *Mkref:
		f(t)
		WalkTerm(t.Expr, f)

	case *Deref:
		f(t)
		WalkTerm(t.Expr, f)

	case *Assign:
		f(t)
		WalkTerm(t.Ref, f)
		WalkTerm(t.Value, f)

	case nil:

	default:
		panic(unexpected(t))
	}
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	n := 0
	WalkTerm(t, func(Term) { n++ })
	return n
}

// Regions returns the ids of all regions referenced within t, in order of appearance.
func Regions(t Term) []int {
	var ids []int
	WalkTerm(t, func(t Term) {
		if r, ok := t.(*Region); ok {
			ids = append(ids, r.Id)
		}
	})
	return ids
}
