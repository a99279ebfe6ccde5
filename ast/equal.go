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

import "strconv"

// Equal reports whether a and b are syntactically identical, including the names of bound variables.
func Equal(a, b Term) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Abs:
		b, ok := b.(*Abs)
		return ok && a.Name == b.Name && Equal(a.Body, b.Body)
	case *App:
		b, ok := b.(*App)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Let:
		b, ok := b.(*Let)
		return ok && a.Name == b.Name && Equal(a.Value, b.Value) && Equal(a.Body, b.Body)
	case *Int:
		b, ok := b.(*Int)
		return ok && a.Value == b.Value
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Cons:
		b, ok := b.(*Cons)
		return ok && Equal(a.Head, b.Head) && Equal(a.Tail, b.Tail)
	case *Head:
		b, ok := b.(*Head)
		return ok && Equal(a.List, b.List)
	case *Tail:
		b, ok := b.(*Tail)
		return ok && Equal(a.List, b.List)
	case *Add:
		b, ok := b.(*Add)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Sub:
		b, ok := b.(*Sub)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Izte:
		b, ok := b.(*Izte)
		return ok && Equal(a.Cond, b.Cond) && Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	case *Iete:
		b, ok := b.(*Iete)
		return ok && Equal(a.Cond, b.Cond) && Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	case *Fix:
		b, ok := b.(*Fix)
		return ok && Equal(a.Func, b.Func)
	case *Unit:
		_, ok := b.(*Unit)
		return ok
	case *Mkref:
		b, ok := b.(*Mkref)
		return ok && Equal(a.Expr, b.Expr)
	case *Deref:
		b, ok := b.(*Deref)
		return ok && Equal(a.Expr, b.Expr)
	case *Assign:
		b, ok := b.(*Assign)
		return ok && Equal(a.Ref, b.Ref) && Equal(a.Value, b.Value)
	case *Region:
		b, ok := b.(*Region)
		return ok && a.Id == b.Id
	case nil:
		return b == nil
	}
	panic(unexpected(a))
}

// AlphaEqual reports whether a and b are equal up to a consistent renaming of bound variables.
func AlphaEqual(a, b Term) bool {
	return alphaEqual(a, b, NewRenaming(), NewRenaming(), 0)
}

// left and right map bound names to the binder depth at which they were introduced.
func alphaEqual(a, b Term, left, right Renaming, depth int) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		if !ok {
			return false
		}
		la, boundA := left.Get(a.Name)
		rb, boundB := right.Get(b.Name)
		if boundA || boundB {
			return boundA && boundB && la == rb
		}
		return a.Name == b.Name
	case *Abs:
		b, ok := b.(*Abs)
		if !ok {
			return false
		}
		key := strconv.Itoa(depth)
		return alphaEqual(a.Body, b.Body, left.Set(a.Name, key), right.Set(b.Name, key), depth+1)
	case *Let:
		b, ok := b.(*Let)
		if !ok || !alphaEqual(a.Value, b.Value, left, right, depth) {
			return false
		}
		key := strconv.Itoa(depth)
		return alphaEqual(a.Body, b.Body, left.Set(a.Name, key), right.Set(b.Name, key), depth+1)
	case *App:
		b, ok := b.(*App)
		return ok && alphaEqual(a.Left, b.Left, left, right, depth) && alphaEqual(a.Right, b.Right, left, right, depth)
	case *Cons:
		b, ok := b.(*Cons)
		return ok && alphaEqual(a.Head, b.Head, left, right, depth) && alphaEqual(a.Tail, b.Tail, left, right, depth)
	case *Head:
		b, ok := b.(*Head)
		return ok && alphaEqual(a.List, b.List, left, right, depth)
	case *Tail:
		b, ok := b.(*Tail)
		return ok && alphaEqual(a.List, b.List, left, right, depth)
	case *Add:
		b, ok := b.(*Add)
		return ok && alphaEqual(a.Left, b.Left, left, right, depth) && alphaEqual(a.Right, b.Right, left, right, depth)
	case *Sub:
		b, ok := b.(*Sub)
		return ok && alphaEqual(a.Left, b.Left, left, right, depth) && alphaEqual(a.Right, b.Right, left, right, depth)
	case *Izte:
		b, ok := b.(*Izte)
		return ok && alphaEqual(a.Cond, b.Cond, left, right, depth) &&
			alphaEqual(a.Then, b.Then, left, right, depth) && alphaEqual(a.Else, b.Else, left, right, depth)
	case *Iete:
		b, ok := b.(*Iete)
		return ok && alphaEqual(a.Cond, b.Cond, left, right, depth) &&
			alphaEqual(a.Then, b.Then, left, right, depth) && alphaEqual(a.Else, b.Else, left, right, depth)
	case *Fix:
		b, ok := b.(*Fix)
		return ok && alphaEqual(a.Func, b.Func, left, right, depth)
	case *Mkref:
		b, ok := b.(*Mkref)
		return ok && alphaEqual(a.Expr, b.Expr, left, right, depth)
	case *Deref:
		b, ok := b.(*Deref)
		return ok && alphaEqual(a.Expr, b.Expr, left, right, depth)
	case *Assign:
		b, ok := b.(*Assign)
		return ok && alphaEqual(a.Ref, b.Ref, left, right, depth) && alphaEqual(a.Value, b.Value, left, right, depth)
	default:
		return Equal(a, b)
	}
}
