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

package construct

import (
	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/types"
)

// Types

// Type-variable: `T0`
func TVar(name string) *types.Var {
	return &types.Var{Name: name}
}

// Integer type: `Int`
var TInt = types.Int{}

// Unit type: `Unit`
var TUnit = types.Unit{}

// List type: `[Int]`
func TList(elem types.Type) *types.List {
	return &types.List{Elem: elem}
}

// Reference type: `Ref(Int)`
func TRef(inner types.Type) *types.Ref {
	return &types.Ref{Inner: inner}
}

// Function type: `(Int -> Int)`
func TArrow(arg, ret types.Type) *types.Arrow {
	return &types.Arrow{Left: arg, Right: ret}
}

// Curried function type: `(Int -> (Int -> Int))`
func TArrowN(args []types.Type, ret types.Type) types.Type {
	for i := len(args) - 1; i >= 0; i-- {
		ret = &types.Arrow{Left: args[i], Right: ret}
	}
	return ret
}

// Type scheme quantified over vars, outermost first: `(∀T0. (T0 -> T0))`
func TForall(vars []string, body types.Type) types.Type {
	for i := len(vars) - 1; i >= 0; i-- {
		body = &types.Forall{Var: vars[i], Body: body}
	}
	return body
}

// Terms

// Variable: `x`
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Abstraction: `λx.body`
func Abs(name string, body ast.Term) *ast.Abs {
	return &ast.Abs{Name: name, Body: body}
}

// Curried abstraction: `λx.λy.body`
func AbsN(names []string, body ast.Term) ast.Term {
	for i := len(names) - 1; i >= 0; i-- {
		body = &ast.Abs{Name: names[i], Body: body}
	}
	return body
}

// Application: `f x`
func App(f, arg ast.Term) *ast.App {
	return &ast.App{Left: f, Right: arg}
}

// Left-associative application: `f x y`
func AppN(f ast.Term, args ...ast.Term) ast.Term {
	for _, arg := range args {
		f = &ast.App{Left: f, Right: arg}
	}
	return f
}

// Let-binding: `let x = value in body`
func Let(name string, value, body ast.Term) *ast.Let {
	return &ast.Let{Name: name, Value: value, Body: body}
}

// Integer literal: `42`
func Int(value int) *ast.Int {
	return &ast.Int{Value: value}
}

// Empty list: `nil`
func Nil() *ast.Nil {
	return &ast.Nil{}
}

// List construction: `cons h t`
func Cons(head, tail ast.Term) *ast.Cons {
	return &ast.Cons{Head: head, Tail: tail}
}

// List of each value, terminated by nil: `cons 1 (cons 2 nil)`
func List(values ...ast.Term) ast.Term {
	var list ast.Term = &ast.Nil{}
	for i := len(values) - 1; i >= 0; i-- {
		list = &ast.Cons{Head: values[i], Tail: list}
	}
	return list
}

// Head of a list: `head l`
func Head(list ast.Term) *ast.Head {
	return &ast.Head{List: list}
}

// Tail of a list: `tail l`
func Tail(list ast.Term) *ast.Tail {
	return &ast.Tail{List: list}
}

// Addition: `add l r`
func Add(left, right ast.Term) *ast.Add {
	return &ast.Add{Left: left, Right: right}
}

// Subtraction: `sub l r`
func Sub(left, right ast.Term) *ast.Sub {
	return &ast.Sub{Left: left, Right: right}
}

// Branch on zero: `ifz c then t else e`
func Izte(cond, then, els ast.Term) *ast.Izte {
	return &ast.Izte{Cond: cond, Then: then, Else: els}
}

// Branch on the empty list: `ife c then t else e`
func Iete(cond, then, els ast.Term) *ast.Iete {
	return &ast.Iete{Cond: cond, Then: then, Else: els}
}

// Fixpoint: `fix f`
func Fix(f ast.Term) *ast.Fix {
	return &ast.Fix{Func: f}
}

// Unit value: `()`
func Unit() *ast.Unit {
	return &ast.Unit{}
}

// Allocation: `ref e`
func Mkref(expr ast.Term) *ast.Mkref {
	return &ast.Mkref{Expr: expr}
}

// Dereference: `!e`
func Deref(expr ast.Term) *ast.Deref {
	return &ast.Deref{Expr: expr}
}

// Assignment: `:= r v`
func Assign(ref, value ast.Term) *ast.Assign {
	return &ast.Assign{Ref: ref, Value: value}
}

// Region handle, as produced by evaluating Mkref
func Region(id int) *ast.Region {
	return &ast.Region{Id: id}
}
