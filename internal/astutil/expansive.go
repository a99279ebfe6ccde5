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

package astutil

import (
	"github.com/wdamron/plambda/ast"
)

// IsExpansive reports whether evaluating t may allocate or mutate references, under the value
// restriction. The types of expansive let-bound values are not generalized.
//
// Syntactic values are non-expansive. Applications and allocations are always expansive. All other
// terms are expansive when any of their sub-terms are expansive.
func IsExpansive(t ast.Term) bool {
	switch t := t.(type) {
	case *ast.Var, *ast.Abs, *ast.Int, *ast.Nil, *ast.Unit, *ast.Region:
		return false
	case *ast.App, *ast.Mkref:
		return true
	case *ast.Let:
		return IsExpansive(t.Value) || IsExpansive(t.Body)
	case *ast.Add:
		return IsExpansive(t.Left) || IsExpansive(t.Right)
	case *ast.Sub:
		return IsExpansive(t.Left) || IsExpansive(t.Right)
	case *ast.Cons:
		return IsExpansive(t.Head) || IsExpansive(t.Tail)
	case *ast.Head:
		return IsExpansive(t.List)
	case *ast.Tail:
		return IsExpansive(t.List)
	case *ast.Deref:
		return IsExpansive(t.Expr)
	case *ast.Assign:
		return IsExpansive(t.Ref) || IsExpansive(t.Value)
	case *ast.Izte:
		return IsExpansive(t.Cond) || IsExpansive(t.Then) || IsExpansive(t.Else)
	case *ast.Iete:
		return IsExpansive(t.Cond) || IsExpansive(t.Then) || IsExpansive(t.Else)
	case *ast.Fix:
		return IsExpansive(t.Func)
	}
	panic("unexpected term " + t.TermName())
}
