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
	"testing"

	"github.com/wdamron/plambda/ast"
	. "github.com/wdamron/plambda/construct"
)

func TestIsExpansive(t *testing.T) {
	cases := []struct {
		term      ast.Term
		expansive bool
	}{
		{Var("x"), false},
		{Abs("x", Mkref(Var("x"))), false},
		{Int(1), false},
		{Nil(), false},
		{Unit(), false},
		{Region(0), false},
		{App(Abs("x", Var("x")), Int(1)), true},
		{Mkref(Nil()), true},
		{Let("x", Int(1), Add(Var("x"), Int(2))), false},
		{Let("x", Mkref(Int(1)), Var("x")), true},
		{Cons(Abs("x", Var("x")), Nil()), false},
		{Cons(Int(1), Mkref(Nil())), true},
		{Head(List(Int(1))), false},
		{Deref(Var("r")), false},
		{Assign(Var("r"), Mkref(Int(0))), true},
		{Izte(Int(0), Int(1), App(Var("f"), Int(2))), true},
		{Fix(Abs("f", Abs("n", Var("n")))), false},
	}
	for _, c := range cases {
		if got := IsExpansive(c.term); got != c.expansive {
			t.Fatalf("%s: expected expansive=%v", ast.TermString(c.term), c.expansive)
		}
	}
}
