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

// Term is the base for all terms. The set of terms is closed; every variant is declared in this file.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
	term()
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*Abs)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Let)(nil)
	_ Term = (*Int)(nil)
	_ Term = (*Nil)(nil)
	_ Term = (*Cons)(nil)
	_ Term = (*Head)(nil)
	_ Term = (*Tail)(nil)
	_ Term = (*Add)(nil)
	_ Term = (*Sub)(nil)
	_ Term = (*Izte)(nil)
	_ Term = (*Iete)(nil)
	_ Term = (*Fix)(nil)
	_ Term = (*Unit)(nil)
	_ Term = (*Mkref)(nil)
	_ Term = (*Deref)(nil)
	_ Term = (*Assign)(nil)
	_ Term = (*Region)(nil)
)

// Variable
type Var struct {
	Name string
}

// "Var"
func (t *Var) TermName() string { return "Var" }

// Abstraction: `λx.body`
type Abs struct {
	Name string
	Body Term
}

// "Abs"
func (t *Abs) TermName() string { return "Abs" }

// Application: `f x`
type App struct {
	Left  Term
	Right Term
}

// "App"
func (t *App) TermName() string { return "App" }

// Let-binding: `let x = v in body`. Name is bound in Body only.
type Let struct {
	Name  string
	Value Term
	Body  Term
}

// "Let"
func (t *Let) TermName() string { return "Let" }

// Integer literal
type Int struct {
	Value int
}

// "Int"
func (t *Int) TermName() string { return "Int" }

// Empty list: `nil`
type Nil struct{}

// "Nil"
func (t *Nil) TermName() string { return "Nil" }

// List construction: `cons h t`
type Cons struct {
	Head Term
	Tail Term
}

// "Cons"
func (t *Cons) TermName() string { return "Cons" }

// Head of a list: `head l`
type Head struct {
	List Term
}

// "Head"
func (t *Head) TermName() string { return "Head" }

// Tail of a list: `tail l`
type Tail struct {
	List Term
}

// "Tail"
func (t *Tail) TermName() string { return "Tail" }

// Integer addition: `add l r`
type Add struct {
	Left  Term
	Right Term
}

// "Add"
func (t *Add) TermName() string { return "Add" }

// Integer subtraction: `sub l r`
type Sub struct {
	Left  Term
	Right Term
}

// "Sub"
func (t *Sub) TermName() string { return "Sub" }

// Branch on zero: `ifz c then t else e`
type Izte struct {
	Cond Term
	Then Term
	Else Term
}

// "Izte"
func (t *Izte) TermName() string { return "Izte" }

// Branch on the empty list: `ife c then t else e`
type Iete struct {
	Cond Term
	Then Term
	Else Term
}

// "Iete"
func (t *Iete) TermName() string { return "Iete" }

// Fixpoint: `fix f`
type Fix struct {
	Func Term
}

// "Fix"
func (t *Fix) TermName() string { return "Fix" }

// Unit value: `()`
type Unit struct{}

// "Unit"
func (t *Unit) TermName() string { return "Unit" }

// Allocation of a mutable cell: `ref e`
type Mkref struct {
	Expr Term
}

// "Mkref"
func (t *Mkref) TermName() string { return "Mkref" }

// Dereference: `!e`
type Deref struct {
	Expr Term
}

// "Deref"
func (t *Deref) TermName() string { return "Deref" }

// Assignment: `:= r v`
type Assign struct {
	Ref   Term
	Value Term
}

// "Assign"
func (t *Assign) TermName() string { return "Assign" }

// Region is a runtime handle to a cell in the store. Regions are only produced by evaluating Mkref.
type Region struct {
	Id int
}

// "Region"
func (t *Region) TermName() string { return "Region" }

func (*Var) term()    {}
func (*Abs) term()    {}
func (*App) term()    {}
func (*Let) term()    {}
func (*Int) term()    {}
func (*Nil) term()    {}
func (*Cons) term()   {}
func (*Head) term()   {}
func (*Tail) term()   {}
func (*Add) term()    {}
func (*Sub) term()    {}
func (*Izte) term()   {}
func (*Iete) term()   {}
func (*Fix) term()    {}
func (*Unit) term()   {}
func (*Mkref) term()  {}
func (*Deref) term()  {}
func (*Assign) term() {}
func (*Region) term() {}

// IsValue reports whether t is a value which the evaluator will not reduce further.
//
// Free variables are irreducible and are treated as values. A fixpoint over a value is a value;
// it is only unfolded when applied.
func IsValue(t Term) bool {
	switch t := t.(type) {
	case *Var, *Abs, *Int, *Nil, *Unit, *Region:
		return true
	case *Cons:
		return IsValue(t.Head) && IsValue(t.Tail)
	case *Fix:
		return IsValue(t.Func)
	}
	return false
}

func unexpected(t Term) string {
	if t == nil {
		return "unexpected term (nil)"
	}
	return "unexpected term " + t.TermName()
}
