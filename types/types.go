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

package types

// Type is the base interface for all types. The set of types is closed; every variant is declared in this file.
type Type interface {
	TypeName() string
	typ()
}

func (t *Var) TypeName() string    { return "Var" }
func (t *Arrow) TypeName() string  { return "Arrow" }
func (t Int) TypeName() string     { return "Int" }
func (t *List) TypeName() string   { return "List" }
func (t Unit) TypeName() string    { return "Unit" }
func (t *Ref) TypeName() string    { return "Ref" }
func (t *Forall) TypeName() string { return "Forall" }

func (*Var) typ()    {}
func (*Arrow) typ()  {}
func (Int) typ()     {}
func (*List) typ()   {}
func (Unit) typ()    {}
func (*Ref) typ()    {}
func (*Forall) typ() {}

// Type variable: `T0`
type Var struct {
	Name string
}

// Function type: `(Int -> Int)`
type Arrow struct {
	Left  Type
	Right Type
}

// Integer type: `Int`
type Int struct{}

// List type: `[Int]`
type List struct {
	Elem Type
}

// Unit type: `Unit`
type Unit struct{}

// Reference type: `Ref(Int)`
type Ref struct {
	Inner Type
}

// Universal quantifier: `(∀T0. (T0 -> T0))`
//
// Quantifiers only appear at the top of a let-bound type scheme, never within the arguments of
// another type.
type Forall struct {
	Var  string
	Body Type
}

// Equal reports whether a and b are structurally identical, including the names of type variables.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Int:
		_, ok := b.(Int)
		return ok
	case *List:
		b, ok := b.(*List)
		return ok && Equal(a.Elem, b.Elem)
	case Unit:
		_, ok := b.(Unit)
		return ok
	case *Ref:
		b, ok := b.(*Ref)
		return ok && Equal(a.Inner, b.Inner)
	case *Forall:
		b, ok := b.(*Forall)
		return ok && a.Var == b.Var && Equal(a.Body, b.Body)
	}
	panic(unexpected(a))
}

// Strip leading quantifiers from a type scheme, returning the quantified variables in order and the body.
func SplitForall(t Type) ([]string, Type) {
	var vars []string
	for {
		fa, ok := t.(*Forall)
		if !ok {
			return vars, t
		}
		vars = append(vars, fa.Var)
		t = fa.Body
	}
}

func unexpected(t Type) string {
	if t == nil {
		return "unexpected type (nil)"
	}
	return "unexpected type " + t.TypeName()
}
