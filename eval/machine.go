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

package eval

import (
	"github.com/wdamron/plambda/ast"
)

// Default bound on the number of reduction steps performed by EvalToNormalForm.
const DefaultMaxSteps = 1000

// Status describes how a reduction run ended.
type Status int

const (
	// No rule applies and the term is a value.
	NormalForm Status = iota
	// No rule applies but the term is not a value, e.g. `(head 1)`.
	Stuck
	// The step bound was reached while the term could still be reduced.
	OutOfFuel
)

func (s Status) String() string {
	switch s {
	case NormalForm:
		return "normal form"
	case Stuck:
		return "stuck"
	case OutOfFuel:
		return "out of fuel"
	}
	return "unknown"
}

// Result of a reduction run.
type Result struct {
	// The last term reached
	Term ast.Term
	// The store after the last step
	Store Store
	// The number of steps performed
	Steps  int
	Status Status
}

// Machine performs small-step, call-by-value reduction of terms against a store.
//
// A machine cannot be used concurrently.
type Machine struct {
	names ast.NameSupply

	// OnStep is called, when not nil, after every reduction step with the step number (starting at 1),
	// the reduced term, and the resulting store.
	OnStep func(step int, t ast.Term, s Store)
}

// Create a new reduction machine.
func NewMachine() *Machine { return &Machine{} }

// EvalToNormalForm reduces t against store until no rule applies, a step leaves the term unchanged,
// or maxSteps steps have been performed. A non-positive maxSteps selects DefaultMaxSteps.
//
// The bound names within t are first replaced by fresh names `_v0`, `_v1`, ... so that substitution
// during reduction cannot capture. Exhausting the step bound is not an error: the last term reached is
// returned with status OutOfFuel.
func (m *Machine) EvalToNormalForm(t ast.Term, store Store, maxSteps int) Result {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	m.names.Reset()
	t = ast.AlphaConvert(t, ast.NewRenaming(), &m.names)

	for steps := 0; ; steps++ {
		next, nextStore, ok := m.Step(t, store)
		switch {
		case !ok:
			return Result{Term: t, Store: store, Steps: steps, Status: settled(t)}
		case ast.Equal(next, t):
			return Result{Term: t, Store: store, Steps: steps, Status: Stuck}
		case steps == maxSteps:
			return Result{Term: t, Store: store, Steps: steps, Status: OutOfFuel}
		}
		t, store = next, nextStore
		if m.OnStep != nil {
			m.OnStep(steps+1, t, store)
		}
	}
}

func settled(t ast.Term) Status {
	if ast.IsValue(t) {
		return NormalForm
	}
	return Stuck
}

// Step performs a single reduction step of t against store. If no rule applies, ok will be false and
// t and store are returned unchanged.
//
// Sub-terms are reduced left-to-right, and every sub-term of a compound term is reduced to a value
// before the term's own rule applies. Abstraction bodies are never reduced.
func (m *Machine) Step(t ast.Term, store Store) (next ast.Term, nextStore Store, ok bool) {
	switch t := t.(type) {
	case *ast.Var, *ast.Abs, *ast.Int, *ast.Nil, *ast.Unit, *ast.Region:
		return t, store, false

	case *ast.App:
		switch f := t.Left.(type) {
		case *ast.Abs:
			return ast.Substitute(f.Body, f.Name, t.Right), store, true
		case *ast.Fix:
			// fix (λf. M) N  →  M[f := fix (λf. M)] N
			if abs, isAbs := f.Func.(*ast.Abs); isAbs {
				return &ast.App{Left: ast.Substitute(abs.Body, abs.Name, f), Right: t.Right}, store, true
			}
		}
		if left, s, ok := m.Step(t.Left, store); ok {
			return &ast.App{Left: left, Right: t.Right}, s, true
		}
		if right, s, ok := m.Step(t.Right, store); ok {
			return &ast.App{Left: t.Left, Right: right}, s, true
		}
		return t, store, false

	case *ast.Let:
		if value, s, ok := m.Step(t.Value, store); ok {
			return &ast.Let{Name: t.Name, Value: value, Body: t.Body}, s, true
		}
		if ast.IsValue(t.Value) {
			return ast.Substitute(t.Body, t.Name, t.Value), store, true
		}
		return t, store, false

	case *ast.Cons:
		if head, s, ok := m.Step(t.Head, store); ok {
			return &ast.Cons{Head: head, Tail: t.Tail}, s, true
		}
		if tail, s, ok := m.Step(t.Tail, store); ok {
			return &ast.Cons{Head: t.Head, Tail: tail}, s, true
		}
		return t, store, false

	case *ast.Head:
		if list, s, ok := m.Step(t.List, store); ok {
			return &ast.Head{List: list}, s, true
		}
		if cons, isCons := t.List.(*ast.Cons); isCons {
			return cons.Head, store, true
		}
		return t, store, false

	case *ast.Tail:
		if list, s, ok := m.Step(t.List, store); ok {
			return &ast.Tail{List: list}, s, true
		}
		if cons, isCons := t.List.(*ast.Cons); isCons {
			return cons.Tail, store, true
		}
		return t, store, false

	case *ast.Add:
		return m.stepArith(t, t.Left, t.Right, store, func(l, r int) int { return l + r },
			func(l, r ast.Term) ast.Term { return &ast.Add{Left: l, Right: r} })

	case *ast.Sub:
		return m.stepArith(t, t.Left, t.Right, store, func(l, r int) int { return l - r },
			func(l, r ast.Term) ast.Term { return &ast.Sub{Left: l, Right: r} })

	case *ast.Izte:
		if cond, s, ok := m.Step(t.Cond, store); ok {
			return &ast.Izte{Cond: cond, Then: t.Then, Else: t.Else}, s, true
		}
		if n, isInt := t.Cond.(*ast.Int); isInt {
			if n.Value == 0 {
				return t.Then, store, true
			}
			return t.Else, store, true
		}
		return t, store, false

	case *ast.Iete:
		if cond, s, ok := m.Step(t.Cond, store); ok {
			return &ast.Iete{Cond: cond, Then: t.Then, Else: t.Else}, s, true
		}
		switch t.Cond.(type) {
		case *ast.Nil:
			return t.Then, store, true
		case *ast.Cons:
			return t.Else, store, true
		}
		return t, store, false

	case *ast.Fix:
		if f, s, ok := m.Step(t.Func, store); ok {
			return &ast.Fix{Func: f}, s, true
		}
		return t, store, false

	case *ast.Mkref:
		if expr, s, ok := m.Step(t.Expr, store); ok {
			return &ast.Mkref{Expr: expr}, s, true
		}
		if ast.IsValue(t.Expr) {
			r, s := store.Alloc(t.Expr)
			return r, s, true
		}
		return t, store, false

	case *ast.Deref:
		if expr, s, ok := m.Step(t.Expr, store); ok {
			return &ast.Deref{Expr: expr}, s, true
		}
		if r, isRegion := t.Expr.(*ast.Region); isRegion {
			if contents, found := store.Get(r.Id); found {
				return contents, store, true
			}
		}
		return t, store, false

	case *ast.Assign:
		if ref, s, ok := m.Step(t.Ref, store); ok {
			return &ast.Assign{Ref: ref, Value: t.Value}, s, true
		}
		if value, s, ok := m.Step(t.Value, store); ok {
			return &ast.Assign{Ref: t.Ref, Value: value}, s, true
		}
		if r, isRegion := t.Ref.(*ast.Region); isRegion && ast.IsValue(t.Value) {
			return &ast.Unit{}, store.Set(r.Id, t.Value), true
		}
		return t, store, false
	}
	panic("unexpected term " + t.TermName())
}

func (m *Machine) stepArith(t, left, right ast.Term, store Store, op func(l, r int) int, rebuild func(l, r ast.Term) ast.Term) (ast.Term, Store, bool) {
	if l, s, ok := m.Step(left, store); ok {
		return rebuild(l, right), s, true
	}
	if r, s, ok := m.Step(right, store); ok {
		return rebuild(left, r), s, true
	}
	l, lok := left.(*ast.Int)
	r, rok := right.(*ast.Int)
	if lok && rok {
		return &ast.Int{Value: op(l.Value, r.Value)}, store, true
	}
	return t, store, false
}

// EvalToNormalForm reduces t against store using a new machine. See Machine.EvalToNormalForm.
func EvalToNormalForm(t ast.Term, store Store, maxSteps int) Result {
	return NewMachine().EvalToNormalForm(t, store, maxSteps)
}
