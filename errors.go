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

package plambda

import (
	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/internal/typeutil"
)

// ErrorKind classifies type errors.
type ErrorKind int

const (
	// A variable is not bound within the type-environment.
	UnboundVariable ErrorKind = iota
	// A type-variable would be bound to a type which contains it.
	OccursCheck
	// Two types are incompatible.
	TypeMismatch
	// The unification budget was exhausted.
	UnificationTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundVariable:
		return "UnboundVariable"
	case OccursCheck:
		return "OccursCheck"
	case TypeMismatch:
		return "TypeMismatch"
	case UnificationTimeout:
		return "UnificationTimeout"
	}
	return "ErrorKind(?)"
}

// TypeError is returned when inference fails.
type TypeError struct {
	Kind ErrorKind
	Msg  string
	// The sub-term at which inference failed
	Term ast.Term
}

func (e *TypeError) Error() string { return e.Msg }

func unboundVariable(v *ast.Var) *TypeError {
	return &TypeError{Kind: UnboundVariable, Msg: "Variable " + v.Name + " not found", Term: v}
}

func unifyError(err error, t ast.Term) error {
	uerr, ok := err.(*typeutil.UnifyError)
	if !ok {
		return err
	}
	kind := TypeMismatch
	switch uerr.Kind {
	case typeutil.OccursCheck:
		kind = OccursCheck
	case typeutil.Timeout:
		kind = UnificationTimeout
	}
	return &TypeError{Kind: kind, Msg: uerr.Msg, Term: t}
}
