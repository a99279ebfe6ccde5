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


package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/plambda"
	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/eval"
	"github.com/wdamron/plambda/parser"
	"github.com/wdamron/plambda/types"
)

type demo struct {
	desc string
	src  string
	// Only infer the type
	typeOnly bool
	// Inference is expected to fail
	illTyped bool
}

type demoSection struct {
	title string
	demos []demo
}

var demoSections = []demoSection{
	{"Basic lambda calculus", []demo{
		{desc: "Identity", src: `λx.x`, typeOnly: true},
		{desc: "Application", src: `(λx.x) y`},
		{desc: "K combinator", src: `λx.λy.x`, typeOnly: true},
		{desc: "S combinator", src: `λx.λy.λz.(x z) (y z)`, typeOnly: true},
	}},
	{"Let-polymorphism", []demo{
		{desc: "Generalized identity", src: `let id = λx.x in id`, typeOnly: true},
		{desc: "Identity applied to itself", src: `let id = λx.x in (id id)`, typeOnly: true},
		{desc: "Identity applied to an integer", src: `let id = λx.x in id 42`, typeOnly: true},
		{desc: "Identity applied to a function", src: `let id = λx.x in id (λx.x)`, typeOnly: true},
		{desc: "Polymorphic use", src: `let id = λx.x in let a = id 1 in let b = id (λx.x) in a`},
	}},
	{"Integers and arithmetic", []demo{
		{desc: "Literal", src: `42`, typeOnly: true},
		{desc: "Addition", src: `add 1 2`},
		{desc: "Subtraction", src: `sub 10 3`},
		{desc: "Composition", src: `add (sub 10 3) (add 1 2)`},
	}},
	{"Lists", []demo{
		{desc: "Empty list", src: `nil`, typeOnly: true},
		{desc: "Singleton", src: `cons 1 nil`, typeOnly: true},
		{desc: "Head", src: `head (cons 1 nil)`, typeOnly: true},
		{desc: "Tail", src: `tail (cons 1 (cons 2 nil))`, typeOnly: true},
		{desc: "Head of the tail", src: `head (tail (cons 1 (cons 2 nil)))`},
	}},
	{"Conditionals", []demo{
		{desc: "Branch on zero", src: `ifz 0 then 1 else 2`},
		{desc: "Branch on zero (else)", src: `ifz 5 then 1 else 2`},
		{desc: "Branch on the empty list", src: `ife nil then 1 else 2`},
		{desc: "Branch on the empty list (else)", src: `ife (cons 1 nil) then 1 else 2`},
		{desc: "Branches returning functions", src: `ifz 0 then (λx.x) else (λy.y)`, typeOnly: true},
		{desc: "Branches of different types", src: `ife nil then 1 else (λx.x)`, illTyped: true},
	}},
	{"Fixpoints and recursion", []demo{
		{desc: "Fixpoint", src: `fix λf.λn.n`, typeOnly: true},
		{desc: "Sum of 1..5", src: `(fix λf.λn.ifz n then 0 else (add n (f (sub n 1)))) 5`},
		{desc: "Length of a list", src: `(fix λf.λxs.ife xs then 0 else (add 1 (f (tail xs)))) (cons 1 (cons 2 (cons 3 nil)))`},
		{desc: "Map", src: `let double = λx.add x x in (fix λmap.λf.λxs.ife xs then nil else (cons (f (head xs)) (map f (tail xs)))) double (cons 1 (cons 2 (cons 3 nil)))`},
	}},
	{"References", []demo{
		{desc: "Unit", src: `()`, typeOnly: true},
		{desc: "Allocation", src: `ref 42`, typeOnly: true},
		{desc: "Dereference", src: `!(ref 42)`},
		{desc: "Assignment", src: `:= (ref 0) 1`, typeOnly: true},
		{desc: "Reference to the empty list", src: `ref nil`, typeOnly: true},
		{desc: "Dereference of a list", src: `!(ref (cons 1 nil))`, typeOnly: true},
	}},
	{"Value restriction", []demo{
		{desc: "Reference to the empty list is not generalized", src: `let l = ref nil in let _ = (:= l (cons (λx.x) nil)) in (add (head (!l)) 2)`, illTyped: true},
		{desc: "Reference to an integer", src: `let r = ref 0 in let _ = (:= r 1) in !r`},
		{desc: "Non-expansive values are generalized", src: `let id = λx.x in let a = id 1 in let b = id (λy.y) in a`},
		{desc: "Applications are not generalized", src: `let f = (λx.ref x) nil in let _ = (:= f (cons 1 nil)) in let _ = (:= f (cons (λx.x) nil)) in head (!f)`, illTyped: true},
	}},
	{"Type errors", []demo{
		{desc: "Adding a function", src: `add (λx.x) 1`, illTyped: true},
		{desc: "Applying an integer", src: `1 2`, illTyped: true},
		{desc: "Head of an integer", src: `head 42`, illTyped: true},
		{desc: "Tail of a function", src: `tail (λx.x)`, illTyped: true},
		{desc: "Heterogeneous list", src: `cons 1 (cons (λx.x) nil)`, illTyped: true},
		{desc: "Branch on zero of a list", src: `ifz nil then 1 else 2`, illTyped: true},
		{desc: "Branch on the empty list of an integer", src: `ife 42 then 1 else 2`, illTyped: true},
		{desc: "Assignment of the wrong type", src: `let r = ref 1 in := r (λx.x)`, illTyped: true},
		{desc: "Dereference of an integer", src: `!42`, illTyped: true},
		{desc: "Assignment to an integer", src: `:= 1 2`, illTyped: true},
	}},
	{"Compound types", []demo{
		{desc: "List of functions", src: `cons (λx.x) nil`, typeOnly: true},
		{desc: "Function returning a list", src: `λx.cons x nil`, typeOnly: true},
		{desc: "Reference to a list", src: `ref (cons 1 nil)`, typeOnly: true},
		{desc: "List of references", src: `cons (ref 1) nil`, typeOnly: true},
		{desc: "Polymorphic let-bound function", src: `let f = λx.λy.x in f`, typeOnly: true},
		{desc: "Function composition", src: `let compose = λf.λg.λx.f (g x) in compose`, typeOnly: true},
	}},
}

func demoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Type-check and evaluate a tour of example terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st := newStyles(cfg.Color, out)

			ctx := plambda.NewContext()
			ctx.SetUnifyFuel(cfg.UnifyFuel)
			m := eval.NewMachine()

			failed := 0
			for i, section := range demoSections {
				fmt.Fprintf(out, "\n%s\n", st.render(st.label, fmt.Sprintf("%d. %s", i+1, section.title)))
				for _, d := range section.demos {
					if !runDemo(out, st, ctx, m, d, cfg.MaxSteps) {
						failed++
					}
				}
			}
			if failed > 0 {
				return errors.Errorf("%d demos did not behave as expected", failed)
			}
			return nil
		},
	}
}

// Run a single demo, reporting whether inference succeeded or failed as expected.
func runDemo(out io.Writer, st styles, ctx *plambda.InferenceContext, m *eval.Machine, d demo, maxSteps int) bool {
	fmt.Fprintf(out, "\n%s\n", d.desc)
	fmt.Fprintf(out, "  Input:  %s\n", d.src)

	term, err := parser.ParseTerm(d.src)
	if err != nil {
		fmt.Fprintf(out, "  Parse error: %s\n", err)
		return false
	}
	fmt.Fprintf(out, "  Parsed: %s\n", st.render(st.term, ast.TermString(term)))

	t, err := ctx.Infer(term, plambda.NewTypeEnv())
	if err != nil {
		fmt.Fprintf(out, "  Type error: %s", st.render(st.status, err.Error()))
		if d.illTyped {
			fmt.Fprint(out, " (expected)")
		}
		fmt.Fprintln(out)
		return d.illTyped
	}
	fmt.Fprintf(out, "  Type:   %s\n", st.render(st.typ, types.TypeString(t)))
	if d.typeOnly || d.illTyped {
		return !d.illTyped
	}

	res := m.EvalToNormalForm(term, eval.NewStore(), maxSteps)
	fmt.Fprintf(out, "  Result: %s", st.render(st.term, ast.TermString(res.Term)))
	if res.Status != eval.NormalForm {
		fmt.Fprintf(out, " (%s)", res.Status)
	}
	fmt.Fprintln(out)
	return res.Status == eval.NormalForm
}
