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

// Package session runs programs: sequences of statements which share a store and a type-environment.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/wdamron/plambda"
	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/eval"
	"github.com/wdamron/plambda/internal/typeutil"
	"github.com/wdamron/plambda/parser"
	"github.com/wdamron/plambda/types"
)

// Prefix of weak type-variables: type-variables of a binding which could not be generalized, and
// which may be resolved by later statements.
const WeakVarPrefix = "_w"

// Prefix of the names given to the binders of each statement before earlier bindings are substituted
// into it.
const BinderPrefix = "_s"

// Options for a new session.
type Options struct {
	// Bound on the reduction steps of each statement. A non-positive value selects eval.DefaultMaxSteps.
	MaxSteps int
	// Work budget for each unification. A non-positive value selects the default.
	UnifyFuel int
	// Logger for debug output. A nil logger discards output.
	Logger *slog.Logger
}

// Session executes statements in order. The store and the types and values of top-level bindings
// produced by each statement are visible to later statements.
//
// A session cannot be used concurrently.
type Session struct {
	opts     Options
	logger   *slog.Logger
	machine  *eval.Machine
	infer    *plambda.InferenceContext
	weak     typeutil.VarTracker
	names    ast.NameSupply
	store    eval.Store
	env      plambda.TypeEnv
	bindings []binding
	count    int
}

type binding struct {
	name  string
	value ast.Term
}

// Outcome of a single statement.
type Outcome struct {
	// Bound name, or the empty string for a bare term
	Name string
	// Type of the statement. The type of a binding is the scheme it was bound to.
	Type   types.Type
	Value  ast.Term
	Status eval.Status
	Steps  int
}

// String formats the outcome as `val x : Int = 1`, or `- : Int = 1` for a bare term.
func (o Outcome) String() string {
	var sb strings.Builder
	if o.Name != "" {
		sb.WriteString("val ")
		sb.WriteString(o.Name)
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" : ")
	sb.WriteString(types.TypeString(o.Type))
	sb.WriteString(" = ")
	sb.WriteString(ast.TermString(o.Value))
	if o.Status != eval.NormalForm {
		sb.WriteString(" (")
		sb.WriteString(o.Status.String())
		sb.WriteByte(')')
	}
	return sb.String()
}

// Create a new session with an empty store and type-environment.
func New(opts Options) *Session {
	s := &Session{
		opts:    opts,
		logger:  opts.Logger,
		machine: eval.NewMachine(),
		infer:   plambda.NewContext(),
		weak:    typeutil.VarTracker{Prefix: WeakVarPrefix},
		names:   ast.NameSupply{Prefix: BinderPrefix},
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.infer.SetUnifyFuel(opts.UnifyFuel)
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.machine.OnStep = func(step int, t ast.Term, store eval.Store) {
			s.logger.Debug("step", "n", step, "term", ast.TermString(t), "regions", store.Len())
		}
	}
	s.Reset()
	return s
}

// Reset discards all bindings and the store.
func (s *Session) Reset() {
	s.weak.Reset()
	s.names.Reset()
	s.store, s.env, s.bindings, s.count = eval.NewStore(), plambda.NewTypeEnv(), nil, 0
}

// Env returns the type-environment of top-level bindings.
func (s *Session) Env() plambda.TypeEnv { return s.env }

// Store returns the store after the last statement.
func (s *Session) Store() eval.Store { return s.store }

// Exec type-checks and evaluates a statement.
//
// The statement is rejected without evaluation if it is ill-typed. A binding is generalized unless
// its term is expansive, in which case its free type-variables become weak type-variables shared
// with later statements. The types of free term-variables of a binding are never generalized.
// Evaluation which is stuck or exhausts the step bound is not an error;
// the outcome reports the status.
func (s *Session) Exec(stmt parser.Statement) (Outcome, error) {
	s.count++
	res, err := s.infer.InferType(stmt.Term, s.env)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "statement %d", s.count)
	}

	env := s.env.Apply(res.Subst)
	t := res.Type
	var weaken types.Subst
	if stmt.IsBinding() {
		// the types of the statement's own free variables are fixed, as if bound by the environment
		if !plambda.IsExpansive(stmt.Term) {
			t = plambda.Generalize(t, env.Merge(res.Free))
		}
		weaken = s.weakSubst(env, t)
		t = weaken.Apply(t)
		env = env.Apply(weaken).Declare(stmt.Name, t)
	} else {
		// type-variables shared with the environment are weak
		weaken = s.weakSubst(env, nil)
		t = weaken.Apply(t)
		env = env.Apply(weaken)
	}

	// binders are renamed first so that free variables of earlier values cannot be captured
	term := ast.AlphaConvert(stmt.Term, ast.NewRenaming(), &s.names)
	for i := len(s.bindings) - 1; i >= 0; i-- {
		b := s.bindings[i]
		term = ast.Substitute(term, b.name, b.value)
	}
	result := s.machine.EvalToNormalForm(term, s.store, s.opts.MaxSteps)

	s.env, s.store = env, result.Store
	if stmt.IsBinding() {
		s.bindings = append(s.bindings, binding{stmt.Name, result.Term})
	}
	s.logger.Debug("statement",
		"index", s.count,
		"name", stmt.Name,
		"type", types.TypeString(t),
		"steps", result.Steps,
		"status", result.Status.String())

	return Outcome{Name: stmt.Name, Type: t, Value: result.Term, Status: result.Status, Steps: result.Steps}, nil
}

// Build a substitution which renames the free type-variables of env and t to fresh weak type-variables.
func (s *Session) weakSubst(env plambda.TypeEnv, t types.Type) types.Subst {
	subst := types.EmptySubst
	rename := func(names []string) {
		strong := lo.Filter(names, func(name string, _ int) bool { return !strings.HasPrefix(name, WeakVarPrefix) })
		for _, name := range strong {
			if _, ok := subst.Get(name); !ok {
				subst = subst.Set(name, s.weak.New())
			}
		}
	}
	env.Range(func(_ string, t types.Type) bool {
		rename(types.FreeVars(t))
		return true
	})
	if t != nil {
		rename(types.FreeVars(t))
	}
	return subst
}

// Run parses src as a program and executes each statement, writing the outcome of each to out.
// Execution stops at the first statement which fails.
func (s *Session) Run(src string, out io.Writer) error {
	stmts, err := parser.ParseProgram(src)
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	for _, stmt := range stmts {
		outcome, err := s.Exec(stmt)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, outcome.String()); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}
