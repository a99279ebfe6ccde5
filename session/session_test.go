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

package session

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/wdamron/plambda"
	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/eval"
	"github.com/wdamron/plambda/parser"
	"github.com/wdamron/plambda/types"
)

func TestRunProgram(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "program.pl"))
	require.NoError(t, err)

	var out bytes.Buffer
	s := New(Options{})
	require.NoError(t, s.Run(string(src), &out))
	golden.Assert(t, out.String(), "program.golden")

	require.Equal(t, 1, s.Store().Len())
	require.Equal(t, "Ref([Int])", types.TypeString(s.Env().Lookup("r")))
}

func TestWeakTypeVariables(t *testing.T) {
	s := New(Options{})
	exec := func(src string) Outcome {
		stmt, err := parser.ParseStatement(src)
		require.NoError(t, err)
		outcome, err := s.Exec(stmt)
		require.NoError(t, err, src)
		return outcome
	}

	outcome := exec(`let r = ref (λx.x)`)
	require.Equal(t, "r", outcome.Name)
	require.Equal(t, "Ref((_w0 -> _w0))", types.TypeString(outcome.Type))

	exec(`(!r) 1`)
	require.Equal(t, "Ref((Int -> Int))", types.TypeString(s.Env().Lookup("r")))

	stmt, err := parser.ParseStatement(`(!r) ()`)
	require.NoError(t, err)
	_, err = s.Exec(stmt)
	var typeErr *plambda.TypeError
	require.True(t, errors.As(err, &typeErr), "expected a type error, found %v", err)
	require.Equal(t, plambda.TypeMismatch, typeErr.Kind)
}

func TestExecErrors(t *testing.T) {
	var out bytes.Buffer
	s := New(Options{})
	err := s.Run("let x = 1;; x 2;; x", &out)
	require.EqualError(t, err, "statement 2: Cannot unify Int with (Int -> T1)")
	require.Equal(t, "val x : Int = 1\n", out.String())

	// an ill-typed statement leaves the session unchanged
	require.Equal(t, 1, s.Env().Len())

	err = s.Run("let = 1", &out)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	require.True(t, strings.HasPrefix(err.Error(), "parse: "))
}

func TestOutOfFuel(t *testing.T) {
	s := New(Options{MaxSteps: 5})
	stmt, err := parser.ParseStatement(`fix (λf.λn.ifz n then 0 else add n (f (sub n 1))) 5`)
	require.NoError(t, err)
	outcome, err := s.Exec(stmt)
	require.NoError(t, err)
	require.Equal(t, eval.OutOfFuel, outcome.Status)
	require.Equal(t, 5, outcome.Steps)
	require.True(t, strings.HasSuffix(outcome.String(), " (out of fuel)"), outcome.String())
}

func TestReset(t *testing.T) {
	var out bytes.Buffer
	s := New(Options{})
	require.NoError(t, s.Run("let r = ref 1;; let q = ref nil", &out))
	require.Equal(t, 2, s.Store().Len())

	s.Reset()
	require.Equal(t, 0, s.Store().Len())
	require.Equal(t, 0, s.Env().Len())

	out.Reset()
	require.NoError(t, s.Run("let q = ref nil", &out))
	require.Equal(t, "val q : Ref([_w0]) = ρ0\n", out.String())
}

func TestDebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(Options{Logger: logger})

	var out bytes.Buffer
	require.NoError(t, s.Run("let x = add 1 2", &out))
	require.Contains(t, logs.String(), "msg=step")
	require.Contains(t, logs.String(), "msg=statement")
	require.Contains(t, logs.String(), "name=x")
	require.Contains(t, logs.String(), `status="normal form"`)
}

func TestFreeVariables(t *testing.T) {
	s := New(Options{})
	exec := func(src string) Outcome {
		stmt, err := parser.ParseStatement(src)
		require.NoError(t, err)
		outcome, err := s.Exec(stmt)
		require.NoError(t, err, src)
		return outcome
	}

	// the result type of f is the type of the free y, which is not generalized
	f := exec(`let f = λx.y`)
	require.Equal(t, "val f : (∀T1. (T1 -> _w0)) = (fun _v0 -> y)", f.String())

	// the binder y of g must not capture the free y of f
	g := exec(`let g = λy.f`)
	require.Equal(t, "(fun _v0 -> (fun _v1 -> y))", ast.TermString(g.Value))

	outcome := exec(`g 1 2`)
	require.Equal(t, "y", ast.TermString(outcome.Value))
	require.Equal(t, eval.NormalForm, outcome.Status)
	require.Equal(t, 2, outcome.Steps)
}
