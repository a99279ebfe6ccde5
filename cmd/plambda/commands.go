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
	"os"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/plambda"
	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/eval"
	"github.com/wdamron/plambda/parser"
	"github.com/wdamron/plambda/session"
	"github.com/wdamron/plambda/types"
)

func evalCmd(flags *globalFlags) *cobra.Command {
	var dumpAST, typecheck bool

	cmd := &cobra.Command{
		Use:   "eval <term>",
		Short: "Evaluate a term",
		Example: `  plambda eval '(\x.x) y'
  plambda eval --steps 50 'fix (λf.λn.ifz n then 0 else add n (f (sub n 1))) 5'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			out := cmd.OutOrStdout()
			st := newStyles(cfg.Color, out)

			term, err := parser.ParseTerm(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to parse term %q", args[0])
			}
			fmt.Fprintf(out, "%s  %s\n", st.render(st.label, "Input:"), st.render(st.term, ast.TermString(term)))
			if dumpAST {
				fmt.Fprintf(out, "%# v\n", pretty.Formatter(term))
			}

			if typecheck {
				ctx := plambda.NewContext()
				ctx.SetUnifyFuel(cfg.UnifyFuel)
				t, err := ctx.Infer(term, plambda.NewTypeEnv())
				if err != nil {
					return errors.Errorf("Not typable: %s", err)
				}
				fmt.Fprintf(out, "%s   %s\n", st.render(st.label, "Type:"), st.render(st.typ, types.TypeString(t)))
			}

			m := eval.NewMachine()
			if cfg.Debug {
				m.OnStep = func(step int, t ast.Term, s eval.Store) {
					logger.Debug("step", "n", step, "term", ast.TermString(t), "regions", s.Len())
				}
			}
			res := m.EvalToNormalForm(term, eval.NewStore(), cfg.MaxSteps)
			logger.Debug("evaluated", "steps", res.Steps, "status", res.Status.String())

			fmt.Fprintf(out, "%s %s\n", st.render(st.label, "Result:"), st.render(st.term, ast.TermString(res.Term)))
			if res.Status != eval.NormalForm {
				fmt.Fprintf(out, "%s %s after %d steps\n", st.render(st.label, "Status:"), st.render(st.status, res.Status.String()), res.Steps)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.Steps, "steps", "s", eval.DefaultMaxSteps, "Maximum evaluation steps")
	cmd.Flags().BoolVar(&dumpAST, "ast", false, "Print the structure of the parsed term")
	cmd.Flags().BoolVar(&typecheck, "typecheck", false, "Infer the type of the term before evaluating it")
	return cmd
}

func typeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "type <term>",
		Short:   "Infer the type of a term",
		Example: `  plambda type 'let id = λx.x in id 42'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			out := cmd.OutOrStdout()
			st := newStyles(cfg.Color, out)

			term, err := parser.ParseTerm(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to parse term %q", args[0])
			}
			ctx := plambda.NewContext()
			ctx.SetUnifyFuel(cfg.UnifyFuel)
			t, err := ctx.Infer(term, plambda.NewTypeEnv())
			if err != nil {
				if invalid := ctx.InvalidTerm(); invalid != nil {
					logger.Debug("inference failed", "term", ast.TermString(invalid))
				}
				return errors.Errorf("Not typable: %s", err)
			}
			fmt.Fprintln(out, st.render(st.typ, types.TypeString(t)))
			return nil
		},
	}
}

func runCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a program of ;;-separated statements",
		Long: `Run executes the statements of a program in order. Each statement is either a
binding "let x = e" or a bare term; bindings, the type environment and the store
are shared by later statements. Lines beginning with # are comments.`,
		Example: `  plambda run program.pl`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			src, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", args[0])
			}
			sess := session.New(session.Options{
				MaxSteps:  cfg.MaxSteps,
				UnifyFuel: cfg.UnifyFuel,
				Logger:    logger,
			})
			if err := sess.Run(string(src), cmd.OutOrStdout()); err != nil {
				return errors.Wrapf(err, "failed to run %s", args[0])
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.Steps, "steps", "s", eval.DefaultMaxSteps, "Maximum evaluation steps per statement")
	return cmd
}
