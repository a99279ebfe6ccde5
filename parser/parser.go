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

// Package parser reads the concrete syntax of terms.
//
//	x                      variable
//	\x.e  λx.e             abstraction (extends as far right as possible)
//	e1 e2                  application (left-associative)
//	let x = e1 in e2       let-binding
//	0 1 2 ...              integer literal
//	nil  cons e1 e2        lists
//	head e  tail e
//	add e1 e2  sub e1 e2   arithmetic
//	ifz c then e1 else e2  branch on zero
//	ife c then e1 else e2  branch on the empty list
//	fix e                  fixpoint
//	()                     unit
//	ref e  !e  := e1 e2    references
//
// Operands of the prefix operators (cons, head, tail, add, sub, fix, ref, !, :=) are atoms: variables,
// literals, parenthesized terms, or terms beginning with a keyword which extends as far right as possible.
package parser

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/wdamron/plambda/ast"
)

// Statement is a top-level statement of a program: a binding `let x = e`, or a bare term.
type Statement struct {
	// Bound name, or the empty string for a bare term
	Name string
	Term ast.Term
	// Byte offset of the statement within the source
	Offset int
}

// IsBinding reports whether the statement binds a name.
func (s Statement) IsBinding() bool { return s.Name != "" }

// ParseTerm parses a single term.
func ParseTerm(src string) (ast.Term, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseStatement parses a single statement: `let x = e` without a body binds x, any other input is a term.
func ParseStatement(src string) (Statement, error) {
	p, err := newParser(src)
	if err != nil {
		return Statement{}, err
	}
	stmt, err := p.statement()
	if err != nil {
		return Statement{}, err
	}
	if err := p.expect(tokEOF); err != nil {
		return Statement{}, err
	}
	return stmt, nil
}

// ParseProgram parses a sequence of statements separated by `;;`. Empty statements are ignored.
func ParseProgram(src string) ([]Statement, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	var stmts []Statement
	for p.peek().kind != tokEOF {
		if p.peek().kind == tokSemi {
			p.next()
			continue
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.peek().kind != tokEOF {
			if err := p.expect(tokSemi); err != nil {
				return nil, err
			}
		}
	}
	return stmts, nil
}

type parser struct {
	tokens []token
	pos    int
}

func newParser(src string) (*parser, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens}, nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, msg string) error {
	return &ParseError{Offset: tok.offset, Msg: msg + ", found " + tok.String()}
}

func (p *parser) expect(kind tokenKind) error {
	if tok := p.peek(); tok.kind != kind {
		return p.errorf(tok, "expected "+kindString(kind))
	}
	p.next()
	return nil
}

func (p *parser) expectKeyword(kw string) error {
	if tok := p.peek(); tok.kind != tokKeyword || tok.text != kw {
		return p.errorf(tok, "expected "+strconv.Quote(kw))
	}
	p.next()
	return nil
}

func (p *parser) ident() (string, error) {
	tok := p.peek()
	if tok.kind != tokIdent {
		return "", p.errorf(tok, "expected identifier")
	}
	p.next()
	return tok.text, nil
}

func (p *parser) statement() (Statement, error) {
	start := p.peek()
	if start.kind == tokKeyword && start.text == "let" {
		p.next()
		name, value, err := p.letHead()
		if err != nil {
			return Statement{}, err
		}
		if tok := p.peek(); tok.kind == tokKeyword && tok.text == "in" {
			p.next()
			body, err := p.term()
			if err != nil {
				return Statement{}, err
			}
			t, err := p.continueApplication(&ast.Let{Name: name, Value: value, Body: body})
			return Statement{Term: t, Offset: start.offset}, err
		}
		return Statement{Name: name, Term: value, Offset: start.offset}, nil
	}
	t, err := p.term()
	return Statement{Term: t, Offset: start.offset}, err
}

// Parse `x = e` following `let`.
func (p *parser) letHead() (string, ast.Term, error) {
	name, err := p.ident()
	if err != nil {
		return "", nil, err
	}
	if err := p.expect(tokEquals); err != nil {
		return "", nil, err
	}
	value, err := p.term()
	return name, value, err
}

// term := atom+
func (p *parser) term() (ast.Term, error) {
	first, err := p.atom()
	if err != nil {
		return nil, err
	}
	return p.continueApplication(first)
}

// Parse any atoms following first, and fold them into left-associative applications.
func (p *parser) continueApplication(first ast.Term) (ast.Term, error) {
	var args []ast.Term
	for p.startsAtom() {
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return lo.Reduce(args, func(f ast.Term, arg ast.Term, _ int) ast.Term {
		return &ast.App{Left: f, Right: arg}
	}, first), nil
}

func (p *parser) startsAtom() bool {
	tok := p.peek()
	switch tok.kind {
	case tokIdent, tokInt, tokLambda, tokLParen, tokUnit, tokBang, tokAssign:
		return true
	case tokKeyword:
		switch tok.text {
		case "in", "then", "else":
			return false
		}
		return true
	}
	return false
}

func (p *parser) atom() (ast.Term, error) {
	tok := p.next()
	switch tok.kind {
	case tokIdent:
		return &ast.Var{Name: tok.text}, nil

	case tokInt:
		n, err := strconv.Atoi(tok.text)
		if err != nil {
			return nil, &ParseError{Offset: tok.offset, Msg: "integer out of range: " + tok.text}
		}
		return &ast.Int{Value: n}, nil

	case tokUnit:
		return &ast.Unit{}, nil

	case tokLParen:
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		return t, p.expect(tokRParen)

	case tokLambda:
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokDot); err != nil {
			return nil, err
		}
		body, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.Abs{Name: name, Body: body}, nil

	case tokBang:
		return p.unary(func(e ast.Term) ast.Term { return &ast.Deref{Expr: e} })

	case tokAssign:
		return p.binary(func(r, v ast.Term) ast.Term { return &ast.Assign{Ref: r, Value: v} })

	case tokKeyword:
		return p.keyword(tok)
	}
	return nil, p.errorf(tok, "expected term")
}

func (p *parser) keyword(tok token) (ast.Term, error) {
	switch tok.text {
	case "nil":
		return &ast.Nil{}, nil

	case "let":
		name, value, err := p.letHead()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("in"); err != nil {
			return nil, err
		}
		body, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.Let{Name: name, Value: value, Body: body}, nil

	case "ifz":
		return p.branch(func(c, t, e ast.Term) ast.Term { return &ast.Izte{Cond: c, Then: t, Else: e} })

	case "ife":
		return p.branch(func(c, t, e ast.Term) ast.Term { return &ast.Iete{Cond: c, Then: t, Else: e} })

	case "cons":
		return p.binary(func(h, t ast.Term) ast.Term { return &ast.Cons{Head: h, Tail: t} })

	case "add":
		return p.binary(func(l, r ast.Term) ast.Term { return &ast.Add{Left: l, Right: r} })

	case "sub":
		return p.binary(func(l, r ast.Term) ast.Term { return &ast.Sub{Left: l, Right: r} })

	case "head":
		return p.unary(func(l ast.Term) ast.Term { return &ast.Head{List: l} })

	case "tail":
		return p.unary(func(l ast.Term) ast.Term { return &ast.Tail{List: l} })

	case "fix":
		return p.unary(func(f ast.Term) ast.Term { return &ast.Fix{Func: f} })

	case "ref":
		return p.unary(func(e ast.Term) ast.Term { return &ast.Mkref{Expr: e} })
	}
	return nil, p.errorf(tok, "expected term")
}

func (p *parser) unary(build func(ast.Term) ast.Term) (ast.Term, error) {
	operand, err := p.atom()
	if err != nil {
		return nil, err
	}
	return build(operand), nil
}

func (p *parser) binary(build func(ast.Term, ast.Term) ast.Term) (ast.Term, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}
	right, err := p.atom()
	if err != nil {
		return nil, err
	}
	return build(left, right), nil
}

func (p *parser) branch(build func(c, t, e ast.Term) ast.Term) (ast.Term, error) {
	cond, err := p.term()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	then, err := p.term()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("else"); err != nil {
		return nil, err
	}
	els, err := p.term()
	if err != nil {
		return nil, err
	}
	return build(cond, then, els), nil
}

func kindString(kind tokenKind) string {
	switch kind {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokDot:
		return "\".\""
	case tokRParen:
		return "\")\""
	case tokEquals:
		return "\"=\""
	case tokSemi:
		return "\";;\""
	}
	return "token"
}
