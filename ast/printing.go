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

import (
	"strconv"
	"strings"
)

// TermString returns a fully-parenthesized string representation of a Term.
func TermString(t Term) string {
	var sb strings.Builder
	termString(&sb, t)
	return sb.String()
}

func termString(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(t.Name)

	case *Abs:
		sb.WriteString("(fun ")
		sb.WriteString(t.Name)
		sb.WriteString(" -> ")
		termString(sb, t.Body)
		sb.WriteByte(')')

	case *App:
		sb.WriteByte('(')
		termString(sb, t.Left)
		sb.WriteByte(' ')
		termString(sb, t.Right)
		sb.WriteByte(')')

	case *Let:
		sb.WriteString("(let ")
		sb.WriteString(t.Name)
		sb.WriteString(" = ")
		termString(sb, t.Value)
		sb.WriteString(" in ")
		termString(sb, t.Body)
		sb.WriteByte(')')

	case *Int:
		sb.WriteString(strconv.Itoa(t.Value))

	case *Nil:
		sb.WriteString("nil")

	case *Cons:
		sb.WriteString("(cons ")
		termString(sb, t.Head)
		sb.WriteByte(' ')
		termString(sb, t.Tail)
		sb.WriteByte(')')

	case *Head:
		sb.WriteString("(head ")
		termString(sb, t.List)
		sb.WriteByte(')')

	case *Tail:
		sb.WriteString("(tail ")
		termString(sb, t.List)
		sb.WriteByte(')')

	case *Add:
		binaryString(sb, t.Left, " + ", t.Right)

	case *Sub:
		binaryString(sb, t.Left, " - ", t.Right)

	case *Izte:
		branchString(sb, "(ifz ", t.Cond, t.Then, t.Else)

	case *Iete:
		branchString(sb, "(ife ", t.Cond, t.Then, t.Else)

	case *Fix:
		sb.WriteString("(fix ")
		termString(sb, t.Func)
		sb.WriteByte(')')

	case *Unit:
		sb.WriteString("()")

	case *Mkref:
		sb.WriteString("(ref ")
		termString(sb, t.Expr)
		sb.WriteByte(')')

	case *Deref:
		sb.WriteByte('!')
		termString(sb, t.Expr)

	case *Assign:
		binaryString(sb, t.Ref, " := ", t.Value)

	case *Region:
		sb.WriteString("ρ")
		sb.WriteString(strconv.Itoa(t.Id))

	default:
		panic(unexpected(t))
	}
}

func binaryString(sb *strings.Builder, left Term, op string, right Term) {
	sb.WriteByte('(')
	termString(sb, left)
	sb.WriteString(op)
	termString(sb, right)
	sb.WriteByte(')')
}

func branchString(sb *strings.Builder, keyword string, cond, then, els Term) {
	sb.WriteString(keyword)
	termString(sb, cond)
	sb.WriteString(" then ")
	termString(sb, then)
	sb.WriteString(" else ")
	termString(sb, els)
	sb.WriteByte(')')
}
