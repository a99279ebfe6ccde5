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

import (
	"strings"
)

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, t)
	return sb.String()
}

func typeString(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(t.Name)

	case *Arrow:
		sb.WriteByte('(')
		typeString(sb, t.Left)
		sb.WriteString(" -> ")
		typeString(sb, t.Right)
		sb.WriteByte(')')

	case Int:
		sb.WriteString("Int")

	case *List:
		sb.WriteByte('[')
		typeString(sb, t.Elem)
		sb.WriteByte(']')

	case Unit:
		sb.WriteString("Unit")

	case *Ref:
		sb.WriteString("Ref(")
		typeString(sb, t.Inner)
		sb.WriteByte(')')

	case *Forall:
		sb.WriteString("(∀")
		sb.WriteString(t.Var)
		sb.WriteString(". ")
		typeString(sb, t.Body)
		sb.WriteByte(')')

	default:
		panic(unexpected(t))
	}
}
