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

package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokKeyword
	tokLambda // `\` or `λ`
	tokDot
	tokLParen
	tokRParen
	tokUnit // `()`
	tokEquals
	tokBang   // `!`
	tokAssign // `:=`
	tokSemi   // `;;`
)

var reserved = map[string]bool{
	"let": true, "in": true, "add": true, "sub": true, "head": true, "tail": true, "cons": true,
	"nil": true, "ifz": true, "ife": true, "then": true, "else": true, "fix": true, "ref": true,
}

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokInt:
		return "integer " + t.text
	case tokIdent:
		return "identifier " + strconv.Quote(t.text)
	}
	return strconv.Quote(t.text)
}

// ParseError is returned for malformed input.
type ParseError struct {
	// Byte offset within the input at which the error was detected
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return "parse error at offset " + strconv.Itoa(e.Offset) + ": " + e.Msg
}

// Split src into tokens. Identifiers begin with a letter and continue with letters, digits, `_` or
// `'`; the lone `_` is also an identifier. `#` begins a comment which extends to the end of the line.
func scan(src string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		start := i
		switch {
		case unicode.IsSpace(r):
			i += size
			continue
		case r == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		case r == '\\' || r == 'λ':
			tokens = append(tokens, token{tokLambda, src[i : i+size], start})
			i += size
		case r == '.':
			tokens = append(tokens, token{tokDot, ".", start})
			i++
		case r == '(':
			if j := skipSpace(src, i+1); j < len(src) && src[j] == ')' {
				tokens = append(tokens, token{tokUnit, "()", start})
				i = j + 1
				continue
			}
			tokens = append(tokens, token{tokLParen, "(", start})
			i++
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")", start})
			i++
		case r == '=':
			tokens = append(tokens, token{tokEquals, "=", start})
			i++
		case r == '!':
			tokens = append(tokens, token{tokBang, "!", start})
			i++
		case r == ':':
			if i+1 >= len(src) || src[i+1] != '=' {
				return nil, &ParseError{start, "expected \":=\""}
			}
			tokens = append(tokens, token{tokAssign, ":=", start})
			i += 2
		case r == ';':
			if i+1 >= len(src) || src[i+1] != ';' {
				return nil, &ParseError{start, "expected \";;\""}
			}
			tokens = append(tokens, token{tokSemi, ";;", start})
			i += 2
		case r >= '0' && r <= '9':
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			tokens = append(tokens, token{tokInt, src[start:i], start})
		case r == '_' || unicode.IsLetter(r):
			i += size
			for i < len(src) {
				r, size := utf8.DecodeRuneInString(src[i:])
				if !isIdentRune(r) {
					break
				}
				i += size
			}
			text := src[start:i]
			switch {
			case reserved[text]:
				tokens = append(tokens, token{tokKeyword, text, start})
			case r == '_' && text != "_":
				return nil, &ParseError{start, "identifiers may not begin with \"_\": " + strconv.Quote(text)}
			default:
				tokens = append(tokens, token{tokIdent, text, start})
			}
		default:
			return nil, &ParseError{start, "unexpected character " + strconv.QuoteRune(r)}
		}
	}
	return append(tokens, token{tokEOF, "", len(src)}), nil
}

func isIdentRune(r rune) bool {
	if r == 'λ' {
		return false
	}
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func skipSpace(src string, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r') {
		i++
	}
	return i
}
