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
	"unicode"

	"github.com/smasher164/xid"
)

const eof = -1

type Lexer struct {
	buf []rune
	i   int // position in buffer
	ch  rune
	pos Pos
}

func NewLexer(src string) *Lexer {
	l := &Lexer{buf: []rune(src), pos: Pos{Line: 1, Column: 0}}
	l.next()
	return l
}

func (l *Lexer) next() {
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	}
	if l.i >= len(l.buf) {
		if l.ch != eof {
			l.pos.Offset = l.i
			l.pos.Column++
		}
		l.ch = eof
		return
	}
	l.ch = l.buf[l.i]
	l.pos.Offset = l.i
	l.pos.Column++
	l.i++
}

func isLetter(ch rune) bool { return ch == '_' || xid.Start(ch) }

func isIdentContinue(ch rune) bool { return ch == '\'' || xid.Continue(ch) }

func isDecimal(ch rune) bool { return '0' <= ch && ch <= '9' }

func (l *Lexer) skipTrivia() {
	for {
		switch {
		case unicode.IsSpace(l.ch):
			l.next()
		case l.ch == '#':
			for l.ch != '\n' && l.ch != eof {
				l.next()
			}
		default:
			return
		}
	}
}

// Next returns the next token of the source. Whitespace and comments are skipped.
func (l *Lexer) Next() Token {
	l.skipTrivia()
	start := l.pos
	single := func(typ TokenType) Token {
		l.next()
		return Token{Type: typ, Pos: start}
	}
	switch ch := l.ch; {
	case ch == eof:
		return Token{Type: EOF, Pos: start}
	case ch == '(':
		return single(LeftParen)
	case ch == ')':
		return single(RightParen)
	case ch == '\\' || ch == 'λ':
		return single(Lambda)
	case ch == '.':
		return single(Period)
	case ch == '=':
		return single(Equals)
	case isDecimal(ch):
		return l.lexNumber()
	case isLetter(ch):
		return l.lexIdentOrKeyword()
	}
	ch := l.ch
	l.next()
	return Token{Type: Illegal, Pos: start, Data: string(ch)}
}

func (l *Lexer) lexNumber() Token {
	start := l.pos
	from := l.pos.Offset
	for isDecimal(l.ch) {
		l.next()
	}
	return Token{Type: Number, Pos: start, Data: string(l.buf[from:l.offset()])}
}

func (l *Lexer) lexIdentOrKeyword() Token {
	start := l.pos
	from := l.pos.Offset
	l.next()
	for l.ch != 'λ' && isIdentContinue(l.ch) {
		l.next()
	}
	ident := string(l.buf[from:l.offset()])
	if typ, ok := Keywords[ident]; ok {
		return Token{Type: typ, Pos: start}
	}
	return Token{Type: Ident, Pos: start, Data: ident}
}

// offset of the current character, or the length of the buffer at the end of input
func (l *Lexer) offset() int {
	if l.ch == eof {
		return len(l.buf)
	}
	return l.pos.Offset
}

// Tokenize returns all tokens of src, ending with EOF.
func Tokenize(src string) []Token {
	l := NewLexer(src)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}
