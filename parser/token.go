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
)

type TokenType int

const (
	EOF TokenType = iota
	Illegal
	Ident
	Number
	LeftParen
	RightParen
	Lambda
	Period
	Equals
	Let
	In
	True
	False
	UnitKeyword
)

var tokenNames = [...]string{
	EOF:         "end of input",
	Illegal:     "illegal token",
	Ident:       "identifier",
	Number:      "number",
	LeftParen:   "'('",
	RightParen:  "')'",
	Lambda:      "'\\'",
	Period:      "'.'",
	Equals:      "'='",
	Let:         "'let'",
	In:          "'in'",
	True:        "'true'",
	False:       "'false'",
	UnitKeyword: "'unit'",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

var Keywords = map[string]TokenType{
	"let":   Let,
	"in":    In,
	"true":  True,
	"false": False,
	"unit":  UnitKeyword,
}

// Pos is a position within the source. Line and Column are 1-based; Column counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

type Token struct {
	Type TokenType
	Pos  Pos
	Data string
}

func (t Token) String() string {
	switch t.Type {
	case Ident, Number, Illegal:
		return strconv.Quote(t.Data)
	}
	return t.Type.String()
}
