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

// Package parser parses the textual syntax of expressions:
//
//	expr := atom atom*
//	atom := INT | true | false | unit | () | IDENT | ( expr )
//	      | \ IDENT . expr | let IDENT = expr in expr
//
// Application is left-associative; lambda and let bodies extend as far to the right as possible.
// `λ` may be used in place of `\`, and `#` starts a comment which runs to the end of the line.
package parser

import (
	"errors"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/wdamron/lambda/ast"
)

// SyntaxError is returned when the source cannot be parsed.
type SyntaxError struct {
	Pos Pos
	Msg string
	// Incomplete is set when the error was caused by reaching the end of the input.
	Incomplete bool
}

func (e *SyntaxError) Error() string { return "Syntax error at " + e.Pos.String() + ": " + e.Msg }

// IsIncomplete reports whether err is a syntax error caused by premature end of input.
// More input may complete the expression.
func IsIncomplete(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr) && serr.Incomplete
}

// ErrEmpty is returned when the source contains no expression.
var ErrEmpty = errors.New("Empty expression")

// tokens which may begin an atom
var atomStart = []TokenType{Number, True, False, UnitKeyword, Ident, LeftParen, Lambda, Let}

type parser struct {
	toks []Token
	i    int
}

// Parse a single expression. The expression must span the whole source.
func Parse(src string) (ast.Expr, error) {
	p := &parser{toks: Tokenize(src)}
	if p.peek().Type == EOF {
		return nil, ErrEmpty
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, p.unexpected(tok, "end of input")
	}
	return e, nil
}

func (p *parser) peek() Token { return p.toks[p.i] }

func (p *parser) advance() Token {
	tok := p.toks[p.i]
	if tok.Type != EOF {
		p.i++
	}
	return tok
}

func (p *parser) unexpected(tok Token, expected string) error {
	if tok.Type == Illegal {
		return &SyntaxError{Pos: tok.Pos, Msg: "illegal character " + tok.String()}
	}
	return &SyntaxError{
		Pos:        tok.Pos,
		Msg:        "expected " + expected + ", found " + tok.String(),
		Incomplete: tok.Type == EOF,
	}
}

func (p *parser) expect(typ TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != typ {
		return tok, p.unexpected(tok, typ.String())
	}
	return tok, nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	fn, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for slices.Contains(atomStart, p.peek().Type) {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		fn = &ast.Call{Func: fn, Arg: arg}
	}
	return fn, nil
}

func (p *parser) parseAtom() (ast.Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case Number:
		n, err := strconv.ParseInt(tok.Data, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Pos: tok.Pos, Msg: "integer literal " + tok.Data + " out of range"}
		}
		return &ast.Int{Value: n}, nil

	case True:
		return &ast.Bool{Value: true}, nil

	case False:
		return &ast.Bool{Value: false}, nil

	case UnitKeyword:
		return &ast.Unit{}, nil

	case Ident:
		return &ast.Var{Name: tok.Data}, nil

	case LeftParen:
		if p.peek().Type == RightParen {
			p.advance()
			return &ast.Unit{}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RightParen); err != nil {
			return nil, err
		}
		return e, nil

	case Lambda:
		param, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(Period); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Func{Param: param.Data, Body: body}, nil

	case Let:
		name, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(Equals); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(In); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Let{Var: name.Data, Value: value, Body: body}, nil
	}
	return nil, p.unexpected(tok, "expression")
}
