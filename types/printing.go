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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
//
// Unbound type-variables are named 'a, 'b, 'c, ... in order of first appearance,
// independent of their ids.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of several types, sharing type-variable
// names between them: a type-variable which occurs in more than one of the types is
// printed with the same name in each.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	out := make([]string, len(ts))
	for i, t := range ts {
		typeString(p, false, t)
		out[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return out
}

// SchemeString returns a string representation of a type-scheme, listing quantified
// type-variables before the body: `forall 'a. 'a -> 'a -> bool`.
func SchemeString(s *Scheme) string {
	p := newTypePrinter()
	typeString(p, false, s.Type)
	body := p.sb.String()
	var sb strings.Builder
	if !s.IsMonomorphic() {
		sb.WriteString("forall")
		named := 0
		s.Vars.Range(func(id int) bool {
			if name, ok := p.idNames[id]; ok {
				sb.WriteByte(' ')
				sb.WriteString(name)
				named++
			}
			return true
		})
		if named == 0 {
			sb.Reset()
		} else {
			sb.WriteString(". ")
		}
	}
	sb.WriteString(body)
	p.Release()
	return sb.String()
}

type typePrinter struct {
	idNames map[int]string
	sb      strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = varName(i)
	}
}

func varName(i int) string {
	if i >= 26 {
		return "'" + string(rune('a'+i%26)) + strconv.Itoa(i/26)
	}
	return "'" + string(rune('a'+i))
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return varName(i)
}

func (p *typePrinter) nextName() string {
	return getVarName(len(p.idNames))
}

// simple is set when t appears in the parameter position of a function type.
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		if t.IsLinkVar() {
			typeString(p, simple, t.Link())
			return
		}
		if name, ok := p.idNames[t.Id()]; ok {
			p.sb.WriteString(name)
			return
		}
		name := p.nextName()
		p.idNames[t.Id()] = name
		p.sb.WriteString(name)

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Param)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Result)
		if simple {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
