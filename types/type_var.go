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

const (
	// Binding-level of the root expression in an inference session
	TopLevel = 0
	// Special binding-level (used as a flag) for type-variables which have been bound to a type
	LinkVarLevel = -1 << 31
)

// Type-variable
//
// A type-variable is a mutable cell shared by every occurrence of the variable within a
// type graph. The cell is either unbound (with an id and a binding-level) or linked to
// another type; a linked type-variable is never unbound again.
type Var struct {
	link  Type
	id    int32
	level int32
}

// Instance of a type-variable
type VarType int

const (
	// Unbound type-variable
	UnboundVar VarType = iota
	// Linked type-variable
	LinkVar
)

// Create a new unbound type-variable with the given id and binding-level.
func NewVar(id, level int) *Var {
	return &Var{id: int32(id), level: int32(level)}
}

// VarType indicates whether the type-variable is linked or unbound.
func (tv *Var) VarType() VarType {
	if tv.level == LinkVarLevel {
		return LinkVar
	}
	return UnboundVar
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return int(tv.id) }

// Level returns the adjusted binding-level of the type-variable.
func (tv *Var) Level() int { return int(tv.level) }

// Link returns the type which the type-variable is bound to, if the type-variable is bound.
func (tv *Var) Link() Type { return tv.link }

func (tv *Var) IsUnboundVar() bool { return tv.level != LinkVarLevel }
func (tv *Var) IsLinkVar() bool    { return tv.level == LinkVarLevel }

// Set the unique identifier of the type-variable.
func (tv *Var) SetId(id int) { tv.id = int32(id) }

// Set the adjusted binding-level of the type-variable. Linked type-variables keep their link.
func (tv *Var) SetLevel(level int) {
	if tv.IsLinkVar() {
		return
	}
	tv.level = int32(level)
}

// Set the type which the type-variable is bound to.
func (tv *Var) SetLink(t Type) {
	if tv.IsLinkVar() {
		panic("type-variable is already linked")
	}
	tv.link, tv.level = t, LinkVarLevel
}

// Flatten a chain of linked type-variables.
func (tv *Var) Flatten() {
	if tv.IsLinkVar() {
		tv.link = RealType(tv.link)
	}
}
