// Copyright 2026 The Marl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast declares the term types used to represent marl programs.
//
// Terms are produced by an external frontend (a parser or an encoding such
// as encoding/termjson) and handed to a marl.Context for evaluation. A term
// is immutable once constructed.
package ast

import "strconv"

// A Node represents any node in the term tree.
type Node interface {
	node() // enforce internal
}

// An Expr is any term that can be evaluated to a value.
type Expr interface {
	Node
	exprNode()
}

// A ContractExpr is an Expr that constructs a contract value. Any Expr
// evaluating to a function may also be used where a contract is expected;
// the constructors below exist for the shapes the engine specializes.
type ContractExpr interface {
	Expr
	contractNode()
}

// A Num is a decimal numeric literal. The literal is kept in source form and
// parsed during compilation.
type Num struct {
	Text string
}

// NewNum returns a numeric literal for the given integer.
func NewNum(v int64) *Num {
	return &Num{Text: strconv.FormatInt(v, 10)}
}

// A String is a string literal.
type String struct {
	Str string
}

// NewString returns a string literal.
func NewString(s string) *String { return &String{Str: s} }

// A Bool is a boolean literal.
type Bool struct {
	B bool
}

// NewBool returns a boolean literal.
func NewBool(b bool) *Bool { return &Bool{B: b} }

// An EnumTag is an enumeration tag literal, such as `Running.
type EnumTag struct {
	Tag string
}

// An Ident refers to a binding introduced by a Lambda, Let, sibling record
// field, or the base environment.
type Ident struct {
	Name string
}

// NewIdent returns an identifier with the given name.
func NewIdent(name string) *Ident { return &Ident{Name: name} }

// A Lambda is a function literal of one parameter.
type Lambda struct {
	Param string
	Body  Expr
}

// A Call applies a function to an argument. Application is non-strict: the
// argument is not evaluated before the call.
type Call struct {
	Fn  Expr
	Arg Expr
}

// Apply builds a curried application of fn to args.
func Apply(fn Expr, args ...Expr) Expr {
	for _, a := range args {
		fn = &Call{Fn: fn, Arg: a}
	}
	return fn
}

// A LetBinding is a single binding of a Let.
type LetBinding struct {
	Name  string
	Value Expr
}

// A Let introduces bindings that are in scope in the body and in the bound
// values themselves, including each value's own binding.
type Let struct {
	Bindings []LetBinding
	Body     Expr
}

// An If is a conditional with lazily evaluated branches.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// A Field is a single field of a Record literal.
type Field struct {
	Name  string
	Value Expr

	// Contract optionally constrains the field's value. A value merged from
	// several contract-bearing sources must satisfy all of their contracts.
	Contract Expr

	// Default marks the value as a default, which loses against any
	// non-default value for the same field during a merge.
	Default bool
}

// A Record is a record literal. Field names must be unique. Sibling fields
// are mutually visible: a field's value may refer to other fields of the
// same literal by name.
type Record struct {
	Fields []Field
}

// A List is a list literal with lazily evaluated elements.
type List struct {
	Elems []Expr
}

// A Prim invokes a primitive operation by name, such as "add" or "head".
type Prim struct {
	Name string
	Args []Expr
}

// NewPrim returns a primitive invocation.
func NewPrim(name string, args ...Expr) *Prim {
	return &Prim{Name: name, Args: args}
}

// A Merge combines two records (or two identical atoms) under the merge
// operator.
type Merge struct {
	X Expr
	Y Expr
}

// An Ascribe attaches a contract to a term, written `value | Contract` in
// the surface syntax. SourceName names the ascription site for blame
// attribution; if empty a generic name is used.
type Ascribe struct {
	X          Expr
	Contract   Expr
	SourceName string
}

// Contract constructors.

// A PredicateContract wraps a boolean function as a contract. Checking
// forces the value and applies the function.
type PredicateContract struct {
	Name string // used in blame messages
	Fn   Expr
}

// A FieldContract is a single declared field of a RecordContract.
type FieldContract struct {
	Name string

	// Contract optionally constrains the field. A nil Contract admits any
	// value.
	Contract Expr

	// Default, if non-nil, is inserted when the checked record lacks the
	// field. It is evaluated in the checked record's own environment, so it
	// may refer to sibling fields.
	Default Expr

	// Required rejects records lacking the field when no Default is given.
	Required bool
}

// A RecordContract is a structural record schema. If Sealed, fields of the
// checked record that the schema does not declare are rejected.
type RecordContract struct {
	Fields []FieldContract
	Sealed bool
}

// An EnumContract admits exactly the listed enumeration tags.
type EnumContract struct {
	Tags []string
}

// A FuncContract is a function contract. The domain is checked against each
// call's argument with blame polarity flipped; the codomain is checked
// against each call's result.
type FuncContract struct {
	Domain   Expr
	Codomain Expr
}

func (*Num) node()               {}
func (*String) node()            {}
func (*Bool) node()              {}
func (*EnumTag) node()           {}
func (*Ident) node()             {}
func (*Lambda) node()            {}
func (*Call) node()              {}
func (*Let) node()               {}
func (*If) node()                {}
func (*Record) node()            {}
func (*List) node()              {}
func (*Prim) node()              {}
func (*Merge) node()             {}
func (*Ascribe) node()           {}
func (*PredicateContract) node() {}
func (*RecordContract) node()    {}
func (*EnumContract) node()      {}
func (*FuncContract) node()      {}

func (*Num) exprNode()               {}
func (*String) exprNode()            {}
func (*Bool) exprNode()              {}
func (*EnumTag) exprNode()           {}
func (*Ident) exprNode()             {}
func (*Lambda) exprNode()            {}
func (*Call) exprNode()              {}
func (*Let) exprNode()               {}
func (*If) exprNode()                {}
func (*Record) exprNode()            {}
func (*List) exprNode()              {}
func (*Prim) exprNode()              {}
func (*Merge) exprNode()             {}
func (*Ascribe) exprNode()           {}
func (*PredicateContract) exprNode() {}
func (*RecordContract) exprNode()    {}
func (*EnumContract) exprNode()      {}
func (*FuncContract) exprNode()      {}

func (*PredicateContract) contractNode() {}
func (*RecordContract) contractNode()    {}
func (*EnumContract) contractNode()      {}
func (*FuncContract) contractNode()      {}
