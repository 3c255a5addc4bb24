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

package adt

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/marl-lang/marl/marl/ast"
)

// A Num is a decimal numeric literal or value.
type Num struct {
	Src ast.Node
	X   apd.Decimal
}

func (x *Num) Source() ast.Node { return x.Src }
func (x *Num) Kind() Kind       { return NumKind }

// NewNum returns a numeric value for the given integer.
func NewNum(v int64) *Num {
	n := &Num{}
	n.X.SetInt64(v)
	return n
}

// A String is a string literal or value.
type String struct {
	Src ast.Node
	Str string
}

func (x *String) Source() ast.Node { return x.Src }
func (x *String) Kind() Kind       { return StringKind }

// A Bool is a boolean literal or value.
type Bool struct {
	Src ast.Node
	B   bool
}

func (x *Bool) Source() ast.Node { return x.Src }
func (x *Bool) Kind() Kind       { return BoolKind }

// An EnumTag is an enumeration tag literal or value.
type EnumTag struct {
	Src ast.Node
	Tag Feature
}

func (x *EnumTag) Source() ast.Node { return x.Src }
func (x *EnumTag) Kind() Kind       { return EnumKind }

// A Var resolves a name in the environment at evaluation time.
type Var struct {
	Src  ast.Node
	Name Feature
}

func (x *Var) Source() ast.Node { return x.Src }

// A Lam is a function literal of one parameter. It evaluates to a Closure
// capturing the environment by reference.
type Lam struct {
	Src   ast.Node
	Param Feature
	Body  Expr
}

func (x *Lam) Source() ast.Node { return x.Src }

// An App applies Fn to Arg. The argument is bound as an unforced Thunk;
// application is what makes the language call-by-need.
type App struct {
	Src ast.Node
	Fn  Expr
	Arg Expr
}

func (x *App) Source() ast.Node { return x.Src }

// A LetBinding is a single binding of a Let.
type LetBinding struct {
	Label Feature
	Value Expr
}

// A Let introduces bindings visible in the body and in every bound value,
// including a value's own binding.
type Let struct {
	Src      ast.Node
	Bindings []LetBinding
	Body     Expr
}

func (x *Let) Source() ast.Node { return x.Src }

// An If is a conditional. Only the taken branch is evaluated.
type If struct {
	Src  ast.Node
	Cond Expr
	Then Expr
	Else Expr
}

func (x *If) Source() ast.Node { return x.Src }

// A FieldDecl is a single field of a RecordLit.
type FieldDecl struct {
	Label Feature
	Value Expr

	// Contract, if non-nil, constrains the field's value.
	Contract Expr

	// Default marks the field's value as a default for merging purposes.
	Default bool
}

// A RecordLit is a record literal. Fields are bound as Thunks over a shared
// environment frame extended with all sibling bindings.
type RecordLit struct {
	Src   ast.Node
	Decls []FieldDecl
}

func (x *RecordLit) Source() ast.Node { return x.Src }

// A ListLit is a list literal with lazily evaluated elements.
type ListLit struct {
	Src   ast.Node
	Elems []Expr
}

func (x *ListLit) Source() ast.Node { return x.Src }

// A Prim invokes a primitive operation.
type Prim struct {
	Src  ast.Node
	Op   Op
	Args []Expr
}

func (x *Prim) Source() ast.Node { return x.Src }

// A Merge combines two values under the merge operator.
type Merge struct {
	Src ast.Node
	X   Expr
	Y   Expr
}

func (x *Merge) Source() ast.Node { return x.Src }

// An Ascribe attaches a contract to a term. The Label carries the blame
// provenance for all checks descending from this ascription.
type Ascribe struct {
	Src      ast.Node
	X        Expr
	Contract Expr
	Label    *BlameLabel
}

func (x *Ascribe) Source() ast.Node { return x.Src }

// Contract constructor terms. Each evaluates its components and yields the
// corresponding contract value.

// A PredicateLit constructs a Predicate contract from a boolean function.
type PredicateLit struct {
	Src  ast.Node
	Name string
	Fn   Expr
}

func (x *PredicateLit) Source() ast.Node { return x.Src }

// A SchemaFieldDecl is a declared field of a RecordSchemaLit.
type SchemaFieldDecl struct {
	Label    Feature
	Contract Expr // nil admits any value
	Default  Expr // nil means no default
	Required bool
}

// A RecordSchemaLit constructs a RecordSchema contract.
type RecordSchemaLit struct {
	Src    ast.Node
	Fields []SchemaFieldDecl
	Sealed bool
}

func (x *RecordSchemaLit) Source() ast.Node { return x.Src }

// An EnumLit constructs an Enum contract.
type EnumLit struct {
	Src  ast.Node
	Tags []Feature
}

func (x *EnumLit) Source() ast.Node { return x.Src }

// An ArrowLit constructs an Arrow (function) contract.
type ArrowLit struct {
	Src      ast.Node
	Domain   Expr
	Codomain Expr
}

func (x *ArrowLit) Source() ast.Node { return x.Src }
