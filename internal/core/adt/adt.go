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

// Package adt implements the marl abstract data types: the compiled term
// representation, the value model, and the engines that operate on them:
// the call-by-need evaluator with its thunk store, the record merge engine,
// and the contract engine with blame attribution.
package adt

import "github.com/marl-lang/marl/marl/ast"

// A Node is any abstract data type representing a value or expression.
type Node interface {
	Source() ast.Node
	node() // enforce internal.
}

// An Expr is an unevaluated term produced by compilation.
type Expr interface {
	Node
	expr()
}

// A Value is a node in head normal form: the result of evaluating an Expr.
// Values never contain unevaluated free variables; composite values hold
// their elements as Thunks until forced.
type Value interface {
	Node
	Kind() Kind
	value()
}

// A ContractValue is a Value the contract engine specializes on. Closures
// and builtins are additionally accepted as predicate contracts without
// implementing this interface.
type ContractValue interface {
	Value
	contractValue()
}

// Node

func (*Num) node()             {}
func (*String) node()          {}
func (*Bool) node()            {}
func (*EnumTag) node()         {}
func (*Var) node()             {}
func (*Lam) node()             {}
func (*App) node()             {}
func (*Let) node()             {}
func (*If) node()              {}
func (*RecordLit) node()       {}
func (*ListLit) node()         {}
func (*Prim) node()            {}
func (*Merge) node()           {}
func (*Ascribe) node()         {}
func (*PredicateLit) node()    {}
func (*RecordSchemaLit) node() {}
func (*EnumLit) node()         {}
func (*ArrowLit) node()        {}
func (*Closure) node()         {}
func (*Builtin) node()         {}
func (*ContractProxy) node()   {}
func (*Record) node()          {}
func (*List) node()            {}
func (*Predicate) node()       {}
func (*RecordSchema) node()    {}
func (*Enum) node()            {}
func (*Arrow) node()           {}
func (*Bottom) node()          {}

// Expr

func (*Var) expr()            {}
func (*Lam) expr()            {}
func (*App) expr()            {}
func (*Let) expr()            {}
func (*If) expr()             {}
func (*RecordLit) expr()      {}
func (*ListLit) expr()        {}
func (*Prim) expr()           {}
func (*Merge) expr()          {}
func (*Ascribe) expr()        {}
func (*PredicateLit) expr()   {}
func (*RecordSchemaLit) expr() {}
func (*EnumLit) expr()        {}
func (*ArrowLit) expr()       {}

// Expr and Value

func (*Num) expr()     {}
func (*String) expr()  {}
func (*Bool) expr()    {}
func (*EnumTag) expr() {}

// Value

func (*Num) value()           {}
func (*String) value()        {}
func (*Bool) value()          {}
func (*EnumTag) value()       {}
func (*Closure) value()       {}
func (*Builtin) value()       {}
func (*ContractProxy) value() {}
func (*Record) value()        {}
func (*List) value()          {}
func (*Predicate) value()     {}
func (*RecordSchema) value()  {}
func (*Enum) value()          {}
func (*Arrow) value()         {}
func (*Bottom) value()        {}

// ContractValue

func (*Predicate) contractValue()    {}
func (*RecordSchema) contractValue() {}
func (*Enum) contractValue()         {}
func (*Arrow) contractValue()        {}
