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

import "github.com/marl-lang/marl/marl/ast"

// An Environment links the parent scopes for identifier lookup. Extending an
// environment never mutates the parent; frames are shared structurally by
// every closure and thunk that captured them.
//
// A frame may hold several bindings at once: Let bindings and record fields
// are installed into a single frame so that siblings are mutually visible
// and a binding can refer to itself. The bindings map is populated when the
// frame is constructed and not mutated afterwards.
type Environment struct {
	Up       *Environment
	bindings map[Feature]*Thunk
}

// NewFrame returns an empty frame with the given parent scope.
func NewFrame(up *Environment) *Environment {
	return &Environment{Up: up, bindings: map[Feature]*Thunk{}}
}

// Bind installs a binding into the frame. It must only be called while the
// frame is being constructed, before any lookup.
func (e *Environment) Bind(f Feature, t *Thunk) {
	e.bindings[f] = t
}

// Lookup resolves f against this frame and its parents. It returns nil if f
// is unbound.
func (e *Environment) Lookup(f Feature) *Thunk {
	for ; e != nil; e = e.Up {
		if t, ok := e.bindings[f]; ok {
			return t
		}
	}
	return nil
}

// A Closure is a function value: a Lam paired with the environment it
// captured by reference.
type Closure struct {
	Src   ast.Node
	Param Feature
	Body  Expr
	Env   *Environment
}

func (x *Closure) Source() ast.Node { return x.Src }
func (x *Closure) Kind() Kind       { return FuncKind }

// A Builtin is a primitive function value implemented in Go. Builtins of
// arity greater than one are curried: applying a builtin to fewer arguments
// than its arity yields a partially applied builtin.
//
// Arguments are forced before Fn is invoked. Fn must return a
// PrimitiveError Bottom, never a Blame, on a type mismatch.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(c *OpContext, args []Value) (Value, *Bottom)

	bound []Value
}

func (x *Builtin) Source() ast.Node { return nil }
func (x *Builtin) Kind() Kind       { return FuncKind }

// A ContractProxy is the wrapper the contract engine places around a
// function value checked against an Arrow contract. Every application of
// the proxy re-checks the argument against the domain (with flipped blame
// polarity) and the result against the codomain.
type ContractProxy struct {
	Fn       Value // Closure, Builtin, or nested ContractProxy
	Domain   Value
	Codomain Value
	Label    *BlameLabel
}

func (x *ContractProxy) Source() ast.Node { return nil }
func (x *ContractProxy) Kind() Kind       { return FuncKind }

// A Field is a single arc of a Record. The field's value is held as a Thunk
// until forced. Contract and default metadata is retained so that future
// merges can resolve overrides and accumulate contract conjunctions.
type Field struct {
	Label Feature
	Value *Thunk

	// Contracts holds every contract the field's value must satisfy. The
	// Value thunk is already wrapped in checks for these; the slice is kept
	// so merges can conjoin contracts from both operands.
	Contracts []Value

	// Default marks the field as carrying a default value.
	Default bool
}

// A Record is an evaluated record value. Field order is the declaration
// order of the leftmost contributing literal.
type Record struct {
	Src    ast.Node
	Fields []*Field

	// Env is the frame holding the record's own field bindings. Schema
	// defaults for absent fields are evaluated here so they can refer to
	// sibling fields.
	Env *Environment
}

func (x *Record) Source() ast.Node { return x.Src }
func (x *Record) Kind() Kind       { return RecordKind }

// Lookup returns the field with the given label, or nil.
func (x *Record) Lookup(f Feature) *Field {
	for _, a := range x.Fields {
		if a.Label == f {
			return a
		}
	}
	return nil
}

// A List is an evaluated list value with lazily evaluated elements.
type List struct {
	Src   ast.Node
	Elems []*Thunk
}

func (x *List) Source() ast.Node { return x.Src }
func (x *List) Kind() Kind       { return ListKind }

// Contract values. Contracts are ordinary values: they can be bound, passed
// to functions, stored in records, and composed. The engine specializes the
// four shapes below; any other function value is checked as a predicate.

// A Predicate is a contract that forces the checked value and applies a
// boolean function to it.
type Predicate struct {
	Name string
	Fn   Value // Closure or Builtin returning Bool
}

func (x *Predicate) Source() ast.Node { return nil }
func (x *Predicate) Kind() Kind       { return ContractKind }

// A SchemaField is a declared field of a RecordSchema.
type SchemaField struct {
	Label    Feature
	Contract Value // nil admits any value
	Default  Expr  // nil means no default
	Required bool
}

// A RecordSchema is a structural record contract. Checking forces only the
// record's shape; per-field contracts are applied lazily when a consumer
// forces the field.
type RecordSchema struct {
	Fields []SchemaField
	Sealed bool
}

func (x *RecordSchema) Source() ast.Node { return nil }
func (x *RecordSchema) Kind() Kind       { return ContractKind }

// Lookup returns the declared field with the given label, or nil.
func (x *RecordSchema) Lookup(f Feature) *SchemaField {
	for i := range x.Fields {
		if x.Fields[i].Label == f {
			return &x.Fields[i]
		}
	}
	return nil
}

// An Enum is a contract admitting a fixed set of enumeration tags.
type Enum struct {
	Tags []Feature
}

func (x *Enum) Source() ast.Node { return nil }
func (x *Enum) Kind() Kind       { return ContractKind }

// Has reports whether f is one of the admitted tags.
func (x *Enum) Has(f Feature) bool {
	for _, t := range x.Tags {
		if t == f {
			return true
		}
	}
	return false
}

// An Arrow is a function contract with a domain and a codomain.
type Arrow struct {
	Domain   Value
	Codomain Value
}

func (x *Arrow) Source() ast.Node { return nil }
func (x *Arrow) Kind() Kind       { return ContractKind }
