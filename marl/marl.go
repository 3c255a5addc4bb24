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

// Package marl is the public entry point of the marl evaluator. A Context
// evaluates terms built with the marl/ast package under a lazy,
// call-by-need semantics with contract checking and record merging.
package marl

import (
	"github.com/marl-lang/marl/internal/core/adt"
	"github.com/marl-lang/marl/internal/core/compile"
	"github.com/marl-lang/marl/internal/core/debug"
	"github.com/marl-lang/marl/internal/core/export"
	"github.com/marl-lang/marl/internal/core/runtime"
	"github.com/marl-lang/marl/marl/ast"
	"github.com/marl-lang/marl/marl/errors"
	"github.com/marl-lang/marl/pkg/list"
	"github.com/marl-lang/marl/pkg/num"
	"github.com/marl-lang/marl/pkg/rec"
)

// A Kind classifies the head normal form of a Value.
type Kind int

const (
	BottomKind Kind = iota
	NumKind
	StringKind
	BoolKind
	EnumKind
	FuncKind
	RecordKind
	ListKind
	ContractKind
)

func (k Kind) String() string {
	switch k {
	case NumKind:
		return "number"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case EnumKind:
		return "enum"
	case FuncKind:
		return "function"
	case RecordKind:
		return "record"
	case ListKind:
		return "list"
	case ContractKind:
		return "contract"
	}
	return "_|_"
}

// A Context holds the shared evaluation state: the label intern table, the
// base environment with the standard builtins and contracts, and the thunk
// memoization arising from evaluations within it.
//
// A Context is not safe for concurrent use: the evaluator is
// single-threaded.
type Context struct {
	runtime *runtime.Runtime
	opc     *adt.OpContext
	base    *adt.Environment
}

// New creates a Context with the standard library registered in its base
// environment.
func New() *Context {
	r := runtime.New()
	num.Register(r)
	list.Register(r)
	rec.Register(r)
	opc := adt.New(r)
	return &Context{runtime: r, opc: opc, base: r.BaseEnv(opc)}
}

// BuildExpr compiles and evaluates x in the base environment. Errors are
// recorded in the returned Value; evaluation of composite elements remains
// lazy until they are accessed.
func (c *Context) BuildExpr(x ast.Expr) Value {
	expr, err := compile.Expr(c.runtime, x)
	if err != nil {
		return Value{ctx: c, err: err}
	}
	v, b := c.opc.Eval(c.base, expr)
	if b != nil {
		return Value{ctx: c, err: b.Err}
	}
	return Value{ctx: c, v: v}
}

// Stats reports evaluator counters for this context.
func (c *Context) Stats() string {
	return c.opc.Stats.String()
}

// A Value is the result of an evaluation.
type Value struct {
	ctx *Context
	v   adt.Value
	err errors.Error
}

// Err reports the error associated with v, if any.
func (v Value) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}

// Exists reports whether v holds a value.
func (v Value) Exists() bool { return v.v != nil }

// Kind reports the kind of v's head normal form.
func (v Value) Kind() Kind {
	if v.v == nil {
		return BottomKind
	}
	switch v.v.Kind() {
	case adt.NumKind:
		return NumKind
	case adt.StringKind:
		return StringKind
	case adt.BoolKind:
		return BoolKind
	case adt.EnumKind:
		return EnumKind
	case adt.FuncKind:
		return FuncKind
	case adt.RecordKind:
		return RecordKind
	case adt.ListKind:
		return ListKind
	case adt.ContractKind:
		return ContractKind
	}
	return BottomKind
}

// Int64 reports the value of a number that fits in an int64.
func (v Value) Int64() (int64, error) {
	if v.err != nil {
		return 0, v.err
	}
	n, ok := v.v.(*adt.Num)
	if !ok {
		return 0, errors.Newf("value is %s, not number", v.Kind())
	}
	i, err := n.X.Int64()
	if err != nil {
		return 0, errors.Newf("number %s does not fit in int64", n.X.String())
	}
	return i, nil
}

// Bool reports the value of a boolean.
func (v Value) Bool() (bool, error) {
	if v.err != nil {
		return false, v.err
	}
	b, ok := v.v.(*adt.Bool)
	if !ok {
		return false, errors.Newf("value is %s, not bool", v.Kind())
	}
	return b.B, nil
}

// String reports the value of a string.
func (v Value) String() (string, error) {
	if v.err != nil {
		return "", v.err
	}
	s, ok := v.v.(*adt.String)
	if !ok {
		return "", errors.Newf("value is %s, not string", v.Kind())
	}
	return s.Str, nil
}

// Lookup resolves a path of field names, forcing each step.
func (v Value) Lookup(path ...string) Value {
	for _, name := range path {
		if v.err != nil {
			return v
		}
		r, ok := v.v.(*adt.Record)
		if !ok {
			return Value{ctx: v.ctx, err: errors.Newf("value is %s, not record", v.Kind())}
		}
		f := r.Lookup(adt.MakeFeature(v.ctx.runtime, name))
		if f == nil {
			return Value{ctx: v.ctx, err: errors.Newf("field %q not found", name)}
		}
		fv, b := v.ctx.opc.Force(f.Value)
		if b != nil {
			return Value{ctx: v.ctx, err: b.Err}
		}
		v = Value{ctx: v.ctx, v: fv}
	}
	return v
}

// Len reports the number of elements of a list.
func (v Value) Len() (int, error) {
	if v.err != nil {
		return 0, v.err
	}
	l, ok := v.v.(*adt.List)
	if !ok {
		return 0, errors.Newf("value is %s, not list", v.Kind())
	}
	return len(l.Elems), nil
}

// Elem forces and reports the i'th element of a list.
func (v Value) Elem(i int) Value {
	if v.err != nil {
		return v
	}
	l, ok := v.v.(*adt.List)
	if !ok {
		return Value{ctx: v.ctx, err: errors.Newf("value is %s, not list", v.Kind())}
	}
	if i < 0 || i >= len(l.Elems) {
		return Value{ctx: v.ctx, err: errors.Newf("index %d out of range", i)}
	}
	ev, b := v.ctx.opc.Force(l.Elems[i])
	if b != nil {
		return Value{ctx: v.ctx, err: b.Err}
	}
	return Value{ctx: v.ctx, v: ev}
}

// Decode forces v recursively and converts it to plain Go data.
func (v Value) Decode() (interface{}, error) {
	if v.err != nil {
		return nil, v.err
	}
	x, b := export.ToInterface(v.ctx.opc, v.v)
	if b != nil {
		return nil, b.Err
	}
	return x, nil
}

// Display reports the printed form of v, forcing it recursively.
func (v Value) Display() (string, error) {
	if v.err != nil {
		return "", v.err
	}
	s, b := debug.NodeString(v.ctx.opc, v.v)
	if b != nil {
		return "", b.Err
	}
	return s, nil
}
