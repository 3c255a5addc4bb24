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
	"sort"

	"github.com/cockroachdb/apd/v3"
)

// Op indicates a primitive operation.
type Op uint8

const (
	NoOp Op = iota

	// Unary.
	IsNumOp
	IsBoolOp
	IsStrOp
	IsFunOp
	IsListOp
	IsRecordOp
	IsZeroOp
	NegOp
	HeadOp
	TailOp
	LengthOp
	FieldsOfOp

	// Binary.
	AddOp
	SubOp
	EqualOp
	StrConcatOp
	ListConcatOp
	HasFieldOp
)

var opNames = map[Op]string{
	IsNumOp:      "is_num",
	IsBoolOp:     "is_bool",
	IsStrOp:      "is_str",
	IsFunOp:      "is_fun",
	IsListOp:     "is_list",
	IsRecordOp:   "is_record",
	IsZeroOp:     "is_zero",
	NegOp:        "neg",
	HeadOp:       "head",
	TailOp:       "tail",
	LengthOp:     "length",
	FieldsOfOp:   "fields_of",
	AddOp:        "add",
	SubOp:        "sub",
	EqualOp:      "eq",
	StrConcatOp:  "str_concat",
	ListConcatOp: "list_concat",
	HasFieldOp:   "has_field",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "noop"
}

// Arity reports the number of operands of op.
func (op Op) Arity() int {
	if op >= AddOp {
		return 2
	}
	return 1
}

// OpForName resolves a primitive name to its opcode. It returns NoOp for
// unknown names.
func OpForName(name string) Op {
	for op, s := range opNames {
		if s == name {
			return op
		}
	}
	return NoOp
}

// apdCtx is the context for all decimal arithmetic.
var apdCtx = apd.BaseContext.WithPrecision(34)

func (c *OpContext) evalPrim(env *Environment, x *Prim) (Value, *Bottom) {
	if len(x.Args) != x.Op.Arity() {
		return nil, c.NewErrf(EvalError, "%s needs %d arguments, found %d",
			x.Op, x.Op.Arity(), len(x.Args))
	}
	args := make([]Value, len(x.Args))
	for i, a := range x.Args {
		v, b := c.Eval(env, a)
		if b != nil {
			return nil, b
		}
		args[i] = v
	}
	if x.Op.Arity() == 1 {
		return c.UnOp(x.Op, args[0])
	}
	return c.BinOp(x.Op, args[0], args[1])
}

// UnOp applies a unary primitive to a forced value.
func (c *OpContext) UnOp(op Op, v Value) (Value, *Bottom) {
	switch op {
	case IsNumOp:
		return &Bool{B: v.Kind() == NumKind}, nil
	case IsBoolOp:
		return &Bool{B: v.Kind() == BoolKind}, nil
	case IsStrOp:
		return &Bool{B: v.Kind() == StringKind}, nil
	case IsFunOp:
		return &Bool{B: v.Kind() == FuncKind}, nil
	case IsListOp:
		return &Bool{B: v.Kind() == ListKind}, nil
	case IsRecordOp:
		return &Bool{B: v.Kind() == RecordKind}, nil

	case IsZeroOp:
		n, b := c.num(op, v)
		if b != nil {
			return nil, b
		}
		return &Bool{B: n.X.IsZero()}, nil

	case NegOp:
		n, b := c.num(op, v)
		if b != nil {
			return nil, b
		}
		out := &Num{}
		if _, err := apdCtx.Neg(&out.X, &n.X); err != nil {
			return nil, c.NewErrf(PrimitiveError, "neg: %v", err)
		}
		return out, nil

	case HeadOp:
		l, b := c.list(op, v)
		if b != nil {
			return nil, b
		}
		if len(l.Elems) == 0 {
			return nil, c.NewErrf(PrimitiveError, "head of empty list")
		}
		return c.Force(l.Elems[0])

	case TailOp:
		l, b := c.list(op, v)
		if b != nil {
			return nil, b
		}
		if len(l.Elems) == 0 {
			return nil, c.NewErrf(PrimitiveError, "tail of empty list")
		}
		return &List{Elems: l.Elems[1:]}, nil

	case LengthOp:
		l, b := c.list(op, v)
		if b != nil {
			return nil, b
		}
		return NewNum(int64(len(l.Elems))), nil

	case FieldsOfOp:
		r, ok := v.(*Record)
		if !ok {
			return nil, c.typeMismatch(op, v, RecordKind)
		}
		names := make([]string, len(r.Fields))
		for i, f := range r.Fields {
			names[i] = f.Label.StringValue(c)
		}
		sort.Strings(names)
		elems := make([]*Thunk, len(names))
		for i, s := range names {
			elems[i] = c.FromValue(&String{Str: s})
		}
		return &List{Elems: elems}, nil
	}
	return nil, c.NewErrf(EvalError, "invalid unary op %s", op)
}

// BinOp applies a binary primitive to two forced values.
func (c *OpContext) BinOp(op Op, x, y Value) (Value, *Bottom) {
	switch op {
	case AddOp, SubOp:
		nx, b := c.num(op, x)
		if b != nil {
			return nil, b
		}
		ny, b := c.num(op, y)
		if b != nil {
			return nil, b
		}
		out := &Num{}
		var err error
		if op == AddOp {
			_, err = apdCtx.Add(&out.X, &nx.X, &ny.X)
		} else {
			_, err = apdCtx.Sub(&out.X, &nx.X, &ny.X)
		}
		if err != nil {
			return nil, c.NewErrf(PrimitiveError, "%s: %v", op, err)
		}
		return out, nil

	case EqualOp:
		if x.Kind()&AtomKind == 0 || y.Kind()&AtomKind == 0 {
			return nil, c.NewErrf(PrimitiveError,
				"eq needs comparable values, found %s and %s", x.Kind(), y.Kind())
		}
		return &Bool{B: Equal(x, y)}, nil

	case StrConcatOp:
		sx, b := c.str(op, x)
		if b != nil {
			return nil, b
		}
		sy, b := c.str(op, y)
		if b != nil {
			return nil, b
		}
		return &String{Str: sx.Str + sy.Str}, nil

	case ListConcatOp:
		lx, b := c.list(op, x)
		if b != nil {
			return nil, b
		}
		ly, b := c.list(op, y)
		if b != nil {
			return nil, b
		}
		elems := make([]*Thunk, 0, len(lx.Elems)+len(ly.Elems))
		elems = append(elems, lx.Elems...)
		elems = append(elems, ly.Elems...)
		return &List{Elems: elems}, nil

	case HasFieldOp:
		r, ok := x.(*Record)
		if !ok {
			return nil, c.typeMismatch(op, x, RecordKind)
		}
		s, b := c.str(op, y)
		if b != nil {
			return nil, b
		}
		return &Bool{B: r.Lookup(MakeFeature(c, s.Str)) != nil}, nil
	}
	return nil, c.NewErrf(EvalError, "invalid binary op %s", op)
}

// Equal reports structural equality of two atom values. Values of other
// kinds never compare equal.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case *Num:
		y, ok := y.(*Num)
		return ok && x.X.Cmp(&y.X) == 0
	case *String:
		y, ok := y.(*String)
		return ok && x.Str == y.Str
	case *Bool:
		y, ok := y.(*Bool)
		return ok && x.B == y.B
	case *EnumTag:
		y, ok := y.(*EnumTag)
		return ok && x.Tag == y.Tag
	}
	return false
}

func (c *OpContext) num(op Op, v Value) (*Num, *Bottom) {
	n, ok := v.(*Num)
	if !ok {
		return nil, c.typeMismatch(op, v, NumKind)
	}
	return n, nil
}

func (c *OpContext) str(op Op, v Value) (*String, *Bottom) {
	s, ok := v.(*String)
	if !ok {
		return nil, c.typeMismatch(op, v, StringKind)
	}
	return s, nil
}

func (c *OpContext) list(op Op, v Value) (*List, *Bottom) {
	l, ok := v.(*List)
	if !ok {
		return nil, c.typeMismatch(op, v, ListKind)
	}
	return l, nil
}

func (c *OpContext) typeMismatch(op Op, v Value, want Kind) *Bottom {
	return c.NewErrf(PrimitiveError, "%s needs %s, found %s", op, want, v.Kind())
}
