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

// Package list provides the list builtins and contracts of the standard
// library.
package list

import (
	"github.com/marl-lang/marl/internal/core/adt"
	"github.com/marl-lang/marl/internal/core/runtime"
)

// Register binds the list library in the base environment.
func Register(r *runtime.Runtime) {
	for _, b := range builtins {
		r.RegisterBuiltin(b)
	}
	r.Register("list.NonEmpty", NonEmpty)
}

// NonEmpty admits lists with at least one element.
var NonEmpty = &adt.Predicate{
	Name: "list.NonEmpty",
	Fn: &adt.Builtin{
		Name:  "list.is_non_empty",
		Arity: 1,
		Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
			l, ok := args[0].(*adt.List)
			return &adt.Bool{B: ok && len(l.Elems) > 0}, nil
		},
	},
}

var builtins = []*adt.Builtin{{
	Name:  "list.head",
	Arity: 1,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		return c.UnOp(adt.HeadOp, args[0])
	},
}, {
	Name:  "list.tail",
	Arity: 1,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		return c.UnOp(adt.TailOp, args[0])
	},
}, {
	Name:  "list.length",
	Arity: 1,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		return c.UnOp(adt.LengthOp, args[0])
	},
}, {
	Name:  "list.concat",
	Arity: 2,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		return c.BinOp(adt.ListConcatOp, args[0], args[1])
	},
}, {
	Name:  "list.elem_at",
	Arity: 2,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		l, ok := args[0].(*adt.List)
		if !ok {
			return nil, c.NewErrf(adt.PrimitiveError,
				"list.elem_at needs a list, found %s", args[0].Kind())
		}
		n, ok := args[1].(*adt.Num)
		if !ok {
			return nil, c.NewErrf(adt.PrimitiveError,
				"list.elem_at needs a number index, found %s", args[1].Kind())
		}
		i, err := n.X.Int64()
		if err != nil || i < 0 || i >= int64(len(l.Elems)) {
			return nil, c.NewErrf(adt.PrimitiveError,
				"index %s out of range", n.X.String())
		}
		return c.Force(l.Elems[i])
	},
}, {
	// foldl f acc list
	Name:  "list.foldl",
	Arity: 3,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		f := args[0]
		if f.Kind() != adt.FuncKind {
			return nil, c.NewErrf(adt.PrimitiveError,
				"list.foldl needs a function, found %s", f.Kind())
		}
		l, ok := args[2].(*adt.List)
		if !ok {
			return nil, c.NewErrf(adt.PrimitiveError,
				"list.foldl needs a list, found %s", args[2].Kind())
		}
		acc := args[1]
		for _, e := range l.Elems {
			step, b := c.Apply(f, c.FromValue(acc))
			if b != nil {
				return nil, b
			}
			acc, b = c.Apply(step, e)
			if b != nil {
				return nil, b
			}
		}
		return acc, nil
	},
}, {
	// map f list
	Name:  "list.map",
	Arity: 2,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		f := args[0]
		if f.Kind() != adt.FuncKind {
			return nil, c.NewErrf(adt.PrimitiveError,
				"list.map needs a function, found %s", f.Kind())
		}
		l, ok := args[1].(*adt.List)
		if !ok {
			return nil, c.NewErrf(adt.PrimitiveError,
				"list.map needs a list, found %s", args[1].Kind())
		}
		elems := make([]*adt.Thunk, len(l.Elems))
		for i, e := range l.Elems {
			v, b := c.Apply(f, e)
			if b != nil {
				return nil, b
			}
			elems[i] = c.FromValue(v)
		}
		return &adt.List{Elems: elems}, nil
	},
}}
