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

// Package num provides the numeric contracts of the standard library. The
// contracts are ordinary predicate values built on the engine's public
// constructors; the engine needs no knowledge of them.
package num

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/marl-lang/marl/internal/core/adt"
	"github.com/marl-lang/marl/internal/core/runtime"
)

// Register binds the numeric library in the base environment.
func Register(r *runtime.Runtime) {
	r.Register("num.Nat", Nat)
	r.Register("num.PosNat", PosNat)
	r.RegisterBuiltin(between)
}

// Nat admits non-negative integers.
var Nat = &adt.Predicate{
	Name: "num.Nat",
	Fn: &adt.Builtin{
		Name:  "num.is_nat",
		Arity: 1,
		Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
			n, ok := args[0].(*adt.Num)
			return &adt.Bool{B: ok && isIntegral(&n.X) && n.X.Sign() >= 0}, nil
		},
	},
}

// PosNat admits strictly positive integers.
var PosNat = &adt.Predicate{
	Name: "num.PosNat",
	Fn: &adt.Builtin{
		Name:  "num.is_pos_nat",
		Arity: 1,
		Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
			n, ok := args[0].(*adt.Num)
			return &adt.Bool{B: ok && isIntegral(&n.X) && n.X.Sign() > 0}, nil
		},
	},
}

// between builds a bounded-range contract: `num.between lo hi` admits
// numbers n with lo <= n <= hi.
var between = &adt.Builtin{
	Name:  "num.between",
	Arity: 2,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		lo, ok := args[0].(*adt.Num)
		if !ok {
			return nil, c.NewErrf(adt.PrimitiveError,
				"num.between needs number bounds, found %s", args[0].Kind())
		}
		hi, ok := args[1].(*adt.Num)
		if !ok {
			return nil, c.NewErrf(adt.PrimitiveError,
				"num.between needs number bounds, found %s", args[1].Kind())
		}
		return &adt.Predicate{
			Name: "num.between",
			Fn: &adt.Builtin{
				Name:  "num.in_range",
				Arity: 1,
				Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
					n, ok := args[0].(*adt.Num)
					if !ok {
						return &adt.Bool{B: false}, nil
					}
					in := n.X.Cmp(&lo.X) >= 0 && n.X.Cmp(&hi.X) <= 0
					return &adt.Bool{B: in}, nil
				},
			},
		}, nil
	},
}

func isIntegral(d *apd.Decimal) bool {
	if d.Form != apd.Finite {
		return false
	}
	var r apd.Decimal
	r.Reduce(d)
	return r.Exponent >= 0
}
