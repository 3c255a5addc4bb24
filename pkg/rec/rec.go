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

// Package rec provides the record builtins of the standard library.
package rec

import (
	"github.com/marl-lang/marl/internal/core/adt"
	"github.com/marl-lang/marl/internal/core/runtime"
)

// Register binds the record library in the base environment.
func Register(r *runtime.Runtime) {
	for _, b := range builtins {
		r.RegisterBuiltin(b)
	}
}

var builtins = []*adt.Builtin{{
	Name:  "rec.fields_of",
	Arity: 1,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		return c.UnOp(adt.FieldsOfOp, args[0])
	},
}, {
	Name:  "rec.has_field",
	Arity: 2,
	Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
		return c.BinOp(adt.HasFieldOp, args[0], args[1])
	},
}}
