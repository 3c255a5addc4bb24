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

// Package runtime provides the shared state of a marl evaluator: the label
// intern table and the registry of base-environment values such as builtins
// and library contracts.
package runtime

import "github.com/marl-lang/marl/internal/core/adt"

// A Runtime maintains the state shared by evaluations within a single
// context. It implements adt.Runtime.
type Runtime struct {
	index *index

	// base holds the names and values bound in the base environment, in
	// registration order.
	baseNames  []string
	baseValues map[string]adt.Value
}

// New creates a Runtime with an empty base environment.
func New() *Runtime {
	return &Runtime{
		index:      newIndex(),
		baseValues: map[string]adt.Value{},
	}
}

// Register binds v under name in the base environment. A second
// registration of the same name replaces the first.
func (r *Runtime) Register(name string, v adt.Value) {
	if _, ok := r.baseValues[name]; !ok {
		r.baseNames = append(r.baseNames, name)
	}
	r.baseValues[name] = v
}

// RegisterBuiltin binds b under its own name.
func (r *Runtime) RegisterBuiltin(b *adt.Builtin) {
	r.Register(b.Name, b)
}

// BaseEnv constructs the base environment frame containing every registered
// value, using c to allocate the value thunks.
func (r *Runtime) BaseEnv(c *adt.OpContext) *adt.Environment {
	env := adt.NewFrame(nil)
	for _, name := range r.baseNames {
		env.Bind(adt.MakeFeature(r, name), c.FromValue(r.baseValues[name]))
	}
	return env
}

func (r *Runtime) StringToIndex(s string) int64 { return r.index.StringToIndex(s) }
func (r *Runtime) IndexToString(i int64) string { return r.index.IndexToString(i) }
