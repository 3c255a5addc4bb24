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

// thunkState tracks the lifecycle of a Thunk. A thunk transitions
// suspended → evaluating → done exactly once.
type thunkState uint8

const (
	suspended thunkState = iota
	evaluating
	done
)

func (s thunkState) String() string {
	switch s {
	case suspended:
		return "suspended"
	case evaluating:
		return "evaluating"
	case done:
		return "done"
	}
	return "invalid"
}

// A Thunk owns either a suspended computation or the memoized result it
// reduced to. The suspended computation is one of:
//
//   - an expression with its environment (the common case),
//   - a pending contract check over an inner thunk (checkStep), or
//   - a deferred per-field merge of two thunks (mergeStep).
//
// Forcing a thunk while it is already being forced is an infinite loop and
// reported as such (`let x = x in x`). The memoized result, value or error,
// is shared by every reference; the computation runs at most once.
type Thunk struct {
	state thunkState

	expr  Expr
	env   *Environment
	check *checkStep
	merge *mergeStep

	value Value
	err   *Bottom
}

// A checkStep applies contract to inner when the thunk is forced. This is
// how record schema checks stay lazy per field: the wrapped field thunk
// triggers the nested check only when some consumer forces the field.
type checkStep struct {
	contract Value
	label    *BlameLabel
	inner    *Thunk
}

// A mergeStep merges two non-default definitions of the same field when the
// field is forced. Conflicts surface at first force, on the recorded path,
// regardless of merge argument order.
type mergeStep struct {
	x, y *Thunk
	path []string
}

// Bind creates a suspended thunk over x in env. No evaluation occurs until
// Force.
func (c *OpContext) Bind(x Expr, env *Environment) *Thunk {
	c.Stats.Thunks++
	return &Thunk{expr: x, env: env}
}

// FromValue wraps an already evaluated value as a done thunk.
func (c *OpContext) FromValue(v Value) *Thunk {
	return &Thunk{state: done, value: v}
}

// Force reduces the thunk to a value, memoizing the result. A second force
// returns the identical value without re-running the computation.
func (c *OpContext) Force(t *Thunk) (Value, *Bottom) {
	switch t.state {
	case done:
		return t.value, t.err
	case evaluating:
		return nil, c.NewInfiniteLoop()
	}
	t.state = evaluating
	c.Stats.Forces++

	var v Value
	var b *Bottom
	switch {
	case t.check != nil:
		v, b = c.runCheck(t.check)
	case t.merge != nil:
		v, b = c.runMergeStep(t.merge)
	default:
		v, b = c.Eval(t.env, t.expr)
	}

	t.state = done
	t.value, t.err = v, b
	t.expr, t.env, t.check, t.merge = nil, nil, nil, nil
	return v, b
}
