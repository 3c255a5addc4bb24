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

import "slices"

// MergeRecords computes the structural union of two records.
//
// Fields present in exactly one operand pass through with their contract and
// default metadata intact. For fields present in both, an explicit value
// overrides a default; two non-default definitions are merged lazily: the
// field holds a deferred merge that, at first force, merges two records
// recursively, accepts two equal atoms, and otherwise fails with a merge
// conflict on the recorded path. Conflicts therefore surface at the same
// path regardless of operand order.
//
// The result's per-field contracts are the conjunction of both operands'
// contracts.
func (c *OpContext) MergeRecords(x, y *Record, path []string) (*Record, *Bottom) {
	frame := NewFrame(x.Env)
	out := &Record{Src: x.Src, Env: frame}
	for _, fx := range x.Fields {
		fy := y.Lookup(fx.Label)
		var f *Field
		if fy == nil {
			f = fx
		} else {
			f = c.mergeField(fx, fy,
				append(slices.Clip(path), fx.Label.StringValue(c)))
		}
		out.Fields = append(out.Fields, f)
		frame.Bind(f.Label, f.Value)
	}
	for _, fy := range y.Fields {
		if x.Lookup(fy.Label) != nil {
			continue
		}
		out.Fields = append(out.Fields, fy)
		frame.Bind(fy.Label, fy.Value)
	}
	return out, nil
}

func (c *OpContext) mergeField(fx, fy *Field, path []string) *Field {
	f := &Field{
		Label:     fx.Label,
		Contracts: conjoin(fx.Contracts, fy.Contracts),
	}
	name := fx.Label.StringValue(c)
	switch {
	case fx.Default && !fy.Default:
		// The override must still satisfy the defaulting side's contracts.
		f.Value = c.wrapContracts(fy.Value, fx.Contracts, name)
	case fy.Default && !fx.Default:
		f.Value = c.wrapContracts(fx.Value, fy.Contracts, name)
	default:
		f.Default = fx.Default && fy.Default
		c.Stats.Thunks++
		f.Value = &Thunk{merge: &mergeStep{x: fx.Value, y: fy.Value, path: path}}
	}
	return f
}

func (c *OpContext) runMergeStep(s *mergeStep) (Value, *Bottom) {
	vx, b := c.Force(s.x)
	if b != nil {
		return nil, b
	}
	vy, b := c.Force(s.y)
	if b != nil {
		return nil, b
	}
	rx, okx := vx.(*Record)
	ry, oky := vy.(*Record)
	switch {
	case okx && oky:
		return c.MergeRecords(rx, ry, s.path)
	case Equal(vx, vy):
		return vx, nil
	}
	return nil, c.NewMergeConflict(s.path, vx, vy)
}

func conjoin(a, b []Value) []Value {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	return append(slices.Clip(a), b...)
}

// wrapContracts chains lazy checks for the given contracts around t.
func (c *OpContext) wrapContracts(t *Thunk, contracts []Value, name string) *Thunk {
	for _, v := range contracts {
		c.Stats.Thunks++
		t = &Thunk{check: &checkStep{contract: v, label: NewLabel(name), inner: t}}
	}
	return t
}
