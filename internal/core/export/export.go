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

// Package export converts evaluated values into plain Go data for encoding
// as JSON or YAML. Exporting forces the value recursively.
package export

import (
	"github.com/marl-lang/marl/internal/core/adt"
)

// ToInterface converts v to plain Go data: numbers become int64 or float64,
// records become maps, lists become slices, and enum tags become their tag
// string. Function and contract values cannot be exported.
func ToInterface(c *adt.OpContext, v adt.Value) (interface{}, *adt.Bottom) {
	switch v := v.(type) {
	case *adt.Num:
		if i, err := v.X.Int64(); err == nil {
			return i, nil
		}
		f, err := v.X.Float64()
		if err != nil {
			return nil, c.NewErrf(adt.EvalError, "cannot export number %s", v.X.String())
		}
		return f, nil

	case *adt.String:
		return v.Str, nil

	case *adt.Bool:
		return v.B, nil

	case *adt.EnumTag:
		return v.Tag.StringValue(c), nil

	case *adt.Record:
		m := make(map[string]interface{}, len(v.Fields))
		for _, f := range v.Fields {
			fv, b := c.Force(f.Value)
			if b != nil {
				return nil, b
			}
			x, b := ToInterface(c, fv)
			if b != nil {
				return nil, b
			}
			m[f.Label.StringValue(c)] = x
		}
		return m, nil

	case *adt.List:
		s := make([]interface{}, len(v.Elems))
		for i, e := range v.Elems {
			ev, b := c.Force(e)
			if b != nil {
				return nil, b
			}
			x, b := ToInterface(c, ev)
			if b != nil {
				return nil, b
			}
			s[i] = x
		}
		return s, nil

	case *adt.Bottom:
		return nil, v
	}
	return nil, c.NewErrf(adt.EvalError, "cannot export %s value", v.Kind())
}
