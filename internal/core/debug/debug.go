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

// Package debug prints a deterministic textual form of evaluated values for
// tests and the command line. Printing forces the value recursively; the
// first error encountered aborts the print and is returned.
package debug

import (
	"fmt"
	"strings"

	"github.com/marl-lang/marl/internal/core/adt"
)

// NodeString reports the printed form of v.
func NodeString(c *adt.OpContext, v adt.Value) (string, *adt.Bottom) {
	w := &printer{ctx: c}
	if b := w.value(v); b != nil {
		return "", b
	}
	return w.b.String(), nil
}

type printer struct {
	ctx *adt.OpContext
	b   strings.Builder
}

func (w *printer) value(v adt.Value) *adt.Bottom {
	switch v := v.(type) {
	case *adt.Num:
		w.b.WriteString(v.X.String())

	case *adt.String:
		fmt.Fprintf(&w.b, "%q", v.Str)

	case *adt.Bool:
		fmt.Fprintf(&w.b, "%t", v.B)

	case *adt.EnumTag:
		w.b.WriteString("'")
		w.b.WriteString(v.Tag.StringValue(w.ctx))

	case *adt.Record:
		w.b.WriteString("{")
		for i, f := range v.Fields {
			if i > 0 {
				w.b.WriteString(", ")
			}
			w.b.WriteString(f.Label.StringValue(w.ctx))
			w.b.WriteString(": ")
			fv, b := w.ctx.Force(f.Value)
			if b != nil {
				return b
			}
			if b := w.value(fv); b != nil {
				return b
			}
		}
		w.b.WriteString("}")

	case *adt.List:
		w.b.WriteString("[")
		for i, e := range v.Elems {
			if i > 0 {
				w.b.WriteString(", ")
			}
			ev, b := w.ctx.Force(e)
			if b != nil {
				return b
			}
			if b := w.value(ev); b != nil {
				return b
			}
		}
		w.b.WriteString("]")

	case *adt.Closure, *adt.ContractProxy:
		w.b.WriteString("<function>")

	case *adt.Builtin:
		fmt.Fprintf(&w.b, "<builtin %s>", v.Name)

	case *adt.Predicate:
		if v.Name != "" {
			fmt.Fprintf(&w.b, "<contract %s>", v.Name)
		} else {
			w.b.WriteString("<contract>")
		}

	case *adt.RecordSchema, *adt.Enum, *adt.Arrow:
		w.b.WriteString("<contract>")

	case *adt.Bottom:
		return v

	default:
		fmt.Fprintf(&w.b, "<%s>", v.Kind())
	}
	return nil
}
