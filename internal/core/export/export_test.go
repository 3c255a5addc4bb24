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

package export_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/marl-lang/marl/internal/core/adt"
	"github.com/marl-lang/marl/internal/core/compile"
	"github.com/marl-lang/marl/internal/core/export"
	"github.com/marl-lang/marl/internal/core/runtime"
	"github.com/marl-lang/marl/marl/ast"
)

func toInterface(t *testing.T, x ast.Expr) (interface{}, *adt.Bottom) {
	t.Helper()
	r := runtime.New()
	c := adt.New(r)
	e, err := compile.Expr(r, x)
	qt.Assert(t, qt.IsNil(err))
	v, b := c.Eval(r.BaseEnv(c), e)
	qt.Assert(t, qt.IsNil(b))
	return export.ToInterface(c, v)
}

func TestToInterface(t *testing.T) {
	testCases := []struct {
		name string
		x    ast.Expr
		want interface{}
	}{{
		name: "int",
		x:    ast.NewNum(42),
		want: int64(42),
	}, {
		name: "float",
		x:    &ast.Num{Text: "2.5"},
		want: 2.5,
	}, {
		name: "string",
		x:    ast.NewString("hi"),
		want: "hi",
	}, {
		name: "bool",
		x:    ast.NewBool(true),
		want: true,
	}, {
		name: "enum tag",
		x:    &ast.EnumTag{Tag: "Running"},
		want: "Running",
	}, {
		name: "record",
		x: &ast.Record{Fields: []ast.Field{
			{Name: "a", Value: ast.NewNum(1)},
			{Name: "xs", Value: &ast.List{Elems: []ast.Expr{ast.NewString("s")}}},
		}},
		want: map[string]interface{}{
			"a":  int64(1),
			"xs": []interface{}{"s"},
		},
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, b := toInterface(t, tc.x)
			qt.Assert(t, qt.IsNil(b))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("exported value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToInterfaceRejectsFunctions(t *testing.T) {
	_, b := toInterface(t, &ast.Lambda{Param: "x", Body: ast.NewIdent("x")})
	qt.Assert(t, qt.IsNotNil(b))
	qt.Assert(t, qt.Equals(b.Code, adt.EvalError))
}

// Export forces lazily deferred errors.
func TestToInterfacePropagatesBottom(t *testing.T) {
	x := &ast.Merge{
		X: &ast.Record{Fields: []ast.Field{{Name: "a", Value: ast.NewNum(1)}}},
		Y: &ast.Record{Fields: []ast.Field{{Name: "a", Value: ast.NewNum(2)}}},
	}
	_, b := toInterface(t, x)
	qt.Assert(t, qt.IsNotNil(b))
	qt.Assert(t, qt.Equals(b.Code, adt.MergeConflictError))
}
