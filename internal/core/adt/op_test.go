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

package adt_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/marl-lang/marl/internal/core/adt"
	"github.com/marl-lang/marl/marl/ast"
)

func TestPrimOps(t *testing.T) {
	testCases := []struct {
		name string
		x    ast.Expr
		want string
	}{{
		name: "add",
		x:    ast.NewPrim("add", lit(2), lit(3)),
		want: "5",
	}, {
		name: "sub",
		x:    ast.NewPrim("sub", lit(2), lit(3)),
		want: "-1",
	}, {
		name: "neg",
		x:    ast.NewPrim("neg", lit(7)),
		want: "-7",
	}, {
		name: "eq numbers",
		x:    ast.NewPrim("eq", lit(2), lit(2)),
		want: "true",
	}, {
		name: "eq mixed atoms",
		x:    ast.NewPrim("eq", lit(2), ast.NewString("2")),
		want: "false",
	}, {
		name: "eq enum tags",
		x: ast.NewPrim("eq",
			&ast.EnumTag{Tag: "On"}, &ast.EnumTag{Tag: "Off"}),
		want: "false",
	}, {
		name: "is_zero",
		x:    ast.NewPrim("is_zero", lit(0)),
		want: "true",
	}, {
		name: "is_num",
		x:    ast.NewPrim("is_num", ast.NewString("x")),
		want: "false",
	}, {
		name: "is_fun",
		x: ast.NewPrim("is_fun",
			&ast.Lambda{Param: "x", Body: ast.NewIdent("x")}),
		want: "true",
	}, {
		name: "str_concat",
		x:    ast.NewPrim("str_concat", ast.NewString("foo"), ast.NewString("bar")),
		want: `"foobar"`,
	}, {
		name: "head",
		x:    ast.NewPrim("head", &ast.List{Elems: []ast.Expr{lit(1), lit(2)}}),
		want: "1",
	}, {
		name: "tail",
		x:    ast.NewPrim("tail", &ast.List{Elems: []ast.Expr{lit(1), lit(2)}}),
		want: "[2]",
	}, {
		name: "length",
		x:    ast.NewPrim("length", &ast.List{Elems: []ast.Expr{lit(1), lit(2), lit(3)}}),
		want: "3",
	}, {
		name: "list_concat",
		x: ast.NewPrim("list_concat",
			&ast.List{Elems: []ast.Expr{lit(1)}},
			&ast.List{Elems: []ast.Expr{lit(2)}}),
		want: "[1, 2]",
	}, {
		name: "fields_of sorts",
		x: ast.NewPrim("fields_of", record(
			ast.Field{Name: "b", Value: lit(1)},
			ast.Field{Name: "a", Value: lit(2)},
		)),
		want: `["a", "b"]`,
	}, {
		name: "has_field",
		x: ast.NewPrim("has_field",
			record(ast.Field{Name: "a", Value: lit(1)}),
			ast.NewString("a")),
		want: "true",
	}, {
		name: "has_field absent",
		x: ast.NewPrim("has_field",
			record(ast.Field{Name: "a", Value: lit(1)}),
			ast.NewString("b")),
		want: "false",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCtx()
			got, b := c.display(t, tc.x)
			qt.Assert(t, qt.IsNil(b))
			qt.Assert(t, qt.Equals(got, tc.want))
		})
	}
}

func TestPrimOpErrors(t *testing.T) {
	testCases := []struct {
		name string
		x    ast.Expr
	}{{
		name: "add string",
		x:    ast.NewPrim("add", lit(1), ast.NewString("x")),
	}, {
		name: "neg bool",
		x:    ast.NewPrim("neg", ast.NewBool(true)),
	}, {
		name: "head empty",
		x:    ast.NewPrim("head", &ast.List{}),
	}, {
		name: "tail empty",
		x:    ast.NewPrim("tail", &ast.List{}),
	}, {
		name: "eq records",
		x: ast.NewPrim("eq",
			record(ast.Field{Name: "a", Value: lit(1)}),
			record(ast.Field{Name: "a", Value: lit(1)})),
	}, {
		name: "length of record",
		x:    ast.NewPrim("length", record()),
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCtx()
			_, b := c.eval(t, tc.x)
			qt.Assert(t, qt.IsNotNil(b))
			qt.Assert(t, qt.Equals(b.Code, adt.PrimitiveError))
		})
	}
}

// Primitive arguments are forced left to right, and an error in the first
// stops evaluation of the second.
func TestPrimOpEvalOrder(t *testing.T) {
	calls := 0
	c := newCtx(counter("tick", &calls))

	x := ast.NewPrim("add",
		ast.NewPrim("head", &ast.List{}),
		ast.Apply(ast.NewIdent("tick"), lit(1)))
	_, b := c.eval(t, x)
	qt.Assert(t, qt.IsNotNil(b))
	qt.Assert(t, qt.Equals(b.Code, adt.PrimitiveError))
	qt.Assert(t, qt.Equals(calls, 0))
}
