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

package termjson_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/marl-lang/marl/encoding/termjson"
	"github.com/marl-lang/marl/marl"
)

// TestDecode feeds decoded terms through the evaluator and compares the
// displayed result, which exercises every argument of each term variant.
func TestDecode(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{{
		name: "num",
		in:   `{"num": "42"}`,
		want: "42",
	}, {
		name: "decimal num",
		in:   `{"num": "2.5"}`,
		want: "2.5",
	}, {
		name: "str",
		in:   `{"str": "hello"}`,
		want: `"hello"`,
	}, {
		name: "bool",
		in:   `{"bool": false}`,
		want: "false",
	}, {
		name: "enum",
		in:   `{"enum": "Running"}`,
		want: "'Running",
	}, {
		name: "lam and app",
		in: `{"app": {
			"fn": {"lam": {"param": "x", "body": {"prim": {"name": "add", "args": [{"var": "x"}, {"num": "1"}]}}}},
			"args": [{"num": "41"}]}}`,
		want: "42",
	}, {
		name: "let",
		in: `{"let": {
			"bindings": [{"name": "x", "value": {"num": "1"}}],
			"body": {"var": "x"}}}`,
		want: "1",
	}, {
		name: "if",
		in:   `{"if": {"cond": {"bool": true}, "then": {"num": "1"}, "else": {"num": "2"}}}`,
		want: "1",
	}, {
		name: "record",
		in:   `{"record": {"fields": [{"name": "a", "value": {"num": "1"}}]}}`,
		want: "{a: 1}",
	}, {
		name: "list",
		in:   `{"list": [{"num": "1"}, {"str": "two"}]}`,
		want: `[1, "two"]`,
	}, {
		name: "merge",
		in: `{"merge": {
			"x": {"record": {"fields": [{"name": "a", "value": {"num": "1"}}]}},
			"y": {"record": {"fields": [{"name": "b", "value": {"num": "2"}}]}}}}`,
		want: "{a: 1, b: 2}",
	}, {
		name: "ascribe predicate",
		in: `{"ascribe": {
			"name": "n",
			"value": {"num": "3"},
			"contract": {"predicate": {"name": "IsNum", "fn": {"lam": {"param": "v", "body": {"prim": {"name": "is_num", "args": [{"var": "v"}]}}}}}}}}`,
		want: "3",
	}, {
		name: "ascribe enumOf",
		in: `{"ascribe": {
			"value": {"enum": "TCP"},
			"contract": {"enumOf": ["TCP", "UDP"]}}}`,
		want: "'TCP",
	}, {
		name: "ascribe schema default",
		in: `{"ascribe": {
			"value": {"record": {"fields": []}},
			"contract": {"schema": {"fields": [{"name": "a", "default": {"num": "1"}}]}}}}`,
		want: "{a: 1}",
	}, {
		name: "ascribe arrow",
		in: `{"app": {
			"fn": {"ascribe": {
				"value": {"lam": {"param": "x", "body": {"var": "x"}}},
				"contract": {"arrow": {
					"domain": {"predicate": {"name": "IsNum", "fn": {"lam": {"param": "v", "body": {"prim": {"name": "is_num", "args": [{"var": "v"}]}}}}}},
					"codomain": {"predicate": {"name": "IsNum", "fn": {"lam": {"param": "v", "body": {"prim": {"name": "is_num", "args": [{"var": "v"}]}}}}}}}}}},
			"args": [{"num": "5"}]}}`,
		want: "5",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, err := termjson.Decode([]byte(tc.in))
			qt.Assert(t, qt.IsNil(err))
			v := marl.New().BuildExpr(x)
			qt.Assert(t, qt.IsNil(v.Err()))
			got, err := v.Display()
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, tc.want))
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`{}`,
		`{"bogus": 1}`,
		`{"lam": {"param": "x", "body": {}}}`,
	} {
		_, err := termjson.Decode([]byte(in))
		qt.Assert(t, qt.IsNotNil(err), qt.Commentf("input %q", in))
	}
}
