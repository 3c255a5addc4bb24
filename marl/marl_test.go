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

package marl_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/marl-lang/marl/marl"
	"github.com/marl-lang/marl/marl/ast"
)

func config() ast.Expr {
	return &ast.Record{Fields: []ast.Field{
		{Name: "name", Value: ast.NewString("web")},
		{Name: "replicas", Value: ast.NewNum(3)},
		{Name: "spec", Value: &ast.Record{Fields: []ast.Field{
			{Name: "ports", Value: &ast.List{Elems: []ast.Expr{
				ast.NewNum(80), ast.NewNum(443),
			}}},
		}}},
	}}
}

func TestBuildExpr(t *testing.T) {
	v := marl.New().BuildExpr(config())
	qt.Assert(t, qt.IsNil(v.Err()))
	qt.Assert(t, qt.IsTrue(v.Exists()))
	qt.Assert(t, qt.Equals(v.Kind(), marl.RecordKind))

	s, err := v.Lookup("name").String()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "web"))

	i, err := v.Lookup("replicas").Int64()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(i, int64(3)))

	ports := v.Lookup("spec", "ports")
	qt.Assert(t, qt.Equals(ports.Kind(), marl.ListKind))
	n, err := ports.Len()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 2))
	p, err := ports.Elem(1).Int64()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(p, int64(443)))
}

func TestLookupErrors(t *testing.T) {
	v := marl.New().BuildExpr(config())

	qt.Assert(t, qt.ErrorMatches(v.Lookup("nope").Err(), `field "nope" not found`))
	qt.Assert(t, qt.ErrorMatches(v.Lookup("name", "deeper").Err(),
		`value is string, not record`))

	// An error sticks to derived values.
	_, err := v.Lookup("nope").Int64()
	qt.Assert(t, qt.ErrorMatches(err, `field "nope" not found`))
}

func TestDecode(t *testing.T) {
	v := marl.New().BuildExpr(config())
	got, err := v.Decode()
	qt.Assert(t, qt.IsNil(err))

	want := map[string]interface{}{
		"name":     "web",
		"replicas": int64(3),
		"spec": map[string]interface{}{
			"ports": []interface{}{int64(80), int64(443)},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded value mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplay(t *testing.T) {
	v := marl.New().BuildExpr(config())
	s, err := v.Display()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s,
		`{name: "web", replicas: 3, spec: {ports: [80, 443]}}`))
}

func TestCompileErrorIsReported(t *testing.T) {
	v := marl.New().BuildExpr(&ast.Record{Fields: []ast.Field{
		{Name: "a", Value: ast.NewNum(1)},
		{Name: "a", Value: ast.NewNum(2)},
	}})
	qt.Assert(t, qt.IsNotNil(v.Err()))
	qt.Assert(t, qt.IsFalse(v.Exists()))
}

func TestEvalErrorIsReported(t *testing.T) {
	v := marl.New().BuildExpr(ast.NewIdent("nope"))
	qt.Assert(t, qt.IsNotNil(v.Err()))
	qt.Assert(t, qt.Equals(v.Kind(), marl.BottomKind))
}

// Contexts are independent: a failure in one leaves another usable.
func TestContextIsolation(t *testing.T) {
	bad := marl.New()
	qt.Assert(t, qt.IsNotNil(bad.BuildExpr(ast.NewIdent("nope")).Err()))

	good := marl.New()
	i, err := good.BuildExpr(ast.NewNum(7)).Int64()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(i, int64(7)))
}
