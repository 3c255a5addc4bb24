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

package num_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/marl-lang/marl/marl"
	"github.com/marl-lang/marl/marl/ast"
)

// check ascribes value to the named contract and reports whether it passes.
func check(t *testing.T, contract ast.Expr, value ast.Expr) error {
	t.Helper()
	v := marl.New().BuildExpr(&ast.Ascribe{
		X:          value,
		Contract:   contract,
		SourceName: "test",
	})
	if err := v.Err(); err != nil {
		return err
	}
	_, err := v.Display()
	return err
}

func TestNat(t *testing.T) {
	nat := ast.NewIdent("num.Nat")

	qt.Assert(t, qt.IsNil(check(t, nat, ast.NewNum(0))))
	qt.Assert(t, qt.IsNil(check(t, nat, ast.NewNum(17))))

	qt.Assert(t, qt.IsNotNil(check(t, nat, ast.NewNum(-1))))
	qt.Assert(t, qt.IsNotNil(check(t, nat, &ast.Num{Text: "2.5"})))
	qt.Assert(t, qt.IsNotNil(check(t, nat, ast.NewString("3"))))
}

func TestPosNat(t *testing.T) {
	pos := ast.NewIdent("num.PosNat")

	qt.Assert(t, qt.IsNil(check(t, pos, ast.NewNum(1))))
	qt.Assert(t, qt.IsNotNil(check(t, pos, ast.NewNum(0))))
	qt.Assert(t, qt.IsNotNil(check(t, pos, ast.NewNum(-3))))
}

// A fractional value that reduces to an integer is still integral.
func TestNatReducedForm(t *testing.T) {
	nat := ast.NewIdent("num.Nat")
	qt.Assert(t, qt.IsNil(check(t, nat, &ast.Num{Text: "2.0"})))
}

func TestBetween(t *testing.T) {
	port := ast.Apply(ast.NewIdent("num.between"), ast.NewNum(1), ast.NewNum(65535))

	qt.Assert(t, qt.IsNil(check(t, port, ast.NewNum(1))))
	qt.Assert(t, qt.IsNil(check(t, port, ast.NewNum(8080))))
	qt.Assert(t, qt.IsNil(check(t, port, ast.NewNum(65535))))

	qt.Assert(t, qt.IsNotNil(check(t, port, ast.NewNum(0))))
	qt.Assert(t, qt.IsNotNil(check(t, port, ast.NewNum(70000))))
	qt.Assert(t, qt.IsNotNil(check(t, port, ast.NewString("80"))))
}

func TestBetweenBadBounds(t *testing.T) {
	bad := ast.Apply(ast.NewIdent("num.between"), ast.NewString("x"), ast.NewNum(1))
	err := check(t, bad, ast.NewNum(1))
	qt.Assert(t, qt.IsNotNil(err))
}
