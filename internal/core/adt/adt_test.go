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
	"github.com/marl-lang/marl/internal/core/compile"
	"github.com/marl-lang/marl/internal/core/debug"
	"github.com/marl-lang/marl/internal/core/runtime"
	"github.com/marl-lang/marl/marl/ast"
	"github.com/marl-lang/marl/pkg/list"
	"github.com/marl-lang/marl/pkg/num"
	"github.com/marl-lang/marl/pkg/rec"
)

// testCtx is an evaluator over the standard base environment, extended with
// any extra builtins a test registers.
type testCtx struct {
	r   *runtime.Runtime
	opc *adt.OpContext
	env *adt.Environment
}

func newCtx(extra ...*adt.Builtin) *testCtx {
	r := runtime.New()
	num.Register(r)
	list.Register(r)
	rec.Register(r)
	for _, b := range extra {
		r.RegisterBuiltin(b)
	}
	opc := adt.New(r)
	return &testCtx{r: r, opc: opc, env: r.BaseEnv(opc)}
}

func (c *testCtx) eval(t testing.TB, x ast.Expr) (adt.Value, *adt.Bottom) {
	t.Helper()
	e, err := compile.Expr(c.r, x)
	qt.Assert(t, qt.IsNil(err))
	return c.opc.Eval(c.env, e)
}

// display evaluates x and renders it, forcing the value recursively.
func (c *testCtx) display(t testing.TB, x ast.Expr) (string, *adt.Bottom) {
	t.Helper()
	v, b := c.eval(t, x)
	if b != nil {
		return "", b
	}
	return debug.NodeString(c.opc, v)
}

// counter returns a builtin that counts its invocations and passes its
// argument through.
func counter(name string, n *int) *adt.Builtin {
	return &adt.Builtin{
		Name:  name,
		Arity: 1,
		Fn: func(c *adt.OpContext, args []adt.Value) (adt.Value, *adt.Bottom) {
			*n++
			return args[0], nil
		},
	}
}

// num i as an ast literal.
func lit(i int64) ast.Expr { return ast.NewNum(i) }

func TestKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(adt.NumKind.String(), "number"))
	qt.Assert(t, qt.Equals((adt.NumKind | adt.ListKind).String(), "number|list"))
	qt.Assert(t, qt.Equals(adt.BottomKind.String(), "_|_"))
}
