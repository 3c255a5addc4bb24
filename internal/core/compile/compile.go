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

// Package compile lowers ast terms to the adt representation used by the
// evaluator: names are interned as features, primitive names are resolved
// to opcodes, numeric literals are parsed, and blame labels are stamped on
// contract ascriptions.
package compile

import (
	"github.com/marl-lang/marl/internal/core/adt"
	"github.com/marl-lang/marl/marl/ast"
	"github.com/marl-lang/marl/marl/errors"
)

// Expr compiles x for evaluation against the given index.
func Expr(index adt.StringIndexer, x ast.Expr) (adt.Expr, errors.Error) {
	c := &compiler{index: index}
	out := c.expr(x)
	if c.errs != nil {
		return nil, c.errs
	}
	return out, nil
}

type compiler struct {
	index adt.StringIndexer
	errs  errors.Error
}

func (c *compiler) errf(format string, args ...interface{}) adt.Expr {
	c.errs = errors.Append(c.errs, errors.Newf(format, args...))
	return nil
}

func (c *compiler) label(s string) adt.Feature {
	return adt.MakeFeature(c.index, s)
}

func (c *compiler) expr(x ast.Expr) adt.Expr {
	switch x := x.(type) {
	case nil:
		return c.errf("missing expression")

	case *ast.Num:
		n := &adt.Num{Src: x}
		if _, _, err := n.X.SetString(x.Text); err != nil {
			return c.errf("invalid number literal %q", x.Text)
		}
		return n

	case *ast.String:
		return &adt.String{Src: x, Str: x.Str}

	case *ast.Bool:
		return &adt.Bool{Src: x, B: x.B}

	case *ast.EnumTag:
		return &adt.EnumTag{Src: x, Tag: c.label(x.Tag)}

	case *ast.Ident:
		return &adt.Var{Src: x, Name: c.label(x.Name)}

	case *ast.Lambda:
		return &adt.Lam{Src: x, Param: c.label(x.Param), Body: c.expr(x.Body)}

	case *ast.Call:
		return &adt.App{Src: x, Fn: c.expr(x.Fn), Arg: c.expr(x.Arg)}

	case *ast.Let:
		out := &adt.Let{Src: x, Body: c.expr(x.Body)}
		for _, b := range x.Bindings {
			out.Bindings = append(out.Bindings, adt.LetBinding{
				Label: c.label(b.Name),
				Value: c.expr(b.Value),
			})
		}
		return out

	case *ast.If:
		return &adt.If{
			Src:  x,
			Cond: c.expr(x.Cond),
			Then: c.expr(x.Then),
			Else: c.expr(x.Else),
		}

	case *ast.Record:
		out := &adt.RecordLit{Src: x}
		seen := map[string]bool{}
		for _, f := range x.Fields {
			if seen[f.Name] {
				return c.errf("duplicate field %q", f.Name)
			}
			seen[f.Name] = true
			d := adt.FieldDecl{
				Label:   c.label(f.Name),
				Value:   c.expr(f.Value),
				Default: f.Default,
			}
			if f.Contract != nil {
				d.Contract = c.expr(f.Contract)
			}
			out.Decls = append(out.Decls, d)
		}
		return out

	case *ast.List:
		out := &adt.ListLit{Src: x}
		for _, e := range x.Elems {
			out.Elems = append(out.Elems, c.expr(e))
		}
		return out

	case *ast.Prim:
		op := adt.OpForName(x.Name)
		if op == adt.NoOp {
			return c.errf("unknown primitive %q", x.Name)
		}
		out := &adt.Prim{Src: x, Op: op}
		for _, a := range x.Args {
			out.Args = append(out.Args, c.expr(a))
		}
		return out

	case *ast.Merge:
		return &adt.Merge{Src: x, X: c.expr(x.X), Y: c.expr(x.Y)}

	case *ast.Ascribe:
		name := x.SourceName
		if name == "" {
			name = "contract"
		}
		return &adt.Ascribe{
			Src:      x,
			X:        c.expr(x.X),
			Contract: c.expr(x.Contract),
			Label:    adt.NewLabel(name),
		}

	case *ast.PredicateContract:
		return &adt.PredicateLit{Src: x, Name: x.Name, Fn: c.expr(x.Fn)}

	case *ast.RecordContract:
		out := &adt.RecordSchemaLit{Src: x, Sealed: x.Sealed}
		for _, f := range x.Fields {
			d := adt.SchemaFieldDecl{
				Label:    c.label(f.Name),
				Required: f.Required,
			}
			if f.Contract != nil {
				d.Contract = c.expr(f.Contract)
			}
			if f.Default != nil {
				d.Default = c.expr(f.Default)
			}
			out.Fields = append(out.Fields, d)
		}
		return out

	case *ast.EnumContract:
		out := &adt.EnumLit{Src: x}
		for _, t := range x.Tags {
			out.Tags = append(out.Tags, c.label(t))
		}
		return out

	case *ast.FuncContract:
		return &adt.ArrowLit{
			Src:      x,
			Domain:   c.expr(x.Domain),
			Codomain: c.expr(x.Codomain),
		}
	}
	return c.errf("unsupported term %T", x)
}
