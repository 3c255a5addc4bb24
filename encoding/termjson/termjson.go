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

// Package termjson decodes marl terms from a JSON encoding. It is the term
// source used by the command line in the absence of a surface parser: each
// term is an object with exactly one tag field naming the term variant.
//
// For example, `let x = 1 in add(x, 2)` is encoded as
//
//	{"let": {
//	  "bindings": [{"name": "x", "value": {"num": "1"}}],
//	  "body": {"prim": {"name": "add", "args": [{"var": "x"}, {"num": "2"}]}}}}
package termjson

import (
	"encoding/json"
	"fmt"

	"github.com/marl-lang/marl/marl/ast"
)

// Decode parses a single JSON-encoded term.
func Decode(data []byte) (ast.Expr, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("termjson: %w", err)
	}
	return n.expr()
}

type node struct {
	Num    *json.Number `json:"num,omitempty"`
	Str    *string      `json:"str,omitempty"`
	Bool   *bool        `json:"bool,omitempty"`
	Enum   *string      `json:"enum,omitempty"`
	Var    *string      `json:"var,omitempty"`
	Lam    *lamNode     `json:"lam,omitempty"`
	App    *appNode     `json:"app,omitempty"`
	Let    *letNode     `json:"let,omitempty"`
	If     *ifNode      `json:"if,omitempty"`
	Record *recordNode  `json:"record,omitempty"`
	List   []node       `json:"list,omitempty"`
	Prim   *primNode    `json:"prim,omitempty"`
	Merge  *mergeNode   `json:"merge,omitempty"`

	Ascribe   *ascribeNode   `json:"ascribe,omitempty"`
	Predicate *predicateNode `json:"predicate,omitempty"`
	Schema    *schemaNode    `json:"schema,omitempty"`
	EnumOf    []string       `json:"enumOf,omitempty"`
	Arrow     *arrowNode     `json:"arrow,omitempty"`
}

type lamNode struct {
	Param string `json:"param"`
	Body  node   `json:"body"`
}

type appNode struct {
	Fn   node   `json:"fn"`
	Args []node `json:"args"`
}

type letNode struct {
	Bindings []bindingNode `json:"bindings"`
	Body     node          `json:"body"`
}

type bindingNode struct {
	Name  string `json:"name"`
	Value node   `json:"value"`
}

type ifNode struct {
	Cond node `json:"cond"`
	Then node `json:"then"`
	Else node `json:"else"`
}

type recordNode struct {
	Fields []fieldNode `json:"fields"`
}

type fieldNode struct {
	Name     string `json:"name"`
	Value    node   `json:"value"`
	Contract *node  `json:"contract,omitempty"`
	Default  bool   `json:"default,omitempty"`
}

type primNode struct {
	Name string `json:"name"`
	Args []node `json:"args"`
}

type mergeNode struct {
	X node `json:"x"`
	Y node `json:"y"`
}

type ascribeNode struct {
	Value    node   `json:"value"`
	Contract node   `json:"contract"`
	Name     string `json:"name,omitempty"`
}

type predicateNode struct {
	Name string `json:"name,omitempty"`
	Fn   node   `json:"fn"`
}

type schemaNode struct {
	Fields []schemaFieldNode `json:"fields"`
	Sealed bool              `json:"sealed,omitempty"`
}

type schemaFieldNode struct {
	Name     string `json:"name"`
	Contract *node  `json:"contract,omitempty"`
	Default  *node  `json:"default,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type arrowNode struct {
	Domain   node `json:"domain"`
	Codomain node `json:"codomain"`
}

func (n *node) expr() (ast.Expr, error) {
	switch {
	case n.Num != nil:
		return &ast.Num{Text: n.Num.String()}, nil

	case n.Str != nil:
		return &ast.String{Str: *n.Str}, nil

	case n.Bool != nil:
		return &ast.Bool{B: *n.Bool}, nil

	case n.Enum != nil:
		return &ast.EnumTag{Tag: *n.Enum}, nil

	case n.Var != nil:
		return &ast.Ident{Name: *n.Var}, nil

	case n.Lam != nil:
		body, err := n.Lam.Body.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Param: n.Lam.Param, Body: body}, nil

	case n.App != nil:
		fn, err := n.App.Fn.expr()
		if err != nil {
			return nil, err
		}
		args, err := exprs(n.App.Args)
		if err != nil {
			return nil, err
		}
		return ast.Apply(fn, args...), nil

	case n.Let != nil:
		out := &ast.Let{}
		for _, b := range n.Let.Bindings {
			v, err := b.Value.expr()
			if err != nil {
				return nil, err
			}
			out.Bindings = append(out.Bindings, ast.LetBinding{Name: b.Name, Value: v})
		}
		body, err := n.Let.Body.expr()
		if err != nil {
			return nil, err
		}
		out.Body = body
		return out, nil

	case n.If != nil:
		cond, err := n.If.Cond.expr()
		if err != nil {
			return nil, err
		}
		then, err := n.If.Then.expr()
		if err != nil {
			return nil, err
		}
		els, err := n.If.Else.expr()
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Else: els}, nil

	case n.Record != nil:
		out := &ast.Record{}
		for _, f := range n.Record.Fields {
			v, err := f.Value.expr()
			if err != nil {
				return nil, err
			}
			field := ast.Field{Name: f.Name, Value: v, Default: f.Default}
			if f.Contract != nil {
				c, err := f.Contract.expr()
				if err != nil {
					return nil, err
				}
				field.Contract = c
			}
			out.Fields = append(out.Fields, field)
		}
		return out, nil

	case n.List != nil:
		elems, err := exprs(n.List)
		if err != nil {
			return nil, err
		}
		return &ast.List{Elems: elems}, nil

	case n.Prim != nil:
		args, err := exprs(n.Prim.Args)
		if err != nil {
			return nil, err
		}
		return &ast.Prim{Name: n.Prim.Name, Args: args}, nil

	case n.Merge != nil:
		x, err := n.Merge.X.expr()
		if err != nil {
			return nil, err
		}
		y, err := n.Merge.Y.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Merge{X: x, Y: y}, nil

	case n.Ascribe != nil:
		x, err := n.Ascribe.Value.expr()
		if err != nil {
			return nil, err
		}
		c, err := n.Ascribe.Contract.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Ascribe{X: x, Contract: c, SourceName: n.Ascribe.Name}, nil

	case n.Predicate != nil:
		fn, err := n.Predicate.Fn.expr()
		if err != nil {
			return nil, err
		}
		return &ast.PredicateContract{Name: n.Predicate.Name, Fn: fn}, nil

	case n.Schema != nil:
		out := &ast.RecordContract{Sealed: n.Schema.Sealed}
		for _, f := range n.Schema.Fields {
			fc := ast.FieldContract{Name: f.Name, Required: f.Required}
			if f.Contract != nil {
				c, err := f.Contract.expr()
				if err != nil {
					return nil, err
				}
				fc.Contract = c
			}
			if f.Default != nil {
				d, err := f.Default.expr()
				if err != nil {
					return nil, err
				}
				fc.Default = d
			}
			out.Fields = append(out.Fields, fc)
		}
		return out, nil

	case n.EnumOf != nil:
		return &ast.EnumContract{Tags: n.EnumOf}, nil

	case n.Arrow != nil:
		dom, err := n.Arrow.Domain.expr()
		if err != nil {
			return nil, err
		}
		cod, err := n.Arrow.Codomain.expr()
		if err != nil {
			return nil, err
		}
		return &ast.FuncContract{Domain: dom, Codomain: cod}, nil
	}
	return nil, fmt.Errorf("termjson: term with no recognized tag")
}

func exprs(ns []node) ([]ast.Expr, error) {
	out := make([]ast.Expr, len(ns))
	for i := range ns {
		e, err := ns[i].expr()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
