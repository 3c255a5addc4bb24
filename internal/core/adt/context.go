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

package adt

import (
	"fmt"
	"slices"
)

// Runtime is the interface against which the evaluator operates. It is
// implemented by internal/core/runtime.Runtime.
type Runtime interface {
	StringIndexer
}

// Stats counts evaluator work. Memoization makes Forces an upper bound on
// the number of computations actually run.
type Stats struct {
	Thunks int64
	Forces int64
}

func (s Stats) String() string {
	return fmt.Sprintf("thunks: %d, forces: %d", s.Thunks, s.Forces)
}

// An OpContext carries the state for a single evaluation. The evaluator is
// single-threaded: an OpContext must not be used concurrently.
type OpContext struct {
	Runtime

	Stats Stats
}

// New creates an OpContext for the given runtime.
func New(r Runtime) *OpContext {
	return &OpContext{Runtime: r}
}

// Eval reduces x to a value in env. It is total over well-formed terms
// modulo non-termination and the error taxonomy of this package.
func (c *OpContext) Eval(env *Environment, x Expr) (Value, *Bottom) {
	switch x := x.(type) {
	case *Num, *String, *Bool, *EnumTag:
		return x.(Value), nil

	case *Var:
		t := env.Lookup(x.Name)
		if t == nil {
			return nil, c.NewErrf(EvalError, "reference %q not found",
				x.Name.StringValue(c))
		}
		return c.Force(t)

	case *Lam:
		return &Closure{Src: x.Src, Param: x.Param, Body: x.Body, Env: env}, nil

	case *App:
		fn, b := c.Eval(env, x.Fn)
		if b != nil {
			return nil, b
		}
		return c.Apply(fn, c.Bind(x.Arg, env))

	case *Let:
		frame := NewFrame(env)
		for _, l := range x.Bindings {
			frame.Bind(l.Label, c.Bind(l.Value, frame))
		}
		return c.Eval(frame, x.Body)

	case *If:
		cond, b := c.Eval(env, x.Cond)
		if b != nil {
			return nil, b
		}
		cb, ok := cond.(*Bool)
		if !ok {
			return nil, c.NewErrf(PrimitiveError,
				"condition must be bool, found %s", cond.Kind())
		}
		if cb.B {
			return c.Eval(env, x.Then)
		}
		return c.Eval(env, x.Else)

	case *RecordLit:
		return c.evalRecord(env, x)

	case *ListLit:
		elems := make([]*Thunk, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = c.Bind(e, env)
		}
		return &List{Src: x.Src, Elems: elems}, nil

	case *Prim:
		return c.evalPrim(env, x)

	case *Ascribe:
		contract, b := c.Eval(env, x.Contract)
		if b != nil {
			return nil, b
		}
		t, b := c.Check(contract, x.Label, c.Bind(x.X, env))
		if b != nil {
			return nil, b
		}
		return c.Force(t)

	case *Merge:
		return c.evalMerge(env, x)

	case *PredicateLit:
		fn, b := c.Eval(env, x.Fn)
		if b != nil {
			return nil, b
		}
		if fn.Kind()&FuncKind == 0 {
			return nil, c.NewErrf(EvalError,
				"predicate contract needs a function, found %s", fn.Kind())
		}
		return &Predicate{Name: x.Name, Fn: fn}, nil

	case *RecordSchemaLit:
		fields := make([]SchemaField, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = SchemaField{
				Label:    f.Label,
				Default:  f.Default,
				Required: f.Required,
			}
			if f.Contract != nil {
				sub, b := c.Eval(env, f.Contract)
				if b != nil {
					return nil, b
				}
				fields[i].Contract = sub
			}
		}
		return &RecordSchema{Fields: fields, Sealed: x.Sealed}, nil

	case *EnumLit:
		return &Enum{Tags: x.Tags}, nil

	case *ArrowLit:
		dom, b := c.Eval(env, x.Domain)
		if b != nil {
			return nil, b
		}
		cod, b := c.Eval(env, x.Codomain)
		if b != nil {
			return nil, b
		}
		return &Arrow{Domain: dom, Codomain: cod}, nil
	}
	return nil, c.NewErrf(EvalError, "unknown term %T", x)
}

func (c *OpContext) evalRecord(env *Environment, x *RecordLit) (Value, *Bottom) {
	frame := NewFrame(env)
	rec := &Record{Src: x.Src, Env: frame}
	for _, d := range x.Decls {
		if rec.Lookup(d.Label) != nil {
			return nil, c.NewErrf(EvalError, "duplicate field %q",
				d.Label.StringValue(c))
		}
		f := &Field{Label: d.Label, Default: d.Default}
		t := c.Bind(d.Value, frame)
		if d.Contract != nil {
			contract, b := c.Eval(frame, d.Contract)
			if b != nil {
				return nil, b
			}
			t, b = c.Check(contract, NewLabel(d.Label.StringValue(c)), t)
			if b != nil {
				return nil, b
			}
			f.Contracts = []Value{contract}
		}
		f.Value = t
		rec.Fields = append(rec.Fields, f)
		frame.Bind(d.Label, t)
	}
	return rec, nil
}

func (c *OpContext) evalMerge(env *Environment, x *Merge) (Value, *Bottom) {
	vx, b := c.Eval(env, x.X)
	if b != nil {
		return nil, b
	}
	vy, b := c.Eval(env, x.Y)
	if b != nil {
		return nil, b
	}
	rx, okx := vx.(*Record)
	ry, oky := vy.(*Record)
	switch {
	case okx && oky:
		return c.MergeRecords(rx, ry, nil)
	case vx.Kind()&AtomKind != 0 && vy.Kind()&AtomKind != 0:
		if Equal(vx, vy) {
			return vx, nil
		}
		return nil, c.NewErrf(MergeTypeMismatchError,
			"cannot merge distinct values %s and %s", c.Str(vx), c.Str(vy))
	}
	return nil, c.NewErrf(MergeTypeMismatchError,
		"cannot merge %s with %s", vx.Kind(), vy.Kind())
}

// Apply applies fn to the given, unforced argument thunk.
func (c *OpContext) Apply(fn Value, arg *Thunk) (Value, *Bottom) {
	switch fn := fn.(type) {
	case *Closure:
		frame := NewFrame(fn.Env)
		frame.Bind(fn.Param, arg)
		return c.Eval(frame, fn.Body)

	case *Builtin:
		// Builtins are strict in every argument.
		v, b := c.Force(arg)
		if b != nil {
			return nil, b
		}
		bound := append(slices.Clip(fn.bound), v)
		if len(bound) < fn.Arity {
			partial := *fn
			partial.bound = bound
			return &partial, nil
		}
		return fn.Fn(c, bound)

	case *ContractProxy:
		// Callers supply the domain value: a domain violation blames the
		// caller, so the polarity flips.
		dl := fn.Label.Descend(PathDomain).Flip()
		checked, b := c.Check(fn.Domain, dl, arg)
		if b != nil {
			return nil, b
		}
		res, b := c.Apply(fn.Fn, checked)
		if b != nil {
			return nil, b
		}
		out, b := c.Check(fn.Codomain, fn.Label.Descend(PathCodomain), c.FromValue(res))
		if b != nil {
			return nil, b
		}
		return c.Force(out)
	}
	return nil, c.NewErrf(EvalError, "cannot call value of type %s", fn.Kind())
}

// Str renders a short display form of v for error messages.
func (c *OpContext) Str(v Value) string {
	switch v := v.(type) {
	case *Num:
		return v.X.String()
	case *String:
		return fmt.Sprintf("%q", v.Str)
	case *Bool:
		return fmt.Sprintf("%t", v.B)
	case *EnumTag:
		return "'" + v.Tag.StringValue(c)
	case *Record:
		return "{...}"
	case *List:
		return "[...]"
	case *Bottom:
		return "_|_"
	}
	return "<" + v.Kind().String() + ">"
}
