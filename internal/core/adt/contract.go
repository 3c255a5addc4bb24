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

import "slices"

// Check attaches a contract to a thunk. The returned thunk, when forced,
// yields a value known to satisfy the contract or fails with a blame on the
// given label. No checking happens until the thunk is forced, so contracts
// preserve laziness end-to-end: a record schema forces only the record's
// shape, and each field check runs when a consumer forces that field.
//
// Checks never mutate the checked value. Repeated ascriptions compose:
// checking an already checked value wraps it again.
func (c *OpContext) Check(contract Value, l *BlameLabel, t *Thunk) (*Thunk, *Bottom) {
	if contract.Kind()&(ContractKind|FuncKind) == 0 {
		return nil, c.NewErrf(EvalError,
			"cannot use %s value as a contract", contract.Kind())
	}
	c.Stats.Thunks++
	return &Thunk{check: &checkStep{contract: contract, label: l, inner: t}}, nil
}

func (c *OpContext) runCheck(s *checkStep) (Value, *Bottom) {
	switch contract := s.contract.(type) {
	case *Predicate:
		return c.checkPredicate(contract.Name, contract.Fn, s.label, s.inner)

	case *Closure, *Builtin, *ContractProxy:
		// Escape hatch: an arbitrary function value is checked as a
		// predicate without engine specialization.
		return c.checkPredicate("", s.contract, s.label, s.inner)

	case *Enum:
		v, b := c.Force(s.inner)
		if b != nil {
			return nil, b
		}
		tag, ok := v.(*EnumTag)
		if !ok {
			return nil, c.NewBlame(s.label, "expected enum tag, found %s", v.Kind())
		}
		if !contract.Has(tag.Tag) {
			return nil, c.NewBlame(s.label, "tag '%s not allowed",
				tag.Tag.StringValue(c))
		}
		return v, nil

	case *RecordSchema:
		return c.checkSchema(contract, s.label, s.inner)

	case *Arrow:
		// Force only as far as confirming a function, then wrap it in a
		// proxy that re-checks every future call.
		v, b := c.Force(s.inner)
		if b != nil {
			return nil, b
		}
		if v.Kind() != FuncKind {
			return nil, c.NewBlame(s.label, "expected function, found %s", v.Kind())
		}
		return &ContractProxy{
			Fn:       v,
			Domain:   contract.Domain,
			Codomain: contract.Codomain,
			Label:    s.label,
		}, nil
	}
	return nil, c.NewErrf(EvalError, "invalid contract %T", s.contract)
}

// checkPredicate forces the value and applies the boolean function. This is
// the only contract shape that must force its argument: a predicate cannot
// be checked without inspecting the value.
func (c *OpContext) checkPredicate(name string, fn Value, l *BlameLabel, inner *Thunk) (Value, *Bottom) {
	v, b := c.Force(inner)
	if b != nil {
		return nil, b
	}
	r, b := c.Apply(fn, c.FromValue(v))
	if b != nil {
		return nil, b
	}
	rb, ok := r.(*Bool)
	if !ok {
		return nil, c.NewBlame(l, "predicate returned %s, not bool", r.Kind())
	}
	if !rb.B {
		if name != "" {
			return nil, c.NewBlame(l, "value %s does not satisfy %s", c.Str(v), name)
		}
		return nil, c.NewBlame(l, "value %s rejected by predicate", c.Str(v))
	}
	return v, nil
}

// checkSchema forces the record's shape only. Declared fields that are
// present are re-wrapped with their sub-contract under an extended label;
// absent fields fall back to the schema's default, evaluated with the
// record's own fields in scope; absent required fields without a default
// blame immediately. A sealed schema rejects undeclared fields.
//
// The result is a new record whose thunks reference the original's, so the
// checked record is never mutated.
func (c *OpContext) checkSchema(schema *RecordSchema, l *BlameLabel, inner *Thunk) (Value, *Bottom) {
	v, b := c.Force(inner)
	if b != nil {
		return nil, b
	}
	r, ok := v.(*Record)
	if !ok {
		return nil, c.NewBlame(l, "expected record, found %s", v.Kind())
	}

	frame := NewFrame(r.Env)
	out := &Record{Src: r.Src, Env: frame}

	for _, f := range r.Fields {
		sf := schema.Lookup(f.Label)
		if sf == nil {
			if schema.Sealed {
				return nil, c.NewBlame(l.Descend(f.Label.StringValue(c)),
					"field not allowed by sealed schema")
			}
			out.Fields = append(out.Fields, f)
			frame.Bind(f.Label, f.Value)
			continue
		}
		t := f.Value
		contracts := f.Contracts
		if sf.Contract != nil {
			var b *Bottom
			t, b = c.Check(sf.Contract, l.Descend(f.Label.StringValue(c)), t)
			if b != nil {
				return nil, b
			}
			contracts = append(slices.Clip(contracts), sf.Contract)
		}
		out.Fields = append(out.Fields, &Field{
			Label:     f.Label,
			Value:     t,
			Contracts: contracts,
			Default:   f.Default,
		})
		frame.Bind(f.Label, t)
	}

	for i := range schema.Fields {
		sf := &schema.Fields[i]
		if r.Lookup(sf.Label) != nil {
			continue
		}
		fl := l.Descend(sf.Label.StringValue(c))
		switch {
		case sf.Default != nil:
			t := c.Bind(sf.Default, frame)
			var contracts []Value
			if sf.Contract != nil {
				var b *Bottom
				t, b = c.Check(sf.Contract, fl, t)
				if b != nil {
					return nil, b
				}
				contracts = []Value{sf.Contract}
			}
			out.Fields = append(out.Fields, &Field{
				Label:     sf.Label,
				Value:     t,
				Contracts: contracts,
				Default:   true,
			})
			frame.Bind(sf.Label, t)

		case sf.Required:
			return nil, c.NewBlame(fl, "missing required field")
		}
	}
	return out, nil
}
