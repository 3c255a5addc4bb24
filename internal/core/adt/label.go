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
	"slices"
	"strings"
)

// Polarity reports which party a contract violation blames: the producer of
// the checked value (Positive) or its consumer (Negative). Descending into a
// function contract's domain flips the polarity, since the caller supplies
// the domain value.
type Polarity int8

const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}

func (p Polarity) blamed() string {
	if p == Negative {
		return "caller"
	}
	return "value"
}

// PathDomain and PathCodomain are the path segments recorded when a label
// descends into a function contract.
const (
	PathDomain   = "domain"
	PathCodomain = "codomain"
)

// A BlameLabel carries the provenance of a contract application: the name
// of the ascription site, the current polarity, and the path of schema
// fields and domain/codomain markers descended so far. Labels are
// immutable; Descend and Flip derive new labels.
type BlameLabel struct {
	Source   string
	Polarity Polarity
	Path     []string
}

// NewLabel returns a fresh positive label for the given ascription site.
func NewLabel(source string) *BlameLabel {
	return &BlameLabel{Source: source}
}

// Descend derives a label whose path is extended with segment.
func (l *BlameLabel) Descend(segment string) *BlameLabel {
	return &BlameLabel{
		Source:   l.Source,
		Polarity: l.Polarity,
		Path:     append(slices.Clip(l.Path), segment),
	}
}

// Flip derives a label with the opposite polarity.
func (l *BlameLabel) Flip() *BlameLabel {
	p := Positive
	if l.Polarity == Positive {
		p = Negative
	}
	return &BlameLabel{Source: l.Source, Polarity: p, Path: l.Path}
}

func (l *BlameLabel) String() string {
	var b strings.Builder
	b.WriteString(l.Source)
	b.WriteString(" (")
	b.WriteString(l.Polarity.String())
	b.WriteString(")")
	if len(l.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(l.Path, "."))
	}
	return b.String()
}
