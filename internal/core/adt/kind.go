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

import "strings"

// Kind reports the type of a Value as a bitmask so that sets of kinds can be
// expressed and tested cheaply.
type Kind uint16

const (
	// BottomKind represents an error value.
	BottomKind Kind = 0

	NumKind Kind = 1 << iota
	StringKind
	BoolKind
	EnumKind
	FuncKind
	RecordKind
	ListKind
	ContractKind

	// AtomKind are the kinds for which merging is idempotent on equal
	// values.
	AtomKind = NumKind | StringKind | BoolKind | EnumKind

	// TopKind is the set of all kinds.
	TopKind = AtomKind | FuncKind | RecordKind | ListKind | ContractKind
)

var kindStrs = []struct {
	k Kind
	s string
}{
	{NumKind, "number"},
	{StringKind, "string"},
	{BoolKind, "bool"},
	{EnumKind, "enum"},
	{FuncKind, "function"},
	{RecordKind, "record"},
	{ListKind, "list"},
	{ContractKind, "contract"},
}

func (k Kind) String() string {
	if k == BottomKind {
		return "_|_"
	}
	var parts []string
	for _, e := range kindStrs {
		if k&e.k != 0 {
			parts = append(parts, e.s)
		}
	}
	if len(parts) == 0 {
		return "invalid"
	}
	return strings.Join(parts, "|")
}
