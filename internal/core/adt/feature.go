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

// A Feature is a compact encoding of a label: a field name, binding name, or
// enum tag interned through a StringIndexer.
type Feature uint32

// InvalidLabel is an encoding of an erroneous label.
const InvalidLabel Feature = 0

// A StringIndexer converts strings to and from an index that is unique for a
// given string.
type StringIndexer interface {
	// StringToIndex returns a unique positive index for s.
	//
	// For each pair of strings s and t it must return the same index if and
	// only if s == t.
	StringToIndex(s string) (index int64)

	// IndexToString returns the string s for index such that
	// StringToIndex(s) == index.
	IndexToString(index int64) string
}

// MakeFeature interns s through index.
func MakeFeature(index StringIndexer, s string) Feature {
	return Feature(index.StringToIndex(s)) + 1
}

// StringValue reports the string this feature was interned from.
func (f Feature) StringValue(index StringIndexer) string {
	if f == InvalidLabel {
		return "_"
	}
	return index.IndexToString(int64(f) - 1)
}

// IsValid reports whether f is a valid label.
func (f Feature) IsValid() bool { return f != InvalidLabel }
