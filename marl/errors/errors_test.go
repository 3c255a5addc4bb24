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

package errors

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

func TestNewAt(t *testing.T) {
	err := NewAt("Deployment", []string{"spec", "replicas"}, "value %d too small", 0)
	qt.Assert(t, qt.Equals(err.Error(), "value 0 too small"))
	qt.Assert(t, qt.Equals(err.Source(), "Deployment"))
	qt.Assert(t, qt.DeepEquals(err.Path(), []string{"spec", "replicas"}))
}

func TestWrapf(t *testing.T) {
	base := New("boom")
	err := Wrapf(base, "evaluating field %q", "a")
	qt.Assert(t, qt.Equals(err.Error(), `evaluating field "a": boom`))
	qt.Assert(t, qt.Equals(Unwrap(err), base))
	qt.Assert(t, qt.IsTrue(Is(err, base)))
}

func TestPromote(t *testing.T) {
	qt.Assert(t, qt.IsNil(Promote(nil, "msg")))

	e := Newf("already an Error")
	qt.Assert(t, qt.Equals(Promote(e, "msg"), e))

	p := Promote(fmt.Errorf("plain"), "reading input")
	qt.Assert(t, qt.Equals(p.Error(), "reading input: plain"))
}

func TestAppend(t *testing.T) {
	a := Newf("a")
	b := Newf("b")

	qt.Assert(t, qt.Equals[Error](Append(nil, a), a))

	ab := Append(a, b)
	qt.Assert(t, qt.CmpEquals(Errors(ab), []Error{a, b}, cmp.AllowUnexported(marlError{})))

	abb := Append(ab, b)
	qt.Assert(t, qt.Equals(len(Errors(abb)), 3))
}

func TestListSort(t *testing.T) {
	l := List{
		NewAt("", []string{"b"}, "second"),
		NewAt("", []string{"a", "x"}, "third"),
		NewAt("", []string{"a"}, "first"),
	}
	l.Sort()
	qt.Assert(t, qt.DeepEquals(l[0].Path(), []string{"a"}))
	qt.Assert(t, qt.DeepEquals(l[1].Path(), []string{"a", "x"}))
	qt.Assert(t, qt.DeepEquals(l[2].Path(), []string{"b"}))
}

func TestListError(t *testing.T) {
	var l List
	qt.Assert(t, qt.Equals(l.Error(), "no errors"))
	qt.Assert(t, qt.IsNil(l.Err()))

	l.AddNewf("first")
	qt.Assert(t, qt.Equals(l.Error(), "first"))

	l.AddNewf("second")
	qt.Assert(t, qt.Equals(l.Error(), "first (and 1 more errors)"))
	qt.Assert(t, qt.IsNotNil(l.Err()))
}

func TestDetails(t *testing.T) {
	var l List
	l.Add(NewAt("Service", []string{"spec", "port"}, "out of range"))
	l.Add(Newf("plain message"))

	want := "spec.port: out of range (from Service)\nplain message\n"
	qt.Assert(t, qt.Equals(Details(l), want))
}
