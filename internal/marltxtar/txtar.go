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

// Package marltxtar runs tests defined as txtar archives: each archive
// holds input files and an out/<name> golden file that a test run either
// compares against or, when updating, rewrites.
package marltxtar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/diff"
	"golang.org/x/tools/txtar"
)

// A TxTarTest processes all txtar archives rooted in a given directory.
type TxTarTest struct {
	// Root is the directory holding the .txtar files.
	Root string

	// Name is a unique name for this test. The golden file is the
	// out/<Name> file within each archive.
	Name string

	// Update rewrites the golden file instead of comparing against it.
	Update bool

	// Skip maps archive names to a skip message.
	Skip map[string]string
}

// A Test is a single test based on a txtar archive. Output written to it is
// compared against the archive's golden file.
type Test struct {
	*testing.T

	Archive *txtar.Archive

	buf bytes.Buffer
}

// ReadFile reports the contents of the named file in the archive.
func (t *Test) ReadFile(name string) ([]byte, bool) {
	for _, f := range t.Archive.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

func (t *Test) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// WriteErrors writes err to the test output.
func (t *Test) WriteErrors(err error) {
	fmt.Fprintf(&t.buf, "Errors:\n%v\n", err)
}

// Run runs f for each archive under x.Root.
func (x *TxTarTest) Run(t *testing.T, f func(tc *Test)) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(x.Root, "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files in %s", x.Root)
	}

	for _, file := range files {
		file := file
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			if msg, ok := x.Skip[name]; ok {
				t.Skip(msg)
			}
			data, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			a := txtar.Parse(data)
			tc := &Test{T: t, Archive: a}

			f(tc)

			golden := "out/" + x.Name
			got := tc.buf.Bytes()
			for i, gf := range a.Files {
				if gf.Name != golden {
					continue
				}
				if bytes.Equal(gf.Data, got) {
					return
				}
				if x.Update {
					a.Files[i].Data = got
					if err := os.WriteFile(file, txtar.Format(a), 0o666); err != nil {
						t.Fatal(err)
					}
					return
				}
				t.Errorf("result differs from golden:\n%s", diff.Diff(golden, gf.Data, "got", got))
				return
			}

			// No golden file yet.
			if x.Update {
				a.Files = append(a.Files, txtar.File{Name: golden, Data: got})
				if err := os.WriteFile(file, txtar.Format(a), 0o666); err != nil {
					t.Fatal(err)
				}
				return
			}
			t.Errorf("missing golden file %s; output:\n%s", golden, got)
		})
	}
}
