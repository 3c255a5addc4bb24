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

// Package errors defines shared types for handling Marl errors.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// New is a convenience wrapper for errors.New in the core library.
func New(msg string) error {
	return errors.New(msg)
}

// Unwrap reports the result of calling the Unwrap method on err, if err
// implements it, and nil otherwise.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches the type to which
// target points.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Error is the common error type of the marl packages. In addition to the
// message it carries the name of the source that produced the error and a
// path into the value where the error occurred.
type Error interface {
	error

	// Source reports the name of the source element, such as a contract
	// site, responsible for the error. It may be empty.
	Source() string

	// Path reports the path into the value at which the error occurred.
	// It may be nil.
	Path() []string

	// Msg returns the unformatted error message and its arguments.
	Msg() (format string, args []interface{})
}

// A marlError is the default implementation of Error.
type marlError struct {
	source string
	path   []string
	format string
	args   []interface{}

	// The underlying error that triggered this one, if any.
	err error
}

// Newf creates an Error with the given message.
func Newf(format string, args ...interface{}) Error {
	return &marlError{format: format, args: args}
}

// Wrapf creates an Error around err annotated with the given message.
func Wrapf(err error, format string, args ...interface{}) Error {
	return &marlError{format: format, args: args, err: err}
}

// NewAt creates an Error with the given source name, path, and message.
func NewAt(source string, path []string, format string, args ...interface{}) Error {
	return &marlError{
		source: source,
		path:   path,
		format: format,
		args:   args,
	}
}

// Promote converts a regular Go error to an Error if it isn't one already,
// reusing msg as its message if err carries none of its own.
func Promote(err error, msg string) Error {
	switch x := err.(type) {
	case nil:
		return nil
	case Error:
		return x
	default:
		return &marlError{format: "%s", args: []interface{}{msg}, err: err}
	}
}

func (e *marlError) Source() string { return e.source }

func (e *marlError) Path() []string { return e.path }

func (e *marlError) Msg() (string, []interface{}) { return e.format, e.args }

func (e *marlError) Unwrap() error { return e.err }

func (e *marlError) Error() string {
	msg := fmt.Sprintf(e.format, e.args...)
	if e.err != nil {
		if msg == "" {
			return e.err.Error()
		}
		return msg + ": " + e.err.Error()
	}
	return msg
}

// Append combines two errors, flattening Lists as necessary.
func Append(a, b Error) Error {
	switch x := a.(type) {
	case nil:
		return b
	case List:
		return appendToList(x, b)
	}
	// Preserve order of errors.
	list := appendToList(nil, a)
	return appendToList(list, b)
}

func appendToList(list List, err Error) List {
	switch x := err.(type) {
	case nil:
		return list
	case List:
		if list == nil {
			return x
		}
		return append(list, x...)
	default:
		return append(list, err)
	}
}

// Errors reports the individual errors recorded in err, which is a single
// element unless err is a List.
func Errors(err error) []Error {
	if err == nil {
		return nil
	}
	if l, ok := err.(List); ok {
		return l
	}
	return []Error{Promote(err, "")}
}

// A List is a collection of Errors, itself an Error.
type List []Error

// AddNewf adds an Error with the given message to the list.
func (l *List) AddNewf(format string, args ...interface{}) {
	*l = append(*l, &marlError{format: format, args: args})
}

// Add adds an Error to the list.
func (l *List) Add(err Error) {
	*l = appendToList(*l, err)
}

// Sort sorts the List by path so that errors appear in a deterministic
// order. Entries with identical paths keep their relative order.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return pathLess(l[i].Path(), l[j].Path())
	})
}

func pathLess(a, b []string) bool {
	for i, s := range a {
		if i >= len(b) {
			return false
		}
		if s != b[i] {
			return s < b[i]
		}
	}
	return len(a) < len(b)
}

func (l List) Source() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Source()
}

func (l List) Path() []string {
	if len(l) == 0 {
		return nil
	}
	return l[0].Path()
}

func (l List) Msg() (string, []interface{}) {
	if len(l) == 0 {
		return "", nil
	}
	return l[0].Msg()
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
	}
}

// Err returns an error equivalent to this error list. If the list is empty,
// Err returns nil.
func (l List) Err() Error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Print writes the given error to w, one line per individual error, with
// path and source annotations where present.
func Print(w io.Writer, err error) {
	for _, e := range Errors(err) {
		printError(w, e)
	}
}

// Details returns the messages of Print as a string.
func Details(err error) string {
	var b strings.Builder
	Print(&b, err)
	return b.String()
}

func printError(w io.Writer, err Error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if path := err.Path(); len(path) > 0 {
		msg = strings.Join(path, ".") + ": " + msg
	}
	if src := err.Source(); src != "" {
		msg += fmt.Sprintf(" (from %s)", src)
	}
	fmt.Fprintln(w, msg)
}
