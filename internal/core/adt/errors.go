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

// This file contains error encodings.
//
// *Bottom:
//    - an adt.Value
//    - marks the error code used for control flow
//    - does NOT implement error
//
// errors.Error:
//    - the marl default error
//    - implements error
//    - carries source and path details
//    - supports multiple errors

import (
	"github.com/marl-lang/marl/marl/ast"
	"github.com/marl-lang/marl/marl/errors"
)

// ErrorCode indicates the type of error. All errors are terminal to the
// surrounding evaluation: nothing is caught or retried inside the core.
type ErrorCode int8

const (
	// An EvalError is a fatal evaluation error, such as an unbound
	// identifier or an application of a non-function.
	EvalError ErrorCode = iota

	// InfiniteLoopError reports a thunk that was re-entered while already
	// being forced, such as `let x = x in x`.
	InfiniteLoopError

	// BlameError reports a contract violation. The Bottom carries the full
	// blame label.
	BlameError

	// MergeConflictError reports two non-default, non-mergeable values for
	// the same field.
	MergeConflictError

	// MergeTypeMismatchError reports a merge of operands that are neither
	// both records nor identical atoms.
	MergeTypeMismatchError

	// PrimitiveError reports a primitive operation applied to a value of
	// the wrong type.
	PrimitiveError
)

func (c ErrorCode) String() string {
	switch c {
	case EvalError:
		return "eval"
	case InfiniteLoopError:
		return "infinite loop"
	case BlameError:
		return "blame"
	case MergeConflictError:
		return "merge conflict"
	case MergeTypeMismatchError:
		return "merge type mismatch"
	case PrimitiveError:
		return "primitive"
	}
	return "unknown"
}

// Bottom represents an error value.
type Bottom struct {
	Src  ast.Node
	Code ErrorCode
	Err  errors.Error

	// Label is set for BlameError and carries the violated contract's
	// provenance, polarity, and path.
	Label *BlameLabel

	// Path is set for MergeConflictError and names the conflicting field.
	Path []string
}

func (x *Bottom) Source() ast.Node { return x.Src }
func (x *Bottom) Kind() Kind       { return BottomKind }

// NewErrf creates a Bottom with the given code and message.
func (c *OpContext) NewErrf(code ErrorCode, format string, args ...interface{}) *Bottom {
	return &Bottom{Code: code, Err: errors.Newf(format, args...)}
}

// NewInfiniteLoop reports a re-entrant force.
func (c *OpContext) NewInfiniteLoop() *Bottom {
	return &Bottom{
		Code: InfiniteLoopError,
		Err:  errors.Newf("infinite loop: value depends on itself"),
	}
}

// NewBlame reports a contract violation at the given label.
func (c *OpContext) NewBlame(l *BlameLabel, format string, args ...interface{}) *Bottom {
	return &Bottom{
		Code:  BlameError,
		Label: l,
		Err: errors.NewAt(l.Source, l.Path,
			"contract broken by the %s: "+format,
			append([]interface{}{l.Polarity.blamed()}, args...)...),
	}
}

// NewMergeConflict reports conflicting definitions of the field at path.
func (c *OpContext) NewMergeConflict(path []string, x, y Value) *Bottom {
	return &Bottom{
		Code: MergeConflictError,
		Path: path,
		Err: errors.NewAt("", path, "conflicting values %s and %s",
			c.Str(x), c.Str(y)),
	}
}
