// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package bedpe

import "strings"

// ErrorKind classifies a failure of one of the load/transform/write stages.
type ErrorKind int

const (
	// UnknownError is returned by KindOf for errors not produced by this
	// package.
	UnknownError ErrorKind = iota
	// IOError means a path could not be opened, read, created or written.
	IOError
	// ParseError means a record was malformed, e.g. had the wrong number of
	// fields.
	ParseError
	// SchemaError means the table did not have the expected columns.
	SchemaError
	// SampleError means a sampling request could not be satisfied.
	SampleError
	// SerializeError means a value could not be rendered as a BEDPE field.
	SerializeError
)

func (k ErrorKind) String() string {
	switch k {
	case IOError:
		return "io error"
	case ParseError:
		return "parse error"
	case SchemaError:
		return "schema error"
	case SampleError:
		return "sample error"
	case SerializeError:
		return "serialize error"
	}
	return "unknown error"
}

// Error is the error type returned by the stages of a downsampling run.
type Error struct {
	Kind ErrorKind
	// Op names the failing stage, e.g. "load" or "sample".
	Op string
	// Path is the file being read or written, if any.
	Path string
	Err  error
}

// NewError creates an *Error.
func NewError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind of err, or UnknownError if err is not an
// *Error.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return UnknownError
}

// WithPath records path on err if it is an *Error without one, and returns
// err.
func WithPath(err error, path string) error {
	if e, ok := err.(*Error); ok && e.Path == "" {
		e.Path = path
	}
	return err
}
