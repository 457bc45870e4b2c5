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

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// DefaultInferRows is the default number of leading records used for column
// kind inference.
const DefaultInferRows = 5

// maxLineLen bounds the length of a single record.
const maxLineLen = 64 << 20

// LoadOpts defines the behavior of Load and LoadPath.
type LoadOpts struct {
	// InferRows is the number of leading records each column's kind is
	// inferred from.  Values < 1 select DefaultInferRows.
	InferRows int
}

// Load reads a headerless, tab-delimited file into a Table.  The number of
// columns is fixed by the first record; a record with a different number of
// fields is a ParseError.  Fields are split on tabs only: quote characters
// are ordinary text.  Blank lines are skipped, a trailing "\r" is dropped,
// and invalid UTF-8 sequences are replaced with U+FFFD.
//
// Columns are named column_1, column_2, ... until Bind is called.
func Load(r io.Reader, opts LoadOpts) (*Table, error) {
	nInfer := opts.InferRows
	if nInfer < 1 {
		nInfer = DefaultInferRows
	}
	// Scanner does not grow its buffer past the given maximum.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxLineLen)

	var (
		t       *Table
		pending [][]string
		nField  int
	)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(strings.ToValidUTF8(line, "\uFFFD"), "\t")
		if nField == 0 {
			nField = len(fields)
		} else if len(fields) != nField {
			return nil, NewError(ParseError, "load", "", errors.E(errors.Invalid,
				fmt.Sprintf("line %d: expected %d fields, found %d", lineIdx, nField, len(fields))))
		}
		if t == nil {
			pending = append(pending, fields)
			if len(pending) < nInfer {
				continue
			}
			t = inferTable(pending)
			pending = nil
			continue
		}
		t.appendRecord(fields)
	}
	if err := scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, NewError(ParseError, "load", "", errors.E(errors.Invalid,
				fmt.Sprintf("line %d: longer than %d bytes", lineIdx+1, maxLineLen)))
		}
		return nil, NewError(IOError, "load", "", err)
	}
	if t == nil {
		t = inferTable(pending)
	}
	return t, nil
}

func inferTable(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{}
	}
	nCol := len(records[0])
	kinds := make([]Kind, nCol)
	sample := make([]string, len(records))
	for c := 0; c < nCol; c++ {
		for i, rec := range records {
			sample[i] = rec[c]
		}
		kinds[c] = inferKind(sample)
	}
	t := newTable(kinds)
	for _, rec := range records {
		t.appendRecord(rec)
	}
	return t
}

// LoadPath is a wrapper for Load that takes a path instead of an io.Reader.
// Paths ending in .gz are decompressed.
func LoadPath(ctx context.Context, path string, opts LoadOpts) (t *Table, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, NewError(IOError, "load", path, err)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			t, err = nil, NewError(IOError, "load", path, cerr)
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return nil, NewError(IOError, "load", path, err)
		}
		defer gz.Close()
		reader = gz
	}
	if t, err = Load(reader, opts); err != nil {
		return nil, WithPath(err, path)
	}
	return t, nil
}
