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
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
)

// DefaultWriteBufSize is the default output buffer size.  Large tables are
// written with few syscalls.
const DefaultWriteBufSize = 100 << 20

// WriteOpts defines the behavior of Write and WritePath.
type WriteOpts struct {
	// BufSize is the size of the output buffer in bytes.  Values < 1 select
	// DefaultWriteBufSize.
	BufSize int
}

// Write renders every record of t, in table order, as a headerless
// tab-delimited line.  Text containing a tab or line break cannot be
// represented and is a SerializeError.
func Write(w io.Writer, t *Table, opts WriteOpts) error {
	bufSize := opts.BufSize
	if bufSize < 1 {
		bufSize = DefaultWriteBufSize
	}
	bw := bufio.NewWriterSize(w, bufSize)
	out := tsv.NewWriter(bw)
	nRows := t.NumRows()
	for row := 0; row < nRows; row++ {
		for c := range t.Columns {
			v := t.Columns[c].Values[row]
			switch v.Kind {
			case Null:
				out.WriteString("")
			case Int:
				out.WriteInt64(v.I)
			case Float:
				out.WriteString(formatFloat(v.F))
			case Text:
				if strings.ContainsAny(v.S, "\t\n") {
					return NewError(SerializeError, "write", "", errors.E(errors.Invalid,
						fmt.Sprintf("record %d, column %s: field %q contains a delimiter", row, t.Columns[c].Name, v.S)))
				}
				out.WriteString(v.S)
			default:
				return NewError(SerializeError, "write", "", errors.E(errors.NotSupported,
					fmt.Sprintf("record %d, column %s: unsupported value kind %v", row, t.Columns[c].Name, v.Kind)))
			}
		}
		if err := out.EndLine(); err != nil {
			return NewError(IOError, "write", "", err)
		}
	}
	if err := out.Flush(); err != nil {
		return NewError(IOError, "write", "", err)
	}
	if err := bw.Flush(); err != nil {
		return NewError(IOError, "write", "", err)
	}
	return nil
}

// WritePath is a wrapper for Write that creates (or truncates) path.  Paths
// ending in .gz are gzip-compressed.  If writing fails, the file at path may
// be absent, empty or truncated.
func WritePath(ctx context.Context, path string, t *Table, opts WriteOpts) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return NewError(IOError, "write", path, err)
	}
	defer func() {
		if cerr := out.Close(ctx); cerr != nil && err == nil {
			err = NewError(IOError, "write", path, cerr)
		}
	}()
	w := io.Writer(out.Writer(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		gz := gzip.NewWriter(w)
		defer func() {
			if cerr := gz.Close(); cerr != nil && err == nil {
				err = NewError(IOError, "write", path, cerr)
			}
		}()
		w = gz
	}
	if err = Write(w, t, opts); err != nil {
		return WithPath(err, path)
	}
	return nil
}
