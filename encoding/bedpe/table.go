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
	"fmt"
	"strconv"

	"github.com/grailbio/base/errors"
)

// BEDPE column names, in file order.
const (
	Chrom1  = "chrom1"
	Start1  = "start1"
	End1    = "end1"
	Chrom2  = "chrom2"
	Start2  = "start2"
	End2    = "end2"
	Name    = "name"
	Score   = "score"
	Strand1 = "strand1"
	Strand2 = "strand2"
)

// NumFields is the number of columns in a BEDPE record.
const NumFields = 10

// FieldNames returns the BEDPE column names in file order.
func FieldNames() []string {
	return []string{Chrom1, Start1, End1, Chrom2, Start2, End2, Name, Score, Strand1, Strand2}
}

// Column is one field of every record in a Table.
type Column struct {
	Name string
	// Kind is the inferred kind of the column.  Individual values which did not
	// parse as Kind are stored as Text (or Null if empty).
	Kind   Kind
	Values []Value
}

// Table is a column-oriented set of records.  All columns have the same
// length.  Operations which select rows return a new Table; the receiver is
// left unchanged.
type Table struct {
	Columns []Column
}

// NumRows returns the number of records in the table.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// NumColumns returns the number of columns in the table.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// row returns the fields of the idx'th record.
func (t *Table) row(idx int) []Value {
	row := make([]Value, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Columns[c].Values[idx]
	}
	return row
}

// Take returns a new table holding the records at the given indices, in the
// given order.  An index may not be out of range.
func (t *Table) Take(indices []int) *Table {
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for c, col := range t.Columns {
		values := make([]Value, len(indices))
		for i, idx := range indices {
			values[i] = col.Values[idx]
		}
		out.Columns[c] = Column{Name: col.Name, Kind: col.Kind, Values: values}
	}
	return out
}

// newTable creates an empty table with one positionally named column per
// kind.
func newTable(kinds []Kind) *Table {
	t := &Table{Columns: make([]Column, len(kinds))}
	for i, kind := range kinds {
		t.Columns[i] = Column{Name: "column_" + strconv.Itoa(i+1), Kind: kind}
	}
	return t
}

func (t *Table) appendRecord(fields []string) {
	for i := range t.Columns {
		col := &t.Columns[i]
		col.Values = append(col.Values, parseValue(col.Kind, fields[i]))
	}
}

// Bind assigns the BEDPE column names to a freshly loaded table.  It fails
// with a SchemaError unless the table has exactly NumFields columns.
func Bind(t *Table) error {
	if len(t.Columns) != NumFields {
		return NewError(SchemaError, "bind", "",
			errors.E(errors.Invalid, fmt.Sprintf("expected %d columns, found %d", NumFields, len(t.Columns))))
	}
	for i, name := range FieldNames() {
		t.Columns[i].Name = name
	}
	return nil
}
