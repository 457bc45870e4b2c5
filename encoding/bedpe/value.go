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
	"math"
	"strconv"
	"strings"
)

// Kind is the scalar type of a Value or Column.
type Kind uint8

const (
	// Null is an empty field.
	Null Kind = iota
	// Int is a 64-bit signed integer.
	Int
	// Float is a 64-bit float.
	Float
	// Text is an arbitrary (valid UTF-8) string.
	Text
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single BEDPE field.  Only the member matching Kind is meaningful.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	S    string
}

// IntValue returns an Int value.
func IntValue(v int64) Value { return Value{Kind: Int, I: v} }

// FloatValue returns a Float value.
func FloatValue(v float64) Value { return Value{Kind: Float, F: v} }

// TextValue returns a Text value.
func TextValue(s string) Value { return Value{Kind: Text, S: s} }

func (v Value) numeric() bool {
	return v.Kind == Int || v.Kind == Float
}

func (v Value) float() float64 {
	if v.Kind == Int {
		return float64(v.I)
	}
	return v.F
}

// String renders the value the way it is written to a BEDPE file.
func (v Value) String() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.I, 10)
	case Float:
		return formatFloat(v.F)
	case Text:
		return v.S
	}
	return ""
}

// Compare returns -1, 0 or 1 depending on whether v sorts before, with, or
// after o.  Nulls sort first, then numbers by value, then everything else by
// text.
func (v Value) Compare(o Value) int {
	rank := func(x Value) int {
		switch {
		case x.Kind == Null:
			return 0
		case x.numeric():
			return 1
		}
		return 2
	}
	rv, ro := rank(v), rank(o)
	if rv != ro {
		if rv < ro {
			return -1
		}
		return 1
	}
	switch rv {
	case 0:
		return 0
	case 1:
		if v.Kind == Int && o.Kind == Int {
			switch {
			case v.I < o.I:
				return -1
			case v.I > o.I:
				return 1
			}
			return 0
		}
		a, b := v.float(), o.float()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return strings.Compare(v.String(), o.String())
}

// formatFloat renders f in fixed-point notation with the fewest digits that
// parse back to f.  Integral values keep a ".0" suffix so the column still
// reads as floating point.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// inferKind picks the narrowest kind that every non-empty value in the sample
// parses as.  An empty sample is Text.
func inferKind(sample []string) Kind {
	isInt, isFloat, seen := true, true, false
	for _, s := range sample {
		if s == "" {
			continue
		}
		seen = true
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isFloat = false
			}
		}
	}
	switch {
	case !seen:
		return Text
	case isInt:
		return Int
	case isFloat:
		return Float
	}
	return Text
}

// parseValue converts a field to a Value of the given kind.  A field that
// does not parse as kind is returned as Text.
func parseValue(kind Kind, s string) Value {
	if s == "" {
		return Value{}
	}
	switch kind {
	case Int:
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntValue(v)
		}
	case Float:
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return FloatValue(v)
		}
	}
	return TextValue(s)
}
