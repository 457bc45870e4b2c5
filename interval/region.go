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
package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PosType is the coordinate type.
type PosType int64

// PosTypeMax is the exclusive end of a region string with no positional
// restriction.
const PosTypeMax = math.MaxInt64

// Entry represents a single interval, with 0-based coordinates.
type Entry struct {
	ChrName string
	Start0  PosType
	End     PosType
}

// Contains reports whether the 0-based position pos on chrName lies in
// [Start0, End).
func (e Entry) Contains(chrName string, pos PosType) bool {
	return chrName == e.ChrName && pos >= e.Start0 && pos < e.End
}

func (e Entry) String() string {
	if e.Start0 == 0 && e.End == PosTypeMax {
		return e.ChrName
	}
	return fmt.Sprintf("%s:%d-%d", e.ChrName, e.Start0+1, e.End)
}

// ParseRegionString parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
//   [contig ID]
// returning a contig ID and 0-based interval boundaries.  The interval
// [0, PosTypeMax) is returned if there is no positional restriction.
// Thousands separators (",") in positions are ignored.
func ParseRegionString(region string) (result Entry, err error) {
	if len(region) == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty region string")
		return
	}
	colonPos := strings.LastIndexByte(region, ':')
	if colonPos == -1 {
		result.ChrName = region
		result.End = PosTypeMax
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty contig ID in %q", region)
		return
	}
	result.ChrName = region[:colonPos]
	rangeStr := strings.Replace(region[colonPos+1:], ",", "", -1)
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 PosType
		if pos1, err = parsePos(rangeStr); err != nil {
			return
		}
		result.Start0 = pos1 - 1
		result.End = pos1
		return
	}
	var start1, end PosType
	if start1, err = parsePos(rangeStr[:dashPos]); err != nil {
		return
	}
	if end, err = parsePos(rangeStr[dashPos+1:]); err != nil {
		return
	}
	if end < start1 {
		err = fmt.Errorf("interval.ParseRegionString: invalid range string %v", rangeStr)
		return
	}
	result.Start0 = start1 - 1
	result.End = end
	return
}

// parsePos parses a positive 1-based position.
func parsePos(s string) (PosType, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("interval.ParseRegionString: %v", err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", s)
	}
	return PosType(v), nil
}
