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
package downsample

import (
	"sort"

	"github.com/grailbio/bedpe/encoding/bedpe"
)

// Sort returns the records of t ordered by chrom1 (as text), then start1
// (numerically).  Records with equal keys keep their relative order.
func Sort(t *bedpe.Table) (*bedpe.Table, error) {
	chrom, ok := t.Column(bedpe.Chrom1)
	if !ok {
		return nil, missingColumn("sort", bedpe.Chrom1)
	}
	start, ok := t.Column(bedpe.Start1)
	if !ok {
		return nil, missingColumn("sort", bedpe.Start1)
	}
	perm := make([]int, t.NumRows())
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		i, j := perm[a], perm[b]
		if c := chrom.Values[i].Compare(chrom.Values[j]); c != 0 {
			return c < 0
		}
		return start.Values[i].Compare(start.Values[j]) < 0
	})
	return t.Take(perm), nil
}
