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
	"github.com/grailbio/base/errors"
	"github.com/grailbio/bedpe/encoding/bedpe"
	"github.com/grailbio/bedpe/interval"
)

var canonicalChroms = [...]string{
	"chr1", "chr2", "chr3", "chr4", "chr5", "chr6", "chr7", "chr8",
	"chr9", "chr10", "chr11", "chr12", "chr13", "chr14", "chr15", "chr16",
	"chr17", "chr18", "chr19", "chr20", "chr21", "chr22", "chrX", "chrY",
}

// canonicalSet is never modified after init.
var canonicalSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(canonicalChroms))
	for _, c := range canonicalChroms {
		m[c] = struct{}{}
	}
	return m
}()

// CanonicalChroms returns the chromosome names kept by Downsample.
func CanonicalChroms() []string {
	return append([]string(nil), canonicalChroms[:]...)
}

// IsCanonical reports whether chrom is one of chr1-chr22, chrX or chrY.
func IsCanonical(chrom string) bool {
	_, ok := canonicalSet[chrom]
	return ok
}

func missingColumn(op, name string) error {
	return bedpe.NewError(bedpe.SchemaError, op, "", errors.E(errors.Invalid, "missing column", name))
}

// FilterChroms returns the records of t whose chrom1 passes keep, in their
// original order.
func FilterChroms(t *bedpe.Table, keep func(chrom string) bool) (*bedpe.Table, error) {
	chrom, ok := t.Column(bedpe.Chrom1)
	if !ok {
		return nil, missingColumn("filter", bedpe.Chrom1)
	}
	var indices []int
	for i, v := range chrom.Values {
		if keep(v.String()) {
			indices = append(indices, i)
		}
	}
	return t.Take(indices), nil
}

// FilterRegion returns the records of t whose chrom1:start1 lies in region,
// in their original order.  Records whose start1 is not an integer are
// dropped.
func FilterRegion(t *bedpe.Table, region interval.Entry) (*bedpe.Table, error) {
	chrom, ok := t.Column(bedpe.Chrom1)
	if !ok {
		return nil, missingColumn("filter", bedpe.Chrom1)
	}
	start, ok := t.Column(bedpe.Start1)
	if !ok {
		return nil, missingColumn("filter", bedpe.Start1)
	}
	var indices []int
	for i, v := range start.Values {
		if v.Kind != bedpe.Int {
			continue
		}
		if region.Contains(chrom.Values[i].String(), interval.PosType(v.I)) {
			indices = append(indices, i)
		}
	}
	return t.Take(indices), nil
}
