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

// Opts defines the behavior of Downsample.
type Opts struct {
	// Fraction of the chromosome-filtered records to keep.  Must be in (0, 1].
	Fraction float64
	// Seed seeds the sampler when Seeded is true.  Otherwise the sampler is
	// seeded from process entropy and every run draws a different subset.
	Seed   uint64
	Seeded bool
	// Region, if nonempty, additionally restricts output to records whose
	// chrom1:start1 lies in the region.  Format as <contig ID>:<1-based first
	// pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>.
	Region string
	// InferRows is the number of leading records used to infer column kinds.
	InferRows int
	// BufSize is the output buffer size in bytes.
	BufSize int
}

// DefaultOpts contains the default values of Opts.
var DefaultOpts = Opts{
	Fraction:  1,
	InferRows: bedpe.DefaultInferRows,
	BufSize:   bedpe.DefaultWriteBufSize,
}

// validate checks opts before any file is touched, and returns the parsed
// region (nil if none).
func (opts *Opts) validate() (*interval.Entry, error) {
	if err := checkFraction(opts.Fraction); err != nil {
		return nil, err
	}
	if opts.Region == "" {
		return nil, nil
	}
	region, err := interval.ParseRegionString(opts.Region)
	if err != nil {
		return nil, bedpe.NewError(bedpe.ParseError, "region", "", errors.E(errors.Invalid, err))
	}
	return &region, nil
}
