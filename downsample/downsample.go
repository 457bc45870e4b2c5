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
	"context"

	"github.com/grailbio/base/log"
	"github.com/grailbio/bedpe/encoding/bedpe"
)

// Stats counts the records surviving each stage of a run.
type Stats struct {
	Loaded   int
	Filtered int
	Sampled  int
}

// Downsample reads the BEDPE file at inPath, keeps a random
// opts.Fraction of its records on canonical chromosomes, and writes them to
// outPath sorted by (chrom1, start1).  See the package comment for details.
//
// Options are validated before inPath is opened, so a bad fraction or region
// never creates outPath.  If a later stage fails, outPath may be absent,
// empty or truncated.
func Downsample(ctx context.Context, inPath, outPath string, opts Opts) (stats Stats, err error) {
	region, err := opts.validate()
	if err != nil {
		return
	}
	t, err := bedpe.LoadPath(ctx, inPath, bedpe.LoadOpts{InferRows: opts.InferRows})
	if err != nil {
		return
	}
	stats.Loaded = t.NumRows()
	log.Printf("%s: loaded %d record(s)", inPath, stats.Loaded)
	if err = bedpe.Bind(t); err != nil {
		err = bedpe.WithPath(err, inPath)
		return
	}

	if t, err = FilterChroms(t, IsCanonical); err != nil {
		return
	}
	if region != nil {
		if t, err = FilterRegion(t, *region); err != nil {
			return
		}
		log.Debug.Printf("restricted to region %v", region)
	}
	stats.Filtered = t.NumRows()
	log.Printf("%d of %d record(s) on canonical chromosomes", stats.Filtered, stats.Loaded)

	if t, err = Sample(t, opts.Fraction, NewRand(opts.Seed, opts.Seeded)); err != nil {
		return
	}
	stats.Sampled = t.NumRows()
	log.Printf("sampled %d record(s) at fraction %v", stats.Sampled, opts.Fraction)

	if t, err = Sort(t); err != nil {
		return
	}
	if err = bedpe.WritePath(ctx, outPath, t, bedpe.WriteOpts{BufSize: opts.BufSize}); err != nil {
		return
	}
	log.Printf("%s: wrote %d record(s)", outPath, stats.Sampled)
	return
}
