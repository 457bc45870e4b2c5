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

/*
Package downsample draws a reproducible random subset of a BEDPE file.

Downsample runs the stages below in order, each consuming the complete output
of the previous one:

  load    read the input into a bedpe.Table
  bind    name the ten BEDPE columns
  filter  keep records whose chrom1 is one of chr1-chr22, chrX, chrY (and,
          optionally, whose chrom1:start1 falls in Opts.Region)
  sample  keep floor(Opts.Fraction * n) records, drawn without replacement
  sort    order by (chrom1, start1); ties keep their sampled order
  write   write the records back out in the input layout

With Opts.Seeded set, the output is a deterministic function of the input,
fraction and seed.  Any stage failure ends the run.
*/
package downsample
