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
bio-bedpe-downsample writes a random subset of a BEDPE file.

Records whose first chromosome is not one of chr1-chr22, chrX or chrY are
dropped.  A fraction of the remaining records is then drawn without
replacement (floor(frac * n) records), sorted by (chrom1, start1), and written
in the input layout: tab-delimited, ten columns, no header.  Inputs and
outputs ending in .gz are gzip-compressed.

Passing -seed makes the output reproducible; without it each run draws a
different subset.

Sample usage:
bio-bedpe-downsample \
    -i contacts.bedpe \
    -o contacts.10pct.bedpe \
    -f 0.1 \
    -s 42
*/
package main
