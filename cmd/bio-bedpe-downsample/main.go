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
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bedpe/downsample"
)

// seedFlag is an optional uint64 flag.
type seedFlag struct {
	value uint64
	set   bool
}

func (s *seedFlag) String() string {
	if s == nil || !s.set {
		return ""
	}
	return strconv.FormatUint(s.value, 10)
}

func (s *seedFlag) Set(v string) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("seed %q is not a valid unsigned 64-bit integer", v)
	}
	s.value, s.set = n, true
	return nil
}

var (
	inputPath  string
	outputPath string
	fraction   float64
	seed       seedFlag

	region    = flag.String("region", downsample.DefaultOpts.Region, "Restrict output to records whose chrom1:start1 lies in this region. Format as <contig ID>:<1-based first pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>")
	inferRows = flag.Int("infer-rows", downsample.DefaultOpts.InferRows, "Number of leading records used to infer each column's type")
	bufSize   = flag.Int("buf-size", downsample.DefaultOpts.BufSize, "Output buffer size in bytes")
)

func init() {
	const (
		inputUsage    = "Input BEDPE path (required)"
		outputUsage   = "Output BEDPE path (required); created or truncated"
		fractionUsage = "Fraction of canonical-chromosome records to keep, in (0, 1] (required)"
		seedUsage     = "Unsigned 64-bit sampling seed; if unset, every run draws a different subset"
	)
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage)
	flag.StringVar(&outputPath, "output", "", outputUsage)
	flag.StringVar(&outputPath, "o", "", outputUsage)
	flag.Float64Var(&fraction, "frac", 0, fractionUsage)
	flag.Float64Var(&fraction, "f", 0, fractionUsage)
	flag.Var(&seed, "seed", seedUsage)
	flag.Var(&seed, "s", seedUsage)
}

func bedpeDownsampleUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -i input.bedpe -o output.bedpe -f fraction [-s seed] [OPTIONS]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// flagWasSet reports whether any of the named flags appeared on the command
// line.
func flagWasSet(names ...string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// newOpts validates the parsed flags and converts them to downsample.Opts.
// The fraction's range is checked by downsample.Downsample.
func newOpts() (downsample.Opts, error) {
	var missing []string
	if inputPath == "" {
		missing = append(missing, "-input")
	}
	if outputPath == "" {
		missing = append(missing, "-output")
	}
	if !flagWasSet("frac", "f") {
		missing = append(missing, "-frac")
	}
	if len(missing) > 0 {
		return downsample.Opts{}, fmt.Errorf("missing required flag(s): %s", strings.Join(missing, ", "))
	}
	return downsample.Opts{
		Fraction:  fraction,
		Seed:      seed.value,
		Seeded:    seed.set,
		Region:    *region,
		InferRows: *inferRows,
		BufSize:   *bufSize,
	}, nil
}

func main() {
	flag.Usage = bedpeDownsampleUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		log.Fatalf("unexpected positional arguments, please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	opts, err := newOpts()
	if err != nil {
		flag.Usage()
		log.Fatalf("%v", err)
	}
	ctx := vcontext.Background()
	stats, err := downsample.Downsample(ctx, inputPath, outputPath, opts)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting: %+v", stats)
}
