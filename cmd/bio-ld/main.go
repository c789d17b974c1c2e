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

/*
bio-ld computes pairwise linkage-disequilibrium statistics (r-squared and
D-prime) between variant sites read from one or two indexed VCF/BCF files.
*/

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/ld/ld"
	"github.com/grailbio/ld/sitesource"
)

var (
	file1           = flag.String("f", "", "Input file path (synonym --file)")
	file2           = flag.String("g", "", "Second input file path, for cross-file mode (synonym --file2)")
	region1         = flag.String("r", "", "Region chr:start-end for the first file (synonym --region)")
	region2         = flag.String("s", "", "Region chr:start-end for the second file, defaults to -r (synonym --region2)")
	samples         = flag.String("l", "", "Sample subset: file path or comma-separated list (synonym --samples)")
	window          = flag.Int("w", 100000, "Window size in bp; ignored (forced to 10^9) in two-file mode (synonym --window)")
	targetVariant   = flag.String("v", "", "Restrict output to pairs involving this variant ID (synonym --variant)")
	includeVariants = flag.String("n", "", "Path to file of variant IDs to retain (synonym --include_variants)")
)

func init() {
	flag.StringVar(file1, "file", *file1, "Input file path")
	flag.StringVar(file2, "file2", *file2, "Second input file path")
	flag.StringVar(region1, "region", *region1, "Region for the first file")
	flag.StringVar(region2, "region2", *region2, "Region for the second file")
	flag.StringVar(samples, "samples", *samples, "Sample subset")
	flag.IntVar(window, "window", *window, "Window size in bp")
	flag.StringVar(targetVariant, "variant", *targetVariant, "Target variant ID")
	flag.StringVar(includeVariants, "include_variants", *includeVariants, "Path to include-variants file")
}

func bioLdUsage() {
	fmt.Printf("Usage: %s -f file.vcf.gz -r chr:start-end [-g file2.vcf.gz -s chr:start-end] [options]\n", os.Args[0])
	flag.PrintDefaults()
}

// exitError carries the process exit code a fatal error should produce:
// 1 for user/plumbing errors, 2 for engine capacity failures.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func userErrorf(format string, args ...interface{}) error {
	return &exitError{code: 1, err: fmt.Errorf(format, args...)}
}

func main() {
	flag.Usage = bioLdUsage
	shutdown := grail.Init()
	defer shutdown()

	if err := run(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			log.Error.Printf("%v", ee.err)
			os.Exit(ee.code)
		}
		var tooMany *ld.TooManySamplesError
		if errors.As(err, &tooMany) {
			log.Error.Printf("%v", err)
			os.Exit(2)
		}
		log.Error.Printf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	if *file1 == "" {
		return userErrorf("missing required -f/--file")
	}
	if *region1 == "" {
		return userErrorf("missing required -r/--region")
	}
	region2Str := *region2
	if region2Str == "" {
		region2Str = *region1
	}

	ctx := vcontext.Background()

	sampleSubset, err := sitesource.ParseSampleSubset(ctx, *samples)
	if err != nil {
		return userErrorf("loading sample subset: %v", err)
	}
	includeSet, includeOK, err := sitesource.ParseIncludeVariants(ctx, *includeVariants)
	if err != nil {
		return userErrorf("loading include-variants file: %v", err)
	}

	reg1, err := sitesource.ParseRegion(*region1)
	if err != nil {
		return userErrorf("%v", err)
	}

	src1, err := sitesource.OpenVCF(*file1, sampleSubset)
	if err != nil {
		return userErrorf("%v", err)
	}
	defer src1.Close()

	windowSize := int32(*window)
	twoFile := *file2 != ""

	var src2 sitesource.Source
	var reg2 sitesource.Region
	if twoFile {
		reg2, err = sitesource.ParseRegion(region2Str)
		if err != nil {
			return userErrorf("%v", err)
		}
		src2, err = sitesource.OpenVCF(*file2, sampleSubset)
		if err != nil {
			return userErrorf("%v", err)
		}
		defer src2.Close()
		windowSize = ld.CrossFileWindowSize
	}

	coord := ld.NewCoordinator(windowSize, *targetVariant, 0, os.Stdout)

	feed := func(src sitesource.Source, region sitesource.Region) error {
		it, err := src.Open(region)
		if err != nil {
			return err
		}
		defer it.Close()
		for it.Scan() {
			site := it.Site()
			if !sitesource.IncludeVariant(includeSet, includeOK, *targetVariant, site.VarID) {
				continue
			}
			calls, err := site.GenotypeCalls()
			if err != nil {
				return err
			}
			if err := coord.AddSite(site.Position, site.VarID, calls); err != nil {
				return err
			}
		}
		return it.Err()
	}

	if err := feed(src1, reg1); err != nil {
		return err
	}
	if twoFile {
		if err := feed(src2, reg2); err != nil {
			return err
		}
	}
	return coord.Flush()
}
