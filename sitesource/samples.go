package sitesource

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// ParseSampleSubset resolves the -l/--samples flag's value into a set of
// sample names. A value containing a comma is treated as an inline
// comma-separated list. Otherwise it is read as a newline-separated
// (optionally gzipped) file of sample IDs, which MUST exist: a configured
// path that can't be opened is a fatal FileOpenFailure, not an empty
// filter.
func ParseSampleSubset(ctx context.Context, value string) (map[string]bool, error) {
	if value == "" {
		return nil, nil
	}
	if strings.Contains(value, ",") {
		return setFromList(strings.Split(value, ",")), nil
	}
	lines, err := readLines(ctx, value)
	if err != nil {
		return nil, err
	}
	return setFromList(lines), nil
}

func setFromList(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			set[item] = true
		}
	}
	return set
}

// readLines opens path (gzip-aware) via github.com/grailbio/base/file, which
// transparently supports s3:// in addition to local paths, and returns its
// non-empty, trimmed lines. The file must exist; a missing file is reported
// to the caller as an error so it can be surfaced as a fatal
// FileOpenFailure.
func readLines(ctx context.Context, path string) ([]string, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer f.Close(ctx)

	var reader io.Reader = f.Reader(ctx)
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
