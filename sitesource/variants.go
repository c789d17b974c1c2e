package sitesource

import "context"

// ParseIncludeVariants loads the -n/--include_variants set: a
// newline-separated (optionally gzipped) file of variant IDs to retain. An
// empty path means "no filter" (ok is false). A non-empty path that can't
// be opened is a fatal error, never silently treated as "no filter".
func ParseIncludeVariants(ctx context.Context, path string) (set map[string]bool, ok bool, err error) {
	if path == "" {
		return nil, false, nil
	}
	lines, err := readLines(ctx, path)
	if err != nil {
		return nil, false, err
	}
	return setFromList(lines), true, nil
}

// IncludeVariant reports whether varID should be forwarded, given an
// optional include-variants set and the configured -v target variant. A
// record passes if its ID is in the set OR equals the target; when no set
// is configured, every record passes.
func IncludeVariant(set map[string]bool, setOK bool, target, varID string) bool {
	if !setOK {
		return true
	}
	return set[varID] || varID == target
}
