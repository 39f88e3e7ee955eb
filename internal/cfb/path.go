package cfb

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// compareNames implements the CFB directory ordering rule: shorter
// (UTF-16 code unit count) names sort first; equal-length names compare
// case-insensitively. spec.md §3.5 calls this out explicitly because HWP
// stream/storage names aren't guaranteed ASCII-only, so full Unicode case
// folding (not strings.EqualFold's simple folding) is used, the way
// asalih-go-mscfb's unused golang.org/x/text/cases+language imports
// signal it should be.
func compareNames(a, b string) int {
	la := len(utf16.Encode([]rune(a)))
	lb := len(utf16.Encode([]rune(b)))
	if la != lb {
		if la < lb {
			return -1
		}
		return 1
	}
	fa := folder.String(a)
	fb := folder.String(b)
	return strings.Compare(fa, fb)
}

// splitPath turns a "/"-delimited stream path into its storage/stream name
// chain, dropping any leading slash.
func splitPath(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
