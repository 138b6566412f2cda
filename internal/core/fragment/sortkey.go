package fragment

import (
	"cmp"
	"slices"
	"sort"
	"strings"
)

// Ext is the fragment file extension.
const Ext = ".json"

// SortKey is the two-part numeric key derived from an episode filename.
type SortKey struct {
	First  float64
	Second float64
}

// KeyOf derives the sort key of name: the extension is stripped, the rest is
// split on "-", and the first two parts are converted to numbers. Parts that
// are missing or not numeric count as 0.
func KeyOf(name string) SortKey {
	parts := strings.SplitN(strings.TrimSuffix(name, Ext), "-", 3)

	var key SortKey
	key.First = NumberOrZero(parts[0])
	if len(parts) > 1 {
		key.Second = NumberOrZero(parts[1])
	}
	return key
}

// Compare orders two keys by first part, then second part.
func (k SortKey) Compare(other SortKey) int {
	if c := cmp.Compare(k.First, other.First); c != 0 {
		return c
	}
	return cmp.Compare(k.Second, other.Second)
}

// CompareFilenames is the three-way episode filename comparator.
func CompareFilenames(a, b string) int {
	return KeyOf(a).Compare(KeyOf(b))
}

// SortEpisodeFiles sorts names in place by CompareFilenames. The sort is
// stable: names with equal keys keep their incoming order.
func SortEpisodeFiles(names []string) {
	slices.SortStableFunc(names, CompareFilenames)
}

// SortCategoryFiles sorts generic category filenames lexicographically.
func SortCategoryFiles(names []string) {
	sort.Strings(names)
}
