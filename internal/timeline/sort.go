package timeline

import "sort"

// Sort returns the items ordered by date, newest first. The sort is
// stable so equal timestamps keep the relative order Normalize produced,
// and the caller's slice is never mutated.
func Sort(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
