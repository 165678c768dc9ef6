package fileutil

import "sort"

func DedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func SortedUnique(items []string) []string {
	out := DedupeStrings(items)
	sort.Strings(out)
	return out
}
