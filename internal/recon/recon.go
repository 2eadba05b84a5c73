// Package recon computes the two-way difference between discovered
// package-definition files and manifest module entries, and writes the
// resulting listings.
package recon

import "sort"

// Result holds one reconciliation outcome. FileCount and ManifestCount are
// raw sequence lengths (duplicates included); FilesOnly and ManifestOnly are
// sorted, deduplicated difference sets.
type Result struct {
	FileCount     int
	ManifestCount int
	FilesOnly     []string
	ManifestOnly  []string
}

// Diff reduces both identifier sequences to sets and returns the
// differences in each direction, sorted lexicographically.
func Diff(files, modules []string) Result {
	fileSet := toSet(files)
	moduleSet := toSet(modules)
	return Result{
		FileCount:     len(files),
		ManifestCount: len(modules),
		FilesOnly:     sortedDiff(fileSet, moduleSet),
		ManifestOnly:  sortedDiff(moduleSet, fileSet),
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// sortedDiff returns the members of a absent from b, sorted.
func sortedDiff(a, b map[string]struct{}) []string {
	out := make([]string, 0, len(a))
	for id := range a {
		if _, ok := b[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
