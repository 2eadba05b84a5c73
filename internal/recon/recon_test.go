package recon

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danmuck/modrecon/internal/testutil/testlog"
)

func TestDiffBothDirections(t *testing.T) {
	testlog.Start(t)

	files := []string{"gcc-11.2.0"}
	modules := []string{"gcc-11.2.0", "openssl-3.0.1"}

	res := Diff(files, modules)
	require.Empty(t, res.FilesOnly)
	require.Equal(t, []string{"openssl-3.0.1"}, res.ManifestOnly)
	require.Equal(t, 1, res.FileCount)
	require.Equal(t, 2, res.ManifestCount)
}

func TestDiffCountsIncludeDuplicates(t *testing.T) {
	testlog.Start(t)

	files := []string{"gcc-11.2.0", "gcc-11.2.0"}
	modules := []string{"gcc-11.2.0"}

	res := Diff(files, modules)
	require.Equal(t, 2, res.FileCount)
	require.Empty(t, res.FilesOnly)
	require.Empty(t, res.ManifestOnly)
}

func TestDiffResultsSorted(t *testing.T) {
	testlog.Start(t)

	files := []string{"zlib-1.2.13", "binutils-2.40", "gcc-11.2.0"}
	res := Diff(files, nil)
	require.True(t, sort.StringsAreSorted(res.FilesOnly))
	require.Equal(t, []string{"binutils-2.40", "gcc-11.2.0", "zlib-1.2.13"}, res.FilesOnly)
}

// The difference plus the intersection must reconstruct each original set.
func TestDiffPartitionsEachSet(t *testing.T) {
	testlog.Start(t)

	files := []string{"a-1", "b-2", "c-3", "d-4"}
	modules := []string{"c-3", "d-4", "e-5"}

	res := Diff(files, modules)

	intersection := map[string]struct{}{}
	moduleSet := toSet(modules)
	for _, id := range files {
		if _, ok := moduleSet[id]; ok {
			intersection[id] = struct{}{}
		}
	}

	rebuilt := make([]string, 0, len(files))
	for id := range intersection {
		rebuilt = append(rebuilt, id)
	}
	rebuilt = append(rebuilt, res.FilesOnly...)
	sort.Strings(rebuilt)

	original := make([]string, len(files))
	copy(original, files)
	sort.Strings(original)
	require.Equal(t, original, rebuilt)

	for _, id := range res.FilesOnly {
		require.NotContains(t, res.ManifestOnly, id)
		require.NotContains(t, modules, id)
	}
	for _, id := range res.ManifestOnly {
		require.NotContains(t, files, id)
	}
}
