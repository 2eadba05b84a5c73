package manifest

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Kind classifies a raw manifest line.
type Kind int

const (
	// KindBlank is an empty line after trimming.
	KindBlank Kind = iota
	// KindCategoryMarker is a line ending with a path separator.
	KindCategoryMarker
	// KindPathAnnotation is a line containing a colon.
	KindPathAnnotation
	// KindBareCategory is a line without any version digit.
	KindBareCategory
	// KindEntry is a valid module entry.
	KindEntry
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindCategoryMarker:
		return "category marker"
	case KindPathAnnotation:
		return "path annotation"
	case KindBareCategory:
		return "bare category"
	case KindEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Classify trims a raw manifest line and reports its kind. For KindEntry the
// returned identifier has every path separator replaced with a hyphen; for
// every other kind the identifier is empty.
func Classify(raw string) (string, Kind) {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		return "", KindBlank
	case isSeparator(rune(line[len(line)-1])):
		return "", KindCategoryMarker
	case strings.ContainsRune(line, ':'):
		return "", KindPathAnnotation
	case !containsDigit(line):
		// Covers both bare category paths (gcc/) leftovers and plain
		// unversioned names (zlib); neither identifies an installed version.
		return "", KindBareCategory
	default:
		return normalize(line), KindEntry
	}
}

// Read parses the manifest at path into an ordered identifier sequence.
// Duplicates are preserved; the reconciler reduces to a set.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest read failed (%s): %w", path, err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id, kind := Classify(scanner.Text())
		if kind != KindEntry {
			continue
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("manifest read failed (%s): %w", path, err)
	}
	log.Debug().Str("path", path).Int("entries", len(ids)).Msg("manifest parsed")
	return ids, nil
}

func normalize(line string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return '-'
		}
		return r
	}, line)
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
