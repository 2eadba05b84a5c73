package scan

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultExtension is the package-definition file extension.
const DefaultExtension = ".eb"

// Scanner discovers package-definition files under a root directory.
type Scanner struct {
	fs  afero.Fs
	ext string
}

// New creates a scanner over fs. A nil fs selects the OS filesystem; an
// empty extension selects DefaultExtension.
func New(fs afero.Fs, ext string) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if ext == "" {
		ext = DefaultExtension
	}
	return &Scanner{fs: fs, ext: ext}
}

// Find walks root recursively and returns the identifier for every
// package-definition file whose stem contains at least one digit.
// Duplicates across directories are preserved. A nonexistent root yields an
// empty sequence rather than an error.
func (s *Scanner) Find(root string) ([]string, error) {
	if _, err := s.fs.Stat(root); err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("root", root).Msg("scan root does not exist")
			return nil, nil
		}
		return nil, fmt.Errorf("scan root failed (%s): %w", root, err)
	}

	var ids []string
	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name := info.Name()
		if !strings.HasSuffix(name, s.ext) {
			return nil
		}
		stem := strings.TrimSuffix(name, s.ext)
		if !strings.ContainsAny(stem, "0123456789") {
			log.Debug().Str("file", path).Msg("skipping, stem has no version token")
			return nil
		}
		ids = append(ids, stem)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan walk failed (%s): %w", root, err)
	}
	log.Debug().Str("root", root).Int("files", len(ids)).Msg("scan complete")
	return ids, nil
}
