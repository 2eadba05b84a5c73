package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes the commented reconctl settings template to path.
// An existing file is preserved unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(reconTemplate), 0o600)
}

const reconTemplate = `# reconctl settings. Every key is optional; absent keys keep their defaults.

# Package-definition file extension searched for under the root path.
extension = ".eb"

# Listing of package files lacking a manifest entry.
files_report = "ext_eb_repo.txt"

# Listing of manifest entries lacking a package file.
modules_report = "ext_modules.txt"

# Sample entries shown per difference set in verbose mode.
sample_size = 5

# One of: trace, debug, info, warn, error, disabled.
log_level = "info"
`
