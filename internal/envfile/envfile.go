// Package envfile loads KEY=VALUE environment files into the process
// environment without overriding variables the parent process already set.
package envfile

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/subosito/gotenv"

	"github.com/anikchand461/envpod/internal/filesystem"
)

// Load parses the env file at path and sets each variable that is not
// already present in the process environment. It returns the names of the
// variables it set, sorted for deterministic reporting.
func Load(fs filesystem.FileSystem, path string) ([]string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	pairs, err := gotenv.StrictParse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}

	var loaded []string
	for key, value := range pairs {
		if _, present := os.LookupEnv(key); present {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
		loaded = append(loaded, key)
	}

	sort.Strings(loaded)
	return loaded, nil
}
