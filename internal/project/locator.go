package project

import (
	"fmt"
	"path/filepath"

	"github.com/anikchand461/envpod/internal/filesystem"
)

const gitDirName = ".git"

// FindRoot returns the project root for the current working directory.
func FindRoot(fs filesystem.FileSystem) (string, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	return FindRootFrom(fs, cwd), nil
}

// FindRootFrom walks up from startDir looking for the nearest directory
// containing a .git marker. When none is found before the filesystem root,
// startDir itself is returned. Always returns a path.
func FindRootFrom(fs filesystem.FileSystem, startDir string) string {
	dir := filepath.Clean(startDir)

	for {
		if fs.IsDir(filepath.Join(dir, gitDirName)) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Clean(startDir)
		}
		dir = parent
	}
}
