package project

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/anikchand461/envpod/internal/filesystem"
)

// IgnoreEntry is the .gitignore pattern for the managed environment directory
const IgnoreEntry = EnvDirName + "/"

const ignoreBlock = "# envpod managed environments\n" + IgnoreEntry + "\n"

// IgnoreResult describes what EnsureIgnored did to the ignore file
type IgnoreResult int

const (
	// IgnoreAlreadyPresent means the entry was already listed
	IgnoreAlreadyPresent IgnoreResult = iota
	// IgnoreAppended means the managed block was appended to an existing file
	IgnoreAppended
	// IgnoreCreated means the ignore file was created with the managed block
	IgnoreCreated
)

// EnsureIgnored makes sure the environment directory is listed in the
// project's .gitignore. The check compares trimmed lines, so repeated calls
// are idempotent.
func EnsureIgnored(fs filesystem.FileSystem, projectRoot string) (IgnoreResult, error) {
	ignorePath := filepath.Join(projectRoot, ".gitignore")

	if !fs.Exists(ignorePath) {
		if err := fs.WriteFile(ignorePath, []byte(ignoreBlock), 0644); err != nil {
			return 0, fmt.Errorf("failed to create .gitignore: %w", err)
		}
		return IgnoreCreated, nil
	}

	data, err := fs.ReadFile(ignorePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == IgnoreEntry {
			return IgnoreAlreadyPresent, nil
		}
	}

	updated := append(data, []byte("\n"+ignoreBlock)...)
	if err := fs.WriteFile(ignorePath, updated, 0644); err != nil {
		return 0, fmt.Errorf("failed to update .gitignore: %w", err)
	}

	return IgnoreAppended, nil
}

// IsEnvDirIgnored reports whether the environment directory is matched by
// the project's .gitignore, using real gitignore pattern semantics rather
// than the line comparison above. Returns false when no .gitignore exists.
func IsEnvDirIgnored(fs filesystem.FileSystem, projectRoot string) bool {
	ignorePath := filepath.Join(projectRoot, ".gitignore")
	if !fs.Exists(ignorePath) {
		return false
	}

	data, err := fs.ReadFile(ignorePath)
	if err != nil {
		return false
	}

	ignore := gitignore.New(bytes.NewReader(data), projectRoot, nil)
	match := ignore.Relative(EnvDirName, true)

	return match != nil && match.Ignore()
}
