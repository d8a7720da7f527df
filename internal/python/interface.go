package python

import (
	"context"
)

// Runtime provides an abstraction over the Python toolchain for testability.
//
// All operations shell out to the interpreter (or the pip binary inside a
// virtual environment) and block until the subprocess exits. There are no
// timeouts: a hung subprocess hangs the caller.
type Runtime interface {
	// Version returns the raw output of `python --version`.
	Version() (string, error)

	// Which returns the resolved path of the python binary currently
	// active on PATH, with symlinks evaluated.
	Which() (string, error)

	// CreateVenv creates a virtual environment at the given directory.
	CreateVenv(dir string) error

	// UpgradeInstaller upgrades pip and wheel inside the given venv.
	UpgradeInstaller(venvDir string) error

	// InstallRequirements installs a requirements file into the given venv.
	InstallRequirements(venvDir, requirementsPath string) error

	// Context support for subprocess invocations
	WithContext(ctx context.Context) Runtime
}
