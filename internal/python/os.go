package python

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const interpreterName = "python"

var _ Runtime = (*OSRuntime)(nil)

// OSRuntime implements Runtime using real python subprocesses
type OSRuntime struct {
	ctx context.Context
}

// NewOSRuntime creates a new OSRuntime
func NewOSRuntime() *OSRuntime {
	return &OSRuntime{
		ctx: context.Background(),
	}
}

// WithContext returns a new runtime with the given context
func (r *OSRuntime) WithContext(ctx context.Context) Runtime {
	return &OSRuntime{
		ctx: ctx,
	}
}

// Version returns the raw `python --version` output line
func (r *OSRuntime) Version() (string, error) {
	cmd := exec.CommandContext(r.ctx, interpreterName, "--version")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to query python version: %w", err)
	}

	return strings.TrimSpace(out.String()), nil
}

// Which resolves the python binary that is active on PATH
func (r *OSRuntime) Which() (string, error) {
	path, err := exec.LookPath(interpreterName)
	if err != nil {
		return "", fmt.Errorf("python not found on PATH: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path, nil
	}

	return resolved, nil
}

// CreateVenv runs `python -m venv <dir>`
func (r *OSRuntime) CreateVenv(dir string) error {
	cmd := exec.CommandContext(r.ctx, interpreterName, "-m", "venv", dir)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to create venv at %s: %w: %s", dir, err, stderr.String())
	}

	return nil
}

// UpgradeInstaller runs `<venv>/bin/pip install --upgrade pip wheel`
func (r *OSRuntime) UpgradeInstaller(venvDir string) error {
	cmd := exec.CommandContext(r.ctx, PipPath(venvDir), "install", "--upgrade", "pip", "wheel")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to upgrade pip and wheel: %w: %s", err, stderr.String())
	}

	return nil
}

// InstallRequirements runs `<venv>/bin/pip install -r <file>`
func (r *OSRuntime) InstallRequirements(venvDir, requirementsPath string) error {
	cmd := exec.CommandContext(r.ctx, PipPath(venvDir), "install", "-r", requirementsPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to install requirements: %w: %s", err, stderr.String())
	}

	return nil
}

// PipPath returns the pip binary path inside a venv (POSIX layout)
func PipPath(venvDir string) string {
	return filepath.Join(venvDir, "bin", "pip")
}

// InterpreterPath returns the python binary path inside a venv (POSIX layout)
func InterpreterPath(venvDir string) string {
	return filepath.Join(venvDir, "bin", interpreterName)
}
