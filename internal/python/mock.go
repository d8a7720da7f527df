package python

import (
	"context"
	"fmt"
)

var _ Runtime = (*MockRuntime)(nil)

// MockRuntime implements Runtime with scripted behavior for testing
type MockRuntime struct {
	VersionOutput string
	VersionErr    error
	WhichPath     string
	WhichErr      error

	CreateVenvErr          error
	UpgradeInstallerErr    error
	InstallRequirementsErr error

	// Recorded invocations
	CreatedVenvs      []string
	UpgradedVenvs     []string
	InstalledRequests [][2]string
}

// NewMockRuntime creates a MockRuntime that reports Python 3.12
func NewMockRuntime() *MockRuntime {
	return &MockRuntime{
		VersionOutput: "Python 3.12.4",
		WhichPath:     "/usr/bin/python",
	}
}

func (m *MockRuntime) Version() (string, error) {
	if m.VersionErr != nil {
		return "", m.VersionErr
	}
	return m.VersionOutput, nil
}

func (m *MockRuntime) Which() (string, error) {
	if m.WhichErr != nil {
		return "", m.WhichErr
	}
	return m.WhichPath, nil
}

func (m *MockRuntime) CreateVenv(dir string) error {
	if m.CreateVenvErr != nil {
		return fmt.Errorf("failed to create venv at %s: %w", dir, m.CreateVenvErr)
	}
	m.CreatedVenvs = append(m.CreatedVenvs, dir)
	return nil
}

func (m *MockRuntime) UpgradeInstaller(venvDir string) error {
	if m.UpgradeInstallerErr != nil {
		return fmt.Errorf("failed to upgrade pip and wheel: %w", m.UpgradeInstallerErr)
	}
	m.UpgradedVenvs = append(m.UpgradedVenvs, venvDir)
	return nil
}

func (m *MockRuntime) InstallRequirements(venvDir, requirementsPath string) error {
	if m.InstallRequirementsErr != nil {
		return fmt.Errorf("failed to install requirements: %w", m.InstallRequirementsErr)
	}
	m.InstalledRequests = append(m.InstalledRequests, [2]string{venvDir, requirementsPath})
	return nil
}

func (m *MockRuntime) WithContext(ctx context.Context) Runtime {
	return m
}
