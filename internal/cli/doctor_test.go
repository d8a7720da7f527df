package cli

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/python"
)

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}

func TestDoctor_RequiresDescriptor(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir("/workspace")

	_, err := executeForTest(NewDoctorCommand(fs, python.NewMockRuntime()))
	require.Error(t, err)
	require.Contains(t, err.Error(), "run 'envpod init' first")
}

func TestDoctor_RejectsUnparsableDescriptor(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir("/workspace")
	fs.AddFile("/workspace/envpod.yaml", []byte("run: [broken"))

	_, err := executeForTest(NewDoctorCommand(fs, python.NewMockRuntime()))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid YAML")
}

func TestDoctor_AdvisoryFindingsDoNotFail(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir("/workspace")
	// Configured deps file and env file are both absent, the configured
	// python differs from the detected one, and one secret is unset.
	fs.AddFile("/workspace/envpod.yaml", []byte(`name: workspace
python: "3.11"
dependencies:
  file: requirements.txt
env_file: .env
run:
  dev: uvicorn main:app --reload
secrets:
  - DOCTOR_TEST_SET
  - DOCTOR_TEST_UNSET
`))

	t.Setenv("DOCTOR_TEST_SET", "value")

	out, err := executeForTest(NewDoctorCommand(fs, python.NewMockRuntime()))
	require.NoError(t, err)

	require.Contains(t, out, "Config: /workspace/envpod.yaml")
	require.Contains(t, out, "wanted 3.11")
	require.Contains(t, out, "Python 3.12.4")
	require.Contains(t, out, "version differs from configured target")
	require.Contains(t, out, "/workspace/requirements.txt missing")
	require.Contains(t, out, "/workspace/.env missing")
	require.Contains(t, out, "✓ DOCTOR_TEST_SET")
	require.Contains(t, out, "✗ DOCTOR_TEST_UNSET")
	require.Contains(t, out, ".envpod/ not ignored by git")
	require.Contains(t, out, "Doctor finished")
}

func TestDoctor_HealthyProjectReport(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir("/workspace")
	fs.AddFile("/workspace/envpod.yaml", []byte(`name: workspace
python: "3.12"
dependencies:
  file: requirements.txt
env_file: .env
run:
  dev: uvicorn main:app --reload
`))
	fs.AddFile("/workspace/requirements.txt", []byte("fastapi\n"))
	fs.AddFile("/workspace/.env", []byte("DEBUG=1\n"))
	fs.AddFile("/workspace/.gitignore", []byte(".envpod/\n"))

	out, err := executeForTest(NewDoctorCommand(fs, python.NewMockRuntime()))
	require.NoError(t, err)

	require.Contains(t, out, "/workspace/requirements.txt exists")
	require.Contains(t, out, "/workspace/.env found")
	require.Contains(t, out, "Secrets: none required")
	require.NotContains(t, out, "version differs")

	snaps.MatchSnapshot(t, out)
}

func TestDoctor_ReportsMissingInterpreter(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.SetCurrentDir("/workspace")
	fs.AddFile("/workspace/envpod.yaml", []byte("name: workspace\npython: \"3.12\"\nenv_file: .env\nrun:\n  dev: pytest\n"))

	py := python.NewMockRuntime()
	py.VersionErr = os.ErrNotExist

	out, err := executeForTest(NewDoctorCommand(fs, py))
	require.NoError(t, err)
	require.Contains(t, out, "Python not found on PATH")
}

func TestInitThenDoctor_ReportsWhatInitObserved(t *testing.T) {
	fs := setupInitWorkspace()
	fs.AddFile("/workspace/requirements.txt", []byte("flask\n"))
	fs.AddFile("/workspace/.env", []byte("DEBUG=1\n"))

	initCmd, _ := newInitForTest(fs, python.NewMockRuntime(), nil)
	require.NoError(t, initCmd.Execute())

	out, err := executeForTest(NewDoctorCommand(fs, python.NewMockRuntime()))
	require.NoError(t, err)

	// No false negatives on files init itself observed.
	require.Contains(t, out, "/workspace/requirements.txt exists")
	require.Contains(t, out, "/workspace/.env found")
	require.Contains(t, out, ".envpod/ ignored by git")
}
