package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/project"
	"github.com/anikchand461/envpod/internal/python"
)

func newInitForTest(fs filesystem.FileSystem, py python.Runtime, confirm func(string) (bool, error)) (*cobra.Command, *bytes.Buffer) {
	c := &InitCommand{fs: fs, py: py, confirm: confirm}
	cmd := &cobra.Command{Use: "init", RunE: c.Run, SilenceUsage: true, SilenceErrors: true}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd, out
}

func setupInitWorkspace() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace/.git")
	fs.SetCurrentDir("/workspace")
	return fs
}

func TestInit_WritesDescriptorAndGitignore(t *testing.T) {
	fs := setupInitWorkspace()
	fs.AddFile("/workspace/requirements.txt", []byte("fastapi\nuvicorn\n"))
	fs.AddFile("/workspace/main.py", []byte(""))

	cmd, out := newInitForTest(fs, python.NewMockRuntime(), nil)
	require.NoError(t, cmd.Execute())

	store := project.NewStore(fs)
	cfg, err := store.Load("/workspace")
	require.NoError(t, err)

	require.Equal(t, "workspace", cfg.Name)
	require.Equal(t, "3.12", cfg.Python)
	require.NotNil(t, cfg.Dependencies)
	require.Equal(t, "requirements.txt", cfg.Dependencies.File)
	require.Equal(t, ".env", cfg.EnvFile)
	require.Equal(t, "uvicorn main:app --reload", cfg.Run["dev"])

	ignore, err := fs.ReadFile("/workspace/.gitignore")
	require.NoError(t, err)
	require.Contains(t, string(ignore), ".envpod/")

	require.Contains(t, out.String(), "Initializing envpod in: /workspace")
	require.Contains(t, out.String(), "envpod doctor")
}

func TestInit_OmitsDependenciesWithoutManifest(t *testing.T) {
	fs := setupInitWorkspace()

	cmd, _ := newInitForTest(fs, python.NewMockRuntime(), nil)
	require.NoError(t, cmd.Execute())

	cfg, err := project.NewStore(fs).Load("/workspace")
	require.NoError(t, err)
	require.Nil(t, cfg.Dependencies)
	require.Equal(t, "python -m main", cfg.Run["dev"])
}

func TestInit_VersionDetectionFallsBack(t *testing.T) {
	fs := setupInitWorkspace()

	py := python.NewMockRuntime()
	py.VersionErr = errors.New("exec: python: not found")

	cmd, _ := newInitForTest(fs, py, nil)
	require.NoError(t, cmd.Execute())

	cfg, err := project.NewStore(fs).Load("/workspace")
	require.NoError(t, err)
	require.Equal(t, python.DefaultVersion, cfg.Python)
}

func TestInit_UnparsableVersionFallsBack(t *testing.T) {
	fs := setupInitWorkspace()

	py := python.NewMockRuntime()
	py.VersionOutput = "pyenv: version not installed"

	cmd, _ := newInitForTest(fs, py, nil)
	require.NoError(t, cmd.Execute())

	cfg, err := project.NewStore(fs).Load("/workspace")
	require.NoError(t, err)
	require.Equal(t, python.DefaultVersion, cfg.Python)
}

func TestInit_DecliningOverwriteAborts(t *testing.T) {
	fs := setupInitWorkspace()
	original := []byte("name: untouched\npython: \"3.9\"\nenv_file: .env\nrun:\n  dev: python main.py\n")
	fs.AddFile("/workspace/envpod.yaml", original)

	asked := false
	confirm := func(prompt string) (bool, error) {
		asked = true
		return false, nil
	}

	cmd, out := newInitForTest(fs, python.NewMockRuntime(), confirm)
	require.NoError(t, cmd.Execute())
	require.True(t, asked)
	require.Contains(t, out.String(), "Aborted.")

	data, err := fs.ReadFile("/workspace/envpod.yaml")
	require.NoError(t, err)
	require.Equal(t, original, data)

	// Declining must leave no other changes behind either.
	require.False(t, fs.Exists("/workspace/.gitignore"))
}

func TestInit_ConfirmedOverwriteReplacesDescriptor(t *testing.T) {
	fs := setupInitWorkspace()
	fs.AddFile("/workspace/envpod.yaml", []byte("name: stale\npython: \"3.9\"\nenv_file: .env\nrun:\n  dev: python app.py\n"))

	confirm := func(prompt string) (bool, error) { return true, nil }

	cmd, _ := newInitForTest(fs, python.NewMockRuntime(), confirm)
	require.NoError(t, cmd.Execute())

	cfg, err := project.NewStore(fs).Load("/workspace")
	require.NoError(t, err)
	require.Equal(t, "workspace", cfg.Name)
	require.Equal(t, "3.12", cfg.Python)
}

func TestInit_RepeatedRunsKeepSingleIgnoreEntry(t *testing.T) {
	fs := setupInitWorkspace()
	confirm := func(prompt string) (bool, error) { return true, nil }

	for i := 0; i < 3; i++ {
		cmd, _ := newInitForTest(fs, python.NewMockRuntime(), confirm)
		require.NoError(t, cmd.Execute())
	}

	data, err := fs.ReadFile("/workspace/.gitignore")
	require.NoError(t, err)
	require.Equal(t, 1, bytes.Count(data, []byte(".envpod/")))
}
