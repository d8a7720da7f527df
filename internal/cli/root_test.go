package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/python"
)

func TestNewRootCommand_RegistersSubcommands(t *testing.T) {
	rootCmd := NewRootCommand(filesystem.NewMockFileSystem(), python.NewMockRuntime())

	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	require.Contains(t, names, "init")
	require.Contains(t, names, "up")
	require.Contains(t, names, "run")
	require.Contains(t, names, "doctor")
}
