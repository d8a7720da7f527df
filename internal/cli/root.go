package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/python"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, py python.Runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "envpod",
		Short: "Local development environment synchronizer",
		Long: `envpod bootstraps and manages a per-project Python development
environment around a single envpod.yaml descriptor.

Typical flow: envpod init, envpod up, envpod run dev.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewInitCommand(fs, py))
	rootCmd.AddCommand(NewUpCommand(fs, py))
	rootCmd.AddCommand(NewRunCommand(fs, py))
	rootCmd.AddCommand(NewDoctorCommand(fs, py))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	py := python.NewOSRuntime()

	rootCmd := NewRootCommand(fs, py)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
