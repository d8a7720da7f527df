package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/project"
	"github.com/anikchand461/envpod/internal/python"
	"github.com/anikchand461/envpod/internal/tui"
)

// UpCommand handles the up command
type UpCommand struct {
	fs filesystem.FileSystem
	py python.Runtime
}

// NewUpCommand creates a new up command
func NewUpCommand(fs filesystem.FileSystem, py python.Runtime) *cobra.Command {
	cmd := &UpCommand{fs: fs, py: py}

	cobraCmd := &cobra.Command{
		Use:   "up",
		Short: "Create the virtual environment and install dependencies",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the up command
func (c *UpCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := project.FindRoot(c.fs)
	if err != nil {
		return err
	}

	store := project.NewStore(c.fs)
	if !store.Exists(root) {
		return fmt.Errorf("%s not found, run 'envpod init' first", project.DescriptorName)
	}

	cfg, err := store.Load(root)
	if err != nil {
		return err
	}

	venvDir := project.VenvDir(root)
	if err := c.fs.MkdirAll(filepath.Dir(venvDir), 0755); err != nil {
		return fmt.Errorf("failed to create environment directory: %w", err)
	}

	fmt.Fprintf(out, "Creating venv at: %s\n", venvDir)
	if err := c.py.CreateVenv(venvDir); err != nil {
		return err
	}
	fmt.Fprintln(out, tui.SuccessStyle.Render("✓ Virtual environment created"))

	fmt.Fprintln(out, "Upgrading pip and installing wheel...")
	if err := c.py.UpgradeInstaller(venvDir); err != nil {
		return err
	}

	if cfg.Dependencies != nil && cfg.Dependencies.File != "" {
		depsPath := filepath.Join(root, cfg.Dependencies.File)
		if c.fs.Exists(depsPath) {
			fmt.Fprintf(out, "Installing from %s\n", depsPath)
			if err := c.py.InstallRequirements(venvDir, depsPath); err != nil {
				return err
			}
			fmt.Fprintln(out, tui.SuccessStyle.Render("✓ Dependencies installed"))
		} else {
			fmt.Fprintln(out, tui.WarnStyle.Render(fmt.Sprintf("Dependencies file not found: %s – skipping", depsPath)))
		}
	} else {
		fmt.Fprintln(out, tui.WarnStyle.Render("No dependencies file specified"))
	}

	body := fmt.Sprintf("Setup complete!\n\nTo activate:\n  source %s/bin/activate\n\nNext: envpod run dev", venvDir)
	fmt.Fprintln(out, tui.Panel("envpod up", body))

	return nil
}
