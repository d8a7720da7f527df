package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	huh "github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/anikchand461/envpod/internal/detect"
	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/project"
	"github.com/anikchand461/envpod/internal/python"
	"github.com/anikchand461/envpod/internal/tui"
)

// InitCommand handles the init command
type InitCommand struct {
	fs filesystem.FileSystem
	py python.Runtime

	// confirm asks the user before overwriting an existing descriptor;
	// injectable so tests can script the answer.
	confirm func(prompt string) (bool, error)
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem, py python.Runtime) *cobra.Command {
	cmd := &InitCommand{fs: fs, py: py, confirm: confirmPrompt}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize " + project.DescriptorName + " for the current project",
		Long: `Detect the project's Python version and framework, write the
descriptor file, and make sure the environment directory is git-ignored.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := project.FindRoot(c.fs)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Initializing envpod in: %s\n", root)

	store := project.NewStore(c.fs)
	if store.Exists(root) {
		overwrite, err := c.confirm(project.DescriptorName + " already exists. Overwrite?")
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !overwrite {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	pythonHint := python.DefaultVersion
	if raw, err := c.py.Version(); err == nil {
		if mm, ok := python.MajorMinor(raw); ok {
			pythonHint = mm
		}
	}

	runCommand := detect.RunCommand(c.fs, root)

	cfg := &project.Config{
		Name:    filepath.Base(root),
		Python:  pythonHint,
		EnvFile: project.DefaultEnvFile,
		Run:     map[string]string{"dev": runCommand},
	}
	if c.fs.Exists(filepath.Join(root, project.ManifestName)) {
		cfg.Dependencies = &project.Dependencies{File: project.ManifestName}
	}

	if err := store.Write(root, cfg); err != nil {
		return err
	}

	result, err := project.EnsureIgnored(c.fs, root)
	if err != nil {
		return err
	}

	switch result {
	case project.IgnoreCreated:
		fmt.Fprintln(out, tui.SuccessStyle.Render("Created .gitignore and added "+project.IgnoreEntry))
	case project.IgnoreAppended:
		fmt.Fprintln(out, tui.SuccessStyle.Render("Added "+project.IgnoreEntry+" to .gitignore"))
	case project.IgnoreAlreadyPresent:
		fmt.Fprintln(out, tui.SubtleStyle.Render(project.IgnoreEntry+" already in .gitignore"))
	}

	body := fmt.Sprintf("Created %s\nLocation: %s\n\nNext steps:\n  envpod doctor\n  envpod up\n  envpod run dev",
		project.DescriptorName, store.Path(root))
	fmt.Fprintln(out, tui.Panel("Success", body))

	return nil
}

func confirmPrompt(prompt string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	return confirmed, nil
}
