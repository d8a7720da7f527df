package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anikchand461/envpod/internal/envfile"
	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/project"
	"github.com/anikchand461/envpod/internal/python"
	"github.com/anikchand461/envpod/internal/tui"
)

// RunCommand handles the run command
type RunCommand struct {
	fs filesystem.FileSystem
	py python.Runtime
}

// NewRunCommand creates a new run command
func NewRunCommand(fs filesystem.FileSystem, py python.Runtime) *cobra.Command {
	cmd := &RunCommand{fs: fs, py: py}

	cobraCmd := &cobra.Command{
		Use:   "run <command_name>",
		Short: "Run a named command from " + project.DescriptorName,
		Long: `Run a named command from the descriptor's run section.

The command line is split on whitespace; there is no shell quoting, so
arguments containing spaces cannot be expressed.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the run command
func (c *RunCommand) Run(cmd *cobra.Command, args []string) error {
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

	if len(cfg.Run) == 0 {
		return fmt.Errorf("no 'run' commands configured in %s", project.DescriptorName)
	}

	name := args[0]
	commandLine, ok := cfg.Run[name]
	if !ok {
		return fmt.Errorf("command %q not found (available: %s)", name, strings.Join(runNames(cfg), ", "))
	}

	venvDir := project.VenvDir(root)
	if !c.fs.IsDir(venvDir) {
		return fmt.Errorf("environment not found at %s, run 'envpod up' first", venvDir)
	}

	// Advisory only: the command runs with whatever interpreter is active.
	expected := python.InterpreterPath(venvDir)
	if active, err := c.py.Which(); err == nil && active != expected {
		fmt.Fprintln(out, tui.WarnStyle.Render(fmt.Sprintf(
			"Warning: active python is %s, not the project environment (%s)", active, expected)))
	}

	envFile := cfg.EnvFile
	if envFile == "" {
		envFile = project.DefaultEnvFile
	}
	envPath := filepath.Join(root, envFile)
	if c.fs.Exists(envPath) {
		loaded, err := envfile.Load(c.fs, envPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tui.SubtleStyle.Render(fmt.Sprintf("Loaded %d variable(s) from %s", len(loaded), envFile)))
	}

	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return fmt.Errorf("command %q is empty", name)
	}

	fmt.Fprintf(out, "Running: %s\n", commandLine)

	child := exec.Command(fields[0], fields[1:]...)
	child.Dir = root
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = os.Environ()

	// The child's own exit code is not forwarded; any failure exits 1.
	if err := child.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", name, err)
	}

	return nil
}

func runNames(cfg *project.Config) []string {
	names := make([]string, 0, len(cfg.Run))
	for name := range cfg.Run {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
