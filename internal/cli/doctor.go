package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/project"
	"github.com/anikchand461/envpod/internal/python"
	"github.com/anikchand461/envpod/internal/tui"
)

// DoctorCommand handles the doctor command
type DoctorCommand struct {
	fs filesystem.FileSystem
	py python.Runtime
}

// NewDoctorCommand creates a new doctor command
func NewDoctorCommand(fs filesystem.FileSystem, py python.Runtime) *cobra.Command {
	cmd := &DoctorCommand{fs: fs, py: py}

	cobraCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and environment health (no changes made)",
		Long: `Compare the descriptor against the observed environment. Findings
are advisory: doctor only fails when the descriptor is missing or unparsable.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the doctor command
func (c *DoctorCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := project.FindRoot(c.fs)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, tui.Rule("envpod doctor"))

	store := project.NewStore(c.fs)
	if !store.Exists(root) {
		return fmt.Errorf("%s not found, run 'envpod init' first", project.DescriptorName)
	}

	cfg, err := store.Load(root)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Config: %s\n", store.Path(root))

	c.reportPython(out, cfg)
	c.reportDependencies(out, root, cfg)
	c.reportEnvFile(out, root, cfg)
	c.reportSecrets(out, cfg)
	c.reportIgnoreEntry(out, root)

	fmt.Fprintln(out, tui.Rule(""))
	fmt.Fprintln(out, tui.SuccessStyle.Render("Doctor finished"))

	return nil
}

func (c *DoctorCommand) reportPython(out io.Writer, cfg *project.Config) {
	wanted := cfg.Python
	if wanted == "" {
		wanted = "unknown"
	}
	fmt.Fprintf(out, "• Python: wanted %s\n", wanted)

	raw, err := c.py.Version()
	if err != nil {
		fmt.Fprintln(out, tui.ErrorStyle.Render("  Python not found on PATH"))
		return
	}

	fmt.Fprintf(out, "  Current: %s\n", raw)

	current, ok := python.MajorMinor(raw)
	if !ok || !semver.IsValid("v"+wanted) {
		return
	}
	if semver.Compare("v"+current, "v"+wanted) != 0 {
		fmt.Fprintln(out, tui.WarnStyle.Render("  Note: version differs from configured target"))
	}
}

func (c *DoctorCommand) reportDependencies(out io.Writer, root string, cfg *project.Config) {
	if cfg.Dependencies == nil || cfg.Dependencies.File == "" {
		fmt.Fprintln(out, "• Dependencies: none specified")
		return
	}

	depsPath := filepath.Join(root, cfg.Dependencies.File)
	if c.fs.Exists(depsPath) {
		fmt.Fprintf(out, "• Dependencies file: %s exists\n", tui.SuccessStyle.Render(depsPath))
	} else {
		fmt.Fprintf(out, "• Dependencies file: %s\n", tui.ErrorStyle.Render(depsPath+" missing"))
	}
}

func (c *DoctorCommand) reportEnvFile(out io.Writer, root string, cfg *project.Config) {
	envFile := cfg.EnvFile
	if envFile == "" {
		envFile = project.DefaultEnvFile
	}

	envPath := filepath.Join(root, envFile)
	if c.fs.Exists(envPath) {
		fmt.Fprintf(out, "• Env file: %s found\n", tui.SuccessStyle.Render(envPath))
	} else {
		fmt.Fprintf(out, "• Env file: %s\n", tui.WarnStyle.Render(envPath+" missing"))
	}
}

func (c *DoctorCommand) reportSecrets(out io.Writer, cfg *project.Config) {
	if len(cfg.Secrets) == 0 {
		fmt.Fprintln(out, "• Secrets: none required")
		return
	}

	fmt.Fprintf(out, "• Required secrets (%d):\n", len(cfg.Secrets))
	for _, key := range cfg.Secrets {
		if _, set := os.LookupEnv(key); set {
			fmt.Fprintf(out, "  %s\n", tui.SuccessStyle.Render("✓ "+key))
		} else {
			fmt.Fprintf(out, "  %s\n", tui.ErrorStyle.Render("✗ "+key))
		}
	}
}

func (c *DoctorCommand) reportIgnoreEntry(out io.Writer, root string) {
	if project.IsEnvDirIgnored(c.fs, root) {
		fmt.Fprintf(out, "• Environment dir: %s ignored by git\n", tui.SuccessStyle.Render(project.IgnoreEntry))
	} else {
		fmt.Fprintf(out, "• Environment dir: %s\n", tui.WarnStyle.Render(project.IgnoreEntry+" not ignored by git"))
	}
}
