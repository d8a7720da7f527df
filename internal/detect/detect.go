// Package detect guesses a project's run command from its dependency
// manifest and the entry-point files present in the project root.
package detect

import (
	"path/filepath"
	"strings"

	"github.com/anikchand461/envpod/internal/filesystem"
	"github.com/anikchand461/envpod/internal/project"
)

// Conventional entry points, probed in preference order.
var entryPoints = []string{"main.py", "app.py"}

// LastResortCommand is returned when nothing in the project gives a hint.
const LastResortCommand = "python -m main"

// rule maps a manifest marker to a run command. Rules are applied in order;
// the first rule whose marker appears in the manifest wins.
type rule struct {
	markers []string
	resolve func(d *detector) (string, bool)
}

var rules = []rule{
	{
		// ASGI stack: launch the server against whichever module exists
		markers: []string{"fastapi", "uvicorn"},
		resolve: func(d *detector) (string, bool) {
			entry := d.firstEntryPoint("main.py")
			module := strings.TrimSuffix(entry, ".py")
			return "uvicorn " + module + ":app --reload", true
		},
	},
	{
		markers: []string{"flask"},
		resolve: func(d *detector) (string, bool) {
			return "flask run", true
		},
	},
	{
		// django only counts when its management script is present
		markers: []string{"django"},
		resolve: func(d *detector) (string, bool) {
			if !d.exists("manage.py") {
				return "", false
			}
			return "python manage.py runserver", true
		},
	},
	{
		markers: []string{"streamlit"},
		resolve: func(d *detector) (string, bool) {
			return "streamlit run " + d.firstEntryPoint("main.py"), true
		},
	},
	{
		markers: []string{"gradio"},
		resolve: func(d *detector) (string, bool) {
			return "python " + d.firstEntryPoint("main.py"), true
		},
	},
	{
		markers: []string{"pytest"},
		resolve: func(d *detector) (string, bool) {
			return "pytest", true
		},
	},
}

type detector struct {
	fs   filesystem.FileSystem
	root string
}

// RunCommand infers the run command for a project root. It never fails:
// given identical manifest contents and directory listing the result is
// deterministic, and an empty project yields LastResortCommand.
func RunCommand(fs filesystem.FileSystem, projectRoot string) string {
	d := &detector{fs: fs, root: projectRoot}

	manifest := d.readManifest()

	for _, r := range rules {
		if !matchesAny(manifest, r.markers) {
			continue
		}
		if cmd, ok := r.resolve(d); ok {
			return cmd
		}
	}

	for _, entry := range entryPoints {
		if d.exists(entry) {
			return "python " + entry
		}
	}

	return LastResortCommand
}

// readManifest returns the lowercased manifest contents; an absent manifest
// reads as empty text, not an error.
func (d *detector) readManifest() string {
	data, err := d.fs.ReadFile(filepath.Join(d.root, project.ManifestName))
	if err != nil {
		return ""
	}
	return strings.ToLower(string(data))
}

func (d *detector) exists(name string) bool {
	return d.fs.Exists(filepath.Join(d.root, name))
}

// firstEntryPoint returns the first conventional entry point that exists,
// or fallback when none does.
func (d *detector) firstEntryPoint(fallback string) string {
	for _, entry := range entryPoints {
		if d.exists(entry) {
			return entry
		}
	}
	return fallback
}

func matchesAny(manifest string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(manifest, marker) {
			return true
		}
	}
	return false
}
