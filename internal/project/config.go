package project

import (
	"fmt"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"

	"github.com/anikchand461/envpod/internal/filesystem"
)

const (
	// DescriptorName is the project descriptor file written by `init`
	// and read by every other command.
	DescriptorName = "envpod.yaml"

	// EnvDirName is the managed environment directory under the project root
	EnvDirName = ".envpod"

	// DefaultEnvFile is the default environment-variable file
	DefaultEnvFile = ".env"

	// ManifestName is the dependency manifest the detector reads
	ManifestName = "requirements.txt"
)

// Config is the project descriptor persisted as envpod.yaml
type Config struct {
	Name         string            `yaml:"name"`
	Python       string            `yaml:"python"`
	Dependencies *Dependencies     `yaml:"dependencies,omitempty"`
	EnvFile      string            `yaml:"env_file"`
	Run          map[string]string `yaml:"run"`
	Secrets      []string          `yaml:"secrets,omitempty"`
}

// Dependencies points at a dependency manifest relative to the project root
type Dependencies struct {
	File string `yaml:"file"`
}

// Store reads and writes the descriptor for a project root
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a new Store
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// Path returns the descriptor path for a project root
func (s *Store) Path(projectRoot string) string {
	return filepath.Join(projectRoot, DescriptorName)
}

// Exists reports whether the descriptor exists for a project root
func (s *Store) Exists(projectRoot string) bool {
	return s.fs.Exists(s.Path(projectRoot))
}

// Load reads and parses the descriptor
func (s *Store) Load(projectRoot string) (*Config, error) {
	path := s.Path(projectRoot)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	return &cfg, nil
}

// Write serializes the descriptor atomically: the document is written to a
// temporary sibling file and renamed into place, so the descriptor is never
// observed partially written.
func (s *Store) Write(projectRoot string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := s.Path(projectRoot)

	suffix, err := gonanoid.New(8)
	if err != nil {
		return fmt.Errorf("failed to generate temp file suffix: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp-%s", path, suffix)
	if err := s.fs.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}

	if err := s.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move descriptor into place: %w", err)
	}

	return nil
}

// VenvDir returns the environment directory for a project root (POSIX layout)
func VenvDir(projectRoot string) string {
	return filepath.Join(projectRoot, EnvDirName, "venv")
}
