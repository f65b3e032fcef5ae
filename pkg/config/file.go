package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project root.
const FileName = "strata.yaml"

// Defaults applied by Resolve.
const (
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultZoom         = 1.0
	DefaultFPS          = 60
	DefaultIterationCap = 300
)

// File is the optional strata.yaml configuration.
type File struct {
	Window  WindowConfig  `yaml:"window"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// DisplayConfig contains display settings.
type DisplayConfig struct {
	Zoom float64 `yaml:"zoom,omitempty"`
	FPS  int     `yaml:"fps,omitempty"`
}

// AudioConfig contains the audio flags. Enabled defaults to true.
type AudioConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Muted   bool  `yaml:"muted,omitempty"`
}

// AssetsConfig locates asset files.
type AssetsConfig struct {
	Root string `yaml:"root,omitempty"`
}

// LayoutConfig contains layout settings.
type LayoutConfig struct {
	IterationCap int `yaml:"iteration_cap,omitempty"`
}

// Resolved contains the configuration with defaults applied.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	Width      int
	Height     int
	State      *State
}

// LoadOptional reads strata.yaml from dir if present.
func LoadOptional(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return &cfg, nil
}

func (f *File) validate() error {
	switch {
	case f.Window.Width < 0 || f.Window.Height < 0:
		return fmt.Errorf("window size %dx%d is negative", f.Window.Width, f.Window.Height)
	case f.Display.Zoom < 0:
		return fmt.Errorf("zoom %g is negative", f.Display.Zoom)
	case f.Display.FPS < 0:
		return fmt.Errorf("fps %d is negative", f.Display.FPS)
	case f.Layout.IterationCap < 0:
		return fmt.Errorf("iteration_cap %d is negative", f.Layout.IterationCap)
	}
	return nil
}

// Resolve loads strata.yaml (if present) from the project rooted at dir and
// fills in defaults. The window title defaults to the last element of the
// module path and relative asset roots are taken from dir.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Window.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	st := NewState()
	if cfg.Display.Zoom > 0 {
		st.Zoom = cfg.Display.Zoom
	}
	if cfg.Display.FPS > 0 {
		st.FPS = cfg.Display.FPS
	}
	st.DeltaTime = st.FixedDelta()
	if cfg.Audio.Enabled != nil {
		st.AudioEnabled = *cfg.Audio.Enabled
	}
	st.Muted = cfg.Audio.Muted
	if cfg.Layout.IterationCap > 0 {
		st.IterationCap = cfg.Layout.IterationCap
	}
	root := strings.TrimSpace(cfg.Assets.Root)
	if root == "" {
		root = "assets"
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(dir, root)
	}
	st.AssetRoot = root

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		Width:      orDefault(cfg.Window.Width, DefaultWidth),
		Height:     orDefault(cfg.Window.Height, DefaultHeight),
		State:      st,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRoot(dir)
}

func findRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "strata"
	}
	return base
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
