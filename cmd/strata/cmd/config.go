package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/strata/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration of the current project as strata.yaml,
with every default filled in.

The project root is the nearest directory above the working directory
that contains go.mod. A missing strata.yaml is not an error.`,
		Usage: "strata config",
		Run:   runConfig,
	})
}

// resolvedFile is the printable form of a config.Resolved.
type resolvedFile struct {
	Module string      `yaml:"module"`
	File   config.File `yaml:",inline"`
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	res, err := config.Resolve(root)
	if err != nil {
		return err
	}
	enabled := res.State.AudioEnabled
	out := resolvedFile{
		Module: res.ModulePath,
		File: config.File{
			Window:  config.WindowConfig{Title: res.Title, Width: res.Width, Height: res.Height},
			Display: config.DisplayConfig{Zoom: res.State.Zoom, FPS: res.State.FPS},
			Audio:   config.AudioConfig{Enabled: &enabled, Muted: res.State.Muted},
			Assets:  config.AssetsConfig{Root: res.State.AssetRoot},
			Layout:  config.LayoutConfig{IterationCap: res.State.IterationCap},
		},
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}
