package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/strata/pkg/config"
	"github.com/go-drift/strata/pkg/render/ebitenr"
	"github.com/go-drift/strata/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Open the demo view in a window",
		Long: `Open a window showing the widget demo: labels, buttons, a toggle,
a slider and a text field in a scrolling list, plus a dialog layer.

Window size, zoom and frame rate come from strata.yaml when the working
directory is inside a Go module; defaults are used otherwise.

Keys:
  arrows, Tab      Move focus
  Enter, Space     Activate the focused widget
  Escape           Close the dialog

Flags:
  --zoom N         Override the window zoom`,
		Usage: "strata run [--zoom N]",
		Run:   runRun,
	})
}

type runOptions struct {
	zoom float64
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	res, err := resolveOrDefault()
	if err != nil {
		return err
	}
	if opts.zoom > 0 {
		res.State.Zoom = opts.zoom
	}

	v := view.New(res.State, float64(res.Width), float64(res.Height))
	if err := buildDemo(v); err != nil {
		return err
	}
	game := ebitenr.NewGame(v, res.State.Zoom)
	return ebitenr.Run(game, res.Title, res.Width, res.Height)
}

func parseRunArgs(args []string) (runOptions, error) {
	opts := runOptions{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--zoom":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--zoom requires a value")
			}
			i++
			arg = "--zoom=" + args[i]
			fallthrough
		case strings.HasPrefix(arg, "--zoom="):
			z, err := strconv.ParseFloat(strings.TrimPrefix(arg, "--zoom="), 64)
			if err != nil || z <= 0 {
				return opts, fmt.Errorf("invalid zoom %q", strings.TrimPrefix(arg, "--zoom="))
			}
			opts.zoom = z
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

// resolveOrDefault resolves the project configuration, falling back to the
// defaults outside a Go module.
func resolveOrDefault() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return &config.Resolved{
			Title:  "strata",
			Width:  config.DefaultWidth,
			Height: config.DefaultHeight,
			State:  config.NewState(),
		}, nil
	}
	return config.Resolve(root)
}
