package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/playmatatu/billiards/internal/game"
)

// layout is the printable scene geometry.
type layout struct {
	Table   game.SceneParams                   `json:"table" yaml:"table"`
	Spacing float64                            `json:"spacing" yaml:"spacing"`
	Rails   []game.RailSpec                    `json:"rails" yaml:"rails"`
	Cue     game.Vec2                          `json:"cue" yaml:"cue"`
	Rack    [game.NumObjectBalls]game.RackSlot `json:"rack" yaml:"rack"`
}

func rackCmd() *cobra.Command {
	var (
		sceneFile string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "rack",
		Short: "Print the rails, cue ball and rack positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(sceneFile)
			if err != nil {
				return err
			}
			p := cfg.Scene
			out := layout{
				Table:   p,
				Spacing: game.RackSpacing(p.BallRadius),
				Rails:   game.Rails(p),
				Cue:     game.CuePosition(p),
				Rack:    game.RackLayout(game.RackOrigin(p), p.BallRadius),
			}

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				defer enc.Close()
				return enc.Encode(out)
			default:
				return fmt.Errorf("unknown format %q (json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&sceneFile, "scene", "", "YAML scene file (overrides SCENE_FILE)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: json or yaml")
	return cmd
}
