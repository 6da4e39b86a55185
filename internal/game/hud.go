package game

import (
	"fmt"

	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
)

// Text is an on-screen text element anchored at the top-left corner, offset
// by Left/Top pixels.
type Text struct {
	Value    string  `json:"value"`
	Color    string  `json:"color"`
	FontSize float64 `json:"font_size"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
}

// FpsText tags the text element showing the frame rate.
type FpsText struct{}

const fpsPrefix = "FPS: "

// SpawnFpsText creates the FPS readout.
func SpawnFpsText(world *ecs.World) ecs.Entity {
	m := generic.NewMap2[Text, FpsText](world)
	return m.NewWith(
		&Text{Value: fpsPrefix, Color: ColorText, FontSize: 20, Left: 5, Top: 5},
		&FpsText{},
	)
}

// FormatFPS renders the readout for a frame rate.
func FormatFPS(fps float64) string {
	return fmt.Sprintf("%s%.2f", fpsPrefix, fps)
}

// UpdateFpsText writes the smoothed FPS into every FpsText element. If the
// diagnostic is missing or has no samples the text is left unchanged.
func UpdateFpsText(world *ecs.World, diag *Diagnostics) {
	fps, ok := diag.Get(DiagnosticFPS)
	if !ok {
		return
	}
	value, ok := fps.Smoothed()
	if !ok {
		return
	}

	filter := generic.NewFilter1[Text]().With(generic.T[FpsText]())
	query := filter.Query(world)
	for query.Next() {
		query.Get().Value = FormatFPS(value)
	}
}

// HUDText returns the first FpsText value, or "" if none exists.
func HUDText(world *ecs.World) string {
	filter := generic.NewFilter1[Text]().With(generic.T[FpsText]())
	query := filter.Query(world)
	text := ""
	for query.Next() {
		if text == "" {
			text = query.Get().Value
		}
	}
	return text
}
