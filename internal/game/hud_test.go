package game

import (
	"testing"
	"time"

	"github.com/mlange-42/arche/ecs"
	"github.com/stretchr/testify/assert"
)

func TestFormatFPS(t *testing.T) {
	assert.Equal(t, "FPS: 59.94", FormatFPS(59.9412))
	assert.Equal(t, "FPS: 60.00", FormatFPS(59.999))
	assert.Equal(t, "FPS: 0.50", FormatFPS(0.5))
}

func TestUpdateFpsTextWritesSmoothedValue(t *testing.T) {
	world := ecs.NewWorld()
	SpawnFpsText(&world)
	diag := NewFrameTimeDiagnostics()

	UpdateFpsText(&world, diag)
	assert.Equal(t, "FPS: ", HUDText(&world), "no samples leaves text unchanged")

	diag.RecordFrame(time.Second / 50)
	UpdateFpsText(&world, diag)
	assert.Equal(t, "FPS: 50.00", HUDText(&world))
}

func TestUpdateFpsTextWithoutDiagnostic(t *testing.T) {
	world := ecs.NewWorld()
	SpawnFpsText(&world)

	// A store without an FPS entry: the text keeps its last value.
	UpdateFpsText(&world, NewDiagnostics())
	assert.Equal(t, "FPS: ", HUDText(&world))
}
