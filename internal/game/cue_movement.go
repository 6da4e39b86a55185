package game

import (
	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
)

var (
	upKeys    = []KeyCode{KeyW, ArrowUp}
	downKeys  = []KeyCode{KeyS, ArrowDown}
	leftKeys  = []KeyCode{KeyA, ArrowLeft}
	rightKeys = []KeyCode{KeyD, ArrowRight}
)

// CueVelocityDelta returns the velocity change for one tick of dt seconds
// given the held direction keys. Directions combine additively and the
// result is not clamped.
func CueVelocityDelta(keys *ButtonInput, dt float64) Vec2 {
	var d Vec2
	if keys.AnyPressed(upKeys...) {
		d.Y += UpRate * dt
	}
	if keys.AnyPressed(downKeys...) {
		d.Y -= DownRate * dt
	}
	if keys.AnyPressed(leftKeys...) {
		d.X -= LeftRate * dt
	}
	if keys.AnyPressed(rightKeys...) {
		d.X += RightRate * dt
	}
	return d
}

// MoveCueBall adds the input velocity delta to every entity tagged CueBall.
func MoveCueBall(world *ecs.World, keys *ButtonInput, dt float64) {
	delta := CueVelocityDelta(keys, dt)
	if delta.IsZero() {
		return
	}

	filter := generic.NewFilter1[LinearVelocity]().With(generic.T[CueBall]())
	query := filter.Query(world)
	for query.Next() {
		vel := query.Get()
		vel.Vec2 = vel.Vec2.Plus(delta)
	}
}
