package physics

import (
	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"

	"github.com/playmatatu/billiards/internal/game"
)

// Register creates physics bodies for every RigidBody entity that has no
// handle yet. Returns the number of bodies created.
func (w *World) Register(world *ecs.World) int {
	created := 0
	filter := generic.NewFilter3[game.RigidBody, game.Transform, game.Collider]()
	query := filter.Query(world)
	for query.Next() {
		rb, tr, col := query.Get()
		if rb.Handle != 0 {
			continue
		}
		switch {
		case rb.Kind == game.BodyStatic && col.Shape == game.ShapeRectangle:
			rb.Handle = w.AddStaticBox(tr.Translation, col.HalfExtents)
		case rb.Kind == game.BodyDynamic && col.Shape == game.ShapeCircle:
			rb.Handle = w.AddDynamicCircle(tr.Translation, col.Radius)
		default:
			continue
		}
		created++
	}
	return created
}

// PushVelocities copies LinearVelocity components into the solver.
func (w *World) PushVelocities(world *ecs.World) {
	filter := generic.NewFilter2[game.RigidBody, game.LinearVelocity]()
	query := filter.Query(world)
	for query.Next() {
		rb, vel := query.Get()
		if rb.Kind != game.BodyDynamic {
			continue
		}
		w.SetVelocity(rb.Handle, vel.Vec2)
	}
}

// PullState copies solver positions and velocities back into the registry.
func (w *World) PullState(world *ecs.World) {
	filter := generic.NewFilter3[game.RigidBody, game.Transform, game.LinearVelocity]()
	query := filter.Query(world)
	for query.Next() {
		rb, tr, vel := query.Get()
		if pos, ok := w.Position(rb.Handle); ok {
			tr.Translation = pos
		}
		if v, ok := w.Velocity(rb.Handle); ok {
			vel.Vec2 = v
		}
	}
}
