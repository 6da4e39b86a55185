package game

import (
	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
)

// Scene lists the entities spawned by Setup.
type Scene struct {
	Rails   []ecs.Entity
	Cue     ecs.Entity
	Objects [NumObjectBalls]ecs.Entity
	FpsText ecs.Entity
}

// Setup spawns the rails, the cue ball, the racked object balls and the FPS
// text element. Physics bodies are created later, when the physics world
// first syncs the registry.
func Setup(world *ecs.World, p SceneParams) Scene {
	var scene Scene

	railMap := generic.NewMap5[Transform, RigidBody, Collider, Sprite, Rail](world)
	for _, r := range Rails(p) {
		e := railMap.NewWith(
			&Transform{Translation: r.Position, Scale: r.Size()},
			&RigidBody{Kind: BodyStatic},
			&Collider{Shape: ShapeRectangle, HalfExtents: r.HalfExtents},
			&Sprite{Color: ColorRail},
			&Rail{Name: r.Name},
		)
		scene.Rails = append(scene.Rails, e)
	}

	diameter := NewVec2(2*p.BallRadius, 2*p.BallRadius)

	cueMap := generic.NewMap7[Transform, RigidBody, Collider, LinearVelocity, Sprite, Ball, CueBall](world)
	scene.Cue = cueMap.NewWith(
		&Transform{Translation: CuePosition(p), Scale: diameter},
		&RigidBody{Kind: BodyDynamic},
		&Collider{Shape: ShapeCircle, Radius: p.BallRadius},
		&LinearVelocity{},
		&Sprite{Color: ColorCue},
		&Ball{ID: 0, Role: RoleCue},
		&CueBall{},
	)

	ballMap := generic.NewMap6[Transform, RigidBody, Collider, LinearVelocity, Sprite, Ball](world)
	for i, slot := range RackLayout(RackOrigin(p), p.BallRadius) {
		color := ColorBall
		if slot.Role == RoleEight {
			color = ColorEight
		}
		scene.Objects[i] = ballMap.NewWith(
			&Transform{Translation: slot.Position, Scale: diameter},
			&RigidBody{Kind: BodyDynamic},
			&Collider{Shape: ShapeCircle, Radius: p.BallRadius},
			&LinearVelocity{},
			&Sprite{Color: color},
			&Ball{ID: slot.Index + 1, Role: slot.Role},
		)
	}

	scene.FpsText = SpawnFpsText(world)

	return scene
}
