package game

import (
	"sort"
	"time"

	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
)

// BallSnapshot is a ball's position and velocity for serialization.
type BallSnapshot struct {
	ID       int      `json:"id"`
	Role     BallRole `json:"role"`
	Color    string   `json:"color"`
	Position Vec2     `json:"position"`
	Velocity Vec2     `json:"velocity"`
	Radius   float64  `json:"radius"`
}

// RailSnapshot is a rail rectangle for serialization.
type RailSnapshot struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Min   Vec2   `json:"min"`
	Max   Vec2   `json:"max"`
}

// Snapshot is the full table state sent to viewers once per broadcast.
type Snapshot struct {
	Frame          uint64         `json:"frame"`
	State          AppState       `json:"state"`
	PhysicsElapsed float64        `json:"physics_elapsed"` // seconds
	HUD            Text           `json:"hud"`
	Table          SceneParams    `json:"table"`
	Balls          []BallSnapshot `json:"balls"`
	Rails          []RailSnapshot `json:"rails"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TakeSnapshot reads balls, rails and the FPS text out of the registry.
// Balls are ordered by ID, the cue ball first.
func TakeSnapshot(world *ecs.World) Snapshot {
	var snap Snapshot

	balls := generic.NewFilter5[Transform, LinearVelocity, Collider, Sprite, Ball]()
	bq := balls.Query(world)
	for bq.Next() {
		tr, vel, col, spr, ball := bq.Get()
		snap.Balls = append(snap.Balls, BallSnapshot{
			ID:       ball.ID,
			Role:     ball.Role,
			Color:    spr.Color,
			Position: tr.Translation,
			Velocity: vel.Vec2,
			Radius:   col.Radius,
		})
	}
	sort.Slice(snap.Balls, func(i, j int) bool { return snap.Balls[i].ID < snap.Balls[j].ID })

	rails := generic.NewFilter4[Transform, Collider, Sprite, Rail]()
	rq := rails.Query(world)
	for rq.Next() {
		tr, col, spr, rail := rq.Get()
		snap.Rails = append(snap.Rails, RailSnapshot{
			Name:  rail.Name,
			Color: spr.Color,
			Min:   tr.Translation.Minus(col.HalfExtents),
			Max:   tr.Translation.Plus(col.HalfExtents),
		})
	}
	sort.Slice(snap.Rails, func(i, j int) bool { return snap.Rails[i].Name < snap.Rails[j].Name })

	texts := generic.NewFilter1[Text]().With(generic.T[FpsText]())
	tq := texts.Query(world)
	for tq.Next() {
		snap.HUD = *tq.Get()
	}

	return snap
}
