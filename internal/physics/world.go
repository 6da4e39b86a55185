package physics

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/playmatatu/billiards/internal/game"
)

// Options configures the physics world.
type Options struct {
	Gravity        game.Vec2
	MaxSubstep     time.Duration
	BallMass       float64
	BallElasticity float64
	RailElasticity float64
	Friction       float64
}

// DefaultOptions uses standard gravity pointing down the y axis.
func DefaultOptions() Options {
	return Options{
		Gravity:        game.NewVec2(0, -9.81),
		MaxSubstep:     time.Second / 120,
		BallMass:       1,
		BallElasticity: 0.95,
		RailElasticity: 1,
		Friction:       0.1,
	}
}

// World owns the Chipmunk space and every rigid body of the table. Bodies are
// addressed by integer handles starting at 1.
type World struct {
	space  *cp.Space
	bodies map[int]*cp.Body
	nextID int
	opts   Options
}

func NewWorld(opts Options) *World {
	if opts.MaxSubstep <= 0 {
		opts.MaxSubstep = DefaultOptions().MaxSubstep
	}
	if opts.BallMass <= 0 {
		opts.BallMass = 1
	}

	space := cp.NewSpace()
	space.SetGravity(toCP(opts.Gravity))

	return &World{
		space:  space,
		bodies: make(map[int]*cp.Body),
		opts:   opts,
	}
}

// AddStaticBox adds an immovable rectangle centred at pos.
func (w *World) AddStaticBox(pos, halfExtents game.Vec2) int {
	body := cp.NewStaticBody()
	body.SetPosition(toCP(pos))
	w.space.AddBody(body)

	shape := w.space.AddShape(cp.NewBox(body, 2*halfExtents.X, 2*halfExtents.Y, 0))
	shape.SetElasticity(w.opts.RailElasticity)
	shape.SetFriction(w.opts.Friction)

	return w.register(body)
}

// AddDynamicCircle adds a movable disc centred at pos.
func (w *World) AddDynamicCircle(pos game.Vec2, radius float64) int {
	mass := w.opts.BallMass
	moment := cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	body := w.space.AddBody(cp.NewBody(mass, moment))
	body.SetPosition(toCP(pos))

	shape := w.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetElasticity(w.opts.BallElasticity)
	shape.SetFriction(w.opts.Friction)

	return w.register(body)
}

func (w *World) register(body *cp.Body) int {
	w.nextID++
	w.bodies[w.nextID] = body
	return w.nextID
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

func (w *World) Position(id int) (game.Vec2, bool) {
	body, ok := w.bodies[id]
	if !ok {
		return game.Vec2{}, false
	}
	return fromCP(body.Position()), true
}

func (w *World) Velocity(id int) (game.Vec2, bool) {
	body, ok := w.bodies[id]
	if !ok {
		return game.Vec2{}, false
	}
	return fromCP(body.Velocity()), true
}

// SetVelocity overwrites the linear velocity of a body. Unknown handles are
// ignored.
func (w *World) SetVelocity(id int, v game.Vec2) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.SetVelocity(v.X, v.Y)
}

// Step advances the simulation by dt, split into substeps no longer than
// MaxSubstep. Returns the number of substeps taken.
func (w *World) Step(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	steps := int((dt + w.opts.MaxSubstep - 1) / w.opts.MaxSubstep)
	h := dt.Seconds() / float64(steps)
	for i := 0; i < steps; i++ {
		w.space.Step(h)
	}
	return steps
}

func toCP(v game.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) game.Vec2 {
	return game.NewVec2(v.X, v.Y)
}
