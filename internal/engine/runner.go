package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mlange-42/arche/ecs"
	"github.com/sirupsen/logrus"

	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/physics"
)

// Publisher receives snapshots from the tick loop. Publish is called on the
// loop goroutine and must not block.
type Publisher interface {
	Publish(snap game.Snapshot)
}

// ControlObserver receives pause, resume and step events. OnControl is
// called on the loop goroutine and must not block.
type ControlObserver interface {
	OnControl(ev game.ControlEvent)
}

// Options configures the tick loop.
type Options struct {
	TickRate      int
	SnapshotEvery int
	MaxFrameDelta time.Duration
	InputBuffer   int
	Scene         game.SceneParams
}

func DefaultOptions() Options {
	return Options{
		TickRate:      60,
		SnapshotEvery: 1,
		MaxFrameDelta: 250 * time.Millisecond,
		InputBuffer:   256,
		Scene:         game.DefaultSceneParams(),
	}
}

// Runner owns the entity registry, the physics world and the per-tick
// systems. Frame must only be called from one goroutine; Submit and Latest
// are safe from any goroutine.
type Runner struct {
	world   ecs.World
	scene   game.Scene
	physics *physics.World
	clock   *physics.Clock
	states  *game.States
	keys    *game.ButtonInput
	diag    *game.Diagnostics

	events     chan game.KeyEvent
	publishers []Publisher
	observers  []ControlObserver
	pending    []game.ControlKind

	frame  uint64
	opts   Options
	latest atomic.Pointer[game.Snapshot]
}

// NewRunner builds the scene and wires the clock to the pause state.
func NewRunner(opts Options, phys *physics.World) *Runner {
	def := DefaultOptions()
	if opts.TickRate <= 0 {
		opts.TickRate = def.TickRate
	}
	if opts.SnapshotEvery <= 0 {
		opts.SnapshotEvery = def.SnapshotEvery
	}
	if opts.MaxFrameDelta <= 0 {
		opts.MaxFrameDelta = def.MaxFrameDelta
	}
	if opts.InputBuffer <= 0 {
		opts.InputBuffer = def.InputBuffer
	}
	if opts.Scene == (game.SceneParams{}) {
		opts.Scene = def.Scene
	}

	r := &Runner{
		world:   ecs.NewWorld(),
		physics: phys,
		clock:   physics.NewClock(),
		states:  game.NewStates(),
		keys:    game.NewButtonInput(),
		diag:    game.NewFrameTimeDiagnostics(),
		events:  make(chan game.KeyEvent, opts.InputBuffer),
		opts:    opts,
	}

	game.BindClock(r.states, r.clock)
	r.states.OnEnter(game.StatePaused, func() { r.pending = append(r.pending, game.ControlPause) })
	r.states.OnExit(game.StatePaused, func() { r.pending = append(r.pending, game.ControlResume) })

	r.scene = game.Setup(&r.world, opts.Scene)
	created := r.physics.Register(&r.world)
	logrus.Infof("[ENGINE] Scene ready: %d rails, %d balls, %d bodies", len(r.scene.Rails), game.NumObjectBalls+1, created)

	r.storeSnapshot()
	return r
}

func (r *Runner) AddPublisher(p Publisher) {
	r.publishers = append(r.publishers, p)
}

func (r *Runner) AddObserver(o ControlObserver) {
	r.observers = append(r.observers, o)
}

// Submit queues a key event for the next frame. It drops the event and
// returns false when the buffer is full or the key is unknown.
func (r *Runner) Submit(ev game.KeyEvent) bool {
	if !game.IsKnownKey(ev.Key) {
		return false
	}
	select {
	case r.events <- ev:
		return true
	default:
		logrus.Warnf("[ENGINE] Input buffer full, dropping %s", ev.Key)
		return false
	}
}

// Frame runs one tick using real as the wall-clock frame time.
func (r *Runner) Frame(real time.Duration) {
	if real > r.opts.MaxFrameDelta {
		real = r.opts.MaxFrameDelta
	}
	if real < 0 {
		real = 0
	}

	r.drainInput()
	r.diag.RecordFrame(real)

	// Update systems
	game.UpdateFpsText(&r.world, r.diag)
	game.PauseButton(r.states, r.keys)
	if game.StepButton(r.states, r.clock, r.keys) {
		r.pending = append(r.pending, game.ControlStep)
	}
	game.MoveCueBall(&r.world, r.keys, real.Seconds())

	r.states.Apply()

	// Physics
	r.physics.Register(&r.world)
	r.physics.PushVelocities(&r.world)
	if d := r.clock.Tick(real); d > 0 {
		r.physics.Step(d)
	}
	r.physics.PullState(&r.world)

	r.keys.Clear()
	r.frame++
	r.emitControl()

	if r.frame%uint64(r.opts.SnapshotEvery) == 0 {
		snap := r.storeSnapshot()
		for _, p := range r.publishers {
			p.Publish(snap)
		}
	}
}

// Run ticks at the configured rate until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	interval := time.Second / time.Duration(r.opts.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logrus.Infof("[ENGINE] Tick loop started (%d Hz)", r.opts.TickRate)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("[ENGINE] Tick loop stopping after %d frames", r.frame)
			return
		case now := <-ticker.C:
			r.Frame(now.Sub(last))
			last = now
		}
	}
}

func (r *Runner) drainInput() {
	for {
		select {
		case ev := <-r.events:
			r.keys.Apply(ev)
		default:
			return
		}
	}
}

func (r *Runner) emitControl() {
	if len(r.pending) == 0 {
		return
	}
	elapsed := r.clock.Elapsed()
	for _, kind := range r.pending {
		ev := game.ControlEvent{Kind: kind, Frame: r.frame, Elapsed: elapsed}
		logrus.Debugf("[ENGINE] %s at frame %d (physics %s)", kind, r.frame, elapsed)
		for _, o := range r.observers {
			o.OnControl(ev)
		}
	}
	r.pending = r.pending[:0]
}

func (r *Runner) storeSnapshot() game.Snapshot {
	snap := game.TakeSnapshot(&r.world)
	snap.Frame = r.frame
	snap.State = r.states.Get()
	snap.PhysicsElapsed = r.clock.Elapsed().Seconds()
	snap.Table = r.opts.Scene
	snap.CreatedAt = time.Now()
	r.latest.Store(&snap)
	return snap
}

// Latest returns the most recent snapshot.
func (r *Runner) Latest() game.Snapshot {
	return *r.latest.Load()
}

func (r *Runner) State() game.AppState {
	return r.states.Get()
}

func (r *Runner) Clock() *physics.Clock {
	return r.clock
}

func (r *Runner) Diagnostics() *game.Diagnostics {
	return r.diag
}

func (r *Runner) Scene() game.Scene {
	return r.scene
}

// World exposes the registry for tests and tools. Not safe while Run is
// active on another goroutine.
func (r *Runner) World() *ecs.World {
	return &r.world
}

func (r *Runner) Frames() uint64 {
	return r.frame
}
