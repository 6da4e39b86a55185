package game

// BodyKind is the rigid-body kind handed to the physics collaborator.
type BodyKind string

const (
	BodyStatic  BodyKind = "STATIC"
	BodyDynamic BodyKind = "DYNAMIC"
)

// ShapeKind is the collider shape.
type ShapeKind string

const (
	ShapeCircle    ShapeKind = "CIRCLE"
	ShapeRectangle ShapeKind = "RECTANGLE"
)

// BallRole distinguishes the cue ball and the eight ball. The eight ball only
// differs visually.
type BallRole string

const (
	RoleCue     BallRole = "cue"
	RoleRegular BallRole = "regular"
	RoleEight   BallRole = "eight"
)

// Transform positions an entity. Scale is the visual size of the unit quad or
// disc the viewer draws.
type Transform struct {
	Translation Vec2 `json:"translation"`
	Scale       Vec2 `json:"scale"`
}

// RigidBody links an entity to a body owned by the physics world.
// Handle is zero until the physics world registers the body.
type RigidBody struct {
	Kind   BodyKind
	Handle int
}

// Collider describes the collision shape. Radius is used for circles,
// HalfExtents for rectangles.
type Collider struct {
	Shape       ShapeKind
	Radius      float64
	HalfExtents Vec2
}

// LinearVelocity mirrors the body velocity. Systems may add to it during the
// update phase; the physics sync pushes it into the solver before stepping.
type LinearVelocity struct {
	Vec2
}

// Sprite is the flat colour used by the viewer.
type Sprite struct {
	Color string
}

// Ball carries the rack index and role of a ball entity.
type Ball struct {
	ID   int
	Role BallRole
}

// CueBall tags the entity that keyboard input drives.
type CueBall struct{}

// Rail tags a static boundary segment.
type Rail struct {
	Name string
}

const (
	ColorCue   = "#f5f5f0"
	ColorBall  = "#d43f3a"
	ColorEight = "#111111"
	ColorRail  = "#5b3a1e"
	ColorText  = "#ff6347" // tomato
)
