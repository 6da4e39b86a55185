package game

// SceneParams holds the table and ball geometry used by Setup.
type SceneParams struct {
	HalfWidth     float64 `json:"half_width" yaml:"half_width"`
	HalfHeight    float64 `json:"half_height" yaml:"half_height"`
	BallRadius    float64 `json:"ball_radius" yaml:"ball_radius"`
	RailThickness float64 `json:"rail_thickness" yaml:"rail_thickness"`
}

// DefaultSceneParams returns the practice table geometry.
func DefaultSceneParams() SceneParams {
	return SceneParams{
		HalfWidth:     TableHalfWidth,
		HalfHeight:    TableHalfHeight,
		BallRadius:    BallRadius,
		RailThickness: RailThickness,
	}
}

// RailSpec is one static boundary segment of the table.
type RailSpec struct {
	Name        string `json:"name" yaml:"name"`
	Position    Vec2   `json:"position" yaml:"position"`
	HalfExtents Vec2   `json:"half_extents" yaml:"half_extents"`
}

// Size returns the full width and height of the rail, used as the visual scale.
func (r RailSpec) Size() Vec2 {
	return r.HalfExtents.Times(2)
}

// Rails returns the four rails centred on the table edges. Top and bottom
// span the full table width plus one thickness so the corners close.
func Rails(p SceneParams) []RailSpec {
	t := p.RailThickness / 2
	long := NewVec2(p.HalfWidth+t, t)
	short := NewVec2(t, p.HalfHeight+t)

	return []RailSpec{
		{Name: "top", Position: NewVec2(0, p.HalfHeight), HalfExtents: long},
		{Name: "bottom", Position: NewVec2(0, -p.HalfHeight), HalfExtents: long},
		{Name: "left", Position: NewVec2(-p.HalfWidth, 0), HalfExtents: short},
		{Name: "right", Position: NewVec2(p.HalfWidth, 0), HalfExtents: short},
	}
}

// CuePosition is the cue ball start, left of centre on the long axis.
func CuePosition(p SceneParams) Vec2 {
	return NewVec2(-p.HalfWidth/2, 0)
}

// RackOrigin is the apex of the rack, right of centre on the long axis.
func RackOrigin(p SceneParams) Vec2 {
	return NewVec2(p.HalfWidth/2, 0)
}
