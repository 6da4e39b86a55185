package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRailsCoverEdges(t *testing.T) {
	p := DefaultSceneParams()
	rails := Rails(p)
	require.Len(t, rails, 4)

	byName := map[string]RailSpec{}
	for _, r := range rails {
		byName[r.Name] = r
	}

	top := byName["top"]
	assert.Equal(t, NewVec2(0, p.HalfHeight), top.Position)
	assert.GreaterOrEqual(t, top.HalfExtents.X, p.HalfWidth)
	assert.Equal(t, p.RailThickness/2, top.HalfExtents.Y)

	bottom := byName["bottom"]
	assert.Equal(t, NewVec2(0, -p.HalfHeight), bottom.Position)

	left := byName["left"]
	assert.Equal(t, NewVec2(-p.HalfWidth, 0), left.Position)
	assert.GreaterOrEqual(t, left.HalfExtents.Y, p.HalfHeight)
	assert.Equal(t, p.RailThickness/2, left.HalfExtents.X)

	right := byName["right"]
	assert.Equal(t, NewVec2(p.HalfWidth, 0), right.Position)
	assert.Equal(t, NewVec2(2*right.HalfExtents.X, 2*right.HalfExtents.Y), right.Size())
}

func TestCueAndRackSitOnOppositeSides(t *testing.T) {
	p := DefaultSceneParams()
	assert.Less(t, CuePosition(p).X, 0.0)
	assert.Greater(t, RackOrigin(p).X, 0.0)
	assert.Equal(t, 0.0, CuePosition(p).Y)

	// Every racked ball stays inside the rails.
	for _, s := range RackLayout(RackOrigin(p), p.BallRadius) {
		assert.Less(t, s.Position.X+p.BallRadius, p.HalfWidth-p.RailThickness/2)
		assert.Less(t, s.Position.Y+p.BallRadius, p.HalfHeight-p.RailThickness/2)
		assert.Greater(t, s.Position.Y-p.BallRadius, -p.HalfHeight+p.RailThickness/2)
	}
}
