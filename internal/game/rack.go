package game

// RackSlot is one object ball position in the rack.
type RackSlot struct {
	Index    int      `json:"index" yaml:"index"`
	Row      int      `json:"row" yaml:"row"` // 1-indexed
	Position Vec2     `json:"position" yaml:"position"`
	Role     BallRole `json:"role" yaml:"role"`
}

// RackLayout arranges the object balls in a five-row triangle starting at
// origin. Row r holds r balls; rows step along x by spacing and balls inside a
// row are spread symmetrically along y by spacing. Slots are flattened row by
// row, so index 4 is the centre of row 3 and carries the eight ball.
func RackLayout(origin Vec2, radius float64) [NumObjectBalls]RackSlot {
	var slots [NumObjectBalls]RackSlot

	spacing := RackSpacing(radius)
	idx := 0
	for row := 1; row <= RackRows; row++ {
		x := origin.X + float64(row-1)*spacing
		for j := 0; j < row; j++ {
			y := origin.Y + (float64(j)-float64(row-1)/2)*spacing

			role := RoleRegular
			if idx == EightBallIndex {
				role = RoleEight
			}
			slots[idx] = RackSlot{
				Index:    idx,
				Row:      row,
				Position: NewVec2(x, y),
				Role:     role,
			}
			idx++
		}
	}

	return slots
}

// RackSpacing is the centre-to-centre offset used by RackLayout.
func RackSpacing(radius float64) float64 {
	return RackSpacingFactor * radius
}

// RowCounts returns how many slots ended up in each row.
func RowCounts(slots [NumObjectBalls]RackSlot) [RackRows]int {
	var counts [RackRows]int
	for _, s := range slots {
		counts[s.Row-1]++
	}
	return counts
}
