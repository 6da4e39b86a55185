package game

import "time"

// Table and ball constants for the practice table.
// World units are y-up; the table's long axis is x.

const (
	BallRadius        = 10.0
	RackSpacingFactor = 2.05 // spacing = 2.05 * radius keeps racked balls apart
	RackRows          = 5
	NumObjectBalls    = 15 // 1+2+3+4+5
	EightBallIndex    = 4  // centre of row 3, flattened row-major

	TableHalfWidth  = 400.0
	TableHalfHeight = 200.0
	RailThickness   = 10.0

	// Cue ball acceleration per held direction, units/s^2.
	// Up is stronger to work against gravity pulling the ball down.
	UpRate    = 2500.0
	DownRate  = 500.0
	LeftRate  = 500.0
	RightRate = 500.0
)

// StepDuration is the single-step advance applied while paused.
const StepDuration = time.Second / 60
