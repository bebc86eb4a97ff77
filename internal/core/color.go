package core

// Color is the foreground color of a screen cell.
// The renderer maps each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorActor
	ColorObstacle
	ColorObstacleCap
	ColorExplosion
	ColorArena
	ColorHUD
	ColorPanel
	ColorButton
)
