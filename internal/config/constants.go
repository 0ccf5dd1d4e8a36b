package config

import "time"

// Field dimensions. Bodies wrap around once they leave the field by more
// than Margin.
const (
	FieldWidth  = 600
	FieldHeight = 600
	Margin      = 100
)

// Simulation defaults.
const (
	DefaultNbTested      = 100
	DefaultTickInterval  = 30 * time.Millisecond
	DefaultRenderSamples = 400
	DefaultMaskSize      = 64
)

// Client rendering
const (
	ClientTargetFPS       = 30
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Max render resolution in terminal cells; larger terminals are centered.
const (
	MaxRenderCols = 160
	MaxRenderRows = 80
)
