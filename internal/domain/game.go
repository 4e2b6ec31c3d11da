package domain

import "time"

// ShapeKind - kind of hidden shape
type ShapeKind string

const (
	ShapeCircle   ShapeKind = "circle"
	ShapeSquare   ShapeKind = "square"
	ShapeTriangle ShapeKind = "triangle"
	ShapeStar     ShapeKind = "star"
)

// ShapeColor - fixed palette for targets and decoys
type ShapeColor string

const (
	ColorRed    ShapeColor = "red"
	ColorBlue   ShapeColor = "blue"
	ColorGreen  ShapeColor = "green"
	ColorYellow ShapeColor = "yellow"
	ColorOrange ShapeColor = "orange"
	ColorPurple ShapeColor = "purple"
)

// Default canvas dimensions used when a creator does not supply any.
const (
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 400
)

// ValidShapeKind reports whether k is one of the supported shape kinds.
func ValidShapeKind(k ShapeKind) bool {
	switch k {
	case ShapeCircle, ShapeSquare, ShapeTriangle, ShapeStar:
		return true
	}
	return false
}

// ValidShapeColor reports whether c is in the palette.
func ValidShapeColor(c ShapeColor) bool {
	switch c {
	case ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorOrange, ColorPurple:
		return true
	}
	return false
}

// TargetShape is the hidden shape a creator placed on the canvas.
type TargetShape struct {
	Kind  ShapeKind  `json:"kind"`
	Color ShapeColor `json:"color"`
	X     int        `json:"x"`
	Y     int        `json:"y"`
}

// InBounds reports whether the target lies inside the given canvas.
func (t TargetShape) InBounds(width, height int) bool {
	return t.X >= 0 && t.X < width && t.Y >= 0 && t.Y < height
}

// DecoyShape is a background shape drawn to camouflage the target.
type DecoyShape struct {
	Kind    ShapeKind  `json:"kind"`
	Color   ShapeColor `json:"color"`
	X       int        `json:"x"`
	Y       int        `json:"y"`
	Size    int        `json:"size"`
	Opacity float64    `json:"opacity"`
}

// CanvasConfig describes the play field. Immutable once the game is created.
type CanvasConfig struct {
	Width            int          `json:"width"`
	Height           int          `json:"height"`
	BackgroundShapes []DecoyShape `json:"backgroundShapes"`
}

// GameRecord is the persisted state of one shape-finding game.
// Everything except Revealed is immutable after creation; Revealed only
// ever flips false -> true.
type GameRecord struct {
	ID        string       `json:"id"`
	ShortID   string       `json:"shortId"`
	CreatedBy string       `json:"createdBy"`
	IsHub     bool         `json:"isHub,omitempty"`
	Target    TargetShape  `json:"target"`
	Canvas    CanvasConfig `json:"canvas"`
	Revealed  bool         `json:"revealed"`
	CreatedAt time.Time    `json:"createdAt"`
}
