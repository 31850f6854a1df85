package gl

import (
	"math"
	"strconv"
)

// Value is a typed constant handed to binding layers.
type Value interface {
	String() string
	// Any returns the underlying Go value.
	Any() any
}

type (
	Bool   bool
	Int    int64
	Number float64
	String string
)

func (v Bool) String() string   { return strconv.FormatBool(bool(v)) }
func (v Bool) Any() any         { return bool(v) }
func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v Int) Any() any          { return int64(v) }
func (v Number) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Number) Any() any       { return float64(v) }
func (v String) String() string { return string(v) }
func (v String) Any() any       { return string(v) }

type Constant struct {
	Name  string
	Value Value
}

// Pen pattern masks, see Context.Pattern.
const (
	PatternSolid   uint32 = 0x00000000
	PatternChecker uint32 = 0x55AA55AA
	PatternLines   uint32 = 0xFF00FF00
)

// Constants lists the engine constants, in a stable order.
func Constants() []Constant {
	return []Constant{
		{"MAX_PALETTE_COLORS", Int(MaxPaletteColors)},
		{"TRANSPARENT_INDEX", Int(0)},
		{"Y_DOWN", Bool(true)},
		{"PI", Number(math.Pi)},
		{"TAU", Number(2 * math.Pi)},
		{"CLAMP_NONE", String(ClampNone.String())},
		{"CLAMP_EDGE", String(ClampEdge.String())},
		{"CLAMP_REPEAT", String(ClampRepeat.String())},
		{"PATTERN_SOLID", Int(PatternSolid)},
		{"PATTERN_CHECKER", Int(PatternChecker)},
		{"PATTERN_LINES", Int(PatternLines)},
	}
}
