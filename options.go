package yabai

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidOption is returned by the Parse helpers for unrecognized text.
var ErrInvalidOption = errors.New("invalid option")

// FocusSpaceOption selects the target of `space --focus`. The zero value
// focuses the most recent space.
type FocusSpaceOption struct {
	name  string
	index uint32
}

var (
	SpaceNext   = FocusSpaceOption{name: "next"}
	SpacePrev   = FocusSpaceOption{name: "prev"}
	SpaceFirst  = FocusSpaceOption{name: "first"}
	SpaceLast   = FocusSpaceOption{name: "last"}
	SpaceRecent = FocusSpaceOption{name: "recent"}
)

var namedSpaceOptions = []FocusSpaceOption{SpaceNext, SpacePrev, SpaceFirst, SpaceLast, SpaceRecent}

// SpaceIndex targets a mission-control space by its 1-based index.
func SpaceIndex(index uint32) FocusSpaceOption {
	return FocusSpaceOption{index: index}
}

func (o FocusSpaceOption) String() string {
	if o.name != "" {
		return o.name
	}
	if o.index == 0 {
		return SpaceRecent.name
	}
	return strconv.FormatUint(uint64(o.index), 10)
}

// ParseFocusSpaceOption accepts a selector name or a positive space index.
func ParseFocusSpaceOption(s string) (FocusSpaceOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, opt := range namedSpaceOptions {
		if opt.name == s {
			return opt, nil
		}
	}

	index, err := parseIndex(s)
	if err != nil {
		return FocusSpaceOption{}, fmt.Errorf("%w: space selector %q", ErrInvalidOption, s)
	}
	return SpaceIndex(index), nil
}

// Rotation is a clockwise tree rotation in degrees.
type Rotation int

const (
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

func (r Rotation) String() string {
	return strconv.Itoa(int(r))
}

// ParseRotation accepts 90, 180 or 270.
func ParseRotation(s string) (Rotation, error) {
	switch r := strings.TrimSpace(s); r {
	case "90":
		return Rotate90, nil
	case "180":
		return Rotate180, nil
	case "270":
		return Rotate270, nil
	default:
		return 0, fmt.Errorf("%w: rotation %q", ErrInvalidOption, r)
	}
}

// Direction is a cardinal direction relative to the focused window.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

func (d Direction) String() string {
	return string(d)
}

// ParseDirection accepts north, south, east or west.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case North, South, East, West:
		return d, nil
	default:
		return "", fmt.Errorf("%w: direction %q", ErrInvalidOption, s)
	}
}

// Axis is the mirror axis for `space --mirror`.
type Axis string

const (
	AxisX Axis = "x-axis"
	AxisY Axis = "y-axis"
)

func (a Axis) String() string {
	return string(a)
}

// ParseAxis accepts x-axis or y-axis, and the short forms x and y.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "x-axis":
		return AxisX, nil
	case "y", "y-axis":
		return AxisY, nil
	default:
		return "", fmt.Errorf("%w: axis %q", ErrInvalidOption, s)
	}
}

// Layout is a space tiling layout.
type Layout string

const (
	LayoutBSP   Layout = "bsp"
	LayoutStack Layout = "stack"
	LayoutFloat Layout = "float"
)

func (l Layout) String() string {
	return string(l)
}

// ParseLayout accepts bsp, stack or float.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutBSP, LayoutStack, LayoutFloat:
		return l, nil
	default:
		return "", fmt.Errorf("%w: layout %q", ErrInvalidOption, s)
	}
}

// ParseIndex parses a positive 1-based space, display or window number.
func ParseIndex(s string) (uint32, error) {
	index, err := parseIndex(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrInvalidOption, s)
	}
	return index, nil
}

func parseIndex(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("index must be > 0")
	}
	return uint32(n), nil
}
