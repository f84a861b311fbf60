package yabai

import (
	"fmt"
	"strings"
)

// Command is one operation understood by the daemon's message interface.
//
// The set of implementations is closed; use Raw for anything not modeled here.
type Command interface {
	fmt.Stringer
	command()
}

// FocusSpace focuses a space: `space --focus <option>`.
type FocusSpace struct {
	Option FocusSpaceOption
}

// RotateSpace rotates the focused space's tree: `space --rotate <deg>`.
type RotateSpace struct {
	Rotation Rotation
}

// BalanceSpace resets split ratios on the focused space.
type BalanceSpace struct{}

// MirrorSpace flips the focused space's tree along an axis.
type MirrorSpace struct {
	Axis Axis
}

// SetSpaceLayout changes the focused space's layout.
type SetSpaceLayout struct {
	Layout Layout
}

// MoveActiveWindowToSpace sends the focused window to a space.
type MoveActiveWindowToSpace struct {
	Space uint32
}

// MoveActiveWindowToDisplay sends the focused window to a display.
type MoveActiveWindowToDisplay struct {
	Display uint32
}

// FocusWindow focuses a window by id.
type FocusWindow struct {
	ID uint32
}

// FocusWindowDirection focuses the neighbouring window.
type FocusWindowDirection struct {
	Direction Direction
}

// SwapWindowDirection swaps the focused window with its neighbour.
type SwapWindowDirection struct {
	Direction Direction
}

// WarpWindowDirection re-inserts the focused window next to its neighbour.
type WarpWindowDirection struct {
	Direction Direction
}

type ToggleWindowFloating struct{}

type ToggleWindowSticky struct{}

type ToggleZoomFullscreen struct{}

// DisplaysQuery asks for every display as a JSON array, or only the focused
// display as a single object.
type DisplaysQuery struct {
	Focused bool
}

// SpacesQuery asks for every space, or only the focused one.
type SpacesQuery struct {
	Focused bool
}

// WindowsQuery asks for every window, or only the focused one.
type WindowsQuery struct {
	Focused bool
}

// Raw is free-form message text for daemon commands without a typed variant.
type Raw string

func (c FocusSpace) String() string { return "space --focus " + c.Option.String() }
func (c RotateSpace) String() string { return "space --rotate " + c.Rotation.String() }
func (BalanceSpace) String() string { return "space --balance" }
func (c MirrorSpace) String() string { return "space --mirror " + c.Axis.String() }
func (c SetSpaceLayout) String() string { return "space --layout " + c.Layout.String() }
func (c MoveActiveWindowToSpace) String() string { return fmt.Sprintf("window --space %d", c.Space) }
func (c MoveActiveWindowToDisplay) String() string { return fmt.Sprintf("window --display %d", c.Display) }
func (c FocusWindow) String() string { return fmt.Sprintf("window --focus %d", c.ID) }
func (c FocusWindowDirection) String() string { return "window --focus " + c.Direction.String() }
func (c SwapWindowDirection) String() string { return "window --swap " + c.Direction.String() }
func (c WarpWindowDirection) String() string { return "window --warp " + c.Direction.String() }
func (ToggleWindowFloating) String() string { return "window --toggle float" }
func (ToggleWindowSticky) String() string { return "window --toggle sticky" }
func (ToggleZoomFullscreen) String() string { return "window --toggle zoom-fullscreen" }
func (c DisplaysQuery) String() string {
	return queryString("displays", "display", c.Focused)
}

func (c SpacesQuery) String() string {
	return queryString("spaces", "space", c.Focused)
}

func (c WindowsQuery) String() string {
	return queryString("windows", "window", c.Focused)
}

func queryString(domain, selector string, focused bool) string {
	if focused {
		return "query --" + domain + " --" + selector
	}
	return "query --" + domain
}

func (c Raw) String() string { return strings.TrimSpace(string(c)) }

func (FocusSpace) command() {}
func (RotateSpace) command() {}
func (BalanceSpace) command() {}
func (MirrorSpace) command() {}
func (SetSpaceLayout) command() {}
func (MoveActiveWindowToSpace) command() {}
func (MoveActiveWindowToDisplay) command() {}
func (FocusWindow) command() {}
func (FocusWindowDirection) command() {}
func (SwapWindowDirection) command() {}
func (WarpWindowDirection) command() {}
func (ToggleWindowFloating) command() {}
func (ToggleWindowSticky) command() {}
func (ToggleZoomFullscreen) command() {}
func (DisplaysQuery) command() {}
func (SpacesQuery) command() {}
func (WindowsQuery) command() {}
func (Raw) command() {}
