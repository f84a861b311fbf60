// Package cli maps yabaictl argv onto typed daemon commands and renders replies.
package cli

import (
	"fmt"

	"github.com/rbright/yabai"
)

// Action is one typed subcommand: its usage line, arity, and argv-to-command builder.
type Action struct {
	Name  string
	Usage string
	Short string
	Args  int
	Build func(args []string) (yabai.Command, error)
}

// Actions lists every typed subcommand in help order.
func Actions() []Action {
	return []Action{
		{
			Name:  "focus-space",
			Usage: "focus-space <next|prev|first|last|recent|INDEX>",
			Short: "Focus a space",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				opt, err := yabai.ParseFocusSpaceOption(args[0])
				if err != nil {
					return nil, err
				}
				return yabai.FocusSpace{Option: opt}, nil
			},
		},
		{
			Name:  "rotate-space",
			Usage: "rotate-space <90|180|270>",
			Short: "Rotate the focused space's window tree",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				rotation, err := yabai.ParseRotation(args[0])
				if err != nil {
					return nil, err
				}
				return yabai.RotateSpace{Rotation: rotation}, nil
			},
		},
		{
			Name:  "balance-space",
			Usage: "balance-space",
			Short: "Reset split ratios on the focused space",
			Build: constant(yabai.BalanceSpace{}),
		},
		{
			Name:  "mirror-space",
			Usage: "mirror-space <x-axis|y-axis>",
			Short: "Mirror the focused space's window tree",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				axis, err := yabai.ParseAxis(args[0])
				if err != nil {
					return nil, err
				}
				return yabai.MirrorSpace{Axis: axis}, nil
			},
		},
		{
			Name:  "layout",
			Usage: "layout <bsp|stack|float>",
			Short: "Set the focused space's layout",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				layout, err := yabai.ParseLayout(args[0])
				if err != nil {
					return nil, err
				}
				return yabai.SetSpaceLayout{Layout: layout}, nil
			},
		},
		{
			Name:  "focus-window",
			Usage: "focus-window <north|south|east|west|WINDOW_ID>",
			Short: "Focus a neighbouring window or a window by id",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				if dir, err := yabai.ParseDirection(args[0]); err == nil {
					return yabai.FocusWindowDirection{Direction: dir}, nil
				}
				id, err := yabai.ParseIndex(args[0])
				if err != nil {
					return nil, fmt.Errorf("%w: expected a direction or window id, got %q", yabai.ErrInvalidOption, args[0])
				}
				return yabai.FocusWindow{ID: id}, nil
			},
		},
		{
			Name:  "swap-window",
			Usage: "swap-window <north|south|east|west>",
			Short: "Swap the focused window with its neighbour",
			Args:  1,
			Build: direction(func(d yabai.Direction) yabai.Command { return yabai.SwapWindowDirection{Direction: d} }),
		},
		{
			Name:  "warp-window",
			Usage: "warp-window <north|south|east|west>",
			Short: "Re-insert the focused window beside its neighbour",
			Args:  1,
			Build: direction(func(d yabai.Direction) yabai.Command { return yabai.WarpWindowDirection{Direction: d} }),
		},
		{
			Name:  "window-to-space",
			Usage: "window-to-space <INDEX>",
			Short: "Send the focused window to a space",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				space, err := yabai.ParseIndex(args[0])
				if err != nil {
					return nil, err
				}
				return yabai.MoveActiveWindowToSpace{Space: space}, nil
			},
		},
		{
			Name:  "window-to-display",
			Usage: "window-to-display <INDEX>",
			Short: "Send the focused window to a display",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				display, err := yabai.ParseIndex(args[0])
				if err != nil {
					return nil, err
				}
				return yabai.MoveActiveWindowToDisplay{Display: display}, nil
			},
		},
		{
			Name:  "toggle",
			Usage: "toggle <float|sticky|zoom-fullscreen>",
			Short: "Toggle a property of the focused window",
			Args:  1,
			Build: func(args []string) (yabai.Command, error) {
				switch args[0] {
				case "float":
					return yabai.ToggleWindowFloating{}, nil
				case "sticky":
					return yabai.ToggleWindowSticky{}, nil
				case "zoom-fullscreen":
					return yabai.ToggleZoomFullscreen{}, nil
				default:
					return nil, fmt.Errorf("%w: toggle %q", yabai.ErrInvalidOption, args[0])
				}
			},
		},
	}
}

func constant(cmd yabai.Command) func([]string) (yabai.Command, error) {
	return func([]string) (yabai.Command, error) {
		return cmd, nil
	}
}

func direction(build func(yabai.Direction) yabai.Command) func([]string) (yabai.Command, error) {
	return func(args []string) (yabai.Command, error) {
		dir, err := yabai.ParseDirection(args[0])
		if err != nil {
			return nil, err
		}
		return build(dir), nil
	}
}
