// Package yabai talks to a running yabai window manager over its Unix socket.
//
// Commands are modeled as a closed set of types implementing Command; their
// String form is the same argument sequence `yabai -m` accepts. Anything the
// package does not model can be sent with Raw or Send.
//
//	_, _, err := yabai.SendCommand(ctx, yabai.FocusSpace{Option: yabai.SpaceRecent})
//
//	displays, err := yabai.QueryDisplays(ctx)
package yabai
