package yabai

import (
	"context"
	"encoding/json"
	"fmt"
)

// QueryDisplays returns every display the daemon manages.
func (c *Client) QueryDisplays(ctx context.Context) ([]DisplayInfo, error) {
	return query[[]DisplayInfo](ctx, c, DisplaysQuery{})
}

// QuerySpaces returns every space across all displays.
func (c *Client) QuerySpaces(ctx context.Context) ([]SpaceInfo, error) {
	return query[[]SpaceInfo](ctx, c, SpacesQuery{})
}

// QueryWindows returns every managed window.
func (c *Client) QueryWindows(ctx context.Context) ([]WindowInfo, error) {
	return query[[]WindowInfo](ctx, c, WindowsQuery{})
}

// FocusedDisplay returns the display that currently has focus.
func (c *Client) FocusedDisplay(ctx context.Context) (DisplayInfo, error) {
	return query[DisplayInfo](ctx, c, DisplaysQuery{Focused: true})
}

// FocusedSpace returns the space that currently has focus.
func (c *Client) FocusedSpace(ctx context.Context) (SpaceInfo, error) {
	return query[SpaceInfo](ctx, c, SpacesQuery{Focused: true})
}

// FocusedWindow returns the window that currently has focus. The daemon
// rejects this query with a CommandError when no window is focused.
func (c *Client) FocusedWindow(ctx context.Context) (WindowInfo, error) {
	return query[WindowInfo](ctx, c, WindowsQuery{Focused: true})
}

// query sends cmd and decodes its JSON reply into T.
func query[T any](ctx context.Context, c *Client, cmd Command) (T, error) {
	var out T

	reply, ok, err := c.SendCommand(ctx, cmd)
	if err != nil {
		return out, err
	}
	if !ok {
		return out, fmt.Errorf("%w: %s", ErrNoResponse, cmd)
	}
	if err := json.Unmarshal([]byte(reply), &out); err != nil {
		return out, fmt.Errorf("%w: %s json: %w", ErrDecode, cmd, err)
	}
	return out, nil
}

// QueryDisplays queries through DefaultClient.
func QueryDisplays(ctx context.Context) ([]DisplayInfo, error) {
	c, err := DefaultClient()
	if err != nil {
		return nil, err
	}
	return c.QueryDisplays(ctx)
}

// QuerySpaces queries through DefaultClient.
func QuerySpaces(ctx context.Context) ([]SpaceInfo, error) {
	c, err := DefaultClient()
	if err != nil {
		return nil, err
	}
	return c.QuerySpaces(ctx)
}

// QueryWindows queries through DefaultClient.
func QueryWindows(ctx context.Context) ([]WindowInfo, error) {
	c, err := DefaultClient()
	if err != nil {
		return nil, err
	}
	return c.QueryWindows(ctx)
}

// FocusedDisplay queries through DefaultClient.
func FocusedDisplay(ctx context.Context) (DisplayInfo, error) {
	c, err := DefaultClient()
	if err != nil {
		return DisplayInfo{}, err
	}
	return c.FocusedDisplay(ctx)
}

// FocusedSpace queries through DefaultClient.
func FocusedSpace(ctx context.Context) (SpaceInfo, error) {
	c, err := DefaultClient()
	if err != nil {
		return SpaceInfo{}, err
	}
	return c.FocusedSpace(ctx)
}

// FocusedWindow queries through DefaultClient.
func FocusedWindow(ctx context.Context) (WindowInfo, error) {
	c, err := DefaultClient()
	if err != nil {
		return WindowInfo{}, err
	}
	return c.FocusedWindow(ctx)
}
