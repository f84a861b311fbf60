package yabai

// Frame is the position and size of a window or display in points.
type Frame struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// DisplayInfo is one entry of `query --displays`.
type DisplayInfo struct {
	ID     uint32   `json:"id"`
	UUID   string   `json:"uuid"`
	Index  uint32   `json:"index"`
	Frame  Frame    `json:"frame"`
	Spaces []uint32 `json:"spaces"`
}

// SpaceInfo is one entry of `query --spaces`.
type SpaceInfo struct {
	ID                 uint32   `json:"id"`
	UUID               string   `json:"uuid"`
	Index              uint32   `json:"index"`
	Label              string   `json:"label"`
	Type               string   `json:"type"`
	Display            uint32   `json:"display"`
	Windows            []uint32 `json:"windows"`
	FirstWindow        uint32   `json:"first-window"`
	LastWindow         uint32   `json:"last-window"`
	HasFocus           bool     `json:"has-focus"`
	IsVisible          bool     `json:"is-visible"`
	IsNativeFullscreen bool     `json:"is-native-fullscreen"`
}

// WindowInfo is one entry of `query --windows`.
type WindowInfo struct {
	ID                 uint32  `json:"id"`
	PID                uint32  `json:"pid"`
	App                string  `json:"app"`
	Title              string  `json:"title"`
	Frame              Frame   `json:"frame"`
	Role               string  `json:"role"`
	Subrole            string  `json:"subrole"`
	Display            uint32  `json:"display"`
	Space              uint32  `json:"space"`
	Level              int32   `json:"level"`
	Opacity            float64 `json:"opacity"`
	SplitType          string  `json:"split-type"`
	StackIndex         uint32  `json:"stack-index"`
	CanMove            bool    `json:"can-move"`
	CanResize          bool    `json:"can-resize"`
	HasFocus           bool    `json:"has-focus"`
	HasShadow          bool    `json:"has-shadow"`
	HasBorder          bool    `json:"has-border"`
	HasParentZoom      bool    `json:"has-parent-zoom"`
	HasFullscreenZoom  bool    `json:"has-fullscreen-zoom"`
	IsNativeFullscreen bool    `json:"is-native-fullscreen"`
	IsVisible          bool    `json:"is-visible"`
	IsMinimized        bool    `json:"is-minimized"`
	IsHidden           bool    `json:"is-hidden"`
	IsFloating         bool    `json:"is-floating"`
	IsSticky           bool    `json:"is-sticky"`
	IsTopmost          bool    `json:"is-topmost"`
	IsGrabbed          bool    `json:"is-grabbed"`
}
