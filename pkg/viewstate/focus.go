package viewstate

import "fmt"

// FocusPosition is where a focused item should end up in the viewport.
type FocusPosition int

const (
	CenteredVertically FocusPosition = iota
	CenteredHorizontally
)

var focusPositionNames = map[FocusPosition]string{
	CenteredVertically:   "vertical",
	CenteredHorizontally: "horizontal",
}

func (p FocusPosition) String() string {
	if s, ok := focusPositionNames[p]; ok {
		return s
	}
	return fmt.Sprintf("FocusPosition(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p FocusPosition) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FocusPosition) UnmarshalText(b []byte) error {
	for k, v := range focusPositionNames {
		if v == string(b) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown focus position %q", b)
}

// Focus asks the surface to bring an item into view.
type Focus struct {
	Path     IndexPath     `json:"path"`
	Position FocusPosition `json:"position"`
	Animated bool          `json:"animated,omitempty"`
}

func (f Focus) String() string {
	s := fmt.Sprintf("%s %s", f.Path, f.Position)
	if f.Animated {
		s += " animated"
	}
	return s
}
