package gravity

import (
	"fmt"
	"strings"
)

// Mode selects what the field body does to things inside its area.
type Mode uint8

const (
	ModeAttraction Mode = iota
	ModeRepulsion
	ModeHook
)

func (m Mode) String() string {
	switch m {
	case ModeAttraction:
		return "attraction"
	case ModeRepulsion:
		return "repulsion"
	case ModeHook:
		return "hook"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// HUDIndex is the value shown by the HUD mode indicator.
func (m Mode) HUDIndex() int {
	return int(m)
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m <= ModeHook
}

// ParseMode accepts the names returned by String, case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "attraction", "attract":
		return ModeAttraction, nil
	case "repulsion", "repulse":
		return ModeRepulsion, nil
	case "hook":
		return ModeHook, nil
	default:
		return ModeAttraction, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
