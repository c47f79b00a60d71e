package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-rogue/constants"
)

// Intent is a movement request consumed by one tick
type Intent uint8

const (
	IntentNone Intent = iota

	// Single-cell steps
	IntentLeft
	IntentRight
	IntentUp
	IntentDown

	// Multi-cell steps, constants.FastStep cells per tick
	IntentFastLeft
	IntentFastRight
	IntentFastUp
	IntentFastDown

	intentCount
)

var intentNames = [intentCount]string{
	IntentNone:      "none",
	IntentLeft:      "left",
	IntentRight:     "right",
	IntentUp:        "up",
	IntentDown:      "down",
	IntentFastLeft:  "fast-left",
	IntentFastRight: "fast-right",
	IntentFastUp:    "fast-up",
	IntentFastDown:  "fast-down",
}

// String returns the intent's wire name
func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return fmt.Sprintf("intent(%d)", uint8(i))
}

// Delta returns the cell offset the intent requests; (0, 0) for IntentNone
func (i Intent) Delta() (dx, dy int) {
	switch i {
	case IntentLeft:
		return -1, 0
	case IntentRight:
		return 1, 0
	case IntentUp:
		return 0, -1
	case IntentDown:
		return 0, 1
	case IntentFastLeft:
		return -constants.FastStep, 0
	case IntentFastRight:
		return constants.FastStep, 0
	case IntentFastUp:
		return 0, -constants.FastStep
	case IntentFastDown:
		return 0, constants.FastStep
	default:
		return 0, 0
	}
}

// IsMove reports whether the intent requests movement
func (i Intent) IsMove() bool {
	return i > IntentNone && i < intentCount
}

// Parse resolves a wire name (case-insensitive) to an intent
func Parse(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range intentNames {
		if n == name {
			return Intent(i), nil
		}
	}
	return IntentNone, fmt.Errorf("unknown intent %q", name)
}
