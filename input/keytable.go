package input

import "github.com/gdamore/tcell/v2"

// Command discriminates what a key press asks the front-end to do
type Command uint8

const (
	CommandNone Command = iota
	CommandMove
	CommandQuit
	CommandToggleMute
	CommandRedraw
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Command Command
	Intent  Intent
}

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]KeyEntry

	// Arrow keys held with Shift
	ShiftKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {CommandQuit, IntentNone},
			tcell.KeyCtrlC:  {CommandQuit, IntentNone},
			tcell.KeyEscape: {CommandQuit, IntentNone},
			tcell.KeyCtrlS:  {CommandToggleMute, IntentNone},
			tcell.KeyCtrlL:  {CommandRedraw, IntentNone},
			tcell.KeyLeft:   {CommandMove, IntentLeft},
			tcell.KeyRight:  {CommandMove, IntentRight},
			tcell.KeyUp:     {CommandMove, IntentUp},
			tcell.KeyDown:   {CommandMove, IntentDown},
		},

		ShiftKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:  {CommandMove, IntentFastLeft},
			tcell.KeyRight: {CommandMove, IntentFastRight},
			tcell.KeyUp:    {CommandMove, IntentFastUp},
			tcell.KeyDown:  {CommandMove, IntentFastDown},
		},

		Runes: map[rune]KeyEntry{
			'h': {CommandMove, IntentLeft},
			'j': {CommandMove, IntentDown},
			'k': {CommandMove, IntentUp},
			'l': {CommandMove, IntentRight},
			'H': {CommandMove, IntentFastLeft},
			'J': {CommandMove, IntentFastDown},
			'K': {CommandMove, IntentFastUp},
			'L': {CommandMove, IntentFastRight},
			'q': {CommandQuit, IntentNone},
			'm': {CommandToggleMute, IntentNone},
		},
	}
}

// Lookup resolves a key event; CommandNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev == nil {
		return KeyEntry{}
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		if entry, ok := kt.ShiftKeys[ev.Key()]; ok {
			return entry
		}
	}
	return kt.SpecialKeys[ev.Key()]
}

var defaultTable = DefaultKeyTable()

// FromKey decodes a key press into a movement intent using the default bindings
func FromKey(ev *tcell.EventKey) (Intent, bool) {
	entry := defaultTable.Lookup(ev)
	if entry.Command != CommandMove {
		return IntentNone, false
	}
	return entry.Intent, true
}
