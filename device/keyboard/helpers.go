package keyboard

import "github.com/leongb88/scrcpy/input"

// CharToHID converts an ASCII character to its HID usage code.
// Returns 0 if the character is not supported.
func CharToHID(c byte) uint16 {
	if code, ok := CharToKey[c]; ok {
		return code
	}
	return 0
}

// NeedsShift returns true if the character requires the Shift modifier.
func NeedsShift(c byte) bool {
	return ShiftChars[c]
}

// TypeChar converts a single character into a press/release event pair,
// adding the Shift modifier where needed. ok is false for characters that
// have no usage code.
func TypeChar(c byte) (press, release input.KeyEvent, ok bool) {
	code := CharToHID(c)
	if code == 0 {
		return input.KeyEvent{}, input.KeyEvent{}, false
	}
	var mod input.Mod
	if NeedsShift(c) {
		mod = input.ModLShift
	}
	press = input.KeyEvent{Down: true, Code: code, Mod: mod}
	release = input.KeyEvent{Down: false, Code: code, Mod: 0}
	return press, release, true
}

// TypeString converts a string into a sequence of press/release events.
// Unsupported characters are skipped.
func TypeString(s string) []input.KeyEvent {
	var events []input.KeyEvent
	for i := 0; i < len(s); i++ {
		press, release, ok := TypeChar(s[i])
		if !ok {
			continue
		}
		events = append(events, press, release)
	}
	return events
}
