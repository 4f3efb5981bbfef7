// Package input defines the key event contract between event sources and
// the processors that inject them.
package input

// Mod is a bitfield of currently held modifier keys, as reported by the
// event source alongside each key event.
type Mod uint16

const (
	ModLCtrl Mod = 1 << iota
	ModLShift
	ModLAlt
	ModLGUI
	ModRCtrl
	ModRShift
	ModRAlt
	ModRGUI
)

// KeyEvent is a single key press or release notification.
type KeyEvent struct {
	// Down is true for a press, false for a release.
	Down bool
	// Repeat marks an auto-repeat of a key that is already held.
	Repeat bool
	// Code is the hardware-independent key code (USB HID keyboard usage).
	Code uint16
	// Mod is the modifier state at the time of the event.
	Mod Mod
}

// TextEvent carries committed text from the event source.
type TextEvent struct {
	Text string
}

// Processor consumes key and text events from an event source.
type Processor interface {
	ProcessKey(ev KeyEvent)
	ProcessText(ev TextEvent)
}
