// Package keyboard injects key events into a device as USB HID boot
// keyboard reports over an accessory transport.
package keyboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leongb88/scrcpy/aoa"
	"github.com/leongb88/scrcpy/input"
	"github.com/leongb88/scrcpy/internal/log"
)

// AccessoryID is the logical HID function id the keyboard registers under.
const AccessoryID uint16 = 1

// Keyboard turns key events into boot keyboard reports. It owns its key
// state exclusively and must be driven from a single goroutine.
type Keyboard struct {
	transport aoa.Transport
	logger    *slog.Logger
	state     KeyState
}

var _ input.Processor = (*Keyboard)(nil)

// New creates a Keyboard and registers its report descriptor with the
// transport. On error the Keyboard must not be used.
func New(transport aoa.Transport, logger *slog.Logger) (*Keyboard, error) {
	if logger == nil {
		logger = slog.Default()
	}
	k := &Keyboard{transport: transport, logger: logger}
	k.state.Reset()
	if err := transport.RegisterHID(AccessoryID, ReportDescriptor()); err != nil {
		return nil, fmt.Errorf("register HID keyboard: %w", err)
	}
	return k, nil
}

// Close unregisters the HID function so the device can restore its own soft
// keyboard. A failure here is reported but not fatal.
func (k *Keyboard) Close() error {
	if err := k.transport.UnregisterHID(AccessoryID); err != nil {
		k.logger.Warn("could not unregister HID keyboard", "error", err)
		return err
	}
	return nil
}

// ProcessKey implements input.Processor. Each supported press or release
// produces exactly one report re-encoding the full key state.
func (k *Keyboard) ProcessKey(ev input.KeyEvent) {
	if ev.Repeat {
		// Key repeat is handled by the receiving host, not here.
		return
	}

	modifiers := hidModifiers(ev.Mod)
	k.logger.Log(context.Background(), log.LevelTrace, "key event",
		"down", ev.Down, "modifiers", fmt.Sprintf("0x%02x", modifiers),
		"key", keyLabel(ev.Code))

	// Events for unsupported keys are expected and dropped silently.
	if ev.Code >= KeyCount && !isModifierKey(ev.Code) {
		return
	}

	// Modifier keys must still be processed: the modifier byte alone is not
	// enough when an ordinary key held before the modifier has to stay in
	// the report. Set is a no-op for their out-of-range usage codes.
	k.state.Set(ev.Code, ev.Down)

	report := k.state.BuildReport(modifiers)
	err := k.transport.SendHIDEvent(aoa.Event{AccessoryID: AccessoryID, Data: report})
	if err != nil {
		// Dropping is safe: the state is already updated, so the next event
		// re-derives a complete report.
		k.logger.Warn("could not send HID event", "error", err)
	}
}

// ProcessText implements input.Processor. Text is never forwarded via HID;
// all keys are injected individually.
func (k *Keyboard) ProcessText(ev input.TextEvent) {}

func isModifierKey(code uint16) bool {
	return code >= KeyLeftCtrl && code <= KeyRightGUI
}

// hidModifiers translates the event source's modifier flags into the report
// modifier bitmask. The bits are independent, one per physical key.
func hidModifiers(m input.Mod) uint8 {
	var modifiers uint8
	if m&input.ModLCtrl != 0 {
		modifiers |= ModLeftCtrl
	}
	if m&input.ModLShift != 0 {
		modifiers |= ModLeftShift
	}
	if m&input.ModLAlt != 0 {
		modifiers |= ModLeftAlt
	}
	if m&input.ModLGUI != 0 {
		modifiers |= ModLeftGUI
	}
	if m&input.ModRCtrl != 0 {
		modifiers |= ModRightCtrl
	}
	if m&input.ModRShift != 0 {
		modifiers |= ModRightShift
	}
	if m&input.ModRAlt != 0 {
		modifiers |= ModRightAlt
	}
	if m&input.ModRGUI != 0 {
		modifiers |= ModRightGUI
	}
	return modifiers
}

func keyLabel(code uint16) string {
	if name, ok := KeyName[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", code)
}
