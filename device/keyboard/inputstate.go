package keyboard

// KeyState tracks which keys are currently held, indexed by HID usage code.
// A flat array is enough: the encodable range is bounded and small.
type KeyState struct {
	keys [KeyCount]bool
}

// Set records a press (pressed=true) or release for the given usage code.
// Codes outside the encodable range are ignored; the dedicated modifier
// usages are reported through the modifier byte instead.
func (st *KeyState) Set(code uint16, pressed bool) {
	if code < KeyCount {
		st.keys[code] = pressed
	}
}

// Pressed reports whether the given usage code is currently held.
func (st *KeyState) Pressed(code uint16) bool {
	return code < KeyCount && st.keys[code]
}

// Reset releases every key.
func (st *KeyState) Reset() {
	st.keys = [KeyCount]bool{}
}

// BuildReport encodes the current state into a fresh 8-byte boot keyboard
// report.
//
// Report layout:
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Pressed usage codes in ascending order, zero padded
//
// If more than MaxKeys keys are held, the protocol mandates a phantom state:
// all six key slots are set to KeyErrorRollOver so the host knows the report
// is incomplete, while the modifier byte stays valid.
func (st *KeyState) BuildReport(modifiers uint8) []byte {
	b := make([]byte, ReportSize)
	b[reportIndexModifier] = modifiers
	b[1] = reserved

	pressed := 0
	for code := 0; code < KeyCount; code++ {
		if !st.keys[code] {
			continue
		}
		if pressed >= MaxKeys {
			for i := 0; i < MaxKeys; i++ {
				b[reportIndexKeys+i] = KeyErrorRollOver
			}
			return b
		}
		b[reportIndexKeys+pressed] = uint8(code)
		pressed++
	}
	return b
}
