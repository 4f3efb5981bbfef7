package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leongb88/scrcpy/device/keyboard"
)

func TestBuildReport(t *testing.T) {
	type testCase struct {
		name           string
		press          []uint16
		release        []uint16
		modifiers      uint8
		expectedReport []byte
	}

	cases := []testCase{
		{
			name:           "no keys",
			expectedReport: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:           "single key",
			press:          []uint16{keyboard.KeyA},
			expectedReport: []byte{0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:           "modifiers only",
			modifiers:      keyboard.ModLeftShift | keyboard.ModRightCtrl,
			expectedReport: []byte{0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:           "keys sorted ascending regardless of press order",
			press:          []uint16{keyboard.KeyZ, keyboard.KeyA, keyboard.KeyM},
			expectedReport: []byte{0x00, 0x00, 0x04, 0x10, 0x1D, 0x00, 0x00, 0x00},
		},
		{
			name:           "exactly six keys",
			press:          []uint16{keyboard.KeyA, keyboard.KeyB, keyboard.KeyC, keyboard.KeyD, keyboard.KeyE, keyboard.KeyF},
			expectedReport: []byte{0x00, 0x00, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09},
		},
		{
			name:           "seven keys roll over",
			press:          []uint16{keyboard.KeyA, keyboard.KeyB, keyboard.KeyC, keyboard.KeyD, keyboard.KeyE, keyboard.KeyF, keyboard.KeyG},
			expectedReport: []byte{0x00, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01},
		},
		{
			name:           "roll over keeps modifier byte",
			press:          []uint16{keyboard.KeyA, keyboard.KeyB, keyboard.KeyC, keyboard.KeyD, keyboard.KeyE, keyboard.KeyF, keyboard.KeyG},
			modifiers:      keyboard.ModLeftCtrl,
			expectedReport: []byte{0x01, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01},
		},
		{
			name:           "release shrinks the set",
			press:          []uint16{keyboard.KeyA, keyboard.KeyB},
			release:        []uint16{keyboard.KeyA},
			expectedReport: []byte{0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:           "release of never-pressed key is a no-op",
			press:          []uint16{keyboard.KeyA},
			release:        []uint16{keyboard.KeyB},
			expectedReport: []byte{0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:           "out-of-range codes are ignored",
			press:          []uint16{keyboard.KeyA, keyboard.KeyCount, 0xE0, 0xFF},
			expectedReport: []byte{0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var st keyboard.KeyState
			for _, code := range tc.press {
				st.Set(code, true)
			}
			for _, code := range tc.release {
				st.Set(code, false)
			}
			assert.Equal(t, tc.expectedReport, st.BuildReport(tc.modifiers))
		})
	}
}

func TestBuildReportPressIdempotent(t *testing.T) {
	var st keyboard.KeyState
	st.Set(keyboard.KeyA, true)
	st.Set(keyboard.KeyA, true)
	assert.Equal(t, []byte{0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00}, st.BuildReport(0))
}

func TestBuildReportReturnsFreshBuffer(t *testing.T) {
	var st keyboard.KeyState
	st.Set(keyboard.KeyA, true)

	first := st.BuildReport(0)
	first[2] = 0xAA

	second := st.BuildReport(0)
	require.Equal(t, uint8(keyboard.KeyA), second[2])
}

func TestKeyStateReset(t *testing.T) {
	var st keyboard.KeyState
	st.Set(keyboard.KeyA, true)
	st.Set(keyboard.KeyZ, true)
	st.Reset()
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, st.BuildReport(0))
	assert.False(t, st.Pressed(keyboard.KeyA))
}
