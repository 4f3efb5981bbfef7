package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leongb88/scrcpy/device/keyboard"
	"github.com/leongb88/scrcpy/input"
)

func TestCharToHID(t *testing.T) {
	assert.Equal(t, uint16(keyboard.KeyA), keyboard.CharToHID('a'))
	assert.Equal(t, uint16(keyboard.KeyA), keyboard.CharToHID('A'))
	assert.Equal(t, uint16(keyboard.Key1), keyboard.CharToHID('!'))
	assert.Equal(t, uint16(keyboard.KeyEnter), keyboard.CharToHID('\n'))
	assert.Equal(t, uint16(0), keyboard.CharToHID(0x07))
}

func TestNeedsShift(t *testing.T) {
	assert.True(t, keyboard.NeedsShift('A'))
	assert.True(t, keyboard.NeedsShift('!'))
	assert.False(t, keyboard.NeedsShift('a'))
	assert.False(t, keyboard.NeedsShift('1'))
}

func TestTypeChar(t *testing.T) {
	press, release, ok := keyboard.TypeChar('G')
	require.True(t, ok)
	assert.Equal(t, input.KeyEvent{Down: true, Code: keyboard.KeyG, Mod: input.ModLShift}, press)
	assert.Equal(t, input.KeyEvent{Down: false, Code: keyboard.KeyG}, release)

	_, _, ok = keyboard.TypeChar(0x01)
	assert.False(t, ok)
}

func TestTypeStringSkipsUnsupported(t *testing.T) {
	events := keyboard.TypeString("a\x01b")
	require.Len(t, events, 4)
	assert.Equal(t, uint16(keyboard.KeyA), events[0].Code)
	assert.True(t, events[0].Down)
	assert.False(t, events[1].Down)
	assert.Equal(t, uint16(keyboard.KeyB), events[2].Code)
}
