package terminput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leongb88/scrcpy/device/keyboard"
	"github.com/leongb88/scrcpy/input"
)

func TestDecodePlainChars(t *testing.T) {
	events, quit := decode([]byte("ab"))
	require.False(t, quit)
	require.Len(t, events, 4)
	assert.Equal(t, uint16(keyboard.KeyA), events[0].Code)
	assert.True(t, events[0].Down)
	assert.False(t, events[1].Down)
	assert.Equal(t, uint16(keyboard.KeyB), events[2].Code)
}

func TestDecodeShiftedChar(t *testing.T) {
	events, _ := decode([]byte("A"))
	require.Len(t, events, 2)
	assert.Equal(t, input.ModLShift, events[0].Mod)
	assert.Equal(t, input.Mod(0), events[1].Mod)
}

func TestDecodeCtrlCQuits(t *testing.T) {
	events, quit := decode([]byte{'a', 0x03, 'b'})
	assert.True(t, quit)
	// Events before the Ctrl-C are still delivered, the rest is dropped.
	require.Len(t, events, 2)
	assert.Equal(t, uint16(keyboard.KeyA), events[0].Code)
}

func TestDecodeBackspace(t *testing.T) {
	events, _ := decode([]byte{0x7F})
	require.Len(t, events, 2)
	assert.Equal(t, uint16(keyboard.KeyBackspace), events[0].Code)
}

func TestDecodeArrowSequence(t *testing.T) {
	events, _ := decode([]byte{0x1B, '[', 'A'})
	require.Len(t, events, 2)
	assert.Equal(t, uint16(keyboard.KeyUp), events[0].Code)
	assert.True(t, events[0].Down)
	assert.False(t, events[1].Down)
}

func TestDecodeTildeSequences(t *testing.T) {
	cases := map[byte]uint16{
		'2': keyboard.KeyInsert,
		'3': keyboard.KeyDelete,
		'5': keyboard.KeyPageUp,
		'6': keyboard.KeyPageDown,
	}
	for b, want := range cases {
		events, _ := decode([]byte{0x1B, '[', b, '~'})
		require.Len(t, events, 2)
		assert.Equal(t, want, events[0].Code)
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	events, _ := decode([]byte{0x1B})
	require.Len(t, events, 2)
	assert.Equal(t, uint16(keyboard.KeyEscape), events[0].Code)
}

func TestDecodeUnsupportedBytesSkipped(t *testing.T) {
	events, quit := decode([]byte{0x01, 0x02})
	assert.False(t, quit)
	assert.Empty(t, events)
}
