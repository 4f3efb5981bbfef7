// Package terminput feeds terminal keystrokes to an input.Processor.
//
// It is a minimal stand-in for a windowing event source: the terminal only
// reports characters and escape sequences, so each keystroke is synthesized
// as a press/release pair and held modifiers cannot be observed beyond the
// Shift implied by the character itself.
package terminput

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/leongb88/scrcpy/device/keyboard"
	"github.com/leongb88/scrcpy/input"
)

const (
	ctrlC = 0x03
	del   = 0x7F
	esc   = 0x1B
)

// Run puts stdin into raw mode and dispatches every keystroke to proc until
// ctx is canceled or Ctrl-C is typed.
func Run(ctx context.Context, proc input.Processor, logger *slog.Logger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil {
			logger.Warn("could not restore terminal state", "error", err)
		}
	}()

	type chunk struct {
		data []byte
		err  error
	}
	reads := make(chan chunk)
	go func() {
		for {
			buf := make([]byte, 64)
			n, err := os.Stdin.Read(buf)
			reads <- chunk{data: buf[:n], err: err}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-reads:
			if c.err != nil {
				return fmt.Errorf("read stdin: %w", c.err)
			}
			events, quit := decode(c.data)
			for _, ev := range events {
				proc.ProcessKey(ev)
			}
			if quit {
				return nil
			}
		}
	}
}

// decode translates raw terminal bytes into key events. quit is true when a
// Ctrl-C byte was seen.
func decode(data []byte) (events []input.KeyEvent, quit bool) {
	for i := 0; i < len(data); i++ {
		switch c := data[i]; c {
		case ctrlC:
			return events, true
		case del:
			events = append(events, keystroke(keyboard.KeyBackspace, 0)...)
		case esc:
			code, consumed := escapeKey(data[i:])
			events = append(events, keystroke(code, 0)...)
			i += consumed - 1
		default:
			press, release, ok := keyboard.TypeChar(c)
			if !ok {
				continue
			}
			events = append(events, press, release)
		}
	}
	return events, false
}

// escapeKey decodes a CSI sequence starting at data[0] == ESC. It returns
// the usage code and the number of bytes consumed; a lone or unknown escape
// maps to the Escape key itself.
func escapeKey(data []byte) (code uint16, consumed int) {
	if len(data) < 3 || data[1] != '[' {
		return keyboard.KeyEscape, 1
	}
	switch data[2] {
	case 'A':
		return keyboard.KeyUp, 3
	case 'B':
		return keyboard.KeyDown, 3
	case 'C':
		return keyboard.KeyRight, 3
	case 'D':
		return keyboard.KeyLeft, 3
	case 'H':
		return keyboard.KeyHome, 3
	case 'F':
		return keyboard.KeyEnd, 3
	}
	if len(data) >= 4 && data[3] == '~' {
		switch data[2] {
		case '2':
			return keyboard.KeyInsert, 4
		case '3':
			return keyboard.KeyDelete, 4
		case '5':
			return keyboard.KeyPageUp, 4
		case '6':
			return keyboard.KeyPageDown, 4
		}
	}
	return keyboard.KeyEscape, 1
}

func keystroke(code uint16, mod input.Mod) []input.KeyEvent {
	return []input.KeyEvent{
		{Down: true, Code: code, Mod: mod},
		{Down: false, Code: code, Mod: 0},
	}
}
