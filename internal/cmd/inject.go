// Package cmd implements the CLI subcommands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leongb88/scrcpy/aoa"
	"github.com/leongb88/scrcpy/device/keyboard"
	"github.com/leongb88/scrcpy/internal/log"
	"github.com/leongb88/scrcpy/internal/terminput"
)

// Inject connects to an accessory bridge, registers the HID keyboard and
// streams key events to it.
type Inject struct {
	Addr    string        `help:"Accessory bridge address" default:"127.0.0.1:6612" env:"SCRCPY_HID_ADDR"`
	Text    string        `help:"Type this string and exit instead of streaming the terminal" name:"type"`
	Timeout time.Duration `help:"Transport operation timeout" default:"5s" env:"SCRCPY_HID_TIMEOUT"`
}

// Run is called by kong when the inject command is executed.
func (c *Inject) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := aoa.Config{
		DialTimeout:  c.Timeout,
		ReadTimeout:  c.Timeout,
		WriteTimeout: c.Timeout,
	}
	client, err := aoa.DialWithConfig(c.Addr, &cfg, rawLogger)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Info("connected to accessory bridge", "addr", c.Addr)

	kb, err := keyboard.New(client, logger)
	if err != nil {
		return fmt.Errorf("setup HID keyboard: %w", err)
	}
	defer kb.Close()

	if c.Text != "" {
		for _, ev := range keyboard.TypeString(c.Text) {
			kb.ProcessKey(ev)
		}
		return nil
	}

	logger.Info("forwarding terminal input, press Ctrl-C to stop")
	return terminput.Run(ctx, kb, logger)
}
