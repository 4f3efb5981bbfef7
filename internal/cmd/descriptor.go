package cmd

import (
	"fmt"
	"os"

	"github.com/leongb88/scrcpy/device/keyboard"
)

// Descriptor prints the boot keyboard report descriptor.
type Descriptor struct {
	Format string `help:"Output format" enum:"hex,bin" default:"hex"`
}

func (c *Descriptor) Run() error {
	desc := keyboard.ReportDescriptor()
	if c.Format == "bin" {
		_, err := os.Stdout.Write(desc)
		return err
	}
	for i, b := range desc {
		if i > 0 {
			if i%16 == 0 {
				fmt.Println()
			} else {
				fmt.Print(" ")
			}
		}
		fmt.Printf("%02x", b)
	}
	fmt.Println()
	return nil
}
