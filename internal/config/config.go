// Package config declares the command line surface.
package config

import "github.com/leongb88/scrcpy/internal/cmd"

// LogConfig groups the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"SCRCPY_HID_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"SCRCPY_HID_LOG_FILE"`
	RawFile string `help:"Write raw frame hex dumps to this file" env:"SCRCPY_HID_LOG_RAW_FILE"`
}

// CLI is the root kong command structure.
type CLI struct {
	Config string    `help:"Path to a configuration file" env:"SCRCPY_HID_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Inject     cmd.Inject        `cmd:"" help:"Inject keyboard input into a device over an accessory bridge"`
	Descriptor cmd.Descriptor    `cmd:"" help:"Print the boot keyboard report descriptor"`
	ConfigCmd  cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}
